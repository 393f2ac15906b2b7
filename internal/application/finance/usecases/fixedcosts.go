package usecases

import (
	"context"
	"fmt"

	"github.com/mizan-app/mizan/internal/application/finance/dto"
	planusecases "github.com/mizan-app/mizan/internal/application/plan/usecases"
	"github.com/mizan-app/mizan/internal/domain/finance"
	"github.com/mizan-app/mizan/internal/shared/errors"
	"github.com/mizan-app/mizan/internal/shared/logger"
)

// FixedCostUseCases groups the CRUD operations on a plan's fixed costs.
// The list response carries the monthly total alongside the items.
type FixedCostUseCases struct {
	fixedRepo finance.FixedCostRepository
	resolver  *planusecases.ResolvePlanUseCase
	logger    logger.Interface
}

// NewFixedCostUseCases creates a new FixedCostUseCases
func NewFixedCostUseCases(fixedRepo finance.FixedCostRepository, resolver *planusecases.ResolvePlanUseCase, logger logger.Interface) *FixedCostUseCases {
	return &FixedCostUseCases{
		fixedRepo: fixedRepo,
		resolver:  resolver,
		logger:    logger,
	}
}

// List returns the plan's fixed costs with their monthly total
func (uc *FixedCostUseCases) List(ctx context.Context, userID, planSID string) (*dto.FixedCostListResponse, error) {
	p, err := uc.resolver.Execute(ctx, userID, planSID)
	if err != nil {
		return nil, err
	}

	costs, err := uc.fixedRepo.ListByPlan(ctx, p.ID())
	if err != nil {
		return nil, err
	}

	return dto.ToFixedCostListResponse(costs), nil
}

// Add records a new fixed cost on the plan
func (uc *FixedCostUseCases) Add(ctx context.Context, userID, planSID string, req dto.CreateFixedCostRequest) (*dto.FixedCostResponse, error) {
	p, err := uc.resolver.Execute(ctx, userID, planSID)
	if err != nil {
		return nil, err
	}

	cost, err := finance.NewFixedCost(p.ID(), req.Name, req.MonthlyAmount)
	if err != nil {
		return nil, errors.NewValidationError(fmt.Sprintf("failed to create fixed cost: %v", err))
	}

	if err := uc.fixedRepo.Create(ctx, cost); err != nil {
		uc.logger.Errorw("failed to persist fixed cost", "plan_sid", planSID, "error", err)
		return nil, fmt.Errorf("failed to save fixed cost: %w", err)
	}

	return dto.ToFixedCostResponse(cost), nil
}

// Update applies the requested field changes to one fixed cost
func (uc *FixedCostUseCases) Update(ctx context.Context, userID, planSID, costSID string, req dto.UpdateFixedCostRequest) (*dto.FixedCostResponse, error) {
	p, err := uc.resolver.Execute(ctx, userID, planSID)
	if err != nil {
		return nil, err
	}

	cost, err := uc.fixedRepo.GetBySID(ctx, p.ID(), costSID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		cost.Rename(*req.Name)
	}
	if req.MonthlyAmount != nil {
		if err := cost.SetMonthlyAmount(*req.MonthlyAmount); err != nil {
			return nil, errors.NewValidationError(fmt.Sprintf("failed to update fixed cost: %v", err))
		}
	}

	if err := uc.fixedRepo.Update(ctx, cost); err != nil {
		uc.logger.Errorw("failed to update fixed cost", "cost_sid", costSID, "error", err)
		return nil, fmt.Errorf("failed to save fixed cost: %w", err)
	}

	return dto.ToFixedCostResponse(cost), nil
}

// Delete removes one fixed cost from the plan
func (uc *FixedCostUseCases) Delete(ctx context.Context, userID, planSID, costSID string) error {
	p, err := uc.resolver.Execute(ctx, userID, planSID)
	if err != nil {
		return err
	}

	return uc.fixedRepo.Delete(ctx, p.ID(), costSID)
}
