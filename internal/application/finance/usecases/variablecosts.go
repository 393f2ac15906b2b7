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

// VariableCostUseCases groups the CRUD operations on a plan's variable
// costs. The list response carries the combined rate of sales.
type VariableCostUseCases struct {
	variableRepo finance.VariableCostRepository
	resolver     *planusecases.ResolvePlanUseCase
	logger       logger.Interface
}

// NewVariableCostUseCases creates a new VariableCostUseCases
func NewVariableCostUseCases(variableRepo finance.VariableCostRepository, resolver *planusecases.ResolvePlanUseCase, logger logger.Interface) *VariableCostUseCases {
	return &VariableCostUseCases{
		variableRepo: variableRepo,
		resolver:     resolver,
		logger:       logger,
	}
}

// List returns the plan's variable costs with the combined rate
func (uc *VariableCostUseCases) List(ctx context.Context, userID, planSID string) (*dto.VariableCostListResponse, error) {
	p, err := uc.resolver.Execute(ctx, userID, planSID)
	if err != nil {
		return nil, err
	}

	costs, err := uc.variableRepo.ListByPlan(ctx, p.ID())
	if err != nil {
		return nil, err
	}

	return dto.ToVariableCostListResponse(costs), nil
}

// Add records a new variable cost on the plan
func (uc *VariableCostUseCases) Add(ctx context.Context, userID, planSID string, req dto.CreateVariableCostRequest) (*dto.VariableCostResponse, error) {
	p, err := uc.resolver.Execute(ctx, userID, planSID)
	if err != nil {
		return nil, err
	}

	cost, err := finance.NewVariableCost(p.ID(), req.Name, req.RateOfSales)
	if err != nil {
		return nil, errors.NewValidationError(fmt.Sprintf("failed to create variable cost: %v", err))
	}

	if err := uc.variableRepo.Create(ctx, cost); err != nil {
		uc.logger.Errorw("failed to persist variable cost", "plan_sid", planSID, "error", err)
		return nil, fmt.Errorf("failed to save variable cost: %w", err)
	}

	return dto.ToVariableCostResponse(cost), nil
}

// Update applies the requested field changes to one variable cost
func (uc *VariableCostUseCases) Update(ctx context.Context, userID, planSID, costSID string, req dto.UpdateVariableCostRequest) (*dto.VariableCostResponse, error) {
	p, err := uc.resolver.Execute(ctx, userID, planSID)
	if err != nil {
		return nil, err
	}

	cost, err := uc.variableRepo.GetBySID(ctx, p.ID(), costSID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		cost.Rename(*req.Name)
	}
	if req.RateOfSales != nil {
		if err := cost.SetRateOfSales(*req.RateOfSales); err != nil {
			return nil, errors.NewValidationError(fmt.Sprintf("failed to update variable cost: %v", err))
		}
	}

	if err := uc.variableRepo.Update(ctx, cost); err != nil {
		uc.logger.Errorw("failed to update variable cost", "cost_sid", costSID, "error", err)
		return nil, fmt.Errorf("failed to save variable cost: %w", err)
	}

	return dto.ToVariableCostResponse(cost), nil
}

// Delete removes one variable cost from the plan
func (uc *VariableCostUseCases) Delete(ctx context.Context, userID, planSID, costSID string) error {
	p, err := uc.resolver.Execute(ctx, userID, planSID)
	if err != nil {
		return err
	}

	return uc.variableRepo.Delete(ctx, p.ID(), costSID)
}
