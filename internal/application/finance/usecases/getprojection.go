package usecases

import (
	"context"
	"errors"
	"fmt"

	"github.com/mizan-app/mizan/internal/application/finance/dto"
	planusecases "github.com/mizan-app/mizan/internal/application/plan/usecases"
	"github.com/mizan-app/mizan/internal/domain/finance"
	"github.com/mizan-app/mizan/internal/shared/logger"
)

// GetProjectionUseCase returns the plan's financial projection with
// every derived metric, computed against the current cost structure.
// A plan without a stored projection gets a zeroed one.
type GetProjectionUseCase struct {
	projectionRepo finance.ProjectionRepository
	fixedRepo      finance.FixedCostRepository
	variableRepo   finance.VariableCostRepository
	resolver       *planusecases.ResolvePlanUseCase
	logger         logger.Interface
}

// NewGetProjectionUseCase creates a new GetProjectionUseCase
func NewGetProjectionUseCase(
	projectionRepo finance.ProjectionRepository,
	fixedRepo finance.FixedCostRepository,
	variableRepo finance.VariableCostRepository,
	resolver *planusecases.ResolvePlanUseCase,
	logger logger.Interface,
) *GetProjectionUseCase {
	return &GetProjectionUseCase{
		projectionRepo: projectionRepo,
		fixedRepo:      fixedRepo,
		variableRepo:   variableRepo,
		resolver:       resolver,
		logger:         logger,
	}
}

// Execute loads the projection and derives its metrics
func (uc *GetProjectionUseCase) Execute(ctx context.Context, userID, planSID string) (*dto.ProjectionResponse, error) {
	p, err := uc.resolver.Execute(ctx, userID, planSID)
	if err != nil {
		return nil, err
	}

	projection, err := uc.projectionRepo.GetByPlan(ctx, p.ID())
	if err != nil {
		if !errors.Is(err, finance.ErrProjectionNotFound) {
			return nil, err
		}
		projection, err = finance.NewFinancialProjection(p.ID())
		if err != nil {
			return nil, fmt.Errorf("failed to build projection: %w", err)
		}
	}

	totalFixed, totalRate, err := uc.costAggregates(ctx, p.ID())
	if err != nil {
		return nil, err
	}

	return dto.ToProjectionResponse(projection, totalFixed, totalRate), nil
}

func (uc *GetProjectionUseCase) costAggregates(ctx context.Context, planID uint) (float64, float64, error) {
	fixed, err := uc.fixedRepo.ListByPlan(ctx, planID)
	if err != nil {
		return 0, 0, err
	}
	variable, err := uc.variableRepo.ListByPlan(ctx, planID)
	if err != nil {
		return 0, 0, err
	}
	return finance.TotalFixedCosts(fixed), finance.TotalVariableRate(variable), nil
}
