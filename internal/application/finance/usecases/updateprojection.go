package usecases

import (
	"context"
	"errors"
	"fmt"

	"github.com/mizan-app/mizan/internal/application/finance/dto"
	planusecases "github.com/mizan-app/mizan/internal/application/plan/usecases"
	"github.com/mizan-app/mizan/internal/domain/finance"
	apperrors "github.com/mizan-app/mizan/internal/shared/errors"
	"github.com/mizan-app/mizan/internal/shared/logger"
)

// UpdateProjectionUseCase updates the plan's sales hypothesis, growth
// rates and the optional year-1 revenue override, creating the record
// on first write. Submitting year_1_revenue pins the figure until
// reset_revenue is sent.
type UpdateProjectionUseCase struct {
	projectionRepo finance.ProjectionRepository
	fixedRepo      finance.FixedCostRepository
	variableRepo   finance.VariableCostRepository
	resolver       *planusecases.ResolvePlanUseCase
	logger         logger.Interface
}

// NewUpdateProjectionUseCase creates a new UpdateProjectionUseCase
func NewUpdateProjectionUseCase(
	projectionRepo finance.ProjectionRepository,
	fixedRepo finance.FixedCostRepository,
	variableRepo finance.VariableCostRepository,
	resolver *planusecases.ResolvePlanUseCase,
	logger logger.Interface,
) *UpdateProjectionUseCase {
	return &UpdateProjectionUseCase{
		projectionRepo: projectionRepo,
		fixedRepo:      fixedRepo,
		variableRepo:   variableRepo,
		resolver:       resolver,
		logger:         logger,
	}
}

// Execute applies the requested changes and returns the recomputed
// projection
func (uc *UpdateProjectionUseCase) Execute(ctx context.Context, userID, planSID string, req dto.UpdateProjectionRequest) (*dto.ProjectionResponse, error) {
	p, err := uc.resolver.Execute(ctx, userID, planSID)
	if err != nil {
		return nil, err
	}

	projection, err := uc.projectionRepo.GetByPlan(ctx, p.ID())
	created := false
	if err != nil {
		if !errors.Is(err, finance.ErrProjectionNotFound) {
			return nil, err
		}
		projection, err = finance.NewFinancialProjection(p.ID())
		if err != nil {
			return nil, fmt.Errorf("failed to build projection: %w", err)
		}
		created = true
	}

	if req.MonthlyOrders != nil || req.AvgPrice != nil {
		orders := projection.MonthlyOrders()
		price := projection.AvgPrice()
		if req.MonthlyOrders != nil {
			orders = *req.MonthlyOrders
		}
		if req.AvgPrice != nil {
			price = *req.AvgPrice
		}
		if err := projection.SetSalesHypothesis(orders, price); err != nil {
			return nil, apperrors.NewValidationError(fmt.Sprintf("failed to update projection: %v", err))
		}
	}

	if req.ResetRevenue {
		projection.ClearRevenueOverride()
	} else if req.Year1Revenue != nil {
		if err := projection.OverrideYear1Revenue(*req.Year1Revenue); err != nil {
			return nil, apperrors.NewValidationError(fmt.Sprintf("failed to update projection: %v", err))
		}
	}

	if req.Year2GrowthRate != nil || req.Year3GrowthRate != nil {
		year2 := projection.Year2GrowthRate()
		year3 := projection.Year3GrowthRate()
		if req.Year2GrowthRate != nil {
			year2 = *req.Year2GrowthRate
		}
		if req.Year3GrowthRate != nil {
			year3 = *req.Year3GrowthRate
		}
		if err := projection.SetGrowthRates(year2, year3); err != nil {
			return nil, apperrors.NewValidationError(fmt.Sprintf("failed to update projection: %v", err))
		}
	}

	if created {
		err = uc.projectionRepo.Create(ctx, projection)
	} else {
		err = uc.projectionRepo.Update(ctx, projection)
	}
	if err != nil {
		uc.logger.Errorw("failed to save projection", "plan_sid", planSID, "error", err)
		return nil, fmt.Errorf("failed to save projection: %w", err)
	}

	fixed, err := uc.fixedRepo.ListByPlan(ctx, p.ID())
	if err != nil {
		return nil, err
	}
	variable, err := uc.variableRepo.ListByPlan(ctx, p.ID())
	if err != nil {
		return nil, err
	}

	return dto.ToProjectionResponse(projection, finance.TotalFixedCosts(fixed), finance.TotalVariableRate(variable)), nil
}
