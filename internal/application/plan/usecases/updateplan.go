package usecases

import (
	"context"
	"fmt"

	"github.com/mizan-app/mizan/internal/application/plan/dto"
	"github.com/mizan-app/mizan/internal/domain/plan"
	"github.com/mizan-app/mizan/internal/shared/errors"
	"github.com/mizan-app/mizan/internal/shared/logger"
)

// UpdatePlanUseCase updates the identity section of a plan
type UpdatePlanUseCase struct {
	planRepo plan.Repository
	resolver *ResolvePlanUseCase
	logger   logger.Interface
}

// NewUpdatePlanUseCase creates a new UpdatePlanUseCase
func NewUpdatePlanUseCase(planRepo plan.Repository, resolver *ResolvePlanUseCase, logger logger.Interface) *UpdatePlanUseCase {
	return &UpdatePlanUseCase{
		planRepo: planRepo,
		resolver: resolver,
		logger:   logger,
	}
}

// Execute applies the requested field changes to the plan
func (uc *UpdatePlanUseCase) Execute(ctx context.Context, userID, planSID string, req dto.UpdatePlanRequest) (*dto.PlanResponse, error) {
	p, err := uc.resolver.Execute(ctx, userID, planSID)
	if err != nil {
		return nil, err
	}

	projectName := p.ProjectName()
	sector := p.Sector()
	cityRegion := p.CityRegion()
	if req.ProjectName != nil {
		projectName = *req.ProjectName
	}
	if req.Sector != nil {
		sector = *req.Sector
	}
	if req.CityRegion != nil {
		cityRegion = *req.CityRegion
	}
	p.UpdateIdentity(projectName, sector, cityRegion)

	if req.Language != nil {
		if err := p.SetLanguage(*req.Language); err != nil {
			return nil, errors.NewValidationError(fmt.Sprintf("failed to update plan: %v", err))
		}
	}

	if err := uc.planRepo.Update(ctx, p); err != nil {
		uc.logger.Errorw("failed to update plan", "plan_sid", planSID, "error", err)
		return nil, fmt.Errorf("failed to save plan: %w", err)
	}

	return dto.ToPlanResponse(p), nil
}
