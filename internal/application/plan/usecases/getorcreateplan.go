package usecases

import (
	"context"
	"errors"
	"fmt"

	"github.com/mizan-app/mizan/internal/application/plan/dto"
	"github.com/mizan-app/mizan/internal/domain/plan"
	"github.com/mizan-app/mizan/internal/shared/logger"
)

// GetOrCreatePlanUseCase returns the session's working plan. It tries
// the requested SID first, falls back to the session's most recent
// plan, and creates a blank one when the session has none yet.
type GetOrCreatePlanUseCase struct {
	planRepo        plan.Repository
	defaultLanguage string
	logger          logger.Interface
}

// NewGetOrCreatePlanUseCase creates a new GetOrCreatePlanUseCase
func NewGetOrCreatePlanUseCase(planRepo plan.Repository, defaultLanguage string, logger logger.Interface) *GetOrCreatePlanUseCase {
	return &GetOrCreatePlanUseCase{
		planRepo:        planRepo,
		defaultLanguage: defaultLanguage,
		logger:          logger,
	}
}

// Execute resolves or creates the session's plan. planSID may be empty.
func (uc *GetOrCreatePlanUseCase) Execute(ctx context.Context, userID, planSID string) (*dto.PlanResponse, error) {
	if planSID != "" {
		p, err := uc.planRepo.GetBySID(ctx, planSID)
		if err == nil && p.IsOwnedBy(userID) {
			return dto.ToPlanResponse(p), nil
		}
		if err != nil && !errors.Is(err, plan.ErrPlanNotFound) {
			return nil, err
		}
		// A stale or foreign SID falls through to the owner lookup.
	}

	p, err := uc.planRepo.GetByOwner(ctx, userID)
	if err == nil {
		return dto.ToPlanResponse(p), nil
	}
	if !errors.Is(err, plan.ErrPlanNotFound) {
		return nil, err
	}

	created, err := plan.NewBusinessPlan(userID, uc.defaultLanguage)
	if err != nil {
		return nil, fmt.Errorf("failed to build plan: %w", err)
	}
	if err := uc.planRepo.Create(ctx, created); err != nil {
		uc.logger.Errorw("failed to persist new plan", "error", err)
		return nil, fmt.Errorf("failed to save plan: %w", err)
	}

	uc.logger.Infow("plan created", "plan_sid", created.SID())
	return dto.ToPlanResponse(created), nil
}
