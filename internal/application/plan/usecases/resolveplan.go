package usecases

import (
	"context"
	"errors"

	"github.com/mizan-app/mizan/internal/domain/plan"
	"github.com/mizan-app/mizan/internal/shared/logger"
)

// ResolvePlanUseCase loads a plan by its public identifier and checks
// that it belongs to the requesting session. Plans of other sessions
// are reported as not found so their identifiers stay unguessable.
type ResolvePlanUseCase struct {
	planRepo plan.Repository
	logger   logger.Interface
}

// NewResolvePlanUseCase creates a new ResolvePlanUseCase
func NewResolvePlanUseCase(planRepo plan.Repository, logger logger.Interface) *ResolvePlanUseCase {
	return &ResolvePlanUseCase{
		planRepo: planRepo,
		logger:   logger,
	}
}

// Execute resolves the plan owned by userID with the given SID
func (uc *ResolvePlanUseCase) Execute(ctx context.Context, userID, planSID string) (*plan.BusinessPlan, error) {
	p, err := uc.planRepo.GetBySID(ctx, planSID)
	if err != nil {
		if !errors.Is(err, plan.ErrPlanNotFound) {
			uc.logger.Errorw("failed to resolve plan", "plan_sid", planSID, "error", err)
		}
		return nil, err
	}

	if !p.IsOwnedBy(userID) {
		uc.logger.Warnw("plan ownership mismatch", "plan_sid", planSID)
		return nil, plan.ErrPlanNotFound
	}

	return p, nil
}
