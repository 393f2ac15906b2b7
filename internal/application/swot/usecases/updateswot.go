package usecases

import (
	"context"
	"errors"
	"fmt"

	planusecases "github.com/mizan-app/mizan/internal/application/plan/usecases"
	"github.com/mizan-app/mizan/internal/application/swot/dto"
	"github.com/mizan-app/mizan/internal/domain/swot"
	"github.com/mizan-app/mizan/internal/shared/logger"
)

// UpdateSwotUseCase replaces the four SWOT lists of a plan, creating
// the record on first write. Blank entries are dropped by the entity.
type UpdateSwotUseCase struct {
	swotRepo swot.Repository
	resolver *planusecases.ResolvePlanUseCase
	logger   logger.Interface
}

// NewUpdateSwotUseCase creates a new UpdateSwotUseCase
func NewUpdateSwotUseCase(swotRepo swot.Repository, resolver *planusecases.ResolvePlanUseCase, logger logger.Interface) *UpdateSwotUseCase {
	return &UpdateSwotUseCase{
		swotRepo: swotRepo,
		resolver: resolver,
		logger:   logger,
	}
}

// Execute writes the submitted lists
func (uc *UpdateSwotUseCase) Execute(ctx context.Context, userID, planSID string, req dto.UpdateSwotRequest) (*dto.SwotResponse, error) {
	p, err := uc.resolver.Execute(ctx, userID, planSID)
	if err != nil {
		return nil, err
	}

	analysis, err := uc.swotRepo.GetByPlan(ctx, p.ID())
	created := false
	if err != nil {
		if !errors.Is(err, swot.ErrSwotNotFound) {
			return nil, err
		}
		analysis, err = swot.NewAnalysis(p.ID())
		if err != nil {
			return nil, fmt.Errorf("failed to build swot analysis: %w", err)
		}
		created = true
	}

	analysis.Update(req.Strengths, req.Weaknesses, req.Opportunities, req.Threats)

	if created {
		err = uc.swotRepo.Create(ctx, analysis)
	} else {
		err = uc.swotRepo.Update(ctx, analysis)
	}
	if err != nil {
		uc.logger.Errorw("failed to save swot analysis", "plan_sid", planSID, "error", err)
		return nil, fmt.Errorf("failed to save swot analysis: %w", err)
	}

	return dto.ToSwotResponse(analysis), nil
}
