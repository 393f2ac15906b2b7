package usecases

import (
	"context"
	"errors"

	planusecases "github.com/mizan-app/mizan/internal/application/plan/usecases"
	"github.com/mizan-app/mizan/internal/application/swot/dto"
	"github.com/mizan-app/mizan/internal/domain/swot"
	"github.com/mizan-app/mizan/internal/shared/logger"
)

// GetSwotUseCase returns the SWOT section of a plan, empty lists when
// the section has never been filled.
type GetSwotUseCase struct {
	swotRepo swot.Repository
	resolver *planusecases.ResolvePlanUseCase
	logger   logger.Interface
}

// NewGetSwotUseCase creates a new GetSwotUseCase
func NewGetSwotUseCase(swotRepo swot.Repository, resolver *planusecases.ResolvePlanUseCase, logger logger.Interface) *GetSwotUseCase {
	return &GetSwotUseCase{
		swotRepo: swotRepo,
		resolver: resolver,
		logger:   logger,
	}
}

// Execute loads the plan's SWOT analysis
func (uc *GetSwotUseCase) Execute(ctx context.Context, userID, planSID string) (*dto.SwotResponse, error) {
	p, err := uc.resolver.Execute(ctx, userID, planSID)
	if err != nil {
		return nil, err
	}

	analysis, err := uc.swotRepo.GetByPlan(ctx, p.ID())
	if err != nil {
		if errors.Is(err, swot.ErrSwotNotFound) {
			return &dto.SwotResponse{
				Strengths:     []string{},
				Weaknesses:    []string{},
				Opportunities: []string{},
				Threats:       []string{},
			}, nil
		}
		return nil, err
	}

	return dto.ToSwotResponse(analysis), nil
}
