package usecases

import (
	"context"
	"fmt"

	"github.com/mizan-app/mizan/internal/application/market/dto"
	planusecases "github.com/mizan-app/mizan/internal/application/plan/usecases"
	"github.com/mizan-app/mizan/internal/domain/market"
	"github.com/mizan-app/mizan/internal/shared/errors"
	"github.com/mizan-app/mizan/internal/shared/logger"
)

// AddCompetitorUseCase records a new competitor on a plan
type AddCompetitorUseCase struct {
	competitorRepo market.CompetitorRepository
	resolver       *planusecases.ResolvePlanUseCase
	logger         logger.Interface
}

// NewAddCompetitorUseCase creates a new AddCompetitorUseCase
func NewAddCompetitorUseCase(competitorRepo market.CompetitorRepository, resolver *planusecases.ResolvePlanUseCase, logger logger.Interface) *AddCompetitorUseCase {
	return &AddCompetitorUseCase{
		competitorRepo: competitorRepo,
		resolver:       resolver,
		logger:         logger,
	}
}

// Execute creates the competitor and returns its representation
func (uc *AddCompetitorUseCase) Execute(ctx context.Context, userID, planSID string, req dto.CreateCompetitorRequest) (*dto.CompetitorResponse, error) {
	p, err := uc.resolver.Execute(ctx, userID, planSID)
	if err != nil {
		return nil, err
	}

	competitor, err := market.NewCompetitor(p.ID(), req.Name, req.Price)
	if err != nil {
		return nil, errors.NewValidationError(fmt.Sprintf("failed to create competitor: %v", err))
	}
	competitor.UpdateAnalysis(req.Advantages, req.Weaknesses, req.Differentiation)

	if err := uc.competitorRepo.Create(ctx, competitor); err != nil {
		uc.logger.Errorw("failed to persist competitor", "plan_sid", planSID, "error", err)
		return nil, fmt.Errorf("failed to save competitor: %w", err)
	}

	uc.logger.Infow("competitor added", "plan_sid", planSID, "competitor_sid", competitor.SID())
	return dto.ToCompetitorResponse(competitor), nil
}
