package usecases

import (
	"context"

	planusecases "github.com/mizan-app/mizan/internal/application/plan/usecases"
	"github.com/mizan-app/mizan/internal/domain/market"
	"github.com/mizan-app/mizan/internal/shared/logger"
)

// DeleteCompetitorUseCase removes one competitor from a plan
type DeleteCompetitorUseCase struct {
	competitorRepo market.CompetitorRepository
	resolver       *planusecases.ResolvePlanUseCase
	logger         logger.Interface
}

// NewDeleteCompetitorUseCase creates a new DeleteCompetitorUseCase
func NewDeleteCompetitorUseCase(competitorRepo market.CompetitorRepository, resolver *planusecases.ResolvePlanUseCase, logger logger.Interface) *DeleteCompetitorUseCase {
	return &DeleteCompetitorUseCase{
		competitorRepo: competitorRepo,
		resolver:       resolver,
		logger:         logger,
	}
}

// Execute deletes the competitor
func (uc *DeleteCompetitorUseCase) Execute(ctx context.Context, userID, planSID, competitorSID string) error {
	p, err := uc.resolver.Execute(ctx, userID, planSID)
	if err != nil {
		return err
	}

	if err := uc.competitorRepo.Delete(ctx, p.ID(), competitorSID); err != nil {
		return err
	}

	uc.logger.Infow("competitor deleted", "plan_sid", planSID, "competitor_sid", competitorSID)
	return nil
}
