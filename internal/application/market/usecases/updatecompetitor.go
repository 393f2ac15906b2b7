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

// UpdateCompetitorUseCase updates one competitor of a plan
type UpdateCompetitorUseCase struct {
	competitorRepo market.CompetitorRepository
	resolver       *planusecases.ResolvePlanUseCase
	logger         logger.Interface
}

// NewUpdateCompetitorUseCase creates a new UpdateCompetitorUseCase
func NewUpdateCompetitorUseCase(competitorRepo market.CompetitorRepository, resolver *planusecases.ResolvePlanUseCase, logger logger.Interface) *UpdateCompetitorUseCase {
	return &UpdateCompetitorUseCase{
		competitorRepo: competitorRepo,
		resolver:       resolver,
		logger:         logger,
	}
}

// Execute applies the requested field changes to the competitor
func (uc *UpdateCompetitorUseCase) Execute(ctx context.Context, userID, planSID, competitorSID string, req dto.UpdateCompetitorRequest) (*dto.CompetitorResponse, error) {
	p, err := uc.resolver.Execute(ctx, userID, planSID)
	if err != nil {
		return nil, err
	}

	competitor, err := uc.competitorRepo.GetBySID(ctx, p.ID(), competitorSID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		competitor.Rename(*req.Name)
	}
	if req.Price != nil {
		if err := competitor.SetPrice(*req.Price); err != nil {
			return nil, errors.NewValidationError(fmt.Sprintf("failed to update competitor: %v", err))
		}
	}

	advantages := competitor.Advantages()
	weaknesses := competitor.Weaknesses()
	differentiation := competitor.Differentiation()
	if req.Advantages != nil {
		advantages = *req.Advantages
	}
	if req.Weaknesses != nil {
		weaknesses = *req.Weaknesses
	}
	if req.Differentiation != nil {
		differentiation = *req.Differentiation
	}
	competitor.UpdateAnalysis(advantages, weaknesses, differentiation)

	if err := uc.competitorRepo.Update(ctx, competitor); err != nil {
		uc.logger.Errorw("failed to update competitor", "competitor_sid", competitorSID, "error", err)
		return nil, fmt.Errorf("failed to save competitor: %w", err)
	}

	return dto.ToCompetitorResponse(competitor), nil
}
