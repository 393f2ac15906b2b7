package usecases

import (
	"context"

	"github.com/mizan-app/mizan/internal/application/market/dto"
	planusecases "github.com/mizan-app/mizan/internal/application/plan/usecases"
	"github.com/mizan-app/mizan/internal/domain/market"
	"github.com/mizan-app/mizan/internal/shared/logger"
)

// ListCompetitorsUseCase lists the competitors of a plan
type ListCompetitorsUseCase struct {
	competitorRepo market.CompetitorRepository
	resolver       *planusecases.ResolvePlanUseCase
	logger         logger.Interface
}

// NewListCompetitorsUseCase creates a new ListCompetitorsUseCase
func NewListCompetitorsUseCase(competitorRepo market.CompetitorRepository, resolver *planusecases.ResolvePlanUseCase, logger logger.Interface) *ListCompetitorsUseCase {
	return &ListCompetitorsUseCase{
		competitorRepo: competitorRepo,
		resolver:       resolver,
		logger:         logger,
	}
}

// Execute lists the plan's competitors in insertion order
func (uc *ListCompetitorsUseCase) Execute(ctx context.Context, userID, planSID string) ([]*dto.CompetitorResponse, error) {
	p, err := uc.resolver.Execute(ctx, userID, planSID)
	if err != nil {
		return nil, err
	}

	competitors, err := uc.competitorRepo.ListByPlan(ctx, p.ID())
	if err != nil {
		return nil, err
	}

	return dto.ToCompetitorResponseList(competitors), nil
}
