package usecases

import (
	"context"
	"errors"

	"github.com/mizan-app/mizan/internal/application/marketing/dto"
	planusecases "github.com/mizan-app/mizan/internal/application/plan/usecases"
	"github.com/mizan-app/mizan/internal/domain/marketing"
	"github.com/mizan-app/mizan/internal/shared/logger"
)

// GetMarketingUseCase returns the marketing section of a plan
type GetMarketingUseCase struct {
	marketingRepo marketing.Repository
	resolver      *planusecases.ResolvePlanUseCase
	logger        logger.Interface
}

// NewGetMarketingUseCase creates a new GetMarketingUseCase
func NewGetMarketingUseCase(marketingRepo marketing.Repository, resolver *planusecases.ResolvePlanUseCase, logger logger.Interface) *GetMarketingUseCase {
	return &GetMarketingUseCase{
		marketingRepo: marketingRepo,
		resolver:      resolver,
		logger:        logger,
	}
}

// Execute loads the plan's marketing strategy
func (uc *GetMarketingUseCase) Execute(ctx context.Context, userID, planSID string) (*dto.MarketingResponse, error) {
	p, err := uc.resolver.Execute(ctx, userID, planSID)
	if err != nil {
		return nil, err
	}

	strategy, err := uc.marketingRepo.GetByPlan(ctx, p.ID())
	if err != nil {
		if errors.Is(err, marketing.ErrStrategyNotFound) {
			return &dto.MarketingResponse{Channels: []string{}}, nil
		}
		return nil, err
	}

	return dto.ToMarketingResponse(strategy), nil
}
