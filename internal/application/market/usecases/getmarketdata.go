package usecases

import (
	"context"
	"errors"

	"github.com/mizan-app/mizan/internal/application/market/dto"
	planusecases "github.com/mizan-app/mizan/internal/application/plan/usecases"
	"github.com/mizan-app/mizan/internal/domain/market"
	"github.com/mizan-app/mizan/internal/shared/logger"
)

// GetMarketDataUseCase returns the market section of a plan. A plan
// that has never filled the section gets an empty response instead of
// an error.
type GetMarketDataUseCase struct {
	marketRepo market.MarketDataRepository
	resolver   *planusecases.ResolvePlanUseCase
	logger     logger.Interface
}

// NewGetMarketDataUseCase creates a new GetMarketDataUseCase
func NewGetMarketDataUseCase(marketRepo market.MarketDataRepository, resolver *planusecases.ResolvePlanUseCase, logger logger.Interface) *GetMarketDataUseCase {
	return &GetMarketDataUseCase{
		marketRepo: marketRepo,
		resolver:   resolver,
		logger:     logger,
	}
}

// Execute loads the plan's market data
func (uc *GetMarketDataUseCase) Execute(ctx context.Context, userID, planSID string) (*dto.MarketDataResponse, error) {
	p, err := uc.resolver.Execute(ctx, userID, planSID)
	if err != nil {
		return nil, err
	}

	data, err := uc.marketRepo.GetByPlan(ctx, p.ID())
	if err != nil {
		if errors.Is(err, market.ErrMarketDataNotFound) {
			return &dto.MarketDataResponse{}, nil
		}
		return nil, err
	}

	return dto.ToMarketDataResponse(data), nil
}
