package usecases

import (
	"context"
	"errors"
	"fmt"

	"github.com/mizan-app/mizan/internal/application/market/dto"
	planusecases "github.com/mizan-app/mizan/internal/application/plan/usecases"
	"github.com/mizan-app/mizan/internal/domain/market"
	"github.com/mizan-app/mizan/internal/shared/logger"
)

// UpdateMarketDataUseCase upserts the market section of a plan
type UpdateMarketDataUseCase struct {
	marketRepo market.MarketDataRepository
	resolver   *planusecases.ResolvePlanUseCase
	logger     logger.Interface
}

// NewUpdateMarketDataUseCase creates a new UpdateMarketDataUseCase
func NewUpdateMarketDataUseCase(marketRepo market.MarketDataRepository, resolver *planusecases.ResolvePlanUseCase, logger logger.Interface) *UpdateMarketDataUseCase {
	return &UpdateMarketDataUseCase{
		marketRepo: marketRepo,
		resolver:   resolver,
		logger:     logger,
	}
}

// Execute applies the requested field changes, creating the record on
// first write
func (uc *UpdateMarketDataUseCase) Execute(ctx context.Context, userID, planSID string, req dto.UpdateMarketDataRequest) (*dto.MarketDataResponse, error) {
	p, err := uc.resolver.Execute(ctx, userID, planSID)
	if err != nil {
		return nil, err
	}

	data, err := uc.marketRepo.GetByPlan(ctx, p.ID())
	created := false
	if err != nil {
		if !errors.Is(err, market.ErrMarketDataNotFound) {
			return nil, err
		}
		data, err = market.NewMarketData(p.ID())
		if err != nil {
			return nil, fmt.Errorf("failed to build market data: %w", err)
		}
		created = true
	}

	targetCustomer := data.TargetCustomer()
	marketSize := data.MarketSize()
	problemSolution := data.ProblemSolution()
	if req.TargetCustomer != nil {
		targetCustomer = *req.TargetCustomer
	}
	if req.MarketSize != nil {
		marketSize = *req.MarketSize
	}
	if req.ProblemSolution != nil {
		problemSolution = *req.ProblemSolution
	}
	data.Update(targetCustomer, marketSize, problemSolution)

	if created {
		err = uc.marketRepo.Create(ctx, data)
	} else {
		err = uc.marketRepo.Update(ctx, data)
	}
	if err != nil {
		uc.logger.Errorw("failed to save market data", "plan_sid", planSID, "error", err)
		return nil, fmt.Errorf("failed to save market data: %w", err)
	}

	return dto.ToMarketDataResponse(data), nil
}
