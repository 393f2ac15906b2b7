package usecases

import (
	"context"
	"errors"
	"fmt"

	"github.com/mizan-app/mizan/internal/application/marketing/dto"
	planusecases "github.com/mizan-app/mizan/internal/application/plan/usecases"
	"github.com/mizan-app/mizan/internal/domain/marketing"
	"github.com/mizan-app/mizan/internal/shared/logger"
)

// UpdateMarketingUseCase upserts the marketing section of a plan
type UpdateMarketingUseCase struct {
	marketingRepo marketing.Repository
	resolver      *planusecases.ResolvePlanUseCase
	logger        logger.Interface
}

// NewUpdateMarketingUseCase creates a new UpdateMarketingUseCase
func NewUpdateMarketingUseCase(marketingRepo marketing.Repository, resolver *planusecases.ResolvePlanUseCase, logger logger.Interface) *UpdateMarketingUseCase {
	return &UpdateMarketingUseCase{
		marketingRepo: marketingRepo,
		resolver:      resolver,
		logger:        logger,
	}
}

// Execute applies the requested field changes, creating the record on
// first write. A nil channel list keeps the stored channels.
func (uc *UpdateMarketingUseCase) Execute(ctx context.Context, userID, planSID string, req dto.UpdateMarketingRequest) (*dto.MarketingResponse, error) {
	p, err := uc.resolver.Execute(ctx, userID, planSID)
	if err != nil {
		return nil, err
	}

	strategy, err := uc.marketingRepo.GetByPlan(ctx, p.ID())
	created := false
	if err != nil {
		if !errors.Is(err, marketing.ErrStrategyNotFound) {
			return nil, err
		}
		strategy, err = marketing.NewStrategy(p.ID())
		if err != nil {
			return nil, fmt.Errorf("failed to build marketing strategy: %w", err)
		}
		created = true
	}

	salesStrategy := strategy.SalesStrategy()
	digitalMarketing := strategy.DigitalMarketing()
	channels := strategy.Channels()
	if req.SalesStrategy != nil {
		salesStrategy = *req.SalesStrategy
	}
	if req.DigitalMarketing != nil {
		digitalMarketing = *req.DigitalMarketing
	}
	if req.Channels != nil {
		channels = req.Channels
	}
	strategy.Update(salesStrategy, digitalMarketing, channels)

	if created {
		err = uc.marketingRepo.Create(ctx, strategy)
	} else {
		err = uc.marketingRepo.Update(ctx, strategy)
	}
	if err != nil {
		uc.logger.Errorw("failed to save marketing strategy", "plan_sid", planSID, "error", err)
		return nil, fmt.Errorf("failed to save marketing strategy: %w", err)
	}

	return dto.ToMarketingResponse(strategy), nil
}
