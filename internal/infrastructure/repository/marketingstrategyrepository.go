package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/mizan-app/mizan/internal/domain/marketing"
	"github.com/mizan-app/mizan/internal/infrastructure/persistence/mappers"
	"github.com/mizan-app/mizan/internal/infrastructure/persistence/models"
	"github.com/mizan-app/mizan/internal/shared/logger"
)

// MarketingStrategyRepository implements marketing.Repository
type MarketingStrategyRepository struct {
	db     *gorm.DB
	logger logger.Interface
	mapper mappers.MarketingStrategyMapper
}

// NewMarketingStrategyRepository creates a new MarketingStrategyRepository
func NewMarketingStrategyRepository(db *gorm.DB, logger logger.Interface) marketing.Repository {
	return &MarketingStrategyRepository{
		db:     db,
		logger: logger,
		mapper: mappers.NewMarketingStrategyMapper(),
	}
}

// Create persists a new marketing strategy
func (r *MarketingStrategyRepository) Create(ctx context.Context, strategy *marketing.Strategy) error {
	model := r.mapper.ToModel(strategy)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Error("failed to create marketing strategy", "plan_id", strategy.PlanID(), "error", err)
		return fmt.Errorf("failed to create marketing strategy: %w", err)
	}

	strategy.SetID(model.ID)
	return nil
}

// GetByPlan retrieves the marketing strategy of a plan
func (r *MarketingStrategyRepository) GetByPlan(ctx context.Context, planID uint) (*marketing.Strategy, error) {
	var model models.MarketingStrategyModel

	err := r.db.WithContext(ctx).
		Where("business_plan_id = ?", planID).
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, marketing.ErrStrategyNotFound
		}
		r.logger.Error("failed to get marketing strategy by plan", "plan_id", planID, "error", err)
		return nil, fmt.Errorf("failed to get marketing strategy by plan: %w", err)
	}

	strategy, err := r.mapper.ToDomain(&model)
	if err != nil {
		r.logger.Error("failed to map marketing strategy", "plan_id", planID, "error", err)
		return nil, err
	}
	return strategy, nil
}

// Update persists changes to an existing marketing strategy
func (r *MarketingStrategyRepository) Update(ctx context.Context, strategy *marketing.Strategy) error {
	model := r.mapper.ToModel(strategy)

	result := r.db.WithContext(ctx).
		Model(&models.MarketingStrategyModel{}).
		Where("id = ?", strategy.ID()).
		Updates(map[string]interface{}{
			"sales_strategy":    model.SalesStrategy,
			"digital_marketing": model.DigitalMarketing,
			"channels":          model.Channels,
			"updated_at":        model.UpdatedAt,
		})
	if result.Error != nil {
		r.logger.Error("failed to update marketing strategy", "plan_id", strategy.PlanID(), "error", result.Error)
		return fmt.Errorf("failed to update marketing strategy: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return marketing.ErrStrategyNotFound
	}

	return nil
}
