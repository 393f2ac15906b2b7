package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/mizan-app/mizan/internal/domain/market"
	"github.com/mizan-app/mizan/internal/infrastructure/persistence/mappers"
	"github.com/mizan-app/mizan/internal/infrastructure/persistence/models"
	"github.com/mizan-app/mizan/internal/shared/logger"
)

// MarketDataRepository implements market.MarketDataRepository
type MarketDataRepository struct {
	db     *gorm.DB
	logger logger.Interface
	mapper mappers.MarketDataMapper
}

// NewMarketDataRepository creates a new MarketDataRepository
func NewMarketDataRepository(db *gorm.DB, logger logger.Interface) market.MarketDataRepository {
	return &MarketDataRepository{
		db:     db,
		logger: logger,
		mapper: mappers.NewMarketDataMapper(),
	}
}

// Create persists a new market data record
func (r *MarketDataRepository) Create(ctx context.Context, data *market.MarketData) error {
	model := r.mapper.ToModel(data)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Error("failed to create market data", "plan_id", data.PlanID(), "error", err)
		return fmt.Errorf("failed to create market data: %w", err)
	}

	data.SetID(model.ID)
	return nil
}

// GetByPlan retrieves the market data record of a plan
func (r *MarketDataRepository) GetByPlan(ctx context.Context, planID uint) (*market.MarketData, error) {
	var model models.MarketDataModel

	err := r.db.WithContext(ctx).
		Where("business_plan_id = ?", planID).
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, market.ErrMarketDataNotFound
		}
		r.logger.Error("failed to get market data by plan", "plan_id", planID, "error", err)
		return nil, fmt.Errorf("failed to get market data by plan: %w", err)
	}

	return r.mapper.ToDomain(&model), nil
}

// Update persists changes to an existing market data record
func (r *MarketDataRepository) Update(ctx context.Context, data *market.MarketData) error {
	model := r.mapper.ToModel(data)

	result := r.db.WithContext(ctx).
		Model(&models.MarketDataModel{}).
		Where("id = ?", data.ID()).
		Updates(map[string]interface{}{
			"target_customer":  model.TargetCustomer,
			"market_size":      model.MarketSize,
			"problem_solution": model.ProblemSolution,
			"updated_at":       model.UpdatedAt,
		})
	if result.Error != nil {
		r.logger.Error("failed to update market data", "plan_id", data.PlanID(), "error", result.Error)
		return fmt.Errorf("failed to update market data: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return market.ErrMarketDataNotFound
	}

	return nil
}
