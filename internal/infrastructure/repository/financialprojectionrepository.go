package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/mizan-app/mizan/internal/domain/finance"
	"github.com/mizan-app/mizan/internal/infrastructure/persistence/mappers"
	"github.com/mizan-app/mizan/internal/infrastructure/persistence/models"
	"github.com/mizan-app/mizan/internal/shared/logger"
)

// FinancialProjectionRepository implements finance.ProjectionRepository
type FinancialProjectionRepository struct {
	db     *gorm.DB
	logger logger.Interface
	mapper mappers.FinancialProjectionMapper
}

// NewFinancialProjectionRepository creates a new FinancialProjectionRepository
func NewFinancialProjectionRepository(db *gorm.DB, logger logger.Interface) finance.ProjectionRepository {
	return &FinancialProjectionRepository{
		db:     db,
		logger: logger,
		mapper: mappers.NewFinancialProjectionMapper(),
	}
}

// Create persists a new financial projection
func (r *FinancialProjectionRepository) Create(ctx context.Context, projection *finance.FinancialProjection) error {
	model := r.mapper.ToModel(projection)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Error("failed to create financial projection", "plan_id", projection.PlanID(), "error", err)
		return fmt.Errorf("failed to create financial projection: %w", err)
	}

	projection.SetID(model.ID)
	return nil
}

// GetByPlan retrieves the financial projection of a plan
func (r *FinancialProjectionRepository) GetByPlan(ctx context.Context, planID uint) (*finance.FinancialProjection, error) {
	var model models.FinancialProjectionModel

	err := r.db.WithContext(ctx).
		Where("business_plan_id = ?", planID).
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, finance.ErrProjectionNotFound
		}
		r.logger.Error("failed to get financial projection by plan", "plan_id", planID, "error", err)
		return nil, fmt.Errorf("failed to get financial projection by plan: %w", err)
	}

	return r.mapper.ToDomain(&model), nil
}

// Update persists changes to an existing financial projection
func (r *FinancialProjectionRepository) Update(ctx context.Context, projection *finance.FinancialProjection) error {
	model := r.mapper.ToModel(projection)

	result := r.db.WithContext(ctx).
		Model(&models.FinancialProjectionModel{}).
		Where("id = ?", projection.ID()).
		Updates(map[string]interface{}{
			"monthly_orders":     model.MonthlyOrders,
			"avg_price":          model.AvgPrice,
			"year_1_revenue":     model.Year1Revenue,
			"revenue_overridden": model.RevenueOverridden,
			"year_2_growth_rate": model.Year2GrowthRate,
			"year_3_growth_rate": model.Year3GrowthRate,
			"updated_at":         model.UpdatedAt,
		})
	if result.Error != nil {
		r.logger.Error("failed to update financial projection", "plan_id", projection.PlanID(), "error", result.Error)
		return fmt.Errorf("failed to update financial projection: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return finance.ErrProjectionNotFound
	}

	return nil
}
