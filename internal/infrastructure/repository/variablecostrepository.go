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

// VariableCostRepository implements finance.VariableCostRepository
type VariableCostRepository struct {
	db     *gorm.DB
	logger logger.Interface
	mapper mappers.VariableCostMapper
}

// NewVariableCostRepository creates a new VariableCostRepository
func NewVariableCostRepository(db *gorm.DB, logger logger.Interface) finance.VariableCostRepository {
	return &VariableCostRepository{
		db:     db,
		logger: logger,
		mapper: mappers.NewVariableCostMapper(),
	}
}

// Create persists a new variable cost
func (r *VariableCostRepository) Create(ctx context.Context, cost *finance.VariableCost) error {
	model := r.mapper.ToModel(cost)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Error("failed to create variable cost", "plan_id", cost.PlanID(), "error", err)
		return fmt.Errorf("failed to create variable cost: %w", err)
	}

	cost.SetID(model.ID)
	return nil
}

// GetBySID retrieves one variable cost of a plan by its public identifier
func (r *VariableCostRepository) GetBySID(ctx context.Context, planID uint, sid string) (*finance.VariableCost, error) {
	var model models.VariableCostModel

	err := r.db.WithContext(ctx).
		Where("business_plan_id = ? AND sid = ?", planID, sid).
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, finance.ErrVariableCostNotFound
		}
		r.logger.Error("failed to get variable cost by sid", "plan_id", planID, "sid", sid, "error", err)
		return nil, fmt.Errorf("failed to get variable cost by sid: %w", err)
	}

	return r.mapper.ToDomain(&model), nil
}

// ListByPlan retrieves all variable costs of a plan in insertion order
func (r *VariableCostRepository) ListByPlan(ctx context.Context, planID uint) ([]*finance.VariableCost, error) {
	var modelList []*models.VariableCostModel

	err := r.db.WithContext(ctx).
		Where("business_plan_id = ?", planID).
		Order("id ASC").
		Find(&modelList).Error
	if err != nil {
		r.logger.Error("failed to list variable costs", "plan_id", planID, "error", err)
		return nil, fmt.Errorf("failed to list variable costs: %w", err)
	}

	return r.mapper.ToDomainList(modelList), nil
}

// Update persists changes to an existing variable cost
func (r *VariableCostRepository) Update(ctx context.Context, cost *finance.VariableCost) error {
	model := r.mapper.ToModel(cost)

	result := r.db.WithContext(ctx).
		Model(&models.VariableCostModel{}).
		Where("id = ?", cost.ID()).
		Updates(map[string]interface{}{
			"name":          model.Name,
			"rate_of_sales": model.RateOfSales,
		})
	if result.Error != nil {
		r.logger.Error("failed to update variable cost", "sid", cost.SID(), "error", result.Error)
		return fmt.Errorf("failed to update variable cost: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return finance.ErrVariableCostNotFound
	}

	return nil
}

// Delete removes one variable cost of a plan by its public identifier
func (r *VariableCostRepository) Delete(ctx context.Context, planID uint, sid string) error {
	result := r.db.WithContext(ctx).
		Where("business_plan_id = ? AND sid = ?", planID, sid).
		Delete(&models.VariableCostModel{})
	if result.Error != nil {
		r.logger.Error("failed to delete variable cost", "plan_id", planID, "sid", sid, "error", result.Error)
		return fmt.Errorf("failed to delete variable cost: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return finance.ErrVariableCostNotFound
	}

	return nil
}
