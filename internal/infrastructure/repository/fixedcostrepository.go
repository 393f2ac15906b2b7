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

// FixedCostRepository implements finance.FixedCostRepository
type FixedCostRepository struct {
	db     *gorm.DB
	logger logger.Interface
	mapper mappers.FixedCostMapper
}

// NewFixedCostRepository creates a new FixedCostRepository
func NewFixedCostRepository(db *gorm.DB, logger logger.Interface) finance.FixedCostRepository {
	return &FixedCostRepository{
		db:     db,
		logger: logger,
		mapper: mappers.NewFixedCostMapper(),
	}
}

// Create persists a new fixed cost
func (r *FixedCostRepository) Create(ctx context.Context, cost *finance.FixedCost) error {
	model := r.mapper.ToModel(cost)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Error("failed to create fixed cost", "plan_id", cost.PlanID(), "error", err)
		return fmt.Errorf("failed to create fixed cost: %w", err)
	}

	cost.SetID(model.ID)
	return nil
}

// GetBySID retrieves one fixed cost of a plan by its public identifier
func (r *FixedCostRepository) GetBySID(ctx context.Context, planID uint, sid string) (*finance.FixedCost, error) {
	var model models.FixedCostModel

	err := r.db.WithContext(ctx).
		Where("business_plan_id = ? AND sid = ?", planID, sid).
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, finance.ErrFixedCostNotFound
		}
		r.logger.Error("failed to get fixed cost by sid", "plan_id", planID, "sid", sid, "error", err)
		return nil, fmt.Errorf("failed to get fixed cost by sid: %w", err)
	}

	return r.mapper.ToDomain(&model), nil
}

// ListByPlan retrieves all fixed costs of a plan in insertion order
func (r *FixedCostRepository) ListByPlan(ctx context.Context, planID uint) ([]*finance.FixedCost, error) {
	var modelList []*models.FixedCostModel

	err := r.db.WithContext(ctx).
		Where("business_plan_id = ?", planID).
		Order("id ASC").
		Find(&modelList).Error
	if err != nil {
		r.logger.Error("failed to list fixed costs", "plan_id", planID, "error", err)
		return nil, fmt.Errorf("failed to list fixed costs: %w", err)
	}

	return r.mapper.ToDomainList(modelList), nil
}

// Update persists changes to an existing fixed cost
func (r *FixedCostRepository) Update(ctx context.Context, cost *finance.FixedCost) error {
	model := r.mapper.ToModel(cost)

	result := r.db.WithContext(ctx).
		Model(&models.FixedCostModel{}).
		Where("id = ?", cost.ID()).
		Updates(map[string]interface{}{
			"name":           model.Name,
			"monthly_amount": model.MonthlyAmount,
		})
	if result.Error != nil {
		r.logger.Error("failed to update fixed cost", "sid", cost.SID(), "error", result.Error)
		return fmt.Errorf("failed to update fixed cost: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return finance.ErrFixedCostNotFound
	}

	return nil
}

// Delete removes one fixed cost of a plan by its public identifier
func (r *FixedCostRepository) Delete(ctx context.Context, planID uint, sid string) error {
	result := r.db.WithContext(ctx).
		Where("business_plan_id = ? AND sid = ?", planID, sid).
		Delete(&models.FixedCostModel{})
	if result.Error != nil {
		r.logger.Error("failed to delete fixed cost", "plan_id", planID, "sid", sid, "error", result.Error)
		return fmt.Errorf("failed to delete fixed cost: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return finance.ErrFixedCostNotFound
	}

	return nil
}
