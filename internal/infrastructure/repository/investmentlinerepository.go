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

// InvestmentLineRepository implements finance.InvestmentRepository
type InvestmentLineRepository struct {
	db     *gorm.DB
	logger logger.Interface
	mapper mappers.InvestmentLineMapper
}

// NewInvestmentLineRepository creates a new InvestmentLineRepository
func NewInvestmentLineRepository(db *gorm.DB, logger logger.Interface) finance.InvestmentRepository {
	return &InvestmentLineRepository{
		db:     db,
		logger: logger,
		mapper: mappers.NewInvestmentLineMapper(),
	}
}

// Create persists a new investment line
func (r *InvestmentLineRepository) Create(ctx context.Context, line *finance.InvestmentLine) error {
	model := r.mapper.ToModel(line)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Error("failed to create investment line", "plan_id", line.PlanID(), "error", err)
		return fmt.Errorf("failed to create investment line: %w", err)
	}

	line.SetID(model.ID)
	return nil
}

// GetBySID retrieves one investment line of a plan by its public identifier
func (r *InvestmentLineRepository) GetBySID(ctx context.Context, planID uint, sid string) (*finance.InvestmentLine, error) {
	var model models.InvestmentLineModel

	err := r.db.WithContext(ctx).
		Where("business_plan_id = ? AND sid = ?", planID, sid).
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, finance.ErrInvestmentLineNotFound
		}
		r.logger.Error("failed to get investment line by sid", "plan_id", planID, "sid", sid, "error", err)
		return nil, fmt.Errorf("failed to get investment line by sid: %w", err)
	}

	return r.mapper.ToDomain(&model), nil
}

// ListByPlan retrieves all investment lines of a plan in insertion order
func (r *InvestmentLineRepository) ListByPlan(ctx context.Context, planID uint) ([]*finance.InvestmentLine, error) {
	var modelList []*models.InvestmentLineModel

	err := r.db.WithContext(ctx).
		Where("business_plan_id = ?", planID).
		Order("id ASC").
		Find(&modelList).Error
	if err != nil {
		r.logger.Error("failed to list investment lines", "plan_id", planID, "error", err)
		return nil, fmt.Errorf("failed to list investment lines: %w", err)
	}

	return r.mapper.ToDomainList(modelList), nil
}

// Update persists changes to an existing investment line, including the
// recomputed total columns
func (r *InvestmentLineRepository) Update(ctx context.Context, line *finance.InvestmentLine) error {
	model := r.mapper.ToModel(line)

	result := r.db.WithContext(ctx).
		Model(&models.InvestmentLineModel{}).
		Where("id = ?", line.ID()).
		Updates(map[string]interface{}{
			"name":                model.Name,
			"quantity":            model.Quantity,
			"unit_price_excl_tax": model.UnitPriceExclTax,
			"tax_rate":            model.TaxRate,
			"total_excl_tax":      model.TotalExclTax,
			"tax_amount":          model.TaxAmount,
			"total_incl_tax":      model.TotalInclTax,
		})
	if result.Error != nil {
		r.logger.Error("failed to update investment line", "sid", line.SID(), "error", result.Error)
		return fmt.Errorf("failed to update investment line: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return finance.ErrInvestmentLineNotFound
	}

	return nil
}

// Delete removes one investment line of a plan by its public identifier
func (r *InvestmentLineRepository) Delete(ctx context.Context, planID uint, sid string) error {
	result := r.db.WithContext(ctx).
		Where("business_plan_id = ? AND sid = ?", planID, sid).
		Delete(&models.InvestmentLineModel{})
	if result.Error != nil {
		r.logger.Error("failed to delete investment line", "plan_id", planID, "sid", sid, "error", result.Error)
		return fmt.Errorf("failed to delete investment line: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return finance.ErrInvestmentLineNotFound
	}

	return nil
}
