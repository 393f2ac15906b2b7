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

// CompetitorRepository implements market.CompetitorRepository
type CompetitorRepository struct {
	db     *gorm.DB
	logger logger.Interface
	mapper mappers.CompetitorMapper
}

// NewCompetitorRepository creates a new CompetitorRepository
func NewCompetitorRepository(db *gorm.DB, logger logger.Interface) market.CompetitorRepository {
	return &CompetitorRepository{
		db:     db,
		logger: logger,
		mapper: mappers.NewCompetitorMapper(),
	}
}

// Create persists a new competitor
func (r *CompetitorRepository) Create(ctx context.Context, competitor *market.Competitor) error {
	model := r.mapper.ToModel(competitor)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Error("failed to create competitor", "plan_id", competitor.PlanID(), "error", err)
		return fmt.Errorf("failed to create competitor: %w", err)
	}

	competitor.SetID(model.ID)
	return nil
}

// GetBySID retrieves one competitor of a plan by its public identifier
func (r *CompetitorRepository) GetBySID(ctx context.Context, planID uint, sid string) (*market.Competitor, error) {
	var model models.CompetitorModel

	err := r.db.WithContext(ctx).
		Where("business_plan_id = ? AND sid = ?", planID, sid).
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, market.ErrCompetitorNotFound
		}
		r.logger.Error("failed to get competitor by sid", "plan_id", planID, "sid", sid, "error", err)
		return nil, fmt.Errorf("failed to get competitor by sid: %w", err)
	}

	return r.mapper.ToDomain(&model), nil
}

// ListByPlan retrieves all competitors of a plan in insertion order
func (r *CompetitorRepository) ListByPlan(ctx context.Context, planID uint) ([]*market.Competitor, error) {
	var modelList []*models.CompetitorModel

	err := r.db.WithContext(ctx).
		Where("business_plan_id = ?", planID).
		Order("id ASC").
		Find(&modelList).Error
	if err != nil {
		r.logger.Error("failed to list competitors", "plan_id", planID, "error", err)
		return nil, fmt.Errorf("failed to list competitors: %w", err)
	}

	return r.mapper.ToDomainList(modelList), nil
}

// CountByPlan returns the number of competitors recorded for a plan
func (r *CompetitorRepository) CountByPlan(ctx context.Context, planID uint) (int64, error) {
	var count int64

	err := r.db.WithContext(ctx).
		Model(&models.CompetitorModel{}).
		Where("business_plan_id = ?", planID).
		Count(&count).Error
	if err != nil {
		r.logger.Error("failed to count competitors", "plan_id", planID, "error", err)
		return 0, fmt.Errorf("failed to count competitors: %w", err)
	}

	return count, nil
}

// Update persists changes to an existing competitor
func (r *CompetitorRepository) Update(ctx context.Context, competitor *market.Competitor) error {
	model := r.mapper.ToModel(competitor)

	result := r.db.WithContext(ctx).
		Model(&models.CompetitorModel{}).
		Where("id = ?", competitor.ID()).
		Updates(map[string]interface{}{
			"name":            model.Name,
			"price":           model.Price,
			"advantages":      model.Advantages,
			"weaknesses":      model.Weaknesses,
			"differentiation": model.Differentiation,
		})
	if result.Error != nil {
		r.logger.Error("failed to update competitor", "sid", competitor.SID(), "error", result.Error)
		return fmt.Errorf("failed to update competitor: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return market.ErrCompetitorNotFound
	}

	return nil
}

// Delete removes one competitor of a plan by its public identifier
func (r *CompetitorRepository) Delete(ctx context.Context, planID uint, sid string) error {
	result := r.db.WithContext(ctx).
		Where("business_plan_id = ? AND sid = ?", planID, sid).
		Delete(&models.CompetitorModel{})
	if result.Error != nil {
		r.logger.Error("failed to delete competitor", "plan_id", planID, "sid", sid, "error", result.Error)
		return fmt.Errorf("failed to delete competitor: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return market.ErrCompetitorNotFound
	}

	return nil
}
