package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/mizan-app/mizan/internal/domain/plan"
	"github.com/mizan-app/mizan/internal/infrastructure/persistence/mappers"
	"github.com/mizan-app/mizan/internal/infrastructure/persistence/models"
	"github.com/mizan-app/mizan/internal/shared/logger"
)

// BusinessPlanRepository implements plan.Repository
type BusinessPlanRepository struct {
	db     *gorm.DB
	logger logger.Interface
	mapper mappers.BusinessPlanMapper
}

// NewBusinessPlanRepository creates a new BusinessPlanRepository
func NewBusinessPlanRepository(db *gorm.DB, logger logger.Interface) plan.Repository {
	return &BusinessPlanRepository{
		db:     db,
		logger: logger,
		mapper: mappers.NewBusinessPlanMapper(),
	}
}

// Create persists a new business plan
func (r *BusinessPlanRepository) Create(ctx context.Context, p *plan.BusinessPlan) error {
	model := r.mapper.ToModel(p)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Error("failed to create business plan", "sid", p.SID(), "error", err)
		return fmt.Errorf("failed to create business plan: %w", err)
	}

	p.SetID(model.ID)
	return nil
}

// GetBySID retrieves a business plan by its public identifier
func (r *BusinessPlanRepository) GetBySID(ctx context.Context, sid string) (*plan.BusinessPlan, error) {
	var model models.BusinessPlanModel

	err := r.db.WithContext(ctx).
		Where("sid = ?", sid).
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, plan.ErrPlanNotFound
		}
		r.logger.Error("failed to get business plan by sid", "sid", sid, "error", err)
		return nil, fmt.Errorf("failed to get business plan by sid: %w", err)
	}

	return r.mapper.ToDomain(&model), nil
}

// GetByOwner retrieves the owner's most recent business plan
func (r *BusinessPlanRepository) GetByOwner(ctx context.Context, ownerUserID string) (*plan.BusinessPlan, error) {
	var model models.BusinessPlanModel

	err := r.db.WithContext(ctx).
		Where("owner_user_id = ?", ownerUserID).
		Order("created_at DESC").
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, plan.ErrPlanNotFound
		}
		r.logger.Error("failed to get business plan by owner", "owner_user_id", ownerUserID, "error", err)
		return nil, fmt.Errorf("failed to get business plan by owner: %w", err)
	}

	return r.mapper.ToDomain(&model), nil
}

// Update persists changes to an existing business plan
func (r *BusinessPlanRepository) Update(ctx context.Context, p *plan.BusinessPlan) error {
	model := r.mapper.ToModel(p)

	result := r.db.WithContext(ctx).
		Model(&models.BusinessPlanModel{}).
		Where("id = ?", p.ID()).
		Updates(map[string]interface{}{
			"project_name": model.ProjectName,
			"sector":       model.Sector,
			"city_region":  model.CityRegion,
			"language":     model.Language,
			"updated_at":   model.UpdatedAt,
		})
	if result.Error != nil {
		r.logger.Error("failed to update business plan", "sid", p.SID(), "error", result.Error)
		return fmt.Errorf("failed to update business plan: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return plan.ErrPlanNotFound
	}

	return nil
}
