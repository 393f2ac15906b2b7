package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/mizan-app/mizan/internal/domain/swot"
	"github.com/mizan-app/mizan/internal/infrastructure/persistence/mappers"
	"github.com/mizan-app/mizan/internal/infrastructure/persistence/models"
	"github.com/mizan-app/mizan/internal/shared/logger"
)

// SwotAnalysisRepository implements swot.Repository
type SwotAnalysisRepository struct {
	db     *gorm.DB
	logger logger.Interface
	mapper mappers.SwotAnalysisMapper
}

// NewSwotAnalysisRepository creates a new SwotAnalysisRepository
func NewSwotAnalysisRepository(db *gorm.DB, logger logger.Interface) swot.Repository {
	return &SwotAnalysisRepository{
		db:     db,
		logger: logger,
		mapper: mappers.NewSwotAnalysisMapper(),
	}
}

// Create persists a new SWOT analysis
func (r *SwotAnalysisRepository) Create(ctx context.Context, analysis *swot.Analysis) error {
	model := r.mapper.ToModel(analysis)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Error("failed to create swot analysis", "plan_id", analysis.PlanID(), "error", err)
		return fmt.Errorf("failed to create swot analysis: %w", err)
	}

	analysis.SetID(model.ID)
	return nil
}

// GetByPlan retrieves the SWOT analysis of a plan
func (r *SwotAnalysisRepository) GetByPlan(ctx context.Context, planID uint) (*swot.Analysis, error) {
	var model models.SwotAnalysisModel

	err := r.db.WithContext(ctx).
		Where("business_plan_id = ?", planID).
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, swot.ErrSwotNotFound
		}
		r.logger.Error("failed to get swot analysis by plan", "plan_id", planID, "error", err)
		return nil, fmt.Errorf("failed to get swot analysis by plan: %w", err)
	}

	analysis, err := r.mapper.ToDomain(&model)
	if err != nil {
		r.logger.Error("failed to map swot analysis", "plan_id", planID, "error", err)
		return nil, err
	}
	return analysis, nil
}

// Update persists changes to an existing SWOT analysis
func (r *SwotAnalysisRepository) Update(ctx context.Context, analysis *swot.Analysis) error {
	model := r.mapper.ToModel(analysis)

	result := r.db.WithContext(ctx).
		Model(&models.SwotAnalysisModel{}).
		Where("id = ?", analysis.ID()).
		Updates(map[string]interface{}{
			"strengths":     model.Strengths,
			"weaknesses":    model.Weaknesses,
			"opportunities": model.Opportunities,
			"threats":       model.Threats,
			"updated_at":    model.UpdatedAt,
		})
	if result.Error != nil {
		r.logger.Error("failed to update swot analysis", "plan_id", analysis.PlanID(), "error", result.Error)
		return fmt.Errorf("failed to update swot analysis: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return swot.ErrSwotNotFound
	}

	return nil
}
