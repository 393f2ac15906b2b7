package mappers

import (
	"github.com/mizan-app/mizan/internal/domain/finance"
	"github.com/mizan-app/mizan/internal/infrastructure/persistence/models"
)

// FinancialProjectionMapper provides methods for converting between domain and model
type FinancialProjectionMapper interface {
	ToDomain(model *models.FinancialProjectionModel) *finance.FinancialProjection
	ToModel(domain *finance.FinancialProjection) *models.FinancialProjectionModel
}

// FinancialProjectionMapperImpl implements FinancialProjectionMapper
type FinancialProjectionMapperImpl struct{}

// NewFinancialProjectionMapper creates a new FinancialProjectionMapper
func NewFinancialProjectionMapper() FinancialProjectionMapper {
	return &FinancialProjectionMapperImpl{}
}

// ToDomain converts a FinancialProjectionModel to a FinancialProjection domain entity
func (m *FinancialProjectionMapperImpl) ToDomain(model *models.FinancialProjectionModel) *finance.FinancialProjection {
	if model == nil {
		return nil
	}

	return finance.ReconstructFinancialProjection(
		model.ID,
		model.SID,
		model.BusinessPlanID,
		model.MonthlyOrders,
		model.AvgPrice,
		model.Year1Revenue,
		model.RevenueOverridden,
		model.Year2GrowthRate,
		model.Year3GrowthRate,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

// ToModel converts a FinancialProjection domain entity to a FinancialProjectionModel
func (m *FinancialProjectionMapperImpl) ToModel(domain *finance.FinancialProjection) *models.FinancialProjectionModel {
	if domain == nil {
		return nil
	}

	return &models.FinancialProjectionModel{
		ID:                domain.ID(),
		SID:               domain.SID(),
		BusinessPlanID:    domain.PlanID(),
		MonthlyOrders:     domain.MonthlyOrders(),
		AvgPrice:          domain.AvgPrice(),
		Year1Revenue:      domain.Year1Revenue(),
		RevenueOverridden: domain.RevenueOverridden(),
		Year2GrowthRate:   domain.Year2GrowthRate(),
		Year3GrowthRate:   domain.Year3GrowthRate(),
		CreatedAt:         domain.CreatedAt(),
		UpdatedAt:         domain.UpdatedAt(),
	}
}
