package mappers

import (
	"github.com/mizan-app/mizan/internal/domain/finance"
	"github.com/mizan-app/mizan/internal/infrastructure/persistence/models"
)

// FixedCostMapper provides methods for converting between domain and model
type FixedCostMapper interface {
	ToDomain(model *models.FixedCostModel) *finance.FixedCost
	ToModel(domain *finance.FixedCost) *models.FixedCostModel
	ToDomainList(modelList []*models.FixedCostModel) []*finance.FixedCost
}

// FixedCostMapperImpl implements FixedCostMapper
type FixedCostMapperImpl struct{}

// NewFixedCostMapper creates a new FixedCostMapper
func NewFixedCostMapper() FixedCostMapper {
	return &FixedCostMapperImpl{}
}

// ToDomain converts a FixedCostModel to a FixedCost domain entity
func (m *FixedCostMapperImpl) ToDomain(model *models.FixedCostModel) *finance.FixedCost {
	if model == nil {
		return nil
	}

	return finance.ReconstructFixedCost(
		model.ID,
		model.SID,
		model.BusinessPlanID,
		model.Name,
		model.MonthlyAmount,
		model.CreatedAt,
	)
}

// ToModel converts a FixedCost domain entity to a FixedCostModel
func (m *FixedCostMapperImpl) ToModel(domain *finance.FixedCost) *models.FixedCostModel {
	if domain == nil {
		return nil
	}

	return &models.FixedCostModel{
		ID:             domain.ID(),
		SID:            domain.SID(),
		BusinessPlanID: domain.PlanID(),
		Name:           domain.Name(),
		MonthlyAmount:  domain.MonthlyAmount(),
		CreatedAt:      domain.CreatedAt(),
	}
}

// ToDomainList converts a list of FixedCostModel to a list of FixedCost domain entities
func (m *FixedCostMapperImpl) ToDomainList(modelList []*models.FixedCostModel) []*finance.FixedCost {
	if modelList == nil {
		return nil
	}

	domains := make([]*finance.FixedCost, 0, len(modelList))
	for _, model := range modelList {
		if domain := m.ToDomain(model); domain != nil {
			domains = append(domains, domain)
		}
	}

	return domains
}
