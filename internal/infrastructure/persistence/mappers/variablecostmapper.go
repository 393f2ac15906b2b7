package mappers

import (
	"github.com/mizan-app/mizan/internal/domain/finance"
	"github.com/mizan-app/mizan/internal/infrastructure/persistence/models"
)

// VariableCostMapper provides methods for converting between domain and model
type VariableCostMapper interface {
	ToDomain(model *models.VariableCostModel) *finance.VariableCost
	ToModel(domain *finance.VariableCost) *models.VariableCostModel
	ToDomainList(modelList []*models.VariableCostModel) []*finance.VariableCost
}

// VariableCostMapperImpl implements VariableCostMapper
type VariableCostMapperImpl struct{}

// NewVariableCostMapper creates a new VariableCostMapper
func NewVariableCostMapper() VariableCostMapper {
	return &VariableCostMapperImpl{}
}

// ToDomain converts a VariableCostModel to a VariableCost domain entity
func (m *VariableCostMapperImpl) ToDomain(model *models.VariableCostModel) *finance.VariableCost {
	if model == nil {
		return nil
	}

	return finance.ReconstructVariableCost(
		model.ID,
		model.SID,
		model.BusinessPlanID,
		model.Name,
		model.RateOfSales,
		model.CreatedAt,
	)
}

// ToModel converts a VariableCost domain entity to a VariableCostModel
func (m *VariableCostMapperImpl) ToModel(domain *finance.VariableCost) *models.VariableCostModel {
	if domain == nil {
		return nil
	}

	return &models.VariableCostModel{
		ID:             domain.ID(),
		SID:            domain.SID(),
		BusinessPlanID: domain.PlanID(),
		Name:           domain.Name(),
		RateOfSales:    domain.RateOfSales(),
		CreatedAt:      domain.CreatedAt(),
	}
}

// ToDomainList converts a list of VariableCostModel to a list of VariableCost domain entities
func (m *VariableCostMapperImpl) ToDomainList(modelList []*models.VariableCostModel) []*finance.VariableCost {
	if modelList == nil {
		return nil
	}

	domains := make([]*finance.VariableCost, 0, len(modelList))
	for _, model := range modelList {
		if domain := m.ToDomain(model); domain != nil {
			domains = append(domains, domain)
		}
	}

	return domains
}
