package mappers

import (
	"github.com/mizan-app/mizan/internal/domain/plan"
	"github.com/mizan-app/mizan/internal/infrastructure/persistence/models"
)

// BusinessPlanMapper provides methods for converting between domain and model
type BusinessPlanMapper interface {
	ToDomain(model *models.BusinessPlanModel) *plan.BusinessPlan
	ToModel(domain *plan.BusinessPlan) *models.BusinessPlanModel
	ToDomainList(modelList []*models.BusinessPlanModel) []*plan.BusinessPlan
}

// BusinessPlanMapperImpl implements BusinessPlanMapper
type BusinessPlanMapperImpl struct{}

// NewBusinessPlanMapper creates a new BusinessPlanMapper
func NewBusinessPlanMapper() BusinessPlanMapper {
	return &BusinessPlanMapperImpl{}
}

// ToDomain converts a BusinessPlanModel to a BusinessPlan domain entity
func (m *BusinessPlanMapperImpl) ToDomain(model *models.BusinessPlanModel) *plan.BusinessPlan {
	if model == nil {
		return nil
	}

	return plan.ReconstructBusinessPlan(
		model.ID,
		model.SID,
		model.OwnerUserID,
		model.ProjectName,
		model.Sector,
		model.CityRegion,
		model.Language,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

// ToModel converts a BusinessPlan domain entity to a BusinessPlanModel
func (m *BusinessPlanMapperImpl) ToModel(domain *plan.BusinessPlan) *models.BusinessPlanModel {
	if domain == nil {
		return nil
	}

	return &models.BusinessPlanModel{
		ID:          domain.ID(),
		SID:         domain.SID(),
		OwnerUserID: domain.OwnerUserID(),
		ProjectName: domain.ProjectName(),
		Sector:      domain.Sector(),
		CityRegion:  domain.CityRegion(),
		Language:    domain.Language(),
		CreatedAt:   domain.CreatedAt(),
		UpdatedAt:   domain.UpdatedAt(),
	}
}

// ToDomainList converts a list of BusinessPlanModel to a list of BusinessPlan domain entities
func (m *BusinessPlanMapperImpl) ToDomainList(modelList []*models.BusinessPlanModel) []*plan.BusinessPlan {
	if modelList == nil {
		return nil
	}

	domains := make([]*plan.BusinessPlan, 0, len(modelList))
	for _, model := range modelList {
		if domain := m.ToDomain(model); domain != nil {
			domains = append(domains, domain)
		}
	}

	return domains
}
