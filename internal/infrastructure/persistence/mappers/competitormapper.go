package mappers

import (
	"github.com/mizan-app/mizan/internal/domain/market"
	"github.com/mizan-app/mizan/internal/infrastructure/persistence/models"
)

// CompetitorMapper provides methods for converting between domain and model
type CompetitorMapper interface {
	ToDomain(model *models.CompetitorModel) *market.Competitor
	ToModel(domain *market.Competitor) *models.CompetitorModel
	ToDomainList(modelList []*models.CompetitorModel) []*market.Competitor
}

// CompetitorMapperImpl implements CompetitorMapper
type CompetitorMapperImpl struct{}

// NewCompetitorMapper creates a new CompetitorMapper
func NewCompetitorMapper() CompetitorMapper {
	return &CompetitorMapperImpl{}
}

// ToDomain converts a CompetitorModel to a Competitor domain entity
func (m *CompetitorMapperImpl) ToDomain(model *models.CompetitorModel) *market.Competitor {
	if model == nil {
		return nil
	}

	return market.ReconstructCompetitor(
		model.ID,
		model.SID,
		model.BusinessPlanID,
		model.Name,
		model.Price,
		model.Advantages,
		model.Weaknesses,
		model.Differentiation,
		model.CreatedAt,
	)
}

// ToModel converts a Competitor domain entity to a CompetitorModel
func (m *CompetitorMapperImpl) ToModel(domain *market.Competitor) *models.CompetitorModel {
	if domain == nil {
		return nil
	}

	return &models.CompetitorModel{
		ID:              domain.ID(),
		SID:             domain.SID(),
		BusinessPlanID:  domain.PlanID(),
		Name:            domain.Name(),
		Price:           domain.Price(),
		Advantages:      domain.Advantages(),
		Weaknesses:      domain.Weaknesses(),
		Differentiation: domain.Differentiation(),
		CreatedAt:       domain.CreatedAt(),
	}
}

// ToDomainList converts a list of CompetitorModel to a list of Competitor domain entities
func (m *CompetitorMapperImpl) ToDomainList(modelList []*models.CompetitorModel) []*market.Competitor {
	if modelList == nil {
		return nil
	}

	domains := make([]*market.Competitor, 0, len(modelList))
	for _, model := range modelList {
		if domain := m.ToDomain(model); domain != nil {
			domains = append(domains, domain)
		}
	}

	return domains
}
