package mappers

import (
	"github.com/mizan-app/mizan/internal/domain/market"
	"github.com/mizan-app/mizan/internal/infrastructure/persistence/models"
)

// MarketDataMapper provides methods for converting between domain and model
type MarketDataMapper interface {
	ToDomain(model *models.MarketDataModel) *market.MarketData
	ToModel(domain *market.MarketData) *models.MarketDataModel
}

// MarketDataMapperImpl implements MarketDataMapper
type MarketDataMapperImpl struct{}

// NewMarketDataMapper creates a new MarketDataMapper
func NewMarketDataMapper() MarketDataMapper {
	return &MarketDataMapperImpl{}
}

// ToDomain converts a MarketDataModel to a MarketData domain entity
func (m *MarketDataMapperImpl) ToDomain(model *models.MarketDataModel) *market.MarketData {
	if model == nil {
		return nil
	}

	return market.ReconstructMarketData(
		model.ID,
		model.SID,
		model.BusinessPlanID,
		model.TargetCustomer,
		model.MarketSize,
		model.ProblemSolution,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

// ToModel converts a MarketData domain entity to a MarketDataModel
func (m *MarketDataMapperImpl) ToModel(domain *market.MarketData) *models.MarketDataModel {
	if domain == nil {
		return nil
	}

	return &models.MarketDataModel{
		ID:              domain.ID(),
		SID:             domain.SID(),
		BusinessPlanID:  domain.PlanID(),
		TargetCustomer:  domain.TargetCustomer(),
		MarketSize:      domain.MarketSize(),
		ProblemSolution: domain.ProblemSolution(),
		CreatedAt:       domain.CreatedAt(),
		UpdatedAt:       domain.UpdatedAt(),
	}
}
