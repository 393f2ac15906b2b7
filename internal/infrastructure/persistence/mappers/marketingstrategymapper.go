package mappers

import (
	"encoding/json"
	"fmt"

	"github.com/mizan-app/mizan/internal/domain/marketing"
	"github.com/mizan-app/mizan/internal/infrastructure/persistence/models"
)

// MarketingStrategyMapper provides methods for converting between domain and model
type MarketingStrategyMapper interface {
	ToDomain(model *models.MarketingStrategyModel) (*marketing.Strategy, error)
	ToModel(domain *marketing.Strategy) *models.MarketingStrategyModel
}

// MarketingStrategyMapperImpl implements MarketingStrategyMapper
type MarketingStrategyMapperImpl struct{}

// NewMarketingStrategyMapper creates a new MarketingStrategyMapper
func NewMarketingStrategyMapper() MarketingStrategyMapper {
	return &MarketingStrategyMapperImpl{}
}

// ToDomain converts a MarketingStrategyModel to a Strategy domain entity
func (m *MarketingStrategyMapperImpl) ToDomain(model *models.MarketingStrategyModel) (*marketing.Strategy, error) {
	if model == nil {
		return nil, nil
	}

	var channels []string
	if model.Channels != "" {
		if err := json.Unmarshal([]byte(model.Channels), &channels); err != nil {
			return nil, fmt.Errorf("failed to unmarshal marketing channels (id=%d): %w", model.ID, err)
		}
	}

	return marketing.ReconstructStrategy(
		model.ID,
		model.SID,
		model.BusinessPlanID,
		model.SalesStrategy,
		model.DigitalMarketing,
		channels,
		model.CreatedAt,
		model.UpdatedAt,
	), nil
}

// ToModel converts a Strategy domain entity to a MarketingStrategyModel
func (m *MarketingStrategyMapperImpl) ToModel(domain *marketing.Strategy) *models.MarketingStrategyModel {
	if domain == nil {
		return nil
	}

	channels := domain.Channels()
	if channels == nil {
		channels = []string{}
	}
	channelsJSON, _ := json.Marshal(channels)

	return &models.MarketingStrategyModel{
		ID:               domain.ID(),
		SID:              domain.SID(),
		BusinessPlanID:   domain.PlanID(),
		SalesStrategy:    domain.SalesStrategy(),
		DigitalMarketing: domain.DigitalMarketing(),
		Channels:         string(channelsJSON),
		CreatedAt:        domain.CreatedAt(),
		UpdatedAt:        domain.UpdatedAt(),
	}
}
