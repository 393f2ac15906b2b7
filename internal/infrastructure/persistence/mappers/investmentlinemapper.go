package mappers

import (
	"github.com/mizan-app/mizan/internal/domain/finance"
	"github.com/mizan-app/mizan/internal/infrastructure/persistence/models"
)

// InvestmentLineMapper provides methods for converting between domain and model
type InvestmentLineMapper interface {
	ToDomain(model *models.InvestmentLineModel) *finance.InvestmentLine
	ToModel(domain *finance.InvestmentLine) *models.InvestmentLineModel
	ToDomainList(modelList []*models.InvestmentLineModel) []*finance.InvestmentLine
}

// InvestmentLineMapperImpl implements InvestmentLineMapper
type InvestmentLineMapperImpl struct{}

// NewInvestmentLineMapper creates a new InvestmentLineMapper
func NewInvestmentLineMapper() InvestmentLineMapper {
	return &InvestmentLineMapperImpl{}
}

// ToDomain converts an InvestmentLineModel to an InvestmentLine domain
// entity. The stored total columns are ignored; the entity recomputes
// them from quantity, unit price and tax rate.
func (m *InvestmentLineMapperImpl) ToDomain(model *models.InvestmentLineModel) *finance.InvestmentLine {
	if model == nil {
		return nil
	}

	return finance.ReconstructInvestmentLine(
		model.ID,
		model.SID,
		model.BusinessPlanID,
		model.Name,
		model.Quantity,
		model.UnitPriceExclTax,
		model.TaxRate,
		model.CreatedAt,
	)
}

// ToModel converts an InvestmentLine domain entity to an InvestmentLineModel
func (m *InvestmentLineMapperImpl) ToModel(domain *finance.InvestmentLine) *models.InvestmentLineModel {
	if domain == nil {
		return nil
	}

	totals := domain.Totals()
	return &models.InvestmentLineModel{
		ID:               domain.ID(),
		SID:              domain.SID(),
		BusinessPlanID:   domain.PlanID(),
		Name:             domain.Name(),
		Quantity:         domain.Quantity(),
		UnitPriceExclTax: domain.UnitPriceExclTax(),
		TaxRate:          domain.TaxRate(),
		TotalExclTax:     totals.TotalExclTax,
		TaxAmount:        totals.TaxAmount,
		TotalInclTax:     totals.TotalInclTax,
		CreatedAt:        domain.CreatedAt(),
	}
}

// ToDomainList converts a list of InvestmentLineModel to a list of InvestmentLine domain entities
func (m *InvestmentLineMapperImpl) ToDomainList(modelList []*models.InvestmentLineModel) []*finance.InvestmentLine {
	if modelList == nil {
		return nil
	}

	domains := make([]*finance.InvestmentLine, 0, len(modelList))
	for _, model := range modelList {
		if domain := m.ToDomain(model); domain != nil {
			domains = append(domains, domain)
		}
	}

	return domains
}
