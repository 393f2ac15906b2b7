// Package template holds the static sector templates: per-language
// bundles of default investment and cost lines used to bulk-initialize
// a plan's financials. The datasets are immutable reference data
// calibrated to the Moroccan market (amounts in MAD).
package template

import (
	"context"
	"errors"

	"github.com/mizan-app/mizan/internal/domain/finance"
	"github.com/mizan-app/mizan/internal/shared/lang"
)

var ErrTemplateNotFound = errors.New("sector template not found")

// InvestmentSeed is one default investment line of a template.
type InvestmentSeed struct {
	Name             string
	Quantity         float64
	UnitPriceExclTax float64
	TaxRate          float64
}

// CostSeed is one default fixed or variable cost line of a template.
// MonthlyAmount is set for fixed costs, RateOfSales for variable ones.
type CostSeed struct {
	Name          string
	MonthlyAmount float64
	RateOfSales   float64
}

// SalesHypothesis is a template's suggested starting point for the
// financial projection.
type SalesHypothesis struct {
	AvgPrice      float64
	MonthlyOrders float64
}

// SectorTemplate is a named bundle of seeds for one sector in one
// language.
type SectorTemplate struct {
	Key             string
	Label           string
	Investments     []InvestmentSeed
	FixedCosts      []CostSeed
	VariableCosts   []CostSeed
	SalesHypothesis *SalesHypothesis
}

// Summary describes a template for listing without its full seed set.
type Summary struct {
	Key             string
	Label           string
	InvestmentCount int
	FixedCostCount  int
	VariableCount   int
	HasHypothesis   bool
}

// Keys lists the sector keys in their canonical display order. The set
// is identical for both languages.
var Keys = []string{
	KeyImprimerie,
	KeyCafeRestaurant,
	KeyEcommerce,
	KeyServices,
}

const (
	KeyImprimerie     = "imprimerie"
	KeyCafeRestaurant = "cafe_restaurant"
	KeyEcommerce      = "ecommerce"
	KeyServices       = "services"
)

// Get returns the template for (language, key), or ErrTemplateNotFound.
// The lookup never mutates the datasets.
func Get(language, key string) (*SectorTemplate, error) {
	byKey, ok := catalog[language]
	if !ok {
		return nil, ErrTemplateNotFound
	}
	tpl, ok := byKey[key]
	if !ok {
		return nil, ErrTemplateNotFound
	}
	return tpl, nil
}

// List returns template summaries for a language, in canonical order.
// Unknown languages fall back to the primary language.
func List(language string) []Summary {
	byKey, ok := catalog[language]
	if !ok {
		byKey = catalog[lang.French]
	}

	summaries := make([]Summary, 0, len(Keys))
	for _, key := range Keys {
		tpl := byKey[key]
		summaries = append(summaries, Summary{
			Key:             tpl.Key,
			Label:           tpl.Label,
			InvestmentCount: len(tpl.Investments),
			FixedCostCount:  len(tpl.FixedCosts),
			VariableCount:   len(tpl.VariableCosts),
			HasHypothesis:   tpl.SalesHypothesis != nil,
		})
	}
	return summaries
}

// ReplacementSet is the full set of rows a template application writes,
// already constructed as domain entities.
type ReplacementSet struct {
	Investments   []*finance.InvestmentLine
	FixedCosts    []*finance.FixedCost
	VariableCosts []*finance.VariableCost
	Hypothesis    *SalesHypothesis
}

// Applier atomically replaces a plan's cost structure with a
// replacement set: it deletes every existing investment, fixed-cost and
// variable-cost row of the plan, inserts the set in order, and applies
// the hypothesis to the plan's projection when present. Implementations
// must either commit the whole sequence or roll it back; one that
// cannot roll back must report a partial failure naming the rows that
// were written.
type Applier interface {
	ReplacePlanFinancials(ctx context.Context, planID uint, set ReplacementSet) error
}

// BuildReplacementSet constructs the domain entities for a template's
// seeds, preserving seed order.
func BuildReplacementSet(planID uint, tpl *SectorTemplate) (ReplacementSet, error) {
	set := ReplacementSet{
		Investments:   make([]*finance.InvestmentLine, 0, len(tpl.Investments)),
		FixedCosts:    make([]*finance.FixedCost, 0, len(tpl.FixedCosts)),
		VariableCosts: make([]*finance.VariableCost, 0, len(tpl.VariableCosts)),
		Hypothesis:    tpl.SalesHypothesis,
	}

	for _, seed := range tpl.Investments {
		line, err := finance.NewInvestmentLine(planID, seed.Name, seed.Quantity, seed.UnitPriceExclTax, seed.TaxRate)
		if err != nil {
			return ReplacementSet{}, err
		}
		set.Investments = append(set.Investments, line)
	}
	for _, seed := range tpl.FixedCosts {
		cost, err := finance.NewFixedCost(planID, seed.Name, seed.MonthlyAmount)
		if err != nil {
			return ReplacementSet{}, err
		}
		set.FixedCosts = append(set.FixedCosts, cost)
	}
	for _, seed := range tpl.VariableCosts {
		cost, err := finance.NewVariableCost(planID, seed.Name, seed.RateOfSales)
		if err != nil {
			return ReplacementSet{}, err
		}
		set.VariableCosts = append(set.VariableCosts, cost)
	}

	return set, nil
}
