package finance

import (
	"fmt"
	"math"
	"time"

	"github.com/mizan-app/mizan/internal/shared/id"
)

const (
	// DefaultGrowthRate seeds the year-2 and year-3 growth rates of a
	// fresh projection, in percent.
	DefaultGrowthRate = 10.0

	// MinGrowthRate is the lowest accepted growth rate: -100 means the
	// revenue disappears entirely.
	MinGrowthRate = -100.0
)

// ProjectionInputs gathers everything the projection formulas consume.
type ProjectionInputs struct {
	MonthlyOrders     float64
	AvgPrice          float64
	TotalFixedCosts   float64
	TotalVariableRate float64
	Year1Revenue      float64
	Year2GrowthRate   float64
	Year3GrowthRate   float64
}

// ProjectionOutputs carries every derived projection metric.
type ProjectionOutputs struct {
	MonthlyRevenue      float64
	MonthlyVariableCost float64
	MonthlyProfit       float64
	Profitable          bool
	BreakEvenUnits      int
	ProfitMarginPercent float64
	Year2Revenue        float64
	Year3Revenue        float64
}

// ComputeProjection derives all projection metrics from the inputs.
// Every division is guarded; the function never produces Inf or NaN
// for inputs in the documented domain.
func ComputeProjection(in ProjectionInputs) ProjectionOutputs {
	monthlyRevenue := in.MonthlyOrders * in.AvgPrice
	monthlyVariable := MonthlyVariableCost(monthlyRevenue, in.TotalVariableRate)
	monthlyProfit := monthlyRevenue - in.TotalFixedCosts - monthlyVariable

	year2 := in.Year1Revenue * (1 + in.Year2GrowthRate/100)
	year3 := year2 * (1 + in.Year3GrowthRate/100)

	return ProjectionOutputs{
		MonthlyRevenue:      monthlyRevenue,
		MonthlyVariableCost: monthlyVariable,
		MonthlyProfit:       monthlyProfit,
		Profitable:          monthlyProfit > 0,
		BreakEvenUnits:      BreakEvenUnits(in.TotalFixedCosts, in.AvgPrice, in.TotalVariableRate),
		ProfitMarginPercent: ProfitMarginPercent(monthlyRevenue, in.TotalFixedCosts, monthlyVariable),
		Year2Revenue:        year2,
		Year3Revenue:        year3,
	}
}

// BreakEvenUnits returns the unit volume at which revenue covers total
// cost: ceil(fixed / (price × (1 − rate/100))). It returns 0 when there
// are no fixed costs, and 0 when the ratio is undefined (price is zero
// or the variable rate reaches 100%), instead of propagating infinity.
func BreakEvenUnits(totalFixedCosts, avgPrice, totalVariableRate float64) int {
	if totalFixedCosts <= 0 {
		return 0
	}
	unitMargin := avgPrice * (1 - totalVariableRate/100)
	if unitMargin <= 0 {
		return 0
	}
	return int(math.Ceil(totalFixedCosts / unitMargin))
}

// ProfitMarginPercent returns the profit as a percentage of revenue,
// or 0 when there is no revenue to take a margin of.
func ProfitMarginPercent(monthlyRevenue, totalFixedCosts, monthlyVariableCost float64) float64 {
	if monthlyRevenue <= 0 {
		return 0
	}
	return 100 * (monthlyRevenue - totalFixedCosts - monthlyVariableCost) / monthlyRevenue
}

// FinancialProjection is the single per-plan record of sales
// hypotheses and growth rates. Year-1 revenue defaults to
// orders × price × 12 and tracks hypothesis changes until the user
// overrides it explicitly; after that it only changes when the user
// edits it again.
type FinancialProjection struct {
	id                uint
	sid               string
	planID            uint
	monthlyOrders     float64
	avgPrice          float64
	year1Revenue      float64
	revenueOverridden bool
	year2GrowthRate   float64
	year3GrowthRate   float64
	createdAt         time.Time
	updatedAt         time.Time
}

func NewFinancialProjection(planID uint) (*FinancialProjection, error) {
	if planID == 0 {
		return nil, fmt.Errorf("plan ID is required")
	}

	now := time.Now()
	return &FinancialProjection{
		sid:             id.MustGenerateWithPrefix(id.PrefixProjection, id.DefaultLength),
		planID:          planID,
		year2GrowthRate: DefaultGrowthRate,
		year3GrowthRate: DefaultGrowthRate,
		createdAt:       now,
		updatedAt:       now,
	}, nil
}

func ReconstructFinancialProjection(projID uint, sid string, planID uint, monthlyOrders, avgPrice, year1Revenue float64, revenueOverridden bool, year2GrowthRate, year3GrowthRate float64, createdAt, updatedAt time.Time) *FinancialProjection {
	return &FinancialProjection{
		id:                projID,
		sid:               sid,
		planID:            planID,
		monthlyOrders:     monthlyOrders,
		avgPrice:          avgPrice,
		year1Revenue:      year1Revenue,
		revenueOverridden: revenueOverridden,
		year2GrowthRate:   year2GrowthRate,
		year3GrowthRate:   year3GrowthRate,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
	}
}

func (p *FinancialProjection) ID() uint                { return p.id }
func (p *FinancialProjection) SID() string             { return p.sid }
func (p *FinancialProjection) PlanID() uint            { return p.planID }
func (p *FinancialProjection) MonthlyOrders() float64  { return p.monthlyOrders }
func (p *FinancialProjection) AvgPrice() float64       { return p.avgPrice }
func (p *FinancialProjection) Year1Revenue() float64   { return p.year1Revenue }
func (p *FinancialProjection) RevenueOverridden() bool { return p.revenueOverridden }
func (p *FinancialProjection) Year2GrowthRate() float64 {
	return p.year2GrowthRate
}
func (p *FinancialProjection) Year3GrowthRate() float64 {
	return p.year3GrowthRate
}
func (p *FinancialProjection) CreatedAt() time.Time { return p.createdAt }
func (p *FinancialProjection) UpdatedAt() time.Time { return p.updatedAt }

func (p *FinancialProjection) SetID(projID uint) { p.id = projID }

// SetSalesHypothesis updates orders and average price. While no manual
// override has been saved, year-1 revenue follows as orders × price × 12.
func (p *FinancialProjection) SetSalesHypothesis(monthlyOrders, avgPrice float64) error {
	if monthlyOrders < 0 {
		return fmt.Errorf("monthly orders cannot be negative")
	}
	if avgPrice < 0 {
		return fmt.Errorf("average price cannot be negative")
	}

	p.monthlyOrders = monthlyOrders
	p.avgPrice = avgPrice
	if !p.revenueOverridden {
		p.year1Revenue = monthlyOrders * avgPrice * 12
	}
	p.touch()
	return nil
}

// OverrideYear1Revenue pins year-1 revenue to a user-entered figure.
// Later hypothesis changes no longer recompute it.
func (p *FinancialProjection) OverrideYear1Revenue(revenue float64) error {
	if revenue < 0 {
		return fmt.Errorf("year 1 revenue cannot be negative")
	}
	p.year1Revenue = revenue
	p.revenueOverridden = true
	p.touch()
	return nil
}

// ClearRevenueOverride reverts year-1 revenue to the derived figure.
func (p *FinancialProjection) ClearRevenueOverride() {
	p.revenueOverridden = false
	p.year1Revenue = p.monthlyOrders * p.avgPrice * 12
	p.touch()
}

func (p *FinancialProjection) SetGrowthRates(year2, year3 float64) error {
	if year2 < MinGrowthRate || year3 < MinGrowthRate {
		return fmt.Errorf("growth rate cannot be below %.0f%%", MinGrowthRate)
	}
	p.year2GrowthRate = year2
	p.year3GrowthRate = year3
	p.touch()
	return nil
}

// HasHypothesis reports whether a sales hypothesis has been entered.
func (p *FinancialProjection) HasHypothesis() bool {
	return p.monthlyOrders > 0 && p.avgPrice > 0
}

// Inputs assembles the pure-computation inputs from this record plus
// the plan's aggregated costs.
func (p *FinancialProjection) Inputs(totalFixedCosts, totalVariableRate float64) ProjectionInputs {
	return ProjectionInputs{
		MonthlyOrders:     p.monthlyOrders,
		AvgPrice:          p.avgPrice,
		TotalFixedCosts:   totalFixedCosts,
		TotalVariableRate: totalVariableRate,
		Year1Revenue:      p.year1Revenue,
		Year2GrowthRate:   p.year2GrowthRate,
		Year3GrowthRate:   p.year3GrowthRate,
	}
}

func (p *FinancialProjection) touch() {
	p.updatedAt = time.Now()
}
