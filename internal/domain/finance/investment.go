// Package finance holds the plan's financial entities and the pure
// derivation rules: per-line tax totals, cost aggregation, projections,
// break-even and the completion scorer. Nothing in this package touches
// storage or the clock beyond creation timestamps.
package finance

import (
	"fmt"
	"time"

	"github.com/mizan-app/mizan/internal/shared/id"
)

// StandardTaxRate is the default VAT rate applied when a line does not
// specify one, in percent points.
const StandardTaxRate = 20.0

// AllowedTaxRates are the selectable VAT rates, in percent points.
var AllowedTaxRates = []float64{0, 7, 10, 14, 20}

// IsAllowedTaxRate reports whether rate is one of the enumerated VAT rates.
func IsAllowedTaxRate(rate float64) bool {
	for _, r := range AllowedTaxRates {
		if rate == r {
			return true
		}
	}
	return false
}

// LineTotals carries the three derived amounts of an investment line.
type LineTotals struct {
	TotalExclTax float64
	TaxAmount    float64
	TotalInclTax float64
}

// ComputeLineTotals derives the totals for a single line. The function
// is total over all inputs; rate membership in AllowedTaxRates is
// enforced when the line is constructed or updated, not here.
func ComputeLineTotals(quantity, unitPriceExclTax, taxRate float64) LineTotals {
	base := quantity * unitPriceExclTax
	tax := base * taxRate / 100
	return LineTotals{
		TotalExclTax: base,
		TaxAmount:    tax,
		TotalInclTax: base + tax,
	}
}

// SumLineTotals sums the derived fields of each line independently.
// Lines may carry different tax rates, so the aggregate must be the
// vector sum of per-line totals, never a re-derivation from summed
// bases.
func SumLineTotals(lines []*InvestmentLine) LineTotals {
	var agg LineTotals
	for _, line := range lines {
		agg.TotalExclTax += line.totals.TotalExclTax
		agg.TaxAmount += line.totals.TaxAmount
		agg.TotalInclTax += line.totals.TotalInclTax
	}
	return agg
}

// InvestmentLine is one row of the plan's investment table. The derived
// totals are recomputed from the three inputs on every mutation and are
// never settable on their own.
type InvestmentLine struct {
	id               uint
	sid              string
	planID           uint
	name             string
	quantity         float64
	unitPriceExclTax float64
	taxRate          float64
	totals           LineTotals
	createdAt        time.Time
}

// NewInvestmentLine creates an investment line for a plan. A blank name
// is allowed: rows start empty and are filled in field by field.
func NewInvestmentLine(planID uint, name string, quantity, unitPriceExclTax, taxRate float64) (*InvestmentLine, error) {
	if planID == 0 {
		return nil, fmt.Errorf("plan ID is required")
	}
	if quantity < 0 {
		return nil, fmt.Errorf("quantity cannot be negative")
	}
	if unitPriceExclTax < 0 {
		return nil, fmt.Errorf("unit price cannot be negative")
	}
	if !IsAllowedTaxRate(taxRate) {
		return nil, fmt.Errorf("tax rate %.2f is not one of the allowed rates", taxRate)
	}

	return &InvestmentLine{
		sid:              id.MustGenerateWithPrefix(id.PrefixInvestmentLine, id.DefaultLength),
		planID:           planID,
		name:             name,
		quantity:         quantity,
		unitPriceExclTax: unitPriceExclTax,
		taxRate:          taxRate,
		totals:           ComputeLineTotals(quantity, unitPriceExclTax, taxRate),
		createdAt:        time.Now(),
	}, nil
}

// ReconstructInvestmentLine rebuilds a line from storage. Totals are
// recomputed from the stored inputs so stale persisted values can never
// leak back out.
func ReconstructInvestmentLine(lineID uint, sid string, planID uint, name string, quantity, unitPriceExclTax, taxRate float64, createdAt time.Time) *InvestmentLine {
	return &InvestmentLine{
		id:               lineID,
		sid:              sid,
		planID:           planID,
		name:             name,
		quantity:         quantity,
		unitPriceExclTax: unitPriceExclTax,
		taxRate:          taxRate,
		totals:           ComputeLineTotals(quantity, unitPriceExclTax, taxRate),
		createdAt:        createdAt,
	}
}

func (l *InvestmentLine) ID() uint                  { return l.id }
func (l *InvestmentLine) SID() string               { return l.sid }
func (l *InvestmentLine) PlanID() uint              { return l.planID }
func (l *InvestmentLine) Name() string              { return l.name }
func (l *InvestmentLine) Quantity() float64         { return l.quantity }
func (l *InvestmentLine) UnitPriceExclTax() float64 { return l.unitPriceExclTax }
func (l *InvestmentLine) TaxRate() float64          { return l.taxRate }
func (l *InvestmentLine) Totals() LineTotals        { return l.totals }
func (l *InvestmentLine) CreatedAt() time.Time      { return l.createdAt }

// SetID assigns the storage identifier after an insert.
func (l *InvestmentLine) SetID(lineID uint) { l.id = lineID }

func (l *InvestmentLine) Rename(name string) {
	l.name = name
}

func (l *InvestmentLine) SetQuantity(quantity float64) error {
	if quantity < 0 {
		return fmt.Errorf("quantity cannot be negative")
	}
	l.quantity = quantity
	l.recompute()
	return nil
}

func (l *InvestmentLine) SetUnitPriceExclTax(price float64) error {
	if price < 0 {
		return fmt.Errorf("unit price cannot be negative")
	}
	l.unitPriceExclTax = price
	l.recompute()
	return nil
}

func (l *InvestmentLine) SetTaxRate(rate float64) error {
	if !IsAllowedTaxRate(rate) {
		return fmt.Errorf("tax rate %.2f is not one of the allowed rates", rate)
	}
	l.taxRate = rate
	l.recompute()
	return nil
}

func (l *InvestmentLine) recompute() {
	l.totals = ComputeLineTotals(l.quantity, l.unitPriceExclTax, l.taxRate)
}
