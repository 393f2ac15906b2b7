package finance

import (
	"fmt"
	"time"

	"github.com/mizan-app/mizan/internal/shared/id"
)

// FixedCost is a monthly charge independent of sales volume.
type FixedCost struct {
	id            uint
	sid           string
	planID        uint
	name          string
	monthlyAmount float64
	createdAt     time.Time
}

func NewFixedCost(planID uint, name string, monthlyAmount float64) (*FixedCost, error) {
	if planID == 0 {
		return nil, fmt.Errorf("plan ID is required")
	}
	if monthlyAmount < 0 {
		return nil, fmt.Errorf("monthly amount cannot be negative")
	}

	return &FixedCost{
		sid:           id.MustGenerateWithPrefix(id.PrefixFixedCost, id.DefaultLength),
		planID:        planID,
		name:          name,
		monthlyAmount: monthlyAmount,
		createdAt:     time.Now(),
	}, nil
}

func ReconstructFixedCost(costID uint, sid string, planID uint, name string, monthlyAmount float64, createdAt time.Time) *FixedCost {
	return &FixedCost{
		id:            costID,
		sid:           sid,
		planID:        planID,
		name:          name,
		monthlyAmount: monthlyAmount,
		createdAt:     createdAt,
	}
}

func (c *FixedCost) ID() uint               { return c.id }
func (c *FixedCost) SID() string            { return c.sid }
func (c *FixedCost) PlanID() uint           { return c.planID }
func (c *FixedCost) Name() string           { return c.name }
func (c *FixedCost) MonthlyAmount() float64 { return c.monthlyAmount }
func (c *FixedCost) CreatedAt() time.Time   { return c.createdAt }

func (c *FixedCost) SetID(costID uint) { c.id = costID }

func (c *FixedCost) Rename(name string) { c.name = name }

func (c *FixedCost) SetMonthlyAmount(amount float64) error {
	if amount < 0 {
		return fmt.Errorf("monthly amount cannot be negative")
	}
	c.monthlyAmount = amount
	return nil
}

// VariableCost is a charge expressed as a percentage of sales. Rates
// above 100 are unusual but deliberately not clamped.
type VariableCost struct {
	id          uint
	sid         string
	planID      uint
	name        string
	rateOfSales float64
	createdAt   time.Time
}

func NewVariableCost(planID uint, name string, rateOfSales float64) (*VariableCost, error) {
	if planID == 0 {
		return nil, fmt.Errorf("plan ID is required")
	}
	if rateOfSales < 0 {
		return nil, fmt.Errorf("rate of sales cannot be negative")
	}

	return &VariableCost{
		sid:         id.MustGenerateWithPrefix(id.PrefixVariableCost, id.DefaultLength),
		planID:      planID,
		name:        name,
		rateOfSales: rateOfSales,
		createdAt:   time.Now(),
	}, nil
}

func ReconstructVariableCost(costID uint, sid string, planID uint, name string, rateOfSales float64, createdAt time.Time) *VariableCost {
	return &VariableCost{
		id:          costID,
		sid:         sid,
		planID:      planID,
		name:        name,
		rateOfSales: rateOfSales,
		createdAt:   createdAt,
	}
}

func (c *VariableCost) ID() uint             { return c.id }
func (c *VariableCost) SID() string          { return c.sid }
func (c *VariableCost) PlanID() uint         { return c.planID }
func (c *VariableCost) Name() string         { return c.name }
func (c *VariableCost) RateOfSales() float64 { return c.rateOfSales }
func (c *VariableCost) CreatedAt() time.Time { return c.createdAt }

func (c *VariableCost) SetID(costID uint) { c.id = costID }

func (c *VariableCost) Rename(name string) { c.name = name }

func (c *VariableCost) SetRateOfSales(rate float64) error {
	if rate < 0 {
		return fmt.Errorf("rate of sales cannot be negative")
	}
	c.rateOfSales = rate
	return nil
}

// TotalFixedCosts sums the monthly amounts. An empty list yields zero.
func TotalFixedCosts(costs []*FixedCost) float64 {
	var total float64
	for _, c := range costs {
		total += c.monthlyAmount
	}
	return total
}

// TotalVariableRate sums the rates in percent points. The rate stays
// un-normalized until it is applied to a revenue figure.
func TotalVariableRate(costs []*VariableCost) float64 {
	var total float64
	for _, c := range costs {
		total += c.rateOfSales
	}
	return total
}

// MonthlyVariableCost converts the aggregate rate into an absolute
// monthly amount for the given revenue.
func MonthlyVariableCost(monthlyRevenue, totalVariableRate float64) float64 {
	return monthlyRevenue * totalVariableRate / 100
}
