package models

import "time"

// InvestmentLineModel is the GORM model for the investment_lines table.
// The three total columns are derived; the application recomputes them
// from quantity, unit price and tax rate on every write and on read.
type InvestmentLineModel struct {
	ID               uint      `gorm:"primaryKey;autoIncrement"`
	SID              string    `gorm:"column:sid;type:varchar(50);not null;uniqueIndex"`
	BusinessPlanID   uint      `gorm:"column:business_plan_id;not null;index"`
	Name             string    `gorm:"column:name;type:varchar(200);not null;default:''"`
	Quantity         float64   `gorm:"column:quantity;not null;default:0"`
	UnitPriceExclTax float64   `gorm:"column:unit_price_excl_tax;not null;default:0"`
	TaxRate          float64   `gorm:"column:tax_rate;not null;default:20"`
	TotalExclTax     float64   `gorm:"column:total_excl_tax;not null;default:0"`
	TaxAmount        float64   `gorm:"column:tax_amount;not null;default:0"`
	TotalInclTax     float64   `gorm:"column:total_incl_tax;not null;default:0"`
	CreatedAt        time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (InvestmentLineModel) TableName() string {
	return "investment_lines"
}

// FixedCostModel is the GORM model for the fixed_costs table
type FixedCostModel struct {
	ID             uint      `gorm:"primaryKey;autoIncrement"`
	SID            string    `gorm:"column:sid;type:varchar(50);not null;uniqueIndex"`
	BusinessPlanID uint      `gorm:"column:business_plan_id;not null;index"`
	Name           string    `gorm:"column:name;type:varchar(200);not null;default:''"`
	MonthlyAmount  float64   `gorm:"column:monthly_amount;not null;default:0"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (FixedCostModel) TableName() string {
	return "fixed_costs"
}

// VariableCostModel is the GORM model for the variable_costs table
type VariableCostModel struct {
	ID             uint      `gorm:"primaryKey;autoIncrement"`
	SID            string    `gorm:"column:sid;type:varchar(50);not null;uniqueIndex"`
	BusinessPlanID uint      `gorm:"column:business_plan_id;not null;index"`
	Name           string    `gorm:"column:name;type:varchar(200);not null;default:''"`
	RateOfSales    float64   `gorm:"column:rate_of_sales;not null;default:0"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (VariableCostModel) TableName() string {
	return "variable_costs"
}

// FinancialProjectionModel is the GORM model for the
// financial_projections table. One row per plan.
type FinancialProjectionModel struct {
	ID                uint      `gorm:"primaryKey;autoIncrement"`
	SID               string    `gorm:"column:sid;type:varchar(50);not null;uniqueIndex"`
	BusinessPlanID    uint      `gorm:"column:business_plan_id;not null;uniqueIndex"`
	MonthlyOrders     float64   `gorm:"column:monthly_orders;not null;default:0"`
	AvgPrice          float64   `gorm:"column:avg_price;not null;default:0"`
	Year1Revenue      float64   `gorm:"column:year_1_revenue;not null;default:0"`
	RevenueOverridden bool      `gorm:"column:revenue_overridden;not null;default:false"`
	Year2GrowthRate   float64   `gorm:"column:year_2_growth_rate;not null;default:10"`
	Year3GrowthRate   float64   `gorm:"column:year_3_growth_rate;not null;default:10"`
	CreatedAt         time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt         time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (FinancialProjectionModel) TableName() string {
	return "financial_projections"
}
