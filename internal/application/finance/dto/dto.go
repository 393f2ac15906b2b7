package dto

import "time"

type CreateInvestmentLineRequest struct {
	Name             string   `json:"name" binding:"max=200"`
	Quantity         float64  `json:"quantity" binding:"omitempty,min=0"`
	UnitPriceExclTax float64  `json:"unit_price_excl_tax" binding:"omitempty,min=0"`
	TaxRate          *float64 `json:"tax_rate" binding:"omitempty,taxrate"`
}

type UpdateInvestmentLineRequest struct {
	Name             *string  `json:"name" binding:"omitempty,max=200"`
	Quantity         *float64 `json:"quantity" binding:"omitempty,min=0"`
	UnitPriceExclTax *float64 `json:"unit_price_excl_tax" binding:"omitempty,min=0"`
	TaxRate          *float64 `json:"tax_rate" binding:"omitempty,taxrate"`
}

type InvestmentLineResponse struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Quantity         float64   `json:"quantity"`
	UnitPriceExclTax float64   `json:"unit_price_excl_tax"`
	TaxRate          float64   `json:"tax_rate"`
	TotalExclTax     float64   `json:"total_excl_tax"`
	TaxAmount        float64   `json:"tax_amount"`
	TotalInclTax     float64   `json:"total_incl_tax"`
	CreatedAt        time.Time `json:"created_at"`
}

type InvestmentTotals struct {
	TotalExclTax float64 `json:"total_excl_tax"`
	TaxAmount    float64 `json:"tax_amount"`
	TotalInclTax float64 `json:"total_incl_tax"`
}

type InvestmentListResponse struct {
	Items  []*InvestmentLineResponse `json:"items"`
	Totals InvestmentTotals          `json:"totals"`
}

type CreateFixedCostRequest struct {
	Name          string  `json:"name" binding:"max=200"`
	MonthlyAmount float64 `json:"monthly_amount" binding:"omitempty,min=0"`
}

type UpdateFixedCostRequest struct {
	Name          *string  `json:"name" binding:"omitempty,max=200"`
	MonthlyAmount *float64 `json:"monthly_amount" binding:"omitempty,min=0"`
}

type FixedCostResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	MonthlyAmount float64   `json:"monthly_amount"`
	CreatedAt     time.Time `json:"created_at"`
}

type FixedCostListResponse struct {
	Items        []*FixedCostResponse `json:"items"`
	TotalMonthly float64              `json:"total_monthly"`
}

type CreateVariableCostRequest struct {
	Name        string  `json:"name" binding:"max=200"`
	RateOfSales float64 `json:"rate_of_sales" binding:"omitempty,min=0"`
}

type UpdateVariableCostRequest struct {
	Name        *string  `json:"name" binding:"omitempty,max=200"`
	RateOfSales *float64 `json:"rate_of_sales" binding:"omitempty,min=0"`
}

type VariableCostResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	RateOfSales float64   `json:"rate_of_sales"`
	CreatedAt   time.Time `json:"created_at"`
}

type VariableCostListResponse struct {
	Items     []*VariableCostResponse `json:"items"`
	TotalRate float64                 `json:"total_rate"`
}

type UpdateProjectionRequest struct {
	MonthlyOrders   *float64 `json:"monthly_orders" binding:"omitempty,min=0"`
	AvgPrice        *float64 `json:"avg_price" binding:"omitempty,min=0"`
	Year1Revenue    *float64 `json:"year_1_revenue" binding:"omitempty,min=0"`
	ResetRevenue    bool     `json:"reset_revenue"`
	Year2GrowthRate *float64 `json:"year_2_growth_rate" binding:"omitempty,min=-100"`
	Year3GrowthRate *float64 `json:"year_3_growth_rate" binding:"omitempty,min=-100"`
}

type ProjectionResponse struct {
	ID                  string    `json:"id"`
	MonthlyOrders       float64   `json:"monthly_orders"`
	AvgPrice            float64   `json:"avg_price"`
	MonthlyRevenue      float64   `json:"monthly_revenue"`
	MonthlyFixedCosts   float64   `json:"monthly_fixed_costs"`
	MonthlyVariableCost float64   `json:"monthly_variable_cost"`
	MonthlyProfit       float64   `json:"monthly_profit"`
	Profitable          bool      `json:"profitable"`
	BreakEvenUnits      int       `json:"break_even_units"`
	ProfitMarginPercent float64   `json:"profit_margin_percent"`
	Year1Revenue        float64   `json:"year_1_revenue"`
	RevenueOverridden   bool      `json:"revenue_overridden"`
	Year2GrowthRate     float64   `json:"year_2_growth_rate"`
	Year3GrowthRate     float64   `json:"year_3_growth_rate"`
	Year2Revenue        float64   `json:"year_2_revenue"`
	Year3Revenue        float64   `json:"year_3_revenue"`
	UpdatedAt           time.Time `json:"updated_at"`
}

type DashboardResponse struct {
	CompletionRate      float64  `json:"completion_rate"`
	Sections            Sections `json:"sections"`
	TotalInvestment     float64  `json:"total_investment"`
	MonthlyRevenue      float64  `json:"monthly_revenue"`
	MonthlyFixedCosts   float64  `json:"monthly_fixed_costs"`
	MonthlyVariableCost float64  `json:"monthly_variable_cost"`
	MonthlyProfit       float64  `json:"monthly_profit"`
	Profitable          bool     `json:"profitable"`
	ProfitMarginPercent float64  `json:"profit_margin_percent"`
	BreakEvenUnits      int      `json:"break_even_units"`
	CompetitorCount     int      `json:"competitor_count"`
	Advice              Advice   `json:"advice"`
}

type Sections struct {
	ProjectNamed            bool `json:"project_named"`
	TargetCustomerDescribed bool `json:"target_customer_described"`
	CompetitorsRecorded     bool `json:"competitors_recorded"`
	SwotRecorded            bool `json:"swot_recorded"`
	InvestmentsRecorded     bool `json:"investments_recorded"`
	SalesHypothesisSet      bool `json:"sales_hypothesis_set"`
	SalesStrategyDescribed  bool `json:"sales_strategy_described"`
}

type Advice struct {
	MarginLow               bool `json:"margin_low"`
	CompetitorsInsufficient bool `json:"competitors_insufficient"`
	PlanIncomplete          bool `json:"plan_incomplete"`
	PlanHealthy             bool `json:"plan_healthy"`
}
