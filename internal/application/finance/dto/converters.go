package dto

import "github.com/mizan-app/mizan/internal/domain/finance"

func ToInvestmentLineResponse(line *finance.InvestmentLine) *InvestmentLineResponse {
	if line == nil {
		return nil
	}

	totals := line.Totals()
	return &InvestmentLineResponse{
		ID:               line.SID(),
		Name:             line.Name(),
		Quantity:         line.Quantity(),
		UnitPriceExclTax: line.UnitPriceExclTax(),
		TaxRate:          line.TaxRate(),
		TotalExclTax:     totals.TotalExclTax,
		TaxAmount:        totals.TaxAmount,
		TotalInclTax:     totals.TotalInclTax,
		CreatedAt:        line.CreatedAt(),
	}
}

func ToInvestmentListResponse(lines []*finance.InvestmentLine) *InvestmentListResponse {
	items := make([]*InvestmentLineResponse, 0, len(lines))
	for _, line := range lines {
		items = append(items, ToInvestmentLineResponse(line))
	}

	agg := finance.SumLineTotals(lines)
	return &InvestmentListResponse{
		Items: items,
		Totals: InvestmentTotals{
			TotalExclTax: agg.TotalExclTax,
			TaxAmount:    agg.TaxAmount,
			TotalInclTax: agg.TotalInclTax,
		},
	}
}

func ToFixedCostResponse(cost *finance.FixedCost) *FixedCostResponse {
	if cost == nil {
		return nil
	}

	return &FixedCostResponse{
		ID:            cost.SID(),
		Name:          cost.Name(),
		MonthlyAmount: cost.MonthlyAmount(),
		CreatedAt:     cost.CreatedAt(),
	}
}

func ToFixedCostListResponse(costs []*finance.FixedCost) *FixedCostListResponse {
	items := make([]*FixedCostResponse, 0, len(costs))
	for _, cost := range costs {
		items = append(items, ToFixedCostResponse(cost))
	}

	return &FixedCostListResponse{
		Items:        items,
		TotalMonthly: finance.TotalFixedCosts(costs),
	}
}

func ToVariableCostResponse(cost *finance.VariableCost) *VariableCostResponse {
	if cost == nil {
		return nil
	}

	return &VariableCostResponse{
		ID:          cost.SID(),
		Name:        cost.Name(),
		RateOfSales: cost.RateOfSales(),
		CreatedAt:   cost.CreatedAt(),
	}
}

func ToVariableCostListResponse(costs []*finance.VariableCost) *VariableCostListResponse {
	items := make([]*VariableCostResponse, 0, len(costs))
	for _, cost := range costs {
		items = append(items, ToVariableCostResponse(cost))
	}

	return &VariableCostListResponse{
		Items:     items,
		TotalRate: finance.TotalVariableRate(costs),
	}
}

// ToProjectionResponse merges the stored record with the metrics
// derived from it and the plan's aggregated costs.
func ToProjectionResponse(projection *finance.FinancialProjection, totalFixedCosts, totalVariableRate float64) *ProjectionResponse {
	if projection == nil {
		return nil
	}

	outputs := finance.ComputeProjection(projection.Inputs(totalFixedCosts, totalVariableRate))
	return &ProjectionResponse{
		ID:                  projection.SID(),
		MonthlyOrders:       projection.MonthlyOrders(),
		AvgPrice:            projection.AvgPrice(),
		MonthlyRevenue:      outputs.MonthlyRevenue,
		MonthlyFixedCosts:   totalFixedCosts,
		MonthlyVariableCost: outputs.MonthlyVariableCost,
		MonthlyProfit:       outputs.MonthlyProfit,
		Profitable:          outputs.Profitable,
		BreakEvenUnits:      outputs.BreakEvenUnits,
		ProfitMarginPercent: outputs.ProfitMarginPercent,
		Year1Revenue:        projection.Year1Revenue(),
		RevenueOverridden:   projection.RevenueOverridden(),
		Year2GrowthRate:     projection.Year2GrowthRate(),
		Year3GrowthRate:     projection.Year3GrowthRate(),
		Year2Revenue:        outputs.Year2Revenue,
		Year3Revenue:        outputs.Year3Revenue,
		UpdatedAt:           projection.UpdatedAt(),
	}
}

func ToSections(flags finance.SectionFlags) Sections {
	return Sections{
		ProjectNamed:            flags.ProjectNamed,
		TargetCustomerDescribed: flags.TargetCustomerDescribed,
		CompetitorsRecorded:     flags.CompetitorsRecorded,
		SwotRecorded:            flags.SwotRecorded,
		InvestmentsRecorded:     flags.InvestmentsRecorded,
		SalesHypothesisSet:      flags.SalesHypothesisSet,
		SalesStrategyDescribed:  flags.SalesStrategyDescribed,
	}
}

func ToAdvice(advice finance.Advice) Advice {
	return Advice{
		MarginLow:               advice.MarginLow,
		CompetitorsInsufficient: advice.CompetitorsInsufficient,
		PlanIncomplete:          advice.PlanIncomplete,
		PlanHealthy:             advice.PlanHealthy,
	}
}
