package dto

import "github.com/mizan-app/mizan/internal/domain/template"

type ApplyTemplateRequest struct {
	Key string `json:"template_key" binding:"required"`
}

type TemplateSummaryResponse struct {
	Key             string `json:"key"`
	Label           string `json:"label"`
	InvestmentCount int    `json:"investment_count"`
	FixedCostCount  int    `json:"fixed_cost_count"`
	VariableCount   int    `json:"variable_cost_count"`
	HasHypothesis   bool   `json:"has_hypothesis"`
}

type ApplyTemplateResponse struct {
	Key                string `json:"key"`
	InvestmentsApplied int    `json:"investments_applied"`
	FixedCostsApplied  int    `json:"fixed_costs_applied"`
	VariableApplied    int    `json:"variable_costs_applied"`
	HypothesisApplied  bool   `json:"hypothesis_applied"`
}

func ToTemplateSummaryResponse(summary template.Summary) *TemplateSummaryResponse {
	return &TemplateSummaryResponse{
		Key:             summary.Key,
		Label:           summary.Label,
		InvestmentCount: summary.InvestmentCount,
		FixedCostCount:  summary.FixedCostCount,
		VariableCount:   summary.VariableCount,
		HasHypothesis:   summary.HasHypothesis,
	}
}

func ToTemplateSummaryResponseList(summaries []template.Summary) []*TemplateSummaryResponse {
	responses := make([]*TemplateSummaryResponse, 0, len(summaries))
	for _, summary := range summaries {
		responses = append(responses, ToTemplateSummaryResponse(summary))
	}
	return responses
}
