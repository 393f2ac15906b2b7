package dto

import "github.com/mizan-app/mizan/internal/domain/plan"

func ToPlanResponse(p *plan.BusinessPlan) *PlanResponse {
	if p == nil {
		return nil
	}

	return &PlanResponse{
		ID:          p.SID(),
		ProjectName: p.ProjectName(),
		Sector:      p.Sector(),
		CityRegion:  p.CityRegion(),
		Language:    p.Language(),
		CreatedAt:   p.CreatedAt(),
		UpdatedAt:   p.UpdatedAt(),
	}
}
