package dto

import "time"

type UpdatePlanRequest struct {
	ProjectName *string `json:"project_name" binding:"omitempty,max=200"`
	Sector      *string `json:"sector" binding:"omitempty,max=100"`
	CityRegion  *string `json:"city_region" binding:"omitempty,max=200"`
	Language    *string `json:"language" binding:"omitempty,planlang"`
}

type PlanResponse struct {
	ID          string    `json:"id"`
	ProjectName string    `json:"project_name"`
	Sector      string    `json:"sector"`
	CityRegion  string    `json:"city_region"`
	Language    string    `json:"language"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
