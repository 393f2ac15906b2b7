package dto

import "time"

type UpdateMarketDataRequest struct {
	TargetCustomer  *string `json:"target_customer"`
	MarketSize      *string `json:"market_size"`
	ProblemSolution *string `json:"problem_solution"`
}

type MarketDataResponse struct {
	ID              string    `json:"id"`
	TargetCustomer  string    `json:"target_customer"`
	MarketSize      string    `json:"market_size"`
	ProblemSolution string    `json:"problem_solution"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type CreateCompetitorRequest struct {
	Name            string  `json:"name" binding:"required,max=200"`
	Price           float64 `json:"price" binding:"omitempty,min=0"`
	Advantages      string  `json:"advantages"`
	Weaknesses      string  `json:"weaknesses"`
	Differentiation string  `json:"differentiation"`
}

type UpdateCompetitorRequest struct {
	Name            *string  `json:"name" binding:"omitempty,max=200"`
	Price           *float64 `json:"price" binding:"omitempty,min=0"`
	Advantages      *string  `json:"advantages"`
	Weaknesses      *string  `json:"weaknesses"`
	Differentiation *string  `json:"differentiation"`
}

type CompetitorResponse struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Price           float64   `json:"price"`
	Advantages      string    `json:"advantages"`
	Weaknesses      string    `json:"weaknesses"`
	Differentiation string    `json:"differentiation"`
	CreatedAt       time.Time `json:"created_at"`
}
