package dto

import (
	"time"

	"github.com/mizan-app/mizan/internal/domain/marketing"
)

type UpdateMarketingRequest struct {
	SalesStrategy    *string  `json:"sales_strategy"`
	DigitalMarketing *string  `json:"digital_marketing"`
	Channels         []string `json:"channels"`
}

type MarketingResponse struct {
	ID               string    `json:"id"`
	SalesStrategy    string    `json:"sales_strategy"`
	DigitalMarketing string    `json:"digital_marketing"`
	Channels         []string  `json:"channels"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func ToMarketingResponse(strategy *marketing.Strategy) *MarketingResponse {
	if strategy == nil {
		return nil
	}

	channels := strategy.Channels()
	if channels == nil {
		channels = []string{}
	}

	return &MarketingResponse{
		ID:               strategy.SID(),
		SalesStrategy:    strategy.SalesStrategy(),
		DigitalMarketing: strategy.DigitalMarketing(),
		Channels:         channels,
		UpdatedAt:        strategy.UpdatedAt(),
	}
}
