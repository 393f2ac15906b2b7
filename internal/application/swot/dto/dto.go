package dto

import (
	"time"

	"github.com/mizan-app/mizan/internal/domain/swot"
)

type UpdateSwotRequest struct {
	Strengths     []string `json:"strengths"`
	Weaknesses    []string `json:"weaknesses"`
	Opportunities []string `json:"opportunities"`
	Threats       []string `json:"threats"`
}

type SwotResponse struct {
	ID            string    `json:"id"`
	Strengths     []string  `json:"strengths"`
	Weaknesses    []string  `json:"weaknesses"`
	Opportunities []string  `json:"opportunities"`
	Threats       []string  `json:"threats"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func ToSwotResponse(analysis *swot.Analysis) *SwotResponse {
	if analysis == nil {
		return nil
	}

	return &SwotResponse{
		ID:            analysis.SID(),
		Strengths:     emptyIfNil(analysis.Strengths()),
		Weaknesses:    emptyIfNil(analysis.Weaknesses()),
		Opportunities: emptyIfNil(analysis.Opportunities()),
		Threats:       emptyIfNil(analysis.Threats()),
		UpdatedAt:     analysis.UpdatedAt(),
	}
}

func emptyIfNil(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}
