package dto

import "github.com/mizan-app/mizan/internal/domain/market"

func ToMarketDataResponse(data *market.MarketData) *MarketDataResponse {
	if data == nil {
		return nil
	}

	return &MarketDataResponse{
		ID:              data.SID(),
		TargetCustomer:  data.TargetCustomer(),
		MarketSize:      data.MarketSize(),
		ProblemSolution: data.ProblemSolution(),
		UpdatedAt:       data.UpdatedAt(),
	}
}

func ToCompetitorResponse(competitor *market.Competitor) *CompetitorResponse {
	if competitor == nil {
		return nil
	}

	return &CompetitorResponse{
		ID:              competitor.SID(),
		Name:            competitor.Name(),
		Price:           competitor.Price(),
		Advantages:      competitor.Advantages(),
		Weaknesses:      competitor.Weaknesses(),
		Differentiation: competitor.Differentiation(),
		CreatedAt:       competitor.CreatedAt(),
	}
}

func ToCompetitorResponseList(competitors []*market.Competitor) []*CompetitorResponse {
	responses := make([]*CompetitorResponse, 0, len(competitors))
	for _, competitor := range competitors {
		responses = append(responses, ToCompetitorResponse(competitor))
	}
	return responses
}
