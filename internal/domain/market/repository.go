package market

import (
	"context"
	"errors"
)

var (
	ErrMarketDataNotFound = errors.New("market data not found")
	ErrCompetitorNotFound = errors.New("competitor not found")
)

type MarketDataRepository interface {
	Create(ctx context.Context, data *MarketData) error
	GetByPlan(ctx context.Context, planID uint) (*MarketData, error)
	Update(ctx context.Context, data *MarketData) error
}

type CompetitorRepository interface {
	Create(ctx context.Context, competitor *Competitor) error
	GetBySID(ctx context.Context, planID uint, sid string) (*Competitor, error)
	ListByPlan(ctx context.Context, planID uint) ([]*Competitor, error)
	CountByPlan(ctx context.Context, planID uint) (int64, error)
	Update(ctx context.Context, competitor *Competitor) error
	Delete(ctx context.Context, planID uint, sid string) error
}
