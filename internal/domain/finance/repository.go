package finance

import (
	"context"
	"errors"
)

var (
	ErrInvestmentLineNotFound = errors.New("investment line not found")
	ErrFixedCostNotFound      = errors.New("fixed cost not found")
	ErrVariableCostNotFound   = errors.New("variable cost not found")
	ErrProjectionNotFound     = errors.New("financial projection not found")
)

// InvestmentRepository persists investment lines. Listing preserves
// insertion order.
type InvestmentRepository interface {
	Create(ctx context.Context, line *InvestmentLine) error
	GetBySID(ctx context.Context, planID uint, sid string) (*InvestmentLine, error)
	ListByPlan(ctx context.Context, planID uint) ([]*InvestmentLine, error)
	Update(ctx context.Context, line *InvestmentLine) error
	Delete(ctx context.Context, planID uint, sid string) error
}

type FixedCostRepository interface {
	Create(ctx context.Context, cost *FixedCost) error
	GetBySID(ctx context.Context, planID uint, sid string) (*FixedCost, error)
	ListByPlan(ctx context.Context, planID uint) ([]*FixedCost, error)
	Update(ctx context.Context, cost *FixedCost) error
	Delete(ctx context.Context, planID uint, sid string) error
}

type VariableCostRepository interface {
	Create(ctx context.Context, cost *VariableCost) error
	GetBySID(ctx context.Context, planID uint, sid string) (*VariableCost, error)
	ListByPlan(ctx context.Context, planID uint) ([]*VariableCost, error)
	Update(ctx context.Context, cost *VariableCost) error
	Delete(ctx context.Context, planID uint, sid string) error
}

// ProjectionRepository persists the one-per-plan projection record.
type ProjectionRepository interface {
	Create(ctx context.Context, projection *FinancialProjection) error
	GetByPlan(ctx context.Context, planID uint) (*FinancialProjection, error)
	Update(ctx context.Context, projection *FinancialProjection) error
}
