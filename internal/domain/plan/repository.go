package plan

import (
	"context"
	"errors"
)

var ErrPlanNotFound = errors.New("business plan not found")

type Repository interface {
	Create(ctx context.Context, p *BusinessPlan) error
	GetBySID(ctx context.Context, sid string) (*BusinessPlan, error)
	// GetByOwner returns the owner's most recent plan.
	GetByOwner(ctx context.Context, ownerUserID string) (*BusinessPlan, error)
	Update(ctx context.Context, p *BusinessPlan) error
}
