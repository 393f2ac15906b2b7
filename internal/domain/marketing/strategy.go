// Package marketing holds the plan's marketing section: one strategy
// record per plan with free-text strategies and a channel list.
package marketing

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mizan-app/mizan/internal/shared/id"
)

var ErrStrategyNotFound = errors.New("marketing strategy not found")

type Strategy struct {
	id               uint
	sid              string
	planID           uint
	salesStrategy    string
	digitalMarketing string
	channels         []string
	createdAt        time.Time
	updatedAt        time.Time
}

func NewStrategy(planID uint) (*Strategy, error) {
	if planID == 0 {
		return nil, fmt.Errorf("plan ID is required")
	}

	now := time.Now()
	return &Strategy{
		sid:       id.MustGenerateWithPrefix(id.PrefixMarketingStrategy, id.DefaultLength),
		planID:    planID,
		channels:  []string{},
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructStrategy(strategyID uint, sid string, planID uint, salesStrategy, digitalMarketing string, channels []string, createdAt, updatedAt time.Time) *Strategy {
	return &Strategy{
		id:               strategyID,
		sid:              sid,
		planID:           planID,
		salesStrategy:    salesStrategy,
		digitalMarketing: digitalMarketing,
		channels:         channels,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}
}

func (s *Strategy) ID() uint                 { return s.id }
func (s *Strategy) SID() string              { return s.sid }
func (s *Strategy) PlanID() uint             { return s.planID }
func (s *Strategy) SalesStrategy() string    { return s.salesStrategy }
func (s *Strategy) DigitalMarketing() string { return s.digitalMarketing }
func (s *Strategy) Channels() []string       { return s.channels }
func (s *Strategy) CreatedAt() time.Time     { return s.createdAt }
func (s *Strategy) UpdatedAt() time.Time     { return s.updatedAt }

func (s *Strategy) SetID(strategyID uint) { s.id = strategyID }

func (s *Strategy) Update(salesStrategy, digitalMarketing string, channels []string) {
	s.salesStrategy = salesStrategy
	s.digitalMarketing = digitalMarketing
	if channels == nil {
		channels = []string{}
	}
	s.channels = channels
	s.updatedAt = time.Now()
}

// HasSalesStrategy reports whether the section counts as filled in for
// the completion score.
func (s *Strategy) HasSalesStrategy() bool {
	return s.salesStrategy != ""
}

type Repository interface {
	Create(ctx context.Context, strategy *Strategy) error
	GetByPlan(ctx context.Context, planID uint) (*Strategy, error)
	Update(ctx context.Context, strategy *Strategy) error
}
