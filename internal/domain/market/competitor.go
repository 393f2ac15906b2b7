package market

import (
	"fmt"
	"time"

	"github.com/mizan-app/mizan/internal/shared/id"
)

type Competitor struct {
	id              uint
	sid             string
	planID          uint
	name            string
	price           float64
	advantages      string
	weaknesses      string
	differentiation string
	createdAt       time.Time
}

func NewCompetitor(planID uint, name string, price float64) (*Competitor, error) {
	if planID == 0 {
		return nil, fmt.Errorf("plan ID is required")
	}
	if price < 0 {
		return nil, fmt.Errorf("price cannot be negative")
	}

	return &Competitor{
		sid:       id.MustGenerateWithPrefix(id.PrefixCompetitor, id.DefaultLength),
		planID:    planID,
		name:      name,
		price:     price,
		createdAt: time.Now(),
	}, nil
}

func ReconstructCompetitor(competitorID uint, sid string, planID uint, name string, price float64, advantages, weaknesses, differentiation string, createdAt time.Time) *Competitor {
	return &Competitor{
		id:              competitorID,
		sid:             sid,
		planID:          planID,
		name:            name,
		price:           price,
		advantages:      advantages,
		weaknesses:      weaknesses,
		differentiation: differentiation,
		createdAt:       createdAt,
	}
}

func (c *Competitor) ID() uint                { return c.id }
func (c *Competitor) SID() string             { return c.sid }
func (c *Competitor) PlanID() uint            { return c.planID }
func (c *Competitor) Name() string            { return c.name }
func (c *Competitor) Price() float64          { return c.price }
func (c *Competitor) Advantages() string      { return c.advantages }
func (c *Competitor) Weaknesses() string      { return c.weaknesses }
func (c *Competitor) Differentiation() string { return c.differentiation }
func (c *Competitor) CreatedAt() time.Time    { return c.createdAt }

func (c *Competitor) SetID(competitorID uint) { c.id = competitorID }

func (c *Competitor) Rename(name string) { c.name = name }

func (c *Competitor) SetPrice(price float64) error {
	if price < 0 {
		return fmt.Errorf("price cannot be negative")
	}
	c.price = price
	return nil
}

func (c *Competitor) UpdateAnalysis(advantages, weaknesses, differentiation string) {
	c.advantages = advantages
	c.weaknesses = weaknesses
	c.differentiation = differentiation
}
