// Package swot holds the plan's SWOT analysis: four free-text lists
// stored as one record per plan.
package swot

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mizan-app/mizan/internal/shared/id"
)

var ErrSwotNotFound = errors.New("swot analysis not found")

type Analysis struct {
	id            uint
	sid           string
	planID        uint
	strengths     []string
	weaknesses    []string
	opportunities []string
	threats       []string
	createdAt     time.Time
	updatedAt     time.Time
}

func NewAnalysis(planID uint) (*Analysis, error) {
	if planID == 0 {
		return nil, fmt.Errorf("plan ID is required")
	}

	now := time.Now()
	return &Analysis{
		sid:           id.MustGenerateWithPrefix(id.PrefixSwotAnalysis, id.DefaultLength),
		planID:        planID,
		strengths:     []string{},
		weaknesses:    []string{},
		opportunities: []string{},
		threats:       []string{},
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

func ReconstructAnalysis(analysisID uint, sid string, planID uint, strengths, weaknesses, opportunities, threats []string, createdAt, updatedAt time.Time) *Analysis {
	return &Analysis{
		id:            analysisID,
		sid:           sid,
		planID:        planID,
		strengths:     strengths,
		weaknesses:    weaknesses,
		opportunities: opportunities,
		threats:       threats,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

func (a *Analysis) ID() uint                { return a.id }
func (a *Analysis) SID() string             { return a.sid }
func (a *Analysis) PlanID() uint            { return a.planID }
func (a *Analysis) Strengths() []string     { return a.strengths }
func (a *Analysis) Weaknesses() []string    { return a.weaknesses }
func (a *Analysis) Opportunities() []string { return a.opportunities }
func (a *Analysis) Threats() []string       { return a.threats }
func (a *Analysis) CreatedAt() time.Time    { return a.createdAt }
func (a *Analysis) UpdatedAt() time.Time    { return a.updatedAt }

func (a *Analysis) SetID(analysisID uint) { a.id = analysisID }

func (a *Analysis) Update(strengths, weaknesses, opportunities, threats []string) {
	a.strengths = normalize(strengths)
	a.weaknesses = normalize(weaknesses)
	a.opportunities = normalize(opportunities)
	a.threats = normalize(threats)
	a.updatedAt = time.Now()
}

// HasEntries reports whether any of the four lists carries an item.
func (a *Analysis) HasEntries() bool {
	return len(a.strengths)+len(a.weaknesses)+len(a.opportunities)+len(a.threats) > 0
}

// normalize drops blank entries so the lists only carry real items.
func normalize(items []string) []string {
	result := make([]string, 0, len(items))
	for _, item := range items {
		if item != "" {
			result = append(result, item)
		}
	}
	return result
}

type Repository interface {
	Create(ctx context.Context, analysis *Analysis) error
	GetByPlan(ctx context.Context, planID uint) (*Analysis, error)
	Update(ctx context.Context, analysis *Analysis) error
}
