// Package market holds the market-study section: one free-text market
// record per plan and the competitor rows.
package market

import (
	"fmt"
	"time"

	"github.com/mizan-app/mizan/internal/shared/id"
)

// MarketData is the single per-plan market study record.
type MarketData struct {
	id              uint
	sid             string
	planID          uint
	targetCustomer  string
	marketSize      string
	problemSolution string
	createdAt       time.Time
	updatedAt       time.Time
}

func NewMarketData(planID uint) (*MarketData, error) {
	if planID == 0 {
		return nil, fmt.Errorf("plan ID is required")
	}

	now := time.Now()
	return &MarketData{
		sid:       id.MustGenerateWithPrefix(id.PrefixMarketData, id.DefaultLength),
		planID:    planID,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructMarketData(dataID uint, sid string, planID uint, targetCustomer, marketSize, problemSolution string, createdAt, updatedAt time.Time) *MarketData {
	return &MarketData{
		id:              dataID,
		sid:             sid,
		planID:          planID,
		targetCustomer:  targetCustomer,
		marketSize:      marketSize,
		problemSolution: problemSolution,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

func (m *MarketData) ID() uint                { return m.id }
func (m *MarketData) SID() string             { return m.sid }
func (m *MarketData) PlanID() uint            { return m.planID }
func (m *MarketData) TargetCustomer() string  { return m.targetCustomer }
func (m *MarketData) MarketSize() string      { return m.marketSize }
func (m *MarketData) ProblemSolution() string { return m.problemSolution }
func (m *MarketData) CreatedAt() time.Time    { return m.createdAt }
func (m *MarketData) UpdatedAt() time.Time    { return m.updatedAt }

func (m *MarketData) SetID(dataID uint) { m.id = dataID }

func (m *MarketData) Update(targetCustomer, marketSize, problemSolution string) {
	m.targetCustomer = targetCustomer
	m.marketSize = marketSize
	m.problemSolution = problemSolution
	m.updatedAt = time.Now()
}

// HasTargetCustomer reports whether the section counts as filled in
// for the completion score.
func (m *MarketData) HasTargetCustomer() bool {
	return m.targetCustomer != ""
}
