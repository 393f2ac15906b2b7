package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mizan-app/mizan/internal/application/finance/dto"
	"github.com/mizan-app/mizan/internal/domain/finance"
	"github.com/mizan-app/mizan/internal/shared/logger"
)

func f64(v float64) *float64 { return &v }

func TestUpdateProjection_CreatesOnFirstWrite(t *testing.T) {
	resolver, p := testResolver(t)
	projRepo := &fakeProjectionRepo{}
	fixedRepo := &fakeFixedCostRepo{}
	variableRepo := &fakeVariableCostRepo{}

	uc := NewUpdateProjectionUseCase(projRepo, fixedRepo, variableRepo, resolver, logger.NewLogger())
	resp, err := uc.Execute(context.Background(), "user-1", p.SID(), dto.UpdateProjectionRequest{
		MonthlyOrders: f64(150),
		AvgPrice:      f64(150),
	})
	require.NoError(t, err)

	assert.Equal(t, 1, projRepo.creates)
	assert.Equal(t, 0, projRepo.updates)
	assert.InDelta(t, 22500, resp.MonthlyRevenue, 1e-9)
	assert.InDelta(t, 270000, resp.Year1Revenue, 1e-9, "orders x price x 12")
	assert.False(t, resp.RevenueOverridden)
}

func TestUpdateProjection_HypothesisRecomputesDerivedRevenue(t *testing.T) {
	resolver, p := testResolver(t)
	projRepo := &fakeProjectionRepo{}
	fixedRepo := &fakeFixedCostRepo{}
	variableRepo := &fakeVariableCostRepo{}

	cost, err := finance.NewFixedCost(p.ID(), "loyer", 8700)
	require.NoError(t, err)
	require.NoError(t, fixedRepo.Create(context.Background(), cost))
	vc, err := finance.NewVariableCost(p.ID(), "matières", 30)
	require.NoError(t, err)
	require.NoError(t, variableRepo.Create(context.Background(), vc))

	uc := NewUpdateProjectionUseCase(projRepo, fixedRepo, variableRepo, resolver, logger.NewLogger())
	resp, err := uc.Execute(context.Background(), "user-1", p.SID(), dto.UpdateProjectionRequest{
		MonthlyOrders: f64(150),
		AvgPrice:      f64(150),
	})
	require.NoError(t, err)

	assert.InDelta(t, 7050, resp.MonthlyProfit, 1e-9)
	assert.Equal(t, 83, resp.BreakEvenUnits)
	assert.InDelta(t, 8700, resp.MonthlyFixedCosts, 1e-9)
}

func TestUpdateProjection_OverrideAndReset(t *testing.T) {
	resolver, p := testResolver(t)
	projRepo := &fakeProjectionRepo{}
	fixedRepo := &fakeFixedCostRepo{}
	variableRepo := &fakeVariableCostRepo{}

	uc := NewUpdateProjectionUseCase(projRepo, fixedRepo, variableRepo, resolver, logger.NewLogger())

	_, err := uc.Execute(context.Background(), "user-1", p.SID(), dto.UpdateProjectionRequest{
		MonthlyOrders: f64(100),
		AvgPrice:      f64(200),
	})
	require.NoError(t, err)

	resp, err := uc.Execute(context.Background(), "user-1", p.SID(), dto.UpdateProjectionRequest{
		Year1Revenue: f64(300000),
	})
	require.NoError(t, err)
	assert.True(t, resp.RevenueOverridden)
	assert.InDelta(t, 300000, resp.Year1Revenue, 1e-9)

	// Changing the hypothesis keeps the explicit override in place.
	resp, err = uc.Execute(context.Background(), "user-1", p.SID(), dto.UpdateProjectionRequest{
		MonthlyOrders: f64(120),
	})
	require.NoError(t, err)
	assert.True(t, resp.RevenueOverridden)
	assert.InDelta(t, 300000, resp.Year1Revenue, 1e-9)

	resp, err = uc.Execute(context.Background(), "user-1", p.SID(), dto.UpdateProjectionRequest{
		ResetRevenue: true,
	})
	require.NoError(t, err)
	assert.False(t, resp.RevenueOverridden)
	assert.InDelta(t, 120*200*12, resp.Year1Revenue, 1e-9, "reset falls back to the derived value")
}

func TestUpdateProjection_GrowthRates(t *testing.T) {
	resolver, p := testResolver(t)
	projRepo := &fakeProjectionRepo{}

	uc := NewUpdateProjectionUseCase(projRepo, &fakeFixedCostRepo{}, &fakeVariableCostRepo{}, resolver, logger.NewLogger())
	resp, err := uc.Execute(context.Background(), "user-1", p.SID(), dto.UpdateProjectionRequest{
		MonthlyOrders:   f64(150),
		AvgPrice:        f64(150),
		Year2GrowthRate: f64(20),
		Year3GrowthRate: f64(-10),
	})
	require.NoError(t, err)

	assert.InDelta(t, 324000, resp.Year2Revenue, 1e-6)
	assert.InDelta(t, 291600, resp.Year3Revenue, 1e-6)
}

func TestUpdateProjection_RejectsNegativeHypothesis(t *testing.T) {
	resolver, p := testResolver(t)
	projRepo := &fakeProjectionRepo{}

	uc := NewUpdateProjectionUseCase(projRepo, &fakeFixedCostRepo{}, &fakeVariableCostRepo{}, resolver, logger.NewLogger())
	_, err := uc.Execute(context.Background(), "user-1", p.SID(), dto.UpdateProjectionRequest{
		MonthlyOrders: f64(-1),
		AvgPrice:      f64(100),
	})
	assert.Error(t, err)
	assert.Equal(t, 0, projRepo.creates, "invalid input writes nothing")
}
