package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	planusecases "github.com/mizan-app/mizan/internal/application/plan/usecases"
	"github.com/mizan-app/mizan/internal/domain/finance"
	"github.com/mizan-app/mizan/internal/domain/market"
	"github.com/mizan-app/mizan/internal/domain/marketing"
	"github.com/mizan-app/mizan/internal/domain/swot"
	"github.com/mizan-app/mizan/internal/shared/logger"
)

type dashboardFakes struct {
	marketRepo     *fakeMarketDataRepo
	competitorRepo *fakeCompetitorRepo
	swotRepo       *fakeSwotRepo
	marketingRepo  *fakeMarketingRepo
	investmentRepo *fakeInvestmentRepo
	fixedRepo      *fakeFixedCostRepo
	variableRepo   *fakeVariableCostRepo
	projectionRepo *fakeProjectionRepo
}

func newDashboardFakes() *dashboardFakes {
	return &dashboardFakes{
		marketRepo:     &fakeMarketDataRepo{},
		competitorRepo: &fakeCompetitorRepo{},
		swotRepo:       &fakeSwotRepo{},
		marketingRepo:  &fakeMarketingRepo{},
		investmentRepo: &fakeInvestmentRepo{},
		fixedRepo:      &fakeFixedCostRepo{},
		variableRepo:   &fakeVariableCostRepo{},
		projectionRepo: &fakeProjectionRepo{},
	}
}

func (f *dashboardFakes) usecase(resolver *planusecases.ResolvePlanUseCase) *GetDashboardUseCase {
	return NewGetDashboardUseCase(
		f.marketRepo,
		f.competitorRepo,
		f.swotRepo,
		f.marketingRepo,
		f.investmentRepo,
		f.fixedRepo,
		f.variableRepo,
		f.projectionRepo,
		resolver,
		logger.NewLogger(),
	)
}

func TestGetDashboard_EmptyPlan(t *testing.T) {
	resolver, p := testResolver(t)
	fakes := newDashboardFakes()
	uc := fakes.usecase(resolver)

	resp, err := uc.Execute(context.Background(), "user-1", p.SID())
	require.NoError(t, err)

	assert.InDelta(t, 0, resp.CompletionRate, 1e-9)
	assert.Equal(t, 0, resp.CompetitorCount)
	assert.Equal(t, 0, resp.BreakEvenUnits)
	assert.False(t, resp.Profitable)
	assert.True(t, resp.Advice.MarginLow)
	assert.True(t, resp.Advice.CompetitorsInsufficient)
	assert.True(t, resp.Advice.PlanIncomplete)
	assert.False(t, resp.Advice.PlanHealthy)
}

func TestGetDashboard_CompletePlanIsHealthy(t *testing.T) {
	resolver, p := testResolver(t)
	fakes := newDashboardFakes()
	ctx := context.Background()

	p.UpdateIdentity("Café Atlas", "restauration", "Casablanca")

	data, err := market.NewMarketData(p.ID())
	require.NoError(t, err)
	data.Update("étudiants du quartier", "marché local", "café de spécialité abordable")
	require.NoError(t, fakes.marketRepo.Create(ctx, data))

	for _, name := range []string{"Café Maure", "Chez Karim"} {
		c, err := market.NewCompetitor(p.ID(), name, 25)
		require.NoError(t, err)
		require.NoError(t, fakes.competitorRepo.Create(ctx, c))
	}

	analysis, err := swot.NewAnalysis(p.ID())
	require.NoError(t, err)
	analysis.Update([]string{"emplacement"}, []string{"budget serré"}, nil, nil)
	require.NoError(t, fakes.swotRepo.Create(ctx, analysis))

	strategy, err := marketing.NewStrategy(p.ID())
	require.NoError(t, err)
	strategy.Update("vente directe au comptoir", "instagram", []string{"local"})
	require.NoError(t, fakes.marketingRepo.Create(ctx, strategy))

	line, err := finance.NewInvestmentLine(p.ID(), "machine espresso", 1, 10000, 20)
	require.NoError(t, err)
	require.NoError(t, fakes.investmentRepo.Create(ctx, line))

	fixed, err := finance.NewFixedCost(p.ID(), "loyer", 8700)
	require.NoError(t, err)
	require.NoError(t, fakes.fixedRepo.Create(ctx, fixed))
	variable, err := finance.NewVariableCost(p.ID(), "matières premières", 30)
	require.NoError(t, err)
	require.NoError(t, fakes.variableRepo.Create(ctx, variable))

	projection, err := finance.NewFinancialProjection(p.ID())
	require.NoError(t, err)
	require.NoError(t, projection.SetSalesHypothesis(150, 150))
	require.NoError(t, fakes.projectionRepo.Create(ctx, projection))

	uc := fakes.usecase(resolver)
	resp, err := uc.Execute(ctx, "user-1", p.SID())
	require.NoError(t, err)

	assert.InDelta(t, 100, resp.CompletionRate, 1e-9)
	assert.True(t, resp.Sections.ProjectNamed)
	assert.True(t, resp.Sections.TargetCustomerDescribed)
	assert.True(t, resp.Sections.CompetitorsRecorded)
	assert.True(t, resp.Sections.SwotRecorded)
	assert.True(t, resp.Sections.InvestmentsRecorded)
	assert.True(t, resp.Sections.SalesHypothesisSet)
	assert.True(t, resp.Sections.SalesStrategyDescribed)

	assert.InDelta(t, 12000, resp.TotalInvestment, 1e-9)
	assert.InDelta(t, 22500, resp.MonthlyRevenue, 1e-9)
	assert.InDelta(t, 8700, resp.MonthlyFixedCosts, 1e-9)
	assert.InDelta(t, 6750, resp.MonthlyVariableCost, 1e-9)
	assert.InDelta(t, 7050, resp.MonthlyProfit, 1e-9)
	assert.Equal(t, 83, resp.BreakEvenUnits)
	assert.Equal(t, 2, resp.CompetitorCount)

	assert.False(t, resp.Advice.MarginLow)
	assert.False(t, resp.Advice.CompetitorsInsufficient)
	assert.False(t, resp.Advice.PlanIncomplete)
	assert.True(t, resp.Advice.PlanHealthy)
}

func TestGetDashboard_LowMarginWarnsEvenWhenProfitable(t *testing.T) {
	resolver, p := testResolver(t)
	fakes := newDashboardFakes()
	ctx := context.Background()

	fixed, err := finance.NewFixedCost(p.ID(), "loyer", 8700)
	require.NoError(t, err)
	require.NoError(t, fakes.fixedRepo.Create(ctx, fixed))
	variable, err := finance.NewVariableCost(p.ID(), "matières premières", 30)
	require.NoError(t, err)
	require.NoError(t, fakes.variableRepo.Create(ctx, variable))

	// Revenue 15000, costs 8700 + 4500: profitable, margin 12%.
	projection, err := finance.NewFinancialProjection(p.ID())
	require.NoError(t, err)
	require.NoError(t, projection.SetSalesHypothesis(100, 150))
	require.NoError(t, fakes.projectionRepo.Create(ctx, projection))

	uc := fakes.usecase(resolver)
	resp, err := uc.Execute(ctx, "user-1", p.SID())
	require.NoError(t, err)

	assert.True(t, resp.Profitable)
	assert.InDelta(t, 12, resp.ProfitMarginPercent, 1e-9)
	assert.True(t, resp.Advice.MarginLow)
	assert.False(t, resp.Advice.PlanHealthy, "incomplete plans are never healthy")
}

func TestGetDashboard_SingleCompetitorIsInsufficient(t *testing.T) {
	resolver, p := testResolver(t)
	fakes := newDashboardFakes()
	ctx := context.Background()

	c, err := market.NewCompetitor(p.ID(), "Café Maure", 25)
	require.NoError(t, err)
	require.NoError(t, fakes.competitorRepo.Create(ctx, c))

	uc := fakes.usecase(resolver)
	resp, err := uc.Execute(ctx, "user-1", p.SID())
	require.NoError(t, err)

	assert.Equal(t, 1, resp.CompetitorCount)
	assert.True(t, resp.Sections.CompetitorsRecorded)
	assert.True(t, resp.Advice.CompetitorsInsufficient)
	assert.InDelta(t, 100.0/7, resp.CompletionRate, 1e-9)
}
