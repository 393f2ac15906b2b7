package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	planusecases "github.com/mizan-app/mizan/internal/application/plan/usecases"
	"github.com/mizan-app/mizan/internal/domain/finance"
	"github.com/mizan-app/mizan/internal/domain/market"
	"github.com/mizan-app/mizan/internal/domain/marketing"
	"github.com/mizan-app/mizan/internal/domain/plan"
	"github.com/mizan-app/mizan/internal/domain/swot"
	"github.com/mizan-app/mizan/internal/shared/lang"
	"github.com/mizan-app/mizan/internal/shared/logger"
)

type fakePlanRepo struct {
	plan *plan.BusinessPlan
}

func (r *fakePlanRepo) Create(ctx context.Context, p *plan.BusinessPlan) error { return nil }

func (r *fakePlanRepo) GetBySID(ctx context.Context, sid string) (*plan.BusinessPlan, error) {
	if r.plan != nil && r.plan.SID() == sid {
		return r.plan, nil
	}
	return nil, plan.ErrPlanNotFound
}

func (r *fakePlanRepo) GetByOwner(ctx context.Context, ownerUserID string) (*plan.BusinessPlan, error) {
	if r.plan != nil && r.plan.IsOwnedBy(ownerUserID) {
		return r.plan, nil
	}
	return nil, plan.ErrPlanNotFound
}

func (r *fakePlanRepo) Update(ctx context.Context, p *plan.BusinessPlan) error { return nil }

// testResolver returns a resolver over a single seeded plan.
func testResolver(t *testing.T) (*planusecases.ResolvePlanUseCase, *plan.BusinessPlan) {
	t.Helper()
	p, err := plan.NewBusinessPlan("user-1", lang.French)
	require.NoError(t, err)
	p.SetID(1)
	return planusecases.NewResolvePlanUseCase(&fakePlanRepo{plan: p}, logger.NewLogger()), p
}

type fakeProjectionRepo struct {
	projection *finance.FinancialProjection
	creates    int
	updates    int
}

func (r *fakeProjectionRepo) Create(ctx context.Context, projection *finance.FinancialProjection) error {
	projection.SetID(1)
	r.projection = projection
	r.creates++
	return nil
}

func (r *fakeProjectionRepo) GetByPlan(ctx context.Context, planID uint) (*finance.FinancialProjection, error) {
	if r.projection == nil || r.projection.PlanID() != planID {
		return nil, finance.ErrProjectionNotFound
	}
	return r.projection, nil
}

func (r *fakeProjectionRepo) Update(ctx context.Context, projection *finance.FinancialProjection) error {
	r.projection = projection
	r.updates++
	return nil
}

type fakeInvestmentRepo struct {
	items []*finance.InvestmentLine
}

func (r *fakeInvestmentRepo) Create(ctx context.Context, line *finance.InvestmentLine) error {
	line.SetID(uint(len(r.items) + 1))
	r.items = append(r.items, line)
	return nil
}

func (r *fakeInvestmentRepo) GetBySID(ctx context.Context, planID uint, sid string) (*finance.InvestmentLine, error) {
	for _, line := range r.items {
		if line.PlanID() == planID && line.SID() == sid {
			return line, nil
		}
	}
	return nil, finance.ErrInvestmentLineNotFound
}

func (r *fakeInvestmentRepo) ListByPlan(ctx context.Context, planID uint) ([]*finance.InvestmentLine, error) {
	var out []*finance.InvestmentLine
	for _, line := range r.items {
		if line.PlanID() == planID {
			out = append(out, line)
		}
	}
	return out, nil
}

func (r *fakeInvestmentRepo) Update(ctx context.Context, line *finance.InvestmentLine) error {
	return nil
}

func (r *fakeInvestmentRepo) Delete(ctx context.Context, planID uint, sid string) error {
	for i, line := range r.items {
		if line.PlanID() == planID && line.SID() == sid {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return finance.ErrInvestmentLineNotFound
}

type fakeFixedCostRepo struct {
	items []*finance.FixedCost
}

func (r *fakeFixedCostRepo) Create(ctx context.Context, cost *finance.FixedCost) error {
	cost.SetID(uint(len(r.items) + 1))
	r.items = append(r.items, cost)
	return nil
}

func (r *fakeFixedCostRepo) GetBySID(ctx context.Context, planID uint, sid string) (*finance.FixedCost, error) {
	for _, cost := range r.items {
		if cost.PlanID() == planID && cost.SID() == sid {
			return cost, nil
		}
	}
	return nil, finance.ErrFixedCostNotFound
}

func (r *fakeFixedCostRepo) ListByPlan(ctx context.Context, planID uint) ([]*finance.FixedCost, error) {
	var out []*finance.FixedCost
	for _, cost := range r.items {
		if cost.PlanID() == planID {
			out = append(out, cost)
		}
	}
	return out, nil
}

func (r *fakeFixedCostRepo) Update(ctx context.Context, cost *finance.FixedCost) error { return nil }

func (r *fakeFixedCostRepo) Delete(ctx context.Context, planID uint, sid string) error {
	for i, cost := range r.items {
		if cost.PlanID() == planID && cost.SID() == sid {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return finance.ErrFixedCostNotFound
}

type fakeVariableCostRepo struct {
	items []*finance.VariableCost
}

func (r *fakeVariableCostRepo) Create(ctx context.Context, cost *finance.VariableCost) error {
	cost.SetID(uint(len(r.items) + 1))
	r.items = append(r.items, cost)
	return nil
}

func (r *fakeVariableCostRepo) GetBySID(ctx context.Context, planID uint, sid string) (*finance.VariableCost, error) {
	for _, cost := range r.items {
		if cost.PlanID() == planID && cost.SID() == sid {
			return cost, nil
		}
	}
	return nil, finance.ErrVariableCostNotFound
}

func (r *fakeVariableCostRepo) ListByPlan(ctx context.Context, planID uint) ([]*finance.VariableCost, error) {
	var out []*finance.VariableCost
	for _, cost := range r.items {
		if cost.PlanID() == planID {
			out = append(out, cost)
		}
	}
	return out, nil
}

func (r *fakeVariableCostRepo) Update(ctx context.Context, cost *finance.VariableCost) error {
	return nil
}

func (r *fakeVariableCostRepo) Delete(ctx context.Context, planID uint, sid string) error {
	for i, cost := range r.items {
		if cost.PlanID() == planID && cost.SID() == sid {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return finance.ErrVariableCostNotFound
}

type fakeMarketDataRepo struct {
	data *market.MarketData
}

func (r *fakeMarketDataRepo) Create(ctx context.Context, data *market.MarketData) error {
	r.data = data
	return nil
}

func (r *fakeMarketDataRepo) GetByPlan(ctx context.Context, planID uint) (*market.MarketData, error) {
	if r.data == nil || r.data.PlanID() != planID {
		return nil, market.ErrMarketDataNotFound
	}
	return r.data, nil
}

func (r *fakeMarketDataRepo) Update(ctx context.Context, data *market.MarketData) error { return nil }

type fakeCompetitorRepo struct {
	items []*market.Competitor
}

func (r *fakeCompetitorRepo) Create(ctx context.Context, c *market.Competitor) error {
	c.SetID(uint(len(r.items) + 1))
	r.items = append(r.items, c)
	return nil
}

func (r *fakeCompetitorRepo) GetBySID(ctx context.Context, planID uint, sid string) (*market.Competitor, error) {
	for _, c := range r.items {
		if c.PlanID() == planID && c.SID() == sid {
			return c, nil
		}
	}
	return nil, market.ErrCompetitorNotFound
}

func (r *fakeCompetitorRepo) ListByPlan(ctx context.Context, planID uint) ([]*market.Competitor, error) {
	var out []*market.Competitor
	for _, c := range r.items {
		if c.PlanID() == planID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeCompetitorRepo) CountByPlan(ctx context.Context, planID uint) (int64, error) {
	var n int64
	for _, c := range r.items {
		if c.PlanID() == planID {
			n++
		}
	}
	return n, nil
}

func (r *fakeCompetitorRepo) Update(ctx context.Context, c *market.Competitor) error { return nil }

func (r *fakeCompetitorRepo) Delete(ctx context.Context, planID uint, sid string) error {
	return nil
}

type fakeSwotRepo struct {
	analysis *swot.Analysis
}

func (r *fakeSwotRepo) Create(ctx context.Context, a *swot.Analysis) error {
	r.analysis = a
	return nil
}

func (r *fakeSwotRepo) GetByPlan(ctx context.Context, planID uint) (*swot.Analysis, error) {
	if r.analysis == nil || r.analysis.PlanID() != planID {
		return nil, swot.ErrSwotNotFound
	}
	return r.analysis, nil
}

func (r *fakeSwotRepo) Update(ctx context.Context, a *swot.Analysis) error { return nil }

type fakeMarketingRepo struct {
	strategy *marketing.Strategy
}

func (r *fakeMarketingRepo) Create(ctx context.Context, s *marketing.Strategy) error {
	r.strategy = s
	return nil
}

func (r *fakeMarketingRepo) GetByPlan(ctx context.Context, planID uint) (*marketing.Strategy, error) {
	if r.strategy == nil || r.strategy.PlanID() != planID {
		return nil, marketing.ErrStrategyNotFound
	}
	return r.strategy, nil
}

func (r *fakeMarketingRepo) Update(ctx context.Context, s *marketing.Strategy) error { return nil }
