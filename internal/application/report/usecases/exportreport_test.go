package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	planusecases "github.com/mizan-app/mizan/internal/application/plan/usecases"
	"github.com/mizan-app/mizan/internal/application/report/dto"
	"github.com/mizan-app/mizan/internal/domain/finance"
	"github.com/mizan-app/mizan/internal/domain/market"
	"github.com/mizan-app/mizan/internal/domain/marketing"
	"github.com/mizan-app/mizan/internal/domain/plan"
	"github.com/mizan-app/mizan/internal/domain/swot"
	"github.com/mizan-app/mizan/internal/shared/lang"
	"github.com/mizan-app/mizan/internal/shared/logger"
	"github.com/mizan-app/mizan/internal/shared/services/markdown"
)

type fakePlanRepo struct {
	plan *plan.BusinessPlan
}

func (r *fakePlanRepo) Create(ctx context.Context, p *plan.BusinessPlan) error { return nil }

func (r *fakePlanRepo) GetBySID(ctx context.Context, sid string) (*plan.BusinessPlan, error) {
	if r.plan == nil || r.plan.SID() != sid {
		return nil, plan.ErrPlanNotFound
	}
	return r.plan, nil
}

func (r *fakePlanRepo) GetByOwner(ctx context.Context, ownerID string) (*plan.BusinessPlan, error) {
	if r.plan == nil || !r.plan.IsOwnedBy(ownerID) {
		return nil, plan.ErrPlanNotFound
	}
	return r.plan, nil
}

func (r *fakePlanRepo) Update(ctx context.Context, p *plan.BusinessPlan) error { return nil }

type fakeMarketDataRepo struct{ data *market.MarketData }

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

type fakeCompetitorRepo struct{ items []*market.Competitor }

func (r *fakeCompetitorRepo) Create(ctx context.Context, c *market.Competitor) error {
	r.items = append(r.items, c)
	return nil
}

func (r *fakeCompetitorRepo) GetBySID(ctx context.Context, planID uint, sid string) (*market.Competitor, error) {
	return nil, market.ErrCompetitorNotFound
}

func (r *fakeCompetitorRepo) ListByPlan(ctx context.Context, planID uint) ([]*market.Competitor, error) {
	return r.items, nil
}

func (r *fakeCompetitorRepo) CountByPlan(ctx context.Context, planID uint) (int64, error) {
	return int64(len(r.items)), nil
}

func (r *fakeCompetitorRepo) Update(ctx context.Context, c *market.Competitor) error { return nil }
func (r *fakeCompetitorRepo) Delete(ctx context.Context, planID uint, sid string) error { return nil }

type fakeSwotRepo struct{ analysis *swot.Analysis }

func (r *fakeSwotRepo) Create(ctx context.Context, a *swot.Analysis) error {
	r.analysis = a
	return nil
}

func (r *fakeSwotRepo) GetByPlan(ctx context.Context, planID uint) (*swot.Analysis, error) {
	if r.analysis == nil {
		return nil, swot.ErrSwotNotFound
	}
	return r.analysis, nil
}

func (r *fakeSwotRepo) Update(ctx context.Context, a *swot.Analysis) error { return nil }

type fakeMarketingRepo struct{ strategy *marketing.Strategy }

func (r *fakeMarketingRepo) Create(ctx context.Context, s *marketing.Strategy) error {
	r.strategy = s
	return nil
}

func (r *fakeMarketingRepo) GetByPlan(ctx context.Context, planID uint) (*marketing.Strategy, error) {
	if r.strategy == nil {
		return nil, marketing.ErrStrategyNotFound
	}
	return r.strategy, nil
}

func (r *fakeMarketingRepo) Update(ctx context.Context, s *marketing.Strategy) error { return nil }

type fakeInvestmentRepo struct{ items []*finance.InvestmentLine }

func (r *fakeInvestmentRepo) Create(ctx context.Context, line *finance.InvestmentLine) error {
	r.items = append(r.items, line)
	return nil
}

func (r *fakeInvestmentRepo) GetBySID(ctx context.Context, planID uint, sid string) (*finance.InvestmentLine, error) {
	return nil, finance.ErrInvestmentLineNotFound
}

func (r *fakeInvestmentRepo) ListByPlan(ctx context.Context, planID uint) ([]*finance.InvestmentLine, error) {
	return r.items, nil
}

func (r *fakeInvestmentRepo) Update(ctx context.Context, line *finance.InvestmentLine) error { return nil }
func (r *fakeInvestmentRepo) Delete(ctx context.Context, planID uint, sid string) error { return nil }

type fakeFixedCostRepo struct{ items []*finance.FixedCost }

func (r *fakeFixedCostRepo) Create(ctx context.Context, cost *finance.FixedCost) error {
	r.items = append(r.items, cost)
	return nil
}

func (r *fakeFixedCostRepo) GetBySID(ctx context.Context, planID uint, sid string) (*finance.FixedCost, error) {
	return nil, finance.ErrFixedCostNotFound
}

func (r *fakeFixedCostRepo) ListByPlan(ctx context.Context, planID uint) ([]*finance.FixedCost, error) {
	return r.items, nil
}

func (r *fakeFixedCostRepo) Update(ctx context.Context, cost *finance.FixedCost) error { return nil }
func (r *fakeFixedCostRepo) Delete(ctx context.Context, planID uint, sid string) error { return nil }

type fakeVariableCostRepo struct{ items []*finance.VariableCost }

func (r *fakeVariableCostRepo) Create(ctx context.Context, cost *finance.VariableCost) error {
	r.items = append(r.items, cost)
	return nil
}

func (r *fakeVariableCostRepo) GetBySID(ctx context.Context, planID uint, sid string) (*finance.VariableCost, error) {
	return nil, finance.ErrVariableCostNotFound
}

func (r *fakeVariableCostRepo) ListByPlan(ctx context.Context, planID uint) ([]*finance.VariableCost, error) {
	return r.items, nil
}

func (r *fakeVariableCostRepo) Update(ctx context.Context, cost *finance.VariableCost) error { return nil }
func (r *fakeVariableCostRepo) Delete(ctx context.Context, planID uint, sid string) error { return nil }

type fakeProjectionRepo struct{ projection *finance.FinancialProjection }

func (r *fakeProjectionRepo) Create(ctx context.Context, projection *finance.FinancialProjection) error {
	r.projection = projection
	return nil
}

func (r *fakeProjectionRepo) GetByPlan(ctx context.Context, planID uint) (*finance.FinancialProjection, error) {
	if r.projection == nil {
		return nil, finance.ErrProjectionNotFound
	}
	return r.projection, nil
}

func (r *fakeProjectionRepo) Update(ctx context.Context, projection *finance.FinancialProjection) error {
	return nil
}

type reportFakes struct {
	marketRepo     *fakeMarketDataRepo
	competitorRepo *fakeCompetitorRepo
	swotRepo       *fakeSwotRepo
	marketingRepo  *fakeMarketingRepo
	investmentRepo *fakeInvestmentRepo
	fixedRepo      *fakeFixedCostRepo
	variableRepo   *fakeVariableCostRepo
	projectionRepo *fakeProjectionRepo
}

func newReportFakes() *reportFakes {
	return &reportFakes{
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

func (f *reportFakes) usecase(p *plan.BusinessPlan) *ExportReportUseCase {
	resolver := planusecases.NewResolvePlanUseCase(&fakePlanRepo{plan: p}, logger.NewLogger())
	return NewExportReportUseCase(
		f.marketRepo,
		f.competitorRepo,
		f.swotRepo,
		f.marketingRepo,
		f.investmentRepo,
		f.fixedRepo,
		f.variableRepo,
		f.projectionRepo,
		markdown.NewMarkdownService(),
		resolver,
		logger.NewLogger(),
	)
}

func reportPlan(t *testing.T, language string) *plan.BusinessPlan {
	t.Helper()
	p, err := plan.NewBusinessPlan("user-1", language)
	require.NoError(t, err)
	p.SetID(1)
	return p
}

func TestExportReport_MarkdownSkipsEmptySections(t *testing.T) {
	p := reportPlan(t, lang.French)
	fakes := newReportFakes()

	uc := fakes.usecase(p)
	resp, err := uc.Execute(context.Background(), "user-1", p.SID(), dto.ExportReportRequest{Format: dto.FormatMarkdown})
	require.NoError(t, err)

	assert.Equal(t, dto.FormatMarkdown, resp.Format)
	assert.Contains(t, resp.Content, "# Mon projet", "untitled plans get a placeholder title")
	assert.NotContains(t, resp.Content, "Étude de marché")
	assert.NotContains(t, resp.Content, "Analyse SWOT")
	assert.NotContains(t, resp.Content, "Étude financière")
	assert.NotContains(t, resp.Content, "Stratégie marketing")
}

func TestExportReport_MarkdownFullPlan(t *testing.T) {
	p := reportPlan(t, lang.French)
	p.UpdateIdentity("Café Atlas", "restauration", "Casablanca")
	fakes := newReportFakes()
	ctx := context.Background()

	data, err := market.NewMarketData(p.ID())
	require.NoError(t, err)
	data.Update("étudiants", "quartier universitaire", "café abordable")
	require.NoError(t, fakes.marketRepo.Create(ctx, data))

	c, err := market.NewCompetitor(p.ID(), "Café Maure", 25)
	require.NoError(t, err)
	require.NoError(t, fakes.competitorRepo.Create(ctx, c))

	analysis, err := swot.NewAnalysis(p.ID())
	require.NoError(t, err)
	analysis.Update([]string{"emplacement central"}, nil, []string{"quartier en croissance"}, nil)
	require.NoError(t, fakes.swotRepo.Create(ctx, analysis))

	line, err := finance.NewInvestmentLine(p.ID(), "machine espresso", 1, 10000, 20)
	require.NoError(t, err)
	require.NoError(t, fakes.investmentRepo.Create(ctx, line))

	fixed, err := finance.NewFixedCost(p.ID(), "loyer", 8000)
	require.NoError(t, err)
	require.NoError(t, fakes.fixedRepo.Create(ctx, fixed))

	projection, err := finance.NewFinancialProjection(p.ID())
	require.NoError(t, err)
	require.NoError(t, projection.SetSalesHypothesis(600, 80))
	require.NoError(t, fakes.projectionRepo.Create(ctx, projection))

	uc := fakes.usecase(p)
	resp, err := uc.Execute(ctx, "user-1", p.SID(), dto.ExportReportRequest{Format: dto.FormatMarkdown})
	require.NoError(t, err)

	assert.Contains(t, resp.Content, "# Café Atlas")
	assert.Contains(t, resp.Content, "- Secteur: restauration")
	assert.Contains(t, resp.Content, "## Étude de marché")
	assert.Contains(t, resp.Content, "| Café Maure | 25.00 |")
	assert.Contains(t, resp.Content, "## Analyse SWOT")
	assert.Contains(t, resp.Content, "- emplacement central")
	assert.Contains(t, resp.Content, "## Étude financière")
	assert.Contains(t, resp.Content, "Total investissement: **12000.00 MAD**")
	assert.Contains(t, resp.Content, "Total mensuel: **8000.00 MAD**")
	assert.Contains(t, resp.Content, "Chiffre d'affaires mensuel: 48000.00 MAD")
	assert.NotContains(t, resp.Content, "Stratégie marketing")
}

func TestExportReport_DefaultFormatIsSanitizedHTML(t *testing.T) {
	p := reportPlan(t, lang.French)
	p.UpdateIdentity("Café <script>alert(1)</script>", "", "")
	fakes := newReportFakes()

	uc := fakes.usecase(p)
	resp, err := uc.Execute(context.Background(), "user-1", p.SID(), dto.ExportReportRequest{})
	require.NoError(t, err)

	assert.Equal(t, dto.FormatHTML, resp.Format)
	assert.Contains(t, resp.Content, "<h1")
	assert.NotContains(t, resp.Content, "<script>")
}

func TestExportReport_ArabicLabels(t *testing.T) {
	p := reportPlan(t, lang.Arabic)
	p.UpdateIdentity("مقهى الأطلس", "مطعمة", "الدار البيضاء")
	fakes := newReportFakes()
	ctx := context.Background()

	fixed, err := finance.NewFixedCost(p.ID(), "الكراء", 8000)
	require.NoError(t, err)
	require.NoError(t, fakes.fixedRepo.Create(ctx, fixed))

	uc := fakes.usecase(p)
	resp, err := uc.Execute(ctx, "user-1", p.SID(), dto.ExportReportRequest{Format: dto.FormatMarkdown})
	require.NoError(t, err)

	assert.Contains(t, resp.Content, "# مقهى الأطلس")
	assert.Contains(t, resp.Content, "## الدراسة المالية")
	assert.Contains(t, resp.Content, "درهم")
}

func TestExportReport_ForeignPlan(t *testing.T) {
	p := reportPlan(t, lang.French)
	fakes := newReportFakes()

	uc := fakes.usecase(p)
	_, err := uc.Execute(context.Background(), "someone-else", p.SID(), dto.ExportReportRequest{})
	assert.ErrorIs(t, err, plan.ErrPlanNotFound)
}
