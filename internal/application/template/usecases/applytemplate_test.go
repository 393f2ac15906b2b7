package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	planusecases "github.com/mizan-app/mizan/internal/application/plan/usecases"
	"github.com/mizan-app/mizan/internal/application/template/dto"
	"github.com/mizan-app/mizan/internal/domain/plan"
	"github.com/mizan-app/mizan/internal/domain/template"
	"github.com/mizan-app/mizan/internal/shared/lang"
	"github.com/mizan-app/mizan/internal/shared/logger"
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

type fakeApplier struct {
	planID uint
	set    template.ReplacementSet
	calls  int
}

func (a *fakeApplier) ReplacePlanFinancials(ctx context.Context, planID uint, set template.ReplacementSet) error {
	a.planID = planID
	a.set = set
	a.calls++
	return nil
}

func testPlan(t *testing.T, language string) *plan.BusinessPlan {
	t.Helper()
	p, err := plan.NewBusinessPlan("user-1", language)
	require.NoError(t, err)
	p.SetID(1)
	return p
}

func TestApplyTemplate_CafeRestaurant(t *testing.T) {
	p := testPlan(t, lang.French)
	resolver := planusecases.NewResolvePlanUseCase(&fakePlanRepo{plan: p}, logger.NewLogger())
	applier := &fakeApplier{}

	uc := NewApplyTemplateUseCase(applier, resolver, logger.NewLogger())
	resp, err := uc.Execute(context.Background(), "user-1", p.SID(), dto.ApplyTemplateRequest{Key: "cafe_restaurant"})
	require.NoError(t, err)

	assert.Equal(t, "cafe_restaurant", resp.Key)
	assert.Equal(t, 5, resp.InvestmentsApplied)
	assert.Equal(t, 4, resp.FixedCostsApplied)
	assert.Equal(t, 2, resp.VariableApplied)
	assert.True(t, resp.HypothesisApplied)

	assert.Equal(t, 1, applier.calls)
	assert.Equal(t, uint(1), applier.planID)
	require.Len(t, applier.set.Investments, 5)
	for _, line := range applier.set.Investments {
		assert.Equal(t, uint(1), line.PlanID())
	}
	require.NotNil(t, applier.set.Hypothesis)
}

func TestApplyTemplate_SeedsFollowPlanLanguage(t *testing.T) {
	p := testPlan(t, lang.Arabic)
	resolver := planusecases.NewResolvePlanUseCase(&fakePlanRepo{plan: p}, logger.NewLogger())
	applier := &fakeApplier{}

	uc := NewApplyTemplateUseCase(applier, resolver, logger.NewLogger())
	_, err := uc.Execute(context.Background(), "user-1", p.SID(), dto.ApplyTemplateRequest{Key: "cafe_restaurant"})
	require.NoError(t, err)

	arTpl, err := template.Get(lang.Arabic, "cafe_restaurant")
	require.NoError(t, err)
	require.NotEmpty(t, applier.set.FixedCosts)
	assert.Equal(t, arTpl.FixedCosts[0].Name, applier.set.FixedCosts[0].Name())
}

func TestApplyTemplate_UnknownKey(t *testing.T) {
	p := testPlan(t, lang.French)
	resolver := planusecases.NewResolvePlanUseCase(&fakePlanRepo{plan: p}, logger.NewLogger())
	applier := &fakeApplier{}

	uc := NewApplyTemplateUseCase(applier, resolver, logger.NewLogger())
	_, err := uc.Execute(context.Background(), "user-1", p.SID(), dto.ApplyTemplateRequest{Key: "boulangerie"})
	assert.ErrorIs(t, err, template.ErrTemplateNotFound)
	assert.Equal(t, 0, applier.calls)
}

func TestApplyTemplate_ForeignPlan(t *testing.T) {
	p := testPlan(t, lang.French)
	resolver := planusecases.NewResolvePlanUseCase(&fakePlanRepo{plan: p}, logger.NewLogger())

	uc := NewApplyTemplateUseCase(&fakeApplier{}, resolver, logger.NewLogger())
	_, err := uc.Execute(context.Background(), "someone-else", p.SID(), dto.ApplyTemplateRequest{Key: "cafe_restaurant"})
	assert.ErrorIs(t, err, plan.ErrPlanNotFound)
}
