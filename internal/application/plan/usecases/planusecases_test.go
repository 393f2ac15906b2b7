package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mizan-app/mizan/internal/application/plan/dto"
	"github.com/mizan-app/mizan/internal/domain/plan"
	"github.com/mizan-app/mizan/internal/shared/lang"
	"github.com/mizan-app/mizan/internal/shared/logger"
)

type fakePlanRepo struct {
	plans   []*plan.BusinessPlan
	created []*plan.BusinessPlan
	updated []*plan.BusinessPlan
}

func (r *fakePlanRepo) Create(ctx context.Context, p *plan.BusinessPlan) error {
	p.SetID(uint(len(r.plans) + 1))
	r.plans = append(r.plans, p)
	r.created = append(r.created, p)
	return nil
}

func (r *fakePlanRepo) GetBySID(ctx context.Context, sid string) (*plan.BusinessPlan, error) {
	for _, p := range r.plans {
		if p.SID() == sid {
			return p, nil
		}
	}
	return nil, plan.ErrPlanNotFound
}

func (r *fakePlanRepo) GetByOwner(ctx context.Context, ownerUserID string) (*plan.BusinessPlan, error) {
	for i := len(r.plans) - 1; i >= 0; i-- {
		if r.plans[i].IsOwnedBy(ownerUserID) {
			return r.plans[i], nil
		}
	}
	return nil, plan.ErrPlanNotFound
}

func (r *fakePlanRepo) Update(ctx context.Context, p *plan.BusinessPlan) error {
	r.updated = append(r.updated, p)
	return nil
}

func seedPlan(t *testing.T, repo *fakePlanRepo, ownerUserID string) *plan.BusinessPlan {
	t.Helper()
	p, err := plan.NewBusinessPlan(ownerUserID, lang.French)
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), p))
	return p
}

func TestResolvePlan_Owned(t *testing.T) {
	repo := &fakePlanRepo{}
	p := seedPlan(t, repo, "user-1")

	uc := NewResolvePlanUseCase(repo, logger.NewLogger())
	got, err := uc.Execute(context.Background(), "user-1", p.SID())
	require.NoError(t, err)
	assert.Equal(t, p.SID(), got.SID())
}

func TestResolvePlan_ForeignPlanReadsAsNotFound(t *testing.T) {
	repo := &fakePlanRepo{}
	p := seedPlan(t, repo, "user-1")

	uc := NewResolvePlanUseCase(repo, logger.NewLogger())
	_, err := uc.Execute(context.Background(), "user-2", p.SID())
	assert.ErrorIs(t, err, plan.ErrPlanNotFound)
}

func TestGetOrCreatePlan_BySID(t *testing.T) {
	repo := &fakePlanRepo{}
	p := seedPlan(t, repo, "user-1")

	uc := NewGetOrCreatePlanUseCase(repo, lang.French, logger.NewLogger())
	resp, err := uc.Execute(context.Background(), "user-1", p.SID())
	require.NoError(t, err)

	assert.Equal(t, p.SID(), resp.ID)
	assert.Len(t, repo.created, 1, "no extra plan created")
}

func TestGetOrCreatePlan_StaleSIDFallsBackToOwner(t *testing.T) {
	repo := &fakePlanRepo{}
	p := seedPlan(t, repo, "user-1")

	uc := NewGetOrCreatePlanUseCase(repo, lang.French, logger.NewLogger())
	resp, err := uc.Execute(context.Background(), "user-1", "bp_doesnotexist")
	require.NoError(t, err)

	assert.Equal(t, p.SID(), resp.ID)
}

func TestGetOrCreatePlan_ForeignSIDFallsBackToOwner(t *testing.T) {
	repo := &fakePlanRepo{}
	foreign := seedPlan(t, repo, "user-1")
	mine := seedPlan(t, repo, "user-2")

	uc := NewGetOrCreatePlanUseCase(repo, lang.French, logger.NewLogger())
	resp, err := uc.Execute(context.Background(), "user-2", foreign.SID())
	require.NoError(t, err)

	assert.Equal(t, mine.SID(), resp.ID)
}

func TestGetOrCreatePlan_CreatesBlankPlan(t *testing.T) {
	repo := &fakePlanRepo{}

	uc := NewGetOrCreatePlanUseCase(repo, lang.Arabic, logger.NewLogger())
	resp, err := uc.Execute(context.Background(), "user-1", "")
	require.NoError(t, err)

	require.Len(t, repo.created, 1)
	assert.Equal(t, lang.Arabic, resp.Language)
	assert.Empty(t, resp.ProjectName)
	assert.Regexp(t, `^bp_`, resp.ID)
}

func TestUpdatePlan_PartialUpdate(t *testing.T) {
	repo := &fakePlanRepo{}
	p := seedPlan(t, repo, "user-1")

	name := "Snack Atlas"
	language := lang.Arabic
	uc := NewUpdatePlanUseCase(repo, NewResolvePlanUseCase(repo, logger.NewLogger()), logger.NewLogger())
	resp, err := uc.Execute(context.Background(), "user-1", p.SID(), dto.UpdatePlanRequest{
		ProjectName: &name,
		Language:    &language,
	})
	require.NoError(t, err)

	assert.Equal(t, "Snack Atlas", resp.ProjectName)
	assert.Equal(t, lang.Arabic, resp.Language)
	assert.Empty(t, resp.Sector, "untouched fields keep their values")
	require.Len(t, repo.updated, 1)
}

func TestUpdatePlan_ForeignPlan(t *testing.T) {
	repo := &fakePlanRepo{}
	p := seedPlan(t, repo, "user-1")

	name := "x"
	uc := NewUpdatePlanUseCase(repo, NewResolvePlanUseCase(repo, logger.NewLogger()), logger.NewLogger())
	_, err := uc.Execute(context.Background(), "user-2", p.SID(), dto.UpdatePlanRequest{ProjectName: &name})
	assert.ErrorIs(t, err, plan.ErrPlanNotFound)
	assert.Empty(t, repo.updated)
}
