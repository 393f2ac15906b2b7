package plan

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mizan-app/mizan/internal/shared/lang"
)

func TestNewBusinessPlan(t *testing.T) {
	p, err := NewBusinessPlan("user-1", lang.French)
	require.NoError(t, err)

	assert.Equal(t, "user-1", p.OwnerUserID())
	assert.Equal(t, lang.French, p.Language())
	assert.Empty(t, p.ProjectName())
	assert.True(t, p.IsOwnedBy("user-1"))
	assert.False(t, p.IsOwnedBy("user-2"))
	assert.Regexp(t, `^bp_`, p.SID())
}

func TestNewBusinessPlan_Validation(t *testing.T) {
	_, err := NewBusinessPlan("", lang.French)
	assert.Error(t, err)

	_, err = NewBusinessPlan("user-1", "es")
	assert.Error(t, err)

	_, err = NewBusinessPlan("user-1", "")
	assert.Error(t, err, "language must be explicit, callers normalize first")
}

func TestUpdateIdentity(t *testing.T) {
	p, err := NewBusinessPlan("user-1", lang.French)
	require.NoError(t, err)

	before := p.UpdatedAt()
	time.Sleep(time.Millisecond)
	p.UpdateIdentity("Snack Atlas", "restauration", "Agadir")

	assert.Equal(t, "Snack Atlas", p.ProjectName())
	assert.Equal(t, "restauration", p.Sector())
	assert.Equal(t, "Agadir", p.CityRegion())
	assert.True(t, p.UpdatedAt().After(before))
}

func TestSetLanguage(t *testing.T) {
	p, err := NewBusinessPlan("user-1", lang.French)
	require.NoError(t, err)

	require.NoError(t, p.SetLanguage(lang.Arabic))
	assert.Equal(t, lang.Arabic, p.Language())

	assert.Error(t, p.SetLanguage("en"))
	assert.Equal(t, lang.Arabic, p.Language(), "failed change must not stick")
}

func TestReconstructBusinessPlan(t *testing.T) {
	now := time.Now()
	p := ReconstructBusinessPlan(7, "bp_abc123", "user-1", "Atelier", "artisanat", "Fès", lang.Arabic, now, now)

	assert.Equal(t, uint(7), p.ID())
	assert.Equal(t, "bp_abc123", p.SID())
	assert.Equal(t, "Atelier", p.ProjectName())
	assert.Equal(t, lang.Arabic, p.Language())
}
