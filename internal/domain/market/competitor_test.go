package market

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCompetitor(t *testing.T) {
	c, err := NewCompetitor(1, "Chez Hassan", 45)
	require.NoError(t, err)

	assert.Regexp(t, `^cm_`, c.SID())
	assert.Equal(t, "Chez Hassan", c.Name())
	assert.InDelta(t, 45, c.Price(), 1e-9)
}

func TestNewCompetitor_Validation(t *testing.T) {
	_, err := NewCompetitor(0, "x", 10)
	assert.Error(t, err)

	_, err = NewCompetitor(1, "x", -1)
	assert.Error(t, err)
}

func TestSetPrice(t *testing.T) {
	c, err := NewCompetitor(1, "Chez Hassan", 45)
	require.NoError(t, err)

	require.NoError(t, c.SetPrice(0))
	assert.InDelta(t, 0, c.Price(), 1e-9)

	assert.Error(t, c.SetPrice(-5))
	assert.InDelta(t, 0, c.Price(), 1e-9, "failed change must not stick")
}

func TestUpdateAnalysis(t *testing.T) {
	c, err := NewCompetitor(1, "Chez Hassan", 45)
	require.NoError(t, err)

	c.UpdateAnalysis("bien situé", "service lent", "livraison rapide")
	assert.Equal(t, "bien situé", c.Advantages())
	assert.Equal(t, "service lent", c.Weaknesses())
	assert.Equal(t, "livraison rapide", c.Differentiation())
}
