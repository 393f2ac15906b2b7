package swot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAnalysis(t *testing.T) {
	a, err := NewAnalysis(1)
	require.NoError(t, err)

	assert.Regexp(t, `^sw_`, a.SID())
	assert.Empty(t, a.Strengths())
	assert.False(t, a.HasEntries())

	_, err = NewAnalysis(0)
	assert.Error(t, err)
}

func TestUpdate_DropsBlankEntries(t *testing.T) {
	a, err := NewAnalysis(1)
	require.NoError(t, err)

	a.Update(
		[]string{"emplacement central", "", "prix bas"},
		[]string{""},
		nil,
		[]string{"nouveau concurrent"},
	)

	assert.Equal(t, []string{"emplacement central", "prix bas"}, a.Strengths())
	assert.Empty(t, a.Weaknesses())
	assert.Empty(t, a.Opportunities())
	assert.Equal(t, []string{"nouveau concurrent"}, a.Threats())
	assert.True(t, a.HasEntries())
}

func TestUpdate_ReplacesAllFourLists(t *testing.T) {
	a, err := NewAnalysis(1)
	require.NoError(t, err)

	a.Update([]string{"a"}, []string{"b"}, []string{"c"}, []string{"d"})
	a.Update(nil, nil, nil, nil)

	assert.False(t, a.HasEntries(), "update is a full replace, not a merge")
}
