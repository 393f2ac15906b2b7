package id

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateWithPrefix(t *testing.T) {
	sid, err := GenerateWithPrefix(PrefixBusinessPlan, DefaultLength)
	require.NoError(t, err)

	assert.Regexp(t, `^bp_[0-9a-zA-Z]+$`, sid)
	assert.True(t, HasPrefix(sid, PrefixBusinessPlan))
	assert.False(t, HasPrefix(sid, PrefixCompetitor))
}

func TestGenerateWithPrefix_Uniqueness(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		sid := MustGenerateWithPrefix(PrefixInvestmentLine, DefaultLength)
		assert.False(t, seen[sid], "duplicate SID %s", sid)
		seen[sid] = true
	}
}

func TestValidatePrefix(t *testing.T) {
	assert.NoError(t, ValidatePrefix("bp_abc123", PrefixBusinessPlan))
	assert.Error(t, ValidatePrefix("cm_abc123", PrefixBusinessPlan))
	assert.Error(t, ValidatePrefix("bp_", PrefixBusinessPlan))
	assert.Error(t, ValidatePrefix("", PrefixBusinessPlan))
}

func TestStripPrefix(t *testing.T) {
	assert.Equal(t, "abc123", StripPrefix("bp_abc123", PrefixBusinessPlan))
	assert.Equal(t, "cm_abc123", StripPrefix("cm_abc123", PrefixBusinessPlan))
}
