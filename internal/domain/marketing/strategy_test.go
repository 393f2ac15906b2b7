package marketing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStrategy(t *testing.T) {
	s, err := NewStrategy(1)
	require.NoError(t, err)

	assert.Regexp(t, `^mk_`, s.SID())
	assert.NotNil(t, s.Channels())
	assert.False(t, s.HasSalesStrategy())

	_, err = NewStrategy(0)
	assert.Error(t, err)
}

func TestUpdate(t *testing.T) {
	s, err := NewStrategy(1)
	require.NoError(t, err)

	s.Update("vente directe au comptoir", "page Instagram", []string{"instagram", "whatsapp"})
	assert.True(t, s.HasSalesStrategy())
	assert.Equal(t, []string{"instagram", "whatsapp"}, s.Channels())

	s.Update("vente directe", "", nil)
	assert.NotNil(t, s.Channels(), "nil channels become an empty list")
	assert.Empty(t, s.Channels())
}
