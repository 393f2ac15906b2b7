package lang

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsSupported(t *testing.T) {
	assert.True(t, IsSupported(French))
	assert.True(t, IsSupported(Arabic))
	assert.False(t, IsSupported(""))
	assert.False(t, IsSupported("en"))
	assert.False(t, IsSupported("FR"))
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", French},
		{"fr", French},
		{"ar", Arabic},
		{"ar-MA", Arabic},
		{"fr-FR", French},
		{"en", French},
		{"not a tag", French},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestFromAcceptLanguage(t *testing.T) {
	assert.Equal(t, Arabic, FromAcceptLanguage("ar-MA,ar;q=0.9,fr;q=0.8"))
	assert.Equal(t, French, FromAcceptLanguage("fr-FR,fr;q=0.9"))
	assert.Equal(t, French, FromAcceptLanguage(""))
	assert.Equal(t, French, FromAcceptLanguage("de-DE"))
}
