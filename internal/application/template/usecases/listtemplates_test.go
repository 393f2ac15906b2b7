package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mizan-app/mizan/internal/shared/lang"
	"github.com/mizan-app/mizan/internal/shared/logger"
)

func TestListTemplates_CanonicalOrder(t *testing.T) {
	uc := NewListTemplatesUseCase(logger.NewLogger())

	resp, err := uc.Execute(context.Background(), lang.French)
	require.NoError(t, err)
	require.Len(t, resp, 4)

	keys := make([]string, 0, len(resp))
	for _, s := range resp {
		keys = append(keys, s.Key)
	}
	assert.Equal(t, []string{"imprimerie", "cafe_restaurant", "ecommerce", "services"}, keys)
}

func TestListTemplates_ArabicLabels(t *testing.T) {
	uc := NewListTemplatesUseCase(logger.NewLogger())

	resp, err := uc.Execute(context.Background(), lang.Arabic)
	require.NoError(t, err)
	require.Len(t, resp, 4)
	assert.Equal(t, "مقهى / مطعم", resp[1].Label)
	assert.Equal(t, 5, resp[1].InvestmentCount)
	assert.True(t, resp[1].HasHypothesis)
}

func TestListTemplates_UnknownLanguageFallsBackToFrench(t *testing.T) {
	uc := NewListTemplatesUseCase(logger.NewLogger())

	resp, err := uc.Execute(context.Background(), "en")
	require.NoError(t, err)
	require.Len(t, resp, 4)
	assert.Equal(t, "Café / Restaurant", resp[1].Label)
}
