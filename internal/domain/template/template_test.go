package template

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mizan-app/mizan/internal/shared/lang"
)

func TestGet_CafeRestaurant(t *testing.T) {
	tpl, err := Get(lang.French, KeyCafeRestaurant)
	require.NoError(t, err)

	assert.Equal(t, "Café / Restaurant", tpl.Label)
	assert.Len(t, tpl.Investments, 5)
	assert.Len(t, tpl.FixedCosts, 4)
	assert.Len(t, tpl.VariableCosts, 2)
	require.NotNil(t, tpl.SalesHypothesis)
	assert.InDelta(t, 80, tpl.SalesHypothesis.AvgPrice, 1e-9)
	assert.InDelta(t, 600, tpl.SalesHypothesis.MonthlyOrders, 1e-9)
}

func TestGet_UnknownKeyOrLanguage(t *testing.T) {
	_, err := Get(lang.French, "boulangerie")
	assert.ErrorIs(t, err, ErrTemplateNotFound)

	_, err = Get("es", KeyCafeRestaurant)
	assert.ErrorIs(t, err, ErrTemplateNotFound)
}

func TestGet_BothLanguagesCarrySameFigures(t *testing.T) {
	for _, key := range Keys {
		fr, err := Get(lang.French, key)
		require.NoError(t, err, key)
		ar, err := Get(lang.Arabic, key)
		require.NoError(t, err, key)

		require.Len(t, ar.Investments, len(fr.Investments), key)
		for i := range fr.Investments {
			assert.InDelta(t, fr.Investments[i].UnitPriceExclTax, ar.Investments[i].UnitPriceExclTax, 1e-9)
			assert.InDelta(t, fr.Investments[i].Quantity, ar.Investments[i].Quantity, 1e-9)
			assert.InDelta(t, fr.Investments[i].TaxRate, ar.Investments[i].TaxRate, 1e-9)
		}
		require.Len(t, ar.FixedCosts, len(fr.FixedCosts), key)
		require.Len(t, ar.VariableCosts, len(fr.VariableCosts), key)
	}
}

func TestList_CanonicalOrder(t *testing.T) {
	summaries := List(lang.French)
	require.Len(t, summaries, 4)

	keys := make([]string, 0, len(summaries))
	for _, s := range summaries {
		keys = append(keys, s.Key)
		assert.NotEmpty(t, s.Label)
		assert.True(t, s.HasHypothesis)
	}
	assert.Equal(t, []string{KeyImprimerie, KeyCafeRestaurant, KeyEcommerce, KeyServices}, keys)

	// Unknown language falls back to the primary one
	fallback := List("de")
	require.Len(t, fallback, 4)
	assert.Equal(t, "Atelier impression / communication", fallback[0].Label)
}

func TestBuildReplacementSet_PreservesSeedOrder(t *testing.T) {
	tpl, err := Get(lang.French, KeyImprimerie)
	require.NoError(t, err)

	set, err := BuildReplacementSet(42, tpl)
	require.NoError(t, err)

	require.Len(t, set.Investments, len(tpl.Investments))
	for i, line := range set.Investments {
		assert.Equal(t, tpl.Investments[i].Name, line.Name())
		assert.Equal(t, uint(42), line.PlanID())
		assert.InDelta(t, tpl.Investments[i].Quantity*tpl.Investments[i].UnitPriceExclTax, line.Totals().TotalExclTax, 1e-9)
	}
	require.Len(t, set.FixedCosts, len(tpl.FixedCosts))
	for i, cost := range set.FixedCosts {
		assert.Equal(t, tpl.FixedCosts[i].Name, cost.Name())
		assert.InDelta(t, tpl.FixedCosts[i].MonthlyAmount, cost.MonthlyAmount(), 1e-9)
	}
	require.Len(t, set.VariableCosts, len(tpl.VariableCosts))
	require.NotNil(t, set.Hypothesis)
	assert.InDelta(t, 150, set.Hypothesis.AvgPrice, 1e-9)
}
