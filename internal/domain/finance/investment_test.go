package finance

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeLineTotals(t *testing.T) {
	tests := []struct {
		name     string
		quantity float64
		price    float64
		rate     float64
		wantBase float64
		wantTax  float64
	}{
		{"simple line at 20%", 2, 6000, 20, 12000, 2400},
		{"zero rate", 3, 100, 0, 300, 0},
		{"zero quantity", 0, 9999, 20, 0, 0},
		{"reduced rate", 1, 1000, 7, 1000, 70},
		{"fractional quantity", 2.5, 80, 10, 200, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			totals := ComputeLineTotals(tt.quantity, tt.price, tt.rate)

			assert.InDelta(t, tt.wantBase, totals.TotalExclTax, 1e-9)
			assert.InDelta(t, tt.wantTax, totals.TaxAmount, 1e-9)
			assert.InDelta(t, tt.wantBase+tt.wantTax, totals.TotalInclTax, 1e-9)
			// total_incl_tax = q·p·(1+r/100)
			assert.InDelta(t, tt.quantity*tt.price*(1+tt.rate/100), totals.TotalInclTax, 1e-9)
		})
	}
}

func TestSumLineTotals_MixedRatesSumPerLine(t *testing.T) {
	// Two lines with different rates: the aggregate tax must be the sum
	// of each line's own tax, not (sum of bases) x a single rate.
	lineA, err := NewInvestmentLine(1, "machine", 1, 1000, 20)
	require.NoError(t, err)
	lineB, err := NewInvestmentLine(1, "fournitures", 1, 1000, 7)
	require.NoError(t, err)

	agg := SumLineTotals([]*InvestmentLine{lineA, lineB})

	assert.InDelta(t, 2000, agg.TotalExclTax, 1e-9)
	assert.InDelta(t, 200+70, agg.TaxAmount, 1e-9)
	assert.InDelta(t, 2270, agg.TotalInclTax, 1e-9)

	// Re-deriving from the summed base at either single rate disagrees.
	assert.Greater(t, math.Abs(agg.TaxAmount-2000*0.20), 1e-9)
	assert.Greater(t, math.Abs(agg.TaxAmount-2000*0.07), 1e-9)
}

func TestSumLineTotals_Empty(t *testing.T) {
	agg := SumLineTotals(nil)

	assert.Zero(t, agg.TotalExclTax)
	assert.Zero(t, agg.TaxAmount)
	assert.Zero(t, agg.TotalInclTax)
}

func TestNewInvestmentLine_Validation(t *testing.T) {
	_, err := NewInvestmentLine(0, "x", 1, 100, 20)
	assert.Error(t, err)

	_, err = NewInvestmentLine(1, "x", -1, 100, 20)
	assert.Error(t, err)

	_, err = NewInvestmentLine(1, "x", 1, -100, 20)
	assert.Error(t, err)

	_, err = NewInvestmentLine(1, "x", 1, 100, 19)
	assert.Error(t, err, "19 is not an enumerated tax rate")

	line, err := NewInvestmentLine(1, "", 1, 0, 20)
	require.NoError(t, err, "blank rows are allowed")
	assert.NotEmpty(t, line.SID())
	assert.Zero(t, line.Totals().TotalInclTax)
}

func TestInvestmentLine_SettersRecomputeTotals(t *testing.T) {
	line, err := NewInvestmentLine(1, "PC design", 2, 6000, 20)
	require.NoError(t, err)
	assert.InDelta(t, 14400, line.Totals().TotalInclTax, 1e-9)

	require.NoError(t, line.SetQuantity(3))
	assert.InDelta(t, 21600, line.Totals().TotalInclTax, 1e-9)

	require.NoError(t, line.SetUnitPriceExclTax(1000))
	assert.InDelta(t, 3600, line.Totals().TotalInclTax, 1e-9)

	require.NoError(t, line.SetTaxRate(0))
	assert.InDelta(t, 3000, line.Totals().TotalInclTax, 1e-9)

	assert.Error(t, line.SetTaxRate(50))
	assert.Error(t, line.SetQuantity(-1))
	assert.Error(t, line.SetUnitPriceExclTax(-5))
	// Failed mutations leave the totals untouched
	assert.InDelta(t, 3000, line.Totals().TotalInclTax, 1e-9)
}

func TestIsAllowedTaxRate(t *testing.T) {
	for _, rate := range []float64{0, 7, 10, 14, 20} {
		assert.True(t, IsAllowedTaxRate(rate), "rate %v", rate)
	}
	for _, rate := range []float64{-1, 5, 19.6, 21, 100} {
		assert.False(t, IsAllowedTaxRate(rate), "rate %v", rate)
	}
}
