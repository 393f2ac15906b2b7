package finance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTotalFixedCosts(t *testing.T) {
	loyer, err := NewFixedCost(1, "Loyer", 3500)
	require.NoError(t, err)
	salaire, err := NewFixedCost(1, "Salaire employé", 4000)
	require.NoError(t, err)

	assert.InDelta(t, 7500, TotalFixedCosts([]*FixedCost{loyer, salaire}), 1e-9)
	assert.Zero(t, TotalFixedCosts(nil), "empty cost list yields zero, not an error")
}

func TestTotalVariableRate(t *testing.T) {
	consommables, err := NewVariableCost(1, "Consommables", 25)
	require.NoError(t, err)
	livraison, err := NewVariableCost(1, "Livraison", 5)
	require.NoError(t, err)

	assert.InDelta(t, 30, TotalVariableRate([]*VariableCost{consommables, livraison}), 1e-9)
	assert.Zero(t, TotalVariableRate(nil))
}

func TestMonthlyVariableCost(t *testing.T) {
	assert.InDelta(t, 6750, MonthlyVariableCost(22500, 30), 1e-9)
	assert.Zero(t, MonthlyVariableCost(0, 30))
	assert.Zero(t, MonthlyVariableCost(22500, 0))
}

func TestCostValidation(t *testing.T) {
	_, err := NewFixedCost(1, "Loyer", -1)
	assert.Error(t, err)

	_, err = NewVariableCost(1, "Livraison", -1)
	assert.Error(t, err)

	// Rates above 100 are unusual but accepted
	c, err := NewVariableCost(1, "Commission", 120)
	require.NoError(t, err)
	assert.InDelta(t, 120, c.RateOfSales(), 1e-9)
}
