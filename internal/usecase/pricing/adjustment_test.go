package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glasor/glazing-backend/internal/domain"
)

func TestAdjustmentAmount_SignedByFlag(t *testing.T) {
	dims := mustDims(t, 1000, 2000, 0, 0)

	surcharge, err := AdjustmentAmount(AdjustmentInput{
		Concept:    "Urgent delivery",
		Unit:       domain.BillingUnitUnit,
		Value:      domain.MustMoney(25),
		IsPositive: true,
	}, dims)
	require.NoError(t, err)
	assert.Equal(t, 25.0, surcharge.Amount.Float64())

	discount, err := AdjustmentAmount(AdjustmentInput{
		Concept:    "Loyal customer",
		Unit:       domain.BillingUnitUnit,
		Value:      domain.MustMoney(25),
		IsPositive: false,
	}, dims)
	require.NoError(t, err)
	assert.Equal(t, -25.0, discount.Amount.Float64())
}

func TestAdjustmentAmount_UnitScaling(t *testing.T) {
	// sqm/ml adjustments reuse the service quantity semantics
	dims := mustDims(t, 1000, 2000, 0, 0)

	byArea, err := AdjustmentAmount(AdjustmentInput{
		Concept:    "Oversize handling",
		Unit:       domain.BillingUnitSqm,
		Value:      domain.MustMoney(10),
		IsPositive: true,
	}, dims)
	require.NoError(t, err)
	assert.Equal(t, 20.0, byArea.Amount.Float64(), "10 × 2.00 sqm")

	byPerimeter, err := AdjustmentAmount(AdjustmentInput{
		Concept:    "Edge protection",
		Unit:       domain.BillingUnitMl,
		Value:      domain.MustMoney(2),
		IsPositive: false,
	}, dims)
	require.NoError(t, err)
	assert.Equal(t, -12.0, byPerimeter.Amount.Float64(), "-(2 × 6.00 ml)")
}

func TestAdjustmentAmount_DoubleNegationAccepted(t *testing.T) {
	// A negative value with IsPositive=false double-negates; the engine
	// accepts the combination as-is rather than rejecting it.
	dims := mustDims(t, 1000, 2000, 0, 0)

	result, err := AdjustmentAmount(AdjustmentInput{
		Concept:    "Odd data entry",
		Unit:       domain.BillingUnitUnit,
		Value:      domain.MustMoney(-10),
		IsPositive: false,
	}, dims)

	require.NoError(t, err)
	assert.Equal(t, 10.0, result.Amount.Float64())
}

func TestAdjustmentAmount_UnsupportedUnit(t *testing.T) {
	dims := mustDims(t, 1000, 2000, 0, 0)

	_, err := AdjustmentAmount(AdjustmentInput{
		Concept: "Broken",
		Unit:    "pieces",
		Value:   domain.MustMoney(5),
	}, dims)

	assert.ErrorIs(t, err, domain.ErrUnsupportedServiceUnit)
}
