package pricing

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glasor/glazing-backend/internal/domain"
)

func TestCalculate_EndToEndProfileOnly(t *testing.T) {
	// width=1000, height=800, base=150000, perMmW=75, perMmH=60, min 0x0:
	// 150000 + 75×1000 + 60×800 = 273000
	input := PriceCalculationInput{
		Dims:            mustDims(t, 1000, 800, 0, 0),
		BasePrice:       domain.MustMoney(150000),
		CostPerMmWidth:  domain.MustMoney(75),
		CostPerMmHeight: domain.MustMoney(60),
		ColorMultiplier: decimal.NewFromInt(1),
	}

	result, err := Calculate(input)
	require.NoError(t, err)

	assert.Equal(t, 273000.0, result.ProfileCost.Float64())
	assert.True(t, result.GlassCost.IsZero())
	assert.True(t, result.AccessoryCost.IsZero())
	assert.Equal(t, 273000.0, result.Subtotal.Float64())
}

func TestCalculate_GlassDiscountReducesBilledArea(t *testing.T) {
	// 1000x2000 panel with 100/100 glass discounts: 0.9m × 1.9m = 1.71 sqm
	input := PriceCalculationInput{
		Dims:            mustDims(t, 1000, 2000, 0, 0),
		BasePrice:       domain.ZeroMoney(),
		CostPerMmWidth:  domain.ZeroMoney(),
		CostPerMmHeight: domain.ZeroMoney(),
		ColorMultiplier: decimal.NewFromInt(1),
		Glass: &GlassPricing{
			PricePerSqm:      domain.MustMoney(50),
			DiscountWidthMm:  100,
			DiscountHeightMm: 100,
		},
	}

	result, err := Calculate(input)
	require.NoError(t, err)
	assert.Equal(t, 85.5, result.GlassCost.Float64(), "50 × 1.71")
}

func TestCalculate_GlassDiscountClampsToZeroArea(t *testing.T) {
	// Discounts equal to or larger than the panel clamp the area to zero
	input := PriceCalculationInput{
		Dims:            mustDims(t, 400, 400, 0, 0),
		BasePrice:       domain.ZeroMoney(),
		CostPerMmWidth:  domain.ZeroMoney(),
		CostPerMmHeight: domain.ZeroMoney(),
		ColorMultiplier: decimal.NewFromInt(1),
		Glass: &GlassPricing{
			PricePerSqm:      domain.MustMoney(50),
			DiscountWidthMm:  400,
			DiscountHeightMm: 100,
		},
	}

	result, err := Calculate(input)
	require.NoError(t, err)
	assert.True(t, result.GlassCost.IsZero(), "post-discount dimension of zero must not go negative")
}

func TestCalculate_ColorAppliesToProfileAndAccessoryNotGlass(t *testing.T) {
	accessory := domain.MustMoney(100)
	input := PriceCalculationInput{
		Dims:            mustDims(t, 1000, 1000, 1000, 1000),
		BasePrice:       domain.MustMoney(200),
		CostPerMmWidth:  domain.ZeroMoney(),
		CostPerMmHeight: domain.ZeroMoney(),
		AccessoryPrice:  &accessory,
		WithAccessory:   true,
		ColorMultiplier: decimal.RequireFromString("1.2"),
		Glass: &GlassPricing{
			PricePerSqm: domain.MustMoney(100),
		},
	}

	result, err := Calculate(input)
	require.NoError(t, err)

	assert.Equal(t, 240.0, result.ProfileCost.Float64(), "profile takes the surcharge")
	assert.Equal(t, 120.0, result.AccessoryCost.Float64(), "accessory takes the surcharge")
	assert.Equal(t, 100.0, result.GlassCost.Float64(), "glass never takes the surcharge")
	assert.Equal(t, 460.0, result.Subtotal.Float64())
}

func TestCalculate_AccessoryRequiresBothPriceAndRequest(t *testing.T) {
	accessory := domain.MustMoney(100)

	base := PriceCalculationInput{
		Dims:            mustDims(t, 1000, 1000, 0, 0),
		BasePrice:       domain.ZeroMoney(),
		CostPerMmWidth:  domain.ZeroMoney(),
		CostPerMmHeight: domain.ZeroMoney(),
		ColorMultiplier: decimal.NewFromInt(1),
		AccessoryPrice:  &accessory,
	}

	result, err := Calculate(base)
	require.NoError(t, err)
	assert.True(t, result.AccessoryCost.IsZero(), "accessory not requested")

	base.WithAccessory = true
	base.AccessoryPrice = nil
	result, err = Calculate(base)
	require.NoError(t, err)
	assert.True(t, result.AccessoryCost.IsZero(), "model has no accessory price")
}

func TestCalculate_SubtotalAdditivity(t *testing.T) {
	minimum := decimal.RequireFromString("2.5")
	input := PriceCalculationInput{
		Dims:            mustDims(t, 1200, 1500, 800, 800),
		BasePrice:       domain.MustMoney(180.4),
		CostPerMmWidth:  domain.MustMoney(0.12),
		CostPerMmHeight: domain.MustMoney(0.09),
		ColorMultiplier: decimal.RequireFromString("1.15"),
		Glass: &GlassPricing{
			PricePerSqm:      domain.MustMoney(42.3),
			DiscountWidthMm:  80,
			DiscountHeightMm: 80,
		},
		Services: []ServiceAmountInput{
			{Name: "Cutting", Unit: domain.BillingUnitSqm, Rate: domain.MustMoney(11.5), MinimumBillingUnit: &minimum},
			{Name: "Installation", Unit: domain.BillingUnitUnit, Rate: domain.MustMoney(60)},
			{Name: "Polished edge", Unit: domain.BillingUnitMl, Rate: domain.MustMoney(4.25)},
		},
		Adjustments: []AdjustmentInput{
			{Concept: "Promo discount", Unit: domain.BillingUnitUnit, Value: domain.MustMoney(30), IsPositive: false},
			{Concept: "Access surcharge", Unit: domain.BillingUnitUnit, Value: domain.MustMoney(15), IsPositive: true},
		},
	}

	result, err := Calculate(input)
	require.NoError(t, err)

	sum := result.ProfileCost.Add(result.GlassCost).Add(result.AccessoryCost)
	for _, svc := range result.Services {
		sum = sum.Add(svc.Amount)
	}
	for _, adj := range result.Adjustments {
		sum = sum.Add(adj.Amount)
	}

	assert.InDelta(t, sum.Float64(), result.Subtotal.Float64(), 0.01,
		"subtotal must equal the sum of its components")
	assert.Len(t, result.Services, 3)
	assert.Len(t, result.Adjustments, 2)
}

func TestCalculate_ServiceErrorPropagates(t *testing.T) {
	input := PriceCalculationInput{
		Dims:            mustDims(t, 1000, 1000, 0, 0),
		BasePrice:       domain.ZeroMoney(),
		CostPerMmWidth:  domain.ZeroMoney(),
		CostPerMmHeight: domain.ZeroMoney(),
		ColorMultiplier: decimal.NewFromInt(1),
		Services: []ServiceAmountInput{
			{Name: "Broken", Unit: "m3", Rate: domain.MustMoney(1)},
		},
	}

	_, err := Calculate(input)
	assert.ErrorIs(t, err, domain.ErrUnsupportedServiceUnit)
}

func TestCalculate_DeterministicAcrossRuns(t *testing.T) {
	input := PriceCalculationInput{
		Dims:            mustDims(t, 1234, 987, 400, 400),
		BasePrice:       domain.MustMoney(99.99),
		CostPerMmWidth:  domain.MustMoney(0.07),
		CostPerMmHeight: domain.MustMoney(0.03),
		ColorMultiplier: decimal.RequireFromString("1.05"),
	}

	first, err := Calculate(input)
	require.NoError(t, err)
	second, err := Calculate(input)
	require.NoError(t, err)

	if math.Abs(first.Subtotal.Float64()-second.Subtotal.Float64()) > 0 {
		t.Fatalf("calculation is not deterministic: %v vs %v", first.Subtotal, second.Subtotal)
	}
}
