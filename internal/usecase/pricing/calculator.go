package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/glasor/glazing-backend/internal/domain"
)

// GlassPricing carries the glass option applied to an item. The discount
// millimeters are subtracted from the panel dimensions before computing the
// billed area: the pane is cut smaller than the frame opening.
type GlassPricing struct {
	PricePerSqm      domain.Money
	DiscountWidthMm  int
	DiscountHeightMm int
}

// PriceCalculationInput aggregates everything needed to price one item.
// Callers supply already-resolved unit prices; the engine never talks to
// the catalog.
type PriceCalculationInput struct {
	Dims            domain.Dimensions
	BasePrice       domain.Money
	CostPerMmWidth  domain.Money
	CostPerMmHeight domain.Money

	// AccessoryPrice is billed only when WithAccessory is set.
	AccessoryPrice *domain.Money
	WithAccessory  bool

	// ColorMultiplier is the ≥0 scalar for the frame color surcharge;
	// 1.0 means no surcharge. It applies to profile and accessory costs,
	// never to glass.
	ColorMultiplier decimal.Decimal

	Glass       *GlassPricing
	Services    []ServiceAmountInput
	Adjustments []AdjustmentInput
}

// PriceCalculationResult is the itemized breakdown of one calculation.
// Invariant: Subtotal equals ProfileCost + GlassCost + AccessoryCost +
// the sum of service amounts + the sum of (already signed) adjustments.
type PriceCalculationResult struct {
	ProfileCost   domain.Money
	GlassCost     domain.Money
	AccessoryCost domain.Money
	Services      []ServiceResult
	Adjustments   []AdjustmentResult
	Subtotal      domain.Money
}

// Calculate composes the per-component calculators into a final subtotal.
// It is a pure function: no state survives a call, and failures propagate
// without recovery.
func Calculate(input PriceCalculationInput) (*PriceCalculationResult, error) {
	profileCost := ProfileCost(ProfileCostInput{
		BasePrice:       input.BasePrice,
		CostPerMmWidth:  input.CostPerMmWidth,
		CostPerMmHeight: input.CostPerMmHeight,
		ColorMultiplier: input.ColorMultiplier,
	}, input.Dims)

	glassCost := domain.ZeroMoney()
	if input.Glass != nil {
		glassCost = input.Glass.PricePerSqm.Mul(billedGlassArea(input.Dims, input.Glass))
	}

	accessoryCost := domain.ZeroMoney()
	if input.WithAccessory && input.AccessoryPrice != nil {
		accessoryCost = input.AccessoryPrice.Mul(input.ColorMultiplier)
	}

	subtotal := profileCost.Add(glassCost).Add(accessoryCost)

	services := make([]ServiceResult, 0, len(input.Services))
	for _, svc := range input.Services {
		result, err := ServiceAmount(svc, input.Dims)
		if err != nil {
			return nil, err
		}
		services = append(services, result)
		subtotal = subtotal.Add(result.Amount)
	}

	adjustments := make([]AdjustmentResult, 0, len(input.Adjustments))
	for _, adj := range input.Adjustments {
		result, err := AdjustmentAmount(adj, input.Dims)
		if err != nil {
			return nil, err
		}
		adjustments = append(adjustments, result)
		subtotal = subtotal.Add(result.Amount)
	}

	return &PriceCalculationResult{
		ProfileCost:   profileCost,
		GlassCost:     glassCost,
		AccessoryCost: accessoryCost,
		Services:      services,
		Adjustments:   adjustments,
		Subtotal:      subtotal,
	}, nil
}

// billedGlassArea computes the glass area in square meters after subtracting
// the cut discounts. A post-discount dimension of zero or less clamps the
// whole area to zero, never negative.
func billedGlassArea(dims domain.Dimensions, glass *GlassPricing) decimal.Decimal {
	billedWidth := dims.WidthMm() - glass.DiscountWidthMm
	billedHeight := dims.HeightMm() - glass.DiscountHeightMm
	if billedWidth <= 0 || billedHeight <= 0 {
		return decimal.Zero
	}

	w := decimal.NewFromInt(int64(billedWidth)).Div(decimal.NewFromInt(1000))
	h := decimal.NewFromInt(int64(billedHeight)).Div(decimal.NewFromInt(1000))
	return w.Mul(h).Round(2)
}
