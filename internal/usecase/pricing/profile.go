// Package pricing implements the quote pricing engine: pure, stateless
// calculators for profile, glass, accessory, service and adjustment costs,
// and the orchestrator that composes them into an itemized breakdown.
package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/glasor/glazing-backend/internal/domain"
)

// ProfileCostInput carries the model prices used to price the structural frame.
type ProfileCostInput struct {
	BasePrice       domain.Money
	CostPerMmWidth  domain.Money
	CostPerMmHeight domain.Money
	ColorMultiplier decimal.Decimal
}

// ProfileCost prices the frame for the given dimensions:
//
//	(basePrice × colorMultiplier)
//	+ (costPerMmWidth × colorMultiplier) × extraWidthMm
//	+ (costPerMmHeight × colorMultiplier) × extraHeightMm
//
// Each term is multiplied by the color multiplier independently before
// summing. A multiplier of zero zeroes every term; dimensions at or below
// the model minimum contribute nothing beyond the base term.
func ProfileCost(input ProfileCostInput, dims domain.Dimensions) domain.Money {
	base := input.BasePrice.Mul(input.ColorMultiplier)

	widthTerm := input.CostPerMmWidth.
		Mul(input.ColorMultiplier).
		Mul(decimal.NewFromInt(int64(dims.ExtraWidthMm())))

	heightTerm := input.CostPerMmHeight.
		Mul(input.ColorMultiplier).
		Mul(decimal.NewFromInt(int64(dims.ExtraHeightMm())))

	return base.Add(widthTerm).Add(heightTerm)
}
