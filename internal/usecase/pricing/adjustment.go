package pricing

import (
	"fmt"

	"github.com/glasor/glazing-backend/internal/domain"
)

// AdjustmentInput is one ad-hoc charge or discount applied to the subtotal.
type AdjustmentInput struct {
	Concept string
	Unit    domain.BillingUnit

	// Value is the pre-sign amount. For "unit" adjustments it is applied
	// as-is; for sqm/ml it is scaled by the same quantity semantics as
	// services for consistency.
	Value domain.Money

	// IsPositive selects the sign: surcharge when true, discount when false.
	IsPositive bool
}

// AdjustmentResult is the signed outcome of one adjustment.
type AdjustmentResult struct {
	Concept string
	Amount  domain.Money
}

// AdjustmentAmount resolves one adjustment to its signed amount.
// The value itself is never validated against the sign: a negative value
// combined with IsPositive=false double-negates, and that combination is
// accepted as-is.
func AdjustmentAmount(input AdjustmentInput, dims domain.Dimensions) (AdjustmentResult, error) {
	quantity, err := quantityForUnit(input.Unit, nil, dims)
	if err != nil {
		return AdjustmentResult{}, fmt.Errorf("adjustment %q: %w", input.Concept, err)
	}

	amount := input.Value.Mul(quantity)
	if !input.IsPositive {
		amount = amount.Neg()
	}

	return AdjustmentResult{
		Concept: input.Concept,
		Amount:  amount,
	}, nil
}
