package pricing

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/glasor/glazing-backend/internal/domain"
)

// ServiceAmountInput is one service request to bill against an item.
type ServiceAmountInput struct {
	ServiceID uuid.UUID
	Name      string
	Unit      domain.BillingUnit
	Rate      domain.Money

	// MinimumBillingUnit, when set, is the floor quantity: a natural
	// quantity below it is billed at the floor, not added to it.
	MinimumBillingUnit *decimal.Decimal

	// QuantityOverride replaces the default quantity of 1 for fixed-unit
	// services. It has no effect on sqm/ml services.
	QuantityOverride *decimal.Decimal
}

// ServiceResult is the billed outcome of one service.
type ServiceResult struct {
	ServiceID uuid.UUID
	Name      string
	Unit      domain.BillingUnit
	Quantity  decimal.Decimal
	Amount    domain.Money
}

// ServiceAmount computes the billable quantity and amount for one service
// against the given dimensions. Zero rates are valid and yield a zero amount.
func ServiceAmount(input ServiceAmountInput, dims domain.Dimensions) (ServiceResult, error) {
	quantity, err := quantityForUnit(input.Unit, input.QuantityOverride, dims)
	if err != nil {
		return ServiceResult{}, fmt.Errorf("service %q: %w", input.Name, err)
	}

	if input.MinimumBillingUnit != nil && quantity.LessThan(*input.MinimumBillingUnit) {
		quantity = *input.MinimumBillingUnit
	}

	return ServiceResult{
		ServiceID: input.ServiceID,
		Name:      input.Name,
		Unit:      input.Unit,
		Quantity:  quantity,
		Amount:    input.Rate.Mul(quantity),
	}, nil
}

// quantityForUnit derives the natural quantity for a billing unit:
// a fixed count for "unit", area for "sqm", perimeter for "ml".
func quantityForUnit(unit domain.BillingUnit, override *decimal.Decimal, dims domain.Dimensions) (decimal.Decimal, error) {
	switch unit {
	case domain.BillingUnitUnit:
		if override != nil {
			return *override, nil
		}
		return decimal.NewFromInt(1), nil
	case domain.BillingUnitSqm:
		return dims.AreaSqm(), nil
	case domain.BillingUnitMl:
		return dims.PerimeterMl(), nil
	default:
		return decimal.Zero, fmt.Errorf("%w: %q", domain.ErrUnsupportedServiceUnit, unit)
	}
}
