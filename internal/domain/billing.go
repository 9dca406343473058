package domain

import "fmt"

// BillingUnit determines how a service's billable quantity is derived
// from an item's dimensions.
type BillingUnit string

const (
	// BillingUnitUnit bills a fixed count, independent of dimensions
	BillingUnitUnit BillingUnit = "unit"

	// BillingUnitSqm bills by panel area in square meters
	BillingUnitSqm BillingUnit = "sqm"

	// BillingUnitMl bills by panel perimeter in linear meters
	BillingUnitMl BillingUnit = "ml"
)

// ParseBillingUnit validates a raw unit string.
// Returns ErrUnsupportedServiceUnit for anything outside unit/sqm/ml.
func ParseBillingUnit(raw string) (BillingUnit, error) {
	switch BillingUnit(raw) {
	case BillingUnitUnit, BillingUnitSqm, BillingUnitMl:
		return BillingUnit(raw), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedServiceUnit, raw)
	}
}

// Valid reports whether the unit is one of the supported billing units.
func (u BillingUnit) Valid() bool {
	_, err := ParseBillingUnit(string(u))
	return err == nil
}
