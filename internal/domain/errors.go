package domain

import "errors"

// Sentinel errors for the pricing engine. Callers match them with errors.Is
// and translate them into user-facing messages at the adapter boundary.
var (
	// ErrInvalidAmount indicates a Money input that cannot be parsed as a finite decimal
	ErrInvalidAmount = errors.New("invalid monetary amount")

	// ErrDivisionByZero indicates a Money division with a zero divisor
	ErrDivisionByZero = errors.New("division by zero")

	// ErrInvalidDimensions indicates a width or height of zero or less
	ErrInvalidDimensions = errors.New("invalid dimensions")

	// ErrUnsupportedServiceUnit indicates a billing unit outside unit/sqm/ml
	ErrUnsupportedServiceUnit = errors.New("unsupported service unit")

	// ErrNotFound indicates a catalog or quote entity that does not exist
	ErrNotFound = errors.New("not found")

	// ErrValidation indicates a request that fails business validation,
	// such as dimensions outside a model's envelope
	ErrValidation = errors.New("validation failed")
)
