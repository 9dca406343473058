package domain

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// moneyPlaces is the fixed number of fractional digits carried by Money.
const moneyPlaces = 2

// Money represents a monetary amount with fixed 2-decimal precision.
// It is immutable: every operation returns a new instance, and every
// instance is rounded half-up to 2 decimals at construction and after
// each arithmetic step. Rounding eagerly (rather than only at output)
// keeps compounded results stable: adding 0.1 ten times yields exactly 1.1.
type Money struct {
	amount decimal.Decimal
}

// ZeroMoney returns a Money of value 0.00.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero}
}

// NewMoney creates a Money from a float64.
// Returns ErrInvalidAmount for NaN or infinite values.
func NewMoney(value float64) (Money, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return Money{}, fmt.Errorf("%w: %v", ErrInvalidAmount, value)
	}
	return NewMoneyFromDecimal(decimal.NewFromFloat(value)), nil
}

// NewMoneyFromString creates a Money from a decimal string such as "0.125".
// Returns ErrInvalidAmount if the string is not a valid decimal.
func NewMoneyFromString(value string) (Money, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Money{}, fmt.Errorf("%w: %q", ErrInvalidAmount, value)
	}
	return NewMoneyFromDecimal(d), nil
}

// NewMoneyFromDecimal creates a Money from an already-parsed decimal.
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{amount: d.Round(moneyPlaces)}
}

// MustMoney creates a Money from a float64 and panics on invalid input.
// Intended for constants and tests.
func MustMoney(value float64) Money {
	m, err := NewMoney(value)
	if err != nil {
		panic(err)
	}
	return m
}

// Add returns a new Money holding m + other.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount).Round(moneyPlaces)}
}

// Sub returns a new Money holding m - other.
func (m Money) Sub(other Money) Money {
	return Money{amount: m.amount.Sub(other.amount).Round(moneyPlaces)}
}

// Mul returns a new Money holding m × factor, rounded to 2 decimals.
func (m Money) Mul(factor decimal.Decimal) Money {
	return Money{amount: m.amount.Mul(factor).Round(moneyPlaces)}
}

// MulFloat is a convenience wrapper over Mul for primitive factors.
func (m Money) MulFloat(factor float64) Money {
	return m.Mul(decimal.NewFromFloat(factor))
}

// Div returns a new Money holding m ÷ divisor.
// Returns ErrDivisionByZero if divisor is zero.
func (m Money) Div(divisor decimal.Decimal) (Money, error) {
	if divisor.IsZero() {
		return Money{}, ErrDivisionByZero
	}
	return Money{amount: m.amount.Div(divisor).Round(moneyPlaces)}, nil
}

// Neg returns a new Money holding -m.
func (m Money) Neg() Money {
	return Money{amount: m.amount.Neg()}
}

// Float64 returns the amount as a float64 rounded to 2 decimals.
// Conversion back to a primitive happens only at the output boundary.
func (m Money) Float64() float64 {
	f, _ := m.amount.Round(moneyPlaces).Float64()
	return f
}

// Decimal returns the underlying decimal value.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// Equal reports whether two Money values are numerically equal.
func (m Money) Equal(other Money) bool {
	return m.amount.Equal(other.amount)
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsNegative reports whether the amount is below zero.
func (m Money) IsNegative() bool {
	return m.amount.IsNegative()
}

// String returns the amount formatted with exactly 2 decimal places.
func (m Money) String() string {
	return m.amount.StringFixed(moneyPlaces)
}

// MarshalJSON encodes the amount as a decimal string with 2 places,
// so stored breakdowns round-trip without float drift.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(`"` + m.String() + `"`), nil
}

// UnmarshalJSON decodes a JSON string or number into a Money.
func (m *Money) UnmarshalJSON(data []byte) error {
	raw := string(data)
	if len(raw) >= 2 && raw[0] == '"' && raw[len(raw)-1] == '"' {
		raw = raw[1 : len(raw)-1]
	}
	parsed, err := NewMoneyFromString(raw)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
