package domain

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductModel represents a product profile in the catalog: the structural
// frame priced by base price plus per-millimeter-of-excess-dimension costs.
type ProductModel struct {
	ID              uuid.UUID
	Name            string
	BasePrice       Money
	CostPerMmWidth  Money
	CostPerMmHeight Money
	AccessoryPrice  *Money // nil when the model has no accessory kit
	MinWidthMm      int
	MinHeightMm     int
	MaxWidthMm      int
	MaxHeightMm     int
	Active          bool
}

// Validate ensures the product model adheres to catalog rules
func (m *ProductModel) Validate() error {
	if m.Name == "" {
		return errors.New("product model name cannot be empty")
	}
	if m.BasePrice.IsNegative() || m.CostPerMmWidth.IsNegative() || m.CostPerMmHeight.IsNegative() {
		return errors.New("product model prices cannot be negative")
	}
	if m.AccessoryPrice != nil && m.AccessoryPrice.IsNegative() {
		return errors.New("accessory price cannot be negative")
	}
	if m.MinWidthMm < 0 || m.MinHeightMm < 0 {
		return errors.New("minimum dimensions cannot be negative")
	}
	if m.MaxWidthMm < m.MinWidthMm || m.MaxHeightMm < m.MinHeightMm {
		return errors.New("maximum dimensions cannot be below minimum dimensions")
	}
	return nil
}

// CheckBounds validates a requested width/height against the model's
// min/max envelope. This is request-level validation owned by the catalog,
// not by the pricing engine.
func (m *ProductModel) CheckBounds(widthMm, heightMm int) error {
	if widthMm < m.MinWidthMm || widthMm > m.MaxWidthMm {
		return fmt.Errorf("width %dmm outside model range %d-%dmm", widthMm, m.MinWidthMm, m.MaxWidthMm)
	}
	if heightMm < m.MinHeightMm || heightMm > m.MaxHeightMm {
		return fmt.Errorf("height %dmm outside model range %d-%dmm", heightMm, m.MinHeightMm, m.MaxHeightMm)
	}
	return nil
}

// GlassType represents a glass option priced per square meter.
// DiscountWidthMm/DiscountHeightMm are subtracted from the panel dimensions
// before computing the billed glass area: the pane is cut smaller than the
// frame opening.
type GlassType struct {
	ID               uuid.UUID
	Name             string
	PricePerSqm      Money
	DiscountWidthMm  int
	DiscountHeightMm int
	Active           bool
}

// Validate ensures the glass type adheres to catalog rules
func (g *GlassType) Validate() error {
	if g.Name == "" {
		return errors.New("glass type name cannot be empty")
	}
	if g.PricePerSqm.IsNegative() {
		return errors.New("glass price cannot be negative")
	}
	if g.DiscountWidthMm < 0 || g.DiscountHeightMm < 0 {
		return errors.New("glass discounts cannot be negative")
	}
	return nil
}

// ColorOption represents a frame color carrying a percentage surcharge
// over the default finish.
type ColorOption struct {
	ID               uuid.UUID
	Name             string
	SurchargePercent decimal.Decimal // 0-100
	Active           bool
}

// Validate ensures the color option adheres to catalog rules
func (c *ColorOption) Validate() error {
	if c.Name == "" {
		return errors.New("color option name cannot be empty")
	}
	if c.SurchargePercent.IsNegative() || c.SurchargePercent.GreaterThan(decimal.NewFromInt(100)) {
		return errors.New("color surcharge percent must be between 0 and 100")
	}
	return nil
}

// Multiplier converts the surcharge percentage into the ≥1.0 scalar applied
// per cost term: multiplier = 1 + percent/100.
func (c *ColorOption) Multiplier() decimal.Decimal {
	return decimal.NewFromInt(1).Add(c.SurchargePercent.Div(decimal.NewFromInt(100)))
}

// Service represents a billable service (installation, cutting, polishing)
// from the catalog.
type Service struct {
	ID                 uuid.UUID
	Name               string
	Unit               BillingUnit
	Rate               Money
	MinimumBillingUnit *decimal.Decimal // nil when no floor quantity is configured
	Active             bool
}

// Validate ensures the service adheres to catalog rules
func (s *Service) Validate() error {
	if s.Name == "" {
		return errors.New("service name cannot be empty")
	}
	if !s.Unit.Valid() {
		return fmt.Errorf("%w: %q", ErrUnsupportedServiceUnit, s.Unit)
	}
	if s.Rate.IsNegative() {
		return errors.New("service rate cannot be negative")
	}
	if s.MinimumBillingUnit != nil && s.MinimumBillingUnit.IsNegative() {
		return errors.New("minimum billing unit cannot be negative")
	}
	return nil
}
