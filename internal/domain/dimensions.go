package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// mmPerMeter converts millimeter measurements to meters for area/perimeter.
var mmPerMeter = decimal.NewFromInt(1000)

// Dimensions is an immutable value object holding an item's requested
// width/height in millimeters together with the product's minimum
// width/height. Measurements at or below the minimum never produce
// negative "extra" values; they clamp to zero.
type Dimensions struct {
	widthMm     int
	heightMm    int
	minWidthMm  int
	minHeightMm int
}

// NewDimensions creates a Dimensions value object.
// Returns ErrInvalidDimensions if width or height is zero or less,
// or if either minimum is negative.
func NewDimensions(widthMm, heightMm, minWidthMm, minHeightMm int) (Dimensions, error) {
	if widthMm <= 0 || heightMm <= 0 {
		return Dimensions{}, fmt.Errorf("%w: width and height must be positive, got %dx%d", ErrInvalidDimensions, widthMm, heightMm)
	}
	if minWidthMm < 0 || minHeightMm < 0 {
		return Dimensions{}, fmt.Errorf("%w: minimums cannot be negative, got %dx%d", ErrInvalidDimensions, minWidthMm, minHeightMm)
	}
	return Dimensions{
		widthMm:     widthMm,
		heightMm:    heightMm,
		minWidthMm:  minWidthMm,
		minHeightMm: minHeightMm,
	}, nil
}

// WidthMm returns the requested width in millimeters.
func (d Dimensions) WidthMm() int {
	return d.widthMm
}

// HeightMm returns the requested height in millimeters.
func (d Dimensions) HeightMm() int {
	return d.heightMm
}

// ExtraWidthMm returns the width in excess of the product minimum, clamped at zero.
func (d Dimensions) ExtraWidthMm() int {
	if d.widthMm <= d.minWidthMm {
		return 0
	}
	return d.widthMm - d.minWidthMm
}

// ExtraHeightMm returns the height in excess of the product minimum, clamped at zero.
func (d Dimensions) ExtraHeightMm() int {
	if d.heightMm <= d.minHeightMm {
		return 0
	}
	return d.heightMm - d.minHeightMm
}

// AreaSqm returns the panel area in square meters, rounded to 2 decimals.
func (d Dimensions) AreaSqm() decimal.Decimal {
	w := decimal.NewFromInt(int64(d.widthMm)).Div(mmPerMeter)
	h := decimal.NewFromInt(int64(d.heightMm)).Div(mmPerMeter)
	return w.Mul(h).Round(2)
}

// PerimeterMl returns the panel perimeter in linear meters, rounded to 2 decimals.
func (d Dimensions) PerimeterMl() decimal.Decimal {
	w := decimal.NewFromInt(int64(d.widthMm)).Div(mmPerMeter)
	h := decimal.NewFromInt(int64(d.heightMm)).Div(mmPerMeter)
	return w.Add(h).Mul(decimal.NewFromInt(2)).Round(2)
}
