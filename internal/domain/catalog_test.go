package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParseBillingUnit(t *testing.T) {
	for _, raw := range []string{"unit", "sqm", "ml"} {
		unit, err := ParseBillingUnit(raw)
		assert.NoError(t, err)
		assert.Equal(t, BillingUnit(raw), unit)
	}

	_, err := ParseBillingUnit("m2")
	assert.ErrorIs(t, err, ErrUnsupportedServiceUnit)

	_, err = ParseBillingUnit("")
	assert.ErrorIs(t, err, ErrUnsupportedServiceUnit)
}

func TestColorOption_Multiplier(t *testing.T) {
	color := &ColorOption{
		ID:               uuid.New(),
		Name:             "Anthracite",
		SurchargePercent: decimal.NewFromInt(10),
	}

	assert.True(t, color.Multiplier().Equal(decimal.RequireFromString("1.1")),
		"10%% surcharge should yield multiplier 1.1, got %s", color.Multiplier())

	noSurcharge := &ColorOption{Name: "White", SurchargePercent: decimal.Zero}
	assert.True(t, noSurcharge.Multiplier().Equal(decimal.NewFromInt(1)))
}

func TestColorOption_ValidateSurchargeRange(t *testing.T) {
	color := &ColorOption{Name: "Bronze", SurchargePercent: decimal.NewFromInt(101)}
	assert.Error(t, color.Validate())

	color.SurchargePercent = decimal.NewFromInt(-1)
	assert.Error(t, color.Validate())

	color.SurchargePercent = decimal.NewFromInt(100)
	assert.NoError(t, color.Validate())
}

func TestProductModel_CheckBounds(t *testing.T) {
	model := &ProductModel{
		Name:        "Sliding window 2-leaf",
		MinWidthMm:  400,
		MinHeightMm: 400,
		MaxWidthMm:  2400,
		MaxHeightMm: 2200,
	}

	assert.NoError(t, model.CheckBounds(1000, 1200))
	assert.NoError(t, model.CheckBounds(400, 2200))
	assert.Error(t, model.CheckBounds(300, 1000), "width below model minimum")
	assert.Error(t, model.CheckBounds(1000, 2300), "height above model maximum")
}

func TestService_Validate(t *testing.T) {
	svc := &Service{
		ID:   uuid.New(),
		Name: "Polished edge",
		Unit: BillingUnitMl,
		Rate: MustMoney(3.5),
	}
	assert.NoError(t, svc.Validate())

	svc.Unit = "meters"
	assert.ErrorIs(t, svc.Validate(), ErrUnsupportedServiceUnit)

	svc.Unit = BillingUnitSqm
	minQty := decimal.NewFromInt(-1)
	svc.MinimumBillingUnit = &minQty
	assert.Error(t, svc.Validate())
}
