package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Quote represents a saved quote: a set of priced items with a total.
// Breakdowns are stored as calculated at creation time; later catalog price
// changes never rewrite an existing quote.
type Quote struct {
	ID           uuid.UUID
	Reference    string
	CustomerName string
	CreatedAt    time.Time
	Items        []QuoteItem
	Total        Money
}

// QuoteItem holds one priced panel: the request that produced it and the
// resulting breakdown snapshot.
type QuoteItem struct {
	ID            uuid.UUID
	QuoteID       uuid.UUID
	ModelID       uuid.UUID
	GlassTypeID   *uuid.UUID
	ColorID       *uuid.UUID
	WidthMm       int
	HeightMm      int
	WithAccessory bool

	ProfileCost    Money
	GlassCost      Money
	AccessoryCost  Money
	DimPrice       Money // legacy compatibility field: profile + glass
	ColorSurcharge Money
	Services       []QuoteItemService
	Adjustments    []QuoteItemAdjustment
	Subtotal       Money
}

// QuoteItemService is the stored result of billing one service against an item.
type QuoteItemService struct {
	ServiceID uuid.UUID       `json:"service_id"`
	Name      string          `json:"name"`
	Unit      BillingUnit     `json:"unit"`
	Quantity  decimal.Decimal `json:"quantity"`
	Amount    Money           `json:"amount"`
}

// QuoteItemAdjustment is the stored result of one ad-hoc charge or discount.
type QuoteItemAdjustment struct {
	Concept    string      `json:"concept"`
	Unit       BillingUnit `json:"unit"`
	Value      Money       `json:"value"`
	IsPositive bool        `json:"is_positive"`
	Amount     Money       `json:"amount"`
}

// Validate ensures the quote adheres to domain rules.
// The total must equal the sum of item subtotals exactly.
func (q *Quote) Validate() error {
	if len(q.Items) == 0 {
		return errors.New("quote must have at least one item")
	}

	sum := ZeroMoney()
	for i := range q.Items {
		if q.Items[i].WidthMm <= 0 || q.Items[i].HeightMm <= 0 {
			return ErrInvalidDimensions
		}
		sum = sum.Add(q.Items[i].Subtotal)
	}

	if !sum.Equal(q.Total) {
		return errors.New("quote total must equal the sum of item subtotals")
	}

	return nil
}
