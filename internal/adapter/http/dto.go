package http

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/glasor/glazing-backend/internal/domain"
	"github.com/glasor/glazing-backend/internal/usecase/quote"
)

// Wire types. Money travels as plain JSON numbers; parsing into exact
// decimals and rounding happens when the value objects are constructed.

// QuantityOverride is a json.Number so the decimal text on the wire is
// parsed exactly, never through a float64 intermediate.
type serviceRequestDTO struct {
	ServiceID        string       `json:"service_id"`
	QuantityOverride *json.Number `json:"quantity_override,omitempty"`
}

type adjustmentRequestDTO struct {
	Concept    string  `json:"concept"`
	Unit       string  `json:"unit"`
	Value      float64 `json:"value"`
	IsPositive bool    `json:"is_positive"`
}

type priceItemRequest struct {
	ModelID       string                 `json:"model_id"`
	GlassTypeID   *string                `json:"glass_type_id,omitempty"`
	ColorID       *string                `json:"color_id,omitempty"`
	WidthMm       int                    `json:"width_mm"`
	HeightMm      int                    `json:"height_mm"`
	WithAccessory bool                   `json:"with_accessory"`
	Services      []serviceRequestDTO    `json:"services,omitempty"`
	Adjustments   []adjustmentRequestDTO `json:"adjustments,omitempty"`
}

type createQuoteRequest struct {
	Reference    string             `json:"reference"`
	CustomerName string             `json:"customer_name"`
	Items        []priceItemRequest `json:"items"`
}

type serviceResultDTO struct {
	ServiceID string  `json:"service_id"`
	Name      string  `json:"name"`
	Unit      string  `json:"unit"`
	Quantity  float64 `json:"quantity"`
	Amount    float64 `json:"amount"`
}

type adjustmentResultDTO struct {
	Concept string  `json:"concept"`
	Amount  float64 `json:"amount"`
}

type itemBreakdownResponse struct {
	ProfileCost    float64               `json:"profile_cost"`
	GlassCost      float64               `json:"glass_cost"`
	AccessoryCost  float64               `json:"accessory_cost"`
	DimPrice       float64               `json:"dim_price"`
	ColorSurcharge float64               `json:"color_surcharge"`
	Services       []serviceResultDTO    `json:"services"`
	Adjustments    []adjustmentResultDTO `json:"adjustments"`
	Subtotal       float64               `json:"subtotal"`
}

type quoteItemResponse struct {
	ID            string  `json:"id"`
	ModelID       string  `json:"model_id"`
	GlassTypeID   *string `json:"glass_type_id,omitempty"`
	ColorID       *string `json:"color_id,omitempty"`
	WidthMm       int     `json:"width_mm"`
	HeightMm      int     `json:"height_mm"`
	WithAccessory bool    `json:"with_accessory"`

	ProfileCost    float64                      `json:"profile_cost"`
	GlassCost      float64                      `json:"glass_cost"`
	AccessoryCost  float64                      `json:"accessory_cost"`
	DimPrice       float64                      `json:"dim_price"`
	ColorSurcharge float64                      `json:"color_surcharge"`
	Services       []domain.QuoteItemService    `json:"services"`
	Adjustments    []domain.QuoteItemAdjustment `json:"adjustments"`
	Subtotal       float64                      `json:"subtotal"`
}

type quoteResponse struct {
	ID           string              `json:"id"`
	Reference    string              `json:"reference"`
	CustomerName string              `json:"customer_name"`
	CreatedAt    time.Time           `json:"created_at"`
	Items        []quoteItemResponse `json:"items"`
	Total        float64             `json:"total"`
}

type quoteListResponse struct {
	Quotes []quoteResponse `json:"quotes"`
	Total  int             `json:"total"`
}

func parseUUID(field, raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: invalid %s: %v", domain.ErrValidation, field, err)
	}
	return id, nil
}

func parseOptionalUUID(field string, raw *string) (*uuid.UUID, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	id, err := parseUUID(field, *raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func toPriceItemInput(req priceItemRequest) (quote.PriceItemInput, error) {
	modelID, err := parseUUID("model_id", req.ModelID)
	if err != nil {
		return quote.PriceItemInput{}, err
	}
	glassID, err := parseOptionalUUID("glass_type_id", req.GlassTypeID)
	if err != nil {
		return quote.PriceItemInput{}, err
	}
	colorID, err := parseOptionalUUID("color_id", req.ColorID)
	if err != nil {
		return quote.PriceItemInput{}, err
	}

	input := quote.PriceItemInput{
		ModelID:       modelID,
		GlassTypeID:   glassID,
		ColorID:       colorID,
		WidthMm:       req.WidthMm,
		HeightMm:      req.HeightMm,
		WithAccessory: req.WithAccessory,
	}

	for _, sr := range req.Services {
		serviceID, err := parseUUID("service_id", sr.ServiceID)
		if err != nil {
			return quote.PriceItemInput{}, err
		}
		var override *decimal.Decimal
		if sr.QuantityOverride != nil {
			q, err := decimal.NewFromString(sr.QuantityOverride.String())
			if err != nil {
				return quote.PriceItemInput{}, fmt.Errorf("%w: invalid quantity_override: %v", domain.ErrValidation, err)
			}
			override = &q
		}
		input.Services = append(input.Services, quote.ServiceRequest{
			ServiceID:        serviceID,
			QuantityOverride: override,
		})
	}

	for _, ar := range req.Adjustments {
		unit, err := domain.ParseBillingUnit(ar.Unit)
		if err != nil {
			return quote.PriceItemInput{}, err
		}
		value, err := domain.NewMoney(ar.Value)
		if err != nil {
			return quote.PriceItemInput{}, err
		}
		input.Adjustments = append(input.Adjustments, quote.AdjustmentRequest{
			Concept:    ar.Concept,
			Unit:       unit,
			Value:      value,
			IsPositive: ar.IsPositive,
		})
	}

	return input, nil
}

func toBreakdownResponse(b *quote.ItemBreakdown) itemBreakdownResponse {
	resp := itemBreakdownResponse{
		ProfileCost:    b.ProfileCost.Float64(),
		GlassCost:      b.GlassCost.Float64(),
		AccessoryCost:  b.AccessoryCost.Float64(),
		DimPrice:       b.DimPrice.Float64(),
		ColorSurcharge: b.ColorSurcharge.Float64(),
		Services:       []serviceResultDTO{},
		Adjustments:    []adjustmentResultDTO{},
		Subtotal:       b.Subtotal.Float64(),
	}
	for _, s := range b.Services {
		resp.Services = append(resp.Services, serviceResultDTO{
			ServiceID: s.ServiceID.String(),
			Name:      s.Name,
			Unit:      string(s.Unit),
			Quantity:  s.Quantity.InexactFloat64(),
			Amount:    s.Amount.Float64(),
		})
	}
	for _, a := range b.Adjustments {
		resp.Adjustments = append(resp.Adjustments, adjustmentResultDTO{
			Concept: a.Concept,
			Amount:  a.Amount.Float64(),
		})
	}
	return resp
}

func optionalUUIDString(id *uuid.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}

func toQuoteResponse(q *domain.Quote) quoteResponse {
	resp := quoteResponse{
		ID:           q.ID.String(),
		Reference:    q.Reference,
		CustomerName: q.CustomerName,
		CreatedAt:    q.CreatedAt,
		Items:        []quoteItemResponse{},
		Total:        q.Total.Float64(),
	}
	for i := range q.Items {
		item := &q.Items[i]
		resp.Items = append(resp.Items, quoteItemResponse{
			ID:             item.ID.String(),
			ModelID:        item.ModelID.String(),
			GlassTypeID:    optionalUUIDString(item.GlassTypeID),
			ColorID:        optionalUUIDString(item.ColorID),
			WidthMm:        item.WidthMm,
			HeightMm:       item.HeightMm,
			WithAccessory:  item.WithAccessory,
			ProfileCost:    item.ProfileCost.Float64(),
			GlassCost:      item.GlassCost.Float64(),
			AccessoryCost:  item.AccessoryCost.Float64(),
			DimPrice:       item.DimPrice.Float64(),
			ColorSurcharge: item.ColorSurcharge.Float64(),
			Services:       item.Services,
			Adjustments:    item.Adjustments,
			Subtotal:       item.Subtotal.Float64(),
		})
	}
	return resp
}
