// Package quote implements quote orchestration: resolving catalog entities,
// validating request-level constraints, running the pricing engine, and
// persisting the resulting breakdowns.
package quote

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/glasor/glazing-backend/internal/domain"
	"github.com/glasor/glazing-backend/internal/usecase/pricing"
)

// ServiceRequest selects one catalog service for an item.
type ServiceRequest struct {
	ServiceID uuid.UUID

	// QuantityOverride replaces the default quantity of 1 for
	// fixed-unit services.
	QuantityOverride *decimal.Decimal
}

// AdjustmentRequest is one ad-hoc charge or discount for an item.
type AdjustmentRequest struct {
	Concept    string
	Unit       domain.BillingUnit
	Value      domain.Money
	IsPositive bool
}

// PriceItemInput identifies the catalog entities and dimensions of one item.
type PriceItemInput struct {
	ModelID       uuid.UUID
	GlassTypeID   *uuid.UUID
	ColorID       *uuid.UUID
	WidthMm       int
	HeightMm      int
	WithAccessory bool
	Services      []ServiceRequest
	Adjustments   []AdjustmentRequest
}

// ItemBreakdown is the priced outcome of one item, including the legacy
// DimPrice field (profile + glass) and the color surcharge reconstructed
// from the multiplier for display purposes.
type ItemBreakdown struct {
	ProfileCost    domain.Money
	GlassCost      domain.Money
	AccessoryCost  domain.Money
	DimPrice       domain.Money
	ColorSurcharge domain.Money
	Services       []pricing.ServiceResult
	Adjustments    []pricing.AdjustmentResult
	Subtotal       domain.Money
}

// CreateQuoteInput aggregates the items of a new quote.
type CreateQuoteInput struct {
	Reference    string
	CustomerName string
	Items        []PriceItemInput
}

// QuoteService handles quote pricing and persistence operations
type QuoteService struct {
	ModelRepo   domain.ProductModelRepository
	GlassRepo   domain.GlassTypeRepository
	ColorRepo   domain.ColorOptionRepository
	ServiceRepo domain.ServiceRepository
	QuoteRepo   domain.QuoteRepository
}

// NewQuoteService creates a new QuoteService instance
func NewQuoteService(
	modelRepo domain.ProductModelRepository,
	glassRepo domain.GlassTypeRepository,
	colorRepo domain.ColorOptionRepository,
	serviceRepo domain.ServiceRepository,
	quoteRepo domain.QuoteRepository,
) *QuoteService {
	return &QuoteService{
		ModelRepo:   modelRepo,
		GlassRepo:   glassRepo,
		ColorRepo:   colorRepo,
		ServiceRepo: serviceRepo,
		QuoteRepo:   quoteRepo,
	}
}

// PriceItem resolves catalog entities, validates the request against the
// model's dimension envelope, and runs the pricing engine. Nothing is
// persisted.
func (s *QuoteService) PriceItem(ctx context.Context, input PriceItemInput) (*ItemBreakdown, error) {
	model, err := s.ModelRepo.GetByID(ctx, input.ModelID)
	if err != nil {
		return nil, fmt.Errorf("resolve model: %w", err)
	}

	// Dimension bounds are a catalog concern, checked before the engine runs
	if err := model.CheckBounds(input.WidthMm, input.HeightMm); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	dims, err := domain.NewDimensions(input.WidthMm, input.HeightMm, model.MinWidthMm, model.MinHeightMm)
	if err != nil {
		return nil, err
	}

	multiplier := decimal.NewFromInt(1)
	if input.ColorID != nil {
		color, err := s.ColorRepo.GetByID(ctx, *input.ColorID)
		if err != nil {
			return nil, fmt.Errorf("resolve color: %w", err)
		}
		multiplier = color.Multiplier()
	}

	calcInput := pricing.PriceCalculationInput{
		Dims:            dims,
		BasePrice:       model.BasePrice,
		CostPerMmWidth:  model.CostPerMmWidth,
		CostPerMmHeight: model.CostPerMmHeight,
		AccessoryPrice:  model.AccessoryPrice,
		WithAccessory:   input.WithAccessory,
		ColorMultiplier: multiplier,
	}

	if input.GlassTypeID != nil {
		glass, err := s.GlassRepo.GetByID(ctx, *input.GlassTypeID)
		if err != nil {
			return nil, fmt.Errorf("resolve glass type: %w", err)
		}
		calcInput.Glass = &pricing.GlassPricing{
			PricePerSqm:      glass.PricePerSqm,
			DiscountWidthMm:  glass.DiscountWidthMm,
			DiscountHeightMm: glass.DiscountHeightMm,
		}
	}

	for _, req := range input.Services {
		svc, err := s.ServiceRepo.GetByID(ctx, req.ServiceID)
		if err != nil {
			return nil, fmt.Errorf("resolve service: %w", err)
		}
		calcInput.Services = append(calcInput.Services, pricing.ServiceAmountInput{
			ServiceID:          svc.ID,
			Name:               svc.Name,
			Unit:               svc.Unit,
			Rate:               svc.Rate,
			MinimumBillingUnit: svc.MinimumBillingUnit,
			QuantityOverride:   req.QuantityOverride,
		})
	}

	for _, req := range input.Adjustments {
		calcInput.Adjustments = append(calcInput.Adjustments, pricing.AdjustmentInput{
			Concept:    req.Concept,
			Unit:       req.Unit,
			Value:      req.Value,
			IsPositive: req.IsPositive,
		})
	}

	result, err := pricing.Calculate(calcInput)
	if err != nil {
		return nil, err
	}

	return &ItemBreakdown{
		ProfileCost:    result.ProfileCost,
		GlassCost:      result.GlassCost,
		AccessoryCost:  result.AccessoryCost,
		DimPrice:       result.ProfileCost.Add(result.GlassCost),
		ColorSurcharge: surchargeAmount(result.ProfileCost, result.AccessoryCost, multiplier),
		Services:       result.Services,
		Adjustments:    result.Adjustments,
		Subtotal:       result.Subtotal,
	}, nil
}

// surchargeAmount reconstructs the color surcharge from the multiplier:
// (profileCost + accessoryCost) × (1 − 1/multiplier). The amount is derived
// from the already-scaled costs rather than recomputed from base prices,
// so display layers never double-count the surcharge.
func surchargeAmount(profileCost, accessoryCost domain.Money, multiplier decimal.Decimal) domain.Money {
	one := decimal.NewFromInt(1)
	if multiplier.IsZero() || multiplier.Equal(one) {
		return domain.ZeroMoney()
	}
	factor := one.Sub(one.Div(multiplier))
	return profileCost.Add(accessoryCost).Mul(factor)
}

// CreateQuote prices every item and persists the quote with its breakdowns.
func (s *QuoteService) CreateQuote(ctx context.Context, input CreateQuoteInput) (*domain.Quote, error) {
	if len(input.Items) == 0 {
		return nil, errors.New("quote must have at least one item")
	}

	quoteID := uuid.New()
	total := domain.ZeroMoney()
	items := make([]domain.QuoteItem, 0, len(input.Items))

	for _, itemInput := range input.Items {
		breakdown, err := s.PriceItem(ctx, itemInput)
		if err != nil {
			return nil, err
		}

		item := domain.QuoteItem{
			ID:             uuid.New(),
			QuoteID:        quoteID,
			ModelID:        itemInput.ModelID,
			GlassTypeID:    itemInput.GlassTypeID,
			ColorID:        itemInput.ColorID,
			WidthMm:        itemInput.WidthMm,
			HeightMm:       itemInput.HeightMm,
			WithAccessory:  itemInput.WithAccessory,
			ProfileCost:    breakdown.ProfileCost,
			GlassCost:      breakdown.GlassCost,
			AccessoryCost:  breakdown.AccessoryCost,
			DimPrice:       breakdown.DimPrice,
			ColorSurcharge: breakdown.ColorSurcharge,
			Subtotal:       breakdown.Subtotal,
		}

		for _, svc := range breakdown.Services {
			item.Services = append(item.Services, domain.QuoteItemService{
				ServiceID: svc.ServiceID,
				Name:      svc.Name,
				Unit:      svc.Unit,
				Quantity:  svc.Quantity,
				Amount:    svc.Amount,
			})
		}

		for i, adj := range breakdown.Adjustments {
			item.Adjustments = append(item.Adjustments, domain.QuoteItemAdjustment{
				Concept:    adj.Concept,
				Unit:       itemInput.Adjustments[i].Unit,
				Value:      itemInput.Adjustments[i].Value,
				IsPositive: itemInput.Adjustments[i].IsPositive,
				Amount:     adj.Amount,
			})
		}

		items = append(items, item)
		total = total.Add(breakdown.Subtotal)
	}

	quote := &domain.Quote{
		ID:           quoteID,
		Reference:    input.Reference,
		CustomerName: input.CustomerName,
		CreatedAt:    time.Now(),
		Items:        items,
		Total:        total,
	}

	if err := quote.Validate(); err != nil {
		return nil, err
	}

	if err := s.QuoteRepo.Create(ctx, quote); err != nil {
		return nil, fmt.Errorf("persist quote: %w", err)
	}

	return quote, nil
}

// GetQuote retrieves a quote with its items.
func (s *QuoteService) GetQuote(ctx context.Context, id uuid.UUID) (*domain.Quote, error) {
	return s.QuoteRepo.GetByID(ctx, id)
}

// ListQuotes retrieves a page of quotes plus the total count.
func (s *QuoteService) ListQuotes(ctx context.Context, limit, offset int) ([]*domain.Quote, int, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	quotes, err := s.QuoteRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	count, err := s.QuoteRepo.Count(ctx)
	if err != nil {
		return nil, 0, err
	}

	return quotes, count, nil
}
