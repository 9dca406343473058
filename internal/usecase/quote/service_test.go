package quote

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/glasor/glazing-backend/internal/domain"
)

// MockProductModelRepository is a mock implementation of ProductModelRepository for testing
type MockProductModelRepository struct {
	mock.Mock
}

func (m *MockProductModelRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.ProductModel, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProductModel), args.Error(1)
}

func (m *MockProductModelRepository) Create(ctx context.Context, model *domain.ProductModel) error {
	args := m.Called(ctx, model)
	return args.Error(0)
}

func (m *MockProductModelRepository) Update(ctx context.Context, model *domain.ProductModel) error {
	args := m.Called(ctx, model)
	return args.Error(0)
}

func (m *MockProductModelRepository) List(ctx context.Context, activeOnly bool) ([]*domain.ProductModel, error) {
	args := m.Called(ctx, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.ProductModel), args.Error(1)
}

// MockGlassTypeRepository is a mock implementation of GlassTypeRepository for testing
type MockGlassTypeRepository struct {
	mock.Mock
}

func (m *MockGlassTypeRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.GlassType, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GlassType), args.Error(1)
}

func (m *MockGlassTypeRepository) Create(ctx context.Context, glass *domain.GlassType) error {
	args := m.Called(ctx, glass)
	return args.Error(0)
}

func (m *MockGlassTypeRepository) Update(ctx context.Context, glass *domain.GlassType) error {
	args := m.Called(ctx, glass)
	return args.Error(0)
}

func (m *MockGlassTypeRepository) List(ctx context.Context, activeOnly bool) ([]*domain.GlassType, error) {
	args := m.Called(ctx, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.GlassType), args.Error(1)
}

// MockColorOptionRepository is a mock implementation of ColorOptionRepository for testing
type MockColorOptionRepository struct {
	mock.Mock
}

func (m *MockColorOptionRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.ColorOption, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ColorOption), args.Error(1)
}

func (m *MockColorOptionRepository) Create(ctx context.Context, color *domain.ColorOption) error {
	args := m.Called(ctx, color)
	return args.Error(0)
}

func (m *MockColorOptionRepository) Update(ctx context.Context, color *domain.ColorOption) error {
	args := m.Called(ctx, color)
	return args.Error(0)
}

func (m *MockColorOptionRepository) List(ctx context.Context, activeOnly bool) ([]*domain.ColorOption, error) {
	args := m.Called(ctx, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.ColorOption), args.Error(1)
}

// MockServiceRepository is a mock implementation of ServiceRepository for testing
type MockServiceRepository struct {
	mock.Mock
}

func (m *MockServiceRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Service, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Service), args.Error(1)
}

func (m *MockServiceRepository) Create(ctx context.Context, service *domain.Service) error {
	args := m.Called(ctx, service)
	return args.Error(0)
}

func (m *MockServiceRepository) Update(ctx context.Context, service *domain.Service) error {
	args := m.Called(ctx, service)
	return args.Error(0)
}

func (m *MockServiceRepository) List(ctx context.Context, activeOnly bool) ([]*domain.Service, error) {
	args := m.Called(ctx, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Service), args.Error(1)
}

// MockQuoteRepository is a mock implementation of QuoteRepository for testing
type MockQuoteRepository struct {
	mock.Mock
}

func (m *MockQuoteRepository) Create(ctx context.Context, quote *domain.Quote) error {
	args := m.Called(ctx, quote)
	return args.Error(0)
}

func (m *MockQuoteRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Quote, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Quote), args.Error(1)
}

func (m *MockQuoteRepository) List(ctx context.Context, limit, offset int) ([]*domain.Quote, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Quote), args.Error(1)
}

func (m *MockQuoteRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func newTestService() (*QuoteService, *MockProductModelRepository, *MockGlassTypeRepository, *MockColorOptionRepository, *MockServiceRepository, *MockQuoteRepository) {
	modelRepo := new(MockProductModelRepository)
	glassRepo := new(MockGlassTypeRepository)
	colorRepo := new(MockColorOptionRepository)
	serviceRepo := new(MockServiceRepository)
	quoteRepo := new(MockQuoteRepository)
	svc := NewQuoteService(modelRepo, glassRepo, colorRepo, serviceRepo, quoteRepo)
	return svc, modelRepo, glassRepo, colorRepo, serviceRepo, quoteRepo
}

func testModel() *domain.ProductModel {
	return &domain.ProductModel{
		ID:              uuid.New(),
		Name:            "Sliding window 2-leaf",
		BasePrice:       domain.MustMoney(100),
		CostPerMmWidth:  domain.MustMoney(0.1),
		CostPerMmHeight: domain.MustMoney(0.1),
		MinWidthMm:      800,
		MinHeightMm:     800,
		MaxWidthMm:      2400,
		MaxHeightMm:     2400,
		Active:          true,
	}
}

func TestPriceItem_ProfileOnly(t *testing.T) {
	ctx := context.Background()
	svc, modelRepo, _, _, _, _ := newTestService()

	model := testModel()
	modelRepo.On("GetByID", ctx, model.ID).Return(model, nil)

	breakdown, err := svc.PriceItem(ctx, PriceItemInput{
		ModelID:  model.ID,
		WidthMm:  1000,
		HeightMm: 1200,
	})

	require.NoError(t, err)
	// 100 + 0.1×200 + 0.1×400 = 160
	assert.Equal(t, 160.0, breakdown.ProfileCost.Float64())
	assert.Equal(t, 160.0, breakdown.DimPrice.Float64())
	assert.True(t, breakdown.ColorSurcharge.IsZero())
	assert.Equal(t, 160.0, breakdown.Subtotal.Float64())
}

func TestPriceItem_LegacyDimPriceScenario(t *testing.T) {
	// width=1000, height=800, base=150000, perMmW=75, perMmH=60, min 0x0:
	// dimPrice = 150000 + 75×1000 + 60×800 = 273000
	ctx := context.Background()
	svc, modelRepo, _, _, _, _ := newTestService()

	model := &domain.ProductModel{
		ID:              uuid.New(),
		Name:            "Legacy model",
		BasePrice:       domain.MustMoney(150000),
		CostPerMmWidth:  domain.MustMoney(75),
		CostPerMmHeight: domain.MustMoney(60),
		MaxWidthMm:      5000,
		MaxHeightMm:     5000,
	}
	modelRepo.On("GetByID", ctx, model.ID).Return(model, nil)

	breakdown, err := svc.PriceItem(ctx, PriceItemInput{
		ModelID:  model.ID,
		WidthMm:  1000,
		HeightMm: 800,
	})

	require.NoError(t, err)
	assert.Equal(t, 273000.0, breakdown.DimPrice.Float64())
}

func TestPriceItem_WithColorGlassAndService(t *testing.T) {
	ctx := context.Background()
	svc, modelRepo, glassRepo, colorRepo, serviceRepo, _ := newTestService()

	model := testModel()
	modelRepo.On("GetByID", ctx, model.ID).Return(model, nil)

	glass := &domain.GlassType{
		ID:          uuid.New(),
		Name:        "Laminated 3+3",
		PricePerSqm: domain.MustMoney(50),
	}
	glassRepo.On("GetByID", ctx, glass.ID).Return(glass, nil)

	color := &domain.ColorOption{
		ID:               uuid.New(),
		Name:             "Anthracite",
		SurchargePercent: decimal.NewFromInt(10),
	}
	colorRepo.On("GetByID", ctx, color.ID).Return(color, nil)

	install := &domain.Service{
		ID:   uuid.New(),
		Name: "Installation",
		Unit: domain.BillingUnitUnit,
		Rate: domain.MustMoney(60),
	}
	serviceRepo.On("GetByID", ctx, install.ID).Return(install, nil)

	breakdown, err := svc.PriceItem(ctx, PriceItemInput{
		ModelID:     model.ID,
		GlassTypeID: &glass.ID,
		ColorID:     &color.ID,
		WidthMm:     1000,
		HeightMm:    1200,
		Services:    []ServiceRequest{{ServiceID: install.ID}},
	})

	require.NoError(t, err)
	// Profile term-wise ×1.1: 110 + 22 + 44 = 176
	assert.Equal(t, 176.0, breakdown.ProfileCost.Float64())
	// Glass not color-scaled: 50 × 1.2 sqm = 60
	assert.Equal(t, 60.0, breakdown.GlassCost.Float64())
	assert.Equal(t, 236.0, breakdown.DimPrice.Float64())
	// Surcharge reconstructed: 176 × (1 − 1/1.1) = 16
	assert.Equal(t, 16.0, breakdown.ColorSurcharge.Float64())
	require.Len(t, breakdown.Services, 1)
	assert.Equal(t, 60.0, breakdown.Services[0].Amount.Float64())
	assert.Equal(t, 296.0, breakdown.Subtotal.Float64())
}

func TestPriceItem_RejectsOutOfBoundsDimensions(t *testing.T) {
	ctx := context.Background()
	svc, modelRepo, _, _, _, _ := newTestService()

	model := testModel()
	modelRepo.On("GetByID", ctx, model.ID).Return(model, nil)

	_, err := svc.PriceItem(ctx, PriceItemInput{
		ModelID:  model.ID,
		WidthMm:  3000, // above MaxWidthMm
		HeightMm: 1200,
	})

	assert.Error(t, err)
}

func TestPriceItem_ModelNotFound(t *testing.T) {
	ctx := context.Background()
	svc, modelRepo, _, _, _, _ := newTestService()

	missingID := uuid.New()
	modelRepo.On("GetByID", ctx, missingID).Return(nil, domain.ErrNotFound)

	_, err := svc.PriceItem(ctx, PriceItemInput{ModelID: missingID, WidthMm: 1000, HeightMm: 1000})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreateQuote_PersistsItemsAndTotal(t *testing.T) {
	ctx := context.Background()
	svc, modelRepo, _, _, _, quoteRepo := newTestService()

	model := testModel()
	modelRepo.On("GetByID", ctx, model.ID).Return(model, nil)
	quoteRepo.On("Create", ctx, mock.AnythingOfType("*domain.Quote")).Return(nil)

	quote, err := svc.CreateQuote(ctx, CreateQuoteInput{
		Reference:    "Q-2026-001",
		CustomerName: "Carpinteria Lopez",
		Items: []PriceItemInput{
			{ModelID: model.ID, WidthMm: 1000, HeightMm: 1200},
			{ModelID: model.ID, WidthMm: 800, HeightMm: 800},
			{
				ModelID:  model.ID,
				WidthMm:  1000,
				HeightMm: 1200,
				Adjustments: []AdjustmentRequest{
					{Concept: "Promo", Unit: domain.BillingUnitUnit, Value: domain.MustMoney(10), IsPositive: false},
				},
			},
		},
	})

	require.NoError(t, err)
	require.Len(t, quote.Items, 3)
	// 160 + 100 + (160 − 10) = 410
	assert.Equal(t, 410.0, quote.Total.Float64())
	assert.NoError(t, quote.Validate())
	quoteRepo.AssertExpectations(t)

	// Adjustment snapshot keeps request unit/value/sign alongside the signed amount
	adj := quote.Items[2].Adjustments[0]
	assert.Equal(t, "Promo", adj.Concept)
	assert.False(t, adj.IsPositive)
	assert.Equal(t, -10.0, adj.Amount.Float64())
}

func TestCreateQuote_RejectsEmptyItems(t *testing.T) {
	ctx := context.Background()
	svc, _, _, _, _, _ := newTestService()

	_, err := svc.CreateQuote(ctx, CreateQuoteInput{Reference: "empty"})
	assert.Error(t, err)
}
