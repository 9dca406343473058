package catalog

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

func TestCreateModel_AssignsIDAndValidates(t *testing.T) {
	ctx := context.Background()
	modelRepo := new(MockProductModelRepository)
	svc := NewCatalogService(modelRepo, nil, nil, nil)

	modelRepo.On("Create", ctx, mock.AnythingOfType("*domain.ProductModel")).Return(nil)

	model := &domain.ProductModel{
		Name:            "Fixed panel",
		BasePrice:       domain.MustMoney(80),
		CostPerMmWidth:  domain.MustMoney(0.05),
		CostPerMmHeight: domain.MustMoney(0.05),
		MaxWidthMm:      3000,
		MaxHeightMm:     3000,
	}

	require.NoError(t, svc.CreateModel(ctx, model))
	assert.NotEqual(t, uuid.Nil, model.ID, "a fresh ID should be assigned")
	modelRepo.AssertExpectations(t)
}

func TestCreateModel_RejectsInvalid(t *testing.T) {
	ctx := context.Background()
	svc := NewCatalogService(new(MockProductModelRepository), nil, nil, nil)

	err := svc.CreateModel(ctx, &domain.ProductModel{Name: ""})
	assert.Error(t, err, "empty name should be rejected before hitting the repository")
}

func TestCreateService_RejectsUnsupportedUnit(t *testing.T) {
	ctx := context.Background()
	svc := NewCatalogService(nil, nil, nil, new(MockServiceRepository))

	err := svc.CreateService(ctx, &domain.Service{
		Name: "Mystery",
		Unit: "furlong",
		Rate: domain.MustMoney(1),
	})
	assert.ErrorIs(t, err, domain.ErrUnsupportedServiceUnit)
}

func TestCreateService_Valid(t *testing.T) {
	ctx := context.Background()
	serviceRepo := new(MockServiceRepository)
	svc := NewCatalogService(nil, nil, nil, serviceRepo)

	serviceRepo.On("Create", ctx, mock.AnythingOfType("*domain.Service")).Return(nil)

	minQty := decimal.RequireFromString("1.5")
	err := svc.CreateService(ctx, &domain.Service{
		Name:               "Cutting",
		Unit:               domain.BillingUnitSqm,
		Rate:               domain.MustMoney(12),
		MinimumBillingUnit: &minQty,
	})

	require.NoError(t, err)
	serviceRepo.AssertExpectations(t)
}
