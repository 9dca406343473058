// Package catalog implements management of the pricing catalog: product
// models, glass types, color options and services.
package catalog

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/glasor/glazing-backend/internal/domain"
)

// CatalogService handles catalog CRUD operations with domain validation
type CatalogService struct {
	ModelRepo   domain.ProductModelRepository
	GlassRepo   domain.GlassTypeRepository
	ColorRepo   domain.ColorOptionRepository
	ServiceRepo domain.ServiceRepository
}

// NewCatalogService creates a new CatalogService instance
func NewCatalogService(
	modelRepo domain.ProductModelRepository,
	glassRepo domain.GlassTypeRepository,
	colorRepo domain.ColorOptionRepository,
	serviceRepo domain.ServiceRepository,
) *CatalogService {
	return &CatalogService{
		ModelRepo:   modelRepo,
		GlassRepo:   glassRepo,
		ColorRepo:   colorRepo,
		ServiceRepo: serviceRepo,
	}
}

// CreateModel validates and persists a new product model.
func (s *CatalogService) CreateModel(ctx context.Context, model *domain.ProductModel) error {
	if model.ID == uuid.Nil {
		model.ID = uuid.New()
	}
	if err := model.Validate(); err != nil {
		return fmt.Errorf("%w: invalid product model: %w", domain.ErrValidation, err)
	}
	return s.ModelRepo.Create(ctx, model)
}

// UpdateModel validates and replaces an existing product model.
func (s *CatalogService) UpdateModel(ctx context.Context, model *domain.ProductModel) error {
	if err := model.Validate(); err != nil {
		return fmt.Errorf("%w: invalid product model: %w", domain.ErrValidation, err)
	}
	return s.ModelRepo.Update(ctx, model)
}

// GetModel retrieves a product model by ID.
func (s *CatalogService) GetModel(ctx context.Context, id uuid.UUID) (*domain.ProductModel, error) {
	return s.ModelRepo.GetByID(ctx, id)
}

// ListModels retrieves product models, optionally only active ones.
func (s *CatalogService) ListModels(ctx context.Context, activeOnly bool) ([]*domain.ProductModel, error) {
	return s.ModelRepo.List(ctx, activeOnly)
}

// CreateGlassType validates and persists a new glass type.
func (s *CatalogService) CreateGlassType(ctx context.Context, glass *domain.GlassType) error {
	if glass.ID == uuid.Nil {
		glass.ID = uuid.New()
	}
	if err := glass.Validate(); err != nil {
		return fmt.Errorf("%w: invalid glass type: %w", domain.ErrValidation, err)
	}
	return s.GlassRepo.Create(ctx, glass)
}

// UpdateGlassType validates and replaces an existing glass type.
func (s *CatalogService) UpdateGlassType(ctx context.Context, glass *domain.GlassType) error {
	if err := glass.Validate(); err != nil {
		return fmt.Errorf("%w: invalid glass type: %w", domain.ErrValidation, err)
	}
	return s.GlassRepo.Update(ctx, glass)
}

// GetGlassType retrieves a glass type by ID.
func (s *CatalogService) GetGlassType(ctx context.Context, id uuid.UUID) (*domain.GlassType, error) {
	return s.GlassRepo.GetByID(ctx, id)
}

// ListGlassTypes retrieves glass types, optionally only active ones.
func (s *CatalogService) ListGlassTypes(ctx context.Context, activeOnly bool) ([]*domain.GlassType, error) {
	return s.GlassRepo.List(ctx, activeOnly)
}

// CreateColor validates and persists a new color option.
func (s *CatalogService) CreateColor(ctx context.Context, color *domain.ColorOption) error {
	if color.ID == uuid.Nil {
		color.ID = uuid.New()
	}
	if err := color.Validate(); err != nil {
		return fmt.Errorf("%w: invalid color option: %w", domain.ErrValidation, err)
	}
	return s.ColorRepo.Create(ctx, color)
}

// UpdateColor validates and replaces an existing color option.
func (s *CatalogService) UpdateColor(ctx context.Context, color *domain.ColorOption) error {
	if err := color.Validate(); err != nil {
		return fmt.Errorf("%w: invalid color option: %w", domain.ErrValidation, err)
	}
	return s.ColorRepo.Update(ctx, color)
}

// GetColor retrieves a color option by ID.
func (s *CatalogService) GetColor(ctx context.Context, id uuid.UUID) (*domain.ColorOption, error) {
	return s.ColorRepo.GetByID(ctx, id)
}

// ListColors retrieves color options, optionally only active ones.
func (s *CatalogService) ListColors(ctx context.Context, activeOnly bool) ([]*domain.ColorOption, error) {
	return s.ColorRepo.List(ctx, activeOnly)
}

// CreateService validates and persists a new billable service.
func (s *CatalogService) CreateService(ctx context.Context, service *domain.Service) error {
	if service.ID == uuid.Nil {
		service.ID = uuid.New()
	}
	if err := service.Validate(); err != nil {
		return fmt.Errorf("%w: invalid service: %w", domain.ErrValidation, err)
	}
	return s.ServiceRepo.Create(ctx, service)
}

// UpdateService validates and replaces an existing billable service.
func (s *CatalogService) UpdateService(ctx context.Context, service *domain.Service) error {
	if err := service.Validate(); err != nil {
		return fmt.Errorf("%w: invalid service: %w", domain.ErrValidation, err)
	}
	return s.ServiceRepo.Update(ctx, service)
}

// GetService retrieves a billable service by ID.
func (s *CatalogService) GetService(ctx context.Context, id uuid.UUID) (*domain.Service, error) {
	return s.ServiceRepo.GetByID(ctx, id)
}

// ListServices retrieves billable services, optionally only active ones.
func (s *CatalogService) ListServices(ctx context.Context, activeOnly bool) ([]*domain.Service, error) {
	return s.ServiceRepo.List(ctx, activeOnly)
}
