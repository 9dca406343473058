package domain

import (
	"context"

	"github.com/google/uuid"
)

// ProductModelRepository defines the interface for product model persistence operations
type ProductModelRepository interface {
	// GetByID retrieves a product model by its ID
	GetByID(ctx context.Context, id uuid.UUID) (*ProductModel, error)

	// Create creates a new product model
	Create(ctx context.Context, model *ProductModel) error

	// Update replaces an existing product model
	Update(ctx context.Context, model *ProductModel) error

	// List retrieves all product models, optionally only active ones
	List(ctx context.Context, activeOnly bool) ([]*ProductModel, error)
}

// GlassTypeRepository defines the interface for glass type persistence operations
type GlassTypeRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*GlassType, error)
	Create(ctx context.Context, glass *GlassType) error
	Update(ctx context.Context, glass *GlassType) error
	List(ctx context.Context, activeOnly bool) ([]*GlassType, error)
}

// ColorOptionRepository defines the interface for color option persistence operations
type ColorOptionRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ColorOption, error)
	Create(ctx context.Context, color *ColorOption) error
	Update(ctx context.Context, color *ColorOption) error
	List(ctx context.Context, activeOnly bool) ([]*ColorOption, error)
}

// ServiceRepository defines the interface for service persistence operations
type ServiceRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*Service, error)
	Create(ctx context.Context, service *Service) error
	Update(ctx context.Context, service *Service) error
	List(ctx context.Context, activeOnly bool) ([]*Service, error)
}

// QuoteRepository defines the interface for quote persistence operations
type QuoteRepository interface {
	// Create persists a quote together with its items
	Create(ctx context.Context, quote *Quote) error

	// GetByID retrieves a quote and its items by quote ID
	GetByID(ctx context.Context, id uuid.UUID) (*Quote, error)

	// List retrieves a paginated list of quotes (items not loaded)
	// limit and offset are used for pagination
	List(ctx context.Context, limit, offset int) ([]*Quote, error)

	// Count returns the total number of quotes
	Count(ctx context.Context) (int, error)
}
