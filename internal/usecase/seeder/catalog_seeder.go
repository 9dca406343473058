// Package seeder provisions a starter catalog so a fresh installation can
// price items before anyone loads real data.
package seeder

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/glasor/glazing-backend/internal/domain"
)

// Fixed UUIDs keep the seed idempotent across restarts.
var (
	SeedModelSliding = uuid.MustParse("00000000-0000-0000-0000-000000000001")
	SeedGlassClear   = uuid.MustParse("00000000-0000-0000-0000-000000000002")
	SeedColorWhite   = uuid.MustParse("00000000-0000-0000-0000-000000000003")
	SeedServiceTools = uuid.MustParse("00000000-0000-0000-0000-000000000004")
)

// CatalogSeeder creates the default catalog entries when they are missing
type CatalogSeeder struct {
	modelRepo   domain.ProductModelRepository
	glassRepo   domain.GlassTypeRepository
	colorRepo   domain.ColorOptionRepository
	serviceRepo domain.ServiceRepository
}

// NewCatalogSeeder creates a new CatalogSeeder instance
func NewCatalogSeeder(
	modelRepo domain.ProductModelRepository,
	glassRepo domain.GlassTypeRepository,
	colorRepo domain.ColorOptionRepository,
	serviceRepo domain.ServiceRepository,
) *CatalogSeeder {
	return &CatalogSeeder{
		modelRepo:   modelRepo,
		glassRepo:   glassRepo,
		colorRepo:   colorRepo,
		serviceRepo: serviceRepo,
	}
}

// Seed ensures the default catalog entries exist in the database.
// Entries already present are left untouched.
func (s *CatalogSeeder) Seed(ctx context.Context) error {
	if _, err := s.modelRepo.GetByID(ctx, SeedModelSliding); err != nil {
		model := &domain.ProductModel{
			ID:              SeedModelSliding,
			Name:            "Sliding 2-track",
			BasePrice:       domain.MustMoney(100),
			CostPerMmWidth:  domain.MustMoney(0.05),
			CostPerMmHeight: domain.MustMoney(0.03),
			MinWidthMm:      500,
			MinHeightMm:     500,
			MaxWidthMm:      3000,
			MaxHeightMm:     2600,
			Active:          true,
		}
		if err := model.Validate(); err != nil {
			return err
		}
		if err := s.modelRepo.Create(ctx, model); err != nil {
			return err
		}
	}

	if _, err := s.glassRepo.GetByID(ctx, SeedGlassClear); err != nil {
		glass := &domain.GlassType{
			ID:          SeedGlassClear,
			Name:        "Clear 4mm",
			PricePerSqm: domain.MustMoney(50),
			Active:      true,
		}
		if err := glass.Validate(); err != nil {
			return err
		}
		if err := s.glassRepo.Create(ctx, glass); err != nil {
			return err
		}
	}

	if _, err := s.colorRepo.GetByID(ctx, SeedColorWhite); err != nil {
		color := &domain.ColorOption{
			ID:               SeedColorWhite,
			Name:             "White",
			SurchargePercent: decimal.Zero,
			Active:           true,
		}
		if err := color.Validate(); err != nil {
			return err
		}
		if err := s.colorRepo.Create(ctx, color); err != nil {
			return err
		}
	}

	if _, err := s.serviceRepo.GetByID(ctx, SeedServiceTools); err != nil {
		service := &domain.Service{
			ID:     SeedServiceTools,
			Name:   "Installation",
			Unit:   domain.BillingUnitSqm,
			Rate:   domain.MustMoney(20),
			Active: true,
		}
		if err := service.Validate(); err != nil {
			return err
		}
		if err := s.serviceRepo.Create(ctx, service); err != nil {
			return err
		}
	}

	return nil
}
