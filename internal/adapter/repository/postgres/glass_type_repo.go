package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/glasor/glazing-backend/internal/domain"
)

// glassTypeRepository implements domain.GlassTypeRepository
type glassTypeRepository struct {
	db *DB
}

// NewGlassTypeRepository creates a new glass type repository
func NewGlassTypeRepository(db *DB) domain.GlassTypeRepository {
	return &glassTypeRepository{db: db}
}

// GetByID retrieves a glass type by its ID
func (r *glassTypeRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.GlassType, error) {
	query := `
		SELECT id, name, price_per_sqm, discount_width_mm, discount_height_mm, active
		FROM glass_types
		WHERE id = $1
	`

	glass, err := scanGlassType(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("glass type %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get glass type by ID: %w", err)
	}

	return glass, nil
}

// Create creates a new glass type
func (r *glassTypeRepository) Create(ctx context.Context, glass *domain.GlassType) error {
	query := `
		INSERT INTO glass_types (id, name, price_per_sqm, discount_width_mm, discount_height_mm, active)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.ExecContext(ctx, query,
		glass.ID,
		glass.Name,
		glass.PricePerSqm.String(),
		glass.DiscountWidthMm,
		glass.DiscountHeightMm,
		glass.Active,
	)
	if err != nil {
		return fmt.Errorf("failed to create glass type: %w", err)
	}

	return nil
}

// Update replaces an existing glass type
func (r *glassTypeRepository) Update(ctx context.Context, glass *domain.GlassType) error {
	query := `
		UPDATE glass_types
		SET name = $2, price_per_sqm = $3, discount_width_mm = $4, discount_height_mm = $5, active = $6
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query,
		glass.ID,
		glass.Name,
		glass.PricePerSqm.String(),
		glass.DiscountWidthMm,
		glass.DiscountHeightMm,
		glass.Active,
	)
	if err != nil {
		return fmt.Errorf("failed to update glass type: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("glass type %s: %w", glass.ID, domain.ErrNotFound)
	}

	return nil
}

// List retrieves all glass types, optionally only active ones
func (r *glassTypeRepository) List(ctx context.Context, activeOnly bool) ([]*domain.GlassType, error) {
	query := `
		SELECT id, name, price_per_sqm, discount_width_mm, discount_height_mm, active
		FROM glass_types
	`
	if activeOnly {
		query += " WHERE active = true"
	}
	query += " ORDER BY name"

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list glass types: %w", err)
	}
	defer rows.Close()

	var glasses []*domain.GlassType
	for rows.Next() {
		glass, err := scanGlassType(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan glass type row: %w", err)
		}
		glasses = append(glasses, glass)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate glass type rows: %w", err)
	}

	return glasses, nil
}

func scanGlassType(row rowScanner) (*domain.GlassType, error) {
	var glass domain.GlassType
	var priceStr string

	err := row.Scan(
		&glass.ID,
		&glass.Name,
		&priceStr,
		&glass.DiscountWidthMm,
		&glass.DiscountHeightMm,
		&glass.Active,
	)
	if err != nil {
		return nil, err
	}

	if glass.PricePerSqm, err = scanMoney(priceStr); err != nil {
		return nil, err
	}

	return &glass, nil
}
