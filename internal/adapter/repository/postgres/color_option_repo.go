package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/glasor/glazing-backend/internal/domain"
)

// colorOptionRepository implements domain.ColorOptionRepository
type colorOptionRepository struct {
	db *DB
}

// NewColorOptionRepository creates a new color option repository
func NewColorOptionRepository(db *DB) domain.ColorOptionRepository {
	return &colorOptionRepository{db: db}
}

// GetByID retrieves a color option by its ID
func (r *colorOptionRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.ColorOption, error) {
	query := `
		SELECT id, name, surcharge_percent, active
		FROM color_options
		WHERE id = $1
	`

	color, err := scanColorOption(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("color option %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get color option by ID: %w", err)
	}

	return color, nil
}

// Create creates a new color option
func (r *colorOptionRepository) Create(ctx context.Context, color *domain.ColorOption) error {
	query := `
		INSERT INTO color_options (id, name, surcharge_percent, active)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.db.ExecContext(ctx, query,
		color.ID,
		color.Name,
		color.SurchargePercent.String(),
		color.Active,
	)
	if err != nil {
		return fmt.Errorf("failed to create color option: %w", err)
	}

	return nil
}

// Update replaces an existing color option
func (r *colorOptionRepository) Update(ctx context.Context, color *domain.ColorOption) error {
	query := `
		UPDATE color_options
		SET name = $2, surcharge_percent = $3, active = $4
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query,
		color.ID,
		color.Name,
		color.SurchargePercent.String(),
		color.Active,
	)
	if err != nil {
		return fmt.Errorf("failed to update color option: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("color option %s: %w", color.ID, domain.ErrNotFound)
	}

	return nil
}

// List retrieves all color options, optionally only active ones
func (r *colorOptionRepository) List(ctx context.Context, activeOnly bool) ([]*domain.ColorOption, error) {
	query := `
		SELECT id, name, surcharge_percent, active
		FROM color_options
	`
	if activeOnly {
		query += " WHERE active = true"
	}
	query += " ORDER BY name"

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list color options: %w", err)
	}
	defer rows.Close()

	var colors []*domain.ColorOption
	for rows.Next() {
		color, err := scanColorOption(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan color option row: %w", err)
		}
		colors = append(colors, color)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate color option rows: %w", err)
	}

	return colors, nil
}

func scanColorOption(row rowScanner) (*domain.ColorOption, error) {
	var color domain.ColorOption
	var percentStr string

	err := row.Scan(
		&color.ID,
		&color.Name,
		&percentStr,
		&color.Active,
	)
	if err != nil {
		return nil, err
	}

	percent, err := decimal.NewFromString(percentStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse surcharge_percent: %w", err)
	}
	color.SurchargePercent = percent

	return &color, nil
}
