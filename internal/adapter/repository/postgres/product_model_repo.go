package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/glasor/glazing-backend/internal/domain"
)

// productModelRepository implements domain.ProductModelRepository
type productModelRepository struct {
	db *DB
}

// NewProductModelRepository creates a new product model repository
func NewProductModelRepository(db *DB) domain.ProductModelRepository {
	return &productModelRepository{db: db}
}

const productModelColumns = `id, name, base_price, cost_per_mm_width, cost_per_mm_height,
	accessory_price, min_width_mm, min_height_mm, max_width_mm, max_height_mm, active`

// GetByID retrieves a product model by its ID
func (r *productModelRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.ProductModel, error) {
	query := `
		SELECT ` + productModelColumns + `
		FROM product_models
		WHERE id = $1
	`

	model, err := scanProductModel(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("product model %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get product model by ID: %w", err)
	}

	return model, nil
}

// Create creates a new product model
func (r *productModelRepository) Create(ctx context.Context, model *domain.ProductModel) error {
	query := `
		INSERT INTO product_models (` + productModelColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	var accessoryPrice interface{}
	if model.AccessoryPrice != nil {
		accessoryPrice = model.AccessoryPrice.String()
	}

	_, err := r.db.ExecContext(ctx, query,
		model.ID,
		model.Name,
		model.BasePrice.String(),
		model.CostPerMmWidth.String(),
		model.CostPerMmHeight.String(),
		accessoryPrice,
		model.MinWidthMm,
		model.MinHeightMm,
		model.MaxWidthMm,
		model.MaxHeightMm,
		model.Active,
	)
	if err != nil {
		return fmt.Errorf("failed to create product model: %w", err)
	}

	return nil
}

// Update replaces an existing product model
func (r *productModelRepository) Update(ctx context.Context, model *domain.ProductModel) error {
	query := `
		UPDATE product_models
		SET name = $2, base_price = $3, cost_per_mm_width = $4, cost_per_mm_height = $5,
		    accessory_price = $6, min_width_mm = $7, min_height_mm = $8,
		    max_width_mm = $9, max_height_mm = $10, active = $11
		WHERE id = $1
	`

	var accessoryPrice interface{}
	if model.AccessoryPrice != nil {
		accessoryPrice = model.AccessoryPrice.String()
	}

	result, err := r.db.ExecContext(ctx, query,
		model.ID,
		model.Name,
		model.BasePrice.String(),
		model.CostPerMmWidth.String(),
		model.CostPerMmHeight.String(),
		accessoryPrice,
		model.MinWidthMm,
		model.MinHeightMm,
		model.MaxWidthMm,
		model.MaxHeightMm,
		model.Active,
	)
	if err != nil {
		return fmt.Errorf("failed to update product model: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("product model %s: %w", model.ID, domain.ErrNotFound)
	}

	return nil
}

// List retrieves all product models, optionally only active ones
func (r *productModelRepository) List(ctx context.Context, activeOnly bool) ([]*domain.ProductModel, error) {
	query := `
		SELECT ` + productModelColumns + `
		FROM product_models
	`
	if activeOnly {
		query += " WHERE active = true"
	}
	query += " ORDER BY name"

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list product models: %w", err)
	}
	defer rows.Close()

	var models []*domain.ProductModel
	for rows.Next() {
		model, err := scanProductModel(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product model row: %w", err)
		}
		models = append(models, model)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate product model rows: %w", err)
	}

	return models, nil
}

// rowScanner abstracts *sql.Row and *sql.Rows for shared scan helpers
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanProductModel(row rowScanner) (*domain.ProductModel, error) {
	var model domain.ProductModel
	var basePriceStr, costWidthStr, costHeightStr string
	var accessoryPriceStr sql.NullString

	err := row.Scan(
		&model.ID,
		&model.Name,
		&basePriceStr,
		&costWidthStr,
		&costHeightStr,
		&accessoryPriceStr,
		&model.MinWidthMm,
		&model.MinHeightMm,
		&model.MaxWidthMm,
		&model.MaxHeightMm,
		&model.Active,
	)
	if err != nil {
		return nil, err
	}

	if model.BasePrice, err = scanMoney(basePriceStr); err != nil {
		return nil, err
	}
	if model.CostPerMmWidth, err = scanMoney(costWidthStr); err != nil {
		return nil, err
	}
	if model.CostPerMmHeight, err = scanMoney(costHeightStr); err != nil {
		return nil, err
	}
	if accessoryPriceStr.Valid {
		accessory, err := scanMoney(accessoryPriceStr.String)
		if err != nil {
			return nil, err
		}
		model.AccessoryPrice = &accessory
	}

	return &model, nil
}
