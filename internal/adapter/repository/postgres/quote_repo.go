package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/glasor/glazing-backend/internal/domain"
)

// quoteRepository implements domain.QuoteRepository
type quoteRepository struct {
	db *DB
}

// NewQuoteRepository creates a new quote repository
func NewQuoteRepository(db *DB) domain.QuoteRepository {
	return &quoteRepository{db: db}
}

// Create creates a new quote with all its items in a database transaction
func (r *quoteRepository) Create(ctx context.Context, quote *domain.Quote) error {
	dbTx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer dbTx.Rollback()

	insertQuoteQuery := `
		INSERT INTO quotes (id, reference, customer_name, created_at, total)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err = dbTx.ExecContext(ctx, insertQuoteQuery,
		quote.ID,
		quote.Reference,
		quote.CustomerName,
		quote.CreatedAt,
		quote.Total.String(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert quote: %w", err)
	}

	insertItemQuery := `
		INSERT INTO quote_items (
			id, quote_id, model_id, glass_type_id, color_id,
			width_mm, height_mm, with_accessory,
			profile_cost, glass_cost, accessory_cost, dim_price, color_surcharge,
			services, adjustments, subtotal
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	`

	for _, item := range quote.Items {
		servicesJSON, err := json.Marshal(item.Services)
		if err != nil {
			return fmt.Errorf("failed to marshal item services: %w", err)
		}
		adjustmentsJSON, err := json.Marshal(item.Adjustments)
		if err != nil {
			return fmt.Errorf("failed to marshal item adjustments: %w", err)
		}

		_, err = dbTx.ExecContext(ctx, insertItemQuery,
			item.ID,
			item.QuoteID,
			item.ModelID,
			item.GlassTypeID,
			item.ColorID,
			item.WidthMm,
			item.HeightMm,
			item.WithAccessory,
			item.ProfileCost.String(),
			item.GlassCost.String(),
			item.AccessoryCost.String(),
			item.DimPrice.String(),
			item.ColorSurcharge.String(),
			servicesJSON,
			adjustmentsJSON,
			item.Subtotal.String(),
		)
		if err != nil {
			return fmt.Errorf("failed to insert quote item: %w", err)
		}
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetByID retrieves a quote and its items by quote ID
func (r *quoteRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Quote, error) {
	quoteQuery := `
		SELECT id, reference, customer_name, created_at, total
		FROM quotes
		WHERE id = $1
	`

	var quote domain.Quote
	var totalStr string

	err := r.db.QueryRowContext(ctx, quoteQuery, id).Scan(
		&quote.ID,
		&quote.Reference,
		&quote.CustomerName,
		&quote.CreatedAt,
		&totalStr,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("quote %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get quote by ID: %w", err)
	}

	if quote.Total, err = scanMoney(totalStr); err != nil {
		return nil, err
	}

	itemsQuery := `
		SELECT id, quote_id, model_id, glass_type_id, color_id,
		       width_mm, height_mm, with_accessory,
		       profile_cost, glass_cost, accessory_cost, dim_price, color_surcharge,
		       services, adjustments, subtotal
		FROM quote_items
		WHERE quote_id = $1
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, itemsQuery, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query quote items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		item, err := scanQuoteItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan quote item row: %w", err)
		}
		quote.Items = append(quote.Items, *item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate quote item rows: %w", err)
	}

	return &quote, nil
}

// List retrieves a paginated list of quotes (items not loaded)
func (r *quoteRepository) List(ctx context.Context, limit, offset int) ([]*domain.Quote, error) {
	query := `
		SELECT id, reference, customer_name, created_at, total
		FROM quotes
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list quotes: %w", err)
	}
	defer rows.Close()

	var quotes []*domain.Quote
	for rows.Next() {
		var quote domain.Quote
		var totalStr string

		err := rows.Scan(
			&quote.ID,
			&quote.Reference,
			&quote.CustomerName,
			&quote.CreatedAt,
			&totalStr,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan quote row: %w", err)
		}

		if quote.Total, err = scanMoney(totalStr); err != nil {
			return nil, err
		}

		quotes = append(quotes, &quote)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate quote rows: %w", err)
	}

	return quotes, nil
}

// Count returns the total number of quotes
func (r *quoteRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM quotes`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count quotes: %w", err)
	}
	return count, nil
}

func scanQuoteItem(row rowScanner) (*domain.QuoteItem, error) {
	var item domain.QuoteItem
	var glassID, colorID sql.NullString
	var profileStr, glassStr, accessoryStr, dimPriceStr, surchargeStr, subtotalStr string
	var servicesJSON, adjustmentsJSON []byte

	err := row.Scan(
		&item.ID,
		&item.QuoteID,
		&item.ModelID,
		&glassID,
		&colorID,
		&item.WidthMm,
		&item.HeightMm,
		&item.WithAccessory,
		&profileStr,
		&glassStr,
		&accessoryStr,
		&dimPriceStr,
		&surchargeStr,
		&servicesJSON,
		&adjustmentsJSON,
		&subtotalStr,
	)
	if err != nil {
		return nil, err
	}

	if glassID.Valid {
		parsed, err := uuid.Parse(glassID.String)
		if err != nil {
			return nil, fmt.Errorf("failed to parse glass_type_id: %w", err)
		}
		item.GlassTypeID = &parsed
	}
	if colorID.Valid {
		parsed, err := uuid.Parse(colorID.String)
		if err != nil {
			return nil, fmt.Errorf("failed to parse color_id: %w", err)
		}
		item.ColorID = &parsed
	}

	if item.ProfileCost, err = scanMoney(profileStr); err != nil {
		return nil, err
	}
	if item.GlassCost, err = scanMoney(glassStr); err != nil {
		return nil, err
	}
	if item.AccessoryCost, err = scanMoney(accessoryStr); err != nil {
		return nil, err
	}
	if item.DimPrice, err = scanMoney(dimPriceStr); err != nil {
		return nil, err
	}
	if item.ColorSurcharge, err = scanMoney(surchargeStr); err != nil {
		return nil, err
	}
	if item.Subtotal, err = scanMoney(subtotalStr); err != nil {
		return nil, err
	}

	if len(servicesJSON) > 0 {
		if err := json.Unmarshal(servicesJSON, &item.Services); err != nil {
			return nil, fmt.Errorf("failed to unmarshal item services: %w", err)
		}
	}
	if len(adjustmentsJSON) > 0 {
		if err := json.Unmarshal(adjustmentsJSON, &item.Adjustments); err != nil {
			return nil, fmt.Errorf("failed to unmarshal item adjustments: %w", err)
		}
	}

	return &item, nil
}
