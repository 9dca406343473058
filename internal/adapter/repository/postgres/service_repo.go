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

// serviceRepository implements domain.ServiceRepository
type serviceRepository struct {
	db *DB
}

// NewServiceRepository creates a new service repository
func NewServiceRepository(db *DB) domain.ServiceRepository {
	return &serviceRepository{db: db}
}

// GetByID retrieves a service by its ID
func (r *serviceRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Service, error) {
	query := `
		SELECT id, name, unit, rate, minimum_billing_unit, active
		FROM services
		WHERE id = $1
	`

	service, err := scanService(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("service %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get service by ID: %w", err)
	}

	return service, nil
}

// Create creates a new service
func (r *serviceRepository) Create(ctx context.Context, service *domain.Service) error {
	query := `
		INSERT INTO services (id, name, unit, rate, minimum_billing_unit, active)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	var minimum interface{}
	if service.MinimumBillingUnit != nil {
		minimum = service.MinimumBillingUnit.String()
	}

	_, err := r.db.ExecContext(ctx, query,
		service.ID,
		service.Name,
		string(service.Unit),
		service.Rate.String(),
		minimum,
		service.Active,
	)
	if err != nil {
		return fmt.Errorf("failed to create service: %w", err)
	}

	return nil
}

// Update replaces an existing service
func (r *serviceRepository) Update(ctx context.Context, service *domain.Service) error {
	query := `
		UPDATE services
		SET name = $2, unit = $3, rate = $4, minimum_billing_unit = $5, active = $6
		WHERE id = $1
	`

	var minimum interface{}
	if service.MinimumBillingUnit != nil {
		minimum = service.MinimumBillingUnit.String()
	}

	result, err := r.db.ExecContext(ctx, query,
		service.ID,
		service.Name,
		string(service.Unit),
		service.Rate.String(),
		minimum,
		service.Active,
	)
	if err != nil {
		return fmt.Errorf("failed to update service: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("service %s: %w", service.ID, domain.ErrNotFound)
	}

	return nil
}

// List retrieves all services, optionally only active ones
func (r *serviceRepository) List(ctx context.Context, activeOnly bool) ([]*domain.Service, error) {
	query := `
		SELECT id, name, unit, rate, minimum_billing_unit, active
		FROM services
	`
	if activeOnly {
		query += " WHERE active = true"
	}
	query += " ORDER BY name"

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	defer rows.Close()

	var services []*domain.Service
	for rows.Next() {
		service, err := scanService(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan service row: %w", err)
		}
		services = append(services, service)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate service rows: %w", err)
	}

	return services, nil
}

func scanService(row rowScanner) (*domain.Service, error) {
	var service domain.Service
	var unitStr, rateStr string
	var minimumStr sql.NullString

	err := row.Scan(
		&service.ID,
		&service.Name,
		&unitStr,
		&rateStr,
		&minimumStr,
		&service.Active,
	)
	if err != nil {
		return nil, err
	}

	unit, err := domain.ParseBillingUnit(unitStr)
	if err != nil {
		return nil, err
	}
	service.Unit = unit

	if service.Rate, err = scanMoney(rateStr); err != nil {
		return nil, err
	}

	if minimumStr.Valid {
		minimum, err := decimal.NewFromString(minimumStr.String)
		if err != nil {
			return nil, fmt.Errorf("failed to parse minimum_billing_unit: %w", err)
		}
		service.MinimumBillingUnit = &minimum
	}

	return &service, nil
}
