package postgres

import (
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
	"github.com/shopspring/decimal"

	_ "github.com/lib/pq" // PostgreSQL driver

	"github.com/glasor/glazing-backend/internal/domain"
)

// DB wraps the database connection
type DB struct {
	*sql.DB
}

// NewDB creates a new database connection
// connectionString should be in the format: "host=localhost port=5432 user=postgres password=postgres dbname=glazing sslmode=disable"
func NewDB(connectionString string) (*DB, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{DB: db}, nil
}

// Close closes the database connection
func (db *DB) Close() error {
	return db.DB.Close()
}

// Migrate runs all pending SQL migrations found in migrationsDir.
func (db *DB) Migrate(migrationsDir string) error {
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}

	if err := goose.Up(db.DB, migrationsDir); err != nil {
		return fmt.Errorf("run goose up migrations: %w", err)
	}

	return nil
}

// scanMoney parses a DECIMAL column value into a Money.
func scanMoney(raw string) (domain.Money, error) {
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return domain.Money{}, fmt.Errorf("failed to parse decimal column: %w", err)
	}
	return domain.NewMoneyFromDecimal(d), nil
}
