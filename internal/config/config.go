// Package config provides application configuration sourced from
// environment variables.
package config

import (
	"fmt"
	"os"
)

const (
	defaultPort          = "8080"
	defaultAPIToken      = "dev-token"
	defaultLogLevel      = "info"
	defaultLogFormat     = "console"
	defaultMigrationsDir = "migrations"
)

// Config holds application configuration sourced from environment variables.
type Config struct {
	Port          string
	APIToken      string
	DBConnStr     string
	LogLevel      string
	LogFormat     string
	MigrationsDir string
	AutoMigrate   bool
}

// Load reads environment variables and returns a populated Config.
func Load() Config {
	cfg := Config{
		Port:          getenv("PORT", defaultPort),
		APIToken:      getenv("API_TOKEN", defaultAPIToken),
		DBConnStr:     os.Getenv("DB_CONN_STR"),
		LogLevel:      getenv("LOG_LEVEL", defaultLogLevel),
		LogFormat:     getenv("LOG_FORMAT", defaultLogFormat),
		MigrationsDir: getenv("MIGRATIONS_DIR", defaultMigrationsDir),
		AutoMigrate:   os.Getenv("AUTO_MIGRATE") != "false",
	}

	if cfg.DBConnStr == "" {
		// Build the connection string from individual vars (Docker friendly)
		host := getenv("DB_HOST", "localhost")
		port := getenv("DB_PORT", "5432")
		user := getenv("DB_USER", "postgres")
		password := getenv("DB_PASSWORD", "postgres")
		dbname := getenv("DB_NAME", "glazing")

		cfg.DBConnStr = fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			host, port, user, password, dbname)
	}

	return cfg
}

func getenv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
