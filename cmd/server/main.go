package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	httpadapter "github.com/glasor/glazing-backend/internal/adapter/http"
	"github.com/glasor/glazing-backend/internal/adapter/repository/postgres"
	"github.com/glasor/glazing-backend/internal/config"
	"github.com/glasor/glazing-backend/internal/logging"
	"github.com/glasor/glazing-backend/internal/usecase/catalog"
	"github.com/glasor/glazing-backend/internal/usecase/quote"
	"github.com/glasor/glazing-backend/internal/usecase/seeder"
)

func main() {
	cfg := config.Load()

	logger := logging.New(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	defer func() { _ = logger.Sync() }()

	db, err := postgres.NewDB(cfg.DBConnStr)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if cfg.AutoMigrate {
		if err := db.Migrate(cfg.MigrationsDir); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
		logger.Info("migrations applied", zap.String("dir", cfg.MigrationsDir))
	}

	modelRepo := postgres.NewProductModelRepository(db)
	glassRepo := postgres.NewGlassTypeRepository(db)
	colorRepo := postgres.NewColorOptionRepository(db)
	serviceRepo := postgres.NewServiceRepository(db)
	quoteRepo := postgres.NewQuoteRepository(db)

	catalogSeeder := seeder.NewCatalogSeeder(modelRepo, glassRepo, colorRepo, serviceRepo)
	if err := catalogSeeder.Seed(context.Background()); err != nil {
		logger.Fatal("failed to seed default catalog", zap.Error(err))
	}
	logger.Info("default catalog seeded")

	quoteService := quote.NewQuoteService(modelRepo, glassRepo, colorRepo, serviceRepo, quoteRepo)
	catalogService := catalog.NewCatalogService(modelRepo, glassRepo, colorRepo, serviceRepo)

	server := httpadapter.NewServer(quoteService, catalogService, logger)

	httpServer := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           server.Router(cfg.APIToken),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("http server listening", zap.String("addr", httpServer.Addr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("http server failed", zap.Error(err))
		}
	}()

	waitForShutdown(httpServer, logger)
}

// waitForShutdown blocks until SIGTERM or SIGINT, then drains in-flight
// requests before exiting.
func waitForShutdown(server *http.Server, logger *zap.Logger) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	sig := <-sigChan
	logger.Info("shutting down", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("shutdown error", zap.Error(err))
	}
	logger.Info("http server stopped")
}
