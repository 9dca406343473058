// Package http exposes the quoting and catalog usecases as a JSON REST API.
// It translates between wire primitives and the engine's value objects in
// both directions; no pricing logic lives here.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/glasor/glazing-backend/internal/usecase/catalog"
	"github.com/glasor/glazing-backend/internal/usecase/quote"
)

// Server holds the usecase services exposed over HTTP
type Server struct {
	QuoteService   *quote.QuoteService
	CatalogService *catalog.CatalogService

	logger *zap.Logger
}

// NewServer creates a new HTTP server instance
func NewServer(quoteService *quote.QuoteService, catalogService *catalog.CatalogService, logger *zap.Logger) *Server {
	return &Server{
		QuoteService:   quoteService,
		CatalogService: catalogService,
		logger:         logger,
	}
}

// Router builds the chi router with all API routes.
// apiToken guards every /api route; an empty token disables auth.
func (s *Server) Router(apiToken string) http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Route("/api/v1", func(api chi.Router) {
		api.Use(AuthMiddleware(apiToken))
		api.Use(s.requestLogger)

		api.Post("/quotes/price", s.handlePriceItem)
		api.Post("/quotes", s.handleCreateQuote)
		api.Get("/quotes", s.handleListQuotes)
		api.Get("/quotes/{id}", s.handleGetQuote)

		api.Post("/models", s.handleCreateModel)
		api.Put("/models/{id}", s.handleUpdateModel)
		api.Get("/models/{id}", s.handleGetModel)
		api.Get("/models", s.handleListModels)

		api.Post("/glass-types", s.handleCreateGlassType)
		api.Put("/glass-types/{id}", s.handleUpdateGlassType)
		api.Get("/glass-types/{id}", s.handleGetGlassType)
		api.Get("/glass-types", s.handleListGlassTypes)

		api.Post("/colors", s.handleCreateColor)
		api.Put("/colors/{id}", s.handleUpdateColor)
		api.Get("/colors/{id}", s.handleGetColor)
		api.Get("/colors", s.handleListColors)

		api.Post("/services", s.handleCreateService)
		api.Put("/services/{id}", s.handleUpdateService)
		api.Get("/services/{id}", s.handleGetService)
		api.Get("/services", s.handleListServices)
	})

	return r
}

// requestLogger logs every API request at debug level
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.logger != nil {
			s.logger.Debug("api request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
			)
		}
		next.ServeHTTP(w, r)
	})
}
