// Package api provides HTTP router setup.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/truthscan/truthscan/internal/config"
	"github.com/truthscan/truthscan/internal/database"
	"github.com/truthscan/truthscan/internal/verify"
)

// NewRouter creates a new HTTP router with all routes configured.
func NewRouter(cfg *config.Config, verifier *verify.Verifier, store database.Store, version string) http.Handler {
	r := chi.NewRouter()

	handler := NewHandler(verifier, store, version)

	// Global middleware
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)
	r.Use(CORSMiddleware())
	r.Use(RequestIDMiddleware)
	r.Use(LoggingMiddleware)

	// API routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", handler.HealthCheck)

		r.Group(func(r chi.Router) {
			r.Use(RateLimitMiddleware(cfg.RateLimits.RequestsPerMinute))

			r.Post("/verify", handler.Verify)
			r.Get("/verifications/recent", handler.RecentVerifications)
		})
	})

	return r
}
