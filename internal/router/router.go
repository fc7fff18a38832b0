// Package router sets up the HTTP routes and middleware chain for the
// mirage server. Every tool lives under /tools and takes a JSON POST body.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"mirage/internal/handlers"
	"mirage/internal/middleware"
)

// New creates and returns the configured Chi router with all middleware
// and tool routes wired up.
func New(tools *handlers.Tools, limiter *middleware.RateLimiter) chi.Router {
	r := chi.NewRouter()

	// Global middleware — applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)

	// Health check — not rate limited.
	r.Get("/health", healthHandler)

	// Tool endpoints — rate limited, the upstream APIs are metered.
	r.Route("/tools", func(r chi.Router) {
		r.Use(limiter.Middleware)

		r.Post("/extract-brand", tools.ExtractBrand)
		r.Post("/generate-replica", tools.GenerateReplica)
		r.Post("/replicate-website", tools.ReplicateWebsite)
		r.Post("/compare-brands", tools.CompareBrands)
		r.Post("/apply-template", tools.ApplyTemplate)
	})

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
