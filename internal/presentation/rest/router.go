// Package rest is the HTTP surface of the sanction service.
package rest

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

// RouterConfig collects everything the HTTP surface serves.
type RouterConfig struct {
	Sanctions   *SanctionHandler
	Advisory    *AdvisoryHandler
	Health      *HealthHandler
	MetricsPage http.Handler
	Logger      *slog.Logger
}

// NewRouter wires the chi router: probes and metrics at the root, the API
// under /api/v1.
func NewRouter(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(requestLogger(cfg.Logger))
	r.Use(chimiddleware.Recoverer)

	cfg.Health.Register(r)
	if cfg.MetricsPage != nil {
		r.Handle("/metrics", cfg.MetricsPage)
	}

	r.Route("/api/v1", func(api chi.Router) {
		cfg.Sanctions.Register(api)
		cfg.Advisory.Register(api)
	})

	return r
}
