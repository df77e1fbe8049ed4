package server

import (
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"galaxycheck/internal/handlers"
	"galaxycheck/internal/handlers/api"
	"galaxycheck/internal/lookup"
	"galaxycheck/internal/metrics"
	"galaxycheck/internal/middleware"
)

// RegisterRoutes registers all application routes.
// upstream may be nil when no upstream checker runs.
func (s *Server) RegisterRoutes(registry *lookup.Registry, fetcher lookup.Fetcher, recorder metrics.Recorder, upstream handlers.UpstreamStatus) {
	// Initialize middleware
	lookupMiddleware := middleware.NewLookupMiddleware(registry)

	// Initialize handlers
	lookupHandler := handlers.NewLookupHandler(s.Cfg)
	probeHandler := handlers.NewProbeHandler(upstream)
	tokenHandler := api.NewTokenHandler(fetcher, s.Cfg.LookupTimeout, recorder)
	shareHandler := api.NewShareHandler(s.Cfg.BaseURL)

	// Probes
	s.App.Get("/healthz", probeHandler.Liveness)
	s.App.Get("/readyz", probeHandler.Readiness)
	s.App.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// Lookup page, backed by the session's list
	s.App.Get("/", lookupMiddleware.LoadLookups, lookupHandler.Index)
	s.App.Post("/lookups", lookupMiddleware.LoadLookups, lookupHandler.Submit)
	s.App.Get("/lookups/:id", lookupMiddleware.LoadLookups, lookupHandler.Entry)
	s.App.Get("/share/:token", lookupHandler.Share)

	// JSON API
	s.App.Get("/api/tokens/:token", tokenHandler.Get)
	s.App.Get("/api/share/:token", shareHandler.Get)
}
