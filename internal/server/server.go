// Package server provides the HTTP server and routing.
package server

import (
	"context"
	"fmt"
	"net/http"

	"clashcal/internal/api"
	"clashcal/internal/cache"
	"clashcal/internal/config"
	"clashcal/internal/conflict"
	"clashcal/internal/database"
	"clashcal/internal/provider"
	"clashcal/internal/registry"
	"clashcal/internal/server/middleware"
	"clashcal/internal/slots"
	"clashcal/internal/util"
	"clashcal/internal/workers"
)

// Server is the main HTTP server.
type Server struct {
	config        *config.Config
	db            *database.DB
	router        *http.ServeMux
	registry      *registry.Registry
	cache         cache.Cache
	detector      *conflict.Detector
	providers     *provider.Multi
	apiHandler    *api.Handler
	cleanupWorker *workers.CleanupWorker
}

// New creates a new Server instance. db may be nil when the sqlite
// cache backend is not in use.
func New(cfg *config.Config, db *database.DB) (*Server, error) {
	// Load the calendar registry
	reg, err := registry.Load(cfg.Registry.Path)
	if err != nil {
		return nil, err
	}

	// Initialize the report cache backend
	var reportCache cache.Cache
	var purger cache.Purger
	switch cfg.Cache.Backend {
	case config.CacheBackendSQLite:
		if db == nil {
			return nil, fmt.Errorf("sqlite cache backend requires an open database")
		}
		c := cache.NewSQLite(db)
		reportCache = c
		purger = c
	case config.CacheBackendMemory:
		c := cache.NewMemory()
		reportCache = c
		purger = c
	case config.CacheBackendNone:
		// Detection runs uncached.
	}

	// Initialize the detector
	detector := conflict.NewDetector(reg, reportCache, cfg.Cache.TTL)

	// Initialize calendar providers
	providers := provider.NewMulti()
	if cfg.Providers.Google.Enabled {
		providers.Register("google", provider.NewGoogle(cfg.Providers.Google))
		util.Info("Google Calendar provider enabled")
	}
	if cfg.Providers.ICS.Enabled {
		providers.Register("ics", provider.NewICS(cfg.Providers.ICS.Sources))
		util.Info("ICS provider enabled", "sources", len(cfg.Providers.ICS.Sources))
	}

	// Initialize API handler
	hours := slots.WorkingHours{
		StartHour: cfg.Slots.StartHour,
		EndHour:   cfg.Slots.EndHour,
	}
	apiHandler := api.NewHandler(detector, reg, providers, hours)

	// Initialize workers
	var cleanupWorker *workers.CleanupWorker
	if cfg.Retention.Enabled && purger != nil {
		cleanupWorker = workers.NewCleanupWorker(purger, &cfg.Retention)
	}

	s := &Server{
		config:        cfg,
		db:            db,
		router:        http.NewServeMux(),
		registry:      reg,
		cache:         reportCache,
		detector:      detector,
		providers:     providers,
		apiHandler:    apiHandler,
		cleanupWorker: cleanupWorker,
	}

	s.setupRoutes()

	return s, nil
}

// Handler returns the HTTP handler with all middleware applied.
func (s *Server) Handler() http.Handler {
	// Build middleware chain (applied in reverse order)
	var handler http.Handler = s.router

	// Recovery middleware (outermost - catches panics)
	handler = middleware.Recovery(handler)

	// Logging middleware
	handler = middleware.Logging(handler)

	// Request ID before logging so the ID shows up in the log line
	handler = middleware.RequestID(handler)

	// CORS middleware
	handler = middleware.CORS(handler)

	// Security headers
	handler = middleware.SecurityHeaders(handler)

	return handler
}

// StartBackgroundWorkers starts all background workers.
func (s *Server) StartBackgroundWorkers(ctx context.Context) {
	if s.cleanupWorker != nil {
		go s.cleanupWorker.Start(ctx)
	}

	util.Info("Background workers started")
}

// DB returns the database connection, nil when no sqlite cache is
// configured.
func (s *Server) DB() *database.DB {
	return s.db
}

// Config returns the server configuration.
func (s *Server) Config() *config.Config {
	return s.config
}

// Registry returns the loaded calendar registry.
func (s *Server) Registry() *registry.Registry {
	return s.registry
}
