// Package server provides route registration.
package server

import (
	"encoding/json"
	"net/http"
)

// setupRoutes registers all HTTP routes.
func (s *Server) setupRoutes() {
	// Health check at the root for load balancers
	s.router.HandleFunc("GET /health", s.handleHealth)

	// API routes
	s.apiHandler.RegisterRoutes(s.router)
}

// handleHealth returns server health status.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	// Check database connectivity when the sqlite cache backend is active
	if s.db != nil {
		if err := s.db.Ping(); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]interface{}{
				"status": "unhealthy",
				"error":  "database unavailable",
			})
			return
		}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"version":   "1.0.0",
		"cache":     s.config.Cache.Backend,
		"providers": s.providers.HasSources(),
	})
}

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
