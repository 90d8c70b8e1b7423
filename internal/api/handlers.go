// Package api provides REST API handlers.
package api

import (
	"net/http"
	"time"

	"clashcal/internal/conflict"
	"clashcal/internal/provider"
	"clashcal/internal/registry"
	"clashcal/internal/response"
	"clashcal/internal/slots"
)

// Handler provides REST API handlers.
type Handler struct {
	detector  *conflict.Detector
	registry  *registry.Registry
	providers *provider.Multi
	hours     slots.WorkingHours
}

// NewHandler creates a new API handler.
func NewHandler(det *conflict.Detector, reg *registry.Registry, providers *provider.Multi, hours slots.WorkingHours) *Handler {
	if reg == nil {
		reg = registry.Default()
	}
	if providers == nil {
		providers = provider.NewMulti()
	}
	if hours.IsZero() {
		hours = slots.DefaultWorkingHours()
	}
	return &Handler{
		detector:  det,
		registry:  reg,
		providers: providers,
		hours:     hours,
	}
}

// RegisterRoutes registers API routes.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	// Health check (no auth)
	mux.HandleFunc("GET /api/health", h.Health)

	// Conflict detection
	mux.HandleFunc("POST /api/conflicts/detect", h.DetectConflicts)
	mux.HandleFunc("POST /api/conflicts/scan", h.ScanConflicts)

	// Free-slot search
	mux.HandleFunc("POST /api/slots/find", h.FindSlots)

	// Calendar registry
	mux.HandleFunc("GET /api/calendars", h.ListCalendars)
}

// Health returns server health status.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, map[string]interface{}{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

// ListCalendars returns the configured calendar registry.
func (h *Handler) ListCalendars(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, map[string]interface{}{
		"calendars":      h.registry.Calendars(),
		"family_members": h.registry.FamilyMembers(),
		"work_domains":   h.registry.WorkDomains(),
	})
}
