package api

import (
	"encoding/json"
	"net/http"
	"time"

	"clashcal/internal/calendar"
	"clashcal/internal/response"
	"clashcal/internal/util"
)

// DetectRequest is the request body for conflict detection over
// caller-supplied events.
type DetectRequest struct {
	PeriodStart string                `json:"period_start"`
	PeriodEnd   string                `json:"period_end"`
	Events      []calendar.EventInput `json:"events"`
}

// ScanRequest is the request body for conflict detection over events
// fetched from configured calendar providers.
type ScanRequest struct {
	PeriodStart string   `json:"period_start"`
	PeriodEnd   string   `json:"period_end"`
	CalendarIDs []string `json:"calendar_ids"`
}

// DetectConflicts analyzes the submitted events for pairwise conflicts.
func (h *Handler) DetectConflicts(w http.ResponseWriter, r *http.Request) {
	var req DetectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.WriteValidationError(w, "invalid JSON body", nil)
		return
	}

	periodStart, periodEnd, ok := parsePeriod(w, req.PeriodStart, req.PeriodEnd)
	if !ok {
		return
	}

	events, err := calendar.ValidateAll(req.Events)
	if err != nil {
		response.WriteValidationError(w, "invalid event", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}

	report, err := h.detector.Detect(r.Context(), events, periodStart, periodEnd)
	if err != nil {
		util.Error("Conflict detection failed", "error", err)
		response.WriteInternalError(w, "conflict detection failed")
		return
	}

	response.JSON(w, http.StatusOK, report)
}

// ScanConflicts fetches events from the configured providers for the
// requested calendars and analyzes them for conflicts.
func (h *Handler) ScanConflicts(w http.ResponseWriter, r *http.Request) {
	if !h.providers.HasSources() {
		response.WriteNoProvider(w)
		return
	}

	var req ScanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.WriteValidationError(w, "invalid JSON body", nil)
		return
	}

	periodStart, periodEnd, ok := parsePeriod(w, req.PeriodStart, req.PeriodEnd)
	if !ok {
		return
	}

	calendarIDs := req.CalendarIDs
	if len(calendarIDs) == 0 {
		for _, cal := range h.registry.Calendars() {
			calendarIDs = append(calendarIDs, cal.ID)
		}
	}

	events, err := h.providers.ListAll(r.Context(), calendarIDs, periodStart, periodEnd)
	if err != nil {
		util.Error("Provider fetch failed", "error", err)
		response.WriteProviderError(w, "failed to fetch events from calendar provider")
		return
	}

	report, err := h.detector.Detect(r.Context(), events, periodStart, periodEnd)
	if err != nil {
		util.Error("Conflict detection failed", "error", err)
		response.WriteInternalError(w, "conflict detection failed")
		return
	}

	response.JSON(w, http.StatusOK, report)
}

// parsePeriod parses and validates the RFC3339 period bounds, writing a
// validation error on failure.
func parsePeriod(w http.ResponseWriter, startStr, endStr string) (time.Time, time.Time, bool) {
	if startStr == "" || endStr == "" {
		response.WriteValidationError(w, "period_start and period_end are required", nil)
		return time.Time{}, time.Time{}, false
	}

	periodStart, err := time.Parse(time.RFC3339, startStr)
	if err != nil {
		response.WriteValidationError(w, "invalid period_start format (use RFC3339)", nil)
		return time.Time{}, time.Time{}, false
	}

	periodEnd, err := time.Parse(time.RFC3339, endStr)
	if err != nil {
		response.WriteValidationError(w, "invalid period_end format (use RFC3339)", nil)
		return time.Time{}, time.Time{}, false
	}

	if !periodEnd.After(periodStart) {
		response.WriteValidationError(w, "period_end must be after period_start", nil)
		return time.Time{}, time.Time{}, false
	}

	return periodStart, periodEnd, true
}
