package api

import (
	"encoding/json"
	"net/http"

	"clashcal/internal/calendar"
	"clashcal/internal/response"
	"clashcal/internal/slots"
)

// SlotsRequest is the request body for free-slot search.
type SlotsRequest struct {
	PeriodStart     string                `json:"period_start"`
	PeriodEnd       string                `json:"period_end"`
	DurationMinutes int                   `json:"duration_minutes"`
	WorkingHours    *slots.WorkingHours   `json:"working_hours,omitempty"`
	Events          []calendar.EventInput `json:"events"`
}

// SlotsResponse is the response body for free-slot search.
type SlotsResponse struct {
	Slots []slots.FreeSlot `json:"slots"`
	Count int              `json:"count"`
}

// FindSlots returns free slots of at least the requested duration
// within working hours across the search period.
func (h *Handler) FindSlots(w http.ResponseWriter, r *http.Request) {
	var req SlotsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.WriteValidationError(w, "invalid JSON body", nil)
		return
	}

	periodStart, periodEnd, ok := parsePeriod(w, req.PeriodStart, req.PeriodEnd)
	if !ok {
		return
	}

	if req.DurationMinutes <= 0 {
		response.WriteValidationError(w, "duration_minutes must be positive", nil)
		return
	}

	hours := h.hours
	if req.WorkingHours != nil {
		hours = *req.WorkingHours
		if hours.StartHour < 0 || hours.EndHour > 24 || hours.StartHour >= hours.EndHour {
			response.WriteValidationError(w, "working_hours must satisfy 0 <= start_hour < end_hour <= 24", nil)
			return
		}
	}

	events, err := calendar.ValidateAll(req.Events)
	if err != nil {
		response.WriteValidationError(w, "invalid event", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}

	found := slots.Find(events, req.DurationMinutes, periodStart, periodEnd, hours)

	response.JSON(w, http.StatusOK, SlotsResponse{
		Slots: found,
		Count: len(found),
	})
}
