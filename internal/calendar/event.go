// Package calendar defines the event model consumed by the conflict
// detector and the free-slot finder, plus the boundary validation that
// turns raw provider payloads into well-formed Event values.
package calendar

import (
	"fmt"
	"time"
)

// Event is one calendar occurrence as seen by the engine. IDs are only
// unique within a single call's event set, not across calendars.
type Event struct {
	ID         string    `json:"id"`
	Summary    string    `json:"summary"`
	Start      time.Time `json:"start"`
	End        time.Time `json:"end"`
	CalendarID string    `json:"calendar_id"`
}

// Validation errors
var (
	ErrMissingID         = fmt.Errorf("event id cannot be empty")
	ErrMissingCalendarID = fmt.Errorf("calendar_id cannot be empty")
	ErrMissingTime       = fmt.Errorf("start and end times are required")
	ErrInvalidTime       = fmt.Errorf("invalid time format (expected RFC3339)")
)

// EventInput is the wire shape accepted from upstream providers and API
// callers. Timestamps arrive as RFC3339 strings with offset or "Z".
type EventInput struct {
	ID         string `json:"id"`
	Summary    string `json:"summary"`
	Start      string `json:"start"`
	End        string `json:"end"`
	CalendarID string `json:"calendar_id"`
}

// Validate checks required fields and parses timestamps, returning the
// engine-internal Event. An inverted interval (end <= start) is NOT an
// error here; the overlap math degrades it explicitly. A missing or
// unparseable timestamp is surfaced as a typed error because silently
// dropping it would corrupt the severity report downstream.
func (in EventInput) Validate() (Event, error) {
	var ev Event

	if in.ID == "" {
		return ev, ErrMissingID
	}
	if in.CalendarID == "" {
		return ev, fmt.Errorf("event %q: %w", in.ID, ErrMissingCalendarID)
	}
	if in.Start == "" || in.End == "" {
		return ev, fmt.Errorf("event %q: %w", in.ID, ErrMissingTime)
	}

	start, err := time.Parse(time.RFC3339, in.Start)
	if err != nil {
		return ev, fmt.Errorf("event %q start %q: %w", in.ID, in.Start, ErrInvalidTime)
	}
	end, err := time.Parse(time.RFC3339, in.End)
	if err != nil {
		return ev, fmt.Errorf("event %q end %q: %w", in.ID, in.End, ErrInvalidTime)
	}

	return Event{
		ID:         in.ID,
		Summary:    in.Summary,
		Start:      start,
		End:        end,
		CalendarID: in.CalendarID,
	}, nil
}

// ValidateAll validates a list of inputs, failing on the first malformed
// event so the caller receives a typed error instead of a partial report.
func ValidateAll(inputs []EventInput) ([]Event, error) {
	events := make([]Event, 0, len(inputs))
	for _, in := range inputs {
		ev, err := in.Validate()
		if err != nil {
			return nil, err
		}
		events = append(events, ev)
	}
	return events, nil
}
