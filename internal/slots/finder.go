// Package slots implements the free-slot finder: gaps of a requested
// duration inside a daily working-hours window across a date range.
package slots

import (
	"sort"
	"time"

	"clashcal/internal/calendar"
)

// Default working hours when the caller does not supply any.
const (
	DefaultStartHour = 9
	DefaultEndHour   = 17
)

// WorkingHours is the daily time-of-day window for slot search.
type WorkingHours struct {
	StartHour int `json:"start_hour"`
	EndHour   int `json:"end_hour"`
}

// DefaultWorkingHours returns the 9-17 window.
func DefaultWorkingHours() WorkingHours {
	return WorkingHours{StartHour: DefaultStartHour, EndHour: DefaultEndHour}
}

// IsZero reports whether the window is unset. Callers that want a
// default should substitute DefaultWorkingHours themselves; Find treats
// a zero window as the empty window it is.
func (h WorkingHours) IsZero() bool {
	return h.StartHour == 0 && h.EndHour == 0
}

// FreeSlot is one contiguous gap. DurationMinutes is always at least the
// requested minimum. Slots never span a day boundary.
type FreeSlot struct {
	Start           time.Time `json:"start"`
	End             time.Time `json:"end"`
	DurationMinutes int       `json:"duration_minutes"`
}

// Find returns every gap of at least durationMinutes between events, per
// calendar day from periodStart's date through periodEnd's date
// inclusive. The hours window is taken as given, a zero window included.
// Events that extend past the working window are used as given; a gap
// boundary may therefore fall outside the nominal window. Slots are
// chronological within each day and days are concatenated in date order.
func Find(events []calendar.Event, durationMinutes int, periodStart, periodEnd time.Time, hours WorkingHours) []FreeSlot {
	if durationMinutes <= 0 {
		return nil
	}

	loc := periodStart.Location()
	firstDay := startOfDay(periodStart, loc)
	lastDay := startOfDay(periodEnd, loc)

	slots := []FreeSlot{}
	for day := firstDay; !day.After(lastDay); day = day.AddDate(0, 0, 1) {
		windowStart := day.Add(time.Duration(hours.StartHour) * time.Hour)
		windowEnd := day.Add(time.Duration(hours.EndHour) * time.Hour)

		dayEvents := eventsStartingOn(events, day, loc)
		sort.SliceStable(dayEvents, func(i, j int) bool {
			return dayEvents[i].Start.Before(dayEvents[j].Start)
		})

		// Walk the day: the gap before the first event, between
		// consecutive events, and after the last one. The cursor only
		// ever moves forward; an inverted event degrades to an instant
		// and an event contained in an earlier one cannot reopen a gap.
		cursor := windowStart
		for _, ev := range dayEvents {
			appendSlot(&slots, cursor, ev.Start, durationMinutes)
			if end := calendar.EffectiveEnd(ev); end.After(cursor) {
				cursor = end
			}
		}
		appendSlot(&slots, cursor, windowEnd, durationMinutes)
	}

	return slots
}

func appendSlot(slots *[]FreeSlot, start, end time.Time, minMinutes int) {
	if !end.After(start) {
		return
	}
	minutes := int(end.Sub(start) / time.Minute)
	if minutes < minMinutes {
		return
	}
	*slots = append(*slots, FreeSlot{
		Start:           start,
		End:             end,
		DurationMinutes: minutes,
	})
}

func startOfDay(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
}

func eventsStartingOn(events []calendar.Event, day time.Time, loc *time.Location) []calendar.Event {
	var out []calendar.Event
	for _, ev := range events {
		start := ev.Start.In(loc)
		if start.Year() == day.Year() && start.Month() == day.Month() && start.Day() == day.Day() {
			out = append(out, ev)
		}
	}
	return out
}
