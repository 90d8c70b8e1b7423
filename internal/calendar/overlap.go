package calendar

import "time"

// EffectiveEnd returns the end time used for interval math. An event
// whose end is not after its start (an upstream data defect) degrades to
// a zero-duration instant at its start; it can still overlap an event
// that spans that instant. Start and end are never reordered.
func EffectiveEnd(e Event) time.Time {
	if !e.End.After(e.Start) {
		return e.Start
	}
	return e.End
}

// Overlaps reports whether two events overlap in time. Intervals are
// half-open: events that merely touch at a boundary do not overlap.
func Overlaps(a, b Event) bool {
	return a.Start.Before(EffectiveEnd(b)) && b.Start.Before(EffectiveEnd(a))
}

// OverlapMinutes returns the overlap duration in whole minutes, floored.
// Returns 0 when the events do not overlap or overlap for less than a
// whole minute.
func OverlapMinutes(a, b Event) int {
	start := a.Start
	if b.Start.After(start) {
		start = b.Start
	}
	end := EffectiveEnd(a)
	if be := EffectiveEnd(b); be.Before(end) {
		end = be
	}
	if !end.After(start) {
		return 0
	}
	return int(end.Sub(start) / time.Minute)
}
