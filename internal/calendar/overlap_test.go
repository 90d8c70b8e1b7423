package calendar

import (
	"testing"
	"time"
)

func mkEvent(id string, start, end time.Time) Event {
	return Event{ID: id, Summary: id, Start: start, End: end, CalendarID: "primary"}
}

func at(hour, min int) time.Time {
	return time.Date(2026, 3, 2, hour, min, 0, 0, time.UTC)
}

func TestOverlapsPartial(t *testing.T) {
	a := mkEvent("a", at(10, 0), at(11, 0))
	b := mkEvent("b", at(10, 30), at(11, 30))

	if !Overlaps(a, b) {
		t.Fatal("expected overlap")
	}
	if !Overlaps(b, a) {
		t.Fatal("overlap must be symmetric")
	}
	if got := OverlapMinutes(a, b); got != 30 {
		t.Fatalf("expected 30 overlap minutes, got %d", got)
	}
	if got := OverlapMinutes(b, a); got != 30 {
		t.Fatalf("overlap minutes must be symmetric, got %d", got)
	}
}

func TestOverlapsContainment(t *testing.T) {
	outer := mkEvent("outer", at(9, 0), at(17, 0))
	inner := mkEvent("inner", at(12, 0), at(13, 0))

	if !Overlaps(outer, inner) {
		t.Fatal("containment is overlap")
	}
	if got := OverlapMinutes(outer, inner); got != 60 {
		t.Fatalf("expected 60 overlap minutes, got %d", got)
	}
}

func TestAdjacentEventsDoNotOverlap(t *testing.T) {
	a := mkEvent("a", at(10, 0), at(11, 0))
	b := mkEvent("b", at(11, 0), at(12, 0))

	if Overlaps(a, b) {
		t.Fatal("events touching at a boundary must not overlap")
	}
	if got := OverlapMinutes(a, b); got != 0 {
		t.Fatalf("expected 0 overlap minutes, got %d", got)
	}
}

func TestOverlapMinutesFloorsSubMinute(t *testing.T) {
	a := mkEvent("a", at(10, 0), at(10, 1).Add(-10*time.Second)) // 50s long
	b := mkEvent("b", at(10, 0), at(11, 0))

	if !Overlaps(a, b) {
		t.Fatal("expected overlap")
	}
	if got := OverlapMinutes(a, b); got != 0 {
		t.Fatalf("sub-minute overlap must floor to 0, got %d", got)
	}
}

func TestInvertedIntervalDegradesToInstant(t *testing.T) {
	// End before start: the event becomes an instant at its start.
	inv := mkEvent("inv", at(12, 0), at(11, 0))
	spanning := mkEvent("span", at(11, 30), at(12, 30))
	after := mkEvent("after", at(12, 0), at(13, 0))

	if !Overlaps(inv, spanning) {
		t.Fatal("instant inside a spanning event must overlap")
	}
	if got := OverlapMinutes(inv, spanning); got != 0 {
		t.Fatalf("instant overlap must be 0 minutes, got %d", got)
	}
	if Overlaps(inv, after) {
		t.Fatal("instant at another event's start must not overlap (half-open)")
	}
}

func TestZeroDurationEvent(t *testing.T) {
	instant := mkEvent("instant", at(12, 0), at(12, 0))
	spanning := mkEvent("span", at(11, 0), at(13, 0))

	if !Overlaps(instant, spanning) {
		t.Fatal("zero-duration event inside a spanning event must overlap")
	}
	if Overlaps(instant, instant) {
		t.Fatal("a zero-duration event cannot overlap itself")
	}
}
