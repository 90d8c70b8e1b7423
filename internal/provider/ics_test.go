package provider

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

const feedBasic = `BEGIN:VCALENDAR
VERSION:2.0
PRODID:-//test//EN
BEGIN:VEVENT
UID:uid-1
SUMMARY:Dentist
DTSTART:20260302T100000Z
DTEND:20260302T110000Z
END:VEVENT
BEGIN:VEVENT
UID:uid-2
SUMMARY:Old event
DTSTART:20250101T100000Z
DTEND:20250101T110000Z
END:VEVENT
END:VCALENDAR
`

const feedRecurring = `BEGIN:VCALENDAR
VERSION:2.0
PRODID:-//test//EN
BEGIN:VEVENT
UID:uid-weekly
SUMMARY:Standup
DTSTART:20260302T091500Z
DTEND:20260302T093000Z
RRULE:FREQ=DAILY;COUNT=3
END:VEVENT
END:VCALENDAR
`

func serveFeed(t *testing.T, body string) *ICS {
	t.Helper()
	// ICS requires CRLF line endings.
	body = strings.ReplaceAll(body, "\n", "\r\n")
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/calendar")
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return NewICS(map[string]string{"family": srv.URL})
}

func TestICSListEventsFiltersWindow(t *testing.T) {
	c := serveFeed(t, feedBasic)

	timeMin := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	timeMax := time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC)

	events, err := c.ListEvents(context.Background(), "family", timeMin, timeMax)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(events) != 1 {
		t.Fatalf("expected 1 event in window, got %d: %v", len(events), events)
	}

	ev := events[0]
	if ev.ID != "uid-1" || ev.Summary != "Dentist" || ev.CalendarID != "family" {
		t.Fatalf("event mismatch: %+v", ev)
	}
	if !ev.Start.Equal(time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)) {
		t.Fatalf("start mismatch: %v", ev.Start)
	}
	if ev.End.Sub(ev.Start) != time.Hour {
		t.Fatalf("duration mismatch: %v", ev.End.Sub(ev.Start))
	}
}

func TestICSExpandsRecurrences(t *testing.T) {
	c := serveFeed(t, feedRecurring)

	timeMin := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	timeMax := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)

	events, err := c.ListEvents(context.Background(), "family", timeMin, timeMax)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(events) != 3 {
		t.Fatalf("expected 3 occurrences, got %d: %v", len(events), events)
	}

	seen := map[string]bool{}
	for i, ev := range events {
		if seen[ev.ID] {
			t.Fatalf("duplicate occurrence id %q", ev.ID)
		}
		seen[ev.ID] = true

		want := time.Date(2026, 3, 2+i, 9, 15, 0, 0, time.UTC)
		if !ev.Start.Equal(want) {
			t.Fatalf("occurrence %d start: got %v, want %v", i, ev.Start, want)
		}
		if ev.End.Sub(ev.Start) != 15*time.Minute {
			t.Fatalf("occurrence %d duration: %v", i, ev.End.Sub(ev.Start))
		}
	}
}

func TestICSUnknownCalendarYieldsNothing(t *testing.T) {
	c := serveFeed(t, feedBasic)

	events, err := c.ListEvents(context.Background(), "nope",
		time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(events) != 0 {
		t.Fatalf("expected no events, got %v", events)
	}
}

func TestICSFetchFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewICS(map[string]string{"family": srv.URL})
	_, err := c.ListEvents(context.Background(), "family",
		time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC))
	if err == nil {
		t.Fatal("expected error on upstream failure")
	}
}
