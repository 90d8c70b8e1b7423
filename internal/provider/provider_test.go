package provider

import (
	"context"
	"errors"
	"testing"
	"time"

	"clashcal/internal/calendar"
)

type stubClient struct {
	byCalendar map[string][]calendar.Event
	err        error
}

func (s *stubClient) ListEvents(_ context.Context, calendarID string, _, _ time.Time) ([]calendar.Event, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.byCalendar[calendarID], nil
}

func TestMultiListAllMerges(t *testing.T) {
	m := NewMulti()
	m.Register("a", &stubClient{byCalendar: map[string][]calendar.Event{
		"work": {{ID: "e1", CalendarID: "work"}},
	}})
	m.Register("b", &stubClient{byCalendar: map[string][]calendar.Event{
		"family": {{ID: "e2", CalendarID: "family"}},
	}})

	if !m.HasSources() {
		t.Fatal("expected sources")
	}

	events, err := m.ListAll(context.Background(), []string{"work", "family"}, time.Time{}, time.Time{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 merged events, got %d", len(events))
	}
}

func TestMultiListAllFailsWhole(t *testing.T) {
	m := NewMulti()
	m.Register("ok", &stubClient{byCalendar: map[string][]calendar.Event{
		"work": {{ID: "e1", CalendarID: "work"}},
	}})
	m.Register("down", &stubClient{err: errors.New("unreachable")})

	if _, err := m.ListAll(context.Background(), []string{"work"}, time.Time{}, time.Time{}); err == nil {
		t.Fatal("a failing source must fail the whole call")
	}
}

func TestMultiEmpty(t *testing.T) {
	m := NewMulti()
	if m.HasSources() {
		t.Fatal("empty multi must report no sources")
	}
	events, err := m.ListAll(context.Background(), []string{"work"}, time.Time{}, time.Time{})
	if err != nil || len(events) != 0 {
		t.Fatalf("empty multi: events=%v err=%v", events, err)
	}
}
