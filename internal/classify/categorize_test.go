package classify

import (
	"testing"

	"clashcal/internal/calendar"
	"clashcal/internal/registry"
)

func eventWith(calendarID, summary string) calendar.Event {
	return calendar.Event{
		ID:         "evt",
		Summary:    summary,
		CalendarID: calendarID,
	}
}

func TestCategorizeCalendarIDPatterns(t *testing.T) {
	c := NewCategorizer(nil)

	tests := []struct {
		calendarID string
		want       calendar.Category
	}{
		{"appointments", calendar.CategoryHealth},
		{"health-tracker", calendar.CategoryHealth},
		{"family-shared", calendar.CategoryFamily},
		{"school-events", calendar.CategorySchool},
		{"work", calendar.CategoryWork},
		{"personal-stuff", calendar.CategoryPersonal},
	}

	for _, tt := range tests {
		if got := c.Categorize(eventWith(tt.calendarID, "untitled")); got != tt.want {
			t.Errorf("calendar %q: got %s, want %s", tt.calendarID, got, tt.want)
		}
	}
}

func TestCategorizeCalendarIDBeatsSummary(t *testing.T) {
	c := NewCategorizer(nil)

	// "meeting" is a work keyword, but the calendar id wins.
	ev := eventWith("family-shared", "Meeting with the principal")
	if got := c.Categorize(ev); got != calendar.CategoryFamily {
		t.Fatalf("calendar id must outrank summary keywords, got %s", got)
	}
}

func TestCategorizeWorkDomainInCalendarID(t *testing.T) {
	reg := registry.New(nil, nil, []string{"company.com"})
	c := NewCategorizer(reg)

	ev := eventWith("jane@company.com", "Lunch")
	if got := c.Categorize(ev); got != calendar.CategoryWork {
		t.Fatalf("work-domain calendar id must map to work, got %s", got)
	}
}

func TestCategorizeRegistryLookup(t *testing.T) {
	reg := registry.New([]registry.CalendarConfig{
		{ID: "cal-xyz", Owner: "jane", Category: calendar.CategoryTravel, Priority: 1},
	}, nil, nil)
	c := NewCategorizer(reg)

	ev := eventWith("cal-xyz", "untitled")
	if got := c.Categorize(ev); got != calendar.CategoryTravel {
		t.Fatalf("registry entry must classify the calendar, got %s", got)
	}
}

func TestCategorizeSummaryKeywords(t *testing.T) {
	c := NewCategorizer(nil)

	tests := []struct {
		summary string
		want    calendar.Category
	}{
		{"Sprint planning", calendar.CategoryWork},
		{"Client call", calendar.CategoryWork},
		{"Birthday party", calendar.CategoryFamily},
		{"Parent-teacher conference", calendar.CategorySchool},
		{"Field trip permission", calendar.CategorySchool},
		{"Dentist cleaning", calendar.CategoryHealth},
		{"Flight to Denver", calendar.CategoryTravel},
	}

	for _, tt := range tests {
		if got := c.Categorize(eventWith("misc", tt.summary)); got != tt.want {
			t.Errorf("summary %q: got %s, want %s", tt.summary, got, tt.want)
		}
	}
}

func TestCategorizeKeywordOrderWorkFirst(t *testing.T) {
	c := NewCategorizer(nil)

	// Contains both a work keyword ("meeting") and a family keyword
	// ("dinner"); work is checked first.
	ev := eventWith("misc", "Dinner meeting")
	if got := c.Categorize(ev); got != calendar.CategoryWork {
		t.Fatalf("work keywords must be checked before family, got %s", got)
	}
}

func TestCategorizeFamilyMemberName(t *testing.T) {
	reg := registry.New(nil, []string{"Maya"}, nil)
	c := NewCategorizer(reg)

	ev := eventWith("misc", "Pick up Maya")
	if got := c.Categorize(ev); got != calendar.CategoryFamily {
		t.Fatalf("family member name must map to family, got %s", got)
	}
}

func TestCategorizeDefaultsToPersonal(t *testing.T) {
	c := NewCategorizer(nil)

	ev := eventWith("misc", "Grocery run")
	if got := c.Categorize(ev); got != calendar.CategoryPersonal {
		t.Fatalf("expected personal fallback, got %s", got)
	}
}
