package recommend

import (
	"strings"
	"testing"

	"clashcal/internal/calendar"
	"clashcal/internal/classify"
)

func TestForAlwaysReturnsAtLeastOne(t *testing.T) {
	for _, a := range calendar.Categories {
		for _, b := range calendar.Categories {
			sev := classify.ClassifySeverity(a, b)
			if got := For(sev, a, b, 60); len(got) == 0 {
				t.Errorf("no recommendation for (%s, %s)", a, b)
			}
		}
	}
}

func TestForCriticalMentionsUrgency(t *testing.T) {
	recs := For(classify.SeverityCritical, calendar.CategoryHealth, calendar.CategoryWork, 60)
	if !strings.Contains(recs[0], "URGENT") {
		t.Fatalf("critical recommendation must lead with urgency: %q", recs[0])
	}
}

func TestForWorkWorkSuggestsCombining(t *testing.T) {
	recs := For(classify.SeverityHigh, calendar.CategoryWork, calendar.CategoryWork, 60)
	if !strings.Contains(recs[0], "combine") {
		t.Fatalf("work/work should suggest combining: %q", recs[0])
	}
}

func TestForWorkFamilySuggestsDelegation(t *testing.T) {
	recs := For(classify.SeverityHigh, calendar.CategoryFamily, calendar.CategoryWork, 60)
	if len(recs) < 2 {
		t.Fatalf("work/family should carry two suggestions, got %d", len(recs))
	}
	if !strings.Contains(recs[0], "delegating") {
		t.Fatalf("expected delegation suggestion: %q", recs[0])
	}
}

func TestForShortOverlapAppendsNudge(t *testing.T) {
	long := For(classify.SeverityMedium, calendar.CategoryWork, calendar.CategoryPersonal, 45)
	short := For(classify.SeverityMedium, calendar.CategoryWork, calendar.CategoryPersonal, 15)

	if len(short) != len(long)+1 {
		t.Fatalf("short overlap should add one suggestion: long=%d short=%d", len(long), len(short))
	}
	last := short[len(short)-1]
	if !strings.Contains(last, "short") {
		t.Fatalf("expected the short-overlap note last: %q", last)
	}
}

func TestForBoundaryAtThirtyMinutes(t *testing.T) {
	at30 := For(classify.SeverityLow, calendar.CategoryPersonal, calendar.CategoryPersonal, 30)
	at29 := For(classify.SeverityLow, calendar.CategoryPersonal, calendar.CategoryPersonal, 29)

	if len(at30) != 1 {
		t.Fatalf("a 30-minute overlap is not short: %v", at30)
	}
	if len(at29) != 2 {
		t.Fatalf("a 29-minute overlap is short: %v", at29)
	}
}
