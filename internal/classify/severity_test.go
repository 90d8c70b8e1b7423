package classify

import (
	"testing"

	"clashcal/internal/calendar"
)

func TestClassifySeverityTable(t *testing.T) {
	tests := []struct {
		a, b calendar.Category
		want Severity
	}{
		{calendar.CategoryHealth, calendar.CategoryWork, SeverityCritical},
		{calendar.CategoryHealth, calendar.CategoryHealth, SeverityCritical},
		{calendar.CategoryHealth, calendar.CategoryPersonal, SeverityCritical},
		{calendar.CategoryHealth, calendar.CategoryTravel, SeverityCritical},
		{calendar.CategoryWork, calendar.CategoryFamily, SeverityHigh},
		{calendar.CategoryWork, calendar.CategoryWork, SeverityHigh},
		{calendar.CategorySchool, calendar.CategoryWork, SeverityHigh},
		{calendar.CategoryWork, calendar.CategoryPersonal, SeverityMedium},
		{calendar.CategoryWork, calendar.CategoryTravel, SeverityMedium},
		{calendar.CategorySchool, calendar.CategoryFamily, SeverityMedium},
		{calendar.CategorySchool, calendar.CategorySchool, SeverityMedium},
		{calendar.CategoryPersonal, calendar.CategoryPersonal, SeverityLow},
		{calendar.CategoryFamily, calendar.CategoryTravel, SeverityLow},
		{calendar.CategoryFamily, calendar.CategoryFamily, SeverityLow},
	}

	for _, tt := range tests {
		if got := ClassifySeverity(tt.a, tt.b); got != tt.want {
			t.Errorf("ClassifySeverity(%s, %s) = %s, want %s", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestClassifySeverityIsSymmetric(t *testing.T) {
	for _, a := range calendar.Categories {
		for _, b := range calendar.Categories {
			ab := ClassifySeverity(a, b)
			ba := ClassifySeverity(b, a)
			if ab != ba {
				t.Errorf("asymmetric: (%s, %s) = %s but (%s, %s) = %s", a, b, ab, b, a, ba)
			}
		}
	}
}

func TestClassifySeverityIsTotal(t *testing.T) {
	for _, a := range calendar.Categories {
		for _, b := range calendar.Categories {
			if got := ClassifySeverity(a, b); got.Rank() == 0 {
				t.Errorf("(%s, %s) produced unranked severity %q", a, b, got)
			}
		}
	}
}

func TestSeverityRankOrder(t *testing.T) {
	if !(SeverityCritical.Rank() > SeverityHigh.Rank() &&
		SeverityHigh.Rank() > SeverityMedium.Rank() &&
		SeverityMedium.Rank() > SeverityLow.Rank() &&
		SeverityLow.Rank() > Severity("bogus").Rank()) {
		t.Fatal("severity ranks out of order")
	}
}
