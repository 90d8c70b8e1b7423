package classify

import "clashcal/internal/calendar"

// Severity grades a conflict. The set is closed and totally ordered:
// critical > high > medium > low.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
	SeverityLow      Severity = "low"
)

// Rank returns the position of s in the total order; higher is more
// severe. Unknown values rank below low.
func (s Severity) Rank() int {
	switch s {
	case SeverityCritical:
		return 4
	case SeverityHigh:
		return 3
	case SeverityMedium:
		return 2
	case SeverityLow:
		return 1
	default:
		return 0
	}
}

// ClassifySeverity maps the categories of two overlapping events to a
// severity via a fixed precedence table, checked top to bottom. The
// function is symmetric and total over all category pairings.
func ClassifySeverity(a, b calendar.Category) Severity {
	work, school, family, health := calendar.CategoryWork, calendar.CategorySchool, calendar.CategoryFamily, calendar.CategoryHealth

	switch {
	case a == health || b == health:
		return SeverityCritical
	case (a == work && b == family) || (a == family && b == work):
		return SeverityHigh
	case a == work && b == work:
		return SeverityHigh
	case (a == school && b == work) || (a == work && b == school):
		return SeverityHigh
	case a == work || b == work || a == school || b == school:
		return SeverityMedium
	default:
		return SeverityLow
	}
}
