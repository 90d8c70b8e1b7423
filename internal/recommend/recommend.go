// Package recommend produces remediation suggestions for detected
// conflicts, keyed off severity and the categories of the two sides.
package recommend

import (
	"clashcal/internal/calendar"
	"clashcal/internal/classify"
)

// shortOverlapMinutes is the threshold below which an overlap is
// considered resolvable by nudging start or end times.
const shortOverlapMinutes = 30

// For returns an ordered list of suggestions for a conflict between two
// events of the given categories. Always returns at least one entry.
func For(severity classify.Severity, a, b calendar.Category, overlapMinutes int) []string {
	var recs []string

	switch severity {
	case classify.SeverityCritical:
		recs = append(recs,
			"URGENT: A health-related event is affected; reschedule the non-critical event immediately.",
		)
	case classify.SeverityHigh:
		if a == calendar.CategoryWork && b == calendar.CategoryWork {
			recs = append(recs,
				"Prioritize by importance, or combine the meetings if the topics allow it.",
			)
		} else if isWorkFamilyPair(a, b) {
			recs = append(recs,
				"Consider delegating the work commitment or joining remotely.",
				"Check whether the family event allows a flexible arrival.",
			)
		} else {
			recs = append(recs,
				"Resolve the higher-priority commitment first and reschedule the other.",
			)
		}
	case classify.SeverityMedium:
		recs = append(recs,
			"Review whether the personal or flexible event can move, or shorten it.",
		)
	default:
		recs = append(recs,
			"Evaluate whether both events are truly necessary, or combine them.",
		)
	}

	if overlapMinutes < shortOverlapMinutes {
		recs = append(recs,
			"The overlap is short; adjusted start or end times might resolve it without cancellation.",
		)
	}

	return recs
}

func isWorkFamilyPair(a, b calendar.Category) bool {
	return (a == calendar.CategoryWork && b == calendar.CategoryFamily) ||
		(a == calendar.CategoryFamily && b == calendar.CategoryWork)
}
