// Package classify assigns categories to events and severities to
// overlapping pairs. Both classifications are deterministic and total.
package classify

import (
	"strings"

	"clashcal/internal/calendar"
	"clashcal/internal/registry"
)

// Title keyword sets, checked in fixed order: work, family, school,
// health, travel. First hit wins.
var (
	workKeywords = []string{
		"meeting", "call", "interview", "standup", "client",
		"project", "review", "sprint", "presentation",
	}
	familyKeywords = []string{
		"family", "birthday", "anniversary", "dinner", "vacation",
		"holiday", "kids",
	}
	schoolKeywords = []string{
		"school", "class", "exam", "homework", "teacher", "field trip",
	}
	healthKeywords = []string{
		"doctor", "dentist", "appointment", "checkup", "therapy",
		"medical", "hospital",
	}
	travelKeywords = []string{"travel", "flight"}
)

// Categorizer classifies events using calendar-id patterns first,
// registry lookup second, and title keywords last. Calendar-source
// metadata is a stronger signal than free-text titles, so it wins.
type Categorizer struct {
	registry *registry.Registry
}

// NewCategorizer creates a categorizer backed by the given registry.
func NewCategorizer(reg *registry.Registry) *Categorizer {
	if reg == nil {
		reg = registry.Default()
	}
	return &Categorizer{registry: reg}
}

// Categorize returns the category for an event. Always succeeds;
// CategoryPersonal is the fallback.
func (c *Categorizer) Categorize(ev calendar.Event) calendar.Category {
	if cat, ok := c.matchCalendarID(ev.CalendarID); ok {
		return cat
	}

	if cfg, ok := c.registry.Lookup(ev.CalendarID); ok {
		return cfg.Category
	}

	if cat, ok := c.matchSummary(ev.Summary); ok {
		return cat
	}

	return calendar.CategoryPersonal
}

// matchCalendarID applies the ordered substring rules to a lower-cased
// calendar id.
func (c *Categorizer) matchCalendarID(id string) (calendar.Category, bool) {
	lower := strings.ToLower(id)

	switch {
	case strings.Contains(lower, "appointment") || strings.Contains(lower, "health"):
		return calendar.CategoryHealth, true
	case strings.Contains(lower, "family"):
		return calendar.CategoryFamily, true
	case strings.Contains(lower, "school"):
		return calendar.CategorySchool, true
	case strings.Contains(lower, "work") || containsAny(lower, c.registry.WorkDomains()):
		return calendar.CategoryWork, true
	case strings.Contains(lower, "personal"):
		return calendar.CategoryPersonal, true
	}

	return "", false
}

// matchSummary scans the lower-cased title against the keyword sets in
// fixed order.
func (c *Categorizer) matchSummary(summary string) (calendar.Category, bool) {
	lower := strings.ToLower(summary)

	switch {
	case containsAny(lower, workKeywords):
		return calendar.CategoryWork, true
	case containsAny(lower, familyKeywords) || containsAny(lower, lowered(c.registry.FamilyMembers())):
		return calendar.CategoryFamily, true
	case containsAny(lower, schoolKeywords):
		return calendar.CategorySchool, true
	case containsAny(lower, healthKeywords):
		return calendar.CategoryHealth, true
	case containsAny(lower, travelKeywords):
		return calendar.CategoryTravel, true
	}

	return "", false
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if kw != "" && strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

func lowered(words []string) []string {
	if len(words) == 0 {
		return nil
	}
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = strings.ToLower(w)
	}
	return out
}
