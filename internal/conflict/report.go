// Package conflict implements the conflict detection orchestrator: it
// pairs up overlapping events, classifies each pair's severity, attaches
// recommendations, and assembles the sorted report, consulting an
// optional read-through cache.
package conflict

import (
	"time"

	"clashcal/internal/calendar"
	"clashcal/internal/classify"
)

// Conflict is one detected overlapping pair. Its ID is derived from the
// two event ids, so repeated detection over the same pair is stable.
// OverlapMinutes is always at least 1.
type Conflict struct {
	ID              string            `json:"id"`
	Severity        classify.Severity `json:"severity"`
	Events          [2]calendar.Event `json:"events"`
	OverlapMinutes  int               `json:"overlap_minutes"`
	Recommendations []string          `json:"recommendations"`
	DetectedAt      time.Time         `json:"detected_at"`
}

// Period labels the requested detection window. It does not filter the
// event list; that is the provider's responsibility.
type Period struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Summary counts conflicts per severity level.
type Summary struct {
	Total    int `json:"total"`
	Critical int `json:"critical"`
	High     int `json:"high"`
	Medium   int `json:"medium"`
	Low      int `json:"low"`
}

// Report is the detector's output. Conflicts are sorted by severity
// descending (critical first), not by time.
type Report struct {
	Period      Period     `json:"period"`
	Summary     Summary    `json:"summary"`
	Conflicts   []Conflict `json:"conflicts"`
	GeneratedAt time.Time  `json:"generated_at"`
}

func (s *Summary) count(severity classify.Severity) {
	s.Total++
	switch severity {
	case classify.SeverityCritical:
		s.Critical++
	case classify.SeverityHigh:
		s.High++
	case classify.SeverityMedium:
		s.Medium++
	case classify.SeverityLow:
		s.Low++
	}
}
