package conflict

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"clashcal/internal/cache"
	"clashcal/internal/calendar"
	"clashcal/internal/classify"
	"clashcal/internal/recommend"
	"clashcal/internal/registry"
	"clashcal/internal/util"
)

// DefaultCacheTTL is how long an assembled report stays valid.
const DefaultCacheTTL = 5 * time.Minute

// Detector runs the pairwise conflict detection. The cache is optional;
// every cache failure is logged and absorbed, never surfaced.
type Detector struct {
	categorizer *classify.Categorizer
	cache       cache.Cache
	ttl         time.Duration
	now         func() time.Time
}

// NewDetector creates a detector over the given registry. cache may be
// nil to disable caching.
func NewDetector(reg *registry.Registry, c cache.Cache, ttl time.Duration) *Detector {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &Detector{
		categorizer: classify.NewCategorizer(reg),
		cache:       c,
		ttl:         ttl,
		now:         time.Now,
	}
}

// Detect compares every unordered pair of events and assembles a report
// for the given window. The period labels the report; it does not filter
// the event list. O(n²) over the input, which is expected to be tens of
// events for a multi-day window.
func (d *Detector) Detect(ctx context.Context, events []calendar.Event, periodStart, periodEnd time.Time) (*Report, error) {
	key := CacheKey(periodStart, periodEnd, events)

	if cached := d.cacheGet(ctx, key); cached != nil {
		return cached, nil
	}

	detectedAt := d.now().UTC()
	report := &Report{
		Period:      Period{Start: periodStart, End: periodEnd},
		Conflicts:   []Conflict{},
		GeneratedAt: detectedAt,
	}

	for i := 0; i < len(events); i++ {
		for j := i + 1; j < len(events); j++ {
			a, b := events[i], events[j]

			// A conflict needs at least one whole minute of overlap.
			// Sub-minute overlaps, including the instants that inverted
			// intervals degrade to, floor to zero and are not reported.
			overlapMin := calendar.OverlapMinutes(a, b)
			if overlapMin == 0 {
				continue
			}

			catA := d.categorizer.Categorize(a)
			catB := d.categorizer.Categorize(b)
			severity := classify.ClassifySeverity(catA, catB)

			report.Conflicts = append(report.Conflicts, Conflict{
				ID:              conflictID(a.ID, b.ID),
				Severity:        severity,
				Events:          [2]calendar.Event{a, b},
				OverlapMinutes:  overlapMin,
				Recommendations: recommend.For(severity, catA, catB, overlapMin),
				DetectedAt:      detectedAt,
			})
			report.Summary.count(severity)
		}
	}

	// Severity descending, discovery order as stable tiebreak.
	sort.SliceStable(report.Conflicts, func(i, j int) bool {
		return report.Conflicts[i].Severity.Rank() > report.Conflicts[j].Severity.Rank()
	})

	d.cacheSet(ctx, key, report)

	return report, nil
}

// cacheGet returns a previously assembled report, or nil on miss or any
// cache error (fail-open).
func (d *Detector) cacheGet(ctx context.Context, key string) *Report {
	if d.cache == nil {
		return nil
	}

	value, hit, err := d.cache.Get(ctx, key)
	if err != nil {
		util.Warn("Report cache read failed, computing without cache", "key", key, "error", err)
		return nil
	}
	if !hit {
		return nil
	}

	var report Report
	if err := json.Unmarshal(value, &report); err != nil {
		util.Warn("Cached report is unreadable, recomputing", "key", key, "error", err)
		return nil
	}

	util.Debug("Report cache hit", "key", key)
	return &report
}

// cacheSet stores the report best-effort; failures never affect the
// returned result.
func (d *Detector) cacheSet(ctx context.Context, key string, report *Report) {
	if d.cache == nil {
		return
	}

	value, err := json.Marshal(report)
	if err != nil {
		util.Warn("Failed to serialize report for cache", "key", key, "error", err)
		return
	}

	if err := d.cache.Set(ctx, key, value, d.ttl); err != nil {
		util.Warn("Report cache write failed", "key", key, "error", err)
	}
}
