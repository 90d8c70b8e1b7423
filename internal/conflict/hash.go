package conflict

import (
	"encoding/hex"
	"sort"
	"strings"
	"time"

	"golang.org/x/crypto/blake2b"

	"clashcal/internal/calendar"
)

// conflictID derives a stable identifier for a pair of events. The ids
// are sorted before hashing so argument order does not matter.
func conflictID(idA, idB string) string {
	if idB < idA {
		idA, idB = idB, idA
	}
	sum := blake2b.Sum256([]byte(idA + "\x00" + idB))
	return "cfl_" + hex.EncodeToString(sum[:8])
}

// CacheKey computes the cache key for a detection call. The key is
// identical for the same period and event-id set regardless of input
// ordering.
func CacheKey(periodStart, periodEnd time.Time, events []calendar.Event) string {
	ids := make([]string, len(events))
	for i, ev := range events {
		ids[i] = ev.ID
	}
	sort.Strings(ids)

	var b strings.Builder
	b.WriteString(periodStart.UTC().Format(time.RFC3339))
	b.WriteByte('\x00')
	b.WriteString(periodEnd.UTC().Format(time.RFC3339))
	for _, id := range ids {
		b.WriteByte('\x00')
		b.WriteString(id)
	}

	sum := blake2b.Sum256([]byte(b.String()))
	return "report_" + hex.EncodeToString(sum[:16])
}
