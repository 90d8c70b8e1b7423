// Package cache provides the optional read-through cache consulted by
// the conflict detector. Implementations must be safe for concurrent
// use; the detector treats every error as a miss (fail-open).
package cache

import (
	"context"
	"time"
)

// Cache is a TTL key-value store for serialized conflict reports.
type Cache interface {
	// Get returns the value for key, a hit flag, and any backend error.
	// Expired entries report a miss.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores value under key for the given TTL, replacing any
	// existing entry.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// Purger is implemented by backends that can drop expired entries in
// bulk. The cleanup worker calls this on a schedule.
type Purger interface {
	PurgeExpired(ctx context.Context) (int64, error)
}
