package cache

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"clashcal/internal/database"
)

func openTestDB(t *testing.T) *database.DB {
	t.Helper()
	db, err := database.Open(filepath.Join(t.TempDir(), "cache.db"))
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestSQLiteGetSet(t *testing.T) {
	ctx := context.Background()
	c := NewSQLite(openTestDB(t))

	if _, hit, err := c.Get(ctx, "missing"); err != nil || hit {
		t.Fatalf("empty cache: hit=%v err=%v", hit, err)
	}

	if err := c.Set(ctx, "k", []byte("v1"), time.Minute); err != nil {
		t.Fatal(err)
	}

	value, hit, err := c.Get(ctx, "k")
	if err != nil || !hit {
		t.Fatalf("expected hit: hit=%v err=%v", hit, err)
	}
	if string(value) != "v1" {
		t.Fatalf("value mismatch: %q", value)
	}

	// Upsert replaces the value and the deadline.
	if err := c.Set(ctx, "k", []byte("v2"), time.Minute); err != nil {
		t.Fatal(err)
	}
	value, _, _ = c.Get(ctx, "k")
	if string(value) != "v2" {
		t.Fatalf("expected replacement, got %q", value)
	}
}

func TestSQLiteExpiryAndPurge(t *testing.T) {
	ctx := context.Background()
	c := NewSQLite(openTestDB(t))

	clock := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return clock }

	c.Set(ctx, "old", []byte("v"), time.Minute)
	c.Set(ctx, "fresh", []byte("v"), time.Hour)

	clock = clock.Add(10 * time.Minute)

	if _, hit, _ := c.Get(ctx, "old"); hit {
		t.Fatal("expired entry must miss")
	}
	if _, hit, _ := c.Get(ctx, "fresh"); !hit {
		t.Fatal("fresh entry must hit")
	}

	purged, err := c.PurgeExpired(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if purged != 1 {
		t.Fatalf("expected 1 purged, got %d", purged)
	}
}
