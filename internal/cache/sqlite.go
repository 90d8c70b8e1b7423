package cache

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"clashcal/internal/database"
)

// SQLite is a Cache backed by the report_cache table, so cached reports
// survive process restarts and are shared between workers on one host.
type SQLite struct {
	db  *database.DB
	now func() time.Time
}

// NewSQLite creates a SQLite-backed cache over an open database.
func NewSQLite(db *database.DB) *SQLite {
	return &SQLite{db: db, now: time.Now}
}

// Get implements Cache.
func (s *SQLite) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var value []byte
	var expiresAt int64

	err := s.db.QueryRowContext(ctx,
		"SELECT value, expires_at FROM report_cache WHERE key = ?", key,
	).Scan(&value, &expiresAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	if s.now().Unix() >= expiresAt {
		return nil, false, nil
	}
	return value, true, nil
}

// Set implements Cache.
func (s *SQLite) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	expiresAt := s.now().Add(ttl).Unix()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO report_cache (key, value, expires_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, expires_at = excluded.expires_at`,
		key, value, expiresAt,
	)
	return err
}

// PurgeExpired deletes expired rows and returns how many were removed.
func (s *SQLite) PurgeExpired(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		"DELETE FROM report_cache WHERE expires_at <= ?", s.now().Unix(),
	)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
