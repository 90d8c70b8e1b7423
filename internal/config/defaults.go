// Package config provides default values for configuration.
package config

import "time"

// Server defaults
const (
	DefaultHost         = "0.0.0.0"
	DefaultPort         = 8080
	DefaultBaseURL      = "http://localhost:8080"
	DefaultReadTimeout  = 30 * time.Second
	DefaultWriteTimeout = 30 * time.Second
)

// Database defaults
const (
	DefaultDataDir = "/data"
)

// Cache defaults
const (
	DefaultCacheBackend = "sqlite"
	DefaultCacheTTL     = 5 * time.Minute
)

// Free-slot defaults
const (
	DefaultSlotStartHour = 9
	DefaultSlotEndHour   = 17
)

// Logging defaults
const (
	DefaultLogLevel = "info"
)

// Retention defaults
const (
	DefaultPurgeSchedule = "*/10 * * * *"
)
