// Package config handles configuration loading from environment variables and optional YAML files.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Cache     CacheConfig
	Registry  RegistryConfig
	Slots     SlotsConfig
	Providers ProvidersConfig
	Logging   LoggingConfig
	Retention RetentionConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host         string
	Port         int
	BaseURL      string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// DatabaseConfig holds SQLite settings.
type DatabaseConfig struct {
	Path string
}

// Cache backend names accepted by CacheConfig.Backend.
const (
	CacheBackendSQLite = "sqlite"
	CacheBackendMemory = "memory"
	CacheBackendNone   = "none"
)

// CacheConfig holds report cache settings.
type CacheConfig struct {
	// Backend is "sqlite", "memory", or "none".
	Backend string
	TTL     time.Duration
}

// RegistryConfig points at the calendar registry file.
type RegistryConfig struct {
	Path string
}

// SlotsConfig holds default working hours for free-slot search.
type SlotsConfig struct {
	StartHour int
	EndHour   int
}

// GoogleProviderConfig holds Google Calendar source settings.
type GoogleProviderConfig struct {
	Enabled         bool
	CredentialsFile string
	ClientID        string
	ClientSecret    string
	Scopes          []string
}

// ICSProviderConfig holds ICS feed source settings. Sources maps a
// calendar id to its ICS URL.
type ICSProviderConfig struct {
	Enabled bool
	Sources map[string]string
}

// ProvidersConfig holds all calendar source settings.
type ProvidersConfig struct {
	Google GoogleProviderConfig
	ICS    ICSProviderConfig
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string
	Format string
}

// RetentionConfig holds cache purge settings.
type RetentionConfig struct {
	Enabled       bool
	PurgeSchedule string // cron expression
}

// Load reads configuration from environment variables with defaults,
// then overlays the optional YAML config file, then re-applies env vars
// so the environment always wins.
func Load() (*Config, error) {
	cfg := defaults()

	if err := loadConfigFile(cfg, GetConfigFilePath()); err != nil {
		return nil, err
	}

	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			Host:         DefaultHost,
			Port:         DefaultPort,
			BaseURL:      DefaultBaseURL,
			ReadTimeout:  DefaultReadTimeout,
			WriteTimeout: DefaultWriteTimeout,
		},
		Database: DatabaseConfig{
			Path: DefaultDataDir + "/clashcal.db",
		},
		Cache: CacheConfig{
			Backend: DefaultCacheBackend,
			TTL:     DefaultCacheTTL,
		},
		Slots: SlotsConfig{
			StartHour: DefaultSlotStartHour,
			EndHour:   DefaultSlotEndHour,
		},
		Providers: ProvidersConfig{
			Google: GoogleProviderConfig{
				Scopes: []string{"https://www.googleapis.com/auth/calendar.readonly"},
			},
			ICS: ICSProviderConfig{
				Sources: map[string]string{},
			},
		},
		Logging: LoggingConfig{
			Level:  DefaultLogLevel,
			Format: "json",
		},
		Retention: RetentionConfig{
			Enabled:       true,
			PurgeSchedule: DefaultPurgeSchedule,
		},
	}
}

func applyEnv(cfg *Config) {
	cfg.Server.Host = getEnv("HOST", cfg.Server.Host)
	cfg.Server.Port = getEnvInt("PORT", cfg.Server.Port)
	cfg.Server.BaseURL = getEnv("BASE_URL", cfg.Server.BaseURL)
	cfg.Server.ReadTimeout = getEnvDuration("READ_TIMEOUT", cfg.Server.ReadTimeout)
	cfg.Server.WriteTimeout = getEnvDuration("WRITE_TIMEOUT", cfg.Server.WriteTimeout)

	if dir, ok := os.LookupEnv("DATA_DIR"); ok {
		cfg.Database.Path = dir + "/clashcal.db"
	}
	cfg.Database.Path = getEnv("DATABASE_PATH", cfg.Database.Path)

	cfg.Cache.Backend = getEnv("CACHE_BACKEND", cfg.Cache.Backend)
	cfg.Cache.TTL = getEnvDuration("CACHE_TTL", cfg.Cache.TTL)

	cfg.Registry.Path = getEnv("REGISTRY_FILE", cfg.Registry.Path)

	cfg.Slots.StartHour = getEnvInt("SLOT_START_HOUR", cfg.Slots.StartHour)
	cfg.Slots.EndHour = getEnvInt("SLOT_END_HOUR", cfg.Slots.EndHour)

	cfg.Providers.Google.Enabled = getEnvBool("GOOGLE_ENABLED", cfg.Providers.Google.Enabled)
	cfg.Providers.Google.CredentialsFile = getEnv("GOOGLE_CREDENTIALS_FILE", cfg.Providers.Google.CredentialsFile)
	cfg.Providers.Google.ClientID = getEnv("GOOGLE_CLIENT_ID", cfg.Providers.Google.ClientID)
	cfg.Providers.Google.ClientSecret = getEnv("GOOGLE_CLIENT_SECRET", cfg.Providers.Google.ClientSecret)

	cfg.Providers.ICS.Enabled = getEnvBool("ICS_ENABLED", cfg.Providers.ICS.Enabled)
	if sources, ok := os.LookupEnv("ICS_SOURCES"); ok {
		cfg.Providers.ICS.Sources = parseSourceList(sources)
	}

	cfg.Logging.Level = getEnv("LOG_LEVEL", cfg.Logging.Level)
	cfg.Logging.Format = getEnv("LOG_FORMAT", cfg.Logging.Format)

	cfg.Retention.Enabled = getEnvBool("RETENTION_ENABLED", cfg.Retention.Enabled)
	cfg.Retention.PurgeSchedule = getEnv("PURGE_SCHEDULE", cfg.Retention.PurgeSchedule)
}

// Validate checks that configuration values are usable.
func (c *Config) Validate() error {
	switch c.Cache.Backend {
	case CacheBackendSQLite, CacheBackendMemory, CacheBackendNone:
	default:
		return fmt.Errorf("invalid CACHE_BACKEND %q (must be sqlite, memory, or none)", c.Cache.Backend)
	}

	if c.Slots.StartHour < 0 || c.Slots.StartHour > 23 ||
		c.Slots.EndHour < 1 || c.Slots.EndHour > 24 ||
		c.Slots.EndHour <= c.Slots.StartHour {
		return fmt.Errorf("invalid working hours %d-%d", c.Slots.StartHour, c.Slots.EndHour)
	}

	if c.Cache.TTL <= 0 {
		return fmt.Errorf("cache TTL must be positive")
	}

	return nil
}

// parseSourceList parses "id=url,id2=url2" into a map.
func parseSourceList(s string) map[string]string {
	sources := map[string]string{}
	for _, pair := range strings.Split(s, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		parts := strings.SplitN(pair, "=", 2)
		if len(parts) == 2 && parts[0] != "" && parts[1] != "" {
			sources[parts[0]] = parts[1]
		}
	}
	return sources
}

// Helper functions for environment variable parsing

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		lower := strings.ToLower(value)
		return lower == "true" || lower == "1" || lower == "yes"
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
