package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

type fileDuration time.Duration

func (d *fileDuration) UnmarshalYAML(value *yaml.Node) error {
	if value == nil {
		return nil
	}
	switch value.Kind {
	case yaml.ScalarNode:
		if value.Tag == "!!int" {
			var seconds int64
			if err := value.Decode(&seconds); err != nil {
				return err
			}
			*d = fileDuration(time.Duration(seconds) * time.Second)
			return nil
		}
		var raw string
		if err := value.Decode(&raw); err != nil {
			return err
		}
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", raw, err)
		}
		*d = fileDuration(parsed)
		return nil
	default:
		return fmt.Errorf("invalid duration type")
	}
}

// ConfigFile is the optional YAML overlay; only set fields override.
type ConfigFile struct {
	Server    *ServerConfigFile    `yaml:"server"`
	Database  *DatabaseConfigFile  `yaml:"database"`
	Cache     *CacheConfigFile     `yaml:"cache"`
	Registry  *RegistryConfigFile  `yaml:"registry"`
	Slots     *SlotsConfigFile     `yaml:"slots"`
	Providers *ProvidersConfigFile `yaml:"providers"`
	Logging   *LoggingConfigFile   `yaml:"logging"`
	Retention *RetentionConfigFile `yaml:"retention"`
}

type ServerConfigFile struct {
	Host         *string       `yaml:"host"`
	Port         *int          `yaml:"port"`
	BaseURL      *string       `yaml:"base_url"`
	ReadTimeout  *fileDuration `yaml:"read_timeout"`
	WriteTimeout *fileDuration `yaml:"write_timeout"`
}

type DatabaseConfigFile struct {
	Path *string `yaml:"path"`
}

type CacheConfigFile struct {
	Backend *string       `yaml:"backend"`
	TTL     *fileDuration `yaml:"ttl"`
}

type RegistryConfigFile struct {
	Path *string `yaml:"path"`
}

type SlotsConfigFile struct {
	StartHour *int `yaml:"start_hour"`
	EndHour   *int `yaml:"end_hour"`
}

type GoogleProviderConfigFile struct {
	Enabled         *bool     `yaml:"enabled"`
	CredentialsFile *string   `yaml:"credentials_file"`
	ClientID        *string   `yaml:"client_id"`
	ClientSecret    *string   `yaml:"client_secret"`
	Scopes          *[]string `yaml:"scopes"`
}

type ICSProviderConfigFile struct {
	Enabled *bool              `yaml:"enabled"`
	Sources *map[string]string `yaml:"sources"`
}

type ProvidersConfigFile struct {
	Google *GoogleProviderConfigFile `yaml:"google"`
	ICS    *ICSProviderConfigFile    `yaml:"ics"`
}

type LoggingConfigFile struct {
	Level  *string `yaml:"level"`
	Format *string `yaml:"format"`
}

type RetentionConfigFile struct {
	Enabled       *bool   `yaml:"enabled"`
	PurgeSchedule *string `yaml:"purge_schedule"`
}

func loadConfigFile(cfg *Config, path string) error {
	if path == "" {
		return nil
	}

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var file ConfigFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}

	applyConfigFile(cfg, &file)
	return nil
}

func applyConfigFile(cfg *Config, file *ConfigFile) {
	if cfg == nil || file == nil {
		return
	}

	if file.Server != nil {
		if file.Server.Host != nil {
			cfg.Server.Host = *file.Server.Host
		}
		if file.Server.Port != nil {
			cfg.Server.Port = *file.Server.Port
		}
		if file.Server.BaseURL != nil {
			cfg.Server.BaseURL = *file.Server.BaseURL
		}
		if file.Server.ReadTimeout != nil {
			cfg.Server.ReadTimeout = time.Duration(*file.Server.ReadTimeout)
		}
		if file.Server.WriteTimeout != nil {
			cfg.Server.WriteTimeout = time.Duration(*file.Server.WriteTimeout)
		}
	}

	if file.Database != nil && file.Database.Path != nil {
		cfg.Database.Path = filepath.Clean(*file.Database.Path)
	}

	if file.Cache != nil {
		if file.Cache.Backend != nil {
			cfg.Cache.Backend = *file.Cache.Backend
		}
		if file.Cache.TTL != nil {
			cfg.Cache.TTL = time.Duration(*file.Cache.TTL)
		}
	}

	if file.Registry != nil && file.Registry.Path != nil {
		cfg.Registry.Path = *file.Registry.Path
	}

	if file.Slots != nil {
		if file.Slots.StartHour != nil {
			cfg.Slots.StartHour = *file.Slots.StartHour
		}
		if file.Slots.EndHour != nil {
			cfg.Slots.EndHour = *file.Slots.EndHour
		}
	}

	if file.Providers != nil {
		if g := file.Providers.Google; g != nil {
			if g.Enabled != nil {
				cfg.Providers.Google.Enabled = *g.Enabled
			}
			if g.CredentialsFile != nil {
				cfg.Providers.Google.CredentialsFile = *g.CredentialsFile
			}
			if g.ClientID != nil {
				cfg.Providers.Google.ClientID = *g.ClientID
			}
			if g.ClientSecret != nil {
				cfg.Providers.Google.ClientSecret = *g.ClientSecret
			}
			if g.Scopes != nil {
				cfg.Providers.Google.Scopes = *g.Scopes
			}
		}
		if i := file.Providers.ICS; i != nil {
			if i.Enabled != nil {
				cfg.Providers.ICS.Enabled = *i.Enabled
			}
			if i.Sources != nil {
				cfg.Providers.ICS.Sources = *i.Sources
			}
		}
	}

	if file.Logging != nil {
		if file.Logging.Level != nil {
			cfg.Logging.Level = *file.Logging.Level
		}
		if file.Logging.Format != nil {
			cfg.Logging.Format = *file.Logging.Format
		}
	}

	if file.Retention != nil {
		if file.Retention.Enabled != nil {
			cfg.Retention.Enabled = *file.Retention.Enabled
		}
		if file.Retention.PurgeSchedule != nil {
			cfg.Retention.PurgeSchedule = *file.Retention.PurgeSchedule
		}
	}
}

// GetConfigFilePath returns the path to the config file based on environment variables.
func GetConfigFilePath() string {
	dataDir := getEnv("DATA_DIR", DefaultDataDir)
	return getEnv("CONFIG_FILE", filepath.Join(dataDir, "config.yaml"))
}
