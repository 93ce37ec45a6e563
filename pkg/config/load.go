package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultConfigPath is the configuration file looked up when none is given.
const DefaultConfigPath = "portvr.yaml"

// EnvPrefix prefixes every environment variable override.
const EnvPrefix = "PORTVR_"

// LoadConfig loads configuration from a YAML file at the specified path.
// It applies default values, validates the configuration, and returns any errors.
// Environment variables are not consulted; use LoadConfigWithEnvOverrides
// for that.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration file %q: %w", path, err)
	}

	cfg, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse configuration file %q: %w", path, err)
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

// LoadConfigWithEnvOverrides loads configuration from a YAML file and applies
// environment variable overrides. Environment variables follow the naming
// convention PORTVR_SECTION_FIELD (e.g., PORTVR_EXPORT_OUTPUT_DIR).
// Environment variables always take precedence over file-based configuration.
//
// An empty path loads defaults. The default path (portvr.yaml) is optional:
// when it does not exist, defaults are used as well.
func LoadConfigWithEnvOverrides(path string) (*Config, error) {
	cfg, err := loadFileOrDefaults(path)
	if err != nil {
		return nil, err
	}

	applyEnvOverrides(cfg)

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed after environment overrides: %w", err)
	}
	return cfg, nil
}

func loadFileOrDefaults(path string) (*Config, error) {
	optional := path == "" || path == DefaultConfigPath
	if path == "" {
		path = DefaultConfigPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if optional && errors.Is(err, fs.ErrNotExist) {
			return NewDefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read configuration file %q: %w", path, err)
	}

	cfg, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse configuration file %q: %w", path, err)
	}
	return cfg, nil
}

func parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	ApplyDefaults(&cfg)
	return &cfg, nil
}

// applyEnvOverrides applies environment variable overrides to the configuration.
func applyEnvOverrides(cfg *Config) {
	// Export overrides
	if val := os.Getenv(EnvPrefix + "EXPORT_OUTPUT_DIR"); val != "" {
		cfg.Export.OutputDir = val
	}
	if val := os.Getenv(EnvPrefix + "EXPORT_DEFAULT_FORMAT"); val != "" {
		cfg.Export.DefaultFormat = val
	}
	if val := os.Getenv(EnvPrefix + "EXPORT_WORKBOOK_SHEET_NAME"); val != "" {
		cfg.Export.Workbook.SheetName = val
	}
	if val := os.Getenv(EnvPrefix + "EXPORT_WORKBOOK_AUTHOR"); val != "" {
		cfg.Export.Workbook.Author = val
	}

	// Session overrides
	if val := os.Getenv(EnvPrefix + "SESSION_BACKEND"); val != "" {
		cfg.Session.Backend = val
	}
	if val := os.Getenv(EnvPrefix + "SESSION_SQLITE_PATH"); val != "" {
		cfg.Session.SQLite.Path = val
	}
	if val := os.Getenv(EnvPrefix + "SESSION_SQLITE_DRIVER"); val != "" {
		cfg.Session.SQLite.Driver = val
	}
	if val := os.Getenv(EnvPrefix + "SESSION_SQLITE_BUSY_TIMEOUT"); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			cfg.Session.SQLite.BusyTimeout = d
		}
	}

	// Watch overrides
	if val := os.Getenv(EnvPrefix + "WATCH_DEBOUNCE_INTERVAL"); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			cfg.Watch.DebounceInterval = d
		}
	}

	// Telemetry overrides
	if val := os.Getenv(EnvPrefix + "TELEMETRY_LOGGING_LEVEL"); val != "" {
		cfg.Telemetry.Logging.Level = val
	}
	if val := os.Getenv(EnvPrefix + "TELEMETRY_LOGGING_FORMAT"); val != "" {
		cfg.Telemetry.Logging.Format = val
	}
	if val := os.Getenv(EnvPrefix + "TELEMETRY_LOGGING_REDACT_PII"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.Telemetry.Logging.RedactPII = b
		}
	}
	if val := os.Getenv(EnvPrefix + "TELEMETRY_METRICS_ENABLED"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.Telemetry.Metrics.Enabled = b
		}
	}
	if val := os.Getenv(EnvPrefix + "TELEMETRY_METRICS_TEXTFILE_PATH"); val != "" {
		cfg.Telemetry.Metrics.TextfilePath = val
	}
}
