package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "portvr.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return path
}

func TestLoadConfig_ValidFile(t *testing.T) {
	path := writeConfig(t, `
export:
  output_dir: "/tmp/relatorios"
  default_format: "csv"
  workbook:
    sheet_name: "Treinos"

session:
  backend: "sqlite"
  sqlite:
    path: "./session.db"
    driver: "sqlite3"
    busy_timeout: "2s"

schedule:
  jobs:
    - cron: "0 3 * * *"
      dataset: "history"
    - name: "semanal"
      cron: "@weekly"
      dataset: "workers"
      format: "xlsx"

watch:
  debounce_interval: "250ms"

telemetry:
  logging:
    level: "debug"
    format: "json"
    redact_pii: true
  metrics:
    enabled: true
    textfile_path: "/tmp/portvr.prom"
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Export.OutputDir != "/tmp/relatorios" {
		t.Errorf("expected output dir %q, got %q", "/tmp/relatorios", cfg.Export.OutputDir)
	}
	if cfg.Export.Workbook.SheetName != "Treinos" {
		t.Errorf("expected sheet name %q, got %q", "Treinos", cfg.Export.Workbook.SheetName)
	}
	if cfg.Export.Workbook.Author != DefaultWorkbookAuthor {
		t.Errorf("expected default author, got %q", cfg.Export.Workbook.Author)
	}
	if cfg.Session.SQLite.Driver != "sqlite3" {
		t.Errorf("expected driver sqlite3, got %q", cfg.Session.SQLite.Driver)
	}
	if cfg.Session.SQLite.BusyTimeout != 2*time.Second {
		t.Errorf("expected busy timeout 2s, got %v", cfg.Session.SQLite.BusyTimeout)
	}
	if cfg.Watch.DebounceInterval != 250*time.Millisecond {
		t.Errorf("expected debounce 250ms, got %v", cfg.Watch.DebounceInterval)
	}

	if len(cfg.Schedule.Jobs) != 2 {
		t.Fatalf("expected 2 jobs, got %d", len(cfg.Schedule.Jobs))
	}
	first := cfg.Schedule.Jobs[0]
	if first.Name != "history" || first.Format != "csv" {
		t.Errorf("job defaults not applied: %+v", first)
	}
	if cfg.Schedule.Jobs[1].Name != "semanal" {
		t.Errorf("expected job name %q, got %q", "semanal", cfg.Schedule.Jobs[1].Name)
	}

	if !cfg.Telemetry.Logging.RedactPII {
		t.Error("expected redact_pii to be true")
	}
	if cfg.Telemetry.Metrics.Namespace != DefaultMetricsNamespace {
		t.Errorf("expected namespace %q, got %q", DefaultMetricsNamespace, cfg.Telemetry.Metrics.Namespace)
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "export: [unterminated")
	if _, err := LoadConfig(path); err == nil {
		t.Fatal("expected error for invalid YAML")
	}
}

// TestLoadConfigWithEnvOverrides_OptionalDefaultFile tests that an empty
// path falls back to defaults when portvr.yaml is absent.
func TestLoadConfigWithEnvOverrides_OptionalDefaultFile(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := LoadConfigWithEnvOverrides("")
	if err != nil {
		t.Fatalf("LoadConfigWithEnvOverrides() failed: %v", err)
	}
	if cfg.Export.DefaultFormat != DefaultExportFormat {
		t.Errorf("expected default format %q, got %q", DefaultExportFormat, cfg.Export.DefaultFormat)
	}
}

func TestLoadConfigWithEnvOverrides_ExplicitMissingFile(t *testing.T) {
	if _, err := LoadConfigWithEnvOverrides(filepath.Join(t.TempDir(), "custom.yaml")); err == nil {
		t.Fatal("expected error for explicit missing file")
	}
}

func TestLoadConfigWithEnvOverrides(t *testing.T) {
	path := writeConfig(t, `
export:
  output_dir: "from-file"
`)

	t.Setenv("PORTVR_EXPORT_OUTPUT_DIR", "from-env")
	t.Setenv("PORTVR_SESSION_BACKEND", "memory")
	t.Setenv("PORTVR_WATCH_DEBOUNCE_INTERVAL", "2s")
	t.Setenv("PORTVR_TELEMETRY_LOGGING_LEVEL", "warn")
	t.Setenv("PORTVR_TELEMETRY_METRICS_ENABLED", "true")
	t.Setenv("PORTVR_TELEMETRY_LOGGING_REDACT_PII", "not-a-bool")

	cfg, err := LoadConfigWithEnvOverrides(path)
	if err != nil {
		t.Fatalf("LoadConfigWithEnvOverrides() failed: %v", err)
	}

	if cfg.Export.OutputDir != "from-env" {
		t.Errorf("expected output dir %q, got %q", "from-env", cfg.Export.OutputDir)
	}
	if cfg.Session.Backend != "memory" {
		t.Errorf("expected backend memory, got %q", cfg.Session.Backend)
	}
	if cfg.Watch.DebounceInterval != 2*time.Second {
		t.Errorf("expected debounce 2s, got %v", cfg.Watch.DebounceInterval)
	}
	if cfg.Telemetry.Logging.Level != "warn" {
		t.Errorf("expected level warn, got %q", cfg.Telemetry.Logging.Level)
	}
	if !cfg.Telemetry.Metrics.Enabled {
		t.Error("expected metrics enabled")
	}
	if cfg.Telemetry.Logging.RedactPII {
		t.Error("unparseable bool override should be ignored")
	}
}

func TestLoadConfigWithEnvOverrides_InvalidOverride(t *testing.T) {
	path := writeConfig(t, "")
	t.Setenv("PORTVR_EXPORT_DEFAULT_FORMAT", "pdf")

	_, err := LoadConfigWithEnvOverrides(path)
	var verr ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Config)
		wantField string
	}{
		{"valid defaults", func(*Config) {}, ""},
		{"bad format", func(c *Config) { c.Export.DefaultFormat = "pdf" }, "export.default_format"},
		{"format is case-insensitive", func(c *Config) { c.Export.DefaultFormat = "XLSX" }, ""},
		{"long sheet name", func(c *Config) { c.Export.Workbook.SheetName = strings.Repeat("a", 32) }, "export.workbook.sheet_name"},
		{"sheet name with slash", func(c *Config) { c.Export.Workbook.SheetName = "a/b" }, "export.workbook.sheet_name"},
		{"bad backend", func(c *Config) { c.Session.Backend = "redis" }, "session.backend"},
		{"bad driver", func(c *Config) { c.Session.SQLite.Driver = "pgx" }, "session.sqlite.driver"},
		{"memory ignores driver", func(c *Config) { c.Session.Backend = "memory"; c.Session.SQLite.Driver = "pgx" }, ""},
		{"bad cron", func(c *Config) {
			c.Schedule.Jobs = []JobConfig{{Cron: "every day", Dataset: "history", Format: "csv"}}
		}, "schedule.jobs[0].cron"},
		{"missing dataset", func(c *Config) {
			c.Schedule.Jobs = []JobConfig{{Cron: "@daily", Format: "csv"}}
		}, "schedule.jobs[0].dataset"},
		{"negative debounce", func(c *Config) { c.Watch.DebounceInterval = -time.Second }, "watch.debounce_interval"},
		{"bad log level", func(c *Config) { c.Telemetry.Logging.Level = "trace" }, "telemetry.logging.level"},
		{"console log format", func(c *Config) { c.Telemetry.Logging.Format = "console" }, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewDefaultConfig()
			tt.mutate(cfg)

			err := Validate(cfg)
			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("Validate() unexpected error: %v", err)
				}
				return
			}

			var verr ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			found := false
			for _, fe := range verr.Errors {
				if fe.Field == tt.wantField {
					found = true
				}
			}
			if !found {
				t.Errorf("expected error for field %q, got %v", tt.wantField, verr.Errors)
			}
		})
	}
}

func TestValidationError_Message(t *testing.T) {
	single := ValidationError{Errors: []FieldError{{Field: "a", Message: "bad"}}}
	if single.Error() != "configuration validation failed: a: bad" {
		t.Errorf("unexpected message %q", single.Error())
	}

	multi := ValidationError{Errors: []FieldError{{Field: "a", Message: "bad"}, {Field: "b", Message: "worse"}}}
	if !strings.Contains(multi.Error(), "2 errors") {
		t.Errorf("expected error count in %q", multi.Error())
	}
}
