package config

import (
	"fmt"
	"strings"

	"github.com/robfig/cron/v3"
)

// FieldError represents a validation error for a specific configuration field.
type FieldError struct {
	// Field is the dotted path to the configuration field (e.g., "export.default_format").
	Field string

	// Message is a human-readable error message.
	Message string
}

// Error returns the error message for this field error.
func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationError represents one or more validation errors in a configuration.
type ValidationError struct {
	// Errors contains all validation errors found in the configuration.
	Errors []FieldError
}

// Error returns a formatted string containing all validation errors.
func (e ValidationError) Error() string {
	if len(e.Errors) == 0 {
		return "configuration validation failed"
	}
	if len(e.Errors) == 1 {
		return fmt.Sprintf("configuration validation failed: %s", e.Errors[0].Error())
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("configuration validation failed with %d errors:\n", len(e.Errors)))
	for _, err := range e.Errors {
		sb.WriteString(fmt.Sprintf("  - %s\n", err.Error()))
	}
	return sb.String()
}

var validFormats = map[string]bool{"csv": true, "json": true, "xlsx": true}

// cronParser accepts the standard 5-field syntax and descriptors such as
// @daily, matching the scheduler.
var cronParser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)

// Validate validates the entire configuration and returns a ValidationError
// if any validation rules fail. All validation errors are collected and
// returned together.
func Validate(cfg *Config) error {
	var errs []FieldError

	errs = append(errs, validateExport(&cfg.Export)...)
	errs = append(errs, validateSession(&cfg.Session)...)
	errs = append(errs, validateSchedule(&cfg.Schedule)...)
	errs = append(errs, validateWatch(&cfg.Watch)...)
	errs = append(errs, validateTelemetry(&cfg.Telemetry)...)

	if len(errs) > 0 {
		return ValidationError{Errors: errs}
	}
	return nil
}

func validateExport(cfg *ExportConfig) []FieldError {
	var errs []FieldError

	if cfg.OutputDir == "" {
		errs = append(errs, FieldError{Field: "export.output_dir", Message: "output directory is required"})
	}
	if !validFormats[strings.ToLower(cfg.DefaultFormat)] {
		errs = append(errs, FieldError{
			Field:   "export.default_format",
			Message: fmt.Sprintf("invalid format %q: must be 'csv', 'json', or 'xlsx'", cfg.DefaultFormat),
		})
	}

	// Excel sheet names are limited to 31 characters and a few symbols.
	name := cfg.Workbook.SheetName
	if name == "" || len([]rune(name)) > 31 || strings.ContainsAny(name, `:\/?*[]`) {
		errs = append(errs, FieldError{
			Field:   "export.workbook.sheet_name",
			Message: fmt.Sprintf("invalid sheet name %q: must be 1-31 characters without : \\ / ? * [ ]", name),
		})
	}
	return errs
}

func validateSession(cfg *SessionConfig) []FieldError {
	var errs []FieldError

	switch cfg.Backend {
	case "memory":
	case "sqlite":
		if cfg.SQLite.Path == "" {
			errs = append(errs, FieldError{Field: "session.sqlite.path", Message: "database path is required"})
		}
		if cfg.SQLite.Driver != "sqlite" && cfg.SQLite.Driver != "sqlite3" {
			errs = append(errs, FieldError{
				Field:   "session.sqlite.driver",
				Message: fmt.Sprintf("invalid driver %q: must be 'sqlite' or 'sqlite3'", cfg.SQLite.Driver),
			})
		}
		if cfg.SQLite.BusyTimeout < 0 {
			errs = append(errs, FieldError{Field: "session.sqlite.busy_timeout", Message: "busy timeout cannot be negative"})
		}
	default:
		errs = append(errs, FieldError{
			Field:   "session.backend",
			Message: fmt.Sprintf("invalid backend %q: must be 'memory' or 'sqlite'", cfg.Backend),
		})
	}
	return errs
}

func validateSchedule(cfg *ScheduleConfig) []FieldError {
	var errs []FieldError

	for i, job := range cfg.Jobs {
		prefix := fmt.Sprintf("schedule.jobs[%d]", i)
		if job.Cron == "" {
			errs = append(errs, FieldError{Field: prefix + ".cron", Message: "cron expression is required"})
		} else if _, err := cronParser.Parse(job.Cron); err != nil {
			errs = append(errs, FieldError{
				Field:   prefix + ".cron",
				Message: fmt.Sprintf("invalid cron expression %q: %v", job.Cron, err),
			})
		}
		if job.Dataset == "" {
			errs = append(errs, FieldError{Field: prefix + ".dataset", Message: "dataset is required"})
		}
		if !validFormats[strings.ToLower(job.Format)] {
			errs = append(errs, FieldError{
				Field:   prefix + ".format",
				Message: fmt.Sprintf("invalid format %q: must be 'csv', 'json', or 'xlsx'", job.Format),
			})
		}
	}
	return errs
}

func validateWatch(cfg *WatchConfig) []FieldError {
	if cfg.DebounceInterval < 0 {
		return []FieldError{{Field: "watch.debounce_interval", Message: "debounce interval cannot be negative"}}
	}
	return nil
}

func validateTelemetry(cfg *TelemetryConfig) []FieldError {
	var errs []FieldError

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.Logging.Level] {
		errs = append(errs, FieldError{
			Field:   "telemetry.logging.level",
			Message: fmt.Sprintf("invalid logging level %q: must be 'debug', 'info', 'warn', or 'error'", cfg.Logging.Level),
		})
	}

	validLogFormats := map[string]bool{"json": true, "text": true, "console": true}
	if !validLogFormats[cfg.Logging.Format] {
		errs = append(errs, FieldError{
			Field:   "telemetry.logging.format",
			Message: fmt.Sprintf("invalid logging format %q: must be 'json', 'text', or 'console'", cfg.Logging.Format),
		})
	}

	if cfg.Metrics.Enabled && cfg.Metrics.Namespace == "" {
		errs = append(errs, FieldError{
			Field:   "telemetry.metrics.namespace",
			Message: "metrics namespace is required when metrics are enabled",
		})
	}
	return errs
}
