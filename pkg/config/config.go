package config

import "time"

// Config is the root configuration structure for the Port VR panel tools.
type Config struct {
	// Export controls where and how exports are written.
	Export ExportConfig `yaml:"export"`

	// Session selects the storage backend of the user session.
	Session SessionConfig `yaml:"session"`

	// Schedule lists recurring exports.
	Schedule ScheduleConfig `yaml:"schedule"`

	// Watch configures re-exporting a record file whenever it changes.
	Watch WatchConfig `yaml:"watch"`

	// Telemetry contains logging and metrics configuration.
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// ExportConfig contains export settings.
type ExportConfig struct {
	// OutputDir is the directory exported files are written to.
	// Default: "exports"
	OutputDir string `yaml:"output_dir"`

	// DefaultFormat is used when a command does not name a format.
	// Options: "csv", "json", "xlsx"
	// Default: "xlsx"
	DefaultFormat string `yaml:"default_format"`

	// Workbook contains spreadsheet metadata.
	Workbook WorkbookConfig `yaml:"workbook"`
}

// WorkbookConfig contains XLSX workbook settings.
type WorkbookConfig struct {
	// SheetName is the name of the single data sheet.
	// Default: "Dados"
	SheetName string `yaml:"sheet_name"`

	// Subject is the document subject property.
	// Default: "Dados exportados do Painel Port VR"
	Subject string `yaml:"subject"`

	// Author is the document author property.
	// Default: "Port VR Sistema"
	Author string `yaml:"author"`
}

// SessionConfig contains session storage settings.
type SessionConfig struct {
	// Backend selects the storage backend.
	// Options: "memory", "sqlite"
	// Default: "sqlite"
	Backend string `yaml:"backend"`

	// SQLite contains SQLite backend settings.
	SQLite SQLiteConfig `yaml:"sqlite"`
}

// SQLiteConfig contains SQLite session storage settings.
type SQLiteConfig struct {
	// Path is the database file.
	// Default: "data/session.db"
	Path string `yaml:"path"`

	// Driver is the database/sql driver name.
	// Options: "sqlite" (pure Go), "sqlite3" (cgo)
	// Default: "sqlite"
	Driver string `yaml:"driver"`

	// BusyTimeout is how long to wait for database locks.
	// Default: 5s
	BusyTimeout time.Duration `yaml:"busy_timeout"`
}

// ScheduleConfig contains recurring export jobs.
type ScheduleConfig struct {
	Jobs []JobConfig `yaml:"jobs"`
}

// JobConfig describes one recurring export.
type JobConfig struct {
	// Name identifies the job in logs. Defaults to the dataset name.
	Name string `yaml:"name"`

	// Cron is a standard 5-field cron expression.
	Cron string `yaml:"cron"`

	// Dataset is the dashboard dataset to export.
	Dataset string `yaml:"dataset"`

	// Format is the export format. Defaults to export.default_format.
	Format string `yaml:"format"`

	// Search narrows the dataset before exporting.
	Search string `yaml:"search"`
}

// WatchConfig contains file watching settings.
type WatchConfig struct {
	// DebounceInterval is how long to wait after the last change before
	// exporting.
	// Default: 500ms
	DebounceInterval time.Duration `yaml:"debounce_interval"`
}

// TelemetryConfig contains observability settings.
type TelemetryConfig struct {
	// Logging contains logging configuration.
	Logging LoggingConfig `yaml:"logging"`

	// Metrics contains metrics configuration.
	Metrics MetricsConfig `yaml:"metrics"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	// Level is the minimum log level to emit.
	// Options: "debug", "info", "warn", "error"
	// Default: "info"
	Level string `yaml:"level"`

	// Format controls the log output format.
	// Options: "json", "text", "console"
	// Default: "text"
	Format string `yaml:"format"`

	// AddSource includes file and line number in log entries.
	AddSource bool `yaml:"add_source"`

	// RedactPII masks e-mail addresses in log attributes.
	RedactPII bool `yaml:"redact_pii"`
}

// MetricsConfig contains metrics configuration.
type MetricsConfig struct {
	// Enabled controls whether export metrics are collected.
	Enabled bool `yaml:"enabled"`

	// Namespace is the metric name prefix.
	// Default: "portvr"
	Namespace string `yaml:"namespace"`

	// TextfilePath is where metrics are written in the Prometheus text
	// format when the command exits. Empty disables the file.
	TextfilePath string `yaml:"textfile_path"`
}
