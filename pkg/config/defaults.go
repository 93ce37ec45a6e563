package config

import "time"

// Default values for configuration fields.
const (
	// Export defaults
	DefaultExportOutputDir   = "exports"
	DefaultExportFormat      = "xlsx"
	DefaultWorkbookSheetName = "Dados"
	DefaultWorkbookSubject   = "Dados exportados do Painel Port VR"
	DefaultWorkbookAuthor    = "Port VR Sistema"

	// Session defaults
	DefaultSessionBackend      = "sqlite"
	DefaultSessionSQLitePath   = "data/session.db"
	DefaultSessionSQLiteDriver = "sqlite"
	DefaultSessionBusyTimeout  = 5 * time.Second

	// Watch defaults
	DefaultWatchDebounceInterval = 500 * time.Millisecond

	// Telemetry defaults
	DefaultLogLevel         = "info"
	DefaultLogFormat        = "text"
	DefaultMetricsNamespace = "portvr"
)

// NewDefaultConfig returns a configuration with every default applied.
func NewDefaultConfig() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}

// ApplyDefaults fills unset fields of cfg with default values.
func ApplyDefaults(cfg *Config) {
	// Export defaults
	if cfg.Export.OutputDir == "" {
		cfg.Export.OutputDir = DefaultExportOutputDir
	}
	if cfg.Export.DefaultFormat == "" {
		cfg.Export.DefaultFormat = DefaultExportFormat
	}
	if cfg.Export.Workbook.SheetName == "" {
		cfg.Export.Workbook.SheetName = DefaultWorkbookSheetName
	}
	if cfg.Export.Workbook.Subject == "" {
		cfg.Export.Workbook.Subject = DefaultWorkbookSubject
	}
	if cfg.Export.Workbook.Author == "" {
		cfg.Export.Workbook.Author = DefaultWorkbookAuthor
	}

	// Session defaults
	if cfg.Session.Backend == "" {
		cfg.Session.Backend = DefaultSessionBackend
	}
	if cfg.Session.SQLite.Path == "" {
		cfg.Session.SQLite.Path = DefaultSessionSQLitePath
	}
	if cfg.Session.SQLite.Driver == "" {
		cfg.Session.SQLite.Driver = DefaultSessionSQLiteDriver
	}
	if cfg.Session.SQLite.BusyTimeout == 0 {
		cfg.Session.SQLite.BusyTimeout = DefaultSessionBusyTimeout
	}

	// Schedule defaults
	for i := range cfg.Schedule.Jobs {
		job := &cfg.Schedule.Jobs[i]
		if job.Name == "" {
			job.Name = job.Dataset
		}
		if job.Format == "" {
			job.Format = cfg.Export.DefaultFormat
		}
	}

	// Watch defaults
	if cfg.Watch.DebounceInterval == 0 {
		cfg.Watch.DebounceInterval = DefaultWatchDebounceInterval
	}

	// Telemetry defaults
	if cfg.Telemetry.Logging.Level == "" {
		cfg.Telemetry.Logging.Level = DefaultLogLevel
	}
	if cfg.Telemetry.Logging.Format == "" {
		cfg.Telemetry.Logging.Format = DefaultLogFormat
	}
	if cfg.Telemetry.Metrics.Namespace == "" {
		cfg.Telemetry.Metrics.Namespace = DefaultMetricsNamespace
	}
}
