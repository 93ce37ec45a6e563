package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"portvr/painel/pkg/cli"
	"portvr/painel/pkg/config"
	"portvr/painel/pkg/export"
	"portvr/painel/pkg/session"
	"portvr/painel/pkg/telemetry/logging"
	"portvr/painel/pkg/telemetry/metrics"
)

// app carries the state shared by all commands: global flags and what is
// built from the configuration before a command runs.
type app struct {
	cfgFile string
	verbose bool
	output  string

	cfg       *config.Config
	logger    *slog.Logger
	collector *metrics.Collector
	formatter cli.Formatter
}

func (a *app) setup(cmd *cobra.Command) error {
	format, err := cli.ParseOutputFormat(a.output)
	if err != nil {
		return err
	}
	a.formatter = cli.NewFormatter(format)

	cfg, err := config.LoadConfigWithEnvOverrides(a.cfgFile)
	if err != nil {
		for _, ce := range cli.ConfigErrors(err) {
			fmt.Fprintln(cmd.ErrOrStderr(), ce)
		}
		return cli.NewConfigError(a.cfgFile, fmt.Sprintf("failed to load config: %v", err))
	}
	a.cfg = cfg

	logCfg := cfg.Telemetry.Logging
	if a.verbose {
		logCfg.Level = "debug"
	}
	logger, err := logging.New(logging.Config{
		Level:     logCfg.Level,
		Format:    logCfg.Format,
		AddSource: logCfg.AddSource,
		RedactPII: logCfg.RedactPII,
		Writer:    cmd.ErrOrStderr(),
	})
	if err != nil {
		return cli.NewConfigError("telemetry.logging", err.Error())
	}
	slog.SetDefault(logger)
	a.logger = logger

	a.collector = metrics.NewCollector(&cfg.Telemetry.Metrics, nil)
	return nil
}

// newExporter builds an exporter writing to saver with the configured
// workbook metadata.
func (a *app) newExporter(saver export.Saver) *export.Exporter {
	wb := a.cfg.Export.Workbook
	return export.New(saver,
		export.WithLogger(a.logger.With("component", "exporter")),
		export.WithObserver(a.collector),
		export.WithWorkbook(export.WorkbookOptions{
			SheetName: wb.SheetName,
			Subject:   wb.Subject,
			Author:    wb.Author,
		}),
	)
}

// outputSaver returns a saver for dir, or for the command's stdout.
func (a *app) outputSaver(cmd *cobra.Command, dir string, stdout bool) export.Saver {
	if stdout {
		return &export.WriterSaver{W: cmd.OutOrStdout()}
	}
	if dir == "" {
		dir = a.cfg.Export.OutputDir
	}
	return export.NewDirSaver(dir)
}

// openSession opens the configured session storage and loads the session.
// The returned function closes the storage.
func (a *app) openSession(ctx context.Context) (*session.Session, func(), error) {
	var store session.Storage
	switch sc := a.cfg.Session; sc.Backend {
	case "memory":
		store = session.NewMemoryStorage()
	default:
		s, err := session.NewSQLiteStorage(session.SQLiteConfig{
			Path:        sc.SQLite.Path,
			Driver:      sc.SQLite.Driver,
			BusyTimeout: sc.SQLite.BusyTimeout,
		})
		if err != nil {
			return nil, nil, err
		}
		store = s
	}

	closeFn := func() {
		if err := store.Close(); err != nil {
			a.logger.Warn("failed to close session storage", "error", err)
		}
	}

	sess, err := session.Load(ctx, store, session.WithLogger(a.logger.With("component", "session")))
	if err != nil {
		closeFn()
		return nil, nil, err
	}
	return sess, closeFn, nil
}

// flushMetrics writes the metrics textfile, if configured.
func (a *app) flushMetrics() {
	if err := a.collector.WriteTextfile(); err != nil {
		a.logger.Warn("failed to write metrics", "error", err)
	}
}

// print writes a command result in the selected output format.
func (a *app) print(cmd *cobra.Command, v any) error {
	return a.formatter.FormatTo(cmd.OutOrStdout(), v)
}
