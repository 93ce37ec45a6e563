package main

import (
	"strings"

	"github.com/spf13/cobra"

	"portvr/painel/pkg/cli"
	"portvr/painel/pkg/export"
	"portvr/painel/pkg/watch"
)

type watchFlags struct {
	input     string
	format    string
	filename  string
	outputDir string
	initial   bool
}

func newWatchCmd(a *app) *cobra.Command {
	var flags watchFlags

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Re-export a JSON file of records whenever it changes",
		Long: `Watch a JSON file holding an array of records and export it each time
it is saved. Bursts of changes are collapsed into one export
(watch.debounce_interval in the configuration).

Example:
  portvr watch --input registros.json --format xlsx --output-dir relatorios`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(cmd, a, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.input, "input", "i", "", "JSON file to watch")
	cmd.Flags().StringVarP(&flags.format, "format", "f", "", "export format (default from config)")
	cmd.Flags().StringVar(&flags.filename, "filename", "", "file name without extension (default: input base name)")
	cmd.Flags().StringVar(&flags.outputDir, "output-dir", "", "directory to write to (default from config)")
	cmd.Flags().BoolVar(&flags.initial, "initial", false, "export once before waiting for changes")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}

func runWatch(cmd *cobra.Command, a *app, flags watchFlags) error {
	defer a.flushMetrics()

	formatName := flags.format
	if formatName == "" {
		formatName = a.cfg.Export.DefaultFormat
	}
	format, err := export.ParseFormat(formatName)
	if err != nil {
		return cli.NewConfigError("format", err.Error())
	}

	fw, err := watch.NewFileWatcher(&watch.Config{
		Path:             flags.input,
		DebounceInterval: a.cfg.Watch.DebounceInterval,
	}, a.logger.With("component", "watcher"))
	if err != nil {
		return cli.NewCommandError("watch", err)
	}
	defer fw.Stop()

	ctx, stop := cli.SetupSignalHandler(cmd.Context())
	defer stop()

	exporter := a.newExporter(a.outputSaver(cmd, flags.outputDir, false))
	onChange := watch.ExportOnChange(ctx, exporter, flags.input, format, strings.TrimSpace(flags.filename))

	if flags.initial {
		if err := onChange(); err != nil {
			return cli.NewCommandError("watch", err)
		}
	}

	if err := fw.Watch(ctx, onChange); err != nil {
		return cli.NewCommandError("watch", err)
	}
	return nil
}
