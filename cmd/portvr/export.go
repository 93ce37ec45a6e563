package main

import (
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"portvr/painel/pkg/cli"
	"portvr/painel/pkg/dashboard"
	"portvr/painel/pkg/export"
)

type exportFlags struct {
	dataset   string
	format    string
	search    string
	date      string
	filename  string
	input     string
	outputDir string
	stdout    bool
}

func newExportCmd(a *app) *cobra.Command {
	var flags exportFlags

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a dataset or a JSON file of records",
		Long: `Export a dashboard dataset, or a JSON array of records read from a file,
as CSV, JSON or XLSX.

CSV files use ';' as separator and start with a UTF-8 byte order mark so that
spreadsheet programs detect the encoding. XLSX files get a styled header row,
banded rows and column widths fitted to the content.

Examples:
  # Export all workers as a spreadsheet
  portvr export --dataset workers --format xlsx

  # Export the trainings matching a search
  portvr export --dataset trainings --format csv --search guindaste

  # Export the history of one day (file gets a -dd-mm-yyyy suffix)
  portvr export --dataset history --date 2023-07-15

  # Export records from a file to stdout
  portvr export --input registros.json --format csv --stdout`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, a, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.dataset, "dataset", "d", "", "dataset to export: "+strings.Join(dashboard.Names(), ", "))
	cmd.Flags().StringVarP(&flags.format, "format", "f", "", "export format: csv, json, xlsx (default from config)")
	cmd.Flags().StringVarP(&flags.search, "search", "s", "", "keep only entries matching this text")
	cmd.Flags().StringVar(&flags.date, "date", "", "keep only entries of this day (YYYY-MM-DD or DD/MM/YYYY)")
	cmd.Flags().StringVar(&flags.filename, "filename", "", "file name without extension (default per dataset)")
	cmd.Flags().StringVarP(&flags.input, "input", "i", "", "JSON file holding an array of records to export")
	cmd.Flags().StringVar(&flags.outputDir, "output-dir", "", "directory to write to (default from config)")
	cmd.Flags().BoolVar(&flags.stdout, "stdout", false, "write the exported file to stdout")
	cmd.MarkFlagsMutuallyExclusive("dataset", "input")
	cmd.MarkFlagsMutuallyExclusive("output-dir", "stdout")
	return cmd
}

func runExport(cmd *cobra.Command, a *app, flags exportFlags) error {
	defer a.flushMetrics()

	req, err := buildExportRequest(a, flags)
	if err != nil {
		return err
	}

	saver := a.outputSaver(cmd, flags.outputDir, flags.stdout)
	result, err := a.newExporter(saver).Export(cmd.Context(), req)
	if err != nil {
		return cli.NewCommandError("export", err)
	}
	if flags.stdout {
		return nil
	}

	view := newExportView(result)
	if ds, ok := saver.(*export.DirSaver); ok {
		view.Path = ds.Path(result.Filename)
	}
	return a.print(cmd, view)
}

func buildExportRequest(a *app, flags exportFlags) (export.Request, error) {
	formatName := flags.format
	if formatName == "" {
		formatName = a.cfg.Export.DefaultFormat
	}
	format := export.Format(strings.ToLower(formatName))

	if flags.input != "" {
		records, err := export.ReadRecordFile(flags.input)
		if err != nil {
			return export.Request{}, cli.NewCommandError("export", err)
		}
		filename := flags.filename
		if filename == "" {
			base := filepath.Base(flags.input)
			filename = strings.TrimSuffix(base, filepath.Ext(base))
		}
		return export.Request{Filename: filename, Format: format, Data: records}, nil
	}

	if flags.dataset == "" {
		return export.Request{}, cli.NewConfigError("dataset", "either --dataset or --input is required")
	}
	ds, err := dashboard.Lookup(flags.dataset)
	if err != nil {
		return export.Request{}, cli.NewConfigError("dataset", err.Error())
	}

	filter := dashboard.Filter{Search: flags.search}
	if flags.date != "" {
		day, err := dashboard.ParseDate(flags.date)
		if err != nil {
			return export.Request{}, cli.NewConfigError("date", err.Error())
		}
		filter.Date = &day
	}

	req, err := ds.Request(format, filter)
	if err != nil {
		return export.Request{}, cli.NewCommandError("export", err)
	}
	if flags.filename != "" {
		req.Filename = flags.filename
	}
	return req, nil
}

// exportView is the printed summary of a saved export.
type exportView struct {
	ID         string `json:"id"`
	Filename   string `json:"filename"`
	Path       string `json:"path,omitempty"`
	Format     string `json:"format"`
	Records    int    `json:"records"`
	Bytes      int    `json:"bytes"`
	DurationMS int64  `json:"durationMs"`
}

func newExportView(r *export.Result) exportView {
	return exportView{
		ID:         r.ID,
		Filename:   r.Filename,
		Format:     r.Format.String(),
		Records:    r.Records,
		Bytes:      r.Bytes,
		DurationMS: r.Duration.Milliseconds(),
	}
}

func (v exportView) Headers() []string { return nil }

func (v exportView) Rows() [][]string {
	target := v.Path
	if target == "" {
		target = v.Filename
	}
	return [][]string{
		{"File:", target},
		{"Format:", v.Format},
		{"Records:", strconv.Itoa(v.Records)},
		{"Bytes:", strconv.Itoa(v.Bytes)},
		{"Export ID:", v.ID},
	}
}
