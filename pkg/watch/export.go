package watch

import (
	"context"
	"path/filepath"
	"strings"

	"portvr/painel/pkg/export"
)

// Exporter runs a single export.
type Exporter interface {
	Export(ctx context.Context, req export.Request) (*export.Result, error)
}

// ExportOnChange returns a change handler that reads path as a JSON array of
// records and exports it in format. An empty filename defaults to the
// input's base name without extension.
func ExportOnChange(ctx context.Context, exporter Exporter, path string, format export.Format, filename string) func() error {
	if filename == "" {
		base := filepath.Base(path)
		filename = strings.TrimSuffix(base, filepath.Ext(base))
	}

	return func() error {
		records, err := export.ReadRecordFile(path)
		if err != nil {
			return err
		}
		_, err = exporter.Export(ctx, export.Request{
			Filename: filename,
			Format:   format,
			Data:     records,
		})
		return err
	}
}
