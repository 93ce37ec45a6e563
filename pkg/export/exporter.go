package export

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Request describes one export.
type Request struct {
	// Filename is the file name without extension; the format's extension
	// is appended.
	Filename string

	// Format selects the encoder.
	Format Format

	// Data holds the records. It must not be empty.
	Data []Record
}

// Result describes a saved export.
type Result struct {
	ID       string
	Filename string
	Format   Format
	Records  int
	Bytes    int
	Duration time.Duration
}

// Outcome labels the result of an export for observers.
type Outcome string

const (
	OutcomeSuccess           Outcome = "success"
	OutcomeEmpty             Outcome = "empty"
	OutcomeUnsupportedFormat Outcome = "unsupported_format"
	OutcomeFailed            Outcome = "failed"
)

// Observer is notified once per Export call.
type Observer interface {
	ObserveExport(format Format, outcome Outcome, records, bytes int, duration time.Duration)
}

// DefaultFilename is used when a request carries no file name.
const DefaultFilename = "export"

// Exporter encodes requests and hands the result to a Saver. It holds no
// per-call state and may be used from multiple goroutines.
type Exporter struct {
	saver    Saver
	logger   *slog.Logger
	observer Observer
	now      func() time.Time
	workbook WorkbookOptions
}

// Option configures an Exporter.
type Option func(*Exporter)

// WithLogger sets the logger used to report failed exports.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Exporter) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithObserver registers an observer for export outcomes.
func WithObserver(o Observer) Option {
	return func(e *Exporter) {
		e.observer = o
	}
}

// WithClock replaces time.Now, used for workbook creation dates and
// durations.
func WithClock(now func() time.Time) Option {
	return func(e *Exporter) {
		if now != nil {
			e.now = now
		}
	}
}

// WithWorkbook sets the sheet name, subject and author of XLSX exports.
// Title and Created are always taken from the request and the clock.
func WithWorkbook(opts WorkbookOptions) Option {
	return func(e *Exporter) {
		e.workbook = opts
	}
}

// New creates an Exporter that delivers files through saver.
func New(saver Saver, opts ...Option) *Exporter {
	e := &Exporter{
		saver:  saver,
		logger: slog.Default().With("component", "export"),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ExportToFile exports req through saver with a default Exporter.
func ExportToFile(ctx context.Context, saver Saver, req Request) error {
	_, err := New(saver).Export(ctx, req)
	return err
}

// Export encodes req.Data in req.Format and saves it as
// "{req.Filename}.{ext}".
//
// It returns an *EmptyDataError when there are no records and an
// *UnsupportedFormatError for unknown formats, in both cases before any
// encoding starts. Encoding and save failures are logged and returned as
// *EncodingError wrapping the cause.
func (e *Exporter) Export(ctx context.Context, req Request) (*Result, error) {
	start := e.now()

	if len(req.Data) == 0 {
		e.observe(req.Format, OutcomeEmpty, 0, 0, 0)
		return nil, NewEmptyDataError(req.Filename)
	}
	if !req.Format.Valid() {
		e.observe(req.Format, OutcomeUnsupportedFormat, len(req.Data), 0, 0)
		return nil, NewUnsupportedFormatError(string(req.Format))
	}

	filename := req.Filename
	if filename == "" {
		filename = DefaultFilename
	}

	id := uuid.NewString()
	logger := e.logger.With(
		"export_id", id,
		"format", req.Format.String(),
		"filename", filename,
	)

	blob, err := e.encode(req.Format, filename, req.Data)
	if err == nil {
		err = e.saver.Save(ctx, blob)
	}
	if err != nil {
		logger.Error("export failed",
			"error", err,
			"record_count", len(req.Data),
		)
		e.observe(req.Format, OutcomeFailed, len(req.Data), 0, e.now().Sub(start))

		var encErr *EncodingError
		if errors.As(err, &encErr) {
			return nil, encErr
		}
		return nil, NewEncodingError(req.Format.String(), len(req.Data), err)
	}

	result := &Result{
		ID:       id,
		Filename: blob.Name,
		Format:   req.Format,
		Records:  len(req.Data),
		Bytes:    len(blob.Data),
		Duration: e.now().Sub(start),
	}
	e.observe(req.Format, OutcomeSuccess, result.Records, result.Bytes, result.Duration)

	logger.Debug("export saved",
		"record_count", result.Records,
		"bytes", result.Bytes,
		"duration_ms", result.Duration.Milliseconds(),
	)

	return result, nil
}

func (e *Exporter) encode(format Format, filename string, data []Record) (Blob, error) {
	blob := Blob{
		Name:        filename + "." + format.Extension(),
		ContentType: format.ContentType(),
	}

	switch format {
	case FormatCSV:
		text, err := EncodeCSV(data)
		if err != nil {
			return Blob{}, err
		}
		blob.Data = []byte(text)

	case FormatXLSX:
		opts := e.workbook
		opts.Title = filename
		opts.Created = e.now()
		out, err := EncodeXLSX(data, opts)
		if err != nil {
			return Blob{}, err
		}
		blob.Data = out

	case FormatJSON:
		out, err := EncodeJSON(data)
		if err != nil {
			return Blob{}, err
		}
		blob.Data = out
	}

	return blob, nil
}

func (e *Exporter) observe(format Format, outcome Outcome, records, bytes int, d time.Duration) {
	if e.observer != nil {
		e.observer.ObserveExport(format, outcome, records, bytes, d)
	}
}
