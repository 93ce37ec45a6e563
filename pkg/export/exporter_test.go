package export

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"
)

type recordedOutcome struct {
	format  Format
	outcome Outcome
	records int
	bytes   int
}

type fakeObserver struct {
	mu       sync.Mutex
	outcomes []recordedOutcome
}

func (o *fakeObserver) ObserveExport(format Format, outcome Outcome, records, bytes int, _ time.Duration) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.outcomes = append(o.outcomes, recordedOutcome{format, outcome, records, bytes})
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
}

// TestExporter_EmptyData tests that empty and nil data fail for every
// format without saving anything.
func TestExporter_EmptyData(t *testing.T) {
	formats := append(Formats(), Format("pdf"))
	for _, format := range formats {
		for _, data := range [][]Record{nil, {}} {
			saver := NewMemorySaver()
			exporter := New(saver, WithLogger(discardLogger()))

			_, err := exporter.Export(context.Background(), Request{
				Filename: "vazio",
				Format:   format,
				Data:     data,
			})

			var emptyErr *EmptyDataError
			if !errors.As(err, &emptyErr) {
				t.Fatalf("format %s: expected *EmptyDataError, got %v", format, err)
			}
			if !errors.Is(err, ErrEmptyData) {
				t.Errorf("format %s: errors.Is(err, ErrEmptyData) = false", format)
			}
			if !strings.Contains(err.Error(), "no data to export") {
				t.Errorf("error message = %q, want it to mention no data to export", err.Error())
			}
			if saver.Len() != 0 {
				t.Errorf("format %s: saver received %d blobs, want 0", format, saver.Len())
			}
		}
	}
}

// TestExporter_CSV tests the CSV dispatch, file name and content type.
func TestExporter_CSV(t *testing.T) {
	saver := NewMemorySaver()
	exporter := New(saver)

	result, err := exporter.Export(context.Background(), Request{
		Filename: "trabalhadores",
		Format:   FormatCSV,
		Data: []Record{
			{{"nome", "João"}, {"idade", 30}},
			{{"nome", "Ana; Bela"}, {"idade", 25}},
		},
	})
	if err != nil {
		t.Fatalf("Export() failed: %v", err)
	}

	blob, ok := saver.Last()
	if !ok {
		t.Fatal("expected a saved blob")
	}
	if blob.Name != "trabalhadores.csv" {
		t.Errorf("Name = %q, want %q", blob.Name, "trabalhadores.csv")
	}
	if blob.ContentType != ContentTypeCSV {
		t.Errorf("ContentType = %q, want %q", blob.ContentType, ContentTypeCSV)
	}
	want := "\uFEFFnome;idade\nJoão;30\n\"Ana; Bela\";25"
	if string(blob.Data) != want {
		t.Errorf("Data = %q, want %q", blob.Data, want)
	}

	if result.Filename != "trabalhadores.csv" || result.Records != 2 || result.Bytes != len(want) {
		t.Errorf("Result = %+v", result)
	}
	if result.ID == "" {
		t.Error("expected export ID")
	}
}

// TestExporter_JSON tests the JSON dispatch.
func TestExporter_JSON(t *testing.T) {
	saver := NewMemorySaver()
	if err := ExportToFile(context.Background(), saver, Request{
		Filename: "dados",
		Format:   FormatJSON,
		Data:     []Record{{{"a", 1}, {"b", nil}}},
	}); err != nil {
		t.Fatalf("ExportToFile() failed: %v", err)
	}

	blob, _ := saver.Last()
	if blob.Name != "dados.json" {
		t.Errorf("Name = %q, want %q", blob.Name, "dados.json")
	}
	if blob.ContentType != ContentTypeJSON {
		t.Errorf("ContentType = %q, want %q", blob.ContentType, ContentTypeJSON)
	}
	want := "[\n  {\n    \"a\": 1,\n    \"b\": null\n  }\n]"
	if string(blob.Data) != want {
		t.Errorf("Data = %q, want %q", blob.Data, want)
	}
}

// TestExporter_XLSX tests the spreadsheet dispatch and the title taken from
// the file name.
func TestExporter_XLSX(t *testing.T) {
	created := time.Date(2024, 11, 2, 15, 4, 5, 0, time.UTC)
	saver := NewMemorySaver()
	exporter := New(saver, WithClock(func() time.Time { return created }))

	data := sampleRecords()
	if _, err := exporter.Export(context.Background(), Request{
		Filename: "relatorio-treinamentos",
		Format:   FormatXLSX,
		Data:     data,
	}); err != nil {
		t.Fatalf("Export() failed: %v", err)
	}

	blob, _ := saver.Last()
	if !strings.HasSuffix(blob.Name, ".xlsx") {
		t.Errorf("Name = %q, want .xlsx suffix", blob.Name)
	}
	if blob.ContentType != ContentTypeXLSX {
		t.Errorf("ContentType = %q, want %q", blob.ContentType, ContentTypeXLSX)
	}

	f, err := excelize.OpenReader(bytes.NewReader(blob.Data))
	if err != nil {
		t.Fatalf("OpenReader() failed: %v", err)
	}
	defer f.Close()

	if sheets := f.GetSheetList(); len(sheets) != 1 || sheets[0] != "Dados" {
		t.Errorf("GetSheetList() = %v, want [Dados]", sheets)
	}
	rows, err := f.GetRows("Dados")
	if err != nil {
		t.Fatalf("GetRows() failed: %v", err)
	}
	if len(rows) != len(data)+1 {
		t.Errorf("rows = %d, want %d", len(rows), len(data)+1)
	}

	props, err := f.GetDocProps()
	if err != nil {
		t.Fatalf("GetDocProps() failed: %v", err)
	}
	if props.Title != "relatorio-treinamentos" {
		t.Errorf("Title = %q, want %q", props.Title, "relatorio-treinamentos")
	}
	if props.Created != "2024-11-02T15:04:05Z" {
		t.Errorf("Created = %q, want %q", props.Created, "2024-11-02T15:04:05Z")
	}
}

// TestExporter_WorkbookOptions tests a configured sheet name.
func TestExporter_WorkbookOptions(t *testing.T) {
	saver := NewMemorySaver()
	exporter := New(saver, WithWorkbook(WorkbookOptions{SheetName: "Treinos", Author: "Equipe"}))

	if _, err := exporter.Export(context.Background(), Request{
		Filename: "t",
		Format:   FormatXLSX,
		Data:     sampleRecords(),
	}); err != nil {
		t.Fatalf("Export() failed: %v", err)
	}

	blob, _ := saver.Last()
	f, err := excelize.OpenReader(bytes.NewReader(blob.Data))
	if err != nil {
		t.Fatalf("OpenReader() failed: %v", err)
	}
	defer f.Close()
	if sheets := f.GetSheetList(); len(sheets) != 1 || sheets[0] != "Treinos" {
		t.Errorf("GetSheetList() = %v, want [Treinos]", sheets)
	}
}

// TestExporter_UnsupportedFormat tests that unknown formats fail instead of
// silently producing nothing.
func TestExporter_UnsupportedFormat(t *testing.T) {
	saver := NewMemorySaver()
	obs := &fakeObserver{}
	exporter := New(saver, WithObserver(obs))

	_, err := exporter.Export(context.Background(), Request{
		Filename: "x",
		Format:   Format("pdf"),
		Data:     []Record{{{"a", 1}}},
	})

	var formatErr *UnsupportedFormatError
	if !errors.As(err, &formatErr) {
		t.Fatalf("expected *UnsupportedFormatError, got %v", err)
	}
	if formatErr.Format != "pdf" {
		t.Errorf("Format = %q, want %q", formatErr.Format, "pdf")
	}
	if saver.Len() != 0 {
		t.Errorf("saver received %d blobs, want 0", saver.Len())
	}
	if len(obs.outcomes) != 1 || obs.outcomes[0].outcome != OutcomeUnsupportedFormat {
		t.Errorf("outcomes = %+v", obs.outcomes)
	}
}

// TestExporter_EncodingFailureIsLoggedAndReturned tests that a rendering
// failure is logged with its cause and returned as *EncodingError.
func TestExporter_EncodingFailureIsLoggedAndReturned(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))
	saver := NewMemorySaver()
	obs := &fakeObserver{}
	exporter := New(saver, WithLogger(logger), WithObserver(obs))

	for _, format := range []Format{FormatCSV, FormatXLSX} {
		logs.Reset()
		_, err := exporter.Export(context.Background(), Request{
			Filename: "falha",
			Format:   format,
			Data:     []Record{{{"worker", map[string]any{"name": "João"}}}},
		})

		var encErr *EncodingError
		if !errors.As(err, &encErr) {
			t.Fatalf("format %s: expected *EncodingError, got %v", format, err)
		}
		if encErr.Format != format.String() || encErr.RecordCount != 1 {
			t.Errorf("EncodingError = %+v", encErr)
		}
		if !errors.Is(err, ErrUnsupportedValue) {
			t.Errorf("format %s: expected cause ErrUnsupportedValue, got %v", format, err)
		}
		if !strings.Contains(logs.String(), "export failed") {
			t.Errorf("format %s: expected failure to be logged, got %q", format, logs.String())
		}
	}

	if saver.Len() != 0 {
		t.Errorf("saver received %d blobs, want 0", saver.Len())
	}
	if len(obs.outcomes) != 2 || obs.outcomes[0].outcome != OutcomeFailed {
		t.Errorf("outcomes = %+v", obs.outcomes)
	}
}

// TestExporter_SaveFailure tests that saver errors surface as
// *EncodingError.
func TestExporter_SaveFailure(t *testing.T) {
	saveErr := errors.New("disk full")
	exporter := New(SaverFunc(func(context.Context, Blob) error { return saveErr }),
		WithLogger(discardLogger()))

	_, err := exporter.Export(context.Background(), Request{
		Filename: "x",
		Format:   FormatJSON,
		Data:     []Record{{{"a", 1}}},
	})

	var encErr *EncodingError
	if !errors.As(err, &encErr) {
		t.Fatalf("expected *EncodingError, got %v", err)
	}
	if !errors.Is(err, saveErr) {
		t.Errorf("expected errors.Is(err, saveErr), got %v", err)
	}
}

func TestExporter_DefaultFilename(t *testing.T) {
	saver := NewMemorySaver()
	if err := ExportToFile(context.Background(), saver, Request{
		Format: FormatCSV,
		Data:   []Record{{{"a", 1}}},
	}); err != nil {
		t.Fatalf("ExportToFile() failed: %v", err)
	}
	blob, _ := saver.Last()
	if blob.Name != "export.csv" {
		t.Errorf("Name = %q, want %q", blob.Name, "export.csv")
	}
}

// TestExporter_Concurrent tests that concurrent exports are independent.
func TestExporter_Concurrent(t *testing.T) {
	saver := NewMemorySaver()
	obs := &fakeObserver{}
	exporter := New(saver, WithObserver(obs))

	const n = 20
	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			format := Formats()[i%len(Formats())]
			_, err := exporter.Export(context.Background(), Request{
				Filename: "lote",
				Format:   format,
				Data:     []Record{{{"i", i}}},
			})
			errs <- err
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		if err != nil {
			t.Errorf("Export() failed: %v", err)
		}
	}
	if saver.Len() != n {
		t.Errorf("saved %d blobs, want %d", saver.Len(), n)
	}
	if len(obs.outcomes) != n {
		t.Errorf("observed %d outcomes, want %d", len(obs.outcomes), n)
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"csv", FormatCSV, false},
		{"JSON", FormatJSON, false},
		{".xlsx", FormatXLSX, false},
		{" xlsx ", FormatXLSX, false},
		{"xls", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseFormat(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
