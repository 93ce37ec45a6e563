package dashboard

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"portvr/painel/pkg/export"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		name         string
		wantFilename string
		wantLen      int
	}{
		{"workers", "trabalhadores", 5},
		{"trainings", "treinamentos-ativos", 5},
		{"performance", "desempenho", 7},
		{" History ", "relatorio-treinamentos", 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds, err := Lookup(tt.name)
			if err != nil {
				t.Fatalf("Lookup() failed: %v", err)
			}
			if ds.Filename != tt.wantFilename {
				t.Errorf("Filename = %q, want %q", ds.Filename, tt.wantFilename)
			}
			if ds.Len() != tt.wantLen {
				t.Errorf("Len() = %d, want %d", ds.Len(), tt.wantLen)
			}
		})
	}
}

func TestLookup_Unknown(t *testing.T) {
	_, err := Lookup("notifications")
	var unknown *UnknownDatasetError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected UnknownDatasetError, got %v", err)
	}
	if unknown.Name != "notifications" {
		t.Errorf("Name = %q, want %q", unknown.Name, "notifications")
	}
}

func TestNames(t *testing.T) {
	want := []string{"history", "performance", "trainings", "workers"}
	if diff := cmp.Diff(want, Names()); diff != "" {
		t.Errorf("Names() mismatch (-want +got):\n%s", diff)
	}
}

// TestWorkers_SharedColumns tests that workers without training progress
// still carry the progress columns, as nil values.
func TestWorkers_SharedColumns(t *testing.T) {
	records, err := Records(DatasetWorkers, Filter{})
	if err != nil {
		t.Fatalf("Records() failed: %v", err)
	}

	first := records[0].Keys()
	for i, rec := range records {
		if diff := cmp.Diff(first, rec.Keys()); diff != "" {
			t.Errorf("record %d columns mismatch (-want +got):\n%s", i, diff)
		}
	}

	lucia := records[3]
	if v, _ := lucia.Get("name"); v != "Lucia Pereira" {
		t.Fatalf("records[3] name = %v, want Lucia Pereira", v)
	}
	if v, ok := lucia.Get("currentModule"); !ok || v != nil {
		t.Errorf("currentModule = %v, %v, want nil, true", v, ok)
	}
}

func TestRecords_Search(t *testing.T) {
	tests := []struct {
		dataset string
		search  string
		wantIDs []string
	}{
		{DatasetWorkers, "", []string{"w1", "w2", "w3", "w4", "w5"}},
		{DatasetWorkers, "MANUSEIO", []string{"w1", "w5"}},
		{DatasetWorkers, "inspetor", []string{"w3"}},
		{DatasetHistory, "roberto", []string{"h1", "h6"}},
		{DatasetHistory, "segurança", []string{"h1", "h7"}},
		{DatasetTrainings, "cargo", []string{"t1", "t5"}},
		{DatasetHistory, "ninguém", nil},
	}

	for _, tt := range tests {
		t.Run(tt.dataset+"/"+tt.search, func(t *testing.T) {
			records, err := Records(tt.dataset, Filter{Search: tt.search})
			if err != nil {
				t.Fatalf("Records() failed: %v", err)
			}
			var ids []string
			for _, rec := range records {
				id, _ := rec.Get("id")
				ids = append(ids, id.(string))
			}
			if diff := cmp.Diff(tt.wantIDs, ids); diff != "" {
				t.Errorf("ids mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// TestHistory_DateFilter tests calendar-day filtering and the filename
// suffix of date-filtered exports.
func TestHistory_DateFilter(t *testing.T) {
	ds, err := Lookup(DatasetHistory)
	if err != nil {
		t.Fatalf("Lookup() failed: %v", err)
	}

	day := time.Date(2023, 7, 14, 16, 30, 0, 0, time.Local)
	f := Filter{Date: &day}

	req, err := ds.Request(export.FormatXLSX, f)
	if err != nil {
		t.Fatalf("Request() failed: %v", err)
	}
	if req.Filename != "relatorio-treinamentos-14-07-2023" {
		t.Errorf("Filename = %q, want %q", req.Filename, "relatorio-treinamentos-14-07-2023")
	}
	if len(req.Data) != 1 {
		t.Fatalf("expected 1 record, got %d", len(req.Data))
	}
	if id, _ := req.Data[0].Get("id"); id != "h2" {
		t.Errorf("id = %v, want h2", id)
	}
	if req.Format != export.FormatXLSX {
		t.Errorf("Format = %q, want xlsx", req.Format)
	}
}

func TestRecords_DateFilterUnsupported(t *testing.T) {
	day := time.Now()
	_, err := Records(DatasetPerformance, Filter{Date: &day})
	if !errors.Is(err, ErrDateFilterUnsupported) {
		t.Errorf("expected ErrDateFilterUnsupported, got %v", err)
	}
}

// TestRecords_EmptyResultIsRejectedByExporter tests that a filter matching
// nothing yields an export request the exporter refuses.
func TestRecords_EmptyResultIsRejectedByExporter(t *testing.T) {
	ds, _ := Lookup(DatasetHistory)
	req, err := ds.Request(export.FormatCSV, Filter{Search: "zzz"})
	if err != nil {
		t.Fatalf("Request() failed: %v", err)
	}

	exp := export.New(export.NewMemorySaver())
	if _, err := exp.Export(t.Context(), req); !errors.Is(err, export.ErrEmptyData) {
		t.Errorf("expected ErrEmptyData, got %v", err)
	}
}

func TestParseDate(t *testing.T) {
	for _, in := range []string{"2023-07-14", "14/07/2023", "14-07-2023"} {
		got, err := ParseDate(in)
		if err != nil {
			t.Fatalf("ParseDate(%q) failed: %v", in, err)
		}
		if y, m, d := got.Date(); y != 2023 || m != time.July || d != 14 {
			t.Errorf("ParseDate(%q) = %v", in, got)
		}
	}
	if _, err := ParseDate("julho"); err == nil {
		t.Error("expected error for invalid date")
	}
}

func TestExportHistoryCSV(t *testing.T) {
	records, err := Records(DatasetHistory, Filter{Search: "lucia"})
	if err != nil {
		t.Fatalf("Records() failed: %v", err)
	}
	out, err := export.EncodeCSV(records)
	if err != nil {
		t.Fatalf("EncodeCSV() failed: %v", err)
	}
	want := export.ByteOrderMark +
		"id;workerName;trainingModule;completionDate;duration;score;status\n" +
		"h7;Lucia Pereira;Segurança no Cais;2023-07-03;50m;95;completed"
	if out != want {
		t.Errorf("EncodeCSV() = %q, want %q", out, want)
	}
}

func TestRecordsByName(t *testing.T) {
	recs, err := Records("HISTORY", Filter{Search: "roberto"})
	if err != nil {
		t.Fatalf("Records() failed: %v", err)
	}
	var ids []string
	for _, rec := range recs {
		id, _ := rec.Get("id")
		ids = append(ids, id.(string))
	}
	if diff := cmp.Diff([]string{"h1", "h6"}, ids); diff != "" {
		t.Errorf("Records() ids mismatch (-want +got):\n%s", diff)
	}

	var unknown *UnknownDatasetError
	if _, err := Records("salarios", Filter{}); !errors.As(err, &unknown) {
		t.Errorf("Records(salarios) error = %v, want UnknownDatasetError", err)
	}
}
