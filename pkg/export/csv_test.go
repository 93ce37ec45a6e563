package export

import (
	"encoding/csv"
	"errors"
	"strings"
	"testing"
	"time"
)

// TestEncodeCSV_Scenario tests the canonical two-row example, including
// the byte-order mark and quoting of a value with a semicolon.
func TestEncodeCSV_Scenario(t *testing.T) {
	data := []Record{
		{{"nome", "João"}, {"idade", 30}},
		{{"nome", "Ana; Bela"}, {"idade", 25}},
	}

	got, err := EncodeCSV(data)
	if err != nil {
		t.Fatalf("EncodeCSV() failed: %v", err)
	}

	want := "\uFEFFnome;idade\nJoão;30\n\"Ana; Bela\";25"
	if got != want {
		t.Errorf("EncodeCSV() = %q, want %q", got, want)
	}
}

// TestEncodeCSV_Empty tests that an empty slice encodes to an empty string.
func TestEncodeCSV_Empty(t *testing.T) {
	for _, data := range [][]Record{nil, {}} {
		got, err := EncodeCSV(data)
		if err != nil {
			t.Fatalf("EncodeCSV() failed: %v", err)
		}
		if got != "" {
			t.Errorf("EncodeCSV(%v) = %q, want empty string", data, got)
		}
	}
}

// TestEncodeCSV_HeaderFromFirstRecord tests that the first record decides
// the columns: later extra keys are dropped and missing keys are blank.
func TestEncodeCSV_HeaderFromFirstRecord(t *testing.T) {
	data := []Record{
		{{"id", "w1"}, {"name", "Roberto"}, {"department", "Cargas"}},
		{{"name", "Carla"}, {"id", "w2"}, {"extra", "ignored"}},
	}

	got, err := EncodeCSV(data)
	if err != nil {
		t.Fatalf("EncodeCSV() failed: %v", err)
	}

	lines := strings.Split(got, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d: %q", len(lines), got)
	}
	if lines[0] != ByteOrderMark+"id;name;department" {
		t.Errorf("header = %q, want %q", lines[0], ByteOrderMark+"id;name;department")
	}
	if lines[2] != "w2;Carla;" {
		t.Errorf("second row = %q, want %q", lines[2], "w2;Carla;")
	}
	if strings.Contains(got, "ignored") {
		t.Error("fields absent from the first record must not be exported")
	}
}

// TestEncodeCSV_Values tests rendering of every scalar kind.
func TestEncodeCSV_Values(t *testing.T) {
	type status string
	completion := time.Date(2023, 7, 15, 10, 30, 0, 0, time.UTC)
	var nilPtr *string
	name := "Lucia"

	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"nil", nil, ""},
		{"nil pointer", nilPtr, ""},
		{"pointer", &name, "Lucia"},
		{"empty string", "", ""},
		{"zero", 0, "0"},
		{"false", false, "false"},
		{"true", true, "true"},
		{"negative int", int64(-12), "-12"},
		{"uint", uint8(7), "7"},
		{"float", 92.5, "92.5"},
		{"whole float", 75.0, "75"},
		{"float32", float32(0.25), "0.25"},
		{"float32 shortest", float32(0.1), "0.1"},
		{"small exponent", 1e-7, "1e-7"},
		{"small mantissa exponent", -2.5e-8, "-2.5e-8"},
		{"large exponent", 1e21, "1e+21"},
		{"below exponent threshold", 123456789012345680000.0, "123456789012345680000"},
		{"named string", status("completed"), "completed"},
		{"time", completion, "2023-07-15T10:30:00Z"},
		{"semicolon", "a;b", `"a;b"`},
		{"quote", `diz "olá"`, `"diz ""olá"""`},
		{"newline", "linha 1\nlinha 2", "\"linha 1\nlinha 2\""},
		{"comma is plain", "a, b", "a, b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EncodeCSV([]Record{{{"v", tt.value}}})
			if err != nil {
				t.Fatalf("EncodeCSV() failed: %v", err)
			}
			want := ByteOrderMark + "v\n" + tt.want
			if got != want {
				t.Errorf("EncodeCSV(%v) = %q, want %q", tt.value, got, want)
			}
		})
	}
}

// TestEncodeCSV_QuotingRoundTrip tests that a standard semicolon CSV reader
// recovers values containing delimiters, quotes and newlines exactly.
func TestEncodeCSV_QuotingRoundTrip(t *testing.T) {
	values := []string{
		"plain",
		"semi;colon",
		`"quoted"`,
		`mid "quote" here`,
		"multi\nline",
		`all; of "them"` + "\ntogether",
		"",
	}

	data := make([]Record, len(values))
	for i, v := range values {
		data[i] = Record{{"id", i}, {"text", v}}
	}

	out, err := EncodeCSV(data)
	if err != nil {
		t.Fatalf("EncodeCSV() failed: %v", err)
	}

	r := csv.NewReader(strings.NewReader(strings.TrimPrefix(out, ByteOrderMark)))
	r.Comma = ';'
	rows, err := r.ReadAll()
	if err != nil {
		t.Fatalf("csv.ReadAll() failed: %v", err)
	}

	if len(rows) != len(values)+1 {
		t.Fatalf("expected %d rows, got %d", len(values)+1, len(rows))
	}
	for i, v := range values {
		if got := rows[i+1][1]; got != v {
			t.Errorf("row %d text = %q, want %q", i, got, v)
		}
	}
}

// TestEncodeCSV_UnsupportedValue tests that non-scalar values fail with the
// offending field identified.
func TestEncodeCSV_UnsupportedValue(t *testing.T) {
	data := []Record{
		{{"id", "t1"}, {"worker", map[string]string{"name": "João"}}},
	}

	_, err := EncodeCSV(data)
	if err == nil {
		t.Fatal("expected error for nested value")
	}

	var fieldErr *FieldValueError
	if !errors.As(err, &fieldErr) {
		t.Fatalf("expected *FieldValueError, got %T", err)
	}
	if fieldErr.Field != "worker" || fieldErr.Row != 0 {
		t.Errorf("FieldValueError = {Row: %d, Field: %q}, want {Row: 0, Field: %q}", fieldErr.Row, fieldErr.Field, "worker")
	}
}
