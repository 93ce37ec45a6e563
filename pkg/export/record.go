package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Field is a single named value of a record.
type Field struct {
	Name  string
	Value any
}

// Record is one exportable row. Field order is significant: the first
// record of an export decides the column order of the whole file.
type Record []Field

// RecordFromMap builds a record from m using the given key order. Keys of m
// that are not listed in order are dropped; listed keys missing from m are
// kept with a nil value.
func RecordFromMap(m map[string]any, order []string) Record {
	rec := make(Record, 0, len(order))
	for _, name := range order {
		rec = append(rec, Field{Name: name, Value: m[name]})
	}
	return rec
}

// Keys returns the field names in order.
func (r Record) Keys() []string {
	keys := make([]string, len(r))
	for i, f := range r {
		keys[i] = f.Name
	}
	return keys
}

// Get returns the value stored under name.
func (r Record) Get(name string) (any, bool) {
	for _, f := range r {
		if f.Name == name {
			return f.Value, true
		}
	}
	return nil, false
}

// Set replaces the value of an existing field in place or appends a new
// field at the end, and returns the updated record.
func (r Record) Set(name string, value any) Record {
	for i := range r {
		if r[i].Name == name {
			r[i].Value = value
			return r
		}
	}
	return append(r, Field{Name: name, Value: value})
}

// MarshalJSON encodes the record as a JSON object with fields in record
// order. HTML characters are not escaped.
func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range r {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeJSONValue(&buf, f.Name); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		if err := writeJSONValue(&buf, f.Value); err != nil {
			return nil, fmt.Errorf("field %q: %w", f.Name, err)
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object keeping the document's key order.
// Numbers are decoded as json.Number.
func (r *Record) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		*r = nil
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("record must be a JSON object, got %v", tok)
	}

	rec := Record{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		name, ok := tok.(string)
		if !ok {
			return fmt.Errorf("unexpected object key %v", tok)
		}
		var value any
		if err := dec.Decode(&value); err != nil {
			return fmt.Errorf("field %q: %w", name, err)
		}
		rec = rec.Set(name, value)
	}
	if _, err := dec.Token(); err != nil {
		return err
	}

	*r = rec
	return nil
}

// ReadRecords decodes a JSON array of objects from rd.
func ReadRecords(rd io.Reader) ([]Record, error) {
	var records []Record
	dec := json.NewDecoder(rd)
	if err := dec.Decode(&records); err != nil {
		return nil, fmt.Errorf("failed to decode records: %w", err)
	}
	return records, nil
}

// ReadRecordFile decodes the JSON array of objects stored at path.
func ReadRecordFile(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %q: %w", path, err)
	}
	defer f.Close()

	records, err := ReadRecords(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read records from %q: %w", path, err)
	}
	return records, nil
}

func writeJSONValue(buf *bytes.Buffer, v any) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return err
	}
	// Encode always terminates with a newline.
	buf.Truncate(buf.Len() - 1)
	return nil
}
