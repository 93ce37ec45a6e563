package export

import (
	"errors"
	"fmt"
)

// ErrEmptyData is matched by every EmptyDataError via errors.Is.
var ErrEmptyData = errors.New("no data to export")

// ErrUnsupportedValue is returned when a record field holds a value that
// has no scalar rendering (maps, slices, structs, channels, ...).
var ErrUnsupportedValue = errors.New("unsupported field value")

// EmptyDataError is returned before any encoding starts when the request
// carries no records.
type EmptyDataError struct {
	Filename string
}

// Error implements the error interface.
func (e *EmptyDataError) Error() string {
	if e.Filename != "" {
		return fmt.Sprintf("%s [filename=%s]", ErrEmptyData.Error(), e.Filename)
	}
	return ErrEmptyData.Error()
}

// Is reports whether target is ErrEmptyData.
func (e *EmptyDataError) Is(target error) bool {
	return target == ErrEmptyData
}

// NewEmptyDataError creates a new EmptyDataError.
func NewEmptyDataError(filename string) *EmptyDataError {
	return &EmptyDataError{Filename: filename}
}

// UnsupportedFormatError represents a format value outside csv, json and xlsx.
type UnsupportedFormatError struct {
	Format string
}

// Error implements the error interface.
func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported export format %q (supported: csv, json, xlsx)", e.Format)
}

// NewUnsupportedFormatError creates a new UnsupportedFormatError.
func NewUnsupportedFormatError(format string) *UnsupportedFormatError {
	return &UnsupportedFormatError{Format: format}
}

// EncodingError represents a failure while rendering, serializing or saving
// an export.
type EncodingError struct {
	Format      string // Export format ("csv", "json", "xlsx")
	RecordCount int    // Number of records being exported
	Cause       error  // Underlying error
}

// Error implements the error interface.
func (e *EncodingError) Error() string {
	return fmt.Sprintf("export error [format=%s, record_count=%d]: %v", e.Format, e.RecordCount, e.Cause)
}

// Unwrap returns the underlying cause error.
func (e *EncodingError) Unwrap() error {
	return e.Cause
}

// NewEncodingError creates a new EncodingError.
func NewEncodingError(format string, recordCount int, cause error) *EncodingError {
	return &EncodingError{
		Format:      format,
		RecordCount: recordCount,
		Cause:       cause,
	}
}

// FieldValueError identifies the record field whose value could not be
// rendered.
type FieldValueError struct {
	Row   int
	Field string
	Value any
}

// Error implements the error interface.
func (e *FieldValueError) Error() string {
	return fmt.Sprintf("row %d field %q: %v (%T)", e.Row, e.Field, ErrUnsupportedValue, e.Value)
}

// Unwrap returns ErrUnsupportedValue.
func (e *FieldValueError) Unwrap() error {
	return ErrUnsupportedValue
}
