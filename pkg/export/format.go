package export

import "strings"

// Format is the output format of an export.
type Format string

const (
	// FormatCSV is semicolon-delimited CSV with a UTF-8 byte-order mark.
	FormatCSV Format = "csv"
	// FormatJSON is a 2-space indented JSON array of objects.
	FormatJSON Format = "json"
	// FormatXLSX is a single-sheet Office Open XML workbook.
	FormatXLSX Format = "xlsx"
)

// MIME types handed to the saver with each blob.
const (
	ContentTypeCSV  = "text/csv;charset=utf-8"
	ContentTypeJSON = "application/json;charset=utf-8"
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// Formats returns every supported format in a stable order.
func Formats() []Format {
	return []Format{FormatCSV, FormatJSON, FormatXLSX}
}

// ParseFormat converts a user supplied string into a Format. Matching is
// case-insensitive and ignores a leading dot.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), ".")))
	if !f.Valid() {
		return "", NewUnsupportedFormatError(s)
	}
	return f, nil
}

// Valid reports whether f is one of the supported formats.
func (f Format) Valid() bool {
	switch f {
	case FormatCSV, FormatJSON, FormatXLSX:
		return true
	}
	return false
}

// Extension returns the file extension without the dot.
func (f Format) Extension() string {
	return string(f)
}

// ContentType returns the MIME type of the encoded payload.
func (f Format) ContentType() string {
	switch f {
	case FormatCSV:
		return ContentTypeCSV
	case FormatJSON:
		return ContentTypeJSON
	case FormatXLSX:
		return ContentTypeXLSX
	default:
		return "application/octet-stream"
	}
}

// String implements fmt.Stringer.
func (f Format) String() string {
	return string(f)
}
