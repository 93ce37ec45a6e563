// Package export turns in-memory tables into downloadable files.
//
// # Records
//
// A Record is an ordered list of named scalar values. All records of one
// export share the field set of the first record: extra fields of later
// records are ignored and missing ones render as empty cells.
//
// # Formats
//
//   - CSV: UTF-8 with a leading byte-order mark, ";" delimiter, "\n" line
//     breaks, quoting only for values containing ";", '"' or a newline
//   - JSON: array of objects indented with two spaces, field order kept
//   - XLSX: one sheet named "Dados" with a styled header row, banded data
//     rows and columns sized to their content
//
// # Exporting
//
//	exporter := export.New(export.NewDirSaver("out"))
//	result, err := exporter.Export(ctx, export.Request{
//	    Filename: "trabalhadores",
//	    Format:   export.FormatXLSX,
//	    Data:     records,
//	})
//
// The Saver receives the encoded Blob and decides where it goes: a
// directory, a writer such as stdout, or memory.
//
// # Error Handling
//
// Export returns:
//
//   - *EmptyDataError when Data is empty, before anything is encoded
//   - *UnsupportedFormatError for formats other than csv, json and xlsx
//   - *EncodingError wrapping the cause of any encoding or save failure,
//     after logging it
//
// No failure is retried.
package export
