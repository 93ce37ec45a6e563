package export

import (
	"strings"
)

const (
	// CSVDelimiter separates cells. Semicolons open correctly in spreadsheet
	// applications configured for comma decimal separators.
	CSVDelimiter = ";"

	// ByteOrderMark prefixes text exports so spreadsheet applications detect
	// UTF-8 and render accented characters.
	ByteOrderMark = "\uFEFF"
)

// EncodeCSV renders records as semicolon-delimited CSV.
//
// The header row holds the keys of the first record and is prefixed with a
// byte-order mark. Every row renders the header fields in the same order:
// missing and nil values are empty cells, strings containing a semicolon, a
// double quote or a newline are quoted with inner quotes doubled, and all
// other scalars use their plain text form. Lines are joined with "\n" and
// the result has no trailing newline. An empty slice encodes to "".
func EncodeCSV(data []Record) (string, error) {
	if len(data) == 0 {
		return "", nil
	}

	headers := data[0].Keys()

	var sb strings.Builder
	sb.WriteString(ByteOrderMark)
	sb.WriteString(strings.Join(headers, CSVDelimiter))

	for row, rec := range data {
		sb.WriteByte('\n')
		for col, name := range headers {
			if col > 0 {
				sb.WriteString(CSVDelimiter)
			}
			v, err := fieldValue(rec, row, name)
			if err != nil {
				return "", err
			}
			if s, ok := v.(string); ok {
				sb.WriteString(quoteCSV(s))
				continue
			}
			sb.WriteString(cellText(v))
		}
	}

	return sb.String(), nil
}

// quoteCSV wraps s in double quotes when it contains a delimiter, a quote
// or a newline.
func quoteCSV(s string) string {
	if !strings.ContainsAny(s, CSVDelimiter+"\"\n") {
		return s
	}
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
