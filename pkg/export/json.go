package export

import (
	"bytes"
	"encoding/json"
)

// EncodeJSON renders records as a JSON array indented with two spaces.
// Field order within each record and record order are preserved, and HTML
// characters are left unescaped. The output has no trailing newline.
func EncodeJSON(data []Record) ([]byte, error) {
	if data == nil {
		data = []Record{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		return nil, err
	}

	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
