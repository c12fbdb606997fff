package importers

import (
	"strings"
)

const utf8BOM = "\ufeff"

// RawRow maps a normalized header key to the cell value. An empty value
// means the cell was absent.
type RawRow map[string]string

// Get returns the trimmed value for key, or "".
func (r RawRow) Get(key string) string {
	return strings.TrimSpace(r[key])
}

// Tokenize splits CSV text into header-keyed rows. Blank lines are skipped
// and the first remaining line is the header. A header-only or empty input
// yields no rows.
//
// Quoted fields may contain commas and doubled quotes, but not line breaks:
// every physical line is one record.
func Tokenize(text string) []RawRow {
	text = strings.TrimPrefix(text, utf8BOM)

	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	if len(lines) < 2 {
		return nil
	}

	headers := splitLine(lines[0])
	for i, h := range headers {
		headers[i] = NormalizeHeader(h)
	}

	rows := make([]RawRow, 0, len(lines)-1)
	for _, line := range lines[1:] {
		values := splitLine(line)
		row := make(RawRow, len(headers))
		for i, key := range headers {
			if key == "" {
				continue
			}
			var value string
			if i < len(values) {
				value = values[i]
			}
			// Repeated headers keep the first non-empty value.
			if existing, ok := row[key]; ok && (existing != "" || value == "") {
				continue
			}
			row[key] = value
		}
		rows = append(rows, row)
	}
	return rows
}

// NormalizeHeader trims and lowercases a header cell and joins its words
// with underscores: " First Name " becomes "first_name".
func NormalizeHeader(h string) string {
	return strings.Join(strings.Fields(strings.ToLower(h)), "_")
}

// splitLine tokenizes one record. A double quote toggles quoted mode, in
// which commas are literal and "" is an escaped quote.
func splitLine(line string) []string {
	var (
		fields   []string
		field    strings.Builder
		inQuotes bool
	)

	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case c == '"' && inQuotes && i+1 < len(line) && line[i+1] == '"':
			field.WriteByte('"')
			i++
		case c == '"':
			inQuotes = !inQuotes
		case c == ',' && !inQuotes:
			fields = append(fields, strings.TrimSpace(field.String()))
			field.Reset()
		default:
			field.WriteByte(c)
		}
	}
	return append(fields, strings.TrimSpace(field.String()))
}
