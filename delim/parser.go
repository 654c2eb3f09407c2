package delim

import (
	"strings"
	"unicode"
)

const defaultComma = ','

// Parser splits delimiter-separated text into rows of normalized fields.
type Parser struct {
	// Comma is the field delimiter. Zero means ','.
	Comma rune
	// HasHeader marks the first row as a header. Table excludes it from
	// the returned rows; Records always treats the first row as a header
	// regardless of this flag.
	HasHeader bool
}

// Table parses text into rows of string fields. Rows are not validated
// for equal length and malformed input never produces an error.
func (p Parser) Table(text string) [][]string {
	rows := p.split(text)
	if p.HasHeader && len(rows) > 0 {
		rows = rows[1:]
	}
	return rows
}

// Records parses text whose first row is a header and pairs every
// subsequent row with it positionally. A row shorter than the header pads
// the missing keys with empty strings; fields beyond the header width are
// dropped.
func (p Parser) Records(text string) []*Record {
	rows := p.split(text)
	if len(rows) == 0 {
		return nil
	}
	header := rows[0]
	records := make([]*Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		rec := NewRecord()
		for i, key := range header {
			if i < len(row) {
				rec.Set(key, row[i])
			} else {
				rec.Set(key, "")
			}
		}
		records = append(records, rec)
	}
	return records
}

func (p Parser) split(text string) [][]string {
	if text == "" {
		return nil
	}

	comma := p.Comma
	if comma == 0 {
		comma = defaultComma
	}

	lines := strings.Split(text, "\n")
	// A final newline yields a single empty trailing segment, not a row.
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	rows := make([][]string, 0, len(lines))
	for _, line := range lines {
		fields := strings.Split(line, string(comma))
		for i, field := range fields {
			fields[i] = Clean(field)
		}
		rows = append(rows, fields)
	}
	return rows
}

// Clean trims whitespace from both ends of field, including the
// non-breaking space (U+00A0) and byte order mark (U+FEFF) characters
// that spreadsheet exports tend to smuggle into cells.
func Clean(field string) string {
	return strings.TrimFunc(field, func(r rune) bool {
		// unicode.IsSpace covers U+00A0; U+FEFF is not a space rune.
		return r == '\ufeff' || unicode.IsSpace(r)
	})
}
