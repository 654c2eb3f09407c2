package delim

import "strings"

// Formatter serializes rows or records back into delimiter-separated text.
// Every emitted row is terminated with '\n', including the last one, so
// output can be appended to an existing file without joining logic.
type Formatter struct {
	// Comma is the field delimiter. Zero means ','.
	Comma rune
}

// Table serializes rows, preceded by header when it is non-empty.
func (f Formatter) Table(rows [][]string, header []string) string {
	comma := f.Comma
	if comma == 0 {
		comma = defaultComma
	}
	sep := string(comma)

	var b strings.Builder
	if len(header) > 0 {
		b.WriteString(strings.Join(header, sep))
		b.WriteByte('\n')
	}
	for _, row := range rows {
		b.WriteString(strings.Join(row, sep))
		b.WriteByte('\n')
	}
	return b.String()
}

// Records serializes records under a header built from the union of all
// record keys in first-seen order. Keys absent from a record serialize as
// empty strings.
func (f Formatter) Records(records []*Record) string {
	var header []string
	seen := make(map[string]struct{})
	for _, rec := range records {
		for _, key := range rec.Keys() {
			if _, ok := seen[key]; !ok {
				seen[key] = struct{}{}
				header = append(header, key)
			}
		}
	}

	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		row := make([]string, len(header))
		for i, key := range header {
			row[i], _ = rec.Get(key)
		}
		rows = append(rows, row)
	}
	return f.Table(rows, header)
}
