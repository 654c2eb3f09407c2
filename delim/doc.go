// Package delim parses and formats delimiter-separated text (CSV, TSV).
//
// The package is deliberately lenient: rows are independent, a row shorter
// than the header pads with empty strings, and malformed input never
// produces an error. Fields are normalized by trimming whitespace along
// with the non-breaking space (U+00A0) and byte order mark (U+FEFF)
// characters that frequently leak into exported spreadsheets.
//
// There is no quoting or escaping support; a field containing the
// delimiter cannot be represented. Inputs are processed whole, not
// streamed.
//
// Example Usage:
//
//	p := delim.Parser{Comma: '\t'}
//	records := p.Records(text)
//	for _, rec := range records {
//		v, _ := rec.Get("name")
//	}
package delim
