package fskit

import (
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/pelletier/go-toml/v2"

	"github.com/filecraft/fskit/delim"
)

// ReadCSV reads name inside dir as delimited text and returns its rows.
// When hasHeader is true the header row is excluded from the result.
// A comma of 0 means the configured default delimiter.
func (o *Ops) ReadCSV(dir, name string, hasHeader bool, comma rune) ([][]string, error) {
	text, err := o.Read(dir, name)
	if err != nil {
		return nil, err
	}

	if comma == 0 {
		comma = o.Config.CSV.Rune()
	}
	parser := delim.Parser{Comma: comma, HasHeader: hasHeader}
	return parser.Table(text), nil
}

// WriteCSV writes rows as delimited text to name inside dir, preceded by
// header when it is non-empty.
func (o *Ops) WriteCSV(rows [][]string, header []string, dir, name string) error {
	formatter := delim.Formatter{Comma: o.Config.CSV.Rune()}
	return o.Write(formatter.Table(rows, header), dir, name)
}

// AppendCSV appends rows to the delimited file name inside dir without
// re-emitting a header. The existing header is not validated against the
// new rows.
func (o *Ops) AppendCSV(rows [][]string, dir, name string) error {
	formatter := delim.Formatter{Comma: o.Config.CSV.Rune()}
	return o.Append(formatter.Table(rows, nil), dir, name)
}

// CSVToRecords reads name inside dir as delimited text with a header row
// and returns one record per data row, keyed in header order. A comma of
// 0 means the configured default delimiter.
func (o *Ops) CSVToRecords(dir, name string, comma rune) ([]*delim.Record, error) {
	text, err := o.Read(dir, name)
	if err != nil {
		return nil, err
	}

	if comma == 0 {
		comma = o.Config.CSV.Rune()
	}
	parser := delim.Parser{Comma: comma}
	return parser.Records(text), nil
}

// RecordsToCSV writes records as delimited text to name inside dir. The
// header is the union of record keys in first-seen order.
func (o *Ops) RecordsToCSV(records []*delim.Record, dir, name string) error {
	formatter := delim.Formatter{Comma: o.Config.CSV.Rune()}
	return o.Write(formatter.Records(records), dir, name)
}

// ReadYAML reads name inside dir and unmarshals it into out.
func (o *Ops) ReadYAML(dir, name string, out interface{}) error {
	path := Path(dir, name)
	data, err := o.Backend.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

// WriteYAML writes v as YAML to name inside dir.
func (o *Ops) WriteYAML(v interface{}, dir, name string) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return o.Write(string(data), dir, name)
}

// ReadTOML reads name inside dir and unmarshals it into out.
func (o *Ops) ReadTOML(dir, name string, out interface{}) error {
	path := Path(dir, name)
	data, err := o.Backend.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

// WriteTOML writes v as TOML to name inside dir.
func (o *Ops) WriteTOML(v interface{}, dir, name string) error {
	data, err := toml.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode toml: %w", err)
	}
	return o.Write(string(data), dir, name)
}
