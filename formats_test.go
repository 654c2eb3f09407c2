package fskit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/filecraft/fskit/delim"
)

func TestWriteReadCSV(t *testing.T) {
	t.Parallel()

	ops := newTestOps()
	dir := t.TempDir()

	rows := [][]string{{"1", "2"}, {"3", "4"}}
	require.NoError(t, ops.WriteCSV(rows, []string{"a", "b"}, dir, "data.csv"))

	text, err := ops.Read(dir, "data.csv")
	require.NoError(t, err)
	assert.Equal(t, "a,b\n1,2\n3,4\n", text)

	got, err := ops.ReadCSV(dir, "data.csv", true, 0)
	require.NoError(t, err)
	assert.Equal(t, rows, got)

	withHeader, err := ops.ReadCSV(dir, "data.csv", false, 0)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"a", "b"}, {"1", "2"}, {"3", "4"}}, withHeader)
}

func TestReadCSVCustomDelimiter(t *testing.T) {
	t.Parallel()

	ops := newTestOps()
	dir := t.TempDir()

	require.NoError(t, ops.Write("a\tb\nc\td\n", dir, "data.tsv"))

	got, err := ops.ReadCSV(dir, "data.tsv", false, '\t')
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"a", "b"}, {"c", "d"}}, got)
}

func TestAppendCSVDoesNotRepeatHeader(t *testing.T) {
	t.Parallel()

	ops := newTestOps()
	dir := t.TempDir()

	require.NoError(t, ops.WriteCSV([][]string{{"1", "2"}}, []string{"a", "b"}, dir, "data.csv"))
	require.NoError(t, ops.AppendCSV([][]string{{"3", "4"}}, dir, "data.csv"))

	text, err := ops.Read(dir, "data.csv")
	require.NoError(t, err)
	assert.Equal(t, "a,b\n1,2\n3,4\n", text)

	rows, err := ops.ReadCSV(dir, "data.csv", true, 0)
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestCSVRecordsRoundTrip(t *testing.T) {
	t.Parallel()

	ops := newTestOps()
	dir := t.TempDir()

	content := "header1,header2\nvalue1,value2\n,value4\n"
	require.NoError(t, ops.Write(content, dir, "data.csv"))

	records, err := ops.CSVToRecords(dir, "data.csv", 0)
	require.NoError(t, err)
	require.Len(t, records, 2)

	v, ok := records[0].Get("header1")
	assert.True(t, ok)
	assert.Equal(t, "value1", v)

	require.NoError(t, ops.RecordsToCSV(records, dir, "copy.csv"))
	text, err := ops.Read(dir, "copy.csv")
	require.NoError(t, err)
	assert.Equal(t, content, text)
}

func TestRecordsToCSVHeterogeneousKeys(t *testing.T) {
	t.Parallel()

	ops := newTestOps()
	dir := t.TempDir()

	rec1 := delim.NewRecord()
	rec1.Set("header1", "value1")
	rec1.Set("header2", "value2")

	rec2 := delim.NewRecord()
	rec2.Set("header2", "value4")

	require.NoError(t, ops.RecordsToCSV([]*delim.Record{rec1, rec2}, dir, "data.csv"))

	text, err := ops.Read(dir, "data.csv")
	require.NoError(t, err)
	assert.Equal(t, "header1,header2\nvalue1,value2\n,value4\n", text)
}

func TestCSVToRecordsMissingFile(t *testing.T) {
	t.Parallel()

	ops := newTestOps()
	_, err := ops.CSVToRecords(t.TempDir(), "absent.csv", 0)
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}

func TestYAMLRoundTrip(t *testing.T) {
	t.Parallel()

	type payload struct {
		Name  string `yaml:"name"`
		Ports []int  `yaml:"ports"`
	}

	ops := newTestOps()
	dir := t.TempDir()

	in := payload{Name: "svc", Ports: []int{80, 443}}
	require.NoError(t, ops.WriteYAML(in, dir, "conf.yaml"))

	var out payload
	require.NoError(t, ops.ReadYAML(dir, "conf.yaml", &out))
	assert.Equal(t, in, out)
}

func TestTOMLRoundTrip(t *testing.T) {
	t.Parallel()

	type payload struct {
		Name    string `toml:"name"`
		Retries int    `toml:"retries"`
	}

	ops := newTestOps()
	dir := t.TempDir()

	in := payload{Name: "svc", Retries: 3}
	require.NoError(t, ops.WriteTOML(in, dir, "conf.toml"))

	var out payload
	require.NoError(t, ops.ReadTOML(dir, "conf.toml", &out))
	assert.Equal(t, in, out)
}
