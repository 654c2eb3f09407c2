package fskit

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteRead(t *testing.T) {
	t.Parallel()

	ops := newTestOps()
	dir := t.TempDir()

	require.NoError(t, ops.Write("hello", dir, "greeting.txt"))

	got, err := ops.Read(dir, "greeting.txt")
	require.NoError(t, err)
	assert.Equal(t, "hello", got)
}

func TestWriteCreatesParentDirs(t *testing.T) {
	t.Parallel()

	ops := newTestOps()
	dir := t.TempDir()
	nested := filepath.Join(dir, "a", "b")

	require.NoError(t, ops.Write("x", nested, "f.txt"))
	assert.True(t, ops.Exists(filepath.Join(nested, "f.txt")))
}

func TestWriteOverwrites(t *testing.T) {
	t.Parallel()

	ops := newTestOps()
	dir := t.TempDir()

	require.NoError(t, ops.Write("first", dir, "f.txt"))
	require.NoError(t, ops.Write("second", dir, "f.txt"))

	got, err := ops.Read(dir, "f.txt")
	require.NoError(t, err)
	assert.Equal(t, "second", got)
}

func TestReadMissingFile(t *testing.T) {
	t.Parallel()

	ops := newTestOps()
	dir := t.TempDir()

	_, err := ops.Read(dir, "absent.txt")
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}

func TestAppend(t *testing.T) {
	t.Parallel()

	ops := newTestOps()
	dir := t.TempDir()

	require.NoError(t, ops.Append("one\n", dir, "log.txt"))
	require.NoError(t, ops.Append("two\n", dir, "log.txt"))

	got, err := ops.Read(dir, "log.txt")
	require.NoError(t, err)
	assert.Equal(t, "one\ntwo\n", got)
}

func TestTouch(t *testing.T) {
	t.Parallel()

	ops := newTestOps()
	dir := t.TempDir()

	require.NoError(t, ops.Touch(dir, "empty.txt"))
	got, err := ops.Read(dir, "empty.txt")
	require.NoError(t, err)
	assert.Equal(t, "", got)
}

func TestTouchKeepsExistingContent(t *testing.T) {
	t.Parallel()

	ops := newTestOps()
	dir := t.TempDir()

	require.NoError(t, ops.Write("keep me", dir, "f.txt"))
	require.NoError(t, ops.Touch(dir, "f.txt"))

	got, err := ops.Read(dir, "f.txt")
	require.NoError(t, err)
	assert.Equal(t, "keep me", got)
}

func TestExists(t *testing.T) {
	t.Parallel()

	ops := newTestOps()
	dir := t.TempDir()

	assert.True(t, ops.Exists(dir))
	assert.False(t, ops.Exists(filepath.Join(dir, "absent")))

	require.NoError(t, ops.Touch(dir, "f.txt"))
	assert.True(t, ops.Exists(filepath.Join(dir, "f.txt")))
}

func TestJSONRoundTrip(t *testing.T) {
	t.Parallel()

	type payload struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	ops := newTestOps()
	dir := t.TempDir()

	in := payload{Name: "widget", Count: 7}
	require.NoError(t, ops.WriteJSON(in, dir, "data.json"))

	var out payload
	require.NoError(t, ops.ReadJSON(dir, "data.json", &out))
	assert.Equal(t, in, out)
}

func TestWriteJSONIsIndented(t *testing.T) {
	t.Parallel()

	ops := newTestOps()
	dir := t.TempDir()

	require.NoError(t, ops.WriteJSON(map[string]string{"k": "v"}, dir, "data.json"))

	text, err := ops.Read(dir, "data.json")
	require.NoError(t, err)
	assert.Contains(t, text, "\n")
	assert.Contains(t, text, "  \"k\"")
}

func TestReadJSONInvalid(t *testing.T) {
	t.Parallel()

	ops := newTestOps()
	dir := t.TempDir()

	require.NoError(t, ops.Write("{not json", dir, "bad.json"))

	var out map[string]string
	assert.Error(t, ops.ReadJSON(dir, "bad.json", &out))
}
