package fskit

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/bytedance/sonic"
	"go.uber.org/zap"
)

// Payloads above this size go through sonic instead of encoding/json.
const sonicThreshold = 10 << 10

// Read returns the contents of name inside dir as text.
func (o *Ops) Read(dir, name string) (string, error) {
	path := Path(dir, name)
	data, err := o.Backend.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	o.Log.Debug("read file", zap.String("path", path), zap.Int("size", len(data)))
	return string(data), nil
}

// Write writes content to name inside dir, creating parent directories as
// needed. Existing content is overwritten.
func (o *Ops) Write(content, dir, name string) error {
	path := Path(dir, name)
	if err := o.Backend.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := o.Backend.WriteFile(path, []byte(content), filePerm); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	o.Log.Debug("wrote file", zap.String("path", path), zap.Int("size", len(content)))
	return nil
}

// Append appends content to name inside dir, creating the file (and its
// parent directories) if absent.
func (o *Ops) Append(content, dir, name string) error {
	path := Path(dir, name)
	if err := o.Backend.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return fmt.Errorf("append %s: %w", path, err)
	}
	if err := o.Backend.AppendFile(path, []byte(content), filePerm); err != nil {
		return fmt.Errorf("append %s: %w", path, err)
	}
	o.Log.Debug("appended to file", zap.String("path", path), zap.Int("size", len(content)))
	return nil
}

// Touch creates an empty file named name inside dir. Existing content is
// left intact.
func (o *Ops) Touch(dir, name string) error {
	path := Path(dir, name)
	if err := o.Backend.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return fmt.Errorf("touch %s: %w", path, err)
	}
	if err := o.Backend.Touch(path, filePerm); err != nil {
		return fmt.Errorf("touch %s: %w", path, err)
	}
	return nil
}

// Exists reports whether path names an existing file or directory.
func (o *Ops) Exists(path string) bool {
	_, err := o.Backend.Stat(path)
	return err == nil
}

// ReadJSON reads name inside dir and unmarshals it into out.
func (o *Ops) ReadJSON(dir, name string, out interface{}) error {
	path := Path(dir, name)
	data, err := o.Backend.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	// sonic pays off on large payloads only.
	if len(data) > sonicThreshold {
		err = sonic.Unmarshal(data, out)
	} else {
		err = json.Unmarshal(data, out)
	}
	if err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

// WriteJSON writes v as indented JSON to name inside dir, creating parent
// directories as needed.
func (o *Ops) WriteJSON(v interface{}, dir, name string) error {
	data, err := sonic.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return o.Write(string(data), dir, name)
}
