package fskit

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/charlievieth/fastwalk"
	"go.uber.org/zap"
)

// ReadDir returns the names of the files inside dir. Subdirectories are
// excluded.
func (o *Ops) ReadDir(dir string) ([]string, error) {
	entries, err := o.Backend.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("readdir %s: %w", dir, err)
	}

	files := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			files = append(files, entry.Name())
		}
	}
	return files, nil
}

// Mkdir creates the directory at path along with any missing parents.
func (o *Ops) Mkdir(path string) error {
	if err := o.Backend.MkdirAll(path, dirPerm); err != nil {
		return fmt.Errorf("mkdir %s: %w", path, err)
	}
	return nil
}

// RemoveAll deletes path and everything below it. Unlike os.RemoveAll, a
// path that does not exist is an error, so callers cannot mistake a typo
// for a successful delete.
func (o *Ops) RemoveAll(path string) error {
	if _, err := o.Backend.Stat(path); err != nil {
		return fmt.Errorf("removeall %s: %w", path, err)
	}
	if err := o.Backend.RemoveAll(path); err != nil {
		return fmt.Errorf("removeall %s: %w", path, err)
	}
	o.Log.Debug("removed path", zap.String("path", path))
	return nil
}

// Flatten returns every file below dir as a sorted slice of paths
// relative to dir.
func (o *Ops) Flatten(ctx context.Context, dir string) ([]string, error) {
	var (
		mu    sync.Mutex // fastwalk runs the callback concurrently
		files []string
	)

	conf := fastwalk.Config{Follow: false}
	err := fastwalk.Walk(&conf, dir, func(path string, d os.DirEntry, err error) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err != nil || d.IsDir() {
			return nil
		}

		relPath, _ := filepath.Rel(dir, path)
		mu.Lock()
		files = append(files, relPath)
		mu.Unlock()
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("flatten %s: %w", dir, err)
	}

	sort.Strings(files)
	return files, nil
}
