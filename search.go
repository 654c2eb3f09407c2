package fskit

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/charlievieth/fastwalk"
)

// Find returns the files below root whose base name matches pattern
// (filepath.Match syntax, e.g. "*.csv"). Results are sorted.
func (o *Ops) Find(ctx context.Context, root, pattern string) ([]string, error) {
	var (
		mu      sync.Mutex // fastwalk runs the callback concurrently
		matches []string
	)

	conf := fastwalk.Config{Follow: false}
	err := fastwalk.Walk(&conf, root, func(path string, d os.DirEntry, err error) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err != nil || d.IsDir() {
			return nil
		}
		ok, matchErr := filepath.Match(pattern, d.Name())
		if matchErr != nil {
			return matchErr
		}
		if ok {
			mu.Lock()
			matches = append(matches, path)
			mu.Unlock()
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", root, err)
	}

	sort.Strings(matches)
	return matches, nil
}

// Glob returns the files below root whose path relative to root matches
// pattern, with doublestar "**" support (e.g. "**/*.csv"). Results are
// sorted.
func (o *Ops) Glob(ctx context.Context, root, pattern string) ([]string, error) {
	var (
		mu      sync.Mutex
		matches []string
	)

	conf := fastwalk.Config{Follow: false}
	err := fastwalk.Walk(&conf, root, func(path string, d os.DirEntry, err error) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err != nil || d.IsDir() {
			return nil
		}
		relPath, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return nil
		}
		ok, matchErr := doublestar.Match(pattern, filepath.ToSlash(relPath))
		if matchErr != nil {
			return matchErr
		}
		if ok {
			mu.Lock()
			matches = append(matches, relPath)
			mu.Unlock()
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", root, err)
	}

	sort.Strings(matches)
	return matches, nil
}
