package fskit

import (
	"context"
	"fmt"
	"path/filepath"

	"go.uber.org/zap"
)

// Move moves or renames src to dst, creating dst's parent directories as
// needed. The source is removed.
func (o *Ops) Move(src, dst string) error {
	if err := o.Backend.MkdirAll(filepath.Dir(dst), dirPerm); err != nil {
		return fmt.Errorf("move %s: %w", dst, err)
	}
	if err := o.Backend.Rename(src, dst); err != nil {
		return fmt.Errorf("move %s: %w", src, err)
	}
	o.Log.Debug("moved path", zap.String("source", src), zap.String("destination", dst))
	return nil
}

// Copy copies src to dst recursively, leaving the source intact. Files
// keep their permission bits; directories are created with the default
// mode.
func (o *Ops) Copy(ctx context.Context, src, dst string) error {
	if err := o.copyTree(ctx, src, dst); err != nil {
		return fmt.Errorf("copy %s: %w", src, err)
	}
	o.Log.Debug("copied tree", zap.String("source", src), zap.String("destination", dst))
	return nil
}

func (o *Ops) copyTree(ctx context.Context, src, dst string) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	info, err := o.Backend.Stat(src)
	if err != nil {
		return err
	}

	if !info.IsDir() {
		data, err := o.Backend.ReadFile(src)
		if err != nil {
			return err
		}
		if err := o.Backend.MkdirAll(filepath.Dir(dst), dirPerm); err != nil {
			return err
		}
		return o.Backend.WriteFile(dst, data, info.Mode().Perm())
	}

	if err := o.Backend.MkdirAll(dst, dirPerm); err != nil {
		return err
	}
	entries, err := o.Backend.ReadDir(src)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		name := entry.Name()
		if err := o.copyTree(ctx, filepath.Join(src, name), filepath.Join(dst, name)); err != nil {
			return err
		}
	}
	return nil
}
