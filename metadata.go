package fskit

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/charlievieth/fastwalk"
	"github.com/gabriel-vasile/mimetype"
)

// Stat returns metadata for the file or directory at path.
func (o *Ops) Stat(path string) (*FileInfo, error) {
	info, err := o.Backend.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	fi := &FileInfo{
		Name:     info.Name(),
		Path:     path,
		Size:     info.Size(),
		IsDir:    info.IsDir(),
		Mode:     info.Mode().String(),
		Modified: info.ModTime(),
	}
	if !info.IsDir() {
		fi.Extension = filepath.Ext(info.Name())
	}
	return fi, nil
}

// SizeHuman returns the size of the file at path in human-readable form.
func (o *Ops) SizeHuman(path string) (string, error) {
	info, err := o.Backend.Stat(path)
	if err != nil {
		return "", fmt.Errorf("stat %s: %w", path, err)
	}
	return formatBytes(info.Size()), nil
}

// TotalSize sums the sizes of all files below dir and returns the total
// in bytes together with the file count.
func (o *Ops) TotalSize(ctx context.Context, dir string) (int64, int, error) {
	var (
		mu        sync.Mutex // fastwalk runs the callback concurrently
		totalSize int64
		fileCount int
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
		info, err := d.Info()
		if err != nil {
			return nil
		}

		mu.Lock()
		totalSize += info.Size()
		fileCount++
		mu.Unlock()
		return nil
	})
	if err != nil {
		return 0, 0, fmt.Errorf("totalsize %s: %w", dir, err)
	}
	return totalSize, fileCount, nil
}

// MIMEType detects the MIME type of the file at path from its content.
func (o *Ops) MIMEType(path string) (string, error) {
	mtype, err := mimetype.DetectFile(path)
	if err != nil {
		return "", fmt.Errorf("mime %s: %w", path, err)
	}
	return mtype.String(), nil
}

// IsText reports whether the file at path holds text content.
func (o *Ops) IsText(path string) (bool, error) {
	mtype, err := mimetype.DetectFile(path)
	if err != nil {
		return false, fmt.Errorf("mime %s: %w", path, err)
	}

	mime := mtype.String()
	isText := strings.HasPrefix(mime, "text/") ||
		mime == "application/json" ||
		mime == "application/xml" ||
		mime == "application/javascript"
	return isText, nil
}

// formatBytes formats bytes to human-readable size.
func formatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}

	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}

	units := []string{"KB", "MB", "GB", "TB", "PB"}
	return fmt.Sprintf("%.2f %s", float64(bytes)/float64(div), units[exp])
}
