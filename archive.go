package fskit

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"go.uber.org/zap"
)

// Zip archives srcDir recursively into the ZIP file at dst. Entry names
// are relative to srcDir.
func (o *Ops) Zip(ctx context.Context, srcDir, dst string) error {
	zipFile, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("zip %s: %w", dst, err)
	}
	defer zipFile.Close()

	zipWriter := zip.NewWriter(zipFile)
	defer zipWriter.Close()

	fileCount := 0
	err = filepath.WalkDir(srcDir, func(path string, d fs.DirEntry, err error) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err != nil || path == srcDir {
			return err
		}

		relPath, _ := filepath.Rel(srcDir, path)
		if d.IsDir() {
			_, err := zipWriter.Create(relPath + "/")
			return err
		}

		writer, err := zipWriter.Create(relPath)
		if err != nil {
			return err
		}
		file, err := os.Open(path)
		if err != nil {
			return err
		}
		defer file.Close()

		if _, err := io.Copy(writer, file); err != nil {
			return err
		}
		fileCount++
		return nil
	})
	if err != nil {
		return fmt.Errorf("zip %s: %w", srcDir, err)
	}

	o.Log.Debug("created zip", zap.String("output", dst), zap.Int("files", fileCount))
	return nil
}

// Unzip extracts the ZIP file at archive into destDir. Entries that would
// escape destDir are skipped.
func (o *Ops) Unzip(ctx context.Context, archive, destDir string) error {
	reader, err := zip.OpenReader(archive)
	if err != nil {
		return fmt.Errorf("unzip %s: %w", archive, err)
	}
	defer reader.Close()

	for _, file := range reader.File {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		// Prevent zip-slip attacks
		destPath := filepath.Join(destDir, file.Name)
		if !strings.HasPrefix(destPath, filepath.Clean(destDir)+string(os.PathSeparator)) {
			continue
		}

		if file.FileInfo().IsDir() {
			if err := os.MkdirAll(destPath, dirPerm); err != nil {
				return fmt.Errorf("unzip %s: %w", archive, err)
			}
			continue
		}

		if err := extractZipFile(file, destPath); err != nil {
			return fmt.Errorf("unzip %s: %w", archive, err)
		}
	}
	return nil
}

func extractZipFile(file *zip.File, destPath string) error {
	if err := os.MkdirAll(filepath.Dir(destPath), dirPerm); err != nil {
		return err
	}

	srcFile, err := file.Open()
	if err != nil {
		return err
	}
	defer srcFile.Close()

	dstFile, err := os.Create(destPath)
	if err != nil {
		return err
	}
	if _, err := io.Copy(dstFile, srcFile); err != nil {
		dstFile.Close()
		return err
	}
	return dstFile.Close()
}

// Gzip compresses the file at src into dst.
func (o *Ops) Gzip(src, dst string) error {
	data, err := o.Backend.ReadFile(src)
	if err != nil {
		return fmt.Errorf("gzip %s: %w", src, err)
	}

	outFile, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("gzip %s: %w", dst, err)
	}

	gzWriter := gzip.NewWriter(outFile)
	if _, err := gzWriter.Write(data); err != nil {
		gzWriter.Close()
		outFile.Close()
		return fmt.Errorf("gzip %s: %w", dst, err)
	}
	if err := gzWriter.Close(); err != nil {
		outFile.Close()
		return fmt.Errorf("gzip %s: %w", dst, err)
	}
	return outFile.Close()
}

// Gunzip decompresses the gzip file at src into dst.
func (o *Ops) Gunzip(src, dst string) error {
	inFile, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("gunzip %s: %w", src, err)
	}
	defer inFile.Close()

	gzReader, err := gzip.NewReader(inFile)
	if err != nil {
		return fmt.Errorf("gunzip %s: %w", src, err)
	}
	defer gzReader.Close()

	data, err := io.ReadAll(gzReader)
	if err != nil {
		return fmt.Errorf("gunzip %s: %w", src, err)
	}
	if err := o.Backend.WriteFile(dst, data, filePerm); err != nil {
		return fmt.Errorf("gunzip %s: %w", dst, err)
	}
	return nil
}
