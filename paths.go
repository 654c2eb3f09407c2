package fskit

import "path/filepath"

// Path joins segments into a single path and normalizes the result,
// collapsing "." and ".." components:
//
//	Path("/folder1", "./../folder2", "file.ext") // "/folder2/file.ext"
func Path(segments ...string) string {
	return filepath.Clean(filepath.Join(segments...))
}
