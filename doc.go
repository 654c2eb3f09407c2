// Package fskit provides convenience wrappers for common filesystem and
// delimited-text operations.
//
// The package is organized into specialized modules:
//   - basic: core file operations (read, write, append, touch, JSON)
//   - directory: directory operations (readdir, mkdir, remove, flatten)
//   - operations: file manipulation (copy, move)
//   - metadata: file metadata, sizes, and MIME detection
//   - search: file search and filtering (find, glob)
//   - formats: structured formats (CSV via delim, YAML, TOML)
//   - archive: zip and gzip helpers
//   - paths: path joining and normalization
//
// All operations:
//   - Are thin sequential wrappers over the configured Backend
//   - Propagate platform errors unchanged (see IsNotFound, IsAlreadyExists)
//   - Hold their input and output entirely in memory; nothing is streamed
//
// Recursive operations (Copy, Flatten, Find, Glob, TotalSize, Zip, Unzip)
// accept a context and stop between entries when it is cancelled. Single
// syscall wrappers do not take a context; a cancelled caller cannot
// interrupt an in-flight syscall anyway.
//
// Example Usage:
//
//	ops := fskit.New()
//	if err := ops.Write("a,b\n1,2\n", "/tmp/data", "rows.csv"); err != nil {
//		log.Fatal(err)
//	}
//	records, err := ops.CSVToRecords("/tmp/data", "rows.csv", ',')
package fskit
