package fskit

import (
	"errors"
	"io/fs"
)

// Operations propagate the underlying platform error unchanged, wrapped
// only with the operation name and path. The helpers below classify the
// common cases without callers needing to import io/fs.

// IsNotFound reports whether err indicates a missing file or directory.
func IsNotFound(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}

// IsAlreadyExists reports whether err indicates a path that already exists.
func IsAlreadyExists(err error) bool {
	return errors.Is(err, fs.ErrExist)
}
