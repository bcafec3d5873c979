// Package output performs the single write of a generated document.
package output

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"packlunch/internal/model"
)

// Stdout is the path value that selects the caller-supplied writer instead of a file.
const Stdout = "-"

// Write writes data to path, or to stdout when path is "-". File writes are
// atomic: the previous content of path survives any failure.
func Write(path string, data []byte, stdout io.Writer) error {
	if path == Stdout {
		if _, err := stdout.Write(data); err != nil {
			return &model.StorageError{Path: "<stdout>", Op: "write", Err: err}
		}
		return nil
	}
	return WriteFile(path, data, 0o644)
}

// WriteFile writes data to a temp file in the same directory as path,
// syncs it, sets perm and renames it over path. The temp file never
// outlives the call.
func WriteFile(path string, data []byte, perm fs.FileMode) error {
	if path == "" {
		return &model.StorageError{Path: path, Op: "write", Err: os.ErrInvalid}
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return &model.StorageError{Path: dir, Op: "mkdir", Err: err}
	}

	tmp, err := os.CreateTemp(dir, ".packlunch-*.tmp")
	if err != nil {
		return &model.StorageError{Path: path, Op: "create", Err: err}
	}
	tmpName := tmp.Name()

	// No-op once the rename has succeeded.
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return &model.StorageError{Path: path, Op: "write", Err: err}
	}

	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return &model.StorageError{Path: path, Op: "sync", Err: err}
	}
	if err := tmp.Close(); err != nil {
		return &model.StorageError{Path: path, Op: "close", Err: err}
	}

	if err := os.Chmod(tmpName, perm); err != nil {
		return &model.StorageError{Path: path, Op: "chmod", Err: err}
	}

	if err := os.Rename(tmpName, path); err != nil {
		return &model.StorageError{Path: path, Op: "rename", Err: err}
	}

	return nil
}
