// Package fsutil holds small filesystem helpers shared by mdblog packages.
package fsutil

import (
	"fmt"
	"os"
	"path/filepath"
)

// Permissions used for created files and directories.
const (
	DirPerm  os.FileMode = 0755
	FilePerm os.FileMode = 0644
)

// CreateFile creates (or truncates) the file at path for writing.
// All parent directories are created first.
// The caller owns the returned handle and must close it.
func CreateFile(path string) (*os.File, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, DirPerm); err != nil {
		return nil, fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, FilePerm)
	if err != nil {
		return nil, err
	}
	return f, nil
}

// Exists reports whether path exists.
// Errors other than "does not exist" are returned to the caller.
func Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}
