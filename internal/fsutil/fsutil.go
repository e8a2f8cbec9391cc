// Package fsutil holds the filesystem helpers used while writing a project.
package fsutil

import (
	"errors"
	"io"
	"os"
	"path/filepath"

	oerrors "github.com/solanainit/cli/internal/errors"
)

// Default permissions for generated files and directories.
const (
	FilePerm os.FileMode = 0o644
	DirPerm  os.FileMode = 0o755
)

// WriteFile writes data to path atomically, creating parent directories.
// Failures are reported as IOError.
func WriteFile(path string, data []byte, perm os.FileMode) error {
	if err := os.MkdirAll(filepath.Dir(path), DirPerm); err != nil {
		return oerrors.NewIOError("mkdir", filepath.Dir(path), err)
	}
	if err := writeFileAtomic(path, data, perm); err != nil {
		return oerrors.NewIOError("write", path, err)
	}
	return nil
}

// ReadFile reads path, reporting failures as IOError.
func ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, oerrors.NewIOError("read", path, err)
	}
	return data, nil
}

// IsAbsentOrEmptyDir reports whether path is missing or an empty directory.
// A path that exists as anything other than a directory reports false.
func IsAbsentOrEmptyDir(path string) (bool, error) {
	info, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return true, nil
	}
	if err != nil {
		return false, oerrors.NewIOError("stat", path, err)
	}
	if !info.IsDir() {
		return false, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return false, oerrors.NewIOError("open", path, err)
	}
	defer f.Close()

	_, err = f.Readdirnames(1)
	if errors.Is(err, io.EOF) {
		return true, nil
	}
	if err != nil {
		return false, oerrors.NewIOError("read", path, err)
	}
	return false, nil
}
