package filesystem

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/custodia-labs/bargo/internal/core/ports/driven"
)

// Default permissions for created files and directories.
const (
	filePerm = 0o644
	dirPerm  = 0o755
)

// Ensure FileSystem implements the interfaces.
var (
	_ driven.FileSystem   = (*FileSystem)(nil)
	_ driven.LineSource   = (*FileSystem)(nil)
	_ driven.OutputWriter = (*FileSystem)(nil)
)

// FileSystem implements the file-related driven ports on the local disk.
type FileSystem struct{}

// New creates a local file system adapter.
func New() *FileSystem {
	return &FileSystem{}
}

// Exists reports whether a file or directory exists at path.
func (f *FileSystem) Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// MkdirAll creates path and any missing parents.
func (f *FileSystem) MkdirAll(path string) error {
	return os.MkdirAll(path, dirPerm)
}

// ReadFile returns the contents of path.
func (f *FileSystem) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// WriteFile writes data to path, creating parent directories as needed.
func (f *FileSystem) WriteFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return err
	}
	return os.WriteFile(path, data, filePerm)
}

// Remove deletes the file at path.
func (f *FileSystem) Remove(path string) error {
	return os.Remove(path)
}
