package filesystem

import (
	"bufio"
	"os"
	"path/filepath"

	"github.com/custodia-labs/bargo/internal/core/domain"
)

const writeBufferSize = 64 * 1024

// Write renders lines into path through a temporary file in the same
// directory that is renamed over the destination once fully written. A
// failed write leaves any previous output untouched.
func (f *FileSystem) Write(path string, lines []domain.NumberedLine, padding int, terminator string) error {
	if err := f.writeAtomic(path, lines, padding, terminator); err != nil {
		return &domain.OutputWriteError{Path: path, Err: err}
	}
	return nil
}

func (f *FileSystem) writeAtomic(dest string, lines []domain.NumberedLine, padding int, terminator string) error {
	dir := filepath.Dir(dest)
	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	_ = os.Chmod(tmpPath, filePerm)

	bw := bufio.NewWriterSize(tmp, writeBufferSize)
	for _, l := range lines {
		if _, err := bw.WriteString(l.Render(padding)); err != nil {
			return discard(tmp, err)
		}
		if _, err := bw.WriteString(terminator); err != nil {
			return discard(tmp, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return discard(tmp, err)
	}
	if err := tmp.Sync(); err != nil {
		return discard(tmp, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	if err := os.Rename(tmpPath, dest); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	return nil
}

// discard closes and removes a partially written temporary file.
func discard(tmp *os.File, err error) error {
	_ = tmp.Close()
	_ = os.Remove(tmp.Name())
	return err
}
