package memory

import (
	"bufio"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/custodia-labs/bargo/internal/core/domain"
	"github.com/custodia-labs/bargo/internal/core/ports/driven"
)

// Ensure FileSystem implements the interfaces.
var (
	_ driven.FileSystem   = (*FileSystem)(nil)
	_ driven.LineSource   = (*FileSystem)(nil)
	_ driven.OutputWriter = (*FileSystem)(nil)
)

// FileSystem is an in-memory file tree for testing. It serves as the line
// source, the output writer and the project file system at once.
type FileSystem struct {
	mu    sync.RWMutex
	files map[string][]byte
	dirs  map[string]bool

	// WriteErr, when set, is returned by Write and WriteFile.
	WriteErr error
}

// NewFileSystem creates an empty in-memory file system.
func NewFileSystem() *FileSystem {
	return &FileSystem{
		files: make(map[string][]byte),
		dirs:  make(map[string]bool),
	}
}

// AddFile stores a file, creating its parent directories.
func (f *FileSystem) AddFile(path, content string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.put(path, []byte(content))
}

// File returns a file's contents.
func (f *FileSystem) File(path string) (string, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	data, ok := f.files[filepath.Clean(path)]
	return string(data), ok
}

// Paths returns every file path in sorted order.
func (f *FileSystem) Paths() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := make([]string, 0, len(f.files))
	for p := range f.files {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// Exists reports whether a file or directory exists at path.
func (f *FileSystem) Exists(path string) (bool, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	p := filepath.Clean(path)
	_, isFile := f.files[p]
	return isFile || f.dirs[p], nil
}

// MkdirAll records path and its parents as directories.
func (f *FileSystem) MkdirAll(path string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.mkdirs(filepath.Clean(path))
	return nil
}

// ReadFile returns a copy of the file at path.
func (f *FileSystem) ReadFile(path string) ([]byte, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	data, ok := f.files[filepath.Clean(path)]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

// WriteFile stores data at path.
func (f *FileSystem) WriteFile(path string, data []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.WriteErr != nil {
		return f.WriteErr
	}
	f.put(path, data)
	return nil
}

// Remove deletes the file at path.
func (f *FileSystem) Remove(path string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	p := filepath.Clean(path)
	if _, ok := f.files[p]; !ok {
		return &fs.PathError{Op: "remove", Path: path, Err: fs.ErrNotExist}
	}
	delete(f.files, p)
	return nil
}

// ReadLines splits the file at path into lines, dropping "\r\n" and "\n" terminators.
func (f *FileSystem) ReadLines(path string) ([]string, error) {
	f.mu.RLock()
	data, ok := f.files[filepath.Clean(path)]
	f.mu.RUnlock()
	if !ok {
		return nil, &domain.MissingSourceError{Path: path, Err: fs.ErrNotExist}
	}

	var lines []string
	scanner := bufio.NewScanner(strings.NewReader(string(data)))
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, &domain.MalformedLineError{Path: path, Err: err}
	}
	return lines, nil
}

// Write renders lines into path.
func (f *FileSystem) Write(path string, lines []domain.NumberedLine, padding int, terminator string) error {
	if f.WriteErr != nil {
		return &domain.OutputWriteError{Path: path, Err: f.WriteErr}
	}

	var b strings.Builder
	for _, l := range lines {
		b.WriteString(l.Render(padding))
		b.WriteString(terminator)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.put(path, []byte(b.String()))
	return nil
}

// put stores a file (caller must hold lock).
func (f *FileSystem) put(path string, data []byte) {
	p := filepath.Clean(path)
	f.mkdirs(filepath.Dir(p))
	stored := make([]byte, len(data))
	copy(stored, data)
	f.files[p] = stored
}

// mkdirs records a directory chain (caller must hold lock).
func (f *FileSystem) mkdirs(dir string) {
	for dir != "." && dir != string(filepath.Separator) && dir != "" {
		f.dirs[dir] = true
		dir = filepath.Dir(dir)
	}
}

// String lists the stored files, for test failure messages.
func (f *FileSystem) String() string {
	return fmt.Sprintf("memory.FileSystem%v", f.Paths())
}
