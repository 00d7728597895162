package driven

// FileSystem provides the file operations used for project management.
type FileSystem interface {
	// Exists reports whether path exists.
	Exists(path string) (bool, error)

	// MkdirAll creates path and any missing parents.
	MkdirAll(path string) error

	// ReadFile returns the contents of path.
	ReadFile(path string) ([]byte, error)

	// WriteFile creates or truncates path with data.
	WriteFile(path string, data []byte) error

	// Remove deletes path.
	Remove(path string) error
}
