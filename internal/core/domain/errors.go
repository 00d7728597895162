package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent build and package management failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates an entity already exists.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotImplemented indicates a required collaborator is not configured.
	ErrNotImplemented = errors.New("not implemented")

	// Build Errors.

	// ErrMissingSource indicates the main file or a dependency file could not be opened.
	ErrMissingSource = errors.New("missing source")

	// ErrOutputWrite indicates the generated program could not be created or written.
	ErrOutputWrite = errors.New("output write failure")

	// ErrMalformedLine indicates a source line could not be read, e.g. invalid UTF-8.
	ErrMalformedLine = errors.New("malformed line")

	// ErrFetchFailed indicates a remote dependency could not be retrieved.
	// Builds report it as a missing source.
	ErrFetchFailed = errors.New("fetch failed")

	// ErrUnsupportedSource indicates no fetcher understands a dependency source.
	ErrUnsupportedSource = errors.New("unsupported dependency source")

	// Manifest Errors.

	// ErrManifestMissing indicates Bargo.toml does not exist in the working directory.
	ErrManifestMissing = errors.New("manifest not found")

	// ErrManifestSyntax indicates Bargo.toml could not be parsed.
	ErrManifestSyntax = errors.New("manifest syntax error")

	// Project Errors.

	// ErrPackageExists indicates a package already exists at the target location.
	ErrPackageExists = errors.New("package already exists")

	// ErrEmulatorNotFound indicates the configured emulator folder does not exist.
	ErrEmulatorNotFound = errors.New("emulator not found")
)

// MissingSourceError reports a source file that could not be opened.
type MissingSourceError struct {
	Path string
	// Hint tells the user where the file is expected. Empty for the main file.
	Hint string
	Err  error
}

func (e *MissingSourceError) Error() string {
	msg := fmt.Sprintf("could not open %s", e.Path)
	if e.Err != nil && errors.Is(e.Err, ErrFetchFailed) {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	if e.Hint != "" {
		msg += "\n" + e.Hint
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *MissingSourceError) Unwrap() error {
	return e.Err
}

// Is matches ErrMissingSource.
func (e *MissingSourceError) Is(target error) bool {
	return target == ErrMissingSource
}

// OutputWriteError reports a failure creating or writing the output file.
type OutputWriteError struct {
	Path string
	Err  error
}

func (e *OutputWriteError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("could not write to %s", e.Path)
	}
	return fmt.Sprintf("could not write to %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying cause.
func (e *OutputWriteError) Unwrap() error {
	return e.Err
}

// Is matches ErrOutputWrite.
func (e *OutputWriteError) Is(target error) bool {
	return target == ErrOutputWrite
}

// MalformedLineError reports a line that could not be read from a source file.
// Line is 1-based; zero means the failure was not tied to a line.
type MalformedLineError struct {
	Path string
	Line int
	Err  error
}

func (e *MalformedLineError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("malformed line %d in %s: %v", e.Line, e.Path, e.Err)
	}
	return fmt.Sprintf("could not read %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying cause.
func (e *MalformedLineError) Unwrap() error {
	return e.Err
}

// Is matches ErrMalformedLine.
func (e *MalformedLineError) Is(target error) bool {
	return target == ErrMalformedLine
}
