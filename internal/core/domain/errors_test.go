package domain

import (
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestErrors_Existence tests that all error variables exist and are not nil
func TestErrors_Existence(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"ErrNotFound", ErrNotFound},
		{"ErrAlreadyExists", ErrAlreadyExists},
		{"ErrInvalidInput", ErrInvalidInput},
		{"ErrNotImplemented", ErrNotImplemented},
		{"ErrMissingSource", ErrMissingSource},
		{"ErrOutputWrite", ErrOutputWrite},
		{"ErrMalformedLine", ErrMalformedLine},
		{"ErrFetchFailed", ErrFetchFailed},
		{"ErrUnsupportedSource", ErrUnsupportedSource},
		{"ErrManifestMissing", ErrManifestMissing},
		{"ErrManifestSyntax", ErrManifestSyntax},
		{"ErrPackageExists", ErrPackageExists},
		{"ErrEmulatorNotFound", ErrEmulatorNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

func TestMissingSourceError_MainFile(t *testing.T) {
	err := &MissingSourceError{Path: "src/main.bas", Err: os.ErrNotExist}

	assert.Equal(t, "could not open src/main.bas", err.Error())
	assert.ErrorIs(t, err, ErrMissingSource)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestMissingSourceError_WithHint(t *testing.T) {
	err := &MissingSourceError{
		Path: "src/utils.bas",
		Hint: "Make sure this dep exists in src/",
	}

	assert.Equal(t, "could not open src/utils.bas\nMake sure this dep exists in src/", err.Error())
}

func TestMissingSourceError_FetchFailure(t *testing.T) {
	cause := fmt.Errorf("%w: GET https://example.com/x.bas: 404", ErrFetchFailed)
	err := &MissingSourceError{Path: "src/x.bas", Err: cause}

	assert.Contains(t, err.Error(), "could not open src/x.bas")
	assert.Contains(t, err.Error(), "404")
	assert.ErrorIs(t, err, ErrMissingSource)
	assert.ErrorIs(t, err, ErrFetchFailed)
}

func TestMissingSourceError_WrappedStillMatches(t *testing.T) {
	err := fmt.Errorf("build: %w", &MissingSourceError{Path: "src/a.bas"})

	var target *MissingSourceError
	assert.True(t, errors.As(err, &target))
	assert.Equal(t, "src/a.bas", target.Path)
	assert.ErrorIs(t, err, ErrMissingSource)
}

func TestOutputWriteError(t *testing.T) {
	err := &OutputWriteError{Path: "hello.bas", Err: os.ErrPermission}

	assert.Contains(t, err.Error(), "could not write to hello.bas")
	assert.ErrorIs(t, err, ErrOutputWrite)
	assert.ErrorIs(t, err, os.ErrPermission)
	assert.NotErrorIs(t, err, ErrMissingSource)
}

func TestOutputWriteError_NoCause(t *testing.T) {
	err := &OutputWriteError{Path: "hello.bas"}
	assert.Equal(t, "could not write to hello.bas", err.Error())
}

func TestMalformedLineError(t *testing.T) {
	err := &MalformedLineError{Path: "src/main.bas", Line: 3, Err: errors.New("invalid UTF-8")}

	assert.Equal(t, "malformed line 3 in src/main.bas: invalid UTF-8", err.Error())
	assert.ErrorIs(t, err, ErrMalformedLine)
}

func TestMalformedLineError_NoLine(t *testing.T) {
	err := &MalformedLineError{Path: "src/main.bas", Err: errors.New("boom")}
	assert.Equal(t, "could not read src/main.bas: boom", err.Error())
}

// TestErrors_Uniqueness tests that all errors are distinct
func TestErrors_Uniqueness(t *testing.T) {
	allErrors := []error{
		ErrNotFound,
		ErrAlreadyExists,
		ErrInvalidInput,
		ErrNotImplemented,
		ErrMissingSource,
		ErrOutputWrite,
		ErrMalformedLine,
		ErrFetchFailed,
		ErrUnsupportedSource,
		ErrManifestMissing,
		ErrManifestSyntax,
		ErrPackageExists,
		ErrEmulatorNotFound,
	}

	for i, err1 := range allErrors {
		for j, err2 := range allErrors {
			if i != j {
				assert.False(t, errors.Is(err1, err2),
					"Error %v should not match error %v", err1, err2)
			}
		}
	}
}
