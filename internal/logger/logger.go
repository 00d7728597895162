// Package logger provides diagnostics for the Bargo CLI.
// Debug and Info messages are printed to stderr only when verbose mode is
// enabled via the --verbose flag. Warnings are always printed.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
)

var (
	mu      sync.RWMutex
	verbose bool
	output  io.Writer = os.Stderr
	warned  int
)

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput sets the output writer for diagnostics.
// Defaults to os.Stderr. Useful for testing.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

// Debug prints a message if verbose mode is enabled.
func Debug(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintf(output, "[DEBUG] "+format+"\n", args...)
	}
}

// Section prints a section header if verbose mode is enabled.
func Section(name string) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintf(output, "\n=== %s ===\n", name)
	}
}

// Info prints an informational message if verbose mode is enabled.
func Info(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintf(output, "[INFO] "+format+"\n", args...)
	}
}

// Warn prints a warning regardless of verbose mode.
func Warn(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	warned++
	fmt.Fprintf(output, "[WARN] "+format+"\n", args...)
}

// Warnings returns the number of warnings printed since the last ResetWarnings.
func Warnings() int {
	mu.RLock()
	defer mu.RUnlock()
	return warned
}

// ResetWarnings clears the warning counter.
func ResetWarnings() {
	mu.Lock()
	defer mu.Unlock()
	warned = 0
}
