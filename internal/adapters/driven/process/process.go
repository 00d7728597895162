// Package process launches external programs: the emulator and git.
package process

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/custodia-labs/bargo/internal/core/ports/driven"
	"github.com/custodia-labs/bargo/internal/logger"
)

// Ensure the adapters implement the interfaces.
var (
	_ driven.ProcessRunner   = (*Runner)(nil)
	_ driven.RepoInitialiser = (*Git)(nil)
)

// Runner runs a program attached to the given standard streams.
type Runner struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewRunner creates a runner attached to the current process's terminal.
func NewRunner() *Runner {
	return &Runner{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr}
}

// Run starts name in dir and waits for it to exit.
func (r *Runner) Run(ctx context.Context, dir, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Stdin = r.Stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr

	logger.Debug("Running %s %s in %s", name, strings.Join(args, " "), dir)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

// Git initialises repositories with the git executable on PATH.
type Git struct {
	runner driven.ProcessRunner
}

// NewGit creates a git initialiser. Output from git is discarded.
func NewGit() *Git {
	return &Git{runner: &Runner{Stdout: io.Discard, Stderr: io.Discard}}
}

// Init runs "git init" in dir.
func (g *Git) Init(ctx context.Context, dir string) error {
	return g.runner.Run(ctx, dir, "git", "init")
}
