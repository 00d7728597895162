package driving

import (
	"context"

	"github.com/custodia-labs/bargo/internal/core/domain"
)

// ProjectService scaffolds and cleans packages.
type ProjectService interface {
	// New creates a package in a new directory called name.
	New(ctx context.Context, name string) (*domain.Package, error)

	// Init creates a package in the current directory.
	Init(ctx context.Context) (*domain.Package, error)

	// Clean removes the generated program and returns its path.
	Clean() (string, error)
}

// EmulatorService runs the generated program in the emulator.
type EmulatorService interface {
	// Run installs the program on the emulator's sdcard and launches it.
	Run(ctx context.Context) error
}
