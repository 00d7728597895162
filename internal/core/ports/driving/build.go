package driving

import (
	"context"

	"github.com/custodia-labs/bargo/internal/core/domain"
)

// BuildService assembles a package into a single numbered BASIC program.
//
// Builds are not safe to run concurrently for the same project; the
// working directory is the only shared state and it is not locked.
type BuildService interface {
	// Build runs fetch, assemble, label resolution, numbering and write.
	Build(ctx context.Context, opts domain.BuildOptions) (*domain.BuildResult, error)

	// Fetch retrieves every remote dependency into src/ without building.
	Fetch(ctx context.Context) ([]domain.Dependency, error)
}

// WatchService rebuilds the package whenever its sources change.
type WatchService interface {
	// Watch performs an initial build, then rebuilds on change until ctx is
	// cancelled. onBuild receives the outcome of every build.
	Watch(ctx context.Context, onBuild func(*domain.BuildResult, error)) error
}
