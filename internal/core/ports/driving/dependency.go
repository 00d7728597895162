package driving

import "github.com/custodia-labs/bargo/internal/core/domain"

// DependencyService manages the [dependencies] section of the manifest.
type DependencyService interface {
	// Add declares a dependency, or updates its source if already declared.
	// Returns true if the dependency is new.
	Add(name, source string) (bool, error)

	// Remove deletes a declared dependency.
	Remove(name string) error

	// List returns dependencies in build order.
	List() ([]domain.Dependency, error)
}
