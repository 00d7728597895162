package services

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/custodia-labs/bargo/internal/core/domain"
	"github.com/custodia-labs/bargo/internal/core/ports/driven"
	"github.com/custodia-labs/bargo/internal/core/ports/driving"
)

// Ensure DependencyService implements the interface.
var _ driving.DependencyService = (*DependencyService)(nil)

// DependencyService edits the [dependencies] section of Bargo.toml.
type DependencyService struct {
	root      string
	manifests driven.ManifestStore
}

// NewDependencyService creates a new dependency service.
func NewDependencyService(root string, manifests driven.ManifestStore) *DependencyService {
	return &DependencyService{root: root, manifests: manifests}
}

// Add declares a dependency, or updates the source of an existing one.
func (s *DependencyService) Add(name, source string) (bool, error) {
	if s.manifests == nil {
		return false, domain.ErrNotImplemented
	}
	if err := domain.ValidateDependencyName(name); err != nil {
		return false, err
	}

	manifest, err := s.manifests.Load(s.manifestPath())
	if err != nil {
		return false, err
	}

	added := manifest.SetDependency(domain.Dependency{Name: name, Source: strings.TrimSpace(source)})
	if err := s.manifests.Save(s.manifestPath(), manifest); err != nil {
		return false, fmt.Errorf("save manifest: %w", err)
	}
	return added, nil
}

// Remove deletes a declared dependency.
func (s *DependencyService) Remove(name string) error {
	if s.manifests == nil {
		return domain.ErrNotImplemented
	}

	manifest, err := s.manifests.Load(s.manifestPath())
	if err != nil {
		return err
	}

	if !manifest.RemoveDependency(name) {
		return fmt.Errorf("dependency %q: %w", name, domain.ErrNotFound)
	}
	if err := s.manifests.Save(s.manifestPath(), manifest); err != nil {
		return fmt.Errorf("save manifest: %w", err)
	}
	return nil
}

// List returns the declared dependencies in build order.
func (s *DependencyService) List() ([]domain.Dependency, error) {
	if s.manifests == nil {
		return nil, domain.ErrNotImplemented
	}
	manifest, err := s.manifests.Load(s.manifestPath())
	if err != nil {
		return nil, err
	}
	return manifest.Dependencies, nil
}

func (s *DependencyService) manifestPath() string {
	return filepath.Join(s.root, domain.ManifestFile)
}
