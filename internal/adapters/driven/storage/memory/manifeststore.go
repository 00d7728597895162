package memory

import (
	"sync"

	"github.com/custodia-labs/bargo/internal/core/domain"
	"github.com/custodia-labs/bargo/internal/core/ports/driven"
)

// Ensure ManifestStore implements the interface.
var _ driven.ManifestStore = (*ManifestStore)(nil)

// ManifestStore is an in-memory implementation of driven.ManifestStore for testing.
type ManifestStore struct {
	mu        sync.RWMutex
	manifests map[string]*domain.Manifest
}

// NewManifestStore creates a new in-memory manifest store.
func NewManifestStore() *ManifestStore {
	return &ManifestStore{
		manifests: make(map[string]*domain.Manifest),
	}
}

// Load returns a copy of the manifest stored at path.
func (s *ManifestStore) Load(path string) (*domain.Manifest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	m, ok := s.manifests[path]
	if !ok {
		return nil, domain.ErrManifestMissing
	}
	return copyManifest(m), nil
}

// Save stores a copy of the manifest at path. Dependencies are sorted by name,
// matching what a round trip through Bargo.toml produces.
func (s *ManifestStore) Save(path string, manifest *domain.Manifest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := copyManifest(manifest)
	domain.SortDependencies(c.Dependencies)
	s.manifests[path] = c
	return nil
}

func copyManifest(m *domain.Manifest) *domain.Manifest {
	c := &domain.Manifest{Package: m.Package}
	if m.Dependencies != nil {
		c.Dependencies = make([]domain.Dependency, len(m.Dependencies))
		copy(c.Dependencies, m.Dependencies)
	}
	return c
}
