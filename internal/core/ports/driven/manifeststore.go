package driven

import "github.com/custodia-labs/bargo/internal/core/domain"

// ManifestStore reads and writes package manifests.
type ManifestStore interface {
	// Load parses the manifest at path.
	// Returns domain.ErrManifestMissing if the file does not exist and
	// domain.ErrManifestSyntax if it cannot be parsed.
	Load(path string) (*domain.Manifest, error)

	// Save writes the manifest to path, replacing any existing file.
	Save(path string, manifest *domain.Manifest) error
}
