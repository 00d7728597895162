package file

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/custodia-labs/bargo/internal/core/domain"
	"github.com/custodia-labs/bargo/internal/core/ports/driven"
)

// Ensure ManifestStore implements the interface.
var _ driven.ManifestStore = (*ManifestStore)(nil)

// manifestFile mirrors the layout of Bargo.toml.
// Package fields are pointers so missing keys can fall back to defaults.
type manifestFile struct {
	Package      packageSection    `toml:"package"`
	Dependencies map[string]string `toml:"dependencies"`
}

type packageSection struct {
	Name           string  `toml:"name"`
	Version        *string `toml:"version,omitempty"`
	Numbering      *int    `toml:"numbering,omitempty"`
	CarriageReturn *bool   `toml:"carriage_return,omitempty"`
	Width          *int    `toml:"width,omitempty"`
	Labels         *bool   `toml:"labels,omitempty"`
	EmuPath        *string `toml:"emu_path,omitempty"`
}

// ManifestStore reads and writes Bargo.toml using TOML.
type ManifestStore struct {
	homeDir string
}

// NewManifestStore creates a new TOML-based manifest store.
// homeDir is used to derive the default emulator location when emu_path is unset.
func NewManifestStore(homeDir string) *ManifestStore {
	return &ManifestStore{homeDir: homeDir}
}

// Load parses the manifest at path, applying defaults for missing keys.
// Dependencies are returned sorted by name.
func (s *ManifestStore) Load(path string) (*domain.Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: could not open %s\nGo to the project's root folder", domain.ErrManifestMissing, path)
		}
		return nil, fmt.Errorf("could not open %s: %w", path, err)
	}

	var raw manifestFile
	if err := toml.Unmarshal(data, &raw); err != nil {
		var decodeErr *toml.DecodeError
		if errors.As(err, &decodeErr) {
			row, col := decodeErr.Position()
			return nil, fmt.Errorf("%w: %s:%d:%d: %s", domain.ErrManifestSyntax, path, row, col, decodeErr.Error())
		}
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrManifestSyntax, path, err)
	}

	manifest := domain.NewManifest(s.applyDefaults(raw.Package))
	for name, source := range raw.Dependencies {
		if err := domain.ValidateDependencyName(name); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		manifest.Dependencies = append(manifest.Dependencies, domain.Dependency{Name: name, Source: source})
	}
	domain.SortDependencies(manifest.Dependencies)

	return manifest, nil
}

// Save writes the manifest to path. go-toml emits map keys in sorted order.
func (s *ManifestStore) Save(path string, manifest *domain.Manifest) error {
	pkg := manifest.Package
	raw := manifestFile{
		Package: packageSection{
			Name:           pkg.Name,
			Version:        &pkg.Version,
			Numbering:      &pkg.Numbering,
			CarriageReturn: &pkg.CarriageReturn,
			Width:          &pkg.Width,
			Labels:         &pkg.Labels,
			EmuPath:        &pkg.EmuPath,
		},
		Dependencies: make(map[string]string, len(manifest.Dependencies)),
	}
	for _, dep := range manifest.Dependencies {
		raw.Dependencies[dep.Name] = dep.Source
	}

	data, err := toml.Marshal(raw)
	if err != nil {
		return fmt.Errorf("could not write to %s: %w", path, err)
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("could not write to %s: %w", path, err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("could not write to %s: %w", path, err)
	}
	return nil
}

func (s *ManifestStore) applyDefaults(raw packageSection) domain.Package {
	pkg := domain.DefaultPackage(raw.Name, s.homeDir)
	if raw.Version != nil {
		pkg.Version = *raw.Version
	}
	if raw.Numbering != nil {
		pkg.Numbering = *raw.Numbering
	}
	if raw.CarriageReturn != nil {
		pkg.CarriageReturn = *raw.CarriageReturn
	}
	if raw.Width != nil {
		pkg.Width = *raw.Width
	}
	if raw.Labels != nil {
		pkg.Labels = *raw.Labels
	}
	if raw.EmuPath != nil {
		pkg.EmuPath = *raw.EmuPath
	}
	return pkg
}
