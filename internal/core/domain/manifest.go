package domain

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

// Project layout conventions.
const (
	// ManifestFile is the package manifest in the project root.
	ManifestFile = "Bargo.toml"

	// SourceDir holds the main file and every dependency file.
	SourceDir = "src"

	// SourceExt is the extension of BASIC source and output files.
	SourceExt = ".bas"

	// MainFile is the entry point assembled first.
	MainFile = "main" + SourceExt
)

// Package defaults.
const (
	DefaultVersion   = "0.1.0"
	DefaultNumbering = 10
	DefaultWidth     = 80
	EmulatorDirName  = "fab-agon-emulator"

	// MaxNumbering is the largest accepted step between line numbers.
	MaxNumbering = 65535
)

// Line terminators understood by the writer.
const (
	TerminatorCRLF = "\r\n"
	TerminatorLF   = "\n"
)

// Package holds the [package] section of the manifest.
type Package struct {
	Name    string
	Version string

	// Numbering is the step between consecutive output line numbers.
	Numbering int

	// CarriageReturn selects CRLF line endings when true, LF otherwise.
	CarriageReturn bool

	// Width is the display width banner separators are truncated to.
	Width int

	// Labels enables LABEL/GOTO/GOSUB resolution.
	Labels bool

	// EmuPath is the folder containing the emulator binary and its sdcard.
	EmuPath string
}

// DefaultPackage returns a package populated with default settings.
// homeDir is used to derive the default emulator location.
func DefaultPackage(name, homeDir string) Package {
	if homeDir == "" {
		homeDir = "./"
	}
	return Package{
		Name:           name,
		Version:        DefaultVersion,
		Numbering:      DefaultNumbering,
		CarriageReturn: true,
		Width:          DefaultWidth,
		Labels:         true,
		EmuPath:        filepath.Join(homeDir, EmulatorDirName),
	}
}

// LineTerminator returns the configured line terminator.
func (p Package) LineTerminator() string {
	if p.CarriageReturn {
		return TerminatorCRLF
	}
	return TerminatorLF
}

// OutputFile returns the generated program's file name.
func (p Package) OutputFile() string {
	return p.Name + SourceExt
}

// Validate checks the settings the assembler relies on.
func (p Package) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("%w: package name is empty", ErrInvalidInput)
	}
	if p.Numbering <= 0 {
		return fmt.Errorf("%w: numbering must be positive, got %d", ErrInvalidInput, p.Numbering)
	}
	if p.Numbering > MaxNumbering {
		return fmt.Errorf("%w: numbering must be at most %d, got %d", ErrInvalidInput, MaxNumbering, p.Numbering)
	}
	if p.Width <= 0 {
		return fmt.Errorf("%w: width must be positive, got %d", ErrInvalidInput, p.Width)
	}
	return nil
}

// Dependency is a named BASIC source merged into the build.
// Source is empty for local dependencies already present under src/.
type Dependency struct {
	Name   string
	Source string
}

// IsRemote reports whether the dependency must be fetched before assembly.
func (d Dependency) IsRemote() bool {
	return d.Source != ""
}

// SourcePath returns the local path the dependency is read from.
func (d Dependency) SourcePath() string {
	return filepath.Join(SourceDir, d.Name+SourceExt)
}

// BannerName returns the upper-cased file name shown in the import banner.
func (d Dependency) BannerName() string {
	return strings.ToUpper(d.Name) + strings.ToUpper(SourceExt)
}

// ValidateDependencyName rejects names that cannot map to a file under src/.
func ValidateDependencyName(name string) error {
	switch {
	case strings.TrimSpace(name) == "":
		return fmt.Errorf("%w: dependency name is empty", ErrInvalidInput)
	case strings.ContainsAny(name, `/\`), name == ".", name == "..":
		return fmt.Errorf("%w: dependency name %q must be a plain file name", ErrInvalidInput, name)
	case strings.EqualFold(name+SourceExt, MainFile):
		return fmt.Errorf("%w: %q is reserved for the main file", ErrInvalidInput, name)
	}
	return nil
}

// Manifest is the parsed Bargo.toml.
type Manifest struct {
	Package Package

	// Dependencies is kept sorted by name so builds are reproducible.
	Dependencies []Dependency
}

// NewManifest returns a manifest with no dependencies.
func NewManifest(pkg Package) *Manifest {
	return &Manifest{Package: pkg}
}

// SortDependencies orders dependencies lexicographically by name.
func SortDependencies(deps []Dependency) {
	sort.SliceStable(deps, func(i, j int) bool {
		return deps[i].Name < deps[j].Name
	})
}

// Dependency returns the named dependency.
func (m *Manifest) Dependency(name string) (Dependency, bool) {
	for _, d := range m.Dependencies {
		if d.Name == name {
			return d, true
		}
	}
	return Dependency{}, false
}

// SetDependency inserts or replaces a dependency, keeping the list sorted.
// It returns true if the dependency was newly added.
func (m *Manifest) SetDependency(dep Dependency) bool {
	for i, d := range m.Dependencies {
		if d.Name == dep.Name {
			m.Dependencies[i] = dep
			return false
		}
	}
	m.Dependencies = append(m.Dependencies, dep)
	SortDependencies(m.Dependencies)
	return true
}

// RemoveDependency deletes the named dependency.
// It returns false if the dependency was not declared.
func (m *Manifest) RemoveDependency(name string) bool {
	for i, d := range m.Dependencies {
		if d.Name == name {
			m.Dependencies = append(m.Dependencies[:i], m.Dependencies[i+1:]...)
			return true
		}
	}
	return false
}

// RemoteDependencies returns the dependencies that need fetching, in order.
func (m *Manifest) RemoteDependencies() []Dependency {
	var remote []Dependency
	for _, d := range m.Dependencies {
		if d.IsRemote() {
			remote = append(remote, d)
		}
	}
	return remote
}
