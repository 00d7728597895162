package services

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/bargo/internal/core/domain"
	"github.com/custodia-labs/bargo/internal/core/ports/driven"
	"github.com/custodia-labs/bargo/internal/core/ports/driving"
	"github.com/custodia-labs/bargo/internal/logger"
)

// Ensure BuildService implements the interface.
var _ driving.BuildService = (*BuildService)(nil)

// BuildService runs the assembler pipeline for the package rooted at root.
type BuildService struct {
	root      string
	manifests driven.ManifestStore
	lines     driven.LineSource
	output    driven.OutputWriter
	fs        driven.FileSystem
	fetchers  *FetcherRegistry
	now       func() time.Time
}

// NewBuildService creates a new build service.
func NewBuildService(
	root string,
	manifests driven.ManifestStore,
	lines driven.LineSource,
	output driven.OutputWriter,
	fs driven.FileSystem,
	fetchers *FetcherRegistry,
) *BuildService {
	return &BuildService{
		root:      root,
		manifests: manifests,
		lines:     lines,
		output:    output,
		fs:        fs,
		fetchers:  fetchers,
		now:       time.Now,
	}
}

// Build assembles main.bas and its dependencies into <name>.bas.
// Nothing is written unless every input was read successfully.
func (s *BuildService) Build(ctx context.Context, opts domain.BuildOptions) (*domain.BuildResult, error) {
	if s.manifests == nil || s.lines == nil || s.output == nil {
		return nil, domain.ErrNotImplemented
	}

	started := s.now()
	warned := logger.Warnings()
	result := &domain.BuildResult{ID: uuid.NewString(), StartedAt: started}

	manifest, err := s.loadManifest()
	if err != nil {
		return nil, err
	}
	pkg := manifest.Package
	result.Package = pkg.Name
	result.Version = pkg.Version

	logger.Section("Build")
	logger.Info("Build %s: %s v%s", result.ID, pkg.Name, pkg.Version)

	if !opts.Offline {
		fetched, err := s.fetchAll(ctx, manifest.RemoteDependencies())
		if err != nil {
			return nil, err
		}
		result.Fetched = fetched
	}

	mainPath := filepath.Join(s.root, domain.SourceDir, domain.MainFile)
	mainLines, err := s.lines.ReadLines(mainPath)
	if err != nil {
		return nil, err
	}

	deps := make([]domain.Dependency, len(manifest.Dependencies))
	copy(deps, manifest.Dependencies)
	domain.SortDependencies(deps)

	doc, err := NewAssembler(s.root, s.lines).Assemble(mainLines, deps)
	if err != nil {
		return nil, err
	}
	if err := CheckNumbering(doc.Len(), pkg.Numbering); err != nil {
		return nil, err
	}

	var labels domain.LabelTable
	if pkg.Labels {
		labels = ResolveLabels(doc, pkg.Numbering)
	}

	numbered := Format(doc, labels, FormatOptions{
		Step:   pkg.Numbering,
		Width:  pkg.Width,
		Labels: pkg.Labels,
	})

	outPath := filepath.Join(s.root, pkg.OutputFile())
	padding := Padding(doc.Len(), pkg.Numbering)
	if err := s.output.Write(outPath, numbered, padding, pkg.LineTerminator()); err != nil {
		return nil, err
	}

	result.OutputPath = outPath
	result.Lines = len(numbered)
	result.Labels = len(labels)
	result.Warnings = logger.Warnings() - warned
	result.Duration = s.now().Sub(started)
	logger.Info("Wrote %d lines to %s in %s", result.Lines, outPath, result.Duration)

	return result, nil
}

// Fetch retrieves every remote dependency into src/.
func (s *BuildService) Fetch(ctx context.Context) ([]domain.Dependency, error) {
	if s.manifests == nil {
		return nil, domain.ErrNotImplemented
	}
	manifest, err := s.loadManifest()
	if err != nil {
		return nil, err
	}
	return s.fetchAll(ctx, manifest.RemoteDependencies())
}

func (s *BuildService) loadManifest() (*domain.Manifest, error) {
	manifest, err := s.manifests.Load(filepath.Join(s.root, domain.ManifestFile))
	if err != nil {
		return nil, err
	}
	if err := manifest.Package.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", domain.ManifestFile, err)
	}
	return manifest, nil
}

// fetchAll downloads remote dependencies in order. A failure is reported as
// a missing source for that dependency.
func (s *BuildService) fetchAll(ctx context.Context, deps []domain.Dependency) ([]domain.Dependency, error) {
	if len(deps) == 0 {
		return nil, nil
	}
	if s.fs == nil {
		return nil, domain.ErrNotImplemented
	}

	logger.Section("Fetch")
	var fetched []domain.Dependency
	for _, dep := range deps {
		path := filepath.Join(s.root, dep.SourcePath())

		body, err := s.fetchers.Fetch(ctx, dep.Source)
		if err != nil {
			return nil, &domain.MissingSourceError{Path: path, Hint: missingDependencyHint, Err: err}
		}
		if err := s.fs.WriteFile(path, body); err != nil {
			return nil, &domain.MissingSourceError{
				Path: path,
				Hint: missingDependencyHint,
				Err:  fmt.Errorf("%w: could not create %s: %w", domain.ErrFetchFailed, path, err),
			}
		}

		logger.Info("Fetched %s to %s (%d bytes)", dep.Source, path, len(body))
		fetched = append(fetched, dep)
	}
	return fetched, nil
}
