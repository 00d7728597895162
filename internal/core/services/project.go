package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/custodia-labs/bargo/internal/core/domain"
	"github.com/custodia-labs/bargo/internal/core/ports/driven"
	"github.com/custodia-labs/bargo/internal/core/ports/driving"
	"github.com/custodia-labs/bargo/internal/logger"
)

// helloWorld is the body of a freshly created main.bas.
const helloWorld = `PRINT "Hello World!"`

// Ensure ProjectService implements the interface.
var _ driving.ProjectService = (*ProjectService)(nil)

// ProjectService creates and cleans packages.
type ProjectService struct {
	root      string
	workDir   string
	homeDir   string
	fs        driven.FileSystem
	manifests driven.ManifestStore
	repo      driven.RepoInitialiser
}

// NewProjectService creates a new project service.
// workDir is the absolute working directory, used to name packages created by Init.
func NewProjectService(
	root, workDir, homeDir string,
	fs driven.FileSystem,
	manifests driven.ManifestStore,
	repo driven.RepoInitialiser,
) *ProjectService {
	return &ProjectService{
		root:      root,
		workDir:   workDir,
		homeDir:   homeDir,
		fs:        fs,
		manifests: manifests,
		repo:      repo,
	}
}

// New creates a package in the directory name.
func (s *ProjectService) New(ctx context.Context, name string) (*domain.Package, error) {
	if strings.TrimSpace(name) == "" || strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return nil, fmt.Errorf("%w: package name %q", domain.ErrInvalidInput, name)
	}
	return s.create(ctx, filepath.Join(s.root, name), name)
}

// Init creates a package in the project root, named after the working directory.
func (s *ProjectService) Init(ctx context.Context) (*domain.Package, error) {
	name := filepath.Base(s.workDir)
	if name == "." || name == string(filepath.Separator) || name == "" {
		return nil, fmt.Errorf("%w: could not derive a package name from %q", domain.ErrInvalidInput, s.workDir)
	}
	return s.create(ctx, s.root, name)
}

func (s *ProjectService) create(ctx context.Context, dir, name string) (*domain.Package, error) {
	if s.fs == nil || s.manifests == nil {
		return nil, domain.ErrNotImplemented
	}

	srcDir := filepath.Join(dir, domain.SourceDir)
	exists, err := s.fs.Exists(srcDir)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrPackageExists
	}

	if err := s.fs.MkdirAll(srcDir); err != nil {
		return nil, fmt.Errorf("could not create %s: %w", srcDir, err)
	}

	manifest := domain.NewManifest(domain.DefaultPackage(name, s.homeDir))
	if err := s.manifests.Save(filepath.Join(dir, domain.ManifestFile), manifest); err != nil {
		return nil, err
	}

	mainPath := filepath.Join(srcDir, domain.MainFile)
	if err := s.fs.WriteFile(mainPath, []byte(helloWorld)); err != nil {
		return nil, fmt.Errorf("could not write to %s: %w", mainPath, err)
	}
	logger.Debug("Created %s and %s", domain.ManifestFile, mainPath)

	pkg := manifest.Package
	if s.repo != nil {
		if err := s.repo.Init(ctx, dir); err != nil {
			return &pkg, fmt.Errorf("could not run git to init repo: %w", err)
		}
	}
	return &pkg, nil
}

// Clean removes the generated program.
func (s *ProjectService) Clean() (string, error) {
	if s.fs == nil || s.manifests == nil {
		return "", domain.ErrNotImplemented
	}

	manifest, err := s.manifests.Load(filepath.Join(s.root, domain.ManifestFile))
	if err != nil {
		return "", err
	}

	path := filepath.Join(s.root, manifest.Package.OutputFile())
	if err := s.fs.Remove(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("could not remove %s: %w", path, domain.ErrNotFound)
		}
		return "", fmt.Errorf("could not remove %s: %w", path, err)
	}
	return path, nil
}
