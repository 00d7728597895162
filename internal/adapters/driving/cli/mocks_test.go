package cli

import (
	"bytes"
	"context"

	"github.com/custodia-labs/bargo/internal/core/domain"
)

type mockBuildService struct {
	opts    domain.BuildOptions
	result  *domain.BuildResult
	fetched []domain.Dependency
	err     error
}

func (m *mockBuildService) Build(_ context.Context, opts domain.BuildOptions) (*domain.BuildResult, error) {
	m.opts = opts
	if m.err != nil {
		return nil, m.err
	}
	return m.result, nil
}

func (m *mockBuildService) Fetch(_ context.Context) ([]domain.Dependency, error) {
	return m.fetched, m.err
}

type mockWatchService struct {
	results []*domain.BuildResult
	errs    []error
}

func (m *mockWatchService) Watch(_ context.Context, onBuild func(*domain.BuildResult, error)) error {
	for i := range m.results {
		onBuild(m.results[i], m.errs[i])
	}
	return nil
}

type mockDependencyService struct {
	deps      []domain.Dependency
	addedName string
	addedSrc  string
	removed   string
	existing  bool
	err       error
}

func (m *mockDependencyService) Add(name, source string) (bool, error) {
	m.addedName, m.addedSrc = name, source
	return !m.existing, m.err
}

func (m *mockDependencyService) Remove(name string) error {
	m.removed = name
	return m.err
}

func (m *mockDependencyService) List() ([]domain.Dependency, error) {
	return m.deps, m.err
}

type mockProjectService struct {
	pkg     *domain.Package
	newName string
	cleaned string
	err     error
}

func (m *mockProjectService) New(_ context.Context, name string) (*domain.Package, error) {
	m.newName = name
	return m.pkg, m.err
}

func (m *mockProjectService) Init(_ context.Context) (*domain.Package, error) {
	return m.pkg, m.err
}

func (m *mockProjectService) Clean() (string, error) {
	if m.err != nil {
		return "", m.err
	}
	return m.cleaned, nil
}

type mockEmulatorService struct {
	ran bool
	err error
}

func (m *mockEmulatorService) Run(_ context.Context) error {
	m.ran = true
	return m.err
}

// execute runs the root command with args and returns its output.
func execute(args ...string) (string, error) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()
	return buf.String(), err
}
