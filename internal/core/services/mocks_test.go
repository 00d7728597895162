package services

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/custodia-labs/bargo/internal/core/domain"
)

// stubFetcher serves fixed bodies for sources with a given prefix.
type stubFetcher struct {
	prefix string
	bodies map[string]string
	err    error
	calls  int
}

func (f *stubFetcher) Name() string { return "stub" }

func (f *stubFetcher) Supports(source string) bool {
	return strings.HasPrefix(source, f.prefix)
}

func (f *stubFetcher) Fetch(_ context.Context, source string) ([]byte, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	body, ok := f.bodies[source]
	if !ok {
		return nil, errors.New("404 not found")
	}
	return []byte(body), nil
}

// fixedManifestStore returns the same manifest, dependencies untouched.
type fixedManifestStore struct {
	manifest *domain.Manifest
}

func (s *fixedManifestStore) Load(_ string) (*domain.Manifest, error) {
	c := *s.manifest
	c.Dependencies = append([]domain.Dependency(nil), s.manifest.Dependencies...)
	return &c, nil
}

func (s *fixedManifestStore) Save(_ string, m *domain.Manifest) error {
	s.manifest = m
	return nil
}

// stubRunner records process invocations.
type stubRunner struct {
	dir  string
	name string
	args []string
	err  error
}

func (r *stubRunner) Run(_ context.Context, dir, name string, args ...string) error {
	r.dir, r.name, r.args = dir, name, args
	return r.err
}

// stubRepo records repository initialisation.
type stubRepo struct {
	dirs []string
	err  error
}

func (r *stubRepo) Init(_ context.Context, dir string) error {
	r.dirs = append(r.dirs, dir)
	return r.err
}

// stubBuilder counts builds and records their options.
type stubBuilder struct {
	mu    sync.Mutex
	opts  []domain.BuildOptions
	built chan struct{}
}

func (b *stubBuilder) Build(_ context.Context, opts domain.BuildOptions) (*domain.BuildResult, error) {
	b.mu.Lock()
	b.opts = append(b.opts, opts)
	b.mu.Unlock()
	if b.built != nil {
		b.built <- struct{}{}
	}
	return &domain.BuildResult{OutputPath: "proj/game.bas"}, nil
}

func (b *stubBuilder) Fetch(_ context.Context) ([]domain.Dependency, error) {
	return nil, nil
}

func (b *stubBuilder) options() []domain.BuildOptions {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]domain.BuildOptions(nil), b.opts...)
}

// stubWatcher exposes the onChange callback to the test.
type stubWatcher struct {
	paths []string
	ready chan func(string)
	err   error
}

func (w *stubWatcher) Watch(ctx context.Context, paths []string, onChange func(string)) error {
	w.paths = paths
	if w.err != nil {
		return w.err
	}
	w.ready <- onChange
	<-ctx.Done()
	return nil
}
