// Package watch notifies the watch service of source changes using fsnotify.
package watch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/bargo/internal/core/ports/driven"
	"github.com/custodia-labs/bargo/internal/logger"
)

// Ensure Watcher implements the interface.
var _ driven.SourceWatcher = (*Watcher)(nil)

// Watcher reports file changes under a set of directories and files.
// Files are watched through their parent directory so editors that save by
// rename keep being observed.
type Watcher struct{}

// New creates a source watcher.
func New() *Watcher {
	return &Watcher{}
}

// Watch blocks until ctx is cancelled, calling onChange for every created,
// written, removed or renamed path.
func (w *Watcher) Watch(ctx context.Context, paths []string, onChange func(path string)) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer fsw.Close()

	f, err := newFilter(paths)
	if err != nil {
		return err
	}
	for _, dir := range f.dirs() {
		if err := fsw.Add(dir); err != nil {
			return fmt.Errorf("watch %s: %w", dir, err)
		}
		logger.Debug("Watching %s", dir)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if path, ok := f.handleEvent(event); ok {
				onChange(path)
			}
		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error: %v", err)
		}
	}
}

// filter maps watched directories to the events of interest.
type filter struct {
	// whole directories, every entry matters
	trees map[string]bool
	// parent directory -> file names that matter
	files map[string]map[string]bool
}

func newFilter(paths []string) (*filter, error) {
	f := &filter{trees: make(map[string]bool), files: make(map[string]map[string]bool)}
	for _, p := range paths {
		p = filepath.Clean(p)
		info, err := os.Stat(p)
		if err != nil {
			return nil, fmt.Errorf("watch %s: %w", p, err)
		}
		if info.IsDir() {
			f.trees[p] = true
			continue
		}
		dir := filepath.Dir(p)
		if f.files[dir] == nil {
			f.files[dir] = make(map[string]bool)
		}
		f.files[dir][filepath.Base(p)] = true
	}
	return f, nil
}

func (f *filter) dirs() []string {
	out := make([]string, 0, len(f.trees)+len(f.files))
	for d := range f.trees {
		out = append(out, d)
	}
	for d := range f.files {
		if !f.trees[d] {
			out = append(out, d)
		}
	}
	return out
}

// handleEvent returns the changed path if the event should trigger a rebuild.
func (f *filter) handleEvent(event fsnotify.Event) (string, bool) {
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return "", false
	}

	path := filepath.Clean(event.Name)
	dir := filepath.Dir(path)
	if f.trees[dir] || f.files[dir][filepath.Base(path)] {
		return path, true
	}
	return "", false
}
