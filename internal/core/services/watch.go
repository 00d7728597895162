package services

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/custodia-labs/bargo/internal/core/domain"
	"github.com/custodia-labs/bargo/internal/core/ports/driven"
	"github.com/custodia-labs/bargo/internal/core/ports/driving"
	"github.com/custodia-labs/bargo/internal/logger"
)

// DefaultDebounce coalesces bursts of file events into a single rebuild.
const DefaultDebounce = 200 * time.Millisecond

// Ensure WatchService implements the interface.
var _ driving.WatchService = (*WatchService)(nil)

// WatchService rebuilds the package when src/ or Bargo.toml change.
// Builds run one at a time on the watching goroutine.
type WatchService struct {
	root     string
	builder  driving.BuildService
	watcher  driven.SourceWatcher
	debounce time.Duration
}

// NewWatchService creates a new watch service.
func NewWatchService(root string, builder driving.BuildService, watcher driven.SourceWatcher) *WatchService {
	return &WatchService{root: root, builder: builder, watcher: watcher, debounce: DefaultDebounce}
}

// SetDebounce overrides the debounce interval.
func (s *WatchService) SetDebounce(d time.Duration) {
	s.debounce = d
}

// Watch builds once with fetching enabled, then rebuilds offline on change.
// Rebuilds skip fetching because fetched files land in src/ and would
// otherwise retrigger the watcher.
func (s *WatchService) Watch(ctx context.Context, onBuild func(*domain.BuildResult, error)) error {
	if s.builder == nil || s.watcher == nil {
		return domain.ErrNotImplemented
	}

	output := ""
	result, err := s.builder.Build(ctx, domain.BuildOptions{})
	if result != nil {
		output = result.OutputPath
	}
	onBuild(result, err)

	changes := make(chan string, 64)
	errCh := make(chan error, 1)
	watchCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	paths := []string{
		filepath.Join(s.root, domain.SourceDir),
		filepath.Join(s.root, domain.ManifestFile),
	}
	go func() {
		errCh <- s.watcher.Watch(watchCtx, paths, func(path string) {
			select {
			case changes <- path:
			default:
			}
		})
	}()

	var timer *time.Timer
	var fire <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case err := <-errCh:
			if ctx.Err() != nil {
				return nil
			}
			return err
		case path := <-changes:
			if !relevant(path, output) {
				continue
			}
			logger.Debug("Change detected: %s", path)
			if timer == nil {
				timer = time.NewTimer(s.debounce)
			} else {
				timer.Reset(s.debounce)
			}
			fire = timer.C
		case <-fire:
			fire = nil
			result, err := s.builder.Build(ctx, domain.BuildOptions{Offline: true})
			if result != nil {
				output = result.OutputPath
			}
			onBuild(result, err)
		}
	}
}

// relevant filters editor swap files and the generated program.
func relevant(path, output string) bool {
	if output != "" && filepath.Clean(path) == filepath.Clean(output) {
		return false
	}
	base := filepath.Base(path)
	return !strings.HasPrefix(base, ".") && !strings.HasSuffix(base, "~")
}
