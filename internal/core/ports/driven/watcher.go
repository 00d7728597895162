package driven

import "context"

// SourceWatcher reports file changes.
type SourceWatcher interface {
	// Watch observes paths (files or directories) and calls onChange for every
	// relevant event. It blocks until ctx is cancelled or watching fails.
	Watch(ctx context.Context, paths []string, onChange func(path string)) error
}
