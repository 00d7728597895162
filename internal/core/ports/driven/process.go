package driven

import "context"

// ProcessRunner runs external programs to completion.
type ProcessRunner interface {
	// Run executes name with args in dir and waits for it to exit.
	Run(ctx context.Context, dir, name string, args ...string) error
}

// RepoInitialiser creates a version control repository.
type RepoInitialiser interface {
	// Init initialises a repository in dir.
	Init(ctx context.Context, dir string) error
}
