package driven

import "context"

// Fetcher retrieves the contents of a remote dependency.
type Fetcher interface {
	// Name identifies the fetcher in diagnostics.
	Name() string

	// Supports reports whether this fetcher understands the source string.
	Supports(source string) bool

	// Fetch downloads the dependency body.
	Fetch(ctx context.Context, source string) ([]byte, error)
}
