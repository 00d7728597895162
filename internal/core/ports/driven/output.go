package driven

import "github.com/custodia-labs/bargo/internal/core/domain"

// OutputWriter emits the generated program.
type OutputWriter interface {
	// Write creates or replaces path with one rendered line per entry, each
	// followed by terminator. padding is the numeric column width.
	// Returns a *domain.OutputWriteError on failure.
	Write(path string, lines []domain.NumberedLine, padding int, terminator string) error
}
