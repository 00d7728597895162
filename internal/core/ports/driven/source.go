package driven

// LineSource reads a text file into an ordered sequence of lines.
type LineSource interface {
	// ReadLines returns the file's lines without terminators.
	// Returns a *domain.MissingSourceError if the file cannot be opened and a
	// *domain.MalformedLineError if a line cannot be decoded.
	ReadLines(path string) ([]string, error)
}
