package github

import (
	"fmt"
	"strings"
)

// SourcePrefix marks a dependency source served from GitHub.
const SourcePrefix = "github:"

// Source identifies a single file in a GitHub repository.
type Source struct {
	Owner string
	Repo  string
	Path  string
	// Ref is empty for the default branch.
	Ref string
}

// ParseSource parses "github:owner/repo/path[@ref]".
func ParseSource(source string) (Source, error) {
	rest, ok := strings.CutPrefix(source, SourcePrefix)
	if !ok {
		return Source{}, fmt.Errorf("%w: %q lacks the %s prefix", ErrInvalidSource, source, SourcePrefix)
	}

	var ref string
	if i := strings.LastIndex(rest, "@"); i >= 0 {
		rest, ref = rest[:i], rest[i+1:]
		if ref == "" {
			return Source{}, fmt.Errorf("%w: %q has an empty ref", ErrInvalidSource, source)
		}
	}

	parts := strings.SplitN(strings.Trim(rest, "/"), "/", 3)
	if len(parts) < 3 || parts[0] == "" || parts[1] == "" || parts[2] == "" {
		return Source{}, fmt.Errorf("%w: %q, expected %sowner/repo/path[@ref]", ErrInvalidSource, source, SourcePrefix)
	}

	return Source{Owner: parts[0], Repo: parts[1], Path: parts[2], Ref: ref}, nil
}

// String formats the source back into its manifest form.
func (s Source) String() string {
	out := SourcePrefix + s.Owner + "/" + s.Repo + "/" + s.Path
	if s.Ref != "" {
		out += "@" + s.Ref
	}
	return out
}
