package domain

import (
	"fmt"
	"strings"
	"time"
)

// Source keywords recognised by the assembler. Matching is case-insensitive.
const (
	KeywordLabel = "LABEL"
	KeywordRem   = "REM"
	KeywordGoto  = "GOTO"
	KeywordGosub = "GOSUB"

	// NoOp replaces label declarations in the output.
	NoOp = ":"
)

// RawLine is one line of source text and its 0-based position in the
// assembled document.
type RawLine struct {
	Index int
	Text  string
}

// Document is the flat line arena produced by assembly.
// Label targets are computed by index arithmetic over it.
type Document struct {
	Lines []RawLine
}

// NewDocument builds a document from plain text, indexing lines in order.
func NewDocument(texts []string) *Document {
	doc := &Document{Lines: make([]RawLine, 0, len(texts))}
	for _, t := range texts {
		doc.Append(t)
	}
	return doc
}

// Append adds a line at the end of the document.
func (d *Document) Append(text string) {
	d.Lines = append(d.Lines, RawLine{Index: len(d.Lines), Text: text})
}

// Len returns the number of lines.
func (d *Document) Len() int {
	return len(d.Lines)
}

// Texts returns the line texts in order.
func (d *Document) Texts() []string {
	out := make([]string, len(d.Lines))
	for i, l := range d.Lines {
		out[i] = l.Text
	}
	return out
}

// LabelName returns the label declared by the line, if it is a declaration.
// A declaration starts with "LABEL " in any case; the name is the rest of
// the line, taken verbatim.
func (l RawLine) LabelName() (string, bool) {
	prefix := KeywordLabel + " "
	if len(l.Text) < len(prefix) || !strings.EqualFold(l.Text[:len(prefix)], prefix) {
		return "", false
	}
	return l.Text[len(prefix):], true
}

// IsBannerSeparator reports whether the line is a REM line ending in '='.
func (l RawLine) IsBannerSeparator() bool {
	if len(l.Text) < len(KeywordRem) || !strings.EqualFold(l.Text[:len(KeywordRem)], KeywordRem) {
		return false
	}
	return strings.HasSuffix(l.Text, "=")
}

// LabelEntry is a resolved label declaration.
type LabelEntry struct {
	Name string
	// DeclarationIndex is the 0-based position of the LABEL line.
	DeclarationIndex int
	// TargetLineNumber is the number carried by the line after the declaration.
	TargetLineNumber int
}

// LabelTable maps label names to their resolved entries.
type LabelTable map[string]LabelEntry

// NumberedLine is one line of the generated program.
type NumberedLine struct {
	Number int
	Text   string
}

// Render right-justifies the number in a field of the given width,
// followed by a single space and the text.
func (n NumberedLine) Render(padding int) string {
	return fmt.Sprintf("%*d %s", padding, n.Number, n.Text)
}

// BuildOptions control a single build invocation.
type BuildOptions struct {
	// Offline skips fetching remote dependencies and uses the files on disk.
	Offline bool
}

// BuildResult summarises a completed build.
type BuildResult struct {
	ID         string
	Package    string
	Version    string
	OutputPath string
	Lines      int
	Labels     int
	Warnings   int
	Fetched    []Dependency
	StartedAt  time.Time
	Duration   time.Duration
}
