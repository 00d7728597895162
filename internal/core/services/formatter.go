package services

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/custodia-labs/bargo/internal/core/domain"
)

// separatorOverhead is subtracted from the display width, together with the
// number padding, when truncating banner separators: the space after the
// number plus a two column margin.
const separatorOverhead = 3

// FormatOptions configures numbering and formatting.
type FormatOptions struct {
	// Step is the increment between consecutive line numbers.
	Step int

	// Width is the display width banner separators must fit in.
	Width int

	// Labels enables GOTO/GOSUB label substitution.
	Labels bool
}

// Padding returns the column width of the largest line number a document of
// lineCount lines will carry.
func Padding(lineCount, step int) int {
	return len(strconv.Itoa(lineCount * step))
}

// CheckNumbering reports ErrInvalidInput when numbering lineCount lines by
// step, including the label target one step past the last line, would not
// fit in an int.
func CheckNumbering(lineCount, step int) error {
	if step <= 0 {
		return fmt.Errorf("%w: numbering must be positive, got %d", domain.ErrInvalidInput, step)
	}
	if lineCount+1 > math.MaxInt/step {
		return fmt.Errorf("%w: %d lines numbered by %d exceed the largest line number",
			domain.ErrInvalidInput, lineCount, step)
	}
	return nil
}

// Format assigns line numbers and rewrites each line's text:
//
//   - LABEL declarations become a no-op ':'.
//   - REM lines ending in '=' are truncated to fit the display width.
//   - Any other line has "GOTO <label>" and "GOSUB <label>" replaced with the
//     resolved line number when labels are enabled.
//
// Substitution is plain text replacement; it also rewrites matches inside
// string literals or longer identifiers. Unknown labels are left unchanged.
func Format(doc *domain.Document, labels domain.LabelTable, opts FormatOptions) []domain.NumberedLine {
	padding := Padding(doc.Len(), opts.Step)
	limit := opts.Width - (padding + separatorOverhead)
	if limit < 0 {
		limit = 0
	}

	var order []domain.LabelEntry
	if opts.Labels {
		order = substitutionOrder(labels)
	}

	out := make([]domain.NumberedLine, 0, doc.Len())
	for _, line := range doc.Lines {
		var text string
		switch {
		case isDeclaration(line):
			text = domain.NoOp
		case line.IsBannerSeparator():
			text = truncateRunes(line.Text, limit)
		default:
			text = substituteLabels(line.Text, order)
		}
		out = append(out, domain.NumberedLine{
			Number: (line.Index + 1) * opts.Step,
			Text:   text,
		})
	}
	return out
}

// Render formats numbered lines with a uniform numeric column.
func Render(lines []domain.NumberedLine, padding int) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = l.Render(padding)
	}
	return out
}

func isDeclaration(line domain.RawLine) bool {
	_, ok := line.LabelName()
	return ok
}

// substituteLabels scans text once from left to right. At each GOTO or GOSUB
// keyword the longest label name that follows is replaced by its target, and
// the scan resumes after the name, so inserted numbers are never rescanned.
func substituteLabels(text string, order []domain.LabelEntry) string {
	if len(order) == 0 {
		return text
	}

	var b strings.Builder
	b.Grow(len(text))
	for i := 0; i < len(text); {
		kw := keywordAt(text, i)
		if kw == "" {
			b.WriteByte(text[i])
			i++
			continue
		}
		b.WriteString(kw)
		i += len(kw)
		if e, ok := matchLabel(text[i:], order); ok {
			b.WriteString(strconv.Itoa(e.TargetLineNumber))
			i += len(e.Name)
		}
	}
	return b.String()
}

// keywordAt returns the jump keyword and its trailing space starting at i.
func keywordAt(text string, i int) string {
	for _, kw := range []string{domain.KeywordGoto + " ", domain.KeywordGosub + " "} {
		if strings.HasPrefix(text[i:], kw) {
			return kw
		}
	}
	return ""
}

// matchLabel relies on order being sorted longest name first.
func matchLabel(rest string, order []domain.LabelEntry) (domain.LabelEntry, bool) {
	for _, e := range order {
		if strings.HasPrefix(rest, e.Name) {
			return e, true
		}
	}
	return domain.LabelEntry{}, false
}

func truncateRunes(s string, n int) string {
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
