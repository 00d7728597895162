package services

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/custodia-labs/bargo/internal/core/domain"
	"github.com/custodia-labs/bargo/internal/core/ports/driven"
	"github.com/custodia-labs/bargo/internal/logger"
)

// bannerRuleWidth is the number of '=' characters in a banner separator.
const bannerRuleWidth = 76

// missingDependencyHint is appended to errors for dependency files that cannot be opened.
const missingDependencyHint = "Make sure this dep exists in " + domain.SourceDir + "/"

// BannerLines returns the five-line comment block inserted before a dependency body.
func BannerLines(dep domain.Dependency) []string {
	rule := domain.KeywordRem + " " + strings.Repeat("=", bannerRuleWidth)
	return []string{
		domain.NoOp,
		rule,
		domain.KeywordRem + " IMPORT " + dep.BannerName(),
		rule,
		domain.NoOp,
	}
}

// Assembler concatenates the main source with its dependencies.
type Assembler struct {
	root  string
	lines driven.LineSource
}

// NewAssembler creates an assembler reading dependency files relative to root.
func NewAssembler(root string, lines driven.LineSource) *Assembler {
	return &Assembler{root: root, lines: lines}
}

// Assemble emits the main lines unmodified, then for each dependency in the
// given order its banner followed by its body, verbatim.
func (a *Assembler) Assemble(mainLines []string, deps []domain.Dependency) (*domain.Document, error) {
	if a.lines == nil {
		return nil, domain.ErrNotImplemented
	}

	doc := domain.NewDocument(mainLines)
	logger.Debug("Main file: %d lines", len(mainLines))

	for _, dep := range deps {
		path := filepath.Join(a.root, dep.SourcePath())
		body, err := a.lines.ReadLines(path)
		if err != nil {
			return nil, withDependencyHint(err)
		}

		for _, line := range BannerLines(dep) {
			doc.Append(line)
		}
		for _, line := range body {
			doc.Append(line)
		}
		logger.Debug("Dependency %s: %d lines from %s", dep.Name, len(body), path)
	}

	return doc, nil
}

// withDependencyHint adds the expected location to a missing dependency error.
func withDependencyHint(err error) error {
	var missing *domain.MissingSourceError
	if errors.As(err, &missing) && missing.Hint == "" {
		hinted := *missing
		hinted.Hint = missingDependencyHint
		return &hinted
	}
	return err
}
