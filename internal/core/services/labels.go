package services

import (
	"sort"

	"github.com/custodia-labs/bargo/internal/core/domain"
	"github.com/custodia-labs/bargo/internal/logger"
)

// ResolveLabels scans the document for LABEL declarations and maps each name
// to the line number the following physical line will carry.
//
// The declaration at 0-based index i keeps its own numbered slot as a no-op,
// so the target is (i + 2) * step. Duplicate names resolve to the last
// declaration and emit a warning. Declarations with an empty name are ignored.
func ResolveLabels(doc *domain.Document, step int) domain.LabelTable {
	table := make(domain.LabelTable)

	for _, line := range doc.Lines {
		name, ok := line.LabelName()
		if !ok {
			continue
		}
		if name == "" {
			logger.Warn("empty label declaration on assembled line %d ignored", line.Index+1)
			continue
		}

		entry := domain.LabelEntry{
			Name:             name,
			DeclarationIndex: line.Index,
			TargetLineNumber: (line.Index + 2) * step,
		}
		if prev, exists := table[name]; exists {
			logger.Warn("label %q declared on assembled lines %d and %d; using line %d",
				name, prev.DeclarationIndex+1, line.Index+1, line.Index+1)
		}
		table[name] = entry
	}

	logger.Debug("Resolved %d labels", len(table))
	return table
}

// substitutionOrder returns entries longest name first, ties broken by name,
// so a label that is a prefix of another never rewrites the longer reference.
func substitutionOrder(table domain.LabelTable) []domain.LabelEntry {
	entries := make([]domain.LabelEntry, 0, len(table))
	for _, e := range table {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool {
		if len(entries[i].Name) != len(entries[j].Name) {
			return len(entries[i].Name) > len(entries[j].Name)
		}
		return entries[i].Name < entries[j].Name
	})
	return entries
}
