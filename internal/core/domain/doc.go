// Package domain defines the core entities for Bargo.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Manifest: The package description loaded from Bargo.toml
//   - Dependency: A named BASIC source merged into the build
//   - Document: The flat, indexable line arena produced by assembly
//   - LabelTable: Symbolic jump targets resolved to line numbers
//   - NumberedLine: A single line of the generated program
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
