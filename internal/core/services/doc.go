// Package services implements the driving port interfaces.
// Services contain the core build logic and orchestrate
// calls to driven ports (adapters).
//
// The assembler pipeline runs in strict sequence:
//
//	assemble -> resolve labels -> number/format -> write
//
// ResolveLabels and Format are pure functions over the flat line arena;
// assembly reads through a LineSource and only the BuildService writes.
package services
