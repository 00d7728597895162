// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - ManifestStore: Bargo.toml persistence
//   - LineSource: Reads BASIC source files line by line
//   - OutputWriter: Writes the numbered program
//   - FileSystem: Project scaffolding and file management
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - Fetcher: Retrieves remote dependencies. Without one, only local dependencies build.
//   - ProcessRunner: Launches the emulator and version control tools.
//   - SourceWatcher: Change notifications for watch mode.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
