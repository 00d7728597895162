// Package filesystem provides the on-disk adapters used by a build: the
// project file system, the line source that reads BASIC files and the
// atomic writer for the generated program.
package filesystem
