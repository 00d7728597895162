// Package github fetches dependency sources from GitHub repositories through
// the contents API.
//
// Sources take the form:
//
//	github:owner/repo/path/to/file.bas[@ref]
//
// ref may be a branch, tag or commit SHA and defaults to the repository's
// default branch.
package github
