// Package buildinfo carries release metadata injected at link time.
package buildinfo

// These values are injected via ldflags for release binaries and default
// to empty for local/dev builds.
var (
	Version = ""
	Commit  = ""
	Date    = ""
)
