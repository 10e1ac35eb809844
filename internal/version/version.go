// Package version exposes build metadata stamped in via -ldflags.
package version

// Defaults apply to plain `go build` with no stamping.
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)
