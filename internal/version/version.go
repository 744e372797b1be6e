// Package version holds the releasekit version information.
// This is a separate package to avoid import cycles - it has no dependencies
// and can be safely imported from any package.
package version

import "fmt"

var (
	// Version information - set via ldflags during build
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// IsDevBuild returns true if running a development build (not a release).
func IsDevBuild() bool {
	return Version == "dev"
}

// String returns a one-line version summary, e.g. "releasekit 1.2.0 (abc123, 2026-01-15)".
func String() string {
	return fmt.Sprintf("releasekit %s (%s, %s)", Version, Commit, BuildDate)
}
