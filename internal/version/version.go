// Package version provides version information for the atlas library.
package version

import (
	"fmt"
	"runtime"
)

// Build-time variables set by ldflags
var (
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
	GoVersion = runtime.Version()
)

// String returns a single-line version description.
func String() string {
	return fmt.Sprintf("atlas %s (commit %s, built %s, %s)", Version, GitCommit, BuildDate, GoVersion)
}
