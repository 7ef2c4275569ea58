// Package version provides build and version information.
package version

import (
	"fmt"
	"runtime"
)

// Version is the current application version.
const Version = "0.3.0"

// Commit is the source revision, set at build time with
// -ldflags "-X github.com/litescript/ls-jyotish/internal/version.Commit=...".
var Commit = "dev"

// Milestones:
// 0.3.0 - HTTP API, festival calendar hot reload, event log view
// 0.2.0 - Birth charts: houses, aspects, transits, dasha timeline
// 0.1.0 - Initial release: Panchang dashboard, Rahu Kaal and muhurat windows

// String returns the version line printed by the version command.
func String() string {
	return fmt.Sprintf("ls-jyotish v%s (%s, %s/%s)", Version, Commit, runtime.GOOS, runtime.GOARCH)
}
