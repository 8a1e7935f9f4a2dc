package version

import (
	"fmt"
	"runtime"
)

var (
	// Version is the semantic version; overridden via ldflags.
	Version = "0.1.0-dev"
	// Commit is the short git SHA, or "none" for local builds.
	Commit = "none"
	// BuildTime is the UTC build timestamp.
	BuildTime = "unknown"
)

// Short returns the semantic version.
func Short() string {
	return Version
}

// Full returns the version with commit, build time and Go runtime.
func Full() string {
	return fmt.Sprintf("alarm-led %s (commit %s, built %s, %s %s/%s)",
		Version, Commit, BuildTime, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
