// Package version holds the build metadata stamped into the agent
// binaries through -ldflags at release time.
package version

import "fmt"

// AppName is the binary family both commands report under.
const AppName = "opsagent"

var (
	// Version is the semantic version or git describe result.
	Version = "dev"
	// GitCommit is the short git commit hash for this build.
	GitCommit = "unknown"
	// BuildDate is the RFC3339 timestamp when the binary was built.
	BuildDate = "unknown"
)

// String renders the line printed by `opsagent version`.
func String() string {
	return fmt.Sprintf("%s %s (commit %s, built %s)", AppName, Version, GitCommit, BuildDate)
}
