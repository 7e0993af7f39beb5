// Package build provides build-time information for the CLI application.
// Version is read from the VERSION file or set via ldflags during build.
package build

import (
	_ "embed"
	"runtime/debug"
	"strings"
)

//go:embed VERSION
var embeddedVersion string

// Overridable via ldflags, e.g.
// -X github.com/tacogips/gears/internal/build.version=x.y.z
var (
	version   string
	gitCommit = "unknown"
	buildDate = "unknown"
)

// Version returns the application version.
// Priority: ldflags > embedded VERSION file
func Version() string {
	if version != "" {
		return version
	}
	if v := strings.TrimSpace(embeddedVersion); v != "" {
		return v
	}
	return "dev"
}

// GitCommit returns the commit the binary was built from.
// Priority: ldflags > vcs.revision recorded by the go command
func GitCommit() string {
	if gitCommit != "unknown" && gitCommit != "" {
		return gitCommit
	}
	if rev := vcsRevision(); rev != "" {
		return rev
	}
	return "unknown"
}

func vcsRevision() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" && len(s.Value) >= 12 {
			return s.Value[:12]
		}
	}
	return ""
}

// BuildDate returns when the binary was built.
func BuildDate() string {
	return buildDate
}
