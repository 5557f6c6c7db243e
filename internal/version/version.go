// Package version carries the CLI's build metadata. All variables can
// be overridden at build time via -ldflags.
package version

import (
	"strings"

	"github.com/fatih/color"
)

var (
	// Version is the semantic version of the CLI.
	Version = "0.1.0-dev"

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)

var segmentColors = []*color.Color{
	color.New(color.FgYellow, color.Bold),
	color.New(color.FgGreen, color.Bold),
	color.New(color.FgBlue, color.Bold),
}

// Colored tints the dot-separated version segments for terminal
// banners. Degrades to the plain string when color is disabled.
func Colored() string {
	parts := strings.SplitN(Version, ".", len(segmentColors))
	for i, part := range parts {
		parts[i] = segmentColors[i].Sprint(part)
	}
	return strings.Join(parts, ".")
}
