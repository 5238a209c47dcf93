package version

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// Version information for the jsxc CLI.
// These variables can be overridden at build time via -ldflags.
var (
	// Version is the semantic version of the CLI.
	Version = "0.1.0-dev"

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)

var (
	versionMajorColor = color.New(color.FgYellow, color.Bold)
	versionMinorColor = color.New(color.FgGreen, color.Bold)
	versionPatchColor = color.New(color.FgBlue, color.Bold)
)

// Colored renders the version with each numeric part in its own color.
// color.NoColor turns it back into plain text.
func Colored() string {
	core, suffix, _ := strings.Cut(Version, "-")
	parts := strings.SplitN(core, ".", 3)
	if len(parts) != 3 {
		return Version
	}
	out := versionMajorColor.Sprint(parts[0]) + "." + versionMinorColor.Sprint(parts[1]) + "." + versionPatchColor.Sprint(parts[2])
	if suffix != "" {
		out += "-" + suffix
	}
	return out
}

// Banner is the full `jsxc version` line.
func Banner() string {
	var b strings.Builder
	fmt.Fprintf(&b, "jsxc %s", Colored())
	if GitCommit != "" {
		fmt.Fprintf(&b, " (%s)", GitCommit)
	}
	if BuildDate != "" {
		fmt.Fprintf(&b, " built %s", BuildDate)
	}
	return b.String()
}
