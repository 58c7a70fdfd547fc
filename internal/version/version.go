package version

import "github.com/fatih/color"

// Build metadata for the conduct CLI, overridable via -ldflags.
var (
	Major = "0"
	Minor = "2"
	Patch = "0"

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)

var (
	majorColor = color.New(color.FgYellow, color.Bold)
	minorColor = color.New(color.FgGreen, color.Bold)
	patchColor = color.New(color.FgBlue, color.Bold)
)

// String returns the colored semantic version of the CLI.
func String() string {
	return majorColor.Sprint(Major) + "." + minorColor.Sprint(Minor) + "." + patchColor.Sprint(Patch)
}

// Plain returns the version without color codes, for --version output
// captured by scripts.
func Plain() string {
	return Major + "." + Minor + "." + Patch
}
