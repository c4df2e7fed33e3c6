// Package version reports the build version of the minify-html-literals
// binary.
package version

import (
	"fmt"
	"runtime/debug"
	"strings"
)

// Set at build time via -ldflags "-X ...".
var (
	Version   = "dev"
	GitCommit = "unknown"
	GitTag    = "unknown"
	GitDirty  = "" // "dirty" when built from an unclean working tree
)

// GetVersion returns the version string shown by the --version flag.
// Precedence: ldflags Version, then module build info, then git tag and
// commit, then "dev".
func GetVersion() string {
	if Version != "dev" {
		return Version
	}

	if info, ok := debug.ReadBuildInfo(); ok {
		if info.Main.Version != "(devel)" && info.Main.Version != "" {
			return info.Main.Version
		}
	}

	if GitTag != "unknown" && GitCommit != "unknown" {
		v := GitTag
		commit := GitCommit
		if len(commit) > 7 {
			commit = commit[:7]
		}
		if commit != "" && !strings.HasSuffix(GitTag, commit) {
			v = fmt.Sprintf("%s-%s", GitTag, commit)
		}
		if GitDirty == "dirty" {
			v += "-dirty"
		}
		return v
	}

	return "dev"
}
