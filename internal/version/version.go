// Where: cli/internal/version/version.go
// What: Version information retrieval.
// Why: Provide build-time version information (Git commit, state) to the CLI.
package version

import (
	"fmt"
	"runtime/debug"
)

// binaryName prefixes every version string so piped output stays
// attributable (e.g. "create-api 1a2b3c4").
const binaryName = "create-api"

// GetVersion returns the version line printed by the version command:
// the binary name followed by the VCS revision from build info, with a
// "(dirty)" suffix when the tree was modified, or "dev" when no build
// info is available.
func GetVersion() string {
	return fmt.Sprintf("%s %s", binaryName, revisionFromBuildInfo())
}

func revisionFromBuildInfo() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "dev"
	}

	var revision string
	var modified bool
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value
			if len(revision) > 7 {
				revision = revision[:7]
			}
		case "vcs.modified":
			modified = setting.Value == "true"
		}
	}

	if revision == "" {
		return "dev"
	}
	if modified {
		return revision + " (dirty)"
	}
	return revision
}
