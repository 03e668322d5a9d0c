// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"fmt"
	"path/filepath"
	"strings"
)

// userConfigDirName is the per-user config directory searched by the config loader.
const userConfigDirName = "go-mdbundle"

// ForManifestNotFound returns hints for an unreadable table of contents.
// Suggests --root when summary looks relative to a different directory.
func ForManifestNotFound(root, summary string) string {
	if filepath.IsAbs(summary) {
		return format("check that " + summary + " exists and is readable")
	}
	return format(fmt.Sprintf("%s is resolved against --root (%s); use --summary to point elsewhere", summary, root))
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in the user config directory.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if filepath.Base(filepath.Dir(p)) == userConfigDirName {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output write errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForMissingDocuments returns a hint when chapters listed in the manifest
// could not be found. Returns "" when nothing is missing.
func ForMissingDocuments(missing int) string {
	if missing == 0 {
		return ""
	}
	noun := "chapter"
	if missing > 1 {
		noun = "chapters"
	}
	return formatHints([]string{
		fmt.Sprintf("%d %s missing", missing, noun),
		"links in the table of contents are relative to --root",
	})
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
