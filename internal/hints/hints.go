// Package hints produces short actionable suffixes for CLI error messages,
// formatted as "\n  hint: <text>".
package hints

import (
	"os"
	"strings"

	"github.com/alnah/go-brandprint/internal/fileutil"
)

// IsInContainer reports whether the process runs inside Docker.
var IsInContainer = func() bool {
	return fileutil.FileExists("/.dockerenv")
}

// ForBrowserConnect suggests the rod environment variables that usually fix
// a failed Chrome launch.
func ForBrowserConnect() string {
	var hints []string

	inCI := os.Getenv("CI") != "" ||
		os.Getenv("GITHUB_ACTIONS") != "" ||
		os.Getenv("GITLAB_CI") != "" ||
		os.Getenv("JENKINS_URL") != ""

	if (inCI || IsInContainer()) && os.Getenv("ROD_NO_SANDBOX") != "1" {
		hints = append(hints, "set ROD_NO_SANDBOX=1 for Docker/CI")
	}
	if os.Getenv("ROD_BROWSER_BIN") == "" {
		hints = append(hints, "set ROD_BROWSER_BIN to use custom Chrome")
	}

	return formatHints(hints)
}

// ForTimeout points at the --timeout flag.
func ForTimeout() string {
	return format("the first render starts Chrome; raise --timeout on slow machines")
}

// ForConfigNotFound suggests --config, or the user config path from the
// searched list.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"
	for _, p := range searchedPaths {
		if strings.Contains(p, ".config/brandprint") {
			hint += " or create " + p
			break
		}
	}
	return format(hint)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForUnknownAsset lists the asset families that can be requested.
func ForUnknownAsset(available []string) string {
	return forAvailable(available)
}

// ForUnknownTemplate lists the templates of the requested asset.
func ForUnknownTemplate(available []string) string {
	return forAvailable(available)
}

// ForMarkImage explains what a logo or icon source may be.
func ForMarkImage() string {
	return format("logo and icon accept an SVG or PNG file, a data: URI or an https URL")
}

// ForMissingFields names the required fields left blank.
func ForMissingFields(keys []string) string {
	if len(keys) == 0 {
		return ""
	}
	return format("set " + strings.Join(keys, ", ") + " with --field key=value")
}

func forAvailable(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
