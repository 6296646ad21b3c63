// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"strings"
)

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config and creating a config in ~/.config/go-dealsite/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/dealsite.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(p, ".config/go-dealsite") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForFormatError returns the expected shape of a deal source file.
func ForFormatError() string {
	return format("deal files must start with a --- line, then key: value lines, then a closing --- line")
}

// ForValidation suggests how to fix or bypass deal validation failures.
func ForValidation() string {
	return format("fix the fields listed above, or set validation.strict: false to build anyway")
}

// ForDealsDir returns hints when the deals directory is missing or empty.
func ForDealsDir(dir string) string {
	if dir == "" {
		return format("set input.dealsDir or pass --deals")
	}
	return format("put *.md deal files in " + dir + " or pass --deals")
}

// ForBlurbs returns hints for an invalid category blurb sidecar.
func ForBlurbs() string {
	return format(`blurbs file must be a JSON object of category slug to text, e.g. {"banking": "..."}`)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForTemplateNotFound lists the templates that can be overridden.
func ForTemplateNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// ForSuggestions formats "did you mean" candidates.
func ForSuggestions(candidates []string) string {
	if len(candidates) == 0 {
		return ""
	}
	return format("did you mean: " + strings.Join(candidates, ", ") + "?")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
