// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"strings"
)

// ForNoTable returns a hint for documents without a recognizable table.
func ForNoTable() string {
	return format("a table needs a header row with | separators followed by a row like | --- | --- |")
}

// ForMalformedTable returns a hint for rows rejected under strict column checking.
func ForMalformedTable() string {
	return format("every row must have as many cells as the header; drop --strict-columns to pad or truncate instead")
}

// ForSheetName returns a hint about worksheet naming rules.
func ForSheetName() string {
	return format(`sheet names are at most 31 characters and cannot contain : \ / ? * [ ]`)
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/go-md2xlsx/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	// Find a user config path (contains .config/go-md2xlsx) to suggest
	for _, p := range searchedPaths {
		if strings.Contains(p, ".config/go-md2xlsx") {
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

// ForStyleNotFound returns hints for style not found errors.
func ForStyleNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
