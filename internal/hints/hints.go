// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"strings"
)

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config and creating a config in ~/.config/go-mdview/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(filepathSlash(p), ".config/go-mdview") {
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

// ForStyleNotFound returns hints listing the available highlight styles.
func ForStyleNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", ") + " (see mdview css --list)")
}

// ForEngine returns hints listing the supported rendering engines.
func ForEngine(engines []string) string {
	if len(engines) == 0 {
		return ""
	}
	return format("use --engine " + strings.Join(engines, " or "))
}

// ForTOCDepth returns a hint about the accepted heading depth range.
func ForTOCDepth() string {
	return format("toc depths must satisfy 1 <= minDepth <= maxDepth <= 6")
}

// ForNoMarkdown returns a hint when a directory holds no Markdown files.
func ForNoMarkdown() string {
	return format("only .md and .markdown files are rendered")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

func filepathSlash(p string) string {
	return strings.ReplaceAll(p, `\`, "/")
}
