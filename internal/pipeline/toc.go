package pipeline

import "strings"

// Heading levels accepted by ExtractHeadings.
const (
	MinHeadingLevel = 1
	MaxHeadingLevel = 6
)

// Heading is a heading found in Markdown source.
type Heading struct {
	Level int    // 1-6
	ID    string // anchor ID, identical to the rendered heading's id
	Title string // raw heading text, trimmed
}

// ExtractHeadings scans source lines for ATX headings between minDepth and
// maxDepth inclusive, in document order. Fenced code is removed first, so a
// '#' line inside a code block is never reported. Out-of-range depths are
// clamped to 1-6.
func ExtractHeadings(content string, minDepth, maxDepth int) []Heading {
	minDepth = max(minDepth, MinHeadingLevel)
	maxDepth = min(maxDepth, MaxHeadingLevel)
	if minDepth > maxDepth {
		return nil
	}

	body, _ := ExtractCode(Normalize(content))

	var headings []Heading
	for _, line := range strings.Split(body, "\n") {
		level, title, ok := parseHeading(line)
		if !ok || level < minDepth || level > maxDepth {
			continue
		}
		headings = append(headings, Heading{
			Level: level,
			ID:    Slug(title),
			Title: title,
		})
	}
	return headings
}
