package pipeline

import "strings"

// FragmentRenderer turns Markdown source into an embeddable HTML fragment.
// Implementations must be total: every input yields a string.
type FragmentRenderer interface {
	RenderFragment(content string) string
}

// NativeRenderer is the line-oriented renderer for the supported Markdown
// subset. It holds no state and is safe for concurrent use.
type NativeRenderer struct{}

// NewNativeRenderer creates a NativeRenderer.
func NewNativeRenderer() *NativeRenderer {
	return &NativeRenderer{}
}

// RenderFragment runs normalization, code extraction, line classification,
// block emission and placeholder resolution. Empty or blank input renders to
// an empty fragment.
func (n *NativeRenderer) RenderFragment(content string) string {
	content = Normalize(content)
	if strings.TrimSpace(content) == "" {
		return ""
	}

	body, codes := ExtractCode(content)
	blocks := Classify(strings.Split(body, "\n"))
	return ResolvePlaceholders(Emit(blocks), codes)
}
