package pipeline

import "strings"

// textEscaper neutralizes the three markup-significant characters.
var textEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
)

// quoteEscaper is applied to already text-escaped attribute values.
var quoteEscaper = strings.NewReplacer(`"`, "&quot;")

// Escape replaces &, < and > with their entity forms.
// It runs exactly once over text before any markup is introduced.
func Escape(s string) string {
	return textEscaper.Replace(s)
}

// escapeAttr prepares an already escaped value for a double-quoted attribute.
func escapeAttr(s string) string {
	return quoteEscaper.Replace(s)
}
