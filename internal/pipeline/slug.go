package pipeline

import "strings"

// Slug derives an anchor ID from heading text.
// The title is lowercased, every maximal run of characters outside [a-z0-9]
// collapses to a single '-', and leading/trailing '-' are trimmed.
//
// Both the fragment renderer and the TOC extractor call Slug on the raw
// heading title, which keeps generated anchors byte-identical.
func Slug(title string) string {
	lower := strings.ToLower(title)

	var b strings.Builder
	b.Grow(len(lower))

	pendingDash := false
	for i := 0; i < len(lower); i++ {
		c := lower[i]
		if (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') {
			if pendingDash && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingDash = false
			b.WriteByte(c)
			continue
		}
		pendingDash = true
	}

	return b.String()
}
