package pipeline

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"
)

// Inline patterns, applied in this order: code spans, bold, italic, images,
// links. All are non-greedy and never cross a line boundary because they run
// on single text leaves.
var (
	codeSpanPattern = regexp.MustCompile("`([^`]+)`")
	boldPattern     = regexp.MustCompile(`\*\*(.+?)\*\*`)
	italicPattern   = regexp.MustCompile(`\*([^*\s](?:[^*]*?[^*\s])?)\*`)
	imagePattern    = regexp.MustCompile(`!\[([^\]]*)\]\(([^)\s]+)\)`)
	linkPattern     = regexp.MustCompile(`\[([^\]]+)\]\(([^)\s]+)\)`)

	spanToken  = regexp.MustCompile(spanOpen + `(\d+)` + spanClose)
	tagPattern = regexp.MustCompile(`<[^>]*>`)
)

// allowedSchemes may appear in link and image URLs. Relative URLs have no
// scheme and are always allowed.
var allowedSchemes = map[string]bool{"http": true, "https": true, "mailto": true}

// dataImagePrefix is the only data: URL form accepted, and only for images.
const dataImagePrefix = "data:image/"

// Inline escapes text and converts inline markup to HTML.
// Code span contents are set aside before the emphasis and link rules run,
// so those rules never rewrite text inside <code>.
func Inline(text string) string {
	if text == "" {
		return ""
	}

	text = Escape(text)

	var spans []string
	text = codeSpanPattern.ReplaceAllStringFunc(text, func(m string) string {
		spans = append(spans, m[1:len(m)-1])
		return spanOpen + strconv.Itoa(len(spans)-1) + spanClose
	})

	text = boldPattern.ReplaceAllString(text, "<strong>$1</strong>")
	text = italicPattern.ReplaceAllString(text, "<em>$1</em>")
	text = imagePattern.ReplaceAllStringFunc(text, renderImage)
	text = linkPattern.ReplaceAllStringFunc(text, renderLink)

	if len(spans) == 0 {
		return text
	}
	return spanToken.ReplaceAllStringFunc(text, func(m string) string {
		idx, err := strconv.Atoi(m[len(spanOpen) : len(m)-len(spanClose)])
		if err != nil || idx >= len(spans) {
			return ""
		}
		return "<code>" + spans[idx] + "</code>"
	})
}

// renderImage converts one ![alt](url) match. Markup produced by earlier
// rules is stripped from the alt text.
func renderImage(m string) string {
	parts := imagePattern.FindStringSubmatch(m)
	alt := tagPattern.ReplaceAllString(parts[1], "")
	src := sanitizeURL(parts[2], true)
	return `<img src="` + escapeAttr(src) + `" alt="` + escapeAttr(alt) + `">`
}

// renderLink converts one [text](url) match.
func renderLink(m string) string {
	parts := linkPattern.FindStringSubmatch(m)
	href := sanitizeURL(parts[2], false)
	return `<a href="` + escapeAttr(href) + `">` + parts[1] + `</a>`
}

// sanitizeURL returns raw with control characters removed when it is a
// relative, http, https or mailto URL, and "#" otherwise. Images may also use
// data:image/ URLs. Leading and trailing runes up to U+0020 are trimmed and
// tab and newline characters are dropped first, as browsers do before they
// read the scheme.
func sanitizeURL(raw string, image bool) string {
	cleaned := strings.Map(func(r rune) rune {
		if r == '\t' || r == '\n' || r == '\r' {
			return -1
		}
		return r
	}, strings.TrimFunc(raw, func(r rune) bool { return r <= ' ' }))

	if image && strings.HasPrefix(strings.ToLower(cleaned), dataImagePrefix) {
		return cleaned
	}

	u, err := url.Parse(cleaned)
	if err != nil {
		return "#"
	}
	if u.Scheme != "" && !allowedSchemes[strings.ToLower(u.Scheme)] {
		return "#"
	}
	return cleaned
}
