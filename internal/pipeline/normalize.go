package pipeline

import (
	"regexp"
	"strings"
)

// Placeholder delimiters use Unicode Private Use Area characters.
// They never appear in rendered output and are stripped from the source
// before processing, so user text cannot forge a placeholder.
const (
	codeOpen  = "\uE000" // U+E000: fenced code block token start
	codeClose = "\uE001" // U+E001: fenced code block token end
	spanOpen  = "\uE002" // U+E002: inline code span token start
	spanClose = "\uE003" // U+E003: inline code span token end
)

// Line ending normalization.
var crlfOrCR = regexp.MustCompile(`\r\n?`)

var reservedRunes = strings.NewReplacer(
	codeOpen, "",
	codeClose, "",
	spanOpen, "",
	spanClose, "",
)

// Normalize converts \r\n and \r to \n and removes reserved placeholder runes.
func Normalize(content string) string {
	content = crlfOrCR.ReplaceAllString(content, "\n")
	return reservedRunes.Replace(content)
}
