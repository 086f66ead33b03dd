package pipeline

import (
	"regexp"
	"strconv"
	"strings"
)

// DefaultLanguage tags fenced code blocks opened without a language token.
const DefaultLanguage = "plaintext"

// languageClassPrefix is the class prefix external highlighters look for.
const languageClassPrefix = "language-"

// CodeBlock is one fenced region captured during extraction.
// Index is its position in the arena and in the placeholder token.
type CodeBlock struct {
	Index    int
	Language string
	Code     string // verbatim lines between the fences, joined with \n
}

var (
	// Opening fence: three backticks, optional language token, nothing else.
	fenceOpen = regexp.MustCompile("^```([A-Za-z0-9_+#.-]*)[ \t]*$")

	// Closing fence: three backticks alone on the line.
	fenceClose = regexp.MustCompile("^```[ \t]*$")

	// A placeholder occupying a whole line after extraction.
	placeholderLine = regexp.MustCompile("^" + codeOpen + `(\d+)` + codeClose + "$")

	// Paragraph wrappers left empty after placeholder substitution.
	emptyParagraph = regexp.MustCompile(`<p>\s*</p>`)
)

// Placeholder returns the opaque token standing in for code block i.
func Placeholder(i int) string {
	return codeOpen + strconv.Itoa(i) + codeClose
}

// ExtractCode replaces every closed fenced region with a placeholder line
// surrounded by blank lines and returns the rewritten text with the arena of
// captured blocks in encounter order.
//
// An opening fence without a matching closing fence is not a code block:
// the fence line and everything after it stay in the text unchanged.
func ExtractCode(content string) (string, []CodeBlock) {
	lines := strings.Split(content, "\n")
	out := make([]string, 0, len(lines))
	var blocks []CodeBlock

	for i := 0; i < len(lines); i++ {
		m := fenceOpen.FindStringSubmatch(lines[i])
		if m == nil {
			out = append(out, lines[i])
			continue
		}

		end := findFenceClose(lines, i+1)
		if end < 0 {
			out = append(out, lines[i:]...)
			break
		}

		lang := m[1]
		if lang == "" {
			lang = DefaultLanguage
		}
		block := CodeBlock{
			Index:    len(blocks),
			Language: lang,
			Code:     strings.Join(lines[i+1:end], "\n"),
		}
		blocks = append(blocks, block)
		out = append(out, "", Placeholder(block.Index), "")
		i = end
	}

	return strings.Join(out, "\n"), blocks
}

// findFenceClose returns the index of the first closing fence at or after
// start, or -1 when the fence is never closed.
func findFenceClose(lines []string, start int) int {
	for j := start; j < len(lines); j++ {
		if fenceClose.MatchString(lines[j]) {
			return j
		}
	}
	return -1
}

// placeholderIndex reports the arena index when line is exactly a placeholder.
func placeholderIndex(line string) (int, bool) {
	m := placeholderLine.FindStringSubmatch(strings.TrimSpace(line))
	if m == nil {
		return 0, false
	}
	idx, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return idx, true
}

// ResolvePlaceholders substitutes each block's placeholder with code markup,
// whether or not the placeholder ended up wrapped in a paragraph, then drops
// paragraph wrappers left empty.
func ResolvePlaceholders(fragment string, blocks []CodeBlock) string {
	if len(blocks) == 0 {
		return fragment
	}

	for _, b := range blocks {
		token := Placeholder(b.Index)
		markup := codeBlockHTML(b)
		if strings.Contains(fragment, "<p>"+token+"</p>") {
			fragment = strings.Replace(fragment, "<p>"+token+"</p>", markup, 1)
			continue
		}
		fragment = strings.Replace(fragment, token, markup, 1)
	}

	return emptyParagraph.ReplaceAllString(fragment, "")
}

// codeBlockHTML renders one code block. The language class sits on both the
// <pre> and the <code> element; the code itself is escaped verbatim.
func codeBlockHTML(b CodeBlock) string {
	class := escapeAttr(Escape(languageClassPrefix + b.Language))

	var buf strings.Builder
	buf.Grow(len(b.Code) + 2*len(class) + 48)
	buf.WriteString(`<pre class="`)
	buf.WriteString(class)
	buf.WriteString(`"><code class="`)
	buf.WriteString(class)
	buf.WriteString(`">`)
	buf.WriteString(Escape(b.Code))
	buf.WriteString(`</code></pre>`)
	return buf.String()
}
