package pipeline

import (
	"strconv"
	"strings"
)

// Emit renders classified blocks as HTML, one block per line.
// Code blocks are emitted as their placeholder token; ResolvePlaceholders
// replaces them afterwards. Escaping and inline markup apply only to the
// text-bearing fields of each block.
func Emit(blocks []Block) string {
	var buf strings.Builder

	for i, b := range blocks {
		if i > 0 {
			buf.WriteByte('\n')
		}
		switch b.Kind {
		case BlockHeading:
			writeHeading(&buf, b)
		case BlockRule:
			buf.WriteString("<hr>")
		case BlockQuote:
			buf.WriteString("<blockquote>")
			buf.WriteString(Inline(b.Text))
			buf.WriteString("</blockquote>")
		case BlockTable:
			writeTable(&buf, b)
		case BlockList:
			writeList(&buf, b)
		case BlockCode:
			buf.WriteString(Placeholder(b.CodeRef))
		default:
			buf.WriteString("<p>")
			buf.WriteString(Inline(b.Text))
			buf.WriteString("</p>")
		}
	}

	return buf.String()
}

func writeHeading(buf *strings.Builder, b Block) {
	level := strconv.Itoa(b.Level)
	buf.WriteString("<h")
	buf.WriteString(level)
	buf.WriteString(` id="`)
	buf.WriteString(Slug(b.Text))
	buf.WriteString(`">`)
	buf.WriteString(Inline(b.Text))
	buf.WriteString("</h")
	buf.WriteString(level)
	buf.WriteByte('>')
}

func writeList(buf *strings.Builder, b Block) {
	tag := "ul"
	if b.Ordered {
		tag = "ol"
	}
	buf.WriteString("<" + tag + ">")
	for _, item := range b.Items {
		buf.WriteString("<li>")
		buf.WriteString(Inline(item))
		buf.WriteString("</li>")
	}
	buf.WriteString("</" + tag + ">")
}

func writeTable(buf *strings.Builder, b Block) {
	buf.WriteString("<table><thead>")
	writeRow(buf, "th", b.Header, b.Align)
	buf.WriteString("</thead><tbody>")
	for _, row := range b.Rows {
		writeRow(buf, "td", row, b.Align)
	}
	buf.WriteString("</tbody></table>")
}

func writeRow(buf *strings.Builder, cellTag string, cells []string, align []Alignment) {
	buf.WriteString("<tr>")
	for i, cell := range cells {
		buf.WriteString("<" + cellTag)
		if i < len(align) {
			writeAlignStyle(buf, align[i])
		}
		buf.WriteByte('>')
		buf.WriteString(Inline(cell))
		buf.WriteString("</" + cellTag + ">")
	}
	buf.WriteString("</tr>")
}

func writeAlignStyle(buf *strings.Builder, a Alignment) {
	switch a {
	case AlignLeft:
		buf.WriteString(` style="text-align:left"`)
	case AlignCenter:
		buf.WriteString(` style="text-align:center"`)
	case AlignRight:
		buf.WriteString(` style="text-align:right"`)
	}
}
