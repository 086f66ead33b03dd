package pipeline

import (
	"regexp"
	"strings"
)

// BlockKind identifies the type of a classified block.
type BlockKind int

// Block kinds produced by Classify.
const (
	BlockParagraph BlockKind = iota
	BlockHeading
	BlockRule
	BlockQuote
	BlockTable
	BlockList
	BlockCode
)

// Alignment is a table column alignment taken from the separator row.
type Alignment int

// Column alignments.
const (
	AlignNone Alignment = iota
	AlignLeft
	AlignCenter
	AlignRight
)

// Block is one flat, typed node of the document. Only the fields relevant
// to Kind are set. Text fields hold raw (unescaped) source text.
type Block struct {
	Kind    BlockKind
	Level   int         // heading level 1-6
	Text    string      // heading title, quote text or joined paragraph lines
	Items   []string    // list items
	Ordered bool        // numbered list
	Header  []string    // table header cells
	Rows    [][]string  // table body rows, cell counts as found
	Align   []Alignment // per-column alignment from the separator row
	CodeRef int         // arena index of a code block
}

var (
	headingLine   = regexp.MustCompile(`^(#{1,6}) (\S.*?)[ \t]*$`)
	quoteLine     = regexp.MustCompile(`^> (.*)$`)
	bulletLine    = regexp.MustCompile(`^[-*] (.*)$`)
	orderedLine   = regexp.MustCompile(`^\d+\. (.*)$`)
	separatorCell = regexp.MustCompile(`^:?-+:?$`)
)

// ruleLine is the exact text of a horizontal rule.
const ruleLine = "---"

// Classify turns extracted source lines into a flat sequence of blocks.
//
// Each line is one of: placeholder, heading, rule, quote, table row, list
// item, blank or text. Consecutive text lines merge into one paragraph;
// every other kind terminates the open paragraph.
func Classify(lines []string) []Block {
	var blocks []Block
	var para []string

	flush := func() {
		if len(para) == 0 {
			return
		}
		blocks = append(blocks, Block{Kind: BlockParagraph, Text: strings.Join(para, " ")})
		para = nil
	}

	for i := 0; i < len(lines); {
		line := lines[i]

		if strings.TrimSpace(line) == "" {
			flush()
			i++
			continue
		}

		if idx, ok := placeholderIndex(line); ok {
			flush()
			blocks = append(blocks, Block{Kind: BlockCode, CodeRef: idx})
			i++
			continue
		}

		if line == ruleLine {
			flush()
			blocks = append(blocks, Block{Kind: BlockRule})
			i++
			continue
		}

		if level, title, ok := parseHeading(line); ok {
			flush()
			blocks = append(blocks, Block{Kind: BlockHeading, Level: level, Text: title})
			i++
			continue
		}

		if m := quoteLine.FindStringSubmatch(line); m != nil {
			flush()
			blocks = append(blocks, Block{Kind: BlockQuote, Text: strings.TrimSpace(m[1])})
			i++
			continue
		}

		if isTableStart(lines, i) {
			flush()
			var table Block
			table, i = consumeTable(lines, i)
			blocks = append(blocks, table)
			continue
		}

		if _, ordered, ok := parseListItem(line); ok {
			flush()
			var list Block
			list, i = consumeList(lines, i, ordered)
			blocks = append(blocks, list)
			continue
		}

		para = append(para, strings.TrimSpace(line))
		i++
	}
	flush()

	return blocks
}

// parseHeading reports the level and trimmed title of an ATX heading line.
func parseHeading(line string) (int, string, bool) {
	m := headingLine.FindStringSubmatch(line)
	if m == nil {
		return 0, "", false
	}
	return len(m[1]), m[2], true
}

// parseListItem reports the item text and list kind of a list line.
func parseListItem(line string) (string, bool, bool) {
	if m := bulletLine.FindStringSubmatch(line); m != nil {
		return strings.TrimSpace(m[1]), false, true
	}
	if m := orderedLine.FindStringSubmatch(line); m != nil {
		return strings.TrimSpace(m[1]), true, true
	}
	return "", false, false
}

// consumeList collects the maximal run of list lines of one kind starting at i.
// A switch between bullet and numbered lines starts a new list.
func consumeList(lines []string, i int, ordered bool) (Block, int) {
	list := Block{Kind: BlockList, Ordered: ordered}
	for ; i < len(lines); i++ {
		item, itemOrdered, ok := parseListItem(lines[i])
		if !ok || itemOrdered != ordered {
			break
		}
		list.Items = append(list.Items, item)
	}
	return list, i
}

// isRow reports whether line is a pipe-delimited table row.
func isRow(line string) bool {
	t := strings.TrimSpace(line)
	return len(t) > 1 && t[0] == '|'
}

// isSeparator reports whether line is a table separator row.
func isSeparator(line string) bool {
	if !isRow(line) {
		return false
	}
	for _, cell := range splitRow(line) {
		if !separatorCell.MatchString(cell) {
			return false
		}
	}
	return true
}

// isTableStart reports whether a header, separator and body row begin at i.
func isTableStart(lines []string, i int) bool {
	return i+2 < len(lines) &&
		isRow(lines[i]) &&
		isSeparator(lines[i+1]) &&
		isRow(lines[i+2])
}

// consumeTable collects the header, separator and every following row.
// Rows are kept exactly as split; column counts are not reconciled.
func consumeTable(lines []string, i int) (Block, int) {
	table := Block{
		Kind:   BlockTable,
		Header: splitRow(lines[i]),
		Align:  parseAlignments(splitRow(lines[i+1])),
	}
	for i += 2; i < len(lines) && isRow(lines[i]); i++ {
		table.Rows = append(table.Rows, splitRow(lines[i]))
	}
	return table, i
}

// splitRow strips one outer pipe on each side and splits the remaining cells.
func splitRow(line string) []string {
	t := strings.TrimSpace(line)
	t = strings.TrimPrefix(t, "|")
	t = strings.TrimSuffix(t, "|")

	cells := strings.Split(t, "|")
	for i, c := range cells {
		cells[i] = strings.TrimSpace(c)
	}
	return cells
}

// parseAlignments maps separator cells to column alignments.
func parseAlignments(cells []string) []Alignment {
	aligns := make([]Alignment, len(cells))
	for i, c := range cells {
		left := strings.HasPrefix(c, ":")
		right := strings.HasSuffix(c, ":") && len(c) > 1
		switch {
		case left && right:
			aligns[i] = AlignCenter
		case left:
			aligns[i] = AlignLeft
		case right:
			aligns[i] = AlignRight
		}
	}
	return aligns
}
