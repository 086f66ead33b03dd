package pipeline

import (
	"reflect"
	"strings"
	"testing"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected []Block
	}{
		{
			name:     "empty",
			input:    "",
			expected: nil,
		},
		{
			name:     "consecutive lines merge into one paragraph",
			input:    "line one\nline two",
			expected: []Block{{Kind: BlockParagraph, Text: "line one line two"}},
		},
		{
			name:  "blank line splits paragraphs",
			input: "first\n\nsecond",
			expected: []Block{
				{Kind: BlockParagraph, Text: "first"},
				{Kind: BlockParagraph, Text: "second"},
			},
		},
		{
			name:     "paragraph lines are trimmed",
			input:    "  a  \n\tb",
			expected: []Block{{Kind: BlockParagraph, Text: "a b"}},
		},
		{
			name:     "heading",
			input:    "## Getting Started",
			expected: []Block{{Kind: BlockHeading, Level: 2, Text: "Getting Started"}},
		},
		{
			name:     "heading level six",
			input:    "###### Deep",
			expected: []Block{{Kind: BlockHeading, Level: 6, Text: "Deep"}},
		},
		{
			name:     "seven hashes is text",
			input:    "####### Too deep",
			expected: []Block{{Kind: BlockParagraph, Text: "####### Too deep"}},
		},
		{
			name:     "hash without space is text",
			input:    "#hashtag",
			expected: []Block{{Kind: BlockParagraph, Text: "#hashtag"}},
		},
		{
			name:     "tab after hashes is text",
			input:    "#\tTitle",
			expected: []Block{{Kind: BlockParagraph, Text: "#\tTitle"}},
		},
		{
			name:     "two spaces after hashes is text",
			input:    "##  Title",
			expected: []Block{{Kind: BlockParagraph, Text: "##  Title"}},
		},
		{
			name:     "heading trailing space trimmed",
			input:    "# Title  ",
			expected: []Block{{Kind: BlockHeading, Level: 1, Text: "Title"}},
		},
		{
			name:  "heading interrupts paragraph",
			input: "text\n# H\nmore",
			expected: []Block{
				{Kind: BlockParagraph, Text: "text"},
				{Kind: BlockHeading, Level: 1, Text: "H"},
				{Kind: BlockParagraph, Text: "more"},
			},
		},
		{
			name:     "rule",
			input:    "---",
			expected: []Block{{Kind: BlockRule}},
		},
		{
			name:     "rule with trailing space is text",
			input:    "--- ",
			expected: []Block{{Kind: BlockParagraph, Text: "---"}},
		},
		{
			name:     "indented rule is text",
			input:    " ---",
			expected: []Block{{Kind: BlockParagraph, Text: "---"}},
		},
		{
			name:     "longer dash line is text",
			input:    "----",
			expected: []Block{{Kind: BlockParagraph, Text: "----"}},
		},
		{
			name:     "quote",
			input:    "> quoted",
			expected: []Block{{Kind: BlockQuote, Text: "quoted"}},
		},
		{
			name:  "adjacent quotes are not merged",
			input: "> a\n> b",
			expected: []Block{
				{Kind: BlockQuote, Text: "a"},
				{Kind: BlockQuote, Text: "b"},
			},
		},
		{
			name:     "bullet list",
			input:    "- a\n- b",
			expected: []Block{{Kind: BlockList, Items: []string{"a", "b"}}},
		},
		{
			name:     "star bullets",
			input:    "* a\n* b",
			expected: []Block{{Kind: BlockList, Items: []string{"a", "b"}}},
		},
		{
			name:     "mixed bullet markers form one list",
			input:    "- a\n* b",
			expected: []Block{{Kind: BlockList, Items: []string{"a", "b"}}},
		},
		{
			name:     "ordered list",
			input:    "1. a\n2. b\n10. c",
			expected: []Block{{Kind: BlockList, Ordered: true, Items: []string{"a", "b", "c"}}},
		},
		{
			name:  "list kind change starts a new list",
			input: "- a\n1. b",
			expected: []Block{
				{Kind: BlockList, Items: []string{"a"}},
				{Kind: BlockList, Ordered: true, Items: []string{"b"}},
			},
		},
		{
			name:  "text after list is a paragraph",
			input: "- a\ncontinued",
			expected: []Block{
				{Kind: BlockList, Items: []string{"a"}},
				{Kind: BlockParagraph, Text: "continued"},
			},
		},
		{
			name:  "indented item is not nested",
			input: "- a\n  - b",
			expected: []Block{
				{Kind: BlockList, Items: []string{"a"}},
				{Kind: BlockParagraph, Text: "- b"},
			},
		},
		{
			name:  "table",
			input: "|A|B|\n|-|-|\n|1|2|",
			expected: []Block{{
				Kind:   BlockTable,
				Header: []string{"A", "B"},
				Align:  []Alignment{AlignNone, AlignNone},
				Rows:   [][]string{{"1", "2"}},
			}},
		},
		{
			name:  "table with padding and several rows",
			input: "| Name | Age |\n| --- | --- |\n| Ann | 30 |\n| Bob | 41 |",
			expected: []Block{{
				Kind:   BlockTable,
				Header: []string{"Name", "Age"},
				Align:  []Alignment{AlignNone, AlignNone},
				Rows:   [][]string{{"Ann", "30"}, {"Bob", "41"}},
			}},
		},
		{
			name:  "column count mismatch kept as found",
			input: "|A|B|\n|-|-|\n|1|2|3|\n|4|",
			expected: []Block{{
				Kind:   BlockTable,
				Header: []string{"A", "B"},
				Align:  []Alignment{AlignNone, AlignNone},
				Rows:   [][]string{{"1", "2", "3"}, {"4"}},
			}},
		},
		{
			name:  "alignment from separator",
			input: "| L | C | R |\n|:--|:-:|--:|\n| 1 | 2 | 3 |",
			expected: []Block{{
				Kind:   BlockTable,
				Header: []string{"L", "C", "R"},
				Align:  []Alignment{AlignLeft, AlignCenter, AlignRight},
				Rows:   [][]string{{"1", "2", "3"}},
			}},
		},
		{
			name:     "header and separator without body is text",
			input:    "|A|\n|-|",
			expected: []Block{{Kind: BlockParagraph, Text: "|A| |-|"}},
		},
		{
			name:  "table ends at first non-row line",
			input: "|A|\n|-|\n|1|\nafter",
			expected: []Block{
				{
					Kind:   BlockTable,
					Header: []string{"A"},
					Align:  []Alignment{AlignNone},
					Rows:   [][]string{{"1"}},
				},
				{Kind: BlockParagraph, Text: "after"},
			},
		},
		{
			name:  "placeholder line",
			input: "intro\n\n" + Placeholder(0) + "\n\noutro",
			expected: []Block{
				{Kind: BlockParagraph, Text: "intro"},
				{Kind: BlockCode, CodeRef: 0},
				{Kind: BlockParagraph, Text: "outro"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Classify(strings.Split(tt.input, "\n"))
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Classify(%q) =\n%#v\nwant\n%#v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestIsSeparator(t *testing.T) {
	t.Parallel()

	tests := []struct {
		line     string
		expected bool
	}{
		{line: "|-|-|", expected: true},
		{line: "| --- | :---: |", expected: true},
		{line: "|:-|", expected: true},
		{line: "|A|B|", expected: false},
		{line: "||", expected: false},
		{line: "|:|", expected: false},
		{line: "---", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			t.Parallel()

			if got := isSeparator(tt.line); got != tt.expected {
				t.Errorf("isSeparator(%q) = %v, want %v", tt.line, got, tt.expected)
			}
		})
	}
}
