//go:build bench

package pipeline

import (
	"fmt"
	"strings"
	"testing"
)

// BenchmarkNativeRender benchmarks the native fragment renderer.
func BenchmarkNativeRender(b *testing.B) {
	benchmarkEngine(b, NewNativeRenderer())
}

// BenchmarkGoldmarkRender benchmarks the goldmark engine on the same inputs.
func BenchmarkGoldmarkRender(b *testing.B) {
	benchmarkEngine(b, NewGoldmarkRenderer())
}

func benchmarkEngine(b *testing.B, r FragmentRenderer) {
	inputs := []struct {
		name    string
		content string
	}{
		{"minimal", "# Hello\n\nWorld"},
		{"prose", strings.Repeat("One line of prose\nand its continuation.\n\n", 10)},
		{"headings", headingDoc(20)},
		{"fences", fenceDoc(10)},
		{"tables", tableDoc(5)},
		{"article_small", articleDoc(10)},
		{"article_large", articleDoc(200)},
	}

	for _, input := range inputs {
		b.Run(input.name, func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				_ = r.RenderFragment(input.content)
			}
		})
	}
}

// BenchmarkNativeRenderParallel benchmarks concurrent renders sharing one renderer.
func BenchmarkNativeRenderParallel(b *testing.B) {
	r := NewNativeRenderer()
	content := articleDoc(20)

	b.ReportAllocs()
	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_ = r.RenderFragment(content)
		}
	})
}

// BenchmarkExtractHeadings benchmarks TOC heading extraction.
func BenchmarkExtractHeadings(b *testing.B) {
	content := articleDoc(100)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = ExtractHeadings(content, MinHeadingLevel, MaxHeadingLevel)
	}
}

// ---------------------------------------------------------------------------
// Input generators
// ---------------------------------------------------------------------------

// headingDoc returns count sections cycling through heading levels 1-6.
func headingDoc(count int) string {
	var sb strings.Builder
	for n := range count {
		fmt.Fprintf(&sb, "%s Topic %d\n\n", strings.Repeat("#", n%6+1), n)
		sb.WriteString("Body text for the topic.\n\n")
	}
	return sb.String()
}

// fenceDoc returns count fenced blocks alternating between two languages.
func fenceDoc(count int) string {
	langs := []string{"go", "typescript"}
	var sb strings.Builder
	for n := range count {
		fmt.Fprintf(&sb, "```%s\n", langs[n%2])
		sb.WriteString("if a < b && b > c {\n\treturn \"<ok>\"\n}\n")
		sb.WriteString("```\n\n")
	}
	return sb.String()
}

// tableDoc returns count aligned tables of ten body rows each.
func tableDoc(count int) string {
	var sb strings.Builder
	for range count {
		sb.WriteString("| Key | Value | Notes |\n")
		sb.WriteString("|:----|:-----:|------:|\n")
		for row := range 10 {
			fmt.Fprintf(&sb, "| k%d | `v%d` | **n%d** |\n", row, row, row)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// articleDoc returns a knowledge-base article with every block kind.
func articleDoc(sections int) string {
	var sb strings.Builder
	sb.WriteString("# Handbook\n\n> Read this first.\n\n")
	for n := range sections {
		fmt.Fprintf(&sb, "## Part %d\n\n", n)
		sb.WriteString("A *short* note with **emphasis**, a [link](https://example.com/docs)\n")
		sb.WriteString("and an image ![diagram](img/d.png).\n\n")
		sb.WriteString("1. first\n2. second\n\n- alpha\n- beta\n\n")
		switch n % 4 {
		case 0:
			sb.WriteString("```sh\nmdview render docs/\n```\n\n")
		case 1:
			sb.WriteString("| A | B |\n|---|---|\n| 1 | 2 |\n\n")
		case 2:
			sb.WriteString("---\n\n")
		}
	}
	return sb.String()
}
