package pipeline

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// codeBlockPriority runs ahead of the default html renderer (1000).
const codeBlockPriority = 100

// tocIDsPriority is the AST transformer priority for tocIDs.
const tocIDsPriority = 100

// GoldmarkRenderer renders Markdown with goldmark for callers that need
// CommonMark coverage beyond the native subset.
type GoldmarkRenderer struct {
	md       goldmark.Markdown
	fallback FragmentRenderer
}

// NewGoldmarkRenderer creates a GoldmarkRenderer with table and strikethrough
// extensions. Code blocks use the same markup as the native renderer so the
// post-render Highlighter treats both engines alike. Raw HTML is never emitted.
func NewGoldmarkRenderer() *GoldmarkRenderer {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.Table,
			extension.Strikethrough,
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
			parser.WithASTTransformers(
				util.Prioritized(tocIDs{}, tocIDsPriority),
			),
		),
		goldmark.WithRendererOptions(
			renderer.WithNodeRenderers(
				util.Prioritized(codeBlockRenderer{}, codeBlockPriority),
			),
		),
		// html.WithUnsafe() intentionally not set: raw HTML is dropped.
	)
	return &GoldmarkRenderer{md: md, fallback: NewNativeRenderer()}
}

// RenderFragment converts content with goldmark. Heading IDs come from Slug,
// matching ExtractHeadings. If goldmark fails, the native renderer's output is
// returned instead.
func (g *GoldmarkRenderer) RenderFragment(content string) string {
	content = Normalize(content)

	ctx := parser.NewContext(parser.WithIDs(slugIDs{}))

	var buf bytes.Buffer
	if err := g.md.Convert([]byte(content), &buf, parser.WithContext(ctx)); err != nil {
		return g.fallback.RenderFragment(content)
	}
	return buf.String()
}

// slugIDs generates heading IDs with Slug. Duplicates are not suffixed, so
// identical headings share an anchor just as in the native renderer.
type slugIDs struct{}

func (slugIDs) Generate(value []byte, _ ast.NodeKind) []byte {
	return []byte(Slug(string(value)))
}

func (slugIDs) Put([]byte) {}

// tocIDs removes the id attribute from headings that ExtractHeadings would
// not report, such as setext headings, so every anchor has a ToC entry.
type tocIDs struct{}

func (tocIDs) Transform(doc *ast.Document, reader text.Reader, _ parser.Context) {
	src := reader.Source()
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		h, ok := n.(*ast.Heading)
		if !entering || !ok {
			return ast.WalkContinue, nil
		}
		if _, _, ok := parseHeading(headingSource(h, src)); !ok {
			removeID(h)
		}
		return ast.WalkSkipChildren, nil
	})
}

// headingSource returns the full source line holding the heading's first
// content line, or "" for a heading without content.
func headingSource(h *ast.Heading, src []byte) string {
	lines := h.Lines()
	if lines.Len() == 0 {
		return ""
	}
	seg := lines.At(0)
	start, end := seg.Start, seg.Stop
	for start > 0 && src[start-1] != '\n' {
		start--
	}
	for end < len(src) && src[end] != '\n' {
		end++
	}
	return string(src[start:end])
}

func removeID(n ast.Node) {
	attrs := n.Attributes()
	n.RemoveAttributes()
	for _, a := range attrs {
		if string(a.Name) != "id" {
			n.SetAttribute(a.Name, a.Value)
		}
	}
}

// codeBlockRenderer writes fenced and indented code blocks with
// codeBlockHTML.
type codeBlockRenderer struct{}

func (r codeBlockRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(ast.KindFencedCodeBlock, r.renderCode)
	reg.Register(ast.KindCodeBlock, r.renderCode)
}

func (codeBlockRenderer) renderCode(w util.BufWriter, src []byte, n ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}

	block := CodeBlock{Language: DefaultLanguage}
	if fenced, ok := n.(*ast.FencedCodeBlock); ok {
		if lang := fenced.Language(src); len(lang) > 0 {
			block.Language = string(lang)
		}
	}

	var code strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		code.Write(seg.Value(src))
	}
	block.Code = strings.TrimSuffix(code.String(), "\n")

	if _, err := w.WriteString(codeBlockHTML(block)); err != nil {
		return ast.WalkStop, err
	}
	_ = w.WriteByte('\n')
	return ast.WalkSkipChildren, nil
}
