// Package mdview renders a constrained subset of Markdown into sanitized,
// embeddable HTML fragments and extracts tables of contents whose anchors
// match the rendered headings.
//
// # Quick Start
//
//	html := mdview.Render("# Hello\n\nWorld")
//	// <h1 id="hello">Hello</h1>
//	// <p>World</p>
//
//	for _, e := range mdview.GenerateTOC(source) {
//	    fmt.Printf("%s #%s\n", e.Title, e.ID)
//	}
//
// Render never fails: every input string produces a fragment. Raw HTML in
// the source is always escaped, so the output is safe to inject into a page.
//
// # Supported Markdown
//
//   - ATX headings (# to ######) with id attributes from Slug
//   - paragraphs (consecutive lines joined with a space)
//   - fenced code blocks with an optional language token
//   - **bold**, *italic*, `code`, [links](url) and ![images](url)
//   - single-line > quotes and --- rules
//   - flat - / * / 1. lists
//   - pipe tables with a separator row and optional column alignment
//
// Nested lists, nested quotes, reference links, footnotes and raw HTML are
// not supported.
//
// # Rendering Pipeline
//
//  1. Normalization (line endings, reserved placeholder runes)
//  2. Fenced code extraction into an arena of placeholder tokens
//  3. Line classification into typed blocks
//  4. Escaping and inline markup on text leaves only
//  5. Placeholder resolution into <pre><code class="language-x">
//
// # Engines
//
// The default engine is the native pipeline above. EngineGoldmark renders
// with goldmark for broader CommonMark coverage while keeping the same
// heading ids and never emitting raw HTML:
//
//	r, err := mdview.NewRenderer(mdview.WithEngine(mdview.EngineGoldmark))
//
// # Syntax Highlighting
//
// Highlighting is a separate step applied to a rendered fragment:
//
//	h, err := mdview.NewHighlighter("github")
//	out, err := h.Highlight(ctx, mdview.Render(source))
//
// HighlightAsync runs the same step in a goroutine. WriteCSS emits the
// matching stylesheet.
package mdview
