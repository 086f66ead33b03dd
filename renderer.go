package mdview

import (
	"github.com/alnah/go-mdview/internal/pipeline"
)

// Compile-time interface implementation checks.
var (
	_ pipeline.FragmentRenderer = (*pipeline.NativeRenderer)(nil)
	_ pipeline.FragmentRenderer = (*pipeline.GoldmarkRenderer)(nil)
)

// defaultRenderer backs the package-level functions. It is immutable.
var defaultRenderer = &Renderer{
	engine:   EngineNative,
	fragment: pipeline.NewNativeRenderer(),
}

// Renderer converts Markdown to HTML fragments and extracts tables of
// contents. It is immutable after construction and safe for concurrent use.
type Renderer struct {
	engine   Engine
	fragment pipeline.FragmentRenderer
	toc      TOCOptions
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithEngine selects the rendering engine (default EngineNative).
func WithEngine(e Engine) Option {
	return func(r *Renderer) {
		r.engine = e
	}
}

// WithTOCDepth sets the heading range returned by (*Renderer).GenerateTOC.
func WithTOCDepth(minDepth, maxDepth int) Option {
	return func(r *Renderer) {
		r.toc = TOCOptions{MinDepth: minDepth, MaxDepth: maxDepth}
	}
}

// NewRenderer creates a Renderer. Returns ErrInvalidEngine or
// ErrInvalidTOCDepth when an option holds an unsupported value.
func NewRenderer(opts ...Option) (*Renderer, error) {
	r := &Renderer{engine: EngineNative}
	for _, opt := range opts {
		opt(r)
	}

	engine, err := ParseEngine(string(r.engine))
	if err != nil {
		return nil, err
	}
	r.engine = engine

	if err := r.toc.Validate(); err != nil {
		return nil, err
	}

	switch r.engine {
	case EngineGoldmark:
		r.fragment = pipeline.NewGoldmarkRenderer()
	default:
		r.fragment = pipeline.NewNativeRenderer()
	}
	return r, nil
}

// Engine returns the engine the Renderer uses.
func (r *Renderer) Engine() Engine {
	return r.engine
}

// Render converts markdown to a sanitized HTML fragment. It never fails:
// if rendering panics, the whole input is returned escaped in a paragraph.
func (r *Renderer) Render(markdown string) (html string) {
	defer func() {
		if rec := recover(); rec != nil {
			html = "<p>" + pipeline.Escape(markdown) + "</p>"
		}
	}()

	return r.fragment.RenderFragment(markdown)
}

// GenerateTOC lists the headings of markdown within the Renderer's depth
// range, in document order. Headings inside fenced code are ignored.
func (r *Renderer) GenerateTOC(markdown string) []TocEntry {
	minDepth, maxDepth := r.toc.bounds()
	return toEntries(pipeline.ExtractHeadings(markdown, minDepth, maxDepth))
}

// Render converts markdown with the native engine.
func Render(markdown string) string {
	return defaultRenderer.Render(markdown)
}

// GenerateTOC lists every heading of markdown in document order.
func GenerateTOC(markdown string) []TocEntry {
	return defaultRenderer.GenerateTOC(markdown)
}

// GenerateTOCWithOptions lists the headings of markdown within opts' depth
// range. Returns ErrInvalidTOCDepth for out-of-range options.
func GenerateTOCWithOptions(markdown string, opts TOCOptions) ([]TocEntry, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	minDepth, maxDepth := opts.bounds()
	return toEntries(pipeline.ExtractHeadings(markdown, minDepth, maxDepth)), nil
}

// Slug converts a heading title to its anchor id: lowercase, every run of
// characters outside [a-z0-9] replaced by one hyphen, leading and trailing
// hyphens removed.
func Slug(title string) string {
	return pipeline.Slug(title)
}

func toEntries(headings []pipeline.Heading) []TocEntry {
	entries := make([]TocEntry, 0, len(headings))
	for _, h := range headings {
		entries = append(entries, TocEntry{ID: h.ID, Title: h.Title, Level: h.Level})
	}
	return entries
}
