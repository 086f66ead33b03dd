package mdview

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/alnah/go-mdview/internal/highlight"
)

// DefaultHighlightStyle is the style used when NewHighlighter gets "".
const DefaultHighlightStyle = highlight.DefaultStyle

// Highlighter applies class-based syntax highlighting to the code blocks of
// rendered fragments. It is safe for concurrent use.
type Highlighter struct {
	h *highlight.Highlighter
}

// HighlightResult is delivered by HighlightAsync.
type HighlightResult struct {
	HTML string
	Err  error
}

// NewHighlighter creates a Highlighter for a chroma style name.
// Returns ErrUnknownStyle if the style does not exist.
func NewHighlighter(style string) (*Highlighter, error) {
	h, err := highlight.New(style)
	if err != nil {
		return nil, err
	}
	return &Highlighter{h: h}, nil
}

// HighlightStyles returns the available style names, sorted.
func HighlightStyles() []string {
	return highlight.Styles()
}

// Style returns the configured style name.
func (h *Highlighter) Style() string {
	return h.h.Style()
}

// Highlight tokenizes every <code class="language-x"> element of fragment.
// Returns ctx.Err() when cancelled and ErrHighlight for unparsable input.
func (h *Highlighter) Highlight(ctx context.Context, fragment string) (string, error) {
	out, err := h.h.Apply(ctx, fragment)
	if err != nil {
		return "", wrapHighlightErr(err)
	}
	return out, nil
}

// HighlightAsync runs Highlight in a goroutine. The returned channel receives
// one result and is closed. Cancelling ctx abandons the work.
func (h *Highlighter) HighlightAsync(ctx context.Context, fragment string) <-chan HighlightResult {
	out := make(chan HighlightResult, 1)
	go func() {
		defer close(out)
		res := <-h.h.Schedule(ctx, fragment)
		if res.Err != nil {
			out <- HighlightResult{Err: wrapHighlightErr(res.Err)}
			return
		}
		out <- HighlightResult{HTML: res.HTML}
	}()
	return out
}

// WriteCSS writes the stylesheet for the configured style.
func (h *Highlighter) WriteCSS(w io.Writer) error {
	if err := h.h.WriteCSS(w); err != nil {
		return fmt.Errorf("%w: writing stylesheet: %v", ErrHighlight, err)
	}
	return nil
}

// wrapHighlightErr leaves context errors untouched so callers can match them.
func wrapHighlightErr(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrHighlight, err)
}
