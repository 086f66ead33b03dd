package highlight

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// DefaultStyle is the chroma style used when none is configured.
const DefaultStyle = "github"

const (
	languageClassPrefix = "language-"

	// chromaClass scopes the selectors written by WriteCSS.
	chromaClass = "chroma"

	// highlightedAttr marks processed elements so a fragment can be
	// highlighted more than once without double-tokenizing.
	highlightedAttr = "data-highlighted"
)

// Sentinel errors.
var (
	ErrUnknownStyle  = errors.New("unknown highlight style")
	ErrParseFragment = errors.New("parsing HTML fragment")
	ErrTokenize      = errors.New("tokenizing code")
)

// Highlighter highlights code elements of rendered fragments.
// It holds no per-call state and is safe for concurrent use.
type Highlighter struct {
	styleName string
	style     *chroma.Style
	formatter *chromahtml.Formatter
}

// New creates a Highlighter for the named chroma style.
// An empty name selects DefaultStyle.
func New(styleName string) (*Highlighter, error) {
	if styleName == "" {
		styleName = DefaultStyle
	}
	style, ok := styles.Registry[strings.ToLower(styleName)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStyle, styleName)
	}
	return &Highlighter{
		styleName: style.Name,
		style:     style,
		formatter: chromahtml.New(chromahtml.WithClasses(true)),
	}, nil
}

// Style returns the name of the configured style.
func (h *Highlighter) Style() string {
	return h.styleName
}

// Styles returns the names of all registered styles, sorted.
func Styles() []string {
	names := styles.Names()
	slices.Sort(names)
	return names
}

// WriteCSS writes the stylesheet matching the classes Apply emits.
func (h *Highlighter) WriteCSS(w io.Writer) error {
	return h.formatter.WriteCSS(w, h.style)
}

// Apply highlights every code element of fragment that carries a
// language-<id> class. Unknown languages are tokenized as plain text.
// Cancellation is checked between elements.
func (h *Highlighter) Apply(ctx context.Context, fragment string) (string, error) {
	if ctx.Err() != nil {
		return "", ctx.Err()
	}
	if !strings.Contains(fragment, languageClassPrefix) {
		return fragment, nil
	}

	doc, err := parseFragment(fragment)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrParseFragment, err)
	}

	codes := collectCode(doc)
	if len(codes) == 0 {
		return fragment, nil
	}

	for _, code := range codes {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		if err := highlightNode(code); err != nil {
			return "", err
		}
	}

	out, err := renderFragment(doc)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrParseFragment, err)
	}
	return out, nil
}

// Result is the outcome of a scheduled highlight.
type Result struct {
	HTML string
	Err  error
}

// Schedule runs Apply in a new goroutine. The returned channel receives
// exactly one Result and is then closed. Callers that lose interest may
// cancel ctx and drop the channel; the send never blocks.
func (h *Highlighter) Schedule(ctx context.Context, fragment string) <-chan Result {
	ch := make(chan Result, 1)
	go func() {
		defer close(ch)
		out, err := h.Apply(ctx, fragment)
		ch <- Result{HTML: out, Err: err}
	}()
	return ch
}

// highlightNode replaces the children of a code element with token spans.
func highlightNode(code *html.Node) error {
	lang, _ := language(code)
	text := textContent(code)

	lexer := lexers.Get(lang)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	it, err := lexer.Tokenise(nil, text)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrTokenize, lang, err)
	}

	removeChildren(code)
	for tok := it(); tok != chroma.EOF; tok = it() {
		code.AppendChild(tokenNode(tok))
	}

	setAttr(code, "class", strings.TrimSpace(attr(code, "class")+" "+chromaClass))
	setAttr(code, highlightedAttr, "")
	return nil
}

// tokenNode renders one token as a class-bearing span, or as bare text
// when the token type has no class.
func tokenNode(tok chroma.Token) *html.Node {
	text := &html.Node{Type: html.TextNode, Data: tok.Value}

	class := tokenClass(tok.Type)
	if class == "" {
		return text
	}

	span := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Span,
		Data:     "span",
		Attr:     []html.Attribute{{Key: "class", Val: class}},
	}
	span.AppendChild(text)
	return span
}

// tokenClass maps a token type to its short chroma class, falling back to
// the sub-category and category the way chroma's HTML formatter does.
func tokenClass(tt chroma.TokenType) string {
	for _, t := range []chroma.TokenType{tt, tt.SubCategory(), tt.Category()} {
		if class, ok := chroma.StandardTypes[t]; ok {
			return class
		}
	}
	return ""
}
