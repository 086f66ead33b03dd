// Package frontmatter separates a leading YAML metadata block from a
// Markdown document.
//
// A front matter block starts with a "---" (or "---yaml") line before any
// other content and ends at the next "---" line. Delimiter detection is done
// by github.com/adrg/frontmatter; decoding stays on goccy/go-yaml:
//
//	---
//	title: Getting Started
//	tags: [intro, setup]
//	---
//	# Getting Started
package frontmatter

import (
	"errors"
	"fmt"
	"strings"

	fmparse "github.com/adrg/frontmatter"

	"github.com/alnah/go-mdview/internal/yamlutil"
)

// delimiter opens and closes a front matter block. "---yaml" is accepted as
// an explicit opening.
const delimiter = "---"

// ErrInvalid is returned when a front matter block is present but its YAML
// cannot be decoded.
var ErrInvalid = errors.New("invalid front matter")

// FrontMatter holds the recognized metadata fields. Fields the struct does
// not name are kept in Extra.
type FrontMatter struct {
	Title   string         `yaml:"title"`
	Slug    string         `yaml:"slug"`
	Summary string         `yaml:"summary"`
	Tags    []string       `yaml:"tags"`
	Draft   bool           `yaml:"draft"`
	Extra   map[string]any `yaml:"-"`
}

// knownKeys are the keys decoded into named FrontMatter fields.
var knownKeys = []string{"title", "slug", "summary", "tags", "draft"}

// Split returns the decoded front matter and the remaining body. When src
// has no front matter block, fm is nil and body is src unchanged. Blank
// lines before the opening delimiter are skipped; an opening delimiter
// without a closing one is treated as ordinary content.
func Split(src string) (fm *FrontMatter, body string, err error) {
	var decoded *FrontMatter
	unmarshal := func(data []byte, _ any) error {
		var decodeErr error
		decoded, decodeErr = decode(data)
		return decodeErr
	}
	formats := []*fmparse.Format{
		fmparse.NewFormat(delimiter, delimiter, unmarshal),
		fmparse.NewFormat(delimiter+"yaml", delimiter, unmarshal),
	}

	rest, err := fmparse.Parse(strings.NewReader(strings.ReplaceAll(src, "\r\n", "\n")), nil, formats...)
	if err != nil {
		return nil, src, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if decoded == nil {
		return nil, src, nil
	}
	return decoded, string(rest), nil
}

// decode reads the named fields and collects every other key into Extra.
func decode(data []byte) (*FrontMatter, error) {
	fm := &FrontMatter{}
	if strings.TrimSpace(string(data)) == "" {
		return fm, nil
	}
	if err := yamlutil.Unmarshal(data, fm); err != nil {
		return nil, err
	}

	var all map[string]any
	if err := yamlutil.Unmarshal(data, &all); err != nil {
		return nil, err
	}
	for _, k := range knownKeys {
		delete(all, k)
	}
	if len(all) > 0 {
		fm.Extra = all
	}
	return fm, nil
}
