package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-mdview"
	"github.com/alnah/go-mdview/internal/config"
	"github.com/alnah/go-mdview/internal/frontmatter"
	"github.com/alnah/go-mdview/internal/hints"
	"github.com/alnah/go-mdview/internal/yamlutil"
)

// tocDocument is the serialized table of contents of one file.
type tocDocument struct {
	Title   string            `yaml:"title,omitempty" json:"title,omitempty"`
	Source  string            `yaml:"source" json:"source"`
	Tags    []string          `yaml:"tags,omitempty" json:"tags,omitempty"`
	Entries []mdview.TocEntry `yaml:"entries" json:"entries"`
}

// newTOCDocument builds a tocDocument. The title comes from front matter,
// falling back to the first level-1 entry.
func newTOCDocument(source string, meta *frontmatter.FrontMatter, entries []mdview.TocEntry) *tocDocument {
	doc := &tocDocument{Source: source, Entries: entries}
	if meta != nil {
		doc.Title = meta.Title
		doc.Tags = meta.Tags
	}
	if doc.Title == "" {
		for _, e := range entries {
			if e.Level == mdview.MinHeadingLevel {
				doc.Title = e.Title
				break
			}
		}
	}
	return doc
}

// encodeTOC serializes doc as yaml or json.
func encodeTOC(doc *tocDocument, format string) ([]byte, error) {
	switch strings.ToLower(format) {
	case config.FormatYAML, "":
		return yamlutil.Marshal(doc)
	case config.FormatJSON:
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encoding toc: %w", err)
		}
		return append(data, '\n'), nil
	default:
		return nil, fmt.Errorf("%w: %q (must be %s)", config.ErrInvalidFormat, format, strings.Join(config.Formats, " or "))
	}
}

// runTOC prints the table of contents of one markdown file.
func runTOC(args []string, env *Environment) error {
	flags, positionalArgs, err := parseTOCFlags(args, env.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if len(positionalArgs) != 1 {
		printTOCUsage(env.Stderr)
		return fmt.Errorf("%w: toc expects exactly one file", ErrInvalidArgs)
	}
	path := positionalArgs[0]

	cfg, err := loadConfig(flags.config, loadEnvConfig(), env)
	if err != nil {
		return err
	}

	format := cfg.TOC.Format
	if flags.format != "" {
		format = strings.ToLower(flags.format)
	}
	if format != "" && !slices.Contains(config.Formats, format) {
		return fmt.Errorf("%w: %q (must be %s)", config.ErrInvalidFormat, format, strings.Join(config.Formats, " or "))
	}

	opts := mdview.TOCOptions{MinDepth: cfg.TOC.MinDepth, MaxDepth: cfg.TOC.MaxDepth}
	if flags.minDepth != 0 {
		opts.MinDepth = flags.minDepth
	}
	if flags.maxDepth != 0 {
		opts.MaxDepth = flags.maxDepth
	}

	if err := validateMarkdownExtension(path); err != nil {
		return err
	}
	content, err := os.ReadFile(path) // #nosec G304 -- user-provided path
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReadMarkdown, err)
	}

	meta, body, err := frontmatter.Split(string(content))
	if err != nil {
		return err
	}

	entries, err := mdview.GenerateTOCWithOptions(body, opts)
	if err != nil {
		return fmt.Errorf("%w%s", err, hints.ForTOCDepth())
	}

	data, err := encodeTOC(newTOCDocument(path, meta, entries), format)
	if err != nil {
		return err
	}
	_, err = env.Stdout.Write(data)
	return err
}
