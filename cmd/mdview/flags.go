package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// ErrInvalidArgs wraps flag parsing and argument count errors.
var ErrInvalidArgs = errors.New("invalid arguments")

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// tocFlags holds table of contents flags.
type tocFlags struct {
	enabled  bool
	format   string
	minDepth int
	maxDepth int
}

// highlightFlags holds syntax highlighting flags.
type highlightFlags struct {
	enabled bool
	style   string
}

// renderFlags holds all flags for the render command.
type renderFlags struct {
	common    commonFlags
	output    string
	workers   int
	engine    string
	drafts    bool
	toc       tocFlags
	highlight highlightFlags
}

// tocCmdFlags holds flags for the toc command.
type tocCmdFlags struct {
	config   string
	format   string
	minDepth int
	maxDepth int
}

// cssFlags holds flags for the css command.
type cssFlags struct {
	style string
	list  bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing")
}

// addTOCFlags adds table of contents flags to a FlagSet.
func addTOCFlags(fs *flag.FlagSet, f *tocFlags) {
	fs.BoolVar(&f.enabled, "toc", false, "write a table of contents next to each file")
	fs.StringVar(&f.format, "toc-format", "", "table of contents format: yaml, json")
	fs.IntVar(&f.minDepth, "toc-min-depth", 0, "min heading depth for TOC (1-6, default: 1)")
	fs.IntVar(&f.maxDepth, "toc-max-depth", 0, "max heading depth for TOC (1-6, default: 6)")
}

// addHighlightFlags adds syntax highlighting flags to a FlagSet.
func addHighlightFlags(fs *flag.FlagSet, f *highlightFlags) {
	fs.BoolVar(&f.enabled, "highlight", false, "highlight fenced code blocks")
	fs.StringVar(&f.style, "style", "", "highlight style name (implies --highlight)")
}

// newRenderFlagSet registers every render flag on a new FlagSet.
// Shared by parseRenderFlags and shell completion.
func newRenderFlagSet(f *renderFlags) *flag.FlagSet {
	fs := flag.NewFlagSet(cmdRender, flag.ContinueOnError)

	// I/O flags
	fs.StringVarP(&f.output, "output", "o", "", "output file or directory")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.StringVarP(&f.engine, "engine", "e", "", "render engine: native, goldmark")
	fs.BoolVar(&f.drafts, "drafts", false, "render files marked draft in front matter")

	// Flag groups
	addCommonFlags(fs, &f.common)
	addTOCFlags(fs, &f.toc)
	addHighlightFlags(fs, &f.highlight)

	return fs
}

// newTOCFlagSet registers the toc command flags.
func newTOCFlagSet(f *tocCmdFlags) *flag.FlagSet {
	fs := flag.NewFlagSet(cmdTOC, flag.ContinueOnError)
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.StringVarP(&f.format, "format", "f", "", "output format: yaml, json")
	fs.IntVar(&f.minDepth, "min-depth", 0, "min heading depth (1-6)")
	fs.IntVar(&f.maxDepth, "max-depth", 0, "max heading depth (1-6)")
	return fs
}

// newCSSFlagSet registers the css command flags.
func newCSSFlagSet(f *cssFlags) *flag.FlagSet {
	fs := flag.NewFlagSet(cmdCSS, flag.ContinueOnError)
	fs.StringVarP(&f.style, "style", "s", "", "highlight style name")
	fs.BoolVarP(&f.list, "list", "l", false, "list available styles")
	return fs
}

// parseRenderFlags parses render command flags and returns positional args.
func parseRenderFlags(args []string, stderr io.Writer) (*renderFlags, []string, error) {
	f := &renderFlags{}
	fs := newRenderFlagSet(f)
	fs.Usage = func() { printRenderUsage(stderr) }
	fs.SetOutput(stderr)

	if err := parse(fs, args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseTOCFlags parses toc command flags and returns positional args.
func parseTOCFlags(args []string, stderr io.Writer) (*tocCmdFlags, []string, error) {
	f := &tocCmdFlags{}
	fs := newTOCFlagSet(f)
	fs.Usage = func() { printTOCUsage(stderr) }
	fs.SetOutput(stderr)

	if err := parse(fs, args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseCSSFlags parses css command flags.
func parseCSSFlags(args []string, stderr io.Writer) (*cssFlags, error) {
	f := &cssFlags{}
	fs := newCSSFlagSet(f)
	fs.Usage = func() { printCSSUsage(stderr) }
	fs.SetOutput(stderr)

	if err := parse(fs, args); err != nil {
		return nil, err
	}
	return f, nil
}

// parse runs fs.Parse, passing flag.ErrHelp through unwrapped.
func parse(fs *flag.FlagSet, args []string) error {
	err := fs.Parse(args)
	if err == nil || errors.Is(err, flag.ErrHelp) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrInvalidArgs, err)
}
