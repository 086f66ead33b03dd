package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdview <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  render       Render markdown files to HTML fragments")
	fmt.Fprintln(w, "  toc          Print the table of contents of a markdown file")
	fmt.Fprintln(w, "  css          Print the syntax highlighting stylesheet")
	fmt.Fprintln(w, "  completion   Generate shell completion script")
	fmt.Fprintln(w, "  version      Show version information")
	fmt.Fprintln(w, "  help         Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'mdview help <command>' for details on a specific command.")
}

// printRenderUsage prints usage for the render command.
func printRenderUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdview render <input> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render markdown files to sanitized HTML fragments (<name>.html).")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    Markdown file or directory (optional if config has input.defaultDir)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>       Output .html file or directory")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto)")
	fmt.Fprintln(w, "      --drafts              Render files marked draft: true")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Rendering:")
	fmt.Fprintln(w, "  -e, --engine <s>          Engine: native (default), goldmark")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Table of Contents:")
	fmt.Fprintln(w, "      --toc                 Write <name>.toc.<format> next to each file")
	fmt.Fprintln(w, "      --toc-format <s>      Format: yaml (default), json")
	fmt.Fprintln(w, "      --toc-min-depth <n>   Min heading depth (1-6, default: 1)")
	fmt.Fprintln(w, "      --toc-max-depth <n>   Max heading depth (1-6, default: 6)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Highlighting:")
	fmt.Fprintln(w, "      --highlight           Highlight fenced code blocks")
	fmt.Fprintln(w, "      --style <name>        Style name (default: github, see 'mdview css --list')")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show detailed timing")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  MDVIEW_CONFIG, MDVIEW_ENGINE, MDVIEW_STYLE, MDVIEW_INPUT_DIR,")
	fmt.Fprintln(w, "  MDVIEW_OUTPUT_DIR, MDVIEW_WORKERS")
}

// printTOCUsage prints usage for the toc command.
func printTOCUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdview toc <file> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print the table of contents of a markdown file.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -f, --format <s>          Format: yaml (default), json")
	fmt.Fprintln(w, "      --min-depth <n>       Min heading depth (1-6)")
	fmt.Fprintln(w, "      --max-depth <n>       Max heading depth (1-6)")
}

// printCSSUsage prints usage for the css command.
func printCSSUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdview css [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print the stylesheet for highlighted code blocks.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -s, --style <name>        Style name (default: github)")
	fmt.Fprintln(w, "  -l, --list                List available styles")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return
	}

	switch args[0] {
	case cmdRender:
		printRenderUsage(env.Stdout)
	case cmdTOC:
		printTOCUsage(env.Stdout)
	case cmdCSS:
		printCSSUsage(env.Stdout)
	case cmdCompletion:
		printCompletionUsage(env.Stdout)
	case cmdVersion:
		fmt.Fprintln(env.Stdout, "Usage: mdview version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case cmdHelp:
		fmt.Fprintln(env.Stdout, "Usage: mdview help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
	}
}
