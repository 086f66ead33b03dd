package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

// Command names.
const (
	cmdRender     = "render"
	cmdTOC        = "toc"
	cmdCSS        = "css"
	cmdCompletion = "completion"
	cmdVersion    = "version"
	cmdHelp       = "help"
)

var commands = []string{cmdRender, cmdTOC, cmdCSS, cmdCompletion, cmdVersion, cmdHelp}

func main() {
	env := DefaultEnv()

	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply.
	_, _ = maxprocs.Set(maxprocs.Logger(maxprocsLogger(hasVerboseFlag(os.Args), env.Stderr)))

	os.Exit(runMain(os.Args, env))
}

// maxprocsLogger returns a logger that writes to w only in verbose mode.
func maxprocsLogger(verbose bool, w io.Writer) func(string, ...interface{}) {
	if !verbose {
		return func(string, ...interface{}) {}
	}
	return func(format string, args ...interface{}) {
		fmt.Fprintf(w, format+"\n", args...)
	}
}

// hasVerboseFlag reports whether -v or --verbose appears in args.
func hasVerboseFlag(args []string) bool {
	return slices.Contains(args, "-v") || slices.Contains(args, "--verbose")
}

// runMain dispatches to a command and returns the process exit code.
// A first argument ending in .md or .markdown is shorthand for "render".
func runMain(args []string, env *Environment) int {
	if len(args) < 2 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	cmd, rest := args[1], args[2:]
	if !isCommand(cmd) && looksLikeMarkdown(cmd) {
		cmd, rest = cmdRender, args[1:]
	}

	ctx, stop := notifyContext(context.Background())
	defer stop()

	var err error
	switch cmd {
	case cmdRender:
		err = runRender(ctx, rest, env)
	case cmdTOC:
		err = runTOC(rest, env)
	case cmdCSS:
		err = runCSS(rest, env)
	case cmdCompletion:
		err = runCompletion(rest, env)
	case cmdVersion:
		fmt.Fprintf(env.Stdout, "mdview %s\n", Version)
	case cmdHelp:
		runHelp(rest, env)
	case "-h", "--help":
		printUsage(env.Stdout)
	default:
		fmt.Fprintf(env.Stderr, "unknown command: %s\n\n", cmd)
		printUsage(env.Stderr)
		return ExitUsage
	}

	if err != nil {
		fmt.Fprintf(env.Stderr, "error: %v\n", err)
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// isCommand reports whether s is a known command name.
func isCommand(s string) bool {
	return slices.Contains(commands, s)
}

// looksLikeMarkdown reports whether s has a Markdown file extension.
func looksLikeMarkdown(s string) bool {
	return strings.HasSuffix(s, ".md") || strings.HasSuffix(s, ".markdown")
}
