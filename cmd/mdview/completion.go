package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-mdview"
	"github.com/alnah/go-mdview/internal/config"
)

// Shell names a shell that mdview can emit a completion script for.
type Shell string

// Supported shells.
const (
	ShellBash       Shell = "bash"
	ShellZsh        Shell = "zsh"
	ShellFish       Shell = "fish"
	ShellPowerShell Shell = "powershell"
)

// shells lists the supported shells in help order.
var shells = []string{string(ShellBash), string(ShellZsh), string(ShellFish), string(ShellPowerShell)}

// generators maps each shell to its script writer.
var generators = map[Shell]func(io.Writer) error{
	ShellBash:       generateBash,
	ShellZsh:        generateZsh,
	ShellFish:       generateFish,
	ShellPowerShell: generatePowerShell,
}

// ErrUnsupportedShell is returned when an unknown shell is requested.
var ErrUnsupportedShell = errors.New("unsupported shell")

// flagType tells a completion script what to offer after a flag.
type flagType int

const (
	flagString flagType = iota // free text, nothing offered
	flagBool                   // takes no value
	flagInt
	flagEnum // one of Values
	flagFile // files matching Exts
	flagDir
)

// flagDef is one flag as the completion scripts see it.
type flagDef struct {
	Long   string
	Short  string
	Type   flagType
	Desc   string
	Values []string // flagEnum
	Exts   []string // flagFile, without the leading dot
}

// commandDef is one subcommand as the completion scripts see it.
type commandDef struct {
	Name  string
	Desc  string
	Flags []flagDef
	Args  []string // fixed positional values
	Exts  []string // positional files, without the leading dot
}

// markdownExts are the extensions offered for positional input files.
var markdownExts = []string{"md", "markdown"}

// valueHints refines flags whose values can be enumerated or located on disk.
// Keys are long flag names shared across subcommands.
var valueHints = map[string]flagDef{
	"engine":     {Type: flagEnum, Values: mdview.Engines()},
	"toc-format": {Type: flagEnum, Values: config.Formats},
	"format":     {Type: flagEnum, Values: config.Formats},
	"style":      {Type: flagEnum, Values: mdview.HighlightStyles()},
	"config":     {Type: flagFile, Exts: []string{"yaml", "yml"}},
	"output":     {Type: flagDir},
}

// classifyFlag derives the completion type of f from its pflag value type,
// overridden by valueHints.
func classifyFlag(f *flag.Flag) flagDef {
	def := flagDef{Long: f.Name, Short: f.Shorthand, Desc: f.Usage}

	typ := f.Value.Type()
	switch {
	case typ == "bool":
		def.Type = flagBool
	case strings.HasPrefix(typ, "int"), strings.HasPrefix(typ, "uint"):
		def.Type = flagInt
	}

	if hint, ok := valueHints[f.Name]; ok {
		def.Type = hint.Type
		def.Values = hint.Values
		def.Exts = hint.Exts
	}
	return def
}

// extractFlagsFromFlagSet lists the flags of fs in pflag's sorted order.
func extractFlagsFromFlagSet(fs *flag.FlagSet) []flagDef {
	var defs []flagDef
	fs.VisitAll(func(f *flag.Flag) {
		defs = append(defs, classifyFlag(f))
	})
	return defs
}

// getCommands describes every subcommand, reading flags from the same
// FlagSets the parser uses so completions never drift from the CLI.
func getCommands() []commandDef {
	return []commandDef{
		{
			Name:  cmdRender,
			Desc:  "Render markdown files to HTML fragments",
			Flags: extractFlagsFromFlagSet(newRenderFlagSet(&renderFlags{})),
			Exts:  markdownExts,
		},
		{
			Name:  cmdTOC,
			Desc:  "Print the table of contents of a markdown file",
			Flags: extractFlagsFromFlagSet(newTOCFlagSet(&tocCmdFlags{})),
			Exts:  markdownExts,
		},
		{
			Name:  cmdCSS,
			Desc:  "Print the syntax highlighting stylesheet",
			Flags: extractFlagsFromFlagSet(newCSSFlagSet(&cssFlags{})),
		},
		{Name: cmdCompletion, Desc: "Generate shell completion script", Args: shells},
		{Name: cmdVersion, Desc: "Show version information"},
		{Name: cmdHelp, Desc: "Show help for a command", Args: commands},
	}
}

// GenerateCompletion writes the completion script for shell to w.
func GenerateCompletion(w io.Writer, shell Shell) error {
	gen, ok := generators[shell]
	if !ok {
		return fmt.Errorf("%w: %q (supported: %s)", ErrUnsupportedShell, shell, strings.Join(shells, ", "))
	}
	return gen(w)
}

// runCompletion handles the completion command.
func runCompletion(args []string, env *Environment) error {
	if len(args) == 0 {
		printCompletionUsage(env.Stdout)
		return nil
	}
	return GenerateCompletion(env.Stdout, Shell(args[0]))
}

// printCompletionUsage prints help for the completion command.
func printCompletionUsage(w io.Writer) {
	fmt.Fprint(w, `Usage: mdview completion <shell>

Print a completion script for bash, zsh, fish or powershell.

Setup:
  bash        eval "$(mdview completion bash)"                 # ~/.bashrc
  zsh         eval "$(mdview completion zsh)"                  # ~/.zshrc, before compinit
  fish        mdview completion fish > ~/.config/fish/completions/mdview.fish
  powershell  mdview completion powershell | Out-String | Invoke-Expression   # $PROFILE
`)
}
