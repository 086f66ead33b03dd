package main

import (
	"errors"
	"fmt"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-mdview"
	"github.com/alnah/go-mdview/internal/config"
	"github.com/alnah/go-mdview/internal/hints"
)

// runCSS prints the highlighter stylesheet, or the style names with --list.
// Style resolution: --style > MDVIEW_STYLE > config > default.
func runCSS(args []string, env *Environment) error {
	flags, err := parseCSSFlags(args, env.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if flags.list {
		for _, name := range mdview.HighlightStyles() {
			fmt.Fprintln(env.Stdout, name)
		}
		return nil
	}

	envCfg := loadEnvConfig()
	cfg, err := loadConfig("", envCfg, env)
	if err != nil {
		return err
	}
	applyEnvConfig(envCfg, cfg)

	style := resolveStyle(flags.style, cfg)
	h, err := mdview.NewHighlighter(style)
	if err != nil {
		return fmt.Errorf("%w%s", err, hints.ForStyleNotFound(mdview.HighlightStyles()))
	}
	return h.WriteCSS(env.Stdout)
}

// resolveStyle picks the flag value, then the config value.
func resolveStyle(flagStyle string, cfg *config.Config) string {
	if flagStyle != "" {
		return flagStyle
	}
	return cfg.Highlight.Style
}
