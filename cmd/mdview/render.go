package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-mdview"
	"github.com/alnah/go-mdview/internal/config"
	"github.com/alnah/go-mdview/internal/hints"
)

// Sentinel errors for render operations.
var (
	ErrNoInput      = errors.New("no input specified")
	ErrReadMarkdown = errors.New("failed to read markdown file")
	ErrWriteOutput  = errors.New("failed to write output file")
)

// renderParams groups parameters shared across batch/file rendering.
type renderParams struct {
	renderer    *mdview.Renderer
	highlighter *mdview.Highlighter // nil when highlighting is off
	toc         bool
	tocFormat   string
	drafts      bool
}

// runRender orchestrates the render command.
func runRender(ctx context.Context, args []string, env *Environment) error {
	flags, positionalArgs, err := parseRenderFlags(args, env.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	// Validate worker count early
	if err := validateWorkers(flags.workers); err != nil {
		return err
	}

	envCfg := loadEnvConfig()
	if !flags.common.quiet {
		warnUnknownEnvVars(env.Stderr)
	}

	cfg, err := loadConfig(flags.common.config, envCfg, env)
	if err != nil {
		return err
	}

	// Precedence: CLI flags > env vars > config file > defaults
	applyEnvConfig(envCfg, cfg)
	mergeFlags(flags, cfg)
	if err := validateConfig(cfg); err != nil {
		return err
	}

	inputPath, err := resolveInputPath(positionalArgs, cfg)
	if err != nil {
		return err
	}
	outputDir := resolveOutputDir(flags.output, cfg)

	files, err := discoverFiles(inputPath, outputDir)
	if err != nil {
		return fmt.Errorf("discovering files: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("%w in %s%s", ErrNoMarkdownFiles, inputPath, hints.ForNoMarkdown())
	}

	params, err := buildRenderParams(cfg, flags.drafts)
	if err != nil {
		return err
	}

	workers := mdview.ResolvePoolSize(cfg.Workers)
	if flags.common.verbose {
		fmt.Fprintf(env.Stderr, "Engine: %s, workers: %d, files: %d\n", params.renderer.Engine(), workers, len(files))
	}

	results := renderBatch(ctx, workers, files, params)

	failedCount := printResults(results, flags.common.quiet, flags.common.verbose, env)
	if failedCount > 0 {
		return fmt.Errorf("%d render(s) failed", failedCount)
	}
	return nil
}

// loadConfig loads the named config file, or the environment's default
// config when no name is given by flag or MDVIEW_CONFIG.
func loadConfig(name string, envCfg *envConfig, env *Environment) (*config.Config, error) {
	if name == "" {
		name = envCfg.ConfigPath
	}
	if name == "" {
		return env.baseConfig(), nil
	}

	cfg, err := config.LoadConfig(name)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			return nil, fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(config.SearchPaths(name)))
		}
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// validateConfig validates the merged config and appends a hint for the
// errors a user can fix with a flag.
func validateConfig(cfg *config.Config) error {
	err := cfg.Validate()
	switch {
	case err == nil:
		return nil
	case errors.Is(err, config.ErrInvalidEngine):
		return fmt.Errorf("%w%s", err, hints.ForEngine(mdview.Engines()))
	case errors.Is(err, config.ErrInvalidStyle):
		return fmt.Errorf("%w%s", err, hints.ForStyleNotFound(mdview.HighlightStyles()))
	case errors.Is(err, config.ErrInvalidTOCDepth):
		return fmt.Errorf("%w%s", err, hints.ForTOCDepth())
	default:
		return err
	}
}

// mergeFlags merges CLI flags into config. CLI values override config values.
func mergeFlags(flags *renderFlags, cfg *config.Config) {
	if flags.engine != "" {
		cfg.Render.Engine = flags.engine
	}
	if flags.workers > 0 {
		cfg.Workers = flags.workers
	}

	// TOC flags
	if flags.toc.enabled {
		cfg.TOC.Enabled = true
	}
	if flags.toc.format != "" {
		cfg.TOC.Format = flags.toc.format
		cfg.TOC.Enabled = true
	}
	if flags.toc.minDepth != 0 {
		cfg.TOC.MinDepth = flags.toc.minDepth
	}
	if flags.toc.maxDepth != 0 {
		cfg.TOC.MaxDepth = flags.toc.maxDepth
	}

	// Highlight flags
	if flags.highlight.enabled {
		cfg.Highlight.Enabled = true
	}
	if flags.highlight.style != "" {
		cfg.Highlight.Style = flags.highlight.style
		cfg.Highlight.Enabled = true
	}
}

// buildRenderParams creates the renderer and optional highlighter from a
// validated config.
func buildRenderParams(cfg *config.Config, drafts bool) (*renderParams, error) {
	engine, err := mdview.ParseEngine(cfg.Render.Engine)
	if err != nil {
		return nil, fmt.Errorf("%w%s", err, hints.ForEngine(mdview.Engines()))
	}

	renderer, err := mdview.NewRenderer(
		mdview.WithEngine(engine),
		mdview.WithTOCDepth(cfg.TOC.MinDepth, cfg.TOC.MaxDepth),
	)
	if err != nil {
		return nil, err
	}

	params := &renderParams{
		renderer:  renderer,
		toc:       cfg.TOC.Enabled,
		tocFormat: strings.ToLower(cfg.TOC.Format),
		drafts:    drafts,
	}
	if params.tocFormat == "" {
		params.tocFormat = config.FormatYAML
	}

	if cfg.Highlight.Enabled {
		h, err := mdview.NewHighlighter(strings.ToLower(cfg.Highlight.Style))
		if err != nil {
			return nil, fmt.Errorf("%w%s", err, hints.ForStyleNotFound(mdview.HighlightStyles()))
		}
		params.highlighter = h
	}

	return params, nil
}

// resolveInputPath determines the input path from args or config.
func resolveInputPath(args []string, cfg *config.Config) (string, error) {
	if len(args) > 1 {
		return "", fmt.Errorf("%w: expected one input, got %d", ErrInvalidArgs, len(args))
	}
	if len(args) == 1 {
		return args[0], nil
	}
	if cfg.Input.DefaultDir != "" {
		return cfg.Input.DefaultDir, nil
	}
	return "", ErrNoInput
}

// resolveOutputDir determines the output directory from flag or config.
func resolveOutputDir(flagOutput string, cfg *config.Config) string {
	if flagOutput != "" {
		return flagOutput
	}
	return cfg.Output.DefaultDir
}
