package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/alnah/go-mdview/internal/config"
)

const envPrefix = "MDVIEW_"

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string // MDVIEW_CONFIG: config file name or path
	Engine     string // MDVIEW_ENGINE: native or goldmark
	Style      string // MDVIEW_STYLE: highlight style, enables highlighting
	InputDir   string // MDVIEW_INPUT_DIR: default input directory
	OutputDir  string // MDVIEW_OUTPUT_DIR: default output directory
	Workers    int    // MDVIEW_WORKERS: parallel workers
}

// knownEnvVars lists valid MDVIEW_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"MDVIEW_CONFIG":     true,
	"MDVIEW_ENGINE":     true,
	"MDVIEW_STYLE":      true,
	"MDVIEW_INPUT_DIR":  true,
	"MDVIEW_OUTPUT_DIR": true,
	"MDVIEW_WORKERS":    true,
}

// loadEnvConfig reads configuration from environment variables.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath: os.Getenv("MDVIEW_CONFIG"),
		Engine:     os.Getenv("MDVIEW_ENGINE"),
		Style:      os.Getenv("MDVIEW_STYLE"),
		InputDir:   os.Getenv("MDVIEW_INPUT_DIR"),
		OutputDir:  os.Getenv("MDVIEW_OUTPUT_DIR"),
	}

	// Invalid or non-positive values are ignored.
	if workers := os.Getenv("MDVIEW_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	return cfg
}

// warnUnknownEnvVars writes a warning for each unrecognized MDVIEW_* variable,
// sorted by name.
func warnUnknownEnvVars(w io.Writer) {
	var unknown []string
	for _, env := range os.Environ() {
		if !strings.HasPrefix(env, envPrefix) {
			continue
		}
		name, _, _ := strings.Cut(env, "=")
		if !knownEnvVars[name] {
			unknown = append(unknown, name)
		}
	}
	sort.Strings(unknown)

	for _, name := range unknown {
		fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
	}
}

// applyEnvConfig overrides config values with the environment variables that
// are set. CLI flags are applied afterwards by mergeFlags, which gives:
// CLI flags > env vars > config file > defaults.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.Engine != "" {
		cfg.Render.Engine = env.Engine
	}

	// Naming a style implies highlighting.
	if env.Style != "" {
		cfg.Highlight.Style = env.Style
		cfg.Highlight.Enabled = true
	}

	if env.InputDir != "" {
		cfg.Input.DefaultDir = env.InputDir
	}
	if env.OutputDir != "" {
		cfg.Output.DefaultDir = env.OutputDir
	}
	if env.Workers > 0 {
		cfg.Workers = env.Workers
	}
}
