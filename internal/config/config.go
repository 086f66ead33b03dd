package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/alnah/go-mdview/internal/fileutil"
	"github.com/alnah/go-mdview/internal/highlight"
	"github.com/alnah/go-mdview/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidEngine   = errors.New("invalid render engine")
	ErrInvalidTOCDepth = errors.New("invalid TOC depth")
	ErrInvalidFormat   = errors.New("invalid TOC format")
	ErrInvalidStyle    = errors.New("invalid highlight style")
	ErrInvalidWorkers  = errors.New("invalid worker count")
)

// Field length limits.
const (
	MaxPathLength  = 4096 // PATH_MAX on Linux
	MaxStyleLength = 50   // chroma style names are short
)

// Accepted enum values.
const (
	EngineNative   = "native"
	EngineGoldmark = "goldmark"

	FormatYAML = "yaml"
	FormatJSON = "json"

	MinTOCDepth = 1
	MaxTOCDepth = 6

	// MaxWorkers bounds the render worker pool.
	MaxWorkers = 64
)

// Engines lists the supported render engines.
var Engines = []string{EngineNative, EngineGoldmark}

// Formats lists the supported ToC output formats.
var Formats = []string{FormatYAML, FormatJSON}

// Config holds all configuration for rendering.
type Config struct {
	Input     InputConfig     `yaml:"input"`
	Output    OutputConfig    `yaml:"output"`
	Render    RenderConfig    `yaml:"render"`
	TOC       TOCConfig       `yaml:"toc"`
	Highlight HighlightConfig `yaml:"highlight"`
	Workers   int             `yaml:"workers"` // 0 = auto (GOMAXPROCS)
}

// InputConfig defines input source options.
type InputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default input directory (empty = must specify)
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default output directory (empty = next to source)
}

// RenderConfig selects the Markdown engine.
type RenderConfig struct {
	Engine string `yaml:"engine"` // "native" or "goldmark" (default: "native")
}

// TOCConfig defines table of contents output.
type TOCConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Format   string `yaml:"format"`   // "yaml" or "json" (default: "yaml")
	MinDepth int    `yaml:"minDepth"` // 1-6, 0 = 1
	MaxDepth int    `yaml:"maxDepth"` // 1-6, 0 = 6
}

// HighlightConfig defines post-render syntax highlighting.
type HighlightConfig struct {
	Enabled bool   `yaml:"enabled"`
	Style   string `yaml:"style"` // chroma style name (default: "github")
}

// Validate checks enums, ranges and field lengths.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually.
func (c *Config) Validate() error {
	if err := validateFieldLength("input.defaultDir", c.Input.DefaultDir, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("output.defaultDir", c.Output.DefaultDir, MaxPathLength); err != nil {
		return err
	}

	if c.Render.Engine != "" && !slices.Contains(Engines, strings.ToLower(c.Render.Engine)) {
		return fmt.Errorf("%w: render.engine %q (must be %s)", ErrInvalidEngine, c.Render.Engine, strings.Join(Engines, " or "))
	}

	if c.TOC.Format != "" && !slices.Contains(Formats, strings.ToLower(c.TOC.Format)) {
		return fmt.Errorf("%w: toc.format %q (must be %s)", ErrInvalidFormat, c.TOC.Format, strings.Join(Formats, " or "))
	}
	if err := ValidateDepths(c.TOC.MinDepth, c.TOC.MaxDepth); err != nil {
		return err
	}

	if err := validateFieldLength("highlight.style", c.Highlight.Style, MaxStyleLength); err != nil {
		return err
	}
	if c.Highlight.Style != "" && !slices.Contains(highlight.Styles(), strings.ToLower(c.Highlight.Style)) {
		return fmt.Errorf("%w: highlight.style %q", ErrInvalidStyle, c.Highlight.Style)
	}

	if c.Workers < 0 || c.Workers > MaxWorkers {
		return fmt.Errorf("%w: workers must be between 0 and %d, got %d", ErrInvalidWorkers, MaxWorkers, c.Workers)
	}

	return nil
}

// ValidateDepths checks a ToC depth range. Zero means "unset" and takes the
// default bound.
func ValidateDepths(minDepth, maxDepth int) error {
	if minDepth != 0 && (minDepth < MinTOCDepth || minDepth > MaxTOCDepth) {
		return fmt.Errorf("%w: minDepth must be between %d and %d, got %d", ErrInvalidTOCDepth, MinTOCDepth, MaxTOCDepth, minDepth)
	}
	if maxDepth != 0 && (maxDepth < MinTOCDepth || maxDepth > MaxTOCDepth) {
		return fmt.Errorf("%w: maxDepth must be between %d and %d, got %d", ErrInvalidTOCDepth, MinTOCDepth, MaxTOCDepth, maxDepth)
	}
	if minDepth != 0 && maxDepth != 0 && minDepth > maxDepth {
		return fmt.Errorf("%w: minDepth (%d) > maxDepth (%d)", ErrInvalidTOCDepth, minDepth, maxDepth)
	}
	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Render:    RenderConfig{Engine: EngineNative},
		TOC:       TOCConfig{Enabled: false, Format: FormatYAML, MinDepth: MinTOCDepth, MaxDepth: MaxTOCDepth},
		Highlight: HighlightConfig{Enabled: false, Style: highlight.DefaultStyle},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
// Fields absent from the file keep their DefaultConfig values.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SearchPaths returns the locations tried for a config name, in order:
// current directory, then the user config directory, each with .yaml and .yml.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, "go-mdview", name+ext))
		}
	}
	return paths
}

// resolveConfigPath returns the first existing path from SearchPaths.
func resolveConfigPath(name string) (string, error) {
	paths := SearchPaths(name)
	for _, p := range paths {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(paths, ", "))
}
