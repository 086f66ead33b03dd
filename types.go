package mdview

import (
	"fmt"
	"strings"

	"github.com/alnah/go-mdview/internal/pipeline"
)

// Heading level bounds.
const (
	MinHeadingLevel = pipeline.MinHeadingLevel
	MaxHeadingLevel = pipeline.MaxHeadingLevel
)

// TocEntry is one heading of a document's table of contents.
// ID equals the id attribute Render puts on the same heading.
type TocEntry struct {
	ID    string `json:"id" yaml:"id"`
	Title string `json:"title" yaml:"title"`
	Level int    `json:"level" yaml:"level"`
}

// TOCOptions restricts GenerateTOCWithOptions to a range of heading levels.
// Zero values mean the default bound (1 for MinDepth, 6 for MaxDepth).
type TOCOptions struct {
	MinDepth int
	MaxDepth int
}

// Validate checks that depths are within 1-6 and ordered.
// Returns nil if o is nil (nil means all levels).
func (o *TOCOptions) Validate() error {
	if o == nil {
		return nil
	}

	if o.MinDepth != 0 && (o.MinDepth < MinHeadingLevel || o.MinDepth > MaxHeadingLevel) {
		return fmt.Errorf("%w: minDepth must be between %d and %d, got %d",
			ErrInvalidTOCDepth, MinHeadingLevel, MaxHeadingLevel, o.MinDepth)
	}
	if o.MaxDepth != 0 && (o.MaxDepth < MinHeadingLevel || o.MaxDepth > MaxHeadingLevel) {
		return fmt.Errorf("%w: maxDepth must be between %d and %d, got %d",
			ErrInvalidTOCDepth, MinHeadingLevel, MaxHeadingLevel, o.MaxDepth)
	}

	minDepth, maxDepth := o.bounds()
	if minDepth > maxDepth {
		return fmt.Errorf("%w: minDepth (%d) > maxDepth (%d)", ErrInvalidTOCDepth, minDepth, maxDepth)
	}
	return nil
}

// bounds returns the effective depth range with zero values defaulted.
func (o *TOCOptions) bounds() (int, int) {
	if o == nil {
		return MinHeadingLevel, MaxHeadingLevel
	}
	minDepth, maxDepth := o.MinDepth, o.MaxDepth
	if minDepth == 0 {
		minDepth = MinHeadingLevel
	}
	if maxDepth == 0 {
		maxDepth = MaxHeadingLevel
	}
	return minDepth, maxDepth
}

// Engine selects the Markdown implementation used by a Renderer.
type Engine string

// Supported engines.
const (
	EngineNative   Engine = "native"
	EngineGoldmark Engine = "goldmark"
)

// Engines returns the supported engine names.
func Engines() []string {
	return []string{string(EngineNative), string(EngineGoldmark)}
}

// ParseEngine converts a case-insensitive name to an Engine.
// An empty name selects EngineNative.
func ParseEngine(name string) (Engine, error) {
	switch Engine(strings.ToLower(strings.TrimSpace(name))) {
	case "", EngineNative:
		return EngineNative, nil
	case EngineGoldmark:
		return EngineGoldmark, nil
	default:
		return "", fmt.Errorf("%w: %q (must be native or goldmark)", ErrInvalidEngine, name)
	}
}
