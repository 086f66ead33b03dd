package mdview

import (
	"errors"

	"github.com/alnah/go-mdview/internal/highlight"
)

// Sentinel errors for library operations.
var (
	// Renderer option validation errors.
	ErrInvalidEngine   = errors.New("invalid render engine")
	ErrInvalidTOCDepth = errors.New("invalid TOC depth")

	// Highlighting errors.
	ErrHighlight    = errors.New("highlighting failed")
	ErrUnknownStyle = highlight.ErrUnknownStyle
)
