package mdview

// Notes:
// - TOCOptions: tests depth range validation, nil handling and zero defaults
// - ParseEngine: tests case-insensitive engine names and the empty default

import (
	"errors"
	"testing"
)

// ---------------------------------------------------------------------------
// TestTOCOptions_Validate - TOC Depth Validation
// ---------------------------------------------------------------------------

func TestTOCOptions_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		opts    *TOCOptions
		wantErr error
	}{
		{name: "nil is valid (all levels)", opts: nil},
		{name: "zero values are valid", opts: &TOCOptions{}},
		{name: "full range", opts: &TOCOptions{MinDepth: 1, MaxDepth: 6}},
		{name: "single level", opts: &TOCOptions{MinDepth: 3, MaxDepth: 3}},
		{name: "min only", opts: &TOCOptions{MinDepth: 2}},
		{name: "max only", opts: &TOCOptions{MaxDepth: 2}},
		{name: "min below range", opts: &TOCOptions{MinDepth: -1}, wantErr: ErrInvalidTOCDepth},
		{name: "min above range", opts: &TOCOptions{MinDepth: 7}, wantErr: ErrInvalidTOCDepth},
		{name: "max above range", opts: &TOCOptions{MaxDepth: 7}, wantErr: ErrInvalidTOCDepth},
		{name: "min greater than max", opts: &TOCOptions{MinDepth: 4, MaxDepth: 2}, wantErr: ErrInvalidTOCDepth},
		{name: "min greater than default max", opts: &TOCOptions{MinDepth: 6, MaxDepth: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.opts.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestTOCOptions_Bounds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		opts    *TOCOptions
		wantMin int
		wantMax int
	}{
		{name: "nil", opts: nil, wantMin: 1, wantMax: 6},
		{name: "zero", opts: &TOCOptions{}, wantMin: 1, wantMax: 6},
		{name: "explicit", opts: &TOCOptions{MinDepth: 2, MaxDepth: 4}, wantMin: 2, wantMax: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			gotMin, gotMax := tt.opts.bounds()
			if gotMin != tt.wantMin || gotMax != tt.wantMax {
				t.Errorf("bounds() = (%d, %d), want (%d, %d)", gotMin, gotMax, tt.wantMin, tt.wantMax)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestParseEngine - Engine Name Parsing
// ---------------------------------------------------------------------------

func TestParseEngine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    Engine
		wantErr error
	}{
		{name: "empty defaults to native", input: "", want: EngineNative},
		{name: "native", input: "native", want: EngineNative},
		{name: "goldmark", input: "goldmark", want: EngineGoldmark},
		{name: "upper case", input: "NATIVE", want: EngineNative},
		{name: "surrounding space", input: "  goldmark ", want: EngineGoldmark},
		{name: "unknown", input: "blackfriday", wantErr: ErrInvalidEngine},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseEngine(tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ParseEngine(%q) error = %v, want %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseEngine(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestEngines(t *testing.T) {
	t.Parallel()

	for _, name := range Engines() {
		if _, err := ParseEngine(name); err != nil {
			t.Errorf("ParseEngine(%q) unexpected error: %v", name, err)
		}
	}
}
