package main

// Notes:
// - print*Usage: we test that each usage text names its command and the
//   flags it accepts. Exact layout is not asserted.
// - TestHelpDefaultsMatchConstants keeps documented defaults in sync with code.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/alnah/go-mdview"
	"github.com/alnah/go-mdview/internal/config"
)

// ---------------------------------------------------------------------------
// TestPrintUsage - Main usage
// ---------------------------------------------------------------------------

func TestPrintUsage(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	printUsage(&buf)
	output := buf.String()

	if !strings.Contains(output, "Usage: mdview <command>") {
		t.Error("usage should contain the synopsis")
	}
	for _, cmd := range commands {
		if !strings.Contains(output, "  "+cmd+" ") {
			t.Errorf("usage should list command %q", cmd)
		}
	}
}

// ---------------------------------------------------------------------------
// TestCommandUsage - Per-command usage
// ---------------------------------------------------------------------------

func TestCommandUsage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		print func(w *bytes.Buffer)
		want  []string
	}{
		{
			name:  "render",
			print: func(w *bytes.Buffer) { printRenderUsage(w) },
			want: []string{
				"Usage: mdview render",
				"--output", "--config", "--workers", "--drafts", "--engine",
				"--toc", "--toc-format", "--toc-min-depth", "--toc-max-depth",
				"--highlight", "--style", "--quiet", "--verbose",
				"MDVIEW_CONFIG", "MDVIEW_WORKERS",
			},
		},
		{
			name:  "toc",
			print: func(w *bytes.Buffer) { printTOCUsage(w) },
			want:  []string{"Usage: mdview toc", "--format", "--min-depth", "--max-depth"},
		},
		{
			name:  "css",
			print: func(w *bytes.Buffer) { printCSSUsage(w) },
			want:  []string{"Usage: mdview css", "--style", "--list"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			tt.print(&buf)
			for _, want := range tt.want {
				if !strings.Contains(buf.String(), want) {
					t.Errorf("%s usage should contain %q", tt.name, want)
				}
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestHelpDefaultsMatchConstants - Verify documented defaults match actual values
// ---------------------------------------------------------------------------

func TestHelpDefaultsMatchConstants(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	printRenderUsage(&buf)
	output := buf.String()

	defaults := []struct {
		name     string
		expected string
	}{
		{"engine", fmt.Sprintf("%s (default)", mdview.EngineNative)},
		{"toc-format", fmt.Sprintf("%s (default)", config.FormatYAML)},
		{"toc-min-depth", fmt.Sprintf("default: %d", config.MinTOCDepth)},
		{"toc-max-depth", fmt.Sprintf("default: %d", config.MaxTOCDepth)},
		{"style", fmt.Sprintf("default: %s", mdview.DefaultHighlightStyle)},
	}

	for _, d := range defaults {
		if !strings.Contains(output, d.expected) {
			t.Errorf("help for --%s should document %q", d.name, d.expected)
		}
	}
}

// ---------------------------------------------------------------------------
// TestRunHelp - Help command routing
// ---------------------------------------------------------------------------

func TestRunHelp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		args         []string
		wantInStdout []string
		wantInStderr []string
	}{
		{
			name:         "no args shows main usage",
			args:         []string{},
			wantInStdout: []string{"Usage: mdview", "Commands:"},
		},
		{
			name:         "render shows render help",
			args:         []string{"render"},
			wantInStdout: []string{"Usage: mdview render", "Table of Contents:", "Highlighting:"},
		},
		{
			name:         "toc shows toc help",
			args:         []string{"toc"},
			wantInStdout: []string{"Usage: mdview toc"},
		},
		{
			name:         "css shows css help",
			args:         []string{"css"},
			wantInStdout: []string{"Usage: mdview css"},
		},
		{
			name:         "completion shows completion help",
			args:         []string{"completion"},
			wantInStdout: []string{"Usage: mdview completion"},
		},
		{
			name:         "version shows version help",
			args:         []string{"version"},
			wantInStdout: []string{"Usage: mdview version"},
		},
		{
			name:         "help shows help help",
			args:         []string{"help"},
			wantInStdout: []string{"Usage: mdview help"},
		},
		{
			name:         "unknown command shows error",
			args:         []string{"unknown"},
			wantInStderr: []string{"Unknown command: unknown", "Usage: mdview"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env, stdout, stderr := testEnv()
			runHelp(tt.args, env)

			for _, want := range tt.wantInStdout {
				if !strings.Contains(stdout.String(), want) {
					t.Errorf("stdout should contain %q, got: %s", want, stdout.String())
				}
			}
			for _, want := range tt.wantInStderr {
				if !strings.Contains(stderr.String(), want) {
					t.Errorf("stderr should contain %q, got: %s", want, stderr.String())
				}
			}
		})
	}
}
