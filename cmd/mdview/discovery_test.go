package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/alnah/go-mdview/internal/config"
)

// ---------------------------------------------------------------------------
// TestDiscoverFiles - Markdown discovery
// ---------------------------------------------------------------------------

func TestDiscoverFiles(t *testing.T) {
	t.Parallel()

	src := t.TempDir()
	writeFile(t, filepath.Join(src, "b.md"), "b")
	writeFile(t, filepath.Join(src, "a.markdown"), "a")
	writeFile(t, filepath.Join(src, "sub", "c.MD"), "c")
	writeFile(t, filepath.Join(src, "skip.txt"), "x")

	t.Run("directory without output dir", func(t *testing.T) {
		t.Parallel()

		files, err := discoverFiles(src, "")
		if err != nil {
			t.Fatalf("discoverFiles() unexpected error: %v", err)
		}

		want := []FileToRender{
			{InputPath: filepath.Join(src, "a.markdown"), OutputPath: filepath.Join(src, "a.html")},
			{InputPath: filepath.Join(src, "b.md"), OutputPath: filepath.Join(src, "b.html")},
			{InputPath: filepath.Join(src, "sub", "c.MD"), OutputPath: filepath.Join(src, "sub", "c.html")},
		}
		if len(files) != len(want) {
			t.Fatalf("discoverFiles() = %+v, want %+v", files, want)
		}
		for i := range want {
			if files[i] != want[i] {
				t.Errorf("file %d = %+v, want %+v", i, files[i], want[i])
			}
		}
	})

	t.Run("directory mirrors tree into output dir", func(t *testing.T) {
		t.Parallel()

		files, err := discoverFiles(src, "out")
		if err != nil {
			t.Fatalf("discoverFiles() unexpected error: %v", err)
		}
		if got := files[2].OutputPath; got != filepath.Join("out", "sub", "c.html") {
			t.Errorf("OutputPath = %q", got)
		}
	})

	t.Run("single file", func(t *testing.T) {
		t.Parallel()

		files, err := discoverFiles(filepath.Join(src, "b.md"), "")
		if err != nil {
			t.Fatalf("discoverFiles() unexpected error: %v", err)
		}
		if len(files) != 1 || files[0].OutputPath != filepath.Join(src, "b.html") {
			t.Errorf("discoverFiles() = %+v", files)
		}
	})

	t.Run("wrong extension", func(t *testing.T) {
		t.Parallel()

		_, err := discoverFiles(filepath.Join(src, "skip.txt"), "")
		if !errors.Is(err, ErrInvalidExtension) {
			t.Errorf("error = %v, want ErrInvalidExtension", err)
		}
	})

	t.Run("missing path", func(t *testing.T) {
		t.Parallel()

		_, err := discoverFiles(filepath.Join(src, "nope"), "")
		if !errors.Is(err, os.ErrNotExist) {
			t.Errorf("error = %v, want os.ErrNotExist", err)
		}
	})
}

// ---------------------------------------------------------------------------
// TestResolveOutputPath - HTML output path resolution
// ---------------------------------------------------------------------------

func TestResolveOutputPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     string
		outputDir string
		baseDir   string
		want      string
	}{
		{name: "next to source", input: filepath.Join("docs", "a.md"), want: filepath.Join("docs", "a.html")},
		{name: "explicit html file", input: "a.md", outputDir: filepath.Join("site", "index.html"), want: filepath.Join("site", "index.html")},
		{name: "flat output dir", input: filepath.Join("docs", "a.md"), outputDir: "out", want: filepath.Join("out", "a.html")},
		{name: "nested under base", input: filepath.Join("docs", "x", "a.markdown"), outputDir: "out", baseDir: "docs", want: filepath.Join("out", "x", "a.html")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := resolveOutputPath(tt.input, tt.outputDir, tt.baseDir); got != tt.want {
				t.Errorf("resolveOutputPath() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResolveOutputPath_ExistingHTMLDir(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "site.html")
	if err := os.MkdirAll(dir, 0o750); err != nil {
		t.Fatal(err)
	}

	got := resolveOutputPath("page.md", dir, "")
	if want := filepath.Join(dir, "page.html"); got != want {
		t.Errorf("resolveOutputPath() = %q, want %q", got, want)
	}
}

func TestTOCOutputPath(t *testing.T) {
	t.Parallel()

	got, err := tocOutputPath(filepath.Join("out", "page.html"), config.FormatJSON)
	if err != nil {
		t.Fatalf("tocOutputPath() unexpected error: %v", err)
	}
	if want := filepath.Join("out", "page.toc.json"); got != want {
		t.Errorf("tocOutputPath() = %q, want %q", got, want)
	}
}

// ---------------------------------------------------------------------------
// TestValidateWorkers - Worker count bounds
// ---------------------------------------------------------------------------

func TestValidateWorkers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		n       int
		wantErr bool
	}{
		{n: 0},
		{n: 1},
		{n: config.MaxWorkers},
		{n: -1, wantErr: true},
		{n: config.MaxWorkers + 1, wantErr: true},
	}

	for _, tt := range tests {
		err := validateWorkers(tt.n)
		if tt.wantErr != (err != nil) {
			t.Errorf("validateWorkers(%d) = %v, wantErr %v", tt.n, err, tt.wantErr)
		}
		if err != nil && !errors.Is(err, ErrInvalidWorkerCount) {
			t.Errorf("validateWorkers(%d) error should wrap ErrInvalidWorkerCount", tt.n)
		}
	}
}
