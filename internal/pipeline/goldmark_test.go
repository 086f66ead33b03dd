package pipeline

import (
	"strings"
	"testing"
)

func TestGoldmarkRenderer_RenderFragment(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		contains []string
		excludes []string
	}{
		{
			name:     "heading id from slug",
			input:    "## Getting Started",
			contains: []string{`<h2 id="getting-started">Getting Started</h2>`},
		},
		{
			name:     "raw html dropped",
			input:    "<script>alert(1)</script>\n\ntext <b>bold</b>",
			excludes: []string{"<script>", "<b>"},
		},
		{
			name:     "table extension",
			input:    "|A|B|\n|-|-|\n|1|2|",
			contains: []string{"<table>", "<th>A</th>", "<td>2</td>"},
		},
		{
			name:     "strikethrough extension",
			input:    "~~gone~~",
			contains: []string{"<del>gone</del>"},
		},
		{
			name:     "fenced code keeps language class",
			input:    "```typescript\nconst x = 1;\n```",
			contains: []string{`<pre class="language-typescript"><code class="language-typescript">const x = 1;</code></pre>`},
			excludes: []string{"chroma", "tabindex", "style="},
		},
		{
			name:     "fenced code without language",
			input:    "```\nplain\n```",
			contains: []string{`<pre class="language-plaintext"><code class="language-plaintext">plain</code></pre>`},
		},
		{
			name:     "fenced code escaped verbatim",
			input:    "```html\n<a href=\"x\">&amp;</a>\n\n  end\n```",
			contains: []string{`<code class="language-html">&lt;a href="x"&gt;&amp;amp;&lt;/a&gt;` + "\n\n  end</code></pre>"},
		},
		{
			name:     "indented code uses plaintext",
			input:    "    x := 1",
			contains: []string{`<pre class="language-plaintext"><code class="language-plaintext">x := 1</code></pre>`},
		},
		{
			name:     "setext heading has no id",
			input:    "Title\n=====\n\nSub\n---",
			contains: []string{"<h1>Title</h1>", "<h2>Sub</h2>"},
			excludes: []string{"id="},
		},
		{
			name:     "atx heading starting with hash keeps id",
			input:    "# #tag",
			contains: []string{`<h1 id="tag">#tag</h1>`},
		},
		{
			name:     "crlf normalized",
			input:    "# A\r\n\r\nb",
			contains: []string{`<h1 id="a">A</h1>`, "<p>b</p>"},
		},
	}

	r := NewGoldmarkRenderer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := r.RenderFragment(tt.input)
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("RenderFragment(%q) = %q, missing %q", tt.input, got, want)
				}
			}
			for _, bad := range tt.excludes {
				if strings.Contains(got, bad) {
					t.Errorf("RenderFragment(%q) = %q, contains %q", tt.input, got, bad)
				}
			}
		})
	}
}

func TestSlugIDs(t *testing.T) {
	t.Parallel()

	ids := slugIDs{}
	ids.Put([]byte("hello-world"))

	if got := string(ids.Generate([]byte("Hello World"), 0)); got != "hello-world" {
		t.Errorf("Generate() = %q, want %q", got, "hello-world")
	}
}
