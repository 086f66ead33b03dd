// Package highlight adds syntax highlighting to rendered HTML fragments.
//
// The renderer leaves fenced code as
//
//	<pre class="language-go"><code class="language-go">...</code></pre>
//
// A Highlighter walks a fragment, tokenizes the text of every code element
// carrying a language class with chroma, and replaces it with class-based
// <span> tokens. Colors come from a stylesheet written by WriteCSS, so the
// fragment itself never carries inline styles.
//
// Highlighting is a separate, optional step. Apply runs it synchronously;
// Schedule runs it in a goroutine and delivers the result on a channel.
package highlight
