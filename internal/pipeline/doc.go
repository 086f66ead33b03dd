// Package pipeline implements the Markdown-to-HTML fragment pipeline.
//
// The native engine runs these stages over one source string:
//   - Normalization (line endings, reserved placeholder runes)
//   - Fenced code extraction into an arena of CodeBlock values
//   - Line classification into typed blocks (headings, rules, quotes,
//     tables, lists, paragraphs, code references)
//   - Escaping and inline markup on text-bearing blocks only
//   - Placeholder resolution back into highlighted-ready code markup
//
// Heading extraction for tables of contents reuses the same normalization,
// code extraction and Slug function, so anchors in the fragment and in the
// TOC always agree.
//
// A goldmark-backed engine is available for callers that want fuller
// CommonMark coverage; it shares the Slug function for heading IDs.
//
// Every stage is a pure function of its input: there is no package-level
// mutable state and all functions are safe for concurrent use.
package pipeline
