// Package pipeline turns loaded chapter sources into the bundle's text forms.
//
// Stages, in the order the builder runs them:
//   - Normalize: markdown to plain display lines (fences indented, markup stripped)
//   - Assemble: banner, title and normalized body per chapter
//   - Wrap: fixed-width reflow of the assembled lines
//   - Combine: raw markdown concatenation under per-chapter headings
//   - GoldmarkConverter: optional HTML rendering with rebased relative links
//
// PDF serialization lives in internal/pdfwriter. This package never touches
// the filesystem; callers load Documents and write the results.
package pipeline
