// Package mdbundle bundles a book of Markdown chapters into a single
// plain-text PDF and a combined Markdown file.
//
// # Quick Start
//
// Point a Builder at a directory holding a SUMMARY.md table of contents:
//
//	b, err := mdbundle.NewBuilder(mdbundle.WithRoot("book"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := b.Build(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("book.pdf", result.PDF, 0o644)
//	os.WriteFile("book.md", result.Markdown, 0o644)
//
// Build never writes files; the caller decides where the bytes go.
//
// # Pipeline
//
//  1. The manifest is scanned for links to .md files, one chapter per line
//  2. Each chapter is loaded; missing chapters become placeholders
//  3. Chapters are concatenated raw into the combined Markdown
//  4. Chapters are reduced to plain lines, bannered, and wrapped to a fixed width
//  5. Wrapped lines are paginated into a PDF 1.4 file using a standard font
//  6. Optionally, chapters are rendered to one HTML document via Goldmark
//
// # Configuration
//
// Use functional options to customize the build:
//
//	b, err := mdbundle.NewBuilder(
//	    mdbundle.WithRoot("book"),
//	    mdbundle.WithSummary("TOC.md"),
//	    mdbundle.WithWrapWidth(72),
//	    mdbundle.WithLayout(layout),
//	    mdbundle.WithHTML("dist"),
//	)
package mdbundle
