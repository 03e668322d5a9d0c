package mdbundle

import (
	"github.com/alnah/go-mdbundle/internal/manifest"
	"github.com/alnah/go-mdbundle/internal/pdfwriter"
	"github.com/alnah/go-mdbundle/internal/pipeline"
)

// Defaults applied when an option is not given.
const (
	DefaultSummary   = "SUMMARY.md"
	DefaultWrapWidth = pipeline.DefaultWrapWidth
)

// Layout describes the PDF page geometry. See DefaultLayout.
type Layout = pdfwriter.Layout

// DefaultLayout returns US Letter pages of 46 lines in 12pt Helvetica.
func DefaultLayout() Layout {
	return pdfwriter.DefaultLayout()
}

// Entry is one chapter listed in the manifest.
type Entry = manifest.Entry

// Result holds the outputs of a build.
type Result struct {
	Markdown []byte   // combined markdown, always ends with "\n"
	PDF      []byte   // serialized PDF
	HTML     []byte   // nil unless WithHTML was given
	Pages    int      // PDF page count
	Entries  int      // chapters listed in the manifest
	Missing  []string // root-relative paths of chapters that do not exist
}
