package mdbundle

import (
	"errors"

	"github.com/alnah/go-mdbundle/internal/manifest"
	"github.com/alnah/go-mdbundle/internal/pdfwriter"
	"github.com/alnah/go-mdbundle/internal/pipeline"
)

// Sentinel errors for library operations.
var (
	ErrReadManifest   = manifest.ErrReadManifest
	ErrReadDocument   = errors.New("failed to read document")
	ErrWriteOutput    = errors.New("failed to write output")
	ErrHTMLConversion = pipeline.ErrHTMLConversion

	// Option validation errors.
	ErrInvalidLayout    = pdfwriter.ErrInvalidLayout
	ErrInvalidWrapWidth = errors.New("invalid wrap width")
)
