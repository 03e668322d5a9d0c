package pdfwriter

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidLayout indicates a page layout that cannot produce a readable PDF.
var ErrInvalidLayout = errors.New("invalid page layout")

// Default layout values: US Letter, 1 inch left margin, 12pt Helvetica.
const (
	DefaultLinesPerPage = 46
	DefaultPageWidth    = 612
	DefaultPageHeight   = 792
	DefaultMarginLeft   = 72
	DefaultStartY       = 720
	DefaultLeading      = 14
	DefaultFontSize     = 12
	DefaultFontName     = "Helvetica"
)

// Layout describes page geometry and text placement. Units are PDF points.
type Layout struct {
	LinesPerPage int
	PageWidth    int
	PageHeight   int
	MarginLeft   int
	StartY       int // baseline of the first line, measured from the bottom
	Leading      int
	FontSize     int
	FontName     string // one of the standard Type1 fonts
}

// DefaultLayout returns the layout used when nothing is configured.
func DefaultLayout() Layout {
	return Layout{
		LinesPerPage: DefaultLinesPerPage,
		PageWidth:    DefaultPageWidth,
		PageHeight:   DefaultPageHeight,
		MarginLeft:   DefaultMarginLeft,
		StartY:       DefaultStartY,
		Leading:      DefaultLeading,
		FontSize:     DefaultFontSize,
		FontName:     DefaultFontName,
	}
}

// Validate checks that every field is usable.
func (l Layout) Validate() error {
	positive := []struct {
		name  string
		value int
	}{
		{"lines per page", l.LinesPerPage},
		{"page width", l.PageWidth},
		{"page height", l.PageHeight},
		{"leading", l.Leading},
		{"font size", l.FontSize},
	}
	for _, f := range positive {
		if f.value < 1 {
			return fmt.Errorf("%w: %s must be positive, got %d", ErrInvalidLayout, f.name, f.value)
		}
	}
	if l.MarginLeft < 0 || l.MarginLeft >= l.PageWidth {
		return fmt.Errorf("%w: left margin %d outside page width %d", ErrInvalidLayout, l.MarginLeft, l.PageWidth)
	}
	if l.StartY < 0 || l.StartY > l.PageHeight {
		return fmt.Errorf("%w: start y %d outside page height %d", ErrInvalidLayout, l.StartY, l.PageHeight)
	}
	if l.FontName == "" || strings.ContainsAny(l.FontName, " \t\r\n/()<>[]{}%") {
		return fmt.Errorf("%w: font name %q", ErrInvalidLayout, l.FontName)
	}
	return nil
}
