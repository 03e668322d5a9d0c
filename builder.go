package mdbundle

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/alnah/go-mdbundle/internal/fileutil"
	"github.com/alnah/go-mdbundle/internal/manifest"
	"github.com/alnah/go-mdbundle/internal/pdfwriter"
	"github.com/alnah/go-mdbundle/internal/pipeline"
)

// Compile-time interface implementation checks.
var _ pipeline.HTMLRenderer = (*pipeline.GoldmarkConverter)(nil)

// Builder assembles a book from its manifest. Create with NewBuilder.
// A Builder holds no state between builds and may be reused.
type Builder struct {
	cfg      builderConfig
	renderer pipeline.HTMLRenderer
}

// builderConfig holds the resolved options.
type builderConfig struct {
	root      string
	summary   string
	wrapWidth int
	layout    Layout
	html      bool
	htmlDir   string
}

// Option configures a Builder.
type Option func(*Builder)

// WithRoot sets the project root. Chapter links resolve against it.
func WithRoot(dir string) Option {
	return func(b *Builder) {
		b.cfg.root = dir
	}
}

// WithSummary sets the manifest path. Relative paths resolve against the root.
func WithSummary(path string) Option {
	return func(b *Builder) {
		b.cfg.summary = path
	}
}

// WithWrapWidth sets the column width of PDF text.
func WithWrapWidth(width int) Option {
	return func(b *Builder) {
		b.cfg.wrapWidth = width
	}
}

// WithLayout sets the PDF page layout.
func WithLayout(l Layout) Option {
	return func(b *Builder) {
		b.cfg.layout = l
	}
}

// WithHTML enables HTML output. Relative links and images are rewritten to
// resolve from outDir, the directory the HTML file will be written to.
func WithHTML(outDir string) Option {
	return func(b *Builder) {
		b.cfg.html = true
		b.cfg.htmlDir = outDir
	}
}

// withHTMLRenderer injects the HTML renderer (for tests).
func withHTMLRenderer(r pipeline.HTMLRenderer) Option {
	return func(b *Builder) {
		b.renderer = r
	}
}

// NewBuilder creates a Builder with default configuration.
// Returns ErrInvalidWrapWidth or ErrInvalidLayout for unusable options.
func NewBuilder(opts ...Option) (*Builder, error) {
	b := &Builder{
		cfg: builderConfig{
			root:      ".",
			summary:   DefaultSummary,
			wrapWidth: DefaultWrapWidth,
			layout:    DefaultLayout(),
		},
	}

	for _, opt := range opts {
		opt(b)
	}

	if b.cfg.root == "" {
		b.cfg.root = "."
	}
	if b.cfg.summary == "" {
		b.cfg.summary = DefaultSummary
	}
	if b.cfg.wrapWidth < 1 {
		return nil, fmt.Errorf("%w: %d (must be at least 1)", ErrInvalidWrapWidth, b.cfg.wrapWidth)
	}
	if err := b.cfg.layout.Validate(); err != nil {
		return nil, err
	}

	if b.cfg.html && b.renderer == nil {
		b.renderer = pipeline.NewGoldmarkConverter()
	}

	return b, nil
}

// SummaryPath returns the manifest location the builder reads.
func (b *Builder) SummaryPath() string {
	if filepath.IsAbs(b.cfg.summary) {
		return b.cfg.summary
	}
	return filepath.Join(b.cfg.root, b.cfg.summary)
}

// Build reads the manifest and every chapter it lists, then renders all
// outputs in memory. Missing chapters are not an error: they are replaced by
// a placeholder and listed in Result.Missing.
func (b *Builder) Build(ctx context.Context) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := manifest.Read(b.SummaryPath(), b.cfg.root)
	if err != nil {
		return nil, err
	}

	docs, missing, err := loadDocuments(ctx, entries)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Markdown: []byte(pipeline.Combine(docs)),
		Entries:  len(entries),
		Missing:  missing,
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	lines := pipeline.Wrap(pipeline.Assemble(docs), b.cfg.wrapWidth)
	result.PDF = pdfwriter.Render(lines, b.cfg.layout)
	result.Pages = pageCount(len(lines), b.cfg.layout.LinesPerPage)

	if b.cfg.html {
		html, err := b.renderer.ToHTML(ctx, docs, b.cfg.htmlDir)
		if err != nil {
			return nil, fmt.Errorf("converting to HTML: %w", err)
		}
		result.HTML = []byte(html)
	}

	return result, nil
}

// loadDocuments reads each entry's source. Entries whose file does not
// exist are marked missing; any other read failure is fatal.
func loadDocuments(ctx context.Context, entries []Entry) ([]pipeline.Document, []string, error) {
	docs := make([]pipeline.Document, 0, len(entries))
	var missing []string

	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}

		doc := pipeline.Document{
			Title: e.Title,
			Rel:   e.Rel,
			Dir:   filepath.Dir(e.Path),
		}

		if !fileutil.FileExists(e.Path) {
			doc.Missing = true
			missing = append(missing, e.Rel)
			docs = append(docs, doc)
			continue
		}

		body, err := fileutil.ReadText(e.Path)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %s: %w", ErrReadDocument, e.Rel, err)
		}
		doc.Body = body
		docs = append(docs, doc)
	}

	return docs, missing, nil
}

func pageCount(lines, perPage int) int {
	if lines == 0 {
		return 0
	}
	return (lines + perPage - 1) / perPage
}
