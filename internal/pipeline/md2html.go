package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
	nethtml "golang.org/x/net/html"
)

// ErrHTMLConversion indicates HTML conversion failed.
var ErrHTMLConversion = errors.New("HTML conversion failed")

// htmlTemplate wraps the rendered sections in a complete HTML5 document.
const htmlTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>%s</title>
</head>
<body>
%s</body>
</html>
`

// defaultHTMLTitle is used when there are no documents to take a title from.
const defaultHTMLTitle = "Book"

// HTMLRenderer abstracts rendering the bundled documents to HTML.
type HTMLRenderer interface {
	ToHTML(ctx context.Context, docs []Document, outDir string) (string, error)
}

// GoldmarkConverter renders markdown to HTML using goldmark (pure Go).
type GoldmarkConverter struct {
	md goldmark.Markdown
}

// NewGoldmarkConverter creates a GoldmarkConverter with GFM extensions and syntax highlighting.
func NewGoldmarkConverter() *GoldmarkConverter {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,      // Tables, strikethrough, autolinks, task lists
			extension.Footnote, // [^1] footnotes
			highlighting.NewHighlighting(
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true), // CSS classes instead of inline styles
				),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithXHTML(),
			// WithUnsafe() is not used: raw HTML in chapters is dropped.
		),
	)
	return &GoldmarkConverter{md: md}
}

// ToHTML renders each document as a <section> headed by its title, with
// relative links rebased onto outDir. Heading IDs are unique across the
// whole book. Context is checked between documents.
func (c *GoldmarkConverter) ToHTML(ctx context.Context, docs []Document, outDir string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	ids := newBookIDs()
	var body strings.Builder

	for _, d := range docs {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		id := ids.Generate([]byte(d.Title), ast.KindHeading)
		fmt.Fprintf(&body, "<section>\n<h1 id=%s>%s</h1>\n", strconv.Quote(string(id)), nethtml.EscapeString(d.Title))

		if d.Missing {
			fmt.Fprintf(&body, "<p>%s</p>\n", nethtml.EscapeString(d.MissingPlaceholder()))
			body.WriteString("</section>\n")
			continue
		}

		var buf bytes.Buffer
		pctx := parser.NewContext(parser.WithIDs(ids))
		if err := c.md.Convert([]byte(d.Body), &buf, parser.WithContext(pctx)); err != nil {
			return "", fmt.Errorf("%w: %s: %v", ErrHTMLConversion, d.Rel, err)
		}

		fragment, err := RebaseRelativePaths(buf.String(), d.Dir, outDir)
		if err != nil {
			return "", fmt.Errorf("%w: rebasing paths in %s: %v", ErrHTMLConversion, d.Rel, err)
		}

		body.WriteString(fragment)
		body.WriteString("</section>\n")
	}

	title := defaultHTMLTitle
	if len(docs) > 0 {
		title = docs[0].Title
	}
	return fmt.Sprintf(htmlTemplate, nethtml.EscapeString(title), body.String()), nil
}

// bookIDs implements parser.IDs with one namespace shared by all chapters,
// so two chapters with an "Overview" heading get distinct anchors.
type bookIDs struct {
	seen map[string]bool
}

func newBookIDs() *bookIDs {
	return &bookIDs{seen: make(map[string]bool)}
}

// Generate returns a slug of value, suffixed with -1, -2, ... on collision.
func (b *bookIDs) Generate(value []byte, _ ast.NodeKind) []byte {
	base := slugify(string(value))
	if base == "" {
		base = "heading"
	}
	id := base
	for i := 1; b.seen[id]; i++ {
		id = base + "-" + strconv.Itoa(i)
	}
	b.seen[id] = true
	return []byte(id)
}

// Put records an explicitly assigned ID.
func (b *bookIDs) Put(value []byte) {
	b.seen[string(value)] = true
}

// slugify lowercases s, keeps letters and digits, and joins words with '-'.
func slugify(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(s) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if dash && b.Len() > 0 {
				b.WriteByte('-')
			}
			dash = false
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			dash = true
		}
	}
	return b.String()
}
