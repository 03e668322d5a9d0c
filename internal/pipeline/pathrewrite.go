package pipeline

import (
	"net/url"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// RebaseRelativePaths rewrites relative img[src] and a[href] paths in an HTML
// fragment so they resolve from outDir instead of srcDir. Chapters live in
// subdirectories, while the bundled HTML is written once next to the outputs.
// Returns the fragment unchanged when both directories are the same.
//
// Not rewritten: URLs with a scheme or host, absolute paths, pure anchors.
func RebaseRelativePaths(fragment, srcDir, outDir string) (string, error) {
	absSrc, err := filepath.Abs(srcDir)
	if err != nil {
		return "", err
	}
	absOut, err := filepath.Abs(outDir)
	if err != nil {
		return "", err
	}
	if absSrc == absOut {
		return fragment, nil
	}

	doc, err := parseFragment(fragment)
	if err != nil {
		return "", err
	}

	rebaseNode(doc, absSrc, absOut)

	return renderFragment(doc)
}

// parseFragment parses HTML with a body context to avoid <html><body> wrapping.
func parseFragment(content string) (*html.Node, error) {
	context := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Body,
		Data:     "body",
	}
	nodes, err := html.ParseFragment(strings.NewReader(content), context)
	if err != nil {
		return nil, err
	}

	// Wrap nodes in a container for uniform traversal
	container := &html.Node{Type: html.DocumentNode}
	for _, n := range nodes {
		container.AppendChild(n)
	}
	return container, nil
}

// renderFragment renders only the container's children.
func renderFragment(doc *html.Node) (string, error) {
	var buf strings.Builder
	for c := doc.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&buf, c); err != nil {
			return "", err
		}
	}
	return buf.String(), nil
}

// rebaseNode traverses the DOM and rewrites relative paths.
func rebaseNode(n *html.Node, srcDir, outDir string) {
	if n.Type == html.ElementNode {
		switch n.DataAtom {
		case atom.Img:
			rebaseAttr(n, "src", srcDir, outDir)
		case atom.A:
			rebaseAttr(n, "href", srcDir, outDir)
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		rebaseNode(c, srcDir, outDir)
	}
}

// rebaseAttr rewrites a single attribute if it holds a relative path.
func rebaseAttr(n *html.Node, attrName, srcDir, outDir string) {
	for i, attr := range n.Attr {
		if attr.Key != attrName {
			continue
		}
		u, ok := relativeURL(attr.Val)
		if !ok {
			continue
		}

		target := filepath.Join(srcDir, filepath.FromSlash(u.Path))
		rel, err := filepath.Rel(outDir, target)
		if err != nil {
			continue
		}

		u.Path = filepath.ToSlash(rel)
		n.Attr[i].Val = u.String()
	}
}

// relativeURL parses val and reports whether it is a relative path reference.
func relativeURL(val string) (*url.URL, bool) {
	if val == "" || strings.HasPrefix(val, "#") || strings.HasPrefix(val, "//") {
		return nil, false
	}
	u, err := url.Parse(val)
	if err != nil {
		return nil, false
	}
	if u.Scheme != "" || u.Host != "" || u.Path == "" {
		return nil, false
	}
	if strings.HasPrefix(u.Path, "/") || filepath.IsAbs(u.Path) {
		return nil, false
	}
	return u, true
}
