// Package manifest extracts the ordered chapter list from a SUMMARY.md-style
// index file.
package manifest

import (
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/alnah/go-mdbundle/internal/fileutil"
)

// ErrReadManifest indicates the manifest file could not be read.
var ErrReadManifest = errors.New("failed to read manifest")

// linkPattern matches the first markdown link to a .md file on a line.
var linkPattern = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+\.md)\)`)

// Entry is one document listed in the manifest.
type Entry struct {
	Title string // link text, trimmed
	Path  string // link joined with the project root, or the link itself when absolute
	Rel   string // link as written, minus "." segments and repeated slashes
}

// Parse returns one Entry per line containing a link to a .md file, in
// manifest order. Lines without a link are prose and are skipped.
// Target files are not checked for existence.
func Parse(text, root string) []Entry {
	var entries []Entry
	for _, line := range fileutil.SplitLines(text) {
		m := linkPattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		entries = append(entries, newEntry(strings.TrimSpace(m[1]), m[2], root))
	}
	return entries
}

// Read loads and parses the manifest at path.
func Read(path, root string) ([]Entry, error) {
	text, err := fileutil.ReadText(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadManifest, err)
	}
	return Parse(text, root), nil
}

func newEntry(title, link, root string) Entry {
	rel := tidyLink(link)
	path := filepath.FromSlash(rel)
	if !isAbsLink(rel) {
		path = filepath.Join(root, path)
	}
	return Entry{
		Title: title,
		Path:  path,
		Rel:   rel,
	}
}

// tidyLink drops empty and "." segments from a slash path. ".." segments are
// kept, so the link still names the file the way the manifest does.
func tidyLink(link string) string {
	var kept []string
	for _, seg := range strings.Split(filepath.ToSlash(link), "/") {
		if seg != "" && seg != "." {
			kept = append(kept, seg)
		}
	}
	tidy := strings.Join(kept, "/")
	if strings.HasPrefix(filepath.ToSlash(link), "/") {
		return "/" + tidy
	}
	return tidy
}

func isAbsLink(link string) bool {
	return strings.HasPrefix(filepath.ToSlash(link), "/") || filepath.IsAbs(link)
}
