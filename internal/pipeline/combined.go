package pipeline

import (
	"strings"
	"unicode"
)

// Combine concatenates raw documents into one markdown text. Each document is
// introduced by a level-1 heading with its title. Bodies are not normalized.
func Combine(docs []Document) string {
	lines := make([]string, 0, len(docs)*4)
	for _, d := range docs {
		lines = append(lines, "# "+d.Title, "")
		if d.Missing {
			lines = append(lines, d.MissingPlaceholder(), "")
			continue
		}
		lines = append(lines, strings.TrimRightFunc(d.Body, unicode.IsSpace), "")
	}
	return strings.TrimSpace(strings.Join(lines, "\n")) + "\n"
}
