package pipeline

import "strings"

// bannerWidth is the length of the rule printed around each section title.
const bannerWidth = 80

// Assemble builds the PDF text for all documents: a banner with the title,
// then the normalized body (or the missing placeholder), then a blank line.
func Assemble(docs []Document) []string {
	rule := strings.Repeat("=", bannerWidth)

	var lines []string
	for _, d := range docs {
		lines = append(lines, rule, d.Title, rule, "")
		if d.Missing {
			lines = append(lines, d.MissingPlaceholder(), "")
			continue
		}
		lines = append(lines, Normalize(d.Body)...)
		lines = append(lines, "")
	}
	return lines
}
