package pipeline

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultWrapWidth is the column width used for PDF text.
const DefaultWrapWidth = 90

// tabSize is the tab stop interval used when expanding tabs in content.
const tabSize = 8

// Wrap reflows lines to width columns. Blank lines become paragraph breaks.
// Leading whitespace of a line is reused as the prefix of every sub-line.
// A non-blank line that produces no sub-lines (width < 1) yields its indent
// alone, so no line is ever dropped.
func Wrap(lines []string, width int) []string {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			out = append(out, "")
			continue
		}

		content := strings.TrimSpace(line)
		indent := line[:len(line)-len(strings.TrimLeftFunc(line, unicode.IsSpace))]

		wrapped := wrapText(content, indent, width)
		if len(wrapped) == 0 {
			wrapped = []string{indent}
		}
		out = append(out, wrapped...)
	}
	return out
}

// wrapText splits text into chunks and packs them greedily into lines.
// Internal whitespace runs are kept as-is; whitespace is only dropped where a
// line break falls. Words longer than the available width are broken.
func wrapText(text, indent string, width int) []string {
	if width < 1 {
		return nil
	}

	chunks := splitChunks(expandTabs(text))
	avail := width - utf8.RuneCountInString(indent)

	var lines []string
	for len(chunks) > 0 {
		var cur []string
		curLen := 0

		if len(lines) > 0 && isBlankChunk(chunks[0]) {
			chunks = chunks[1:]
		}

		for len(chunks) > 0 {
			n := utf8.RuneCountInString(chunks[0])
			if curLen+n > avail {
				break
			}
			cur = append(cur, chunks[0])
			curLen += n
			chunks = chunks[1:]
		}

		if len(chunks) > 0 && utf8.RuneCountInString(chunks[0]) > avail {
			var head string
			head, chunks[0] = breakLongChunk(chunks[0], avail, curLen)
			cur = append(cur, head)
			if chunks[0] == "" {
				chunks = chunks[1:]
			}
		}

		if len(cur) > 0 && isBlankChunk(cur[len(cur)-1]) {
			cur = cur[:len(cur)-1]
		}
		if len(cur) > 0 {
			lines = append(lines, indent+strings.Join(cur, ""))
		}
	}
	return lines
}

// breakLongChunk splits a chunk that cannot fit on a line, preferring the
// last hyphen that fits.
func breakLongChunk(chunk string, avail, curLen int) (head, rest string) {
	spaceLeft := 1
	if avail >= 1 {
		spaceLeft = avail - curLen
	}

	r := []rune(chunk)
	end := spaceLeft
	if hyphen := lastIndexRune(r[:spaceLeft], '-'); hyphen > 0 && !allRune(r[:hyphen], '-') {
		end = hyphen + 1
	}
	return string(r[:end]), string(r[end:])
}

// splitChunks splits text into alternating whitespace and word chunks.
// Hyphenated words are split after hyphens that sit between letters, and an
// em-dash written as "--" between words is a chunk of its own.
func splitChunks(text string) []string {
	var chunks []string
	r := []rune(text)
	start := 0
	for i := 1; i <= len(r); i++ {
		if i < len(r) && isWrapSpace(r[i]) == isWrapSpace(r[i-1]) &&
			!hyphenBreakAfter(r, i-1) && !emDashEdge(r, i) {
			continue
		}
		chunks = append(chunks, string(r[start:i]))
		start = i
	}
	return chunks
}

// hyphenBreakAfter reports whether a break is allowed after r[i].
// Matches "ab-cd" and "a-b-cd" style compounds, never "-x" or "1-2".
func hyphenBreakAfter(r []rune, i int) bool {
	if r[i] != '-' || i < 2 || i+2 >= len(r) {
		return false
	}
	before := isWordLetter(r[i-1]) &&
		(isWordLetter(r[i-2]) || (i >= 3 && r[i-2] == '-' && isWordLetter(r[i-3])))
	after := isWordLetter(r[i+1]) &&
		(isWordLetter(r[i+2]) || (r[i+2] == '-' && i+3 < len(r) && isWordLetter(r[i+3])))
	return before && after
}

// emDashEdge reports whether an em-dash chunk starts or ends at r[i].
func emDashEdge(r []rune, i int) bool {
	switch {
	case r[i] == '-' && r[i-1] != '-':
		return isEmDash(r, i)
	case r[i-1] == '-' && r[i] != '-':
		start := i - 1
		for start > 0 && r[start-1] == '-' {
			start--
		}
		return isEmDash(r, start)
	}
	return false
}

// isEmDash reports whether the dash run at r[start] is an em-dash: two or
// more dashes after a word or punctuation character and before a word character.
func isEmDash(r []rune, start int) bool {
	if start == 0 || !isWordPunct(r[start-1]) {
		return false
	}
	end := start
	for end < len(r) && r[end] == '-' {
		end++
	}
	return end-start >= 2 && end < len(r) && isWordChar(r[end])
}

// expandTabs replaces tabs with spaces up to the next tab stop.
func expandTabs(s string) string {
	if !strings.ContainsRune(s, '\t') {
		return s
	}
	var b strings.Builder
	col := 0
	for _, c := range s {
		switch c {
		case '\t':
			n := tabSize - col%tabSize
			b.WriteString(strings.Repeat(" ", n))
			col += n
		case '\n', '\r':
			b.WriteRune(c)
			col = 0
		default:
			b.WriteRune(c)
			col++
		}
	}
	return b.String()
}

// isWrapSpace reports whether c separates words. Only ASCII whitespace
// counts, so non-breaking spaces stay inside words.
func isWrapSpace(c rune) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func isWordChar(c rune) bool {
	return c == '_' || unicode.IsLetter(c) || unicode.IsNumber(c)
}

func isWordPunct(c rune) bool {
	return isWordChar(c) || strings.ContainsRune(`!"'&.,?`, c)
}

func isWordLetter(c rune) bool {
	return c == '_' || unicode.IsLetter(c)
}

func isBlankChunk(s string) bool {
	return strings.TrimSpace(s) == ""
}

func lastIndexRune(r []rune, c rune) int {
	for i := len(r) - 1; i >= 0; i-- {
		if r[i] == c {
			return i
		}
	}
	return -1
}

func allRune(r []rune, c rune) bool {
	for _, x := range r {
		if x != c {
			return false
		}
	}
	return true
}
