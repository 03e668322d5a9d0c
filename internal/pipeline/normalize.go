package pipeline

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/alnah/go-mdbundle/internal/fileutil"
)

// codeIndent prefixes every line inside a fenced code block.
const codeIndent = "    "

// Precompiled regex patterns for performance.
var (
	imagePattern   = regexp.MustCompile(`^!\[(.*?)\]\((.*?)\)`)
	linkPattern    = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)
	codePattern    = regexp.MustCompile("`([^`]+)`")
	boldPattern    = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	italicPattern  = regexp.MustCompile(`\*([^*]+)\*`)
	boldUPattern   = regexp.MustCompile(`__([^_]+)__`)
	italicUPattern = regexp.MustCompile(`_([^_]+)_`)
	tagPattern     = regexp.MustCompile(`<[^>]+>`)
	headingPattern = regexp.MustCompile(`^(#+)(.*)`)
)

// inlineMarkers are applied in order, one non-overlapping pass each.
// Nested or escaped markers are not handled specially.
var inlineMarkers = []struct {
	re   *regexp.Regexp
	repl string
}{
	{linkPattern, "${1} (${2})"},
	{codePattern, "${1}"},
	{boldPattern, "${1}"},
	{italicPattern, "${1}"},
	{boldUPattern, "${1}"},
	{italicUPattern, "${1}"},
	{tagPattern, ""},
}

// normalizeState is threaded through the line fold.
type normalizeState struct {
	inFence bool
	out     []string
}

// Normalize converts a markdown document into plain display lines.
// Empty strings in the result are paragraph breaks.
func Normalize(markdown string) []string {
	st := normalizeState{}
	for _, raw := range fileutil.SplitLines(markdown) {
		st = st.step(raw)
	}
	return st.out
}

// step consumes one source line and returns the next state.
func (st normalizeState) step(raw string) normalizeState {
	line := strings.TrimRightFunc(raw, unicode.IsSpace)
	trimmed := strings.TrimSpace(line)

	if strings.HasPrefix(trimmed, "```") {
		st.inFence = !st.inFence
		return st
	}
	if st.inFence {
		st.out = append(st.out, codeIndent+line)
		return st
	}
	if strings.HasPrefix(trimmed, "{%") {
		return st
	}

	if m := imagePattern.FindStringSubmatch(line); m != nil {
		alt := strings.TrimSpace(m[1])
		if alt == "" {
			alt = "Image"
		}
		st.out = append(st.out, "[Image: "+alt+"]")
		return st
	}

	for _, mk := range inlineMarkers {
		line = mk.re.ReplaceAllString(line, mk.repl)
	}

	if m := headingPattern.FindStringSubmatch(line); m != nil {
		if text := strings.TrimSpace(m[2]); text != "" {
			st.out = append(st.out, text, "")
		}
		return st
	}

	st.out = append(st.out, line)
	return st
}
