package tablemark

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var (
	// Horizontal whitespace runs inside a line, including the no-break
	// spaces that &nbsp; entities decode to.
	interiorSpaceRE = regexp.MustCompile("[ \t ]+")

	// Lines that are pure separator decoration, e.g. "----" or "***".
	decorationLineRE = regexp.MustCompile(`^[-*_]{2,}$`)
)

// NormalizeCellText collapses one cell's raw extracted text into a single
// line that is safe to embed in a pipe-delimited field. Line-ending variants
// are unified, every line is trimmed and its interior whitespace folded,
// empty and decoration-only lines are dropped, the survivors are rejoined
// with DefaultLineBreak, and literal pipes are escaped.
func NormalizeCellText(text string) string {
	return normalizeCellText(text, DefaultLineBreak)
}

func normalizeCellText(text, lineBreak string) string {
	text = norm.NFC.String(text)
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	var kept []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(interiorSpaceRE.ReplaceAllString(line, " "))
		if line == "" || decorationLineRE.MatchString(line) {
			continue
		}
		kept = append(kept, line)
	}

	// An empty cell renders as an empty string, never as a bare line-break
	// marker.
	if len(kept) == 0 {
		return ""
	}

	return strings.ReplaceAll(strings.Join(kept, lineBreak), "|", `\|`)
}
