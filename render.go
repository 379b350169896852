package tablemark

import (
	"strings"

	"github.com/ivanvanderbyl/markdown"
)

// RenderPipeTable serializes hoisted titles plus a rectangular body into
// pipe-table text. Each title renders as a bold line followed by a blank
// line; the first body row becomes the header, followed by a separator row
// with one --- per column and then the remaining rows. A table construct is
// never emitted with zero columns: a fully empty grid renders as an empty
// string, and a titles-only grid renders as bold paragraphs with no pipe
// syntax at all.
func RenderPipeTable(titles []string, body Grid) string {
	if len(body) == 0 {
		if len(titles) == 0 {
			return ""
		}
		lines := make([]string, len(titles))
		for i, t := range titles {
			lines[i] = markdown.Bold(t)
		}
		return strings.Join(lines, "\n\n") + "\n"
	}

	width := body.Width()
	if width == 0 {
		return ""
	}

	sep := make([]string, width)
	for i := range sep {
		sep[i] = "---"
	}

	out := make([]string, 0, len(titles)*2+len(body)+1)
	for _, t := range titles {
		out = append(out, markdown.Bold(t), "")
	}
	out = append(out, pipeRow(body[0]), pipeRow(sep))
	for _, row := range body[1:] {
		out = append(out, pipeRow(row))
	}
	return strings.Join(out, "\n") + "\n"
}

func pipeRow(cells []string) string {
	return "| " + strings.Join(cells, " | ") + " |"
}

// ParsePipeTable reads pipe-table text back into a grid: one row per pipe
// line with the separator row dropped and escaped pipes restored. Bold title
// paragraphs and any other non-pipe lines are ignored. It exists so callers
// (and tests) can verify the render round trip.
func ParsePipeTable(s string) Grid {
	var g Grid
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "|") || !strings.HasSuffix(line, "|") || len(line) < 2 {
			continue
		}
		cells := splitPipeRow(line)
		if isSeparatorRow(cells) {
			continue
		}
		g = append(g, cells)
	}
	return g
}

// splitPipeRow splits one pipe line into trimmed cells, honoring \| escapes.
func splitPipeRow(line string) []string {
	line = strings.TrimSuffix(strings.TrimPrefix(line, "|"), "|")

	var cells []string
	var cur strings.Builder
	escaped := false
	for _, r := range line {
		switch {
		case escaped:
			if r != '|' {
				cur.WriteByte('\\')
			}
			cur.WriteRune(r)
			escaped = false
		case r == '\\':
			escaped = true
		case r == '|':
			cells = append(cells, strings.TrimSpace(cur.String()))
			cur.Reset()
		default:
			cur.WriteRune(r)
		}
	}
	if escaped {
		cur.WriteByte('\\')
	}
	return append(cells, strings.TrimSpace(cur.String()))
}

func isSeparatorRow(cells []string) bool {
	if len(cells) == 0 {
		return false
	}
	for _, c := range cells {
		if c == "" {
			return false
		}
		for _, r := range c {
			if r != '-' && r != ':' {
				return false
			}
		}
	}
	return true
}
