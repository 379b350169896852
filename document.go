package tablemark

import (
	"regexp"
	"strings"

	"github.com/pkg/errors"
)

const (
	openMarker  = "<table"
	closeMarker = "</table"
)

// Runs of three or more blank lines collapse to exactly two.
var blankRunRE = regexp.MustCompile(`\n{4,}`)

// asciiLower folds only ASCII letters, byte for byte. The markers are pure
// ASCII, and a full Unicode ToLower can change byte lengths (İ, ẞ), which
// would desync every offset after such a character.
func asciiLower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}

// findTableBlocks scans a document for top-level table regions in document
// order. The scanner tracks start/end marker nesting depth explicitly, so an
// unterminated start marker never steals a later end tag: scanning simply
// stops and the remainder of the document passes through untouched. Regions
// that contain an inner start marker are returned flagged nested and are
// never rewritten.
func findTableBlocks(doc string) []tableBlock {
	lower := asciiLower(doc)
	var blocks []tableBlock

	pos := 0
	for {
		start := indexOpenMarker(lower, pos)
		if start < 0 {
			break
		}

		depth := 1
		nested := false
		end := -1
		i := start + len(openMarker)
		for depth > 0 {
			nextOpen := indexOpenMarker(lower, i)
			closeAt, closeEnd := indexCloseMarker(lower, i)
			if closeAt < 0 {
				break
			}
			if nextOpen >= 0 && nextOpen < closeAt {
				depth++
				nested = true
				i = nextOpen + len(openMarker)
				continue
			}
			depth--
			i = closeEnd
			if depth == 0 {
				end = closeEnd
			}
		}
		if end < 0 {
			break
		}

		blocks = append(blocks, tableBlock{
			start:  start,
			end:    end,
			raw:    doc[start:end],
			nested: nested,
		})
		pos = end
	}
	return blocks
}

// indexOpenMarker finds the next "<table" that really starts a table tag,
// not a longer name like "<tablex".
func indexOpenMarker(lower string, from int) int {
	for {
		i := strings.Index(lower[from:], openMarker)
		if i < 0 {
			return -1
		}
		i += from
		j := i + len(openMarker)
		if j >= len(lower) {
			return -1
		}
		switch lower[j] {
		case '>', ' ', '\t', '\n', '\r', '/':
			return i
		}
		from = j
	}
}

// indexCloseMarker finds the next "</table>" (whitespace allowed before the
// closing bracket) and returns its start offset and the offset just past it.
func indexCloseMarker(lower string, from int) (int, int) {
	for {
		i := strings.Index(lower[from:], closeMarker)
		if i < 0 {
			return -1, -1
		}
		i += from
		j := i + len(closeMarker)
		for j < len(lower) && (lower[j] == ' ' || lower[j] == '\t' || lower[j] == '\n' || lower[j] == '\r') {
			j++
		}
		if j < len(lower) && lower[j] == '>' {
			return i, j + 1
		}
		from = i + len(closeMarker)
	}
}

// RewriteDocument replaces every parseable table region in doc with rendered
// pipe-table text, using the default configuration. Regions whose markup
// cannot be resolved into a grid are left byte-for-byte intact and counted in
// the summary; nothing in a single region aborts the rest of the document.
func RewriteDocument(doc string) (string, Summary) {
	return rewriteDocument(doc, DefaultConfig())
}

func rewriteDocument(doc string, cfg Config) (string, Summary) {
	blocks := findTableBlocks(doc)
	summary := Summary{RegionsFound: len(blocks)}
	if len(blocks) == 0 {
		return doc, summary
	}

	// Substitute in reverse document order so earlier offsets stay valid.
	out := doc
	for i := len(blocks) - 1; i >= 0; i-- {
		block := blocks[i]
		rendered, err := convertRegion(block, cfg)
		if err != nil {
			summary.RegionsSkipped++
			continue
		}
		out = out[:block.start] + rendered + out[block.end:]
		summary.RegionsConverted++
	}

	out = strings.ReplaceAll(out, "\r\n", "\n")
	out = blankRunRE.ReplaceAllString(out, "\n\n\n")
	out = strings.TrimSpace(out) + "\n"
	return out, summary
}

// convertRegion runs one region through the parse → grid → titles → render
// pipeline. An empty table renders as an empty string, which removes the
// region from the document; that is deliberate and documented.
func convertRegion(block tableBlock, cfg Config) (string, error) {
	if block.nested {
		return "", errors.Wrap(ErrNestedTable, "region rejected")
	}

	parsed, err := parseTableRegion(block.raw)
	if err != nil {
		if errors.Is(err, ErrEmptyTable) {
			return "", nil
		}
		return "", err
	}

	grid := buildGrid(parsed.Rows, cfg.LineBreak)
	titles, body := ExtractTitles(grid)
	return RenderPipeTable(titles, body), nil
}
