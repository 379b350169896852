package tablemark

import "strings"

// RowClass tags how a grid row is rendered.
type RowClass int

const (
	// RowBody is an ordinary data row.
	RowBody RowClass = iota

	// RowTitle is a section-label row hoisted out of the pipe table.
	RowTitle

	// RowHeader is the first non-title row; it becomes the table header.
	RowHeader
)

// ClassifyRows tags every grid row as title, header or body. The first row
// that is not title-like becomes the header, whatever its content; header
// selection stays deliberately heuristic.
func ClassifyRows(g Grid) []RowClass {
	classes := make([]RowClass, len(g))
	headerSeen := false
	for i, row := range g {
		if _, ok := titleValue(row); ok {
			classes[i] = RowTitle
			continue
		}
		if !headerSeen {
			classes[i] = RowHeader
			headerSeen = true
			continue
		}
		classes[i] = RowBody
	}
	return classes
}

// ExtractTitles partitions a grid into hoisted title strings and the reduced
// body grid. When every row is title-like the body comes back empty and the
// table renders as bold paragraphs only.
func ExtractTitles(g Grid) (titles []string, body Grid) {
	for i, class := range ClassifyRows(g) {
		if class == RowTitle {
			v, _ := titleValue(g[i])
			titles = append(titles, v)
			continue
		}
		body = append(body, g[i])
	}
	return titles, body
}

// titleValue reports whether a row encodes a section label rather than data:
// either exactly one non-blank cell, or two or more non-blank cells that all
// share one value (a fully merged row). Rows with no content at all are body
// rows.
func titleValue(row []string) (string, bool) {
	var nonEmpty []string
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			nonEmpty = append(nonEmpty, c)
		}
	}

	switch {
	case len(nonEmpty) == 1:
		return nonEmpty[0], true
	case len(nonEmpty) >= 2:
		for _, c := range nonEmpty[1:] {
			if c != nonEmpty[0] {
				return "", false
			}
		}
		return nonEmpty[0], true
	}
	return "", false
}
