package tablemark

import (
	"strconv"
	"strings"

	"github.com/ivanvanderbyl/markdown"
	"github.com/pkg/errors"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var (
	// ErrNoTable means a region contained no table element after parsing.
	ErrNoTable = errors.New("no table element in region")

	// ErrNestedTable means a region contained an inner table start marker.
	ErrNestedTable = errors.New("nested table markup")

	// ErrEmptyTable means a region parsed but yielded zero rows.
	ErrEmptyTable = errors.New("table region has no rows")
)

// parseTableRegion parses one table region's markup into row descriptors.
func parseTableRegion(raw string) (*parsedTable, error) {
	doc, err := html.Parse(strings.NewReader(raw))
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse table markup")
	}

	table := findElement(doc, atom.Table)
	if table == nil {
		return nil, ErrNoTable
	}

	var parsed parsedTable
	var walkRows func(n *html.Node)
	walkRows = func(n *html.Node) {
		if n.Type == html.ElementNode && n.DataAtom == atom.Tr {
			row := parseRow(n)
			parsed.Rows = append(parsed.Rows, row)
			if row.HasHeader {
				parsed.HeaderHint = true
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walkRows(c)
		}
	}
	walkRows(table)

	if len(parsed.Rows) == 0 {
		return nil, ErrEmptyTable
	}
	return &parsed, nil
}

// parseRow collects the td/th cells of one tr container.
func parseRow(tr *html.Node) RowDescriptor {
	var row RowDescriptor
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && (n.DataAtom == atom.Td || n.DataAtom == atom.Th) {
			cell := CellDescriptor{
				Text:    collectCellText(n),
				RowSpan: spanAttr(n, "rowspan"),
				ColSpan: spanAttr(n, "colspan"),
				Header:  n.DataAtom == atom.Th,
			}
			if cell.Header {
				row.HasHeader = true
			}
			row.Cells = append(row.Cells, cell)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for c := tr.FirstChild; c != nil; c = c.NextSibling {
		walk(c)
	}
	return row
}

// collectCellText flattens a cell subtree into raw text: <br> becomes a
// newline, a strong/b wrapper with non-empty trimmed content becomes a bold
// span, empty wrappers are dropped, and any other element is treated as
// opaque content.
func collectCellText(n *html.Node) string {
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		writeCellText(&sb, c)
	}
	return sb.String()
}

func writeCellText(sb *strings.Builder, n *html.Node) {
	if n.Type == html.TextNode {
		sb.WriteString(n.Data)
		return
	}
	if n.Type != html.ElementNode {
		return
	}

	switch n.DataAtom {
	case atom.Br:
		sb.WriteByte('\n')
	case atom.Strong, atom.B:
		inner := strings.TrimSpace(collectCellText(n))
		if inner != "" {
			sb.WriteString(markdown.Bold(inner))
		}
	default:
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			writeCellText(sb, c)
		}
	}
}

// spanAttr reads an integer span attribute. Malformed or non-positive values
// are clamped to 1: spanning metadata is advisory, not load-bearing.
func spanAttr(n *html.Node, key string) int {
	for _, a := range n.Attr {
		if strings.EqualFold(a.Key, key) {
			v, err := strconv.Atoi(strings.TrimSpace(a.Val))
			if err != nil || v < 1 {
				return 1
			}
			return v
		}
	}
	return 1
}

// findElement returns the first element with the given atom, depth-first.
func findElement(n *html.Node, a atom.Atom) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == a {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, a); found != nil {
			return found
		}
	}
	return nil
}
