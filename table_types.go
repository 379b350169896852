package tablemark

// CellDescriptor is one td/th cell as found in the source markup.
type CellDescriptor struct {
	// Text is the raw extracted content. It may contain newlines (from <br>
	// markers) and bold markers; NormalizeCellText flattens it later.
	Text string

	// RowSpan and ColSpan are normalized to >= 1 at parse time, even when
	// the source markup carries a zero or malformed value.
	RowSpan int
	ColSpan int

	// Header marks th cells.
	Header bool
}

// RowDescriptor is an ordered sequence of cells from one tr container.
type RowDescriptor struct {
	Cells []CellDescriptor

	// HasHeader reports whether any cell in the row is header-marked.
	HasHeader bool
}

// parsedTable is the row/cell structure recovered from one table region.
type parsedTable struct {
	Rows []RowDescriptor

	// HeaderHint reports whether any row carried th cells. Header selection
	// still takes the first non-title row regardless; the hint is exposed
	// for callers that want a stronger heuristic.
	HeaderHint bool
}

// tableBlock is one candidate <table>…</table> region inside a document.
type tableBlock struct {
	start int // byte offset of the opening marker
	end   int // byte offset just past the closing marker
	raw   string

	// nested marks regions containing an inner table start marker. Nested
	// tables cannot be represented as a flat grid and pass through intact.
	nested bool
}
