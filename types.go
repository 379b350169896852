package tablemark

// DefaultLineBreak is the marker substituted for line breaks inside cells.
// GitHub-flavoured renderers accept <br> inside pipe-table cells; a literal
// newline would terminate the row.
const DefaultLineBreak = "<br>"

// Grid is the rectangular, span-resolved representation of one table.
// Every row has the same cell count once BuildGrid has run.
type Grid [][]string

// Width returns the number of columns, or zero for an empty grid.
func (g Grid) Width() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// Summary reports what the batch driver did with one document.
type Summary struct {
	// RegionsFound is the number of table regions located in the document.
	RegionsFound int

	// RegionsConverted is the number of regions rewritten as pipe tables.
	// Empty tables count here too: they render as nothing and are removed,
	// which is deliberate, documented behaviour.
	RegionsConverted int

	// RegionsSkipped is the number of regions left byte-for-byte intact
	// because their markup could not be resolved into a grid.
	RegionsSkipped int
}

// Config controls document rewriting behavior.
type Config struct {
	// LineBreak replaces newlines inside cell content (default: "<br>")
	LineBreak string

	// EnableLogging logs a per-document conversion summary (default: false)
	EnableLogging bool
}

// DefaultConfig returns the default converter configuration.
func DefaultConfig() Config {
	return Config{
		LineBreak: DefaultLineBreak,
	}
}
