package tablemark

import (
	"log"
	"os"

	"github.com/pkg/errors"
)

// Converter rewrites HTML table regions inside text documents as pipe tables.
type Converter struct {
	config Config
}

// NewConverter creates a converter with the default configuration.
func NewConverter() *Converter {
	return NewConverterWithConfig(DefaultConfig())
}

// NewConverterWithConfig creates a converter with a custom configuration.
func NewConverterWithConfig(config Config) *Converter {
	if config.LineBreak == "" {
		config.LineBreak = DefaultLineBreak
	}
	return &Converter{config: config}
}

// ConvertTable converts a single table region's markup to pipe-table text.
func (c *Converter) ConvertTable(raw string) (string, error) {
	parsed, err := parseTableRegion(raw)
	if err != nil {
		// Empty tables render as nothing; only structural failures surface.
		if errors.Is(err, ErrEmptyTable) {
			return "", nil
		}
		return "", errors.Wrap(err, "failed to parse table region")
	}

	grid := buildGrid(parsed.Rows, c.config.LineBreak)
	titles, body := ExtractTitles(grid)
	return RenderPipeTable(titles, body), nil
}

// ConvertDocument rewrites every table region in doc and reports what it did.
func (c *Converter) ConvertDocument(doc string) (string, Summary) {
	return rewriteDocument(doc, c.config)
}

// RewriteFile converts a file's table regions in place. The file is only
// written when its content actually changes.
func (c *Converter) RewriteFile(path string) (Summary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Summary{}, errors.Wrap(err, "failed to read document")
	}

	out, summary := c.ConvertDocument(string(data))

	if c.config.EnableLogging {
		log.Printf("%s: %d region(s), %d converted, %d skipped",
			path, summary.RegionsFound, summary.RegionsConverted, summary.RegionsSkipped)
	}

	if summary.RegionsFound == 0 || out == string(data) {
		return summary, nil
	}
	if err := os.WriteFile(path, []byte(out), 0o644); err != nil {
		return summary, errors.Wrap(err, "failed to write document")
	}
	return summary, nil
}
