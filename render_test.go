package tablemark_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ivanvanderbyl/tablemark"
)

func TestRenderPipeTable_HeaderAndBody(t *testing.T) {
	body := tablemark.Grid{
		{"A", "B"},
		{"C", "B"},
	}

	got := tablemark.RenderPipeTable(nil, body)
	assert.Equal(t, "| A | B |\n| --- | --- |\n| C | B |\n", got)
}

func TestRenderPipeTable_TitlesAboveTable(t *testing.T) {
	body := tablemark.Grid{
		{"name", "value"},
		{"a", "b"},
	}

	got := tablemark.RenderPipeTable([]string{"Settings"}, body)
	assert.Equal(t, "**Settings**\n\n| name | value |\n| --- | --- |\n| a | b |\n", got)
}

func TestRenderPipeTable_TitlesOnly(t *testing.T) {
	got := tablemark.RenderPipeTable([]string{"One", "Two"}, nil)
	assert.Equal(t, "**One**\n\n**Two**\n", got)
	assert.NotContains(t, got, "|")
}

func TestRenderPipeTable_HeaderOnlyStillValid(t *testing.T) {
	// A table whose only body row is the header still emits header plus
	// separator: syntactically valid with zero data rows.
	got := tablemark.RenderPipeTable(nil, tablemark.Grid{{"a", "b", "c"}})
	assert.Equal(t, "| a | b | c |\n| --- | --- | --- |\n", got)
}

func TestRenderPipeTable_Empty(t *testing.T) {
	assert.Equal(t, "", tablemark.RenderPipeTable(nil, nil))
}

func TestParsePipeTable_RoundTrip(t *testing.T) {
	body := tablemark.Grid{
		{"Name", "Age"},
		{"Alice", "30"},
		{"Bob", "41"},
	}

	rendered := tablemark.RenderPipeTable([]string{"People"}, body)
	reparsed := tablemark.ParsePipeTable(rendered)
	assert.Equal(t, body, reparsed)
}

func TestParsePipeTable_UnescapesPipes(t *testing.T) {
	body := tablemark.Grid{
		{"expr", "desc"},
		{`a\|b`, "or"},
	}

	rendered := tablemark.RenderPipeTable(nil, body)
	reparsed := tablemark.ParsePipeTable(rendered)
	require.Len(t, reparsed, 2)
	assert.Equal(t, "a|b", reparsed[1][0])
}

func TestParsePipeTable_IgnoresNonPipeLines(t *testing.T) {
	text := "**Title**\n\nprose\n| h1 | h2 |\n| --- | --- |\n| v1 | v2 |\n"

	grid := tablemark.ParsePipeTable(text)
	assert.Equal(t, tablemark.Grid{{"h1", "h2"}, {"v1", "v2"}}, grid)
}
