package tablemark

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cell(text string) CellDescriptor {
	return CellDescriptor{Text: text, RowSpan: 1, ColSpan: 1}
}

func TestBuildGrid_Rectangularity(t *testing.T) {
	rows := []RowDescriptor{
		{Cells: []CellDescriptor{cell("a")}},
		{Cells: []CellDescriptor{cell("b"), cell("c"), cell("d")}},
		{Cells: []CellDescriptor{cell("e"), cell("f")}},
	}

	grid := BuildGrid(rows)
	require.Len(t, grid, 3)
	for _, row := range grid {
		assert.Len(t, row, 3)
	}
	assert.Equal(t, Grid{
		{"a", "", ""},
		{"b", "c", "d"},
		{"e", "f", ""},
	}, grid)
}

func TestBuildGrid_ColSpanWeightedWidth(t *testing.T) {
	rows := []RowDescriptor{
		{Cells: []CellDescriptor{
			{Text: "w", RowSpan: 1, ColSpan: 2},
			{Text: "x", RowSpan: 1, ColSpan: 2},
		}},
		{Cells: []CellDescriptor{cell("y")}},
	}

	grid := BuildGrid(rows)
	require.Len(t, grid, 2)
	assert.Equal(t, 4, grid.Width())
	assert.Equal(t, []string{"w", "w", "x", "x"}, grid[0])
	assert.Equal(t, []string{"y", "", "", ""}, grid[1])
}

func TestBuildGrid_RowSpanColSpanDuplication(t *testing.T) {
	// A rowspan=3 colspan=2 cell starting at row 0, column 1 must appear
	// with identical text at all six covered coordinates.
	rows := []RowDescriptor{
		{Cells: []CellDescriptor{cell("A"), {Text: "B", RowSpan: 3, ColSpan: 2}}},
		{Cells: []CellDescriptor{cell("C")}},
		{Cells: []CellDescriptor{cell("D")}},
	}

	grid := BuildGrid(rows)
	require.Len(t, grid, 3)
	for _, pos := range [][2]int{{0, 1}, {0, 2}, {1, 1}, {1, 2}, {2, 1}, {2, 2}} {
		assert.Equal(t, "B", grid[pos[0]][pos[1]], "position (%d,%d)", pos[0], pos[1])
	}
	assert.Equal(t, "A", grid[0][0])
	assert.Equal(t, "C", grid[1][0])
	assert.Equal(t, "D", grid[2][0])
}

func TestBuildGrid_LeadingCarryBeforeGenuineCell(t *testing.T) {
	// A carry in column 0 must not displace the next row's genuine cell:
	// the carry fills column 0, the cell lands in column 1.
	rows := []RowDescriptor{
		{Cells: []CellDescriptor{{Text: "span", RowSpan: 2, ColSpan: 1}, cell("top")}},
		{Cells: []CellDescriptor{cell("next")}},
	}

	grid := BuildGrid(rows)
	require.Len(t, grid, 2)
	assert.Equal(t, []string{"span", "top"}, grid[0])
	assert.Equal(t, []string{"span", "next"}, grid[1])
}

func TestBuildGrid_TrailingCarryFlushed(t *testing.T) {
	rows := []RowDescriptor{
		{Cells: []CellDescriptor{cell("a"), {Text: "tail", RowSpan: 2, ColSpan: 1}}},
		{Cells: []CellDescriptor{cell("b")}},
	}

	grid := BuildGrid(rows)
	require.Len(t, grid, 2)
	assert.Equal(t, []string{"b", "tail"}, grid[1])
}

func TestBuildGrid_DegenerateSpansClampedToOne(t *testing.T) {
	rows := []RowDescriptor{
		{Cells: []CellDescriptor{
			{Text: "a", RowSpan: 0, ColSpan: -3},
			{Text: "b"},
		}},
		{Cells: []CellDescriptor{cell("c"), cell("d")}},
	}

	grid := BuildGrid(rows)
	require.Len(t, grid, 2)
	assert.Equal(t, []string{"a", "b"}, grid[0])
	assert.Equal(t, []string{"c", "d"}, grid[1])
}

func TestBuildGrid_NormalizesCellText(t *testing.T) {
	rows := []RowDescriptor{
		{Cells: []CellDescriptor{cell("first\nsecond"), cell("p|q")}},
	}

	grid := BuildGrid(rows)
	require.Len(t, grid, 1)
	assert.Equal(t, []string{"first<br>second", `p\|q`}, grid[0])
}

func TestBuildGrid_Empty(t *testing.T) {
	assert.Nil(t, BuildGrid(nil))
	assert.Equal(t, 0, Grid(nil).Width())
}

func TestBuildGrid_CarryOnlyRow(t *testing.T) {
	// A tr with no genuine cells still consumes outstanding carries.
	rows := []RowDescriptor{
		{Cells: []CellDescriptor{{Text: "v", RowSpan: 2, ColSpan: 1}}},
		{},
	}

	grid := BuildGrid(rows)
	require.Len(t, grid, 2)
	assert.Equal(t, []string{"v"}, grid[1])
}
