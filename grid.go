package tablemark

// spanCarry tracks a rowspan still owed to rows below the cell that declared
// it. Carries live in a per-column map local to one buildGrid call.
type spanCarry struct {
	remaining int
	text      string
}

// BuildGrid expands row and column spans into a rectangular grid. A spanned
// value is duplicated into every logical cell it covers; no merge information
// survives into the output, which is a deliberate simplification of what a
// renderer would show for merged cells. Every row of the result has the same
// width: the maximum column-span-weighted width seen in the input.
func BuildGrid(rows []RowDescriptor) Grid {
	return buildGrid(rows, DefaultLineBreak)
}

func buildGrid(rows []RowDescriptor, lineBreak string) Grid {
	carries := make(map[int]*spanCarry)
	grid := make(Grid, 0, len(rows))

	for _, rd := range rows {
		row := make([]string, 0, len(rd.Cells))
		col := 0

		// Consume outstanding carries at and after the current column.
		// Interleaved with genuine cell placement so a carry never
		// displaces a genuine cell from its source column.
		fill := func() {
			for {
				carry, ok := carries[col]
				if !ok {
					return
				}
				row = append(row, carry.text)
				carry.remaining--
				if carry.remaining <= 0 {
					delete(carries, col)
				}
				col++
			}
		}

		fill()
		for _, cell := range rd.Cells {
			fill()

			text := normalizeCellText(cell.Text, lineBreak)
			colSpan := cell.ColSpan
			if colSpan < 1 {
				colSpan = 1
			}
			rowSpan := cell.RowSpan
			if rowSpan < 1 {
				rowSpan = 1
			}

			for i := 0; i < colSpan; i++ {
				row = append(row, text)
				if rowSpan > 1 {
					carries[col+i] = &spanCarry{remaining: rowSpan - 1, text: text}
				}
			}
			col += colSpan
		}
		// Trailing spanned columns to the right of the last genuine cell.
		fill()

		grid = append(grid, row)
	}

	if len(grid) == 0 {
		return nil
	}

	width := 0
	for _, row := range grid {
		if len(row) > width {
			width = len(row)
		}
	}
	for i, row := range grid {
		for len(row) < width {
			row = append(row, "")
		}
		grid[i] = row
	}
	return grid
}
