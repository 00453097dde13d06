package boxdraw

import (
	"strings"

	"github.com/unilibs/uniwidth"
)

// GraphemeCell is a single grapheme (a base codepoint plus any zero-width
// combining marks folded onto it) occupying one or two display columns.
type GraphemeCell struct {
	// String is the cell's text content: the base rune plus any combining
	// marks that were folded onto it.
	String string

	// Width is the cell's display width in columns: 1 or 2.
	Width int
}

// Grid is a row-major collection of GraphemeCells built from raw text. It is
// the input to the cell classifier and pattern recognizer.
type Grid struct {
	rows      [][]GraphemeCell
	rowWidths []int
	columns   int
}

// Rows returns the number of rows in the grid.
func (g *Grid) Rows() int { return len(g.rows) }

// Columns returns the grid's width in display columns: the widest row.
func (g *Grid) Columns() int { return g.columns }

// NewGrid builds a Grid from multiline text.
//
// Each line is walked rune by rune. A rune with display width 1 or 2 opens
// a new GraphemeCell. A rune with display width 0 (a combining mark) folds
// into the preceding cell's string without changing that cell's width; a
// leading combining mark with no preceding cell in the row is dropped,
// matching the "malformed input is silently skipped" contract.
func NewGrid(text string) *Grid {
	lines := splitLines(text)
	rows := make([][]GraphemeCell, 0, len(lines))
	rowWidths := make([]int, 0, len(lines))
	columns := 0

	for _, line := range lines {
		cells := make([]GraphemeCell, 0, len(line))
		for _, r := range line {
			w := uniwidth.RuneWidth(r)
			switch {
			case w == 0:
				if n := len(cells); n > 0 {
					cells[n-1].String += string(r)
				}
			case w > 0:
				cells = append(cells, GraphemeCell{String: string(r), Width: w})
			default:
				// Undefined width: dropped silently (spec'd MalformedInput
				// behavior), which in practice never fires since uniwidth
				// resolves every rune to 0, 1, or 2.
			}
		}
		rows = append(rows, cells)

		width := 0
		for _, c := range cells {
			width += c.Width
		}
		rowWidths = append(rowWidths, width)
		if width > columns {
			columns = width
		}
	}

	return &Grid{rows: rows, rowWidths: rowWidths, columns: columns}
}

// splitLines splits text on line boundaries, tolerating both "\n" and
// "\r\n" without padding ragged rows.
func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// RowWidth returns the display-column width of a row, or 0 if row is out
// of range.
func (g *Grid) RowWidth(row int) int {
	if row < 0 || row >= len(g.rowWidths) {
		return 0
	}
	return g.rowWidths[row]
}

// Get returns the cell whose column span covers (x, y), if any. Lookup is
// O(row length) rather than O(1): variable-width cells preclude direct
// indexing into the row slice.
func (g *Grid) Get(loc Loc) (GraphemeCell, bool) {
	if loc.Y < 0 || loc.Y >= len(g.rows) {
		return GraphemeCell{}, false
	}
	if loc.X < 0 {
		return GraphemeCell{}, false
	}
	col := 0
	for _, cell := range g.rows[loc.Y] {
		if loc.X >= col && loc.X < col+cell.Width {
			return cell, true
		}
		col += cell.Width
	}
	return GraphemeCell{}, false
}

// IsChar reports whether the cell at loc satisfies the given predicate.
// Predicates are total over the absence of a cell: a missing cell tests
// false for every predicate.
func (g *Grid) IsChar(loc Loc, pred func(string) bool) bool {
	cell, ok := g.Get(loc)
	if !ok {
		return false
	}
	return pred(cell.String)
}
