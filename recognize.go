package boxdraw

import "runtime"

// ruleContext bundles a grid location with its 8 immediate neighbors and
// the two second-order neighbors ("left of left", "right of right") that a
// handful of dashed-run rules need, so rule guards read as flat boolean
// expressions instead of re-deriving Locs on every call.
type ruleContext struct {
	grid *Grid

	this                                       Loc
	top, bottom, left, right                   Loc
	topLeft, topRight, bottomLeft, bottomRight Loc
	leftLeft, rightRight                       Loc
}

func newRuleContext(grid *Grid, loc Loc) ruleContext {
	return ruleContext{
		grid:         grid,
		this:         loc,
		top:          loc.Top(),
		bottom:       loc.Bottom(),
		left:         loc.Left(),
		right:        loc.Right(),
		topLeft:      loc.TopLeft(),
		topRight:     loc.TopRight(),
		bottomLeft:   loc.BottomLeft(),
		bottomRight:  loc.BottomRight(),
		leftLeft:     loc.LeftLeft(),
		rightRight:   loc.RightRight(),
	}
}

// is reports whether the cell at loc satisfies pred.
func (c ruleContext) is(loc Loc, pred func(string) bool) bool {
	return c.grid.IsChar(loc, pred)
}

// connectsMajor4 reports whether any of the four orthogonal neighbors
// connects with a straight stroke.
func (c ruleContext) connectsMajor4() bool {
	return c.is(c.left, isHorizontal) || c.is(c.right, isHorizontal) ||
		c.is(c.top, isVertical) || c.is(c.bottom, isVertical)
}

// connectsAux4 reports whether any of the four diagonal neighbors connects
// with a slant.
func (c ruleContext) connectsAux4() bool {
	return c.is(c.topLeft, isSlantLeft) || c.is(c.topRight, isSlantRight) ||
		c.is(c.bottomLeft, isSlantRight) || c.is(c.bottomRight, isSlantLeft)
}

func (c ruleContext) connects() bool {
	return c.connectsMajor4() || c.connectsAux4()
}

// rule is one entry in the recognizer's ordered pattern table: a guard
// over the cell's neighborhood, and a builder that turns the cell's
// canonical point lattice into the primitives that guard wins.
type rule struct {
	guard func(c ruleContext) bool
	build func(p cellPoints) []Primitive
}

// recognizeCell evaluates the rule table against one cell in reverse
// order — the last matching rule (highest priority) wins, so later,
// more specific rules override earlier, looser ones. If nothing matches,
// the cell's literal character falls back to a Text primitive, except a
// plain space, which only appears when flanked by alphanumeric neighbors
// (preserving word spacing inside labels).
func recognizeCell(grid *Grid, loc Loc, settings Settings) []Primitive {
	c := newRuleContext(grid, loc)

	for i := len(patternRules) - 1; i >= 0; i-- {
		r := patternRules[i]
		if r.guard(c) {
			p := newCellPoints(loc, settings)
			return r.build(p)
		}
	}

	cell, ok := grid.Get(loc)
	if !ok {
		return nil
	}
	if cell.String == " " {
		if c.is(c.left, isAlphanumeric) && c.is(c.right, isAlphanumeric) {
			return []Primitive{Text(loc, escapeChar(cell.String))}
		}
		return nil
	}
	return []Primitive{Text(loc, escapeChar(cell.String))}
}

// escapeChar escapes the five characters that are unsafe inside SVG text
// content; every other character passes through unchanged.
func escapeChar(s string) string {
	switch s {
	case `"`:
		return "&quot;"
	case "'":
		return "&apos;"
	case "<":
		return "&lt;"
	case ">":
		return "&gt;"
	case "&":
		return "&amp;"
	default:
		return s
	}
}

// cellGroup is one cell's recognized primitives, tagged with the Loc they
// came from. The optimizer consumes cellGroups in traversal order.
type cellGroup struct {
	Loc        Loc
	Primitives []Primitive
}

// Recognize runs the pattern recognizer over every cell of grid in
// row-major order, spreading the rows over a pool of up to GOMAXPROCS
// worker goroutines since rows are
// independent (spec: "the implementation may parallelize per-row
// recognition"). The returned slice is in deterministic row-major order
// regardless of how the work was scheduled.
func Recognize(grid *Grid, settings Settings) []cellGroup {
	rows := grid.Rows()
	perRow := make([][]cellGroup, rows)

	type job struct{ row int }
	jobs := make(chan job, rows)
	results := make(chan int, rows)

	workers := numWorkers(rows)
	for w := 0; w < workers; w++ {
		go func() {
			for j := range jobs {
				perRow[j.row] = recognizeRow(grid, j.row, settings)
				results <- j.row
			}
		}()
	}
	for row := 0; row < rows; row++ {
		jobs <- job{row: row}
	}
	close(jobs)
	for i := 0; i < rows; i++ {
		<-results
	}

	all := make([]cellGroup, 0, rows)
	for _, row := range perRow {
		all = append(all, row...)
	}
	return all
}

func recognizeRow(grid *Grid, row int, settings Settings) []cellGroup {
	cells := grid.rows[row]
	groups := make([]cellGroup, 0, len(cells))
	col := 0
	for _, cell := range cells {
		loc := NewLoc(col, row)
		prims := recognizeCell(grid, loc, settings)
		if len(prims) > 0 {
			groups = append(groups, cellGroup{Loc: loc, Primitives: prims})
		}
		col += cell.Width
	}
	return groups
}

func numWorkers(rows int) int {
	if rows <= 1 {
		return 1
	}
	n := runtime.GOMAXPROCS(0)
	if n > rows {
		n = rows
	}
	if n < 1 {
		n = 1
	}
	return n
}
