package boxdraw

// Loc is an integer display-column/row coordinate into a Grid. Both axes are
// signed because neighbor queries near the grid's edges yield locations
// outside [0, columns) x [0, rows).
type Loc struct {
	X, Y int
}

// NewLoc returns the Loc at the given column and row.
func NewLoc(x, y int) Loc {
	return Loc{X: x, Y: y}
}

// Top returns the neighbor directly above.
func (l Loc) Top() Loc { return Loc{l.X, l.Y - 1} }

// Bottom returns the neighbor directly below.
func (l Loc) Bottom() Loc { return Loc{l.X, l.Y + 1} }

// Left returns the neighbor directly to the left.
func (l Loc) Left() Loc { return Loc{l.X - 1, l.Y} }

// Right returns the neighbor directly to the right.
func (l Loc) Right() Loc { return Loc{l.X + 1, l.Y} }

// TopLeft returns the diagonal neighbor above and to the left.
func (l Loc) TopLeft() Loc { return Loc{l.X - 1, l.Y - 1} }

// TopRight returns the diagonal neighbor above and to the right.
func (l Loc) TopRight() Loc { return Loc{l.X + 1, l.Y - 1} }

// BottomLeft returns the diagonal neighbor below and to the left.
func (l Loc) BottomLeft() Loc { return Loc{l.X - 1, l.Y + 1} }

// BottomRight returns the diagonal neighbor below and to the right.
func (l Loc) BottomRight() Loc { return Loc{l.X + 1, l.Y + 1} }

// LeftLeft returns the second-order neighbor two cells to the left.
func (l Loc) LeftLeft() Loc { return Loc{l.X - 2, l.Y} }

// RightRight returns the second-order neighbor two cells to the right.
func (l Loc) RightRight() Loc { return Loc{l.X + 2, l.Y} }

// Neighbors returns the 8 immediate neighbors in no particular order.
func (l Loc) Neighbors() []Loc {
	return []Loc{
		l.Top(), l.Bottom(), l.Left(), l.Right(),
		l.TopLeft(), l.TopRight(), l.BottomLeft(), l.BottomRight(),
	}
}

// Point is a floating-point pixel coordinate in the rendered SVG.
type Point struct {
	X, Y float64
}

// NewPoint returns the Point at (x, y).
func NewPoint(x, y float64) Point {
	return Point{X: x, Y: y}
}
