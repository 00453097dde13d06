package boxdraw

// ToSVG converts text to an SVG document using DefaultSettings: 8x16
// cells, line/text fusion and chain fusion both enabled.
func ToSVG(text string) string {
	return Render(text, DefaultSettings())
}

// ToSVGWithSize converts text to an SVG document using the given cell
// size, with optimization and chain fusion left on.
func ToSVGWithSize(text string, textWidth, textHeight float64) string {
	return Render(text, DefaultSettings().WithSize(textWidth, textHeight))
}

// ToSVGWithSizeNoOptimization converts text to an SVG document using
// the given cell size, with both optimization and chain fusion off: the
// emitted nodes are exactly the recognizer's raw output.
func ToSVGWithSizeNoOptimization(text string, textWidth, textHeight float64) string {
	return Render(text, NoOptimizationSettings().WithSize(textWidth, textHeight))
}

// Render runs the full pipeline — grid, recognition, optimization,
// emission — and returns the resulting SVG document as a string.
func Render(text string, settings Settings) string {
	grid := NewGrid(text)
	groups := Recognize(grid, settings)
	prims := Optimize(groups, settings)
	return Emit(prims, grid, settings)
}
