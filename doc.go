// Package boxdraw converts ASCII and Unicode box-drawing diagrams into SVG.
//
// Given multiline text where characters such as -, |, +, /, \, ., ', `, (,
// ), *, o, <, >, ^, v, :, =, and _ form schematic line drawings, boxdraw
// recognizes the drawing intent of every character cell from its 3x3
// neighborhood and emits an SVG document of lines, arcs, circles, and text
// positioned at geometric coordinates derived from the character grid.
//
// # Pipeline
//
// Conversion runs as five stages, leaf to root:
//
//  1. Grid: split the input into rows of grapheme cells, where a cell's
//     display width (1 or 2 columns) comes from East Asian Width and
//     zero-width combining marks fold into the preceding cell.
//  2. Classification: per-cell predicates (vertical bar, slant, corner,
//     arrowhead, ...) used as guards by the recognizer.
//  3. Recognition: an ordered table of (guard, primitives) rules evaluated
//     in reverse so later, more specific rules override earlier ones.
//  4. Optimization: fuses collinear abutting lines, adjacent text runs, and
//     (when enabled) chains of connected lines/arcs into single SVG paths.
//  5. Emission: maps primitives to SVG nodes inside a sized root <svg>
//     element with a fixed <defs> arrowhead marker and stylesheet.
//
// # Quick Start
//
//	import "github.com/asciitosvg/boxdraw"
//
//	svg := boxdraw.ToSVG("---->")
//
//	// Custom cell size, optimization left on:
//	svg = boxdraw.ToSVGWithSize(diagram, 10, 18)
//
//	// Settings carrier for finer control:
//	settings := boxdraw.CompactSettings().WithSize(10, 18)
//	svg = boxdraw.Render(diagram, settings)
//
// The package is pure: every exported function is a total, side-effect-free
// function of its arguments and is safe to call concurrently.
package boxdraw
