package boxdraw

import (
	"bytes"
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"
)

// stylesheet is emitted verbatim inside the document's <style> block.
const stylesheet = `line, path { stroke: black; stroke-width: 2; stroke-opacity: 1;
             fill-opacity: 1; stroke-linecap: round;
             stroke-linejoin: miter; }
circle     { stroke: black; stroke-width: 2; stroke-opacity: 1;
             fill-opacity: 1; stroke-linecap: round;
             stroke-linejoin: miter; fill: white; }
circle.solid { fill: black; }
circle.open  { fill: white; }
tspan.head   { fill: none; stroke: none; }`

// Emit converts a flattened, optimized primitive sequence into a
// complete SVG document sized from the grid's dimensions and settings.
//
// ajstarks/svgo's typed API (Line, Circle, Text, ...) takes integer
// pixel coordinates, which would round away the fractional canonical
// points that keep adjacent cells' primitives meeting exactly. Emit
// uses svgo only for the document skeleton — Start/End/Def/DefEnd/
// Marker/MarkerEnd/Style, which are legitimately integer-valued — and
// writes every geometry node by hand through svgo's embedded
// io.Writer, formatting coordinates at full float64 precision.
func Emit(prims []Primitive, grid *Grid, settings Settings) string {
	var buf bytes.Buffer
	canvas := svg.New(&buf)

	width := int(settings.TextWidth * float64(grid.Columns()+4))
	height := int(settings.TextHeight * float64(grid.Rows()+2))

	canvas.Start(width, height, `font-size="14" font-family="arial"`)

	canvas.Def()
	canvas.Marker("triangle", 15, 10, 10, 10, `viewBox="0 0 50 20" orient="auto"`)
	fmt.Fprint(&buf, `<path d="M 0 0 L 30 10 L 0 20 z"/>`)
	canvas.MarkerEnd()
	canvas.DefEnd()

	canvas.Style("text/css", stylesheet)

	for _, p := range prims {
		emitPrimitive(&buf, p, settings)
	}

	canvas.End()
	return buf.String()
}

func emitPrimitive(w io.Writer, p Primitive, settings Settings) {
	switch p.Kind {
	case KindLine:
		emitLine(w, p)
	case KindArc:
		emitArc(w, p)
	case KindCircle:
		emitCircle(w, p)
	case KindText:
		emitText(w, p, settings)
	case KindPath:
		emitPath(w, p)
	}
}

func emitLine(w io.Writer, p Primitive) {
	attrs := ""
	if p.Stroke == StrokeDashed {
		attrs += ` stroke-dasharray="3 3" fill="none"`
	}
	switch p.Feature {
	case FeatureArrowEnd:
		attrs += ` marker-end="url(#triangle)"`
	case FeatureCircleStart:
		attrs += ` marker-start="url(#circle)"`
	}
	fmt.Fprintf(w, "<line x1=\"%s\" y1=\"%s\" x2=\"%s\" y2=\"%s\"%s/>\n",
		fnum(p.Start.X), fnum(p.Start.Y), fnum(p.End.X), fnum(p.End.Y), attrs)
}

func emitArc(w io.Writer, p Primitive) {
	sweep := 0
	if p.SweepFlag {
		sweep = 1
	}
	d := fmt.Sprintf("M %s %s A %s %s 0 0 %d %s %s",
		fnum(p.Start.X), fnum(p.Start.Y), fnum(p.Radius), fnum(p.Radius), sweep,
		fnum(p.End.X), fnum(p.End.Y))
	fmt.Fprintf(w, "<path d=\"%s\" fill=\"none\"/>\n", d)
}

func emitCircle(w io.Writer, p Primitive) {
	class := "solid"
	if p.CircleOpen {
		class = "open"
	}
	fmt.Fprintf(w, "<circle class=\"%s\" cx=\"%s\" cy=\"%s\" r=\"%s\"/>\n",
		class, fnum(p.Center.X), fnum(p.Center.Y), fnum(p.Radius))
}

func emitText(w io.Writer, p Primitive, settings Settings) {
	x := float64(p.Loc.X)*settings.TextWidth + settings.TextWidth/4
	y := float64(p.Loc.Y)*settings.TextHeight + settings.TextHeight*3/4
	fmt.Fprintf(w, "<text x=\"%s\" y=\"%s\">%s</text>\n", fnum(x), fnum(y), p.Text)
}

func emitPath(w io.Writer, p Primitive) {
	attrs := ` fill="none"`
	if p.Stroke == StrokeDashed {
		attrs += ` stroke-dasharray="3 3"`
	}
	fmt.Fprintf(w, "<path d=\"%s\"%s/>\n", p.D, attrs)
}

// fnum formats a coordinate at minimal precision: integral values print
// without a decimal point, matching the hand-written SVGs in the
// concrete scenarios this emitter is checked against.
func fnum(f float64) string {
	return fmt.Sprintf("%g", f)
}
