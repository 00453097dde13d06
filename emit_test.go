package boxdraw

import (
	"strings"
	"testing"
)

func TestEmitDocumentSkeleton(t *testing.T) {
	grid := NewGrid("-")
	out := Emit(nil, grid, DefaultSettings())

	for _, want := range []string{
		"<svg", "</svg>", "<defs>", "</defs>", "<marker", "<style", stylesheet,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("document missing %q:\n%s", want, out)
		}
	}
}

func TestEmitDimensionsScaleLinearly(t *testing.T) {
	grid := NewGrid("-")

	small := Emit(nil, grid, DefaultSettings())
	big := Emit(nil, grid, DefaultSettings().WithSize(16, 32))

	if !strings.Contains(small, `width="40"`) || !strings.Contains(small, `height="48"`) {
		t.Fatalf("default size dims wrong:\n%s", small)
	}
	if !strings.Contains(big, `width="80"`) || !strings.Contains(big, `height="96"`) {
		t.Fatalf("doubled size dims wrong:\n%s", big)
	}
}

func TestEmitLineAttributes(t *testing.T) {
	line := SolidLine(NewPoint(0, 8), NewPoint(8, 8))
	grid := NewGrid("-")
	out := Emit([]Primitive{line}, grid, DefaultSettings())

	if !strings.Contains(out, `<line x1="0" y1="8" x2="8" y2="8"/>`) {
		t.Fatalf("missing plain line element:\n%s", out)
	}
}

func TestEmitDashedLine(t *testing.T) {
	line := Line(NewPoint(0, 8), NewPoint(8, 8), StrokeDashed, FeatureNone)
	grid := NewGrid(":")
	out := Emit([]Primitive{line}, grid, DefaultSettings())

	if !strings.Contains(out, `stroke-dasharray="3 3"`) {
		t.Fatalf("dashed line missing stroke-dasharray:\n%s", out)
	}
}

func TestEmitArrowEndMarker(t *testing.T) {
	line := Line(NewPoint(0, 8), NewPoint(8, 8), StrokeSolid, FeatureArrowEnd)
	grid := NewGrid(">")
	out := Emit([]Primitive{line}, grid, DefaultSettings())

	if !strings.Contains(out, `marker-end="url(#triangle)"`) {
		t.Fatalf("arrow line missing marker-end:\n%s", out)
	}
}

func TestEmitCircleClass(t *testing.T) {
	grid := NewGrid("*")
	solid := Emit([]Primitive{Circle(NewPoint(4, 8), 4, false)}, grid, DefaultSettings())
	open := Emit([]Primitive{Circle(NewPoint(4, 8), 4, true)}, grid, DefaultSettings())

	if !strings.Contains(solid, `class="solid"`) {
		t.Fatalf("solid circle missing class:\n%s", solid)
	}
	if !strings.Contains(open, `class="open"`) {
		t.Fatalf("open circle missing class:\n%s", open)
	}
}

func TestEmitTextEscaped(t *testing.T) {
	grid := NewGrid("a")
	out := Emit([]Primitive{Text(NewLoc(0, 0), "&lt;&amp;&gt;")}, grid, DefaultSettings())
	if !strings.Contains(out, "<text x=\"2\" y=\"12\">&lt;&amp;&gt;</text>") {
		t.Fatalf("escaped text node wrong:\n%s", out)
	}
}

func TestEmitPathDashed(t *testing.T) {
	grid := NewGrid("=")
	out := Emit([]Primitive{Path(NewPoint(0, 8), NewPoint(8, 8), "M0,8L8,8", StrokeDashed)}, grid, DefaultSettings())
	if !strings.Contains(out, `<path d="M0,8L8,8" fill="none" stroke-dasharray="3 3"/>`) {
		t.Fatalf("dashed path wrong:\n%s", out)
	}
}
