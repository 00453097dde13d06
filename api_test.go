package boxdraw

import (
	"strings"
	"testing"
)

func TestToSVGHorizontalLine(t *testing.T) {
	out := ToSVG("-")
	if !strings.Contains(out, `width="40"`) || !strings.Contains(out, `height="48"`) {
		t.Fatalf("unexpected canvas size:\n%s", out)
	}
	if !strings.Contains(out, `<line x1="0" y1="8" x2="8" y2="8"/>`) {
		t.Fatalf("missing expected line:\n%s", out)
	}
}

func TestToSVGVerticalLine(t *testing.T) {
	out := ToSVG("|")
	if !strings.Contains(out, `<line x1="4" y1="0" x2="4" y2="16"/>`) {
		t.Fatalf("missing expected line:\n%s", out)
	}
}

func TestToSVGArrow(t *testing.T) {
	out := ToSVG("------->")
	if !strings.Contains(out, `x1="0" y1="8" x2="60" y2="8"`) || !strings.Contains(out, `marker-end="url(#triangle)"`) {
		t.Fatalf("arrow line not fused/marked as expected:\n%s", out)
	}
}

func TestToSVGCirclesJoinedByLine(t *testing.T) {
	out := ToSVG("*---*")
	if strings.Count(out, `class="solid"`) != 2 {
		t.Fatalf("want two filled circles:\n%s", out)
	}
	if !strings.Contains(out, `cx="4" cy="8" r="4"`) || !strings.Contains(out, `cx="36" cy="8" r="4"`) {
		t.Fatalf("circles not at expected centers:\n%s", out)
	}
}

func TestToSVGRoundedBox(t *testing.T) {
	out := ToSVG(".-.\n| |\n'-'")
	if !strings.Contains(out, "<path") {
		t.Fatalf("compact rounded box should fuse into a path:\n%s", out)
	}
}

func TestToSVGTextEscaping(t *testing.T) {
	out := ToSVGWithSizeNoOptimization("<&>", 8, 16)
	if !strings.Contains(out, "&lt;") || !strings.Contains(out, "&amp;") || !strings.Contains(out, "&gt;") {
		t.Fatalf("escape round trip failed:\n%s", out)
	}
}

func TestRenderDeterministic(t *testing.T) {
	diagram := ".---.\n| Hi |\n'---'"
	a := Render(diagram, CompactSettings())
	b := Render(diagram, CompactSettings())
	if a != b {
		t.Fatalf("Render is not deterministic across calls")
	}
}
