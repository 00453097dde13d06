package boxdraw

import "testing"

func TestCollinear(t *testing.T) {
	tests := []struct {
		name    string
		a, b, c Point
		want    bool
	}{
		{name: "horizontal run", a: NewPoint(0, 8), b: NewPoint(8, 8), c: NewPoint(16, 8), want: true},
		{name: "vertical run", a: NewPoint(4, 0), b: NewPoint(4, 16), c: NewPoint(4, 32), want: true},
		{name: "bend", a: NewPoint(0, 8), b: NewPoint(8, 8), c: NewPoint(8, 16), want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := collinear(tt.a, tt.b, tt.c); got != tt.want {
				t.Errorf("collinear(%v,%v,%v) = %v, want %v", tt.a, tt.b, tt.c, got, tt.want)
			}
		})
	}
}

func TestFuseLinesMergesCollinearRun(t *testing.T) {
	l1 := SolidLine(NewPoint(0, 8), NewPoint(8, 8))
	l2 := SolidLine(NewPoint(8, 8), NewPoint(16, 8))

	out := fuseLines([]Primitive{l1, l2})
	if len(out) != 1 {
		t.Fatalf("fuseLines = %+v, want 1 fused line", out)
	}
	want := SolidLine(NewPoint(0, 8), NewPoint(16, 8))
	if out[0] != want {
		t.Errorf("fused = %+v, want %+v", out[0], want)
	}
}

func TestFuseLinesStopsAtArrowhead(t *testing.T) {
	l1 := Line(NewPoint(0, 8), NewPoint(8, 8), StrokeSolid, FeatureArrowEnd)
	l2 := SolidLine(NewPoint(8, 8), NewPoint(16, 8))

	out := fuseLines([]Primitive{l1, l2})
	if len(out) != 2 {
		t.Fatalf("fuseLines with mid-chain arrowhead = %+v, want no fusion", out)
	}
}

func TestFuseLinesRequiresMatchingStroke(t *testing.T) {
	l1 := SolidLine(NewPoint(0, 8), NewPoint(8, 8))
	l2 := Line(NewPoint(8, 8), NewPoint(16, 8), StrokeDashed, FeatureNone)

	out := fuseLines([]Primitive{l1, l2})
	if len(out) != 2 {
		t.Fatalf("fuseLines solid+dashed = %+v, want no fusion", out)
	}
}

func TestFuseTextMergesAdjacentRun(t *testing.T) {
	prims := []Primitive{
		Text(NewLoc(0, 0), "H"),
		Text(NewLoc(1, 0), "i"),
	}
	out := fuseText(prims)
	if len(out) != 1 || out[0].Text != "Hi" {
		t.Fatalf("fuseText = %+v, want one Text \"Hi\"", out)
	}
}

func TestFuseTextDoesNotMergeAcrossGap(t *testing.T) {
	prims := []Primitive{
		Text(NewLoc(0, 0), "H"),
		Text(NewLoc(2, 0), "i"),
	}
	out := fuseText(prims)
	if len(out) != 2 {
		t.Fatalf("fuseText across gap = %+v, want no fusion", out)
	}
}

func TestFuseChainsBuildsSinglePath(t *testing.T) {
	prims := []Primitive{
		SolidLine(NewPoint(4, 12), NewPoint(4, 32)),
		Arc(NewPoint(4, 32), NewPoint(12, 40), 4, false),
	}
	out := fuseChains(prims)
	if len(out) != 1 || out[0].Kind != KindPath {
		t.Fatalf("fuseChains = %+v, want one Path", out)
	}
	want := "M4,12L4,32A4,4 0 0,0 12,40"
	if out[0].D != want {
		t.Errorf("D = %q, want %q", out[0].D, want)
	}
}

func TestFuseChainsLeavesIsolatedSegment(t *testing.T) {
	prims := []Primitive{SolidLine(NewPoint(0, 8), NewPoint(8, 8))}
	out := fuseChains(prims)
	if len(out) != 1 || out[0].Kind != KindLine {
		t.Fatalf("fuseChains single segment = %+v, want unchanged Line", out)
	}
}

func TestFuseChainsExcludesDashedLines(t *testing.T) {
	prims := []Primitive{
		SolidLine(NewPoint(4, 12), NewPoint(4, 32)),
		Line(NewPoint(4, 32), NewPoint(4, 48), StrokeDashed, FeatureNone),
	}
	out := fuseChains(prims)
	if len(out) != 2 {
		t.Fatalf("fuseChains with a dashed segment = %+v, want the dashed line left unfused", out)
	}
	for _, p := range out {
		if p.Kind == KindPath {
			t.Fatalf("fuseChains absorbed a dashed line into a solid Path: %+v", out)
		}
	}
}

func TestOptimizeIdempotent(t *testing.T) {
	grid := NewGrid(".-.\n| |\n'-'")
	groups := Recognize(grid, DefaultSettings())

	once := Optimize(groups, DefaultSettings())
	twice := Optimize([]cellGroup{{Loc: NewLoc(0, 0), Primitives: once}}, DefaultSettings())

	if len(once) != len(twice) {
		t.Fatalf("re-optimizing changed primitive count: %d vs %d", len(once), len(twice))
	}
}

func TestOptimizeDisabledKeepsRawPrimitives(t *testing.T) {
	grid := NewGrid("---")
	groups := Recognize(grid, NoOptimizationSettings())
	out := Optimize(groups, NoOptimizationSettings())

	for _, p := range out {
		if p.Kind == KindPath {
			t.Fatalf("NoOptimizationSettings produced a Path primitive: %+v", p)
		}
	}
	if len(out) != 3 {
		t.Fatalf("unoptimized output = %d primitives, want 3 (one per cell)", len(out))
	}
}
