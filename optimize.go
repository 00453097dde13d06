package boxdraw

import "fmt"

// Optimize turns recognized cellGroups into render-ready primitives.
//
// With settings.Optimize disabled, groups are flattened in row-major
// order and returned untouched — every recognized primitive is emitted
// independently. With it enabled, adjacent text runs on the same row
// fuse into single Text primitives, and collinear Line primitives that
// share an endpoint fuse into single longer lines. With
// settings.CompactPath also enabled, chains of two or more solid Line
// and Arc segments that connect end to end collapse further into a
// single Path primitive carrying one SVG "d" string; dashed lines are
// never chained.
func Optimize(groups []cellGroup, settings Settings) []Primitive {
	flat := flatten(groups)
	if !settings.Optimize {
		return flat
	}

	flat = fuseText(flat)
	flat = fuseLines(flat)

	if settings.CompactPath {
		flat = fuseChains(flat)
	}
	return flat
}

func flatten(groups []cellGroup) []Primitive {
	out := make([]Primitive, 0, len(groups))
	for _, g := range groups {
		out = append(out, g.Primitives...)
	}
	return out
}

// fuseText merges consecutive Text primitives on the same row into a
// single Text primitive anchored at the first one's Loc. Column
// adjacency is tracked by counting fused cells rather than measuring
// string length, since escaped entities like "&amp;" occupy one display
// column but several bytes.
func fuseText(prims []Primitive) []Primitive {
	out := make([]Primitive, 0, len(prims))
	for i := 0; i < len(prims); i++ {
		p := prims[i]
		if p.Kind != KindText {
			out = append(out, p)
			continue
		}

		run := p
		count := 1
		j := i + 1
		for j < len(prims) && prims[j].Kind == KindText &&
			prims[j].Loc.Y == p.Loc.Y && prims[j].Loc.X == p.Loc.X+count {
			run.Text += prims[j].Text
			count++
			j++
		}
		out = append(out, run)
		i = j - 1
	}
	return out
}

// fuseLines repeatedly merges pairs of Line primitives that share an
// endpoint, run collinear through it, and carry the same Stroke, as
// long as neither line plants a Feature (an arrowhead or circle-start
// marker) at the shared point — a marked point is a real endpoint, not
// a pass-through joint, and must survive the merge.
func fuseLines(prims []Primitive) []Primitive {
	lines := make([]Primitive, 0, len(prims))
	rest := make([]Primitive, 0, len(prims))
	for _, p := range prims {
		if p.Kind == KindLine {
			lines = append(lines, p)
		} else {
			rest = append(rest, p)
		}
	}

	for {
		merged := false
		for i := 0; i < len(lines) && !merged; i++ {
			for j := i + 1; j < len(lines); j++ {
				fused, ok := tryFuseLine(lines[i], lines[j])
				if !ok {
					continue
				}
				lines[i] = fused
				lines = append(lines[:j], lines[j+1:]...)
				merged = true
				break
			}
		}
		if !merged {
			break
		}
	}

	out := make([]Primitive, 0, len(lines)+len(rest))
	out = append(out, lines...)
	out = append(out, rest...)
	return out
}

// tryFuseLine tests all four ways two lines might share an endpoint and
// returns the fused line for the first pairing that qualifies.
func tryFuseLine(a, b Primitive) (Primitive, bool) {
	if a.Stroke != b.Stroke {
		return Primitive{}, false
	}

	pairings := [4]struct {
		aEndShared, bEndShared bool
		sharedA, sharedB       Point
		farA, farB             Point
	}{
		{false, false, a.Start, b.Start, a.End, b.End},
		{false, true, a.Start, b.End, a.End, b.Start},
		{true, false, a.End, b.Start, a.Start, b.End},
		{true, true, a.End, b.End, a.Start, b.Start},
	}

	for _, pr := range pairings {
		if !pointsEqual(pr.sharedA, pr.sharedB) {
			continue
		}
		if featureAt(a, pr.aEndShared) || featureAt(b, pr.bEndShared) {
			continue
		}
		if !collinear(pr.farA, pr.sharedA, pr.farB) {
			continue
		}
		return Line(pr.farA, pr.farB, a.Stroke, mergedFeature(a, b, pr.aEndShared, pr.bEndShared)), true
	}
	return Primitive{}, false
}

// featureAt reports whether p plants its Feature at the endpoint named
// by atEnd (true = End, false = Start). FeatureArrowEnd sits at End;
// FeatureCircleStart sits at Start.
func featureAt(p Primitive, atEnd bool) bool {
	switch p.Feature {
	case FeatureArrowEnd:
		return atEnd
	case FeatureCircleStart:
		return !atEnd
	default:
		return false
	}
}

// mergedFeature carries forward whichever line's surviving (non-fused)
// endpoint plants a Feature, if either does.
func mergedFeature(a, b Primitive, aEndShared, bEndShared bool) LineFeature {
	if featureAt(a, !aEndShared) {
		return a.Feature
	}
	if featureAt(b, !bEndShared) {
		return b.Feature
	}
	return FeatureNone
}

// collinear reports whether three points lie on one straight line, via
// the triangle-area formula: the signed area of the triangle they form
// is zero iff they're collinear.
func collinear(a, b, c Point) bool {
	area := (b.X-a.X)*(c.Y-a.Y) - (c.X-a.X)*(b.Y-a.Y)
	return area == 0
}

func pointsEqual(a, b Point) bool { return a.X == b.X && a.Y == b.Y }

// fuseChains links solid Line and Arc primitives that meet end-to-end into
// single Path primitives, one "d" string per chain. A segment that
// doesn't connect to anything else stays as it is — a chain of length
// one isn't worth collapsing into a path.
func fuseChains(prims []Primitive) []Primitive {
	segs := make([]Primitive, 0, len(prims))
	rest := make([]Primitive, 0, len(prims))
	for _, p := range prims {
		if p.Kind == KindArc || (p.Kind == KindLine && p.Stroke == StrokeSolid) {
			segs = append(segs, p)
		} else {
			rest = append(rest, p)
		}
	}

	used := make([]bool, len(segs))
	out := make([]Primitive, 0, len(segs)+len(rest))

	for i := range segs {
		if used[i] {
			continue
		}
		chain := []Primitive{segs[i]}
		used[i] = true
		extendChain(segs, used, &chain)

		if len(chain) == 1 {
			out = append(out, chain[0])
			continue
		}
		out = append(out, buildPath(chain))
	}

	out = append(out, rest...)
	return out
}

// extendChain grows chain by repeatedly finding an unused segment whose
// Start or End meets the chain's current tail, appending it (flipped if
// its End met the tail) until nothing more connects.
func extendChain(segs []Primitive, used []bool, chain *[]Primitive) {
	for {
		tail := (*chain)[len(*chain)-1].End
		found := false
		for j, s := range segs {
			if used[j] {
				continue
			}
			switch {
			case pointsEqual(s.Start, tail):
				*chain = append(*chain, s)
			case pointsEqual(s.End, tail):
				*chain = append(*chain, flip(s))
			default:
				continue
			}
			used[j] = true
			found = true
			break
		}
		if !found {
			return
		}
	}
}

func flip(p Primitive) Primitive {
	p.Start, p.End = p.End, p.Start
	if p.Kind == KindArc {
		p.SweepFlag = !p.SweepFlag
	}
	return p
}

// buildPath renders a connected chain of Line/Arc segments as one SVG
// path "d" string: "M" to the chain's first point, then "L" per line
// and "A" per arc, in chain order.
func buildPath(chain []Primitive) Primitive {
	first := chain[0]
	d := fmt.Sprintf("M%s", fmtPoint(first.Start))
	for _, seg := range chain {
		switch seg.Kind {
		case KindLine:
			d += fmt.Sprintf("L%s", fmtPoint(seg.End))
		case KindArc:
			sweep := 0
			if seg.SweepFlag {
				sweep = 1
			}
			d += fmt.Sprintf("A%g,%g 0 0,%d %s", seg.Radius, seg.Radius, sweep, fmtPoint(seg.End))
		}
	}
	return Path(first.Start, chain[len(chain)-1].End, d, first.Stroke)
}

func fmtPoint(p Point) string {
	return fmt.Sprintf("%g,%g", p.X, p.Y)
}
