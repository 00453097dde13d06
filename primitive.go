package boxdraw

// Stroke distinguishes solid from dashed lines and paths. Arcs are always
// solid; Stroke only appears on Line and Path.
type Stroke int

const (
	// StrokeSolid draws a continuous line.
	StrokeSolid Stroke = iota

	// StrokeDashed draws a "3 3" dash pattern and clears fill.
	StrokeDashed
)

// LineFeature annotates a Line's endpoint marker.
type LineFeature int

const (
	// FeatureNone draws a plain line with no marker.
	FeatureNone LineFeature = iota

	// FeatureArrowEnd places the triangle arrowhead marker at the line's end.
	FeatureArrowEnd

	// FeatureCircleStart places a circle marker at the line's start.
	FeatureCircleStart
)

// Primitive is a drawing instruction produced by the recognizer and
// consumed by the optimizer and emitter. Exactly one of the embedded
// payloads is meaningful for a given Primitive, selected by Kind.
type Primitive struct {
	Kind PrimitiveKind

	// Line, Arc
	Start, End Point
	Stroke     Stroke
	Feature    LineFeature // Line only

	// Arc
	Radius    float64
	SweepFlag bool

	// Circle
	Center     Point
	CircleOpen bool // false = solid (filled black), true = open (filled white)

	// Text
	Loc  Loc
	Text string

	// Path (optimizer output only)
	D string
}

// PrimitiveKind discriminates the Primitive variant in play.
type PrimitiveKind int

const (
	KindLine PrimitiveKind = iota
	KindArc
	KindCircle
	KindText
	KindPath
)

// Line returns a Primitive drawing a straight line.
func Line(start, end Point, stroke Stroke, feature LineFeature) Primitive {
	return Primitive{Kind: KindLine, Start: start, End: end, Stroke: stroke, Feature: feature}
}

// SolidLine returns a plain solid Line with no endpoint feature.
func SolidLine(start, end Point) Primitive {
	return Line(start, end, StrokeSolid, FeatureNone)
}

// Arc returns a Primitive drawing a circular arc. Arcs are always solid.
func Arc(start, end Point, radius float64, sweepFlag bool) Primitive {
	return Primitive{Kind: KindArc, Start: start, End: end, Radius: radius, SweepFlag: sweepFlag, Stroke: StrokeSolid}
}

// Circle returns a Primitive drawing a filled or open circle.
func Circle(center Point, radius float64, open bool) Primitive {
	return Primitive{Kind: KindCircle, Center: center, Radius: radius, CircleOpen: open}
}

// Text returns a Primitive placing a text run at a grid location.
func Text(loc Loc, s string) Primitive {
	return Primitive{Kind: KindText, Loc: loc, Text: s}
}

// Path returns a Primitive drawing a fused chain's "d" string. Produced only
// by the optimizer.
func Path(start, end Point, d string, stroke Stroke) Primitive {
	return Primitive{Kind: KindPath, Start: start, End: end, D: d, Stroke: stroke}
}
