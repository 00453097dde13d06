package boxdraw

// patternRules is the recognizer's pattern table: an ordered list of
// (guard, primitive-builder) pairs. recognizeCell scans it in reverse, so
// a rule later in this slice overrides any earlier rule whose guard also
// matches. Earlier entries are the loose, general cases (a lone "|" is
// just a vertical bar); later entries are the specific overrides (a "+"
// with strokes on all four sides becomes a 4-way crosshair rather than a
// T-junction).
//
// Keep this as data, not a branching if/else cascade: it is a direct,
// reviewable transcription of "what does this glyph draw given its
// neighbors," and the ordering itself is part of the specification.
var patternRules = buildPatternRules()

func buildPatternRules() []rule {
	return []rule{
		// ── straight strokes ────────────────────────────────────────────
		{
			guard: func(c ruleContext) bool { return c.is(c.this, isVertical) },
			build: func(p cellPoints) []Primitive { return []Primitive{SolidLine(p.centerTop, p.centerBottom)} },
		},
		{
			guard: func(c ruleContext) bool { return c.is(c.this, isHorizontal) },
			build: func(p cellPoints) []Primitive { return []Primitive{SolidLine(p.midLeft, p.midRight)} },
		},
		{
			guard: func(c ruleContext) bool { return c.is(c.this, isLowHorizontal) },
			build: func(p cellPoints) []Primitive { return []Primitive{SolidLine(p.lowLeft, p.lowRight)} },
		},
		{
			guard: func(c ruleContext) bool { return c.is(c.this, isSlantRight) },
			build: func(p cellPoints) []Primitive { return []Primitive{SolidLine(p.lowLeft, p.highRight)} },
		},
		{
			guard: func(c ruleContext) bool { return c.is(c.this, isSlantLeft) },
			build: func(p cellPoints) []Primitive { return []Primitive{SolidLine(p.highLeft, p.lowRight)} },
		},

		// ── dashed runs: ":" needs a ":" above or below, "=" and "." a run of three
		{
			guard: func(c ruleContext) bool {
				return c.is(c.this, isVerticalDashed) &&
					(c.is(c.top, isVerticalDashed) || c.is(c.bottom, isVerticalDashed))
			},
			build: func(p cellPoints) []Primitive {
				return []Primitive{Line(p.centerTop, p.centerBottom, StrokeDashed, FeatureNone)}
			},
		},
		{
			guard: func(c ruleContext) bool {
				return c.is(c.this, isHorizontalDashed) &&
					((c.is(c.left, isHorizontalDashed) && c.is(c.right, isHorizontalDashed)) ||
						(c.is(c.left, isHorizontalDashed) && c.is(c.leftLeft, isHorizontalDashed)) ||
						(c.is(c.right, isHorizontalDashed) && c.is(c.rightRight, isHorizontalDashed)))
			},
			build: func(p cellPoints) []Primitive {
				return []Primitive{Line(p.midLeft, p.midRight, StrokeDashed, FeatureNone)}
			},
		},
		{
			guard: func(c ruleContext) bool {
				return c.is(c.this, isLowHorizontalDashed) &&
					((c.is(c.left, isLowHorizontalDashed) && c.is(c.right, isLowHorizontalDashed)) ||
						(c.is(c.left, isLowHorizontalDashed) && c.is(c.leftLeft, isLowHorizontalDashed)) ||
						(c.is(c.right, isLowHorizontalDashed) && c.is(c.rightRight, isLowHorizontalDashed)))
			},
			build: func(p cellPoints) []Primitive {
				return []Primitive{Line(p.lowLeft, p.lowRight, StrokeDashed, FeatureNone)}
			},
		},

		// ── rounded corners ─────────────────────────────────────────────
		{
			// top-left round corner joining a low-horizontal above to a
			// horizontal to the right:  _\n `-
			guard: func(c ruleContext) bool {
				return c.is(c.this, isBacktick) &&
					c.is(c.topLeft, isLowHorizontal) && c.is(c.right, isHorizontal)
			},
			build: func(p cellPoints) []Primitive { return []Primitive{SolidLine(p.axay, p.excy)} },
		},
		{
			// top-right round corner: __\n --'
			guard: func(c ruleContext) bool {
				return c.is(c.this, isHighRound) &&
					c.is(c.topRight, isLowHorizontal) && c.is(c.left, isHorizontal)
			},
			build: func(p cellPoints) []Primitive { return []Primitive{SolidLine(p.axcy, p.exay)} },
		},
		{
			// bottom-left round corner: -._
			guard: func(c ruleContext) bool {
				return c.is(c.this, isLowRound) &&
					c.is(c.left, isHorizontal) && c.is(c.right, isLowHorizontal)
			},
			build: func(p cellPoints) []Primitive { return []Primitive{SolidLine(p.axcy, p.exey)} },
		},
		{
			// bottom-right round corner: _.-
			guard: func(c ruleContext) bool {
				return c.is(c.this, isLowRound) &&
					c.is(c.right, isHorizontal) && c.is(c.left, isLowHorizontal)
			},
			build: func(p cellPoints) []Primitive { return []Primitive{SolidLine(p.axey, p.excy)} },
		},
		{
			// .-  top-left arc corner joining a vertical below to a
			// horizontal to the right. The stub drops to cxdy, the
			// quarter point, so the vertical below meets the arc at
			// its own top edge rather than the cell center.
			guard: func(c ruleContext) bool {
				return c.is(c.this, isRound) && c.is(c.bottom, isVertical) && c.is(c.right, isHorizontal)
			},
			build: func(p cellPoints) []Primitive {
				return []Primitive{
					Arc(p.excy, p.cxdy, p.arcRadius, false),
					SolidLine(p.cxdy, p.centerBottom),
				}
			},
		},
		{
			// -.  top-right arc corner joining a vertical below to a
			// horizontal to the left
			guard: func(c ruleContext) bool {
				return c.is(c.this, isRound) && c.is(c.bottom, isVertical) && c.is(c.left, isHorizontal)
			},
			build: func(p cellPoints) []Primitive {
				return []Primitive{
					Arc(p.cxdy, p.axcy, p.arcRadius, false),
					SolidLine(p.cxdy, p.centerBottom),
				}
			},
		},
		{
			// '-  bottom-left arc corner joining a vertical above to a
			// horizontal to the right. The stub rises only to cxby, the
			// quarter point, not the cell center.
			guard: func(c ruleContext) bool {
				return c.is(c.this, isHighRound) && c.is(c.top, isVertical) && c.is(c.right, isHorizontal)
			},
			build: func(p cellPoints) []Primitive {
				return []Primitive{
					Arc(p.cxby, p.excy, p.arcRadius, false),
					SolidLine(p.centerTop, p.cxby),
				}
			},
		},
		{
			// -'  bottom-right arc corner joining a vertical above to a
			// horizontal to the left
			guard: func(c ruleContext) bool {
				return c.is(c.this, isHighRound) && c.is(c.top, isVertical) && c.is(c.left, isHorizontal)
			},
			build: func(p cellPoints) []Primitive {
				return []Primitive{
					Arc(p.axcy, p.cxby, p.arcRadius, false),
					SolidLine(p.centerTop, p.cxby),
				}
			},
		},

		// ── rounded corners joined by a slant instead of a vertical ─────
		{
			guard: func(c ruleContext) bool {
				return c.is(c.this, isRound) && c.is(c.right, isHorizontal) && c.is(c.bottomLeft, isSlantRight)
			},
			build: func(p cellPoints) []Primitive {
				return []Primitive{SolidLine(p.axey, p.bxdy), Arc(p.excy, p.bxdy, p.arcRadius*2, false)}
			},
		},
		{
			guard: func(c ruleContext) bool {
				return c.is(c.this, isRound) && c.is(c.left, isHorizontal) && c.is(c.bottomRight, isSlantLeft)
			},
			build: func(p cellPoints) []Primitive {
				return []Primitive{SolidLine(p.exey, p.dxdy), Arc(p.dxdy, p.axcy, p.arcRadius*2, false)}
			},
		},
		{
			guard: func(c ruleContext) bool {
				return c.is(c.this, isRound) && c.is(c.left, isHorizontal) && c.is(c.bottomLeft, isSlantRight)
			},
			build: func(p cellPoints) []Primitive {
				return []Primitive{SolidLine(p.axey, p.bxdy), Arc(p.bxdy, p.axcy, p.arcRadius, false)}
			},
		},
		{
			guard: func(c ruleContext) bool {
				return c.is(c.this, isRound) && c.is(c.right, isHorizontal) && c.is(c.bottomRight, isSlantLeft)
			},
			build: func(p cellPoints) []Primitive {
				return []Primitive{SolidLine(p.exey, p.dxdy), Arc(p.excy, p.dxdy, p.arcRadius, false)}
			},
		},
		{
			guard: func(c ruleContext) bool {
				return c.is(c.this, isRound) && c.is(c.right, isHorizontal) && c.is(c.topLeft, isSlantLeft)
			},
			build: func(p cellPoints) []Primitive {
				return []Primitive{SolidLine(p.axay, p.bxby), Arc(p.bxby, p.excy, p.arcRadius*2, false)}
			},
		},
		{
			guard: func(c ruleContext) bool {
				return c.is(c.this, isRound) && c.is(c.right, isHorizontal) && c.is(c.topRight, isSlantRight)
			},
			build: func(p cellPoints) []Primitive {
				return []Primitive{SolidLine(p.dxby, p.exay), Arc(p.dxby, p.excy, p.arcRadius, false)}
			},
		},
		{
			guard: func(c ruleContext) bool {
				return c.is(c.this, isRound) && c.is(c.left, isHorizontal) && c.is(c.topLeft, isSlantLeft)
			},
			build: func(p cellPoints) []Primitive {
				return []Primitive{SolidLine(p.axay, p.bxby), Arc(p.axcy, p.bxby, p.arcRadius, false)}
			},
		},
		{
			guard: func(c ruleContext) bool {
				return c.is(c.this, isRound) && c.is(c.left, isHorizontal) && c.is(c.topRight, isSlantRight)
			},
			build: func(p cellPoints) []Primitive {
				return []Primitive{SolidLine(p.dxby, p.exay), Arc(p.axcy, p.dxby, p.arcRadius*2, false)}
			},
		},

		// ── arrowheads ───────────────────────────────────────────────────
		{
			guard: func(c ruleContext) bool { return c.is(c.this, isArrowUp) && c.is(c.bottom, isVertical) },
			build: func(p cellPoints) []Primitive {
				return []Primitive{Line(p.centerBottom, p.centerTop, StrokeSolid, FeatureArrowEnd)}
			},
		},
		{
			guard: func(c ruleContext) bool { return c.is(c.this, isArrowUp) && c.is(c.bottom, isVerticalDashed) },
			build: func(p cellPoints) []Primitive {
				return []Primitive{Line(p.centerBottom, p.centerTop, StrokeDashed, FeatureArrowEnd)}
			},
		},
		{
			guard: func(c ruleContext) bool { return c.is(c.this, isArrowDown) && c.is(c.top, isVertical) },
			build: func(p cellPoints) []Primitive {
				return []Primitive{Line(p.centerTop, p.centerBottom, StrokeSolid, FeatureArrowEnd)}
			},
		},
		{
			guard: func(c ruleContext) bool { return c.is(c.this, isArrowDown) && c.is(c.top, isVerticalDashed) },
			build: func(p cellPoints) []Primitive {
				return []Primitive{Line(p.centerTop, p.centerBottom, StrokeDashed, FeatureArrowEnd)}
			},
		},
		{
			guard: func(c ruleContext) bool { return c.is(c.this, isArrowLeft) && c.is(c.right, isHorizontal) },
			build: func(p cellPoints) []Primitive {
				return []Primitive{Line(p.midRight, p.cxcy, StrokeSolid, FeatureArrowEnd)}
			},
		},
		{
			guard: func(c ruleContext) bool { return c.is(c.this, isArrowLeft) && c.is(c.right, isHorizontalDashed) },
			build: func(p cellPoints) []Primitive {
				return []Primitive{Line(p.midRight, p.cxcy, StrokeDashed, FeatureArrowEnd)}
			},
		},
		{
			guard: func(c ruleContext) bool { return c.is(c.this, isArrowRight) && c.is(c.left, isHorizontal) },
			build: func(p cellPoints) []Primitive {
				return []Primitive{Line(p.midLeft, p.cxcy, StrokeSolid, FeatureArrowEnd)}
			},
		},
		{
			guard: func(c ruleContext) bool { return c.is(c.this, isArrowRight) && c.is(c.left, isHorizontalDashed) },
			build: func(p cellPoints) []Primitive {
				return []Primitive{Line(p.midLeft, p.cxcy, StrokeDashed, FeatureArrowEnd)}
			},
		},
		{
			// ^ pointed at by a "\" arriving from the bottom-right
			guard: func(c ruleContext) bool { return c.is(c.this, isArrowUp) && c.is(c.bottomRight, isSlantLeft) },
			build: func(p cellPoints) []Primitive {
				return []Primitive{Line(p.lowRight, p.cxcy, StrokeSolid, FeatureArrowEnd)}
			},
		},
		{
			// ^ pointed at by a "/" arriving from the bottom-left
			guard: func(c ruleContext) bool { return c.is(c.this, isArrowUp) && c.is(c.bottomLeft, isSlantRight) },
			build: func(p cellPoints) []Primitive {
				return []Primitive{Line(p.lowLeft, p.cxcy, StrokeSolid, FeatureArrowEnd)}
			},
		},
		{
			// v pointed at by a "/" arriving from the top-right
			guard: func(c ruleContext) bool { return c.is(c.this, isArrowDown) && c.is(c.topRight, isSlantRight) },
			build: func(p cellPoints) []Primitive {
				return []Primitive{Line(p.highRight, p.cxcy, StrokeSolid, FeatureArrowEnd)}
			},
		},
		{
			// v pointed at by a "\" arriving from the top-left
			guard: func(c ruleContext) bool { return c.is(c.this, isArrowDown) && c.is(c.topLeft, isSlantLeft) },
			build: func(p cellPoints) []Primitive {
				return []Primitive{Line(p.highLeft, p.cxcy, StrokeSolid, FeatureArrowEnd)}
			},
		},

		// ── low-bar extensions ───────────────────────────────────────────
		{
			guard: func(c ruleContext) bool {
				return c.is(c.this, isLowHorizontal) &&
					(c.is(c.bottomLeft, isVertical) || c.is(c.left, isVertical))
			},
			build: func(p cellPoints) []Primitive { return []Primitive{SolidLine(p.lowRight, p.axchey)} },
		},
		{
			guard: func(c ruleContext) bool {
				return c.is(c.this, isLowHorizontal) &&
					(c.is(c.bottomRight, isVertical) || c.is(c.right, isVertical))
			},
			build: func(p cellPoints) []Primitive { return []Primitive{SolidLine(p.lowLeft, p.exchey)} },
		},
		{
			guard: func(c ruleContext) bool { return c.is(c.this, isLowHorizontal) && c.is(c.left, isSlantRight) },
			build: func(p cellPoints) []Primitive { return []Primitive{SolidLine(p.lowRight, p.axehey)} },
		},
		{
			guard: func(c ruleContext) bool { return c.is(c.this, isLowHorizontal) && c.is(c.right, isSlantLeft) },
			build: func(p cellPoints) []Primitive { return []Primitive{SolidLine(p.lowLeft, p.exehey)} },
		},
		{
			guard: func(c ruleContext) bool { return c.is(c.this, isSlantRight) && c.is(c.right, isLowHorizontal) },
			build: func(p cellPoints) []Primitive {
				return []Primitive{SolidLine(p.lowLeft, p.highRight), SolidLine(p.lowLeft, p.exehey)}
			},
		},
		{
			guard: func(c ruleContext) bool { return c.is(c.this, isHorizontal) && c.is(c.right, isVertical) },
			build: func(p cellPoints) []Primitive { return []Primitive{SolidLine(p.axcy, p.exchcy)} },
		},
		{
			guard: func(c ruleContext) bool { return c.is(c.this, isHorizontal) && c.is(c.left, isVertical) },
			build: func(p cellPoints) []Primitive { return []Primitive{SolidLine(p.excy, p.axchcy)} },
		},

		// ── slant/vertical joins ─────────────────────────────────────────
		{
			guard: func(c ruleContext) bool { return c.is(c.this, isSlantLeft) && c.is(c.top, isVertical) },
			build: func(p cellPoints) []Primitive { return []Primitive{SolidLine(p.cxcy, p.exey)} },
		},
		{
			guard: func(c ruleContext) bool { return c.is(c.this, isSlantRight) && c.is(c.top, isVertical) },
			build: func(p cellPoints) []Primitive { return []Primitive{SolidLine(p.cxcy, p.axey)} },
		},
		{
			// a vertical continuing into a slant below overshoots past its
			// own bottom edge to cxeycv, the slant's own center — both "/"
			// and "\" diagonals cross their own cell at that same center
			// point, so the stub is identical regardless of lean direction.
			guard: func(c ruleContext) bool {
				return c.is(c.this, isVertical) && (c.is(c.bottom, isSlantLeft) || c.is(c.bottom, isSlantRight))
			},
			build: func(p cellPoints) []Primitive { return []Primitive{SolidLine(p.cxay, p.cxeycv)} },
		},

		// ── curve brackets ───────────────────────────────────────────────
		{
			// ")" or a round corner pinched by diagonals on its left: \ above, / below
			guard: func(c ruleContext) bool {
				return (c.is(c.this, isRound) || c.is(c.this, isCloseCurve)) &&
					c.is(c.topLeft, isSlantLeft) && c.is(c.bottomLeft, isSlantRight)
			},
			build: func(p cellPoints) []Primitive {
				return []Primitive{
					SolidLine(p.axay, p.bxby), SolidLine(p.axey, p.bxdy),
					Arc(p.bxdy, p.bxby, p.arcRadius*2, false),
				}
			},
		},
		{
			// "(" or a round corner pinched by diagonals on its right: / above, \ below
			guard: func(c ruleContext) bool {
				return (c.is(c.this, isRound) || c.is(c.this, isOpenCurve)) &&
					c.is(c.topRight, isSlantRight) && c.is(c.bottomRight, isSlantLeft)
			},
			build: func(p cellPoints) []Primitive {
				return []Primitive{
					SolidLine(p.exay, p.dxby), SolidLine(p.exey, p.dxdy),
					Arc(p.dxby, p.dxdy, p.arcRadius*2, false),
				}
			},
		},
		{
			// tall "(" spanning a rounded corner above and below on its right
			guard: func(c ruleContext) bool {
				return c.is(c.this, isOpenCurve) &&
					(c.is(c.topRight, isRound) || c.is(c.topRight, isComma)) &&
					(c.is(c.bottomRight, isHighRound) || c.is(c.bottomRight, isBacktick))
			},
			build: func(p cellPoints) []Primitive { return []Primitive{Arc(p.dxay, p.dxey, p.arcRadius*4, false)} },
		},
		{
			// tall ")" spanning a rounded corner above and below on its left
			guard: func(c ruleContext) bool {
				return c.is(c.this, isCloseCurve) && c.is(c.topLeft, isRound) && c.is(c.bottomLeft, isRound)
			},
			build: func(p cellPoints) []Primitive { return []Primitive{Arc(p.bxey, p.bxay, p.arcRadius*4, false)} },
		},
		{
			// left speech-balloon pointer: "(" over an arrowhead below it
			guard: func(c ruleContext) bool {
				return c.is(c.this, isOpenCurve) && c.is(c.bottomRight, isArrowRight)
			},
			build: func(p cellPoints) []Primitive { return []Primitive{Arc(p.cxay, p.exey, p.arcRadius*8, false)} },
		},
		{
			// left speech-balloon pointer: "(" under an arrowhead above it
			guard: func(c ruleContext) bool {
				return c.is(c.this, isOpenCurve) && c.is(c.topRight, isArrowRight)
			},
			build: func(p cellPoints) []Primitive { return []Primitive{Arc(p.exay, p.cxey, p.arcRadius*8, false)} },
		},
		{
			// right speech-balloon pointer: ")" over an arrowhead below it
			guard: func(c ruleContext) bool {
				return c.is(c.this, isCloseCurve) && c.is(c.bottomLeft, isArrowLeft)
			},
			build: func(p cellPoints) []Primitive { return []Primitive{Arc(p.axey, p.cxay, p.arcRadius*8, false)} },
		},
		{
			// right speech-balloon pointer: ")" under an arrowhead above it
			guard: func(c ruleContext) bool {
				return c.is(c.this, isCloseCurve) && c.is(c.topLeft, isArrowLeft)
			},
			build: func(p cellPoints) []Primitive { return []Primitive{Arc(p.cxey, p.axay, p.arcRadius*8, false)} },
		},

		// ── junction markers ─────────────────────────────────────────────
		{
			guard: func(c ruleContext) bool { return c.is(c.this, isAsterisk) && c.connects() },
			build: func(p cellPoints) []Primitive { return []Primitive{Circle(p.cxcy, p.ch, false)} },
		},
		{
			guard: func(c ruleContext) bool { return c.is(c.this, isO) && c.connects() },
			build: func(p cellPoints) []Primitive { return []Primitive{Circle(p.cxcy, p.ch, true)} },
		},

		// ── sharp joins: '+' intersections, highest priority ─────────────
		{
			// T-junction: horizontal through, vertical dropping from the top
			guard: func(c ruleContext) bool {
				return c.is(c.this, isIntersection) &&
					c.is(c.left, isHorizontal) && c.is(c.right, isHorizontal) && c.is(c.top, isVertical)
			},
			build: func(p cellPoints) []Primitive {
				return []Primitive{SolidLine(p.midLeft, p.midRight), SolidLine(p.centerTop, p.cxcy)}
			},
		},
		{
			// T-junction: horizontal through, vertical dropping to the bottom
			guard: func(c ruleContext) bool {
				return c.is(c.this, isIntersection) &&
					c.is(c.left, isHorizontal) && c.is(c.right, isHorizontal) && c.is(c.bottom, isVertical)
			},
			build: func(p cellPoints) []Primitive {
				return []Primitive{SolidLine(p.midLeft, p.midRight), SolidLine(p.cxcy, p.centerBottom)}
			},
		},
		{
			// T-junction: vertical through, horizontal branching right
			guard: func(c ruleContext) bool {
				return c.is(c.this, isIntersection) &&
					c.is(c.top, isVertical) && c.is(c.bottom, isVertical) && c.is(c.right, isHorizontal)
			},
			build: func(p cellPoints) []Primitive {
				return []Primitive{SolidLine(p.centerTop, p.centerBottom), SolidLine(p.cxcy, p.midRight)}
			},
		},
		{
			// T-junction: vertical through, horizontal branching left
			guard: func(c ruleContext) bool {
				return c.is(c.this, isIntersection) &&
					c.is(c.top, isVertical) && c.is(c.bottom, isVertical) && c.is(c.left, isHorizontal)
			},
			build: func(p cellPoints) []Primitive {
				return []Primitive{SolidLine(p.centerTop, p.centerBottom), SolidLine(p.midLeft, p.cxcy)}
			},
		},
		{
			// 4-way crosshair: overrides the T-junctions above, since it
			// demands every one of the four orthogonal neighbors connect.
			guard: func(c ruleContext) bool {
				return c.is(c.this, isIntersection) &&
					c.is(c.top, isVertical) && c.is(c.bottom, isVertical) &&
					c.is(c.left, isHorizontal) && c.is(c.right, isHorizontal)
			},
			build: func(p cellPoints) []Primitive {
				return []Primitive{SolidLine(p.centerTop, p.centerBottom), SolidLine(p.midLeft, p.midRight)}
			},
		},
		{
			// round/marker cell acting as a 4-way crosshair with diagonal
			// slants also converging — the densest, most specific rule.
			guard: func(c ruleContext) bool {
				this := c.is(c.this, isIntersection) || c.is(c.this, isRound) || c.is(c.this, isMarker)
				return this &&
					c.is(c.top, isVertical) && c.is(c.bottom, isVertical) &&
					c.is(c.left, isHorizontal) && c.is(c.right, isHorizontal) &&
					c.is(c.topLeft, isSlantLeft) && c.is(c.topRight, isSlantRight) &&
					c.is(c.bottomLeft, isSlantRight) && c.is(c.bottomRight, isSlantLeft)
			},
			build: func(p cellPoints) []Primitive {
				return []Primitive{
					SolidLine(p.centerTop, p.centerBottom),
					SolidLine(p.midLeft, p.midRight),
					SolidLine(p.highLeft, p.lowRight),
					SolidLine(p.lowLeft, p.highRight),
				}
			},
		},
	}
}
