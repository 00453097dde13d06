package boxdraw

// cellPoints is the canonical sub-cell point lattice for one grid cell: 25
// points on a 5-tick-per-axis grid (fractions 0, 1/4, 1/2, 3/4, 1 of
// TextWidth/TextHeight), plus a handful of named composites and extended
// points that reach into neighboring cells for long arcs and overshoots.
//
// Every recognizer rule routes through these fields so that two adjacent
// cells' primitives always meet at exactly the same pixel — never through
// ad hoc arithmetic that could drift by a rounding error.
type cellPoints struct {
	// axis fractions: a=0, b=1/4, c=1/2, d=3/4, e=1, times TextWidth (x) or
	// TextHeight (y), offset by the cell's own pixel origin.
	ax, bx, cx, dx, ex float64
	ay, by, cy, dy, ey float64

	// the four half/quarter increments themselves, kept around for
	// building extended points that overshoot the cell boundary.
	bh, ch, dh, eh float64 // horizontal: TextWidth/4, /2, 3/4, 1
	bv, cv         float64 // vertical: TextHeight/4, /2

	// named composites
	axay, bxby, cxcy, dxdy, exey Point
	axcy, bxdy, bxcy             Point
	cxay, cxey, cxdy, cxby       Point
	dxby, dxcy, excy             Point
	dxey, dxay, bxay, bxey       Point
	axey, exay                   Point

	centerTop, centerBottom Point
	midLeft, midRight       Point
	highLeft, highRight     Point
	lowLeft, lowRight       Point

	// extended points, overshooting into neighboring cells
	axbhey, exbhey, axbhay, exbhay Point
	axchay, exchey, exchay, axchey Point
	axehey, axehay, exdhey, exehay Point
	axdhey, exehey, axdhay, exdhay Point
	exchcy, axchcy, exchby         Point
	cxeybv, cxeycv, exchdy         Point
	cxaybv, axchby, axchdy, cxaycv Point
	excheycv, axcheycv             Point
	axchaycv, exchaycv             Point

	// arc radius unit: TextWidth / 2
	arcRadius float64
}

func newCellPoints(loc Loc, s Settings) cellPoints {
	tw, th := s.TextWidth, s.TextHeight
	measureX := float64(loc.X) * tw
	measureY := float64(loc.Y) * th

	p := cellPoints{
		ax: measureX, bx: measureX + tw/4, cx: measureX + tw/2, dx: measureX + tw*3/4, ex: measureX + tw,
		ay: measureY, by: measureY + th/4, cy: measureY + th/2, dy: measureY + th*3/4, ey: measureY + th,
		bh: tw / 4, ch: tw / 2, dh: tw * 3 / 4, eh: tw,
		bv: th / 4, cv: th / 2,
		arcRadius: tw / 2,
	}

	p.axay = NewPoint(p.ax, p.ay)
	p.bxby = NewPoint(p.bx, p.by)
	p.cxcy = NewPoint(p.cx, p.cy)
	p.dxdy = NewPoint(p.dx, p.dy)
	p.exey = NewPoint(p.ex, p.ey)

	p.axcy = NewPoint(p.ax, p.cy)
	p.bxdy = NewPoint(p.bx, p.dy)
	p.bxcy = NewPoint(p.bx, p.cy)
	p.cxay = NewPoint(p.cx, p.ay)
	p.cxey = NewPoint(p.cx, p.ey)
	p.cxdy = NewPoint(p.cx, p.dy)
	p.cxby = NewPoint(p.cx, p.by)
	p.dxby = NewPoint(p.dx, p.by)
	p.dxcy = NewPoint(p.dx, p.cy)
	p.excy = NewPoint(p.ex, p.cy)
	p.dxey = NewPoint(p.dx, p.ey)
	p.dxay = NewPoint(p.dx, p.ay)
	p.bxay = NewPoint(p.bx, p.ay)
	p.bxey = NewPoint(p.bx, p.ey)
	p.axey = NewPoint(p.ax, p.ey)
	p.exay = NewPoint(p.ex, p.ay)

	p.centerTop = NewPoint(p.cx, p.ay)
	p.centerBottom = NewPoint(p.cx, p.ey)
	p.midLeft = NewPoint(p.ax, p.cy)
	p.midRight = NewPoint(p.ex, p.cy)
	p.highLeft = NewPoint(p.ax, p.ay)
	p.highRight = NewPoint(p.ex, p.ay)
	p.lowLeft = NewPoint(p.ax, p.ey)
	p.lowRight = NewPoint(p.ex, p.ey)

	p.axbhey = NewPoint(p.ax-p.bh, p.ey)
	p.exbhey = NewPoint(p.ex+p.bh, p.ey)
	p.axbhay = NewPoint(p.ax-p.bh, p.ay)
	p.exbhay = NewPoint(p.ex+p.bh, p.ay)
	p.axchay = NewPoint(p.ax-p.ch, p.ay)
	p.exchey = NewPoint(p.ex+p.ch, p.ey)
	p.exchay = NewPoint(p.ex+p.ch, p.ay)
	p.axchey = NewPoint(p.ax-p.ch, p.ey)
	p.axehey = NewPoint(p.ax-p.eh, p.ey)
	p.axehay = NewPoint(p.ax-p.eh, p.ay)
	p.exdhey = NewPoint(p.ex+p.dh, p.ey)
	p.exehay = NewPoint(p.ex+p.eh, p.ay)
	p.axdhey = NewPoint(p.ax-p.dh, p.ey)
	p.exehey = NewPoint(p.ex+p.eh, p.ey)
	p.axdhay = NewPoint(p.ax-p.dh, p.ay)
	p.exdhay = NewPoint(p.ex+p.dh, p.ay)
	p.exchcy = NewPoint(p.ex+p.ch, p.cy)
	p.axchcy = NewPoint(p.ax-p.ch, p.cy)
	p.exchby = NewPoint(p.ex+p.ch, p.by)
	p.cxeybv = NewPoint(p.cx, p.ey+p.bv)
	p.cxeycv = NewPoint(p.cx, p.ey+p.cv)
	p.exchdy = NewPoint(p.ex+p.ch, p.dy)
	p.cxaybv = NewPoint(p.cx, p.ay-p.bv)
	p.axchby = NewPoint(p.ax-p.ch, p.by)
	p.axchdy = NewPoint(p.ax-p.ch, p.dy)
	p.cxaycv = NewPoint(p.cx, p.ay-p.cv)
	p.excheycv = NewPoint(p.ex+p.ch, p.ey+p.cv)
	p.axcheycv = NewPoint(p.ax-p.ch, p.ey+p.cv)
	p.axchaycv = NewPoint(p.ax-p.ch, p.ay-p.cv)
	p.exchaycv = NewPoint(p.ex+p.ch, p.ay-p.cv)

	return p
}
