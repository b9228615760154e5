package geom

import "math"

// ArcFromBulge builds the ArcSegment command connecting p1 to p2 with
// the curvature encoded by a polyline vertex's bulge factor: bulge =
// tan(theta/4), where theta is the arc's included angle. A positive
// bulge sweeps clockwise.
//
// See http://darrenirvine.blogspot.com/2015/08/polylines-radius-bulge-turnaround.html
func ArcFromBulge(p1, p2 Point, bulge float64) Command {
	mp := Point{X: (p1.X + p2.X) / 2, Y: (p1.Y + p2.Y) / 2}
	// bp = mp + perp(p1-mp)*bulge, perp(v) = (-v.y, v.x)
	bp := Point{
		X: mp.X - (p1.Y-mp.Y)*bulge,
		Y: mp.Y + (p1.X-mp.X)*bulge,
	}

	u := math.Hypot(p2.X-p1.X, p2.Y-p1.Y)
	b := 2 * math.Hypot(mp.X-bp.X, mp.Y-bp.Y) / u
	radius := u * (1 + b*b) / (4 * b)

	dx, dy := mp.X-bp.X, mp.Y-bp.Y
	mag := math.Hypot(dx, dy)
	cp := Point{X: bp.X + radius*dx/mag, Y: bp.Y + radius*dy/mag}

	startDeg := 180 - math.Atan2(cp.Y-p1.Y, cp.X-p1.X)*180/math.Pi
	extentDeg := math.Asin((u/2)/radius) * 2 * 180 / math.Pi
	if bulge >= 0 {
		extentDeg = -extentDeg
	}

	return ArcSegment(cp, radius, startDeg, extentDeg)
}
