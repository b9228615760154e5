package geom

// CatmullRomToBezier converts an interpolating Catmull-Rom control
// polyline into a sequence of path commands: a leading MoveTo to the
// first point, followed by one CurveTo per segment. The caller is
// responsible for appending a ClosePath when closed is true — the
// caller alone knows whether that has already happened (SPLINE's
// GetShape can be called more than once).
//
// This is a deliberate approximation: DXF splines are nominally NURBS,
// and this reconstructs only the Catmull-Rom-equivalent fit through the
// control points, not the true curve.
func CatmullRomToBezier(points []Point, closed bool) []Command {
	n := len(points)
	if n == 0 {
		return nil
	}

	cmds := []Command{MoveTo(points[0])}
	if n < 2 {
		return cmds
	}

	segments := n - 1
	if closed {
		segments = n
	}

	for i := 0; i < segments; i++ {
		var p0, p1, p2, p3 Point
		if closed {
			p0 = points[floorMod(i-1, n)]
			p1 = points[floorMod(i, n)]
			p2 = points[floorMod(i+1, n)]
			p3 = points[floorMod(i+2, n)]
		} else {
			p0 = points[maxInt(i-1, 0)]
			p1 = points[i]
			p2 = points[i+1]
			p3 = points[minInt(i+2, n-1)]
		}

		// Catmull-Rom to cubic Bezier conversion matrix:
		//    0      1      0      0
		//  -1/6     1     1/6     0
		//    0     1/6     1    -1/6
		//    0      0      1      0
		c1 := Point{X: (-p0.X + 6*p1.X + p2.X) / 6, Y: (-p0.Y + 6*p1.Y + p2.Y) / 6}
		c2 := Point{X: (p1.X + 6*p2.X - p3.X) / 6, Y: (p1.Y + 6*p2.Y - p3.Y) / 6}
		cmds = append(cmds, CurveTo(c1, c2, p2))
	}

	return cmds
}

func floorMod(x, n int) int {
	return ((x % n) + n) % n
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
