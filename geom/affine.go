package geom

import "math"

// Affine is a 2D affine map: x' = A*x + C*y + E, y' = B*x + D*y + F.
// Besides the raw matrix it tracks the net rotation and mirror parity
// contributed by its linear part, which Arc/EllipticalArc commands need
// to adjust their start/extent angles correctly — something the raw
// matrix alone can't answer for a reflection composed with a rotation.
type Affine struct {
	A, B, C, D, E, F float64
	mirror           bool
	rotationDeg      float64
}

// Identity is the no-op transform.
func Identity() Affine {
	return Affine{A: 1, D: 1}
}

// Translate moves every point by (tx, ty).
func Translate(tx, ty float64) Affine {
	return Affine{A: 1, D: 1, E: tx, F: ty}
}

// Scale scales the X and Y axes independently. A single negative factor
// is a mirror (flips arc sweep sense); two negative factors is a
// half-turn rotation (sweep sense preserved).
func Scale(sx, sy float64) Affine {
	// An X-only mirror is a Y flip followed by a half turn.
	rot := 0.0
	if sx < 0 {
		rot = 180
	}
	return Affine{A: sx, D: sy, mirror: (sx < 0) != (sy < 0), rotationDeg: rot}
}

// Rotate rotates by rad radians, counterclockwise in a Y-up frame.
func Rotate(rad float64) Affine {
	c, s := math.Cos(rad), math.Sin(rad)
	return Affine{A: c, B: s, C: -s, D: c, rotationDeg: rad * 180 / math.Pi}
}

// Apply maps a single point through the transform.
func (a Affine) Apply(p Point) Point {
	return Point{X: a.A*p.X + a.C*p.Y + a.E, Y: a.B*p.X + a.D*p.Y + a.F}
}

// Compose returns the transform that applies inner first, then outer —
// i.e. Compose(outer, inner).Apply(p) == outer.Apply(inner.Apply(p)).
func Compose(outer, inner Affine) Affine {
	c := Affine{
		A: outer.A*inner.A + outer.C*inner.B,
		B: outer.B*inner.A + outer.D*inner.B,
		C: outer.A*inner.C + outer.C*inner.D,
		D: outer.B*inner.C + outer.D*inner.D,
		E: outer.A*inner.E + outer.C*inner.F + outer.E,
		F: outer.B*inner.E + outer.D*inner.F + outer.F,
	}
	c.mirror = outer.mirror != inner.mirror
	if outer.mirror {
		c.rotationDeg = outer.rotationDeg - inner.rotationDeg
	} else {
		c.rotationDeg = outer.rotationDeg + inner.rotationDeg
	}
	return c
}

// scaleMagnitude is the area-scaling factor of the linear part, used as
// a uniform stand-in for radius scaling. It is exact for
// similarity transforms (rotation composed with an equal-magnitude,
// possibly-mirrored axis scale) and an accepted
// approximation — on par with the spline's Catmull-Rom substitution for
// a true NURBS — when an Insert's xScale and yScale genuinely differ
// and a circular Arc/Circle inside its block would, strictly, become
// elliptical.
func (a Affine) scaleMagnitude() float64 {
	return math.Sqrt(math.Abs(a.A*a.D - a.B*a.C))
}

// transformSweep adjusts an arc's start/extent angles (both in
// degrees) for this transform's rotation and mirror parity. The
// sampling angle runs opposite to the counterclockwise rotation angle,
// so the rotation is subtracted.
func (a Affine) transformSweep(startDeg, extentDeg float64) (float64, float64) {
	if a.mirror {
		return -startDeg - a.rotationDeg, -extentDeg
	}
	return startDeg - a.rotationDeg, extentDeg
}

// transformAngle adjusts an ellipse's rotation (radians) for this
// transform's rotation and mirror parity.
func (a Affine) transformAngle(rad float64) float64 {
	rot := a.rotationDeg * math.Pi / 180
	if a.mirror {
		return rot - rad
	}
	return rad + rot
}
