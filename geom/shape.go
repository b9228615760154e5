// Package geom holds the planar shape model the core emits: path
// commands (MoveTo/LineTo/CurveTo/ArcSegment/EllipticalArc/ClosePath)
// and the three standalone primitives (Circle, Ellipse, Arc) that an
// entity can resolve to directly instead of a path.
//
// Arc, ArcSegment and EllipticalArc sample as
// center + (radius*cos(t), -radius*sin(t)) for t sweeping from StartDeg
// to StartDeg+ExtentDeg. The minus sign matches the AffineTransform/
// Arc2D convention the entity layer's angle arithmetic (ARC's angle
// negation, the bulge formula's atan2 term) was derived against; a
// negative ExtentDeg is a clockwise sweep under this convention.
package geom

import "math"

// Point is a point in the 2D plane, in inches once it has passed
// through the unit resolver.
type Point struct {
	X, Y float64
}

// BBox is an axis-aligned bounding rectangle.
type BBox struct {
	Min, Max Point
}

// Empty reports whether the box has never been extended by a point.
func (b BBox) Empty() bool {
	return b.Min.X > b.Max.X || b.Min.Y > b.Max.Y
}

// Width and Height are the box's extents.
func (b BBox) Width() float64  { return b.Max.X - b.Min.X }
func (b BBox) Height() float64 { return b.Max.Y - b.Min.Y }

// EmptyBBox returns a box in the "inverted" state Union treats as the
// identity element.
func EmptyBBox() BBox {
	return BBox{
		Min: Point{X: math.Inf(1), Y: math.Inf(1)},
		Max: Point{X: math.Inf(-1), Y: math.Inf(-1)},
	}
}

// Union returns the smallest box containing both a and b.
func Union(a, b BBox) BBox {
	if a.Empty() {
		return b
	}
	if b.Empty() {
		return a
	}
	return BBox{
		Min: Point{X: math.Min(a.Min.X, b.Min.X), Y: math.Min(a.Min.Y, b.Min.Y)},
		Max: Point{X: math.Max(a.Max.X, b.Max.X), Y: math.Max(a.Max.Y, b.Max.Y)},
	}
}

// Extend grows b to include p.
func (b BBox) Extend(p Point) BBox {
	if b.Empty() {
		return BBox{Min: p, Max: p}
	}
	return BBox{
		Min: Point{X: math.Min(b.Min.X, p.X), Y: math.Min(b.Min.Y, p.Y)},
		Max: Point{X: math.Max(b.Max.X, p.X), Y: math.Max(b.Max.Y, p.Y)},
	}
}

// Shape is the contract shared by path sequences and standalone
// primitives: a bounding box and a way to apply an affine transform
// without mutating the receiver.
type Shape interface {
	Bounds() BBox
	Transform(a Affine) Shape
}

// CommandOp tags the variant held by a Command.
type CommandOp int

const (
	MoveToOp CommandOp = iota
	LineToOp
	CurveToOp
	ArcSegmentOp
	EllipticalArcOp
	ClosePathOp
)

// Command is one step of a Path. Only the fields relevant to Op are
// populated; unused fields are zero.
type Command struct {
	Op CommandOp

	// MoveTo, LineTo: P. CurveTo: C1, C2, P.
	P, C1, C2 Point

	// ArcSegment, EllipticalArc.
	Center              Point
	Radius              float64 // ArcSegment
	RadiusX, RadiusY     float64 // EllipticalArc
	RotationRad          float64 // EllipticalArc
	StartDeg, ExtentDeg  float64
}

func MoveTo(p Point) Command                 { return Command{Op: MoveToOp, P: p} }
func LineTo(p Point) Command                  { return Command{Op: LineToOp, P: p} }
func CurveTo(c1, c2, p Point) Command         { return Command{Op: CurveToOp, C1: c1, C2: c2, P: p} }
func ClosePath() Command                      { return Command{Op: ClosePathOp} }

func ArcSegment(center Point, radius, startDeg, extentDeg float64) Command {
	return Command{Op: ArcSegmentOp, Center: center, Radius: radius, StartDeg: startDeg, ExtentDeg: extentDeg}
}

func EllipticalArc(center Point, rx, ry, rotationRad, startDeg, extentDeg float64) Command {
	return Command{
		Op: EllipticalArcOp, Center: center, RadiusX: rx, RadiusY: ry,
		RotationRad: rotationRad, StartDeg: startDeg, ExtentDeg: extentDeg,
	}
}

// arcBounds returns the bounding box of a full circle of the given
// center/radius. Path commands don't try to bound the true swept
// extent of a partial arc tighter than its enclosing circle — the
// teacher's Java counterpart (Arc2D/Ellipse2D) makes the same
// simplification by framing the full ellipse.
func arcBounds(center Point, rx, ry float64) BBox {
	return BBox{
		Min: Point{X: center.X - rx, Y: center.Y - ry},
		Max: Point{X: center.X + rx, Y: center.Y + ry},
	}
}

func (c Command) bounds() BBox {
	switch c.Op {
	case MoveToOp, LineToOp:
		return BBox{Min: c.P, Max: c.P}
	case CurveToOp:
		b := BBox{Min: c.P, Max: c.P}
		b = b.Extend(c.C1)
		b = b.Extend(c.C2)
		return b
	case ArcSegmentOp:
		return arcBounds(c.Center, c.Radius, c.Radius)
	case EllipticalArcOp:
		return arcBounds(c.Center, c.RadiusX, c.RadiusY)
	default:
		return EmptyBBox()
	}
}

func (c Command) transform(a Affine) Command {
	out := c
	switch c.Op {
	case MoveToOp, LineToOp:
		out.P = a.Apply(c.P)
	case CurveToOp:
		out.C1 = a.Apply(c.C1)
		out.C2 = a.Apply(c.C2)
		out.P = a.Apply(c.P)
	case ArcSegmentOp:
		out.Center = a.Apply(c.Center)
		out.Radius = c.Radius * a.scaleMagnitude()
		out.StartDeg, out.ExtentDeg = a.transformSweep(c.StartDeg, c.ExtentDeg)
	case EllipticalArcOp:
		out.Center = a.Apply(c.Center)
		out.RadiusX = c.RadiusX * a.scaleMagnitude()
		out.RadiusY = c.RadiusY * a.scaleMagnitude()
		out.RotationRad = a.transformAngle(c.RotationRad)
		out.StartDeg, out.ExtentDeg = a.transformSweep(c.StartDeg, c.ExtentDeg)
	}
	return out
}

// Path is a sequence of path commands: the shape produced by Line,
// Polyline, LwPolyline, Spline, Text and MText.
type Path struct {
	Commands []Command
}

func (p Path) Bounds() BBox {
	b := EmptyBBox()
	for _, c := range p.Commands {
		b = Union(b, c.bounds())
	}
	return b
}

func (p Path) Transform(a Affine) Shape {
	out := Path{Commands: make([]Command, len(p.Commands))}
	for i, c := range p.Commands {
		out.Commands[i] = c.transform(a)
	}
	return out
}

// Append concatenates other's commands onto p.
func (p Path) Append(other Path) Path {
	p.Commands = append(p.Commands, other.Commands...)
	return p
}

// Circle is a standalone circle primitive (the shape produced by the
// CIRCLE entity).
type Circle struct {
	Center Point
	Radius float64
}

func (c Circle) Bounds() BBox { return arcBounds(c.Center, c.Radius, c.Radius) }

func (c Circle) Transform(a Affine) Shape {
	return Circle{Center: a.Apply(c.Center), Radius: c.Radius * a.scaleMagnitude()}
}

// Ellipse is a standalone, axis-rotated ellipse primitive.
type Ellipse struct {
	Center      Point
	RadiusX     float64
	RadiusY     float64
	RotationRad float64
}

func (e Ellipse) Bounds() BBox {
	// Conservative: bound the rotated ellipse by the circle of its
	// largest semi-axis: tight enough for the finalizer's fit-to-size
	// pass and exact for the unrotated case.
	r := math.Max(e.RadiusX, e.RadiusY)
	return arcBounds(e.Center, r, r)
}

func (e Ellipse) Transform(a Affine) Shape {
	return Ellipse{
		Center:      a.Apply(e.Center),
		RadiusX:     e.RadiusX * a.scaleMagnitude(),
		RadiusY:     e.RadiusY * a.scaleMagnitude(),
		RotationRad: a.transformAngle(e.RotationRad),
	}
}

// Arc is a standalone circular arc primitive (the shape produced by
// the ARC entity, as opposed to an ArcSegment command embedded in a
// Path by a bulge-carrying polyline edge).
type Arc struct {
	Center              Point
	Radius              float64
	StartDeg, ExtentDeg float64
}

func (a Arc) Bounds() BBox { return arcBounds(a.Center, a.Radius, a.Radius) }

func (ar Arc) Transform(a Affine) Shape {
	start, extent := a.transformSweep(ar.StartDeg, ar.ExtentDeg)
	return Arc{Center: a.Apply(ar.Center), Radius: ar.Radius * a.scaleMagnitude(), StartDeg: start, ExtentDeg: extent}
}

// ShapeGroup aggregates heterogeneous shapes behind a single Shape —
// used by Insert and Dimension for a block's children, which can mix
// paths and primitives and so can't all be flattened into one Path.
type ShapeGroup []Shape

func (g ShapeGroup) Bounds() BBox {
	b := EmptyBBox()
	for _, s := range g {
		b = Union(b, s.Bounds())
	}
	return b
}

func (g ShapeGroup) Transform(a Affine) Shape {
	out := make(ShapeGroup, len(g))
	for i, s := range g {
		out[i] = s.Transform(a)
	}
	return out
}
