package geom

import (
	"math"
	"testing"

	"github.com/zooyer/golib/xmath"
)

// sampleArc evaluates the package's Arc/ArcSegment sampling convention:
// center + (radius*cos(t), -radius*sin(t)).
func sampleArc(center Point, radius, deg float64) Point {
	rad := deg * math.Pi / 180
	return Point{X: center.X + radius*math.Cos(rad), Y: center.Y - radius*math.Sin(rad)}
}

// Scenario 2 — Bulge half-circle: a single arc segment from (0,0) to
// (1,0) with bulge 1, a full 180 degree included angle.
func TestArcFromBulge_HalfCircle(t *testing.T) {
	cmd := ArcFromBulge(Point{0, 0}, Point{1, 0}, 1)

	if cmd.Op != ArcSegmentOp {
		t.Fatalf("expected ArcSegmentOp, got %v", cmd.Op)
	}
	if !xmath.Equal(math.Abs(cmd.ExtentDeg), 180, 1e-6) {
		t.Fatalf("expected a 180 degree sweep, got %v", cmd.ExtentDeg)
	}
	if !xmath.Equal(cmd.Radius, 0.5, 1e-6) {
		t.Fatalf("expected radius 0.5, got %v", cmd.Radius)
	}
}

func TestArcFromBulge_Endpoints(t *testing.T) {
	p1, p2 := Point{0, 0}, Point{1, 0}
	cmd := ArcFromBulge(p1, p2, 1)

	start := sampleArc(cmd.Center, cmd.Radius, cmd.StartDeg)
	if !xmath.Equal(start.X, p1.X, 1e-6) || !xmath.Equal(start.Y, p1.Y, 1e-6) {
		t.Fatalf("arc does not start at p1: got %+v", start)
	}

	end := sampleArc(cmd.Center, cmd.Radius, cmd.StartDeg+cmd.ExtentDeg)
	if !xmath.Equal(end.X, p2.X, 1e-6) || !xmath.Equal(end.Y, p2.Y, 1e-6) {
		t.Fatalf("arc does not end at p2: got %+v", end)
	}
}

// A negative bulge sweeps the other way round the same chord but must
// still land on the same two endpoints.
func TestArcFromBulge_NegativeBulgeEndpoints(t *testing.T) {
	p1, p2 := Point{0, 0}, Point{2, 0}
	cmd := ArcFromBulge(p1, p2, -0.5)

	start := sampleArc(cmd.Center, cmd.Radius, cmd.StartDeg)
	if !xmath.Equal(start.X, p1.X, 1e-6) || !xmath.Equal(start.Y, p1.Y, 1e-6) {
		t.Fatalf("arc does not start at p1: got %+v", start)
	}

	end := sampleArc(cmd.Center, cmd.Radius, cmd.StartDeg+cmd.ExtentDeg)
	if !xmath.Equal(end.X, p2.X, 1e-6) || !xmath.Equal(end.Y, p2.Y, 1e-6) {
		t.Fatalf("arc does not end at p2: got %+v", end)
	}
	if cmd.ExtentDeg <= 0 {
		t.Fatalf("expected a positive (counterclockwise) sweep for negative bulge, got %v", cmd.ExtentDeg)
	}
}
