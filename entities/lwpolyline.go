package entities

import (
	"github.com/wholder/dxfreader/core"
	"github.com/wholder/dxfreader/geom"
)

type lwSegment struct {
	Point geom.Point
	Bulge float64
}

// LwPolyline carries its own flat vertex list (unlike Polyline, it
// never sees child Vertex entities) — each (10,20) pair opens a new
// segment, and a following 42 before the next 10 sets that segment's
// bulge.
type LwPolyline struct {
	BaseEntity
	Closed   bool
	Count    int
	Segments []lwSegment

	scale   float64
	pendX   float64
	haveX   bool
}

func init() {
	Register("LWPOLYLINE", func() Entity {
		return &LwPolyline{BaseEntity: BaseEntity{TypeName: "LWPOLYLINE"}, scale: 1}
	})
}

func (l *LwPolyline) AutoPop()           {}
func (l *LwPolyline) SetScale(s float64) { l.scale = s }

func (l *LwPolyline) AddParm(tag core.Tag) error {
	switch tag.Code {
	case 8:
		l.LayerName = tag.AsString()
	case 70:
		flags, err := tag.AsIntErr()
		if err != nil {
			return err
		}
		l.Closed = flags&1 != 0
	case 90:
		n, err := tag.AsIntErr()
		if err != nil {
			return err
		}
		l.Count = n
	case 10:
		x, err := tag.AsFloatErr()
		if err != nil {
			return err
		}
		l.pendX, l.haveX = x*l.scale, true
	case 20:
		if !l.haveX {
			return nil
		}
		y, err := tag.AsFloatErr()
		if err != nil {
			return err
		}
		l.Segments = append(l.Segments, lwSegment{Point: geom.Point{X: l.pendX, Y: y * l.scale}})
		l.haveX = false
	case 42:
		if len(l.Segments) == 0 {
			return nil
		}
		b, err := tag.AsFloatErr()
		if err != nil {
			return err
		}
		l.Segments[len(l.Segments)-1].Bulge = b
	}
	return nil
}

func (l *LwPolyline) GetShape(_ *BlockDict) (geom.Shape, bool) {
	if len(l.Segments) == 0 {
		return nil, false
	}
	cmds := []geom.Command{geom.MoveTo(l.Segments[0].Point)}
	for i := 1; i < len(l.Segments); i++ {
		prev, cur := l.Segments[i-1], l.Segments[i]
		if prev.Bulge != 0 {
			cmds = append(cmds, geom.ArcFromBulge(prev.Point, cur.Point, prev.Bulge))
		} else {
			cmds = append(cmds, geom.LineTo(cur.Point))
		}
	}
	if l.Closed {
		last := l.Segments[len(l.Segments)-1]
		first := l.Segments[0]
		if last.Bulge != 0 {
			cmds = append(cmds, geom.ArcFromBulge(last.Point, first.Point, last.Bulge))
		} else {
			// Intentionally LineTo rather than ClosePath, matching the
			// source this was built against: the straight closing edge
			// stays an explicit segment in the emitted path.
			cmds = append(cmds, geom.LineTo(first.Point))
		}
	}
	return geom.Path{Commands: cmds}, true
}
