package entities

import (
	"github.com/wholder/dxfreader/core"
	"github.com/wholder/dxfreader/geom"
)

// Spline reconstructs a Catmull-Rom-equivalent curve through its
// control points — an accepted stand-in for the true NURBS a DXF
// SPLINE nominally encodes.
type Spline struct {
	BaseEntity
	Closed       bool
	NumControl   int
	ControlPoint []geom.Point

	scale float64
	pendX float64
	haveX bool
}

func init() {
	Register("SPLINE", func() Entity {
		return &Spline{BaseEntity: BaseEntity{TypeName: "SPLINE"}, scale: 1}
	})
}

func (s *Spline) AutoPop()           {}
func (s *Spline) SetScale(v float64) { s.scale = v }

func (s *Spline) AddParm(tag core.Tag) error {
	switch tag.Code {
	case 8:
		s.LayerName = tag.AsString()
	case 70:
		flags, err := tag.AsIntErr()
		if err != nil {
			return err
		}
		s.Closed = flags&1 != 0
	case 73:
		n, err := tag.AsIntErr()
		if err != nil {
			return err
		}
		s.NumControl = n
	case 10:
		x, err := tag.AsFloatErr()
		if err != nil {
			return err
		}
		s.pendX, s.haveX = x*s.scale, true
	case 20:
		if !s.haveX {
			return nil
		}
		y, err := tag.AsFloatErr()
		if err != nil {
			return err
		}
		s.ControlPoint = append(s.ControlPoint, geom.Point{X: s.pendX, Y: y * s.scale})
		s.haveX = false
	}
	return nil
}

func (s *Spline) GetShape(_ *BlockDict) (geom.Shape, bool) {
	if len(s.ControlPoint) == 0 || (s.NumControl > 0 && len(s.ControlPoint) < s.NumControl) {
		return nil, false
	}
	cmds := geom.CatmullRomToBezier(s.ControlPoint, s.Closed)
	if s.Closed {
		cmds = append(cmds, geom.ClosePath())
	}
	return geom.Path{Commands: cmds}, true
}
