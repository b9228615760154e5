package entities

import (
	"math"

	"github.com/wholder/dxfreader/core"
	"github.com/wholder/dxfreader/geom"
)

// Ellipse builds an axis-aligned ellipse from a center, a major-axis
// endpoint offset, and a minor/major ratio, then rotates it into
// place. Start/end parameters are captured but unused: the spec this
// was built against leaves partial elliptical arcs as an open
// question, and the source it traces to never applied them either.
type Ellipse struct {
	BaseEntity
	Center       geom.Point
	MajorOffsetX float64
	MajorOffsetY float64
	Ratio        float64
	StartParam   float64
	EndParam     float64

	scale float64
}

func init() {
	Register("ELLIPSE", func() Entity {
		return &Ellipse{BaseEntity: BaseEntity{TypeName: "ELLIPSE"}, scale: 1}
	})
}

func (e *Ellipse) AutoPop()           {}
func (e *Ellipse) SetScale(s float64) { e.scale = s }

func (e *Ellipse) AddParm(tag core.Tag) error {
	switch tag.Code {
	case 8:
		e.LayerName = tag.AsString()
	case 10:
		v, err := tag.AsFloatErr()
		if err != nil {
			return err
		}
		e.Center.X = v * e.scale
	case 20:
		v, err := tag.AsFloatErr()
		if err != nil {
			return err
		}
		e.Center.Y = v * e.scale
	case 11:
		v, err := tag.AsFloatErr()
		if err != nil {
			return err
		}
		e.MajorOffsetX = v * e.scale
	case 21:
		v, err := tag.AsFloatErr()
		if err != nil {
			return err
		}
		e.MajorOffsetY = v * e.scale
	case 40:
		v, err := tag.AsFloatErr()
		if err != nil {
			return err
		}
		e.Ratio = v
	case 41:
		v, err := tag.AsFloatErr()
		if err != nil {
			return err
		}
		e.StartParam = v
	case 42:
		v, err := tag.AsFloatErr()
		if err != nil {
			return err
		}
		e.EndParam = v
	}
	return nil
}

func (e *Ellipse) GetShape(_ *BlockDict) (geom.Shape, bool) {
	major := math.Hypot(e.MajorOffsetX, e.MajorOffsetY)
	return geom.Ellipse{
		Center:      e.Center,
		RadiusX:     major,
		RadiusY:     major * e.Ratio,
		RotationRad: math.Atan2(e.MajorOffsetY, e.MajorOffsetX),
	}, true
}
