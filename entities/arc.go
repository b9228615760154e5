package entities

import (
	"github.com/wholder/dxfreader/core"
	"github.com/wholder/dxfreader/geom"
)

// Arc captures a DXF ARC: center, radius, and CCW start/end angles.
// The emitted primitive uses the package's clockwise-sweep sampling
// convention (geom doc comment), so the raw DXF angles are negated and
// recombined into startDeg/extentDeg in GetShape.
type Arc struct {
	BaseEntity
	Center               geom.Point
	Radius               float64
	StartAngle, EndAngle float64

	scale float64
}

func init() {
	Register("ARC", func() Entity {
		return &Arc{BaseEntity: BaseEntity{TypeName: "ARC"}, scale: 1}
	})
}

func (a *Arc) AutoPop()           {}
func (a *Arc) SetScale(s float64) { a.scale = s }

func (a *Arc) AddParm(tag core.Tag) error {
	switch tag.Code {
	case 8:
		a.LayerName = tag.AsString()
	case 10:
		v, err := tag.AsFloatErr()
		if err != nil {
			return err
		}
		a.Center.X = v * a.scale
	case 20:
		v, err := tag.AsFloatErr()
		if err != nil {
			return err
		}
		a.Center.Y = v * a.scale
	case 40:
		v, err := tag.AsFloatErr()
		if err != nil {
			return err
		}
		a.Radius = v * a.scale
	case 50:
		v, err := tag.AsFloatErr()
		if err != nil {
			return err
		}
		a.StartAngle = v
	case 51:
		v, err := tag.AsFloatErr()
		if err != nil {
			return err
		}
		a.EndAngle = v
	}
	return nil
}

func (a *Arc) GetShape(_ *BlockDict) (geom.Shape, bool) {
	endAngle := a.EndAngle
	if endAngle < a.StartAngle {
		endAngle += 360
	}
	startDeg := -a.StartAngle
	extentDeg := a.StartAngle - endAngle
	return geom.Arc{Center: a.Center, Radius: a.Radius, StartDeg: startDeg, ExtentDeg: extentDeg}, true
}
