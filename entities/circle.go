package entities

import (
	"github.com/wholder/dxfreader/core"
	"github.com/wholder/dxfreader/geom"
)

type Circle struct {
	BaseEntity
	Center geom.Point
	Radius float64

	scale float64
}

func init() {
	Register("CIRCLE", func() Entity {
		return &Circle{BaseEntity: BaseEntity{TypeName: "CIRCLE"}, scale: 1}
	})
}

func (c *Circle) AutoPop()           {}
func (c *Circle) SetScale(s float64) { c.scale = s }

func (c *Circle) AddParm(tag core.Tag) error {
	switch tag.Code {
	case 8:
		c.LayerName = tag.AsString()
	case 10:
		v, err := tag.AsFloatErr()
		if err != nil {
			return err
		}
		c.Center.X = v * c.scale
	case 20:
		v, err := tag.AsFloatErr()
		if err != nil {
			return err
		}
		c.Center.Y = v * c.scale
	case 40:
		v, err := tag.AsFloatErr()
		if err != nil {
			return err
		}
		c.Radius = v * c.scale
	}
	return nil
}

func (c *Circle) GetShape(_ *BlockDict) (geom.Shape, bool) {
	return geom.Circle{Center: c.Center, Radius: c.Radius}, true
}
