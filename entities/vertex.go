package entities

import (
	"github.com/wholder/dxfreader/core"
	"github.com/wholder/dxfreader/geom"
)

// Vertex is only ever a child of a Polyline. Its bulge, if non-zero,
// describes the arc from this vertex to the next — not to itself.
type Vertex struct {
	BaseEntity
	Point geom.Point
	Bulge float64

	scale float64
}

func init() {
	Register("VERTEX", func() Entity {
		return &Vertex{BaseEntity: BaseEntity{TypeName: "VERTEX"}, scale: 1}
	})
}

func (v *Vertex) AutoPop()           {}
func (v *Vertex) SetScale(s float64) { v.scale = s }

func (v *Vertex) AddParm(tag core.Tag) error {
	switch tag.Code {
	case 10:
		f, err := tag.AsFloatErr()
		if err != nil {
			return err
		}
		v.Point.X = f * v.scale
	case 20:
		f, err := tag.AsFloatErr()
		if err != nil {
			return err
		}
		v.Point.Y = f * v.scale
	case 42:
		f, err := tag.AsFloatErr()
		if err != nil {
			return err
		}
		v.Bulge = f
	}
	return nil
}
