package entities

import (
	"github.com/wholder/dxfreader/core"
	"github.com/wholder/dxfreader/geom"
)

// Attrib is an INSERT's attached attribute text. The driver pushes it
// onto its stack like any entity; when popped it is handed to the
// enclosing Insert's AddChild rather than the draw list. It has no
// GetShape, so it is not a DrawItem and produces no geometry of its own.
type Attrib struct {
	BaseEntity
	Location geom.Point
	Tag      string
	Text     string
	Height   float64

	scale float64
}

func init() {
	Register("ATTRIB", func() Entity {
		return &Attrib{BaseEntity: BaseEntity{TypeName: "ATTRIB"}, scale: 1}
	})
}

func (a *Attrib) AutoPop()           {}
func (a *Attrib) SetScale(s float64) { a.scale = s }

func (a *Attrib) AddParm(tag core.Tag) error {
	switch tag.Code {
	case 8:
		a.LayerName = tag.AsString()
	case 10:
		v, err := tag.AsFloatErr()
		if err != nil {
			return err
		}
		a.Location.X = v * a.scale
	case 20:
		v, err := tag.AsFloatErr()
		if err != nil {
			return err
		}
		a.Location.Y = v * a.scale
	case 40:
		v, err := tag.AsFloatErr()
		if err != nil {
			return err
		}
		a.Height = v
	case 1:
		a.Text = tag.AsString()
	case 2:
		a.Tag = tag.AsString()
	}
	return nil
}
