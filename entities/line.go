package entities

import (
	"github.com/wholder/dxfreader/core"
	"github.com/wholder/dxfreader/geom"
)

// Line is the simplest DrawItem: two endpoints, one LineTo.
type Line struct {
	BaseEntity
	Start, End geom.Point

	scale float64
}

func init() {
	Register("LINE", func() Entity {
		return &Line{BaseEntity: BaseEntity{TypeName: "LINE"}, scale: 1}
	})
}

func (l *Line) AutoPop()           {}
func (l *Line) SetScale(s float64) { l.scale = s }

func (l *Line) AddParm(tag core.Tag) error {
	switch tag.Code {
	case 8:
		l.LayerName = tag.AsString()
	case 10:
		v, err := tag.AsFloatErr()
		if err != nil {
			return err
		}
		l.Start.X = v * l.scale
	case 20:
		v, err := tag.AsFloatErr()
		if err != nil {
			return err
		}
		l.Start.Y = v * l.scale
	case 11:
		v, err := tag.AsFloatErr()
		if err != nil {
			return err
		}
		l.End.X = v * l.scale
	case 21:
		v, err := tag.AsFloatErr()
		if err != nil {
			return err
		}
		l.End.Y = v * l.scale
	}
	return nil
}

func (l *Line) GetShape(_ *BlockDict) (geom.Shape, bool) {
	return geom.Path{Commands: []geom.Command{geom.MoveTo(l.Start), geom.LineTo(l.End)}}, true
}
