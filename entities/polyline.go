package entities

import (
	"github.com/wholder/dxfreader/core"
	"github.com/wholder/dxfreader/geom"
)

// Polyline does not auto-pop: it waits for an explicit SEQEND, since
// its children (Vertex entities) arrive as their own pushed/popped
// entities in between.
type Polyline struct {
	BaseEntity
	Closed   bool
	Vertices []*Vertex
}

func init() {
	Register("POLYLINE", func() Entity { return &Polyline{BaseEntity: BaseEntity{TypeName: "POLYLINE"}} })
}

func (p *Polyline) AddParm(tag core.Tag) error {
	switch tag.Code {
	case 8:
		p.LayerName = tag.AsString()
	case 70:
		flags, err := tag.AsIntErr()
		if err != nil {
			return err
		}
		p.Closed = flags&1 != 0
	}
	return nil
}

func (p *Polyline) AddChild(child Entity) {
	if v, ok := child.(*Vertex); ok {
		p.Vertices = append(p.Vertices, v)
	}
}

func (p *Polyline) GetShape(_ *BlockDict) (geom.Shape, bool) {
	if len(p.Vertices) == 0 {
		return nil, false
	}
	cmds := []geom.Command{geom.MoveTo(p.Vertices[0].Point)}
	for i := 1; i < len(p.Vertices); i++ {
		prev, cur := p.Vertices[i-1], p.Vertices[i]
		if prev.Bulge != 0 {
			cmds = append(cmds, geom.ArcFromBulge(prev.Point, cur.Point, prev.Bulge))
		} else {
			cmds = append(cmds, geom.LineTo(cur.Point))
		}
	}
	if p.Closed {
		last := p.Vertices[len(p.Vertices)-1]
		first := p.Vertices[0]
		if last.Bulge != 0 {
			cmds = append(cmds, geom.ArcFromBulge(last.Point, first.Point, last.Bulge))
		} else {
			cmds = append(cmds, geom.ClosePath())
		}
	}
	return geom.Path{Commands: cmds}, true
}
