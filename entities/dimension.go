package entities

import (
	"github.com/wholder/dxfreader/core"
	"github.com/wholder/dxfreader/geom"
)

// Dimension only needs enough to find its anonymous geometry block:
// GetShape appends that block's children unmodified, same as the
// source this was built against — the dimension line, extension lines
// and text are already baked into the block by whatever produced the
// file.
type Dimension struct {
	BaseEntity
	BlockName string
}

func init() {
	Register("DIMENSION", func() Entity {
		return &Dimension{BaseEntity: BaseEntity{TypeName: "DIMENSION"}}
	})
}

func (d *Dimension) AutoPop() {}

func (d *Dimension) AddParm(tag core.Tag) error {
	switch tag.Code {
	case 8:
		d.LayerName = tag.AsString()
	case 2:
		d.BlockName = tag.AsString()
	}
	return nil
}

func (d *Dimension) GetShape(dict *BlockDict) (geom.Shape, bool) {
	block, ok := dict.Lookup(d.BlockName)
	if !ok || len(block.Children) == 0 {
		return nil, false
	}
	group := make(geom.ShapeGroup, 0, len(block.Children))
	for _, child := range block.Children {
		if shape, ok := child.GetShape(dict); ok {
			group = append(group, shape)
		}
	}
	if len(group) == 0 {
		return nil, false
	}
	return group, true
}
