package entities

import (
	"math"

	"github.com/wholder/dxfreader/core"
	"github.com/wholder/dxfreader/geom"
)

// Insert places a block's children under an affine transform. The
// transform is assembled in the same order the AffineTransform calls
// behind this were: base-point translate innermost (applied only when
// the block declares a non-zero base point — the ordering here matches
// the source this was built against, which tracks a known TODO rather
// than the alternative, strictly-correct DXF rule T(ix,iy)·R·S·T(-base)),
// then rotation, then axis scale, then the insertion-point translate
// outermost.
type Insert struct {
	BaseEntity
	BlockName      string
	InsertionPoint geom.Point
	ScaleX         float64
	ScaleY         float64
	ScaleZ         float64
	Rotation       float64
	HasAttributes  bool
	Attributes     []*Attrib

	scale float64
}

func init() {
	Register("INSERT", func() Entity {
		return &Insert{
			BaseEntity: BaseEntity{TypeName: "INSERT"},
			ScaleX:     1, ScaleY: 1, ScaleZ: 1,
			scale: 1,
		}
	})
}

func (i *Insert) AutoPop()           {}
func (i *Insert) SetScale(s float64) { i.scale = s }

func (i *Insert) AddParm(tag core.Tag) error {
	switch tag.Code {
	case 2:
		i.BlockName = tag.AsString()
	case 8:
		i.LayerName = tag.AsString()
	case 10:
		v, err := tag.AsFloatErr()
		if err != nil {
			return err
		}
		i.InsertionPoint.X = v * i.scale
	case 20:
		v, err := tag.AsFloatErr()
		if err != nil {
			return err
		}
		i.InsertionPoint.Y = v * i.scale
	case 41:
		v, err := tag.AsFloatErr()
		if err != nil {
			return err
		}
		i.ScaleX = v
	case 42:
		v, err := tag.AsFloatErr()
		if err != nil {
			return err
		}
		i.ScaleY = v
	case 43:
		v, err := tag.AsFloatErr()
		if err != nil {
			return err
		}
		i.ScaleZ = v
	case 50:
		v, err := tag.AsFloatErr()
		if err != nil {
			return err
		}
		i.Rotation = v
	case 66:
		n, err := tag.AsIntErr()
		if err != nil {
			return err
		}
		i.HasAttributes = n == 1
	}
	return nil
}

func (i *Insert) AddChild(child Entity) {
	if attr, ok := child.(*Attrib); ok {
		i.Attributes = append(i.Attributes, attr)
	}
}

func (i *Insert) GetShape(dict *BlockDict) (geom.Shape, bool) {
	block, ok := dict.Lookup(i.BlockName)
	if !ok || len(block.Children) == 0 {
		return nil, false
	}

	rotRad := i.Rotation * math.Pi / 180
	if i.ScaleX < 0 {
		rotRad = -rotRad
	}
	rot := geom.Rotate(rotRad)

	sx := i.ScaleX
	if i.ScaleZ < 0 {
		sx = -sx
	}
	scale := geom.Scale(sx, i.ScaleY)

	tx, ty := i.InsertionPoint.X, i.InsertionPoint.Y
	if i.ScaleZ < 0 {
		tx = -tx
	}
	outer := geom.Translate(tx, ty)

	t := geom.Identity()
	if block.BaseX != 0 || block.BaseY != 0 {
		t = geom.Translate(block.BaseX, block.BaseY)
	}
	t = geom.Compose(rot, t)
	t = geom.Compose(scale, t)
	t = geom.Compose(outer, t)

	group := make(geom.ShapeGroup, 0, len(block.Children))
	for _, child := range block.Children {
		shape, ok := child.GetShape(dict)
		if !ok {
			continue
		}
		group = append(group, shape.Transform(t))
	}
	if len(group) == 0 {
		return nil, false
	}
	return group, true
}
