package entities

import "github.com/wholder/dxfreader/core"

// Block collects the entities between a BLOCK/ENDBLK pair. It never
// produces a shape of its own; INSERT resolves it lazily against the
// shared BlockDict.
type Block struct {
	BaseEntity
	Name         string
	BaseX, BaseY float64
	Flags        int
	Children     []DrawItem

	dict  *BlockDict
	scale float64
}

func init() {
	Register("BLOCK", func() Entity {
		return &Block{BaseEntity: BaseEntity{TypeName: "BLOCK"}, scale: 1}
	})
}

func (b *Block) SetBlocks(dict *BlockDict) { b.dict = dict }
func (b *Block) SetScale(s float64)        { b.scale = s }

func (b *Block) AddParm(tag core.Tag) error {
	switch tag.Code {
	case 2:
		b.Name = tag.AsString()
		if b.dict != nil && b.Name != "" {
			b.dict.Register(b)
		}
	case 8:
		b.LayerName = tag.AsString()
	case 10:
		x, err := tag.AsFloatErr()
		if err != nil {
			return err
		}
		b.BaseX = x * b.scale
	case 20:
		y, err := tag.AsFloatErr()
		if err != nil {
			return err
		}
		b.BaseY = y * b.scale
	case 70:
		flags, err := tag.AsIntErr()
		if err != nil {
			return err
		}
		b.Flags = flags
	}
	return nil
}

func (b *Block) AddChild(child Entity) {
	if item, ok := child.(DrawItem); ok {
		b.Children = append(b.Children, item)
	}
}

// AnonymousFromDimension reports whether this block was generated
// internally by a DIMENSION entity (flag bit 2, value 4), which the
// driver promotes straight to the top-level draw list instead of
// nesting under the block.
func (b *Block) AnonymousFromDimension() bool {
	return b.Flags&4 != 0
}

// BlockDict is the process-wide (per parse) map from block name to its
// definition. Populated during the BLOCKS section; consulted lazily by
// INSERT and DIMENSION while building shapes.
type BlockDict struct {
	blocks map[string]*Block
}

func NewBlockDict() *BlockDict {
	return &BlockDict{blocks: map[string]*Block{}}
}

func (d *BlockDict) Register(b *Block) {
	d.blocks[b.Name] = b
}

func (d *BlockDict) Lookup(name string) (*Block, bool) {
	b, ok := d.blocks[name]
	return b, ok
}
