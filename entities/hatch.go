package entities

import (
	"github.com/wholder/dxfreader/core"
	"github.com/wholder/dxfreader/geom"
)

// Hatch is accepted and kept off the stack cleanly so it doesn't
// disturb surrounding entities, but it never produces a shape: fill
// pattern boundaries are out of scope here.
type Hatch struct {
	BaseEntity
}

func init() {
	Register("HATCH", func() Entity { return &Hatch{BaseEntity: BaseEntity{TypeName: "HATCH"}} })
}

func (h *Hatch) AutoPop() {}

func (h *Hatch) AddParm(tag core.Tag) error {
	if tag.Code == 8 {
		h.LayerName = tag.AsString()
	}
	return nil
}

func (h *Hatch) GetShape(*BlockDict) (geom.Shape, bool) { return nil, false }
