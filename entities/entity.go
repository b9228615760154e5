// Package entities holds one interpreter per supported DXF object type.
// Each interpreter consumes non-structural groups through AddParm,
// optionally adopts finished sub-entities through AddChild, is closed
// exactly once when the driver pops it, and builds its geometry in
// GetShape when the finalizer asks for it. This is
// a flat family behind a handful of small interfaces rather than a
// class hierarchy: the driver's dispatch stays explicit and a new
// entity type is a new file, not a new branch in existing ones.
package entities

import (
	"github.com/wholder/dxfreader/core"
	"github.com/wholder/dxfreader/geom"
	"github.com/wholder/dxfreader/glyph"
)

// DefaultOutliner is the glyph.Outliner new Text/MText entities are
// constructed with. Parser.Parse sets it to the Parser's outliner
// before a parse begins; nothing in this package calls it mid-parse.
var DefaultOutliner glyph.Outliner = glyph.Placeholder{}

// SetOutliner overrides DefaultOutliner.
func SetOutliner(o glyph.Outliner) {
	if o == nil {
		o = glyph.Placeholder{}
	}
	DefaultOutliner = o
}

// Entity is the capability set every interpreter implements.
type Entity interface {
	Type() string
	AddParm(tag core.Tag) error
	AddChild(child Entity)
	Close()
}

// DrawItem is an Entity that can resolve to a shape. Not every Entity
// is a DrawItem: Section, Block and Vertex never produce geometry of
// their own. The block dictionary is threaded through the call rather
// than captured at parse time, since a block's definition may legally
// appear after its insertion in the file — resolution happens lazily,
// once, during the finalizer's pass over the top-level draw list.
type DrawItem interface {
	Entity
	GetShape(dict *BlockDict) (geom.Shape, bool)
}

// AutoPop marks an Entity that terminates implicitly: the driver pops
// it as soon as the next group-0 keyword arrives, rather than waiting
// for an explicit closing keyword (SEQEND, ENDBLK, ...).
type AutoPop interface {
	AutoPop()
}

// UnitScaled is implemented by entities whose coordinate groups need
// the resolved inches-per-unit factor as they're read.
type UnitScaled interface {
	SetScale(scale float64)
}

// BaseEntity carries the state common to every interpreter: its type
// keyword and owning layer. Embedding it satisfies Type() and gives
// AddChild/Close harmless defaults for entities that never receive
// children and need no finalization step.
type BaseEntity struct {
	TypeName  string
	LayerName string
}

func (b *BaseEntity) Type() string   { return b.TypeName }
func (b *BaseEntity) Layer() string  { return b.LayerName }
func (b *BaseEntity) AddChild(Entity) {}
func (b *BaseEntity) Close()          {}

// Factory constructs a fresh, zeroed interpreter for one entity
// keyword.
type Factory func() Entity

var registry = map[string]Factory{}

// Register adds a keyword to the registry. Called from each
// interpreter file's init.
func Register(keyword string, factory Factory) {
	registry[keyword] = factory
}

// Create builds the interpreter for keyword, or nil if the keyword is
// unrecognized — the driver's UnknownEntityType case.
func Create(keyword string) Entity {
	if factory, ok := registry[keyword]; ok {
		return factory()
	}
	return nil
}
