package dxf

import (
	"strings"

	"github.com/wholder/dxfreader/core"
	"github.com/wholder/dxfreader/entities"
)

// frame is one level of the interpreter stack.
type frame struct {
	entity  entities.Entity
	tainted bool
}

// opaqueContainer stands in for TABLE/ENDTAB: pushed and popped but
// never inspected.
type opaqueContainer struct{}

func (opaqueContainer) Type() string             { return "" }
func (opaqueContainer) AddParm(core.Tag) error   { return nil }
func (opaqueContainer) AddChild(entities.Entity) {}
func (opaqueContainer) Close()                   {}

// driver is the stack-based interpreter that turns a tag stream into a
// block dictionary and a top-level draw list. One driver per parse.
type driver struct {
	scale          float64
	unitLabel      string
	useMillimeters bool
	blocks         *entities.BlockDict

	stack   []frame
	current *frame

	header   map[string]string
	drawList []entities.DrawItem
}

func newDriver(useMillimeters bool) *driver {
	d := &driver{
		blocks:         entities.NewBlockDict(),
		header:         map[string]string{},
		useMillimeters: useMillimeters,
	}
	d.scale, d.unitLabel = resolveUnits(nil, useMillimeters)
	return d
}

// run drains the scanner, returning the MalformedStream error that
// aborted it (if any) or nil at clean EOF.
func (d *driver) run(scanner *core.Scanner) error {
	for scanner.Next() {
		tag := scanner.LastTag
		if tag.Code == 0 {
			d.handleKeyword(strings.ToUpper(tag.AsString()))
			continue
		}
		d.handleParm(tag)
	}
	d.closeAll()
	return scanner.Err()
}

func (d *driver) handleKeyword(keyword string) {
	// ATTRIB children of an INSERT arrive as ordinary code-0 entities,
	// but INSERT is otherwise self-closing on the very next code-0 —
	// so this has to run before the general AutoPop check below, or
	// the first attribute's arrival would close the INSERT early.
	if keyword == "ATTRIB" && d.current != nil {
		if _, ok := d.current.entity.(*entities.Insert); ok {
			attr := entities.Create("ATTRIB")
			d.applyScale(attr)
			d.push(attr)
			return
		}
	}

	if d.current != nil {
		if _, ok := d.current.entity.(entities.AutoPop); ok {
			d.pop()
		}
	}

	switch keyword {
	case "SECTION":
		d.push(entities.Create("SECTION"))

	case "ENDSEC":
		// Per the interpreter's own rule, the stack is simply cleared
		// here rather than unwound entity by entity: a section that
		// never saw its entities properly closed is already malformed.
		if len(d.stack) > 0 {
			if sec, ok := d.stack[0].entity.(*entities.Section); ok {
				sec.Close()
				if strings.ToUpper(sec.Name) == "HEADER" {
					for k, v := range sec.Variables {
						d.header[k] = v
					}
					d.scale, d.unitLabel = resolveUnits(d.header, d.useMillimeters)
				}
			}
		}
		d.stack = nil
		d.current = nil

	case "TABLE":
		d.push(opaqueContainer{})
	case "ENDTAB":
		d.pop()

	case "BLOCK":
		blk := entities.Create("BLOCK").(*entities.Block)
		blk.SetBlocks(d.blocks)
		d.applyScale(blk)
		d.push(blk)
	case "ENDBLK":
		d.pop()
		for d.current != nil {
			if _, ok := d.current.entity.(*entities.Block); !ok {
				break
			}
			d.pop()
		}

	case "POLYLINE":
		pl := entities.Create("POLYLINE")
		d.applyScale(pl)
		d.push(pl)

	case "VERTEX":
		if d.current != nil {
			if _, isVertex := d.current.entity.(*entities.Vertex); isVertex {
				d.pop()
			}
		}
		v := entities.Create("VERTEX")
		d.applyScale(v)
		d.push(v)

	case "SEQEND":
		for d.current != nil {
			if _, isBlock := d.current.entity.(*entities.Block); isBlock {
				break
			}
			d.pop()
		}

	default:
		ent := entities.Create(keyword)
		if ent == nil {
			return // UnknownEntityType: silently skipped
		}
		d.applyScale(ent)
		d.push(ent)
	}
}

func (d *driver) applyScale(ent entities.Entity) {
	if scaled, ok := ent.(entities.UnitScaled); ok {
		scaled.SetScale(d.scale)
	}
}

func (d *driver) push(e entities.Entity) {
	d.stack = append(d.stack, frame{entity: e})
	d.current = &d.stack[len(d.stack)-1]
}

// pop closes the top frame and, unless it was tainted by a
// MalformedNumeric error, hands it to whatever now owns it: the new
// top's AddChild, or the top-level draw list if the stack is empty.
func (d *driver) pop() {
	if len(d.stack) == 0 {
		d.current = nil
		return
	}
	top := d.stack[len(d.stack)-1]
	closeSafely(top.entity)
	d.stack = d.stack[:len(d.stack)-1]

	if len(d.stack) == 0 {
		d.current = nil
	} else {
		d.current = &d.stack[len(d.stack)-1]
	}

	if !top.tainted {
		d.addEntity(top.entity)
	}
}

// addEntity implements the addEntity(e) policy: a block generated
// internally by a DIMENSION (flag bit 2) promotes its INSERT straight
// to the top-level draw list rather than nesting it under the block.
// A SECTION frame is transparent for this purpose too — it stays on
// the stack until ENDSEC clears it along with everything above it, or
// until a SEQEND outside any BLOCK pops it, so an entity popped with a
// SECTION (or nothing) as the new top is really a top-level entity,
// not a child of the section.
func (d *driver) addEntity(e entities.Entity) {
	if d.current == nil {
		if item, ok := e.(entities.DrawItem); ok {
			d.drawList = append(d.drawList, item)
		}
		return
	}
	if _, ok := d.current.entity.(*entities.Section); ok {
		if item, ok := e.(entities.DrawItem); ok {
			d.drawList = append(d.drawList, item)
		}
		return
	}
	if blk, ok := d.current.entity.(*entities.Block); ok {
		if _, isInsert := e.(*entities.Insert); isInsert && blk.AnonymousFromDimension() {
			if item, ok := e.(entities.DrawItem); ok {
				d.drawList = append(d.drawList, item)
			}
			return
		}
	}
	d.current.entity.AddChild(e)
}

func (d *driver) handleParm(tag core.Tag) {
	if d.current == nil {
		return
	}
	if err := d.current.entity.AddParm(tag); err != nil {
		d.current.tainted = true
	}
}

func (d *driver) closeAll() {
	for len(d.stack) > 0 {
		d.pop()
	}
}

// closeSafely runs an entity's Close hook without letting a panic in
// one entity's teardown stop the sweep from reaching the rest.
func closeSafely(e entities.Entity) {
	defer func() { recover() }()
	e.Close()
}
