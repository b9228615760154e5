// Package dxf parses an ASCII DXF drawing into an ordered list of
// planar shapes in inches, fit to a caller-supplied size window.
package dxf

import (
	"fmt"
	"io"
	"os"

	"github.com/wholder/dxfreader/core"
	"github.com/wholder/dxfreader/entities"
	"github.com/wholder/dxfreader/geom"
	"github.com/wholder/dxfreader/glyph"
)

// Parser holds the pre-parse toggles. The zero value is not usable;
// construct one with NewParser.
type Parser struct {
	drawText       bool
	drawMText      bool
	drawDimen      bool
	useMillimeters bool
	outliner       glyph.Outliner
}

// NewParser returns a Parser with every toggle at its documented
// default: text/mtext/dimension drawing off, millimeters as the
// unitless fallback.
func NewParser() *Parser {
	return &Parser{useMillimeters: true, outliner: glyph.Placeholder{}}
}

func (p *Parser) SetDrawText(v bool)       { p.drawText = v }
func (p *Parser) SetDrawMText(v bool)      { p.drawMText = v }
func (p *Parser) SetDrawDimen(v bool)      { p.drawDimen = v }
func (p *Parser) SetUseMillimeters(v bool) { p.useMillimeters = v }

// SetOutliner overrides the glyph.Outliner TEXT/MTEXT entities render
// through. Takes effect on the next call to Parse.
func (p *Parser) SetOutliner(o glyph.Outliner) {
	if o == nil {
		o = glyph.Placeholder{}
	}
	p.outliner = o
}

// Document is the result of a successful Parse: the resolved shape
// list plus the metadata the finalizer observed along the way.
type Document struct {
	header map[string]string
	shapes []geom.Shape
	bounds geom.BBox
	unit   string
	scaled bool
}

// noHeaderValue is returned by HeaderVariable when name was never set.
const noHeaderValue = "no header"

func (d *Document) HeaderVariable(name string) string {
	if v, ok := d.header[name]; ok {
		return v
	}
	return noHeaderValue
}

func (d *Document) Shapes() []geom.Shape { return d.shapes }
func (d *Document) Bounds() geom.BBox    { return d.bounds }
func (d *Document) Units() string        { return d.unit }
func (d *Document) Scaled() bool         { return d.scaled }
func (d *Document) Empty() bool          { return len(d.shapes) == 0 }

// Parse reads a complete DXF stream and produces a Document. maxSize
// <= 0 disables downscaling; minSize <= 0 disables upscaling.
func (p *Parser) Parse(r io.Reader, maxSize, minSize float64) (*Document, error) {
	entities.SetOutliner(p.outliner)

	d := newDriver(p.useMillimeters)

	scanner := core.NewScanner(r)
	if err := d.run(scanner); err != nil {
		return nil, fmt.Errorf("parsing dxf stream: %w", err)
	}

	return p.finalize(d, maxSize, minSize), nil
}

// finalize implements 4.I: union the enabled draw items' bounds, then
// apply a uniform scale-to-fit with a baked-in Y-flip so the drawing's
// +Y axis becomes screen-down origin-aligned.
func (p *Parser) finalize(d *driver, maxSize, minSize float64) *Document {
	var filtered []geom.Shape
	bounds := geom.EmptyBBox()

	for _, item := range d.drawList {
		switch item.(type) {
		case *entities.Text:
			if !p.drawText {
				continue
			}
		case *entities.MText:
			if !p.drawMText {
				continue
			}
		case *entities.Dimension:
			if !p.drawDimen {
				continue
			}
		}
		shape, ok := item.GetShape(d.blocks)
		if !ok {
			continue
		}
		filtered = append(filtered, shape)
		bounds = geom.Union(bounds, shape.Bounds())
	}

	doc := &Document{header: d.header, bounds: bounds, unit: d.unitLabel}

	if bounds.Empty() {
		return doc
	}

	maxAxis := bounds.Width()
	if bounds.Height() > maxAxis {
		maxAxis = bounds.Height()
	}

	scale := 1.0
	switch {
	case maxSize > 0 && maxAxis > maxSize:
		scale = maxSize / maxAxis
		doc.scaled = true
	case minSize > 0 && maxAxis < minSize:
		scale = minSize / maxAxis
		doc.scaled = true
	}

	t := geom.Compose(geom.Scale(scale, -scale), geom.Translate(-bounds.Min.X, -bounds.Min.Y-bounds.Height()))

	doc.shapes = make([]geom.Shape, len(filtered))
	for i, s := range filtered {
		doc.shapes[i] = s.Transform(t)
	}

	return doc
}

// Open is the package-level convenience entry: a default Parser
// reading a named file.
func Open(path string, maxSize, minSize float64) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return NewParser().Parse(f, maxSize, minSize)
}
