// Package glyph isolates the core from any particular font rasterizer.
// TEXT and MTEXT entities ask an Outliner for a shape; the core ships
// only a placeholder implementation and expects a host application to
// supply a real one.
package glyph

import "github.com/wholder/dxfreader/geom"

// Outliner converts a run of text into a planar shape at the origin,
// sized and spaced by the given parameters. The entity layer applies
// justification, rotation and translation to the result afterward.
type Outliner interface {
	Outline(text, fontFamily string, pointSize float64, kerning, ligatures bool, tracking float64) (geom.Shape, error)
}

// Placeholder is the default Outliner: a single X mark scaled to
// pointSize, centered on the origin. It exists so the core produces
// deterministic, visible geometry with no font stack wired in at all.
type Placeholder struct{}

func (Placeholder) Outline(text, fontFamily string, pointSize float64, kerning, ligatures bool, tracking float64) (geom.Shape, error) {
	if text == "" {
		return geom.Path{}, nil
	}
	h := pointSize
	if h <= 0 {
		h = 1
	}
	half := h / 2
	return geom.Path{Commands: []geom.Command{
		geom.MoveTo(geom.Point{X: -half, Y: -half}),
		geom.LineTo(geom.Point{X: half, Y: half}),
		geom.MoveTo(geom.Point{X: -half, Y: half}),
		geom.LineTo(geom.Point{X: half, Y: -half}),
	}}, nil
}
