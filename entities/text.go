package entities

import (
	"math"
	"strings"

	"github.com/wholder/dxfreader/core"
	"github.com/wholder/dxfreader/geom"
	"github.com/wholder/dxfreader/glyph"
)

// Text holds a single-line TEXT entity. get_shape delegates to an
// Outliner and then applies justification, rotation and placement —
// the outliner works in a 10x-upscaled unit to get usable precision
// out of a placeholder glyph, so the 1:-0.1 compensating scale below
// undoes that and flips Y to match the rest of the drawing.
type Text struct {
	BaseEntity
	Insertion   geom.Point
	AlignPoint  geom.Point
	HaveAlign   bool
	Height      float64
	Rotation    float64
	HJustify    int
	VJustify    int
	Value       string
	Outliner    glyph.Outliner

	scale float64
}

func init() {
	Register("TEXT", func() Entity {
		return &Text{BaseEntity: BaseEntity{TypeName: "TEXT"}, Outliner: DefaultOutliner, scale: 1, Height: 1}
	})
}

func (t *Text) AutoPop()           {}
func (t *Text) SetScale(s float64) { t.scale = s }

func (t *Text) AddParm(tag core.Tag) error {
	switch tag.Code {
	case 8:
		t.LayerName = tag.AsString()
	case 1:
		t.Value = decodeTextControlCodes(tag.AsString())
	case 10:
		v, err := tag.AsFloatErr()
		if err != nil {
			return err
		}
		t.Insertion.X = v * t.scale
	case 20:
		v, err := tag.AsFloatErr()
		if err != nil {
			return err
		}
		t.Insertion.Y = v * t.scale
	case 11:
		v, err := tag.AsFloatErr()
		if err != nil {
			return err
		}
		t.AlignPoint.X = v * t.scale
		t.HaveAlign = true
	case 21:
		v, err := tag.AsFloatErr()
		if err != nil {
			return err
		}
		t.AlignPoint.Y = v * t.scale
		t.HaveAlign = true
	case 40:
		v, err := tag.AsFloatErr()
		if err != nil {
			return err
		}
		t.Height = v * t.scale
	case 50:
		v, err := tag.AsFloatErr()
		if err != nil {
			return err
		}
		t.Rotation = v
	case 72:
		n, err := tag.AsIntErr()
		if err != nil {
			return err
		}
		t.HJustify = n
	case 73:
		n, err := tag.AsIntErr()
		if err != nil {
			return err
		}
		t.VJustify = n
	}
	return nil
}

// decodeTextControlCodes expands the %% escapes TEXT group 1 can carry.
func decodeTextControlCodes(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] != '%' || i+1 >= len(s) || s[i+1] != '%' {
			b.WriteByte(s[i])
			continue
		}
		if i+2 >= len(s) {
			b.WriteByte(s[i])
			continue
		}
		switch c := s[i+2]; {
		case c == 'd' || c == 'D':
			b.WriteRune('°')
			i += 2
		case c == 'p' || c == 'P':
			b.WriteRune('±')
			i += 2
		case c == 'c' || c == 'C':
			b.WriteRune('Ø')
			i += 2
		case c == 'u' || c == 'U' || c == 'o' || c == 'O':
			i += 2
		case c >= '0' && c <= '9':
			j := i + 2
			for j < len(s) && s[j] >= '0' && s[j] <= '9' {
				j++
			}
			b.WriteRune('�')
			i = j - 1
		default:
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

// justifyOffsets maps DXF horizontal/vertical justification codes to
// [-1,0,1] adjustment factors: -1 hugs the low edge, 0 centers, 1 hugs
// the high edge.
func justifyOffsets(hJustify, vJustify int) (hAdjust, vAdjust float64) {
	switch hJustify {
	case 1, 4:
		hAdjust = 0
	case 2:
		hAdjust = 1
	default:
		hAdjust = -1
	}
	switch vJustify {
	case 1:
		vAdjust = -1
	case 2:
		vAdjust = 0
	case 3:
		vAdjust = 1
	default:
		vAdjust = -1
	}
	return
}

func placeGlyphShape(shape geom.Shape, hAdjust, vAdjust, rotation, height float64, insertion, alignPoint geom.Point, haveAlign bool) geom.Shape {
	b := shape.Bounds()
	if b.Empty() {
		return shape
	}
	halfW, halfH := b.Width()/2, b.Height()/2
	cx, cy := (b.Min.X+b.Max.X)/2, (b.Min.Y+b.Max.Y)/2

	justify := geom.Translate(-cx-hAdjust*halfW, -cy-vAdjust*halfH)
	t := geom.Compose(geom.Rotate(rotation*math.Pi/180), justify)
	t = geom.Compose(geom.Scale(0.1, -0.1), t)

	target := insertion
	if haveAlign && (hAdjust != -1 || vAdjust != -1) {
		target = alignPoint
	}
	t = geom.Compose(geom.Translate(target.X, target.Y), t)
	return shape.Transform(t)
}

func (t *Text) GetShape(*BlockDict) (geom.Shape, bool) {
	if t.Value == "" {
		return nil, false
	}
	shape, err := t.Outliner.Outline(t.Value, "", t.Height*10, false, false, 0)
	if err != nil || shape == nil {
		return nil, false
	}
	hAdjust, vAdjust := justifyOffsets(t.HJustify, t.VJustify)
	return placeGlyphShape(shape, hAdjust, vAdjust, t.Rotation, t.Height, t.Insertion, t.AlignPoint, t.HaveAlign), true
}
