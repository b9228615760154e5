package entities

import (
	"math"
	"strings"

	"github.com/wholder/dxfreader/core"
	"github.com/wholder/dxfreader/geom"
	"github.com/wholder/dxfreader/glyph"
)

// MText holds a multi-line MTEXT entity. Only the first rendered line
// is ever drawn; everything past the first \P is collected but ignored
// downstream, same as the source this was built against.
type MText struct {
	BaseEntity
	Insertion  geom.Point
	Height     float64
	RefWidth   float64
	Attachment int
	XDir, YDir float64
	HaveDir    bool
	Value      string
	raw        strings.Builder
	Outliner   glyph.Outliner

	scale float64
}

func init() {
	Register("MTEXT", func() Entity {
		return &MText{BaseEntity: BaseEntity{TypeName: "MTEXT"}, Outliner: DefaultOutliner, scale: 1, Height: 1, Attachment: 1}
	})
}

func (m *MText) AutoPop()           {}
func (m *MText) SetScale(s float64) { m.scale = s }

func (m *MText) AddParm(tag core.Tag) error {
	switch tag.Code {
	case 8:
		m.LayerName = tag.AsString()
	case 1, 3:
		m.raw.WriteString(tag.AsString())
	case 10:
		v, err := tag.AsFloatErr()
		if err != nil {
			return err
		}
		m.Insertion.X = v * m.scale
	case 20:
		v, err := tag.AsFloatErr()
		if err != nil {
			return err
		}
		m.Insertion.Y = v * m.scale
	case 11:
		v, err := tag.AsFloatErr()
		if err != nil {
			return err
		}
		m.XDir = v
		m.HaveDir = true
	case 21:
		v, err := tag.AsFloatErr()
		if err != nil {
			return err
		}
		m.YDir = v
		m.HaveDir = true
	case 40:
		v, err := tag.AsFloatErr()
		if err != nil {
			return err
		}
		m.Height = v * m.scale
	case 41:
		v, err := tag.AsFloatErr()
		if err != nil {
			return err
		}
		m.RefWidth = v * m.scale
	case 71:
		n, err := tag.AsIntErr()
		if err != nil {
			return err
		}
		m.Attachment = n
	}
	return nil
}

var stackedFractions = map[string]rune{
	"1/2": '½', "1/3": '⅓', "1/4": '¼', "2/3": '⅔', "3/4": '¾',
}

// decodeMTextLine expands backslash escapes and returns only the first
// paragraph's worth of text: \P starts the second line, and decoding
// stops there since only the first line is ever rendered.
func decodeMTextLine(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); {
		c := s[i]
		switch {
		case c == '{' || c == '}':
			i++
		case c == '\\' && i+1 < len(s):
			n := s[i+1]
			switch n {
			case 'P':
				return b.String()
			case '\\':
				b.WriteByte('\\')
				i += 2
			case '{':
				b.WriteByte('{')
				i += 2
			case '}':
				b.WriteByte('}')
				i += 2
			case 'S':
				j := strings.IndexByte(s[i+2:], ';')
				if j < 0 {
					return b.String()
				}
				frac := s[i+2 : i+2+j]
				if r, ok := stackedFractions[frac]; ok {
					b.WriteRune(r)
				} else if a, bb, ok := strings.Cut(frac, "/"); ok {
					b.WriteString(a)
					b.WriteRune('⁄')
					b.WriteString(bb)
				} else {
					b.WriteString(frac)
				}
				i += 2 + j + 1
			case 'A', 'C', 'F', 'H', 'Q', 'T', 'W':
				j := strings.IndexByte(s[i+2:], ';')
				if j < 0 {
					return b.String()
				}
				i += 2 + j + 1
			default:
				i += 2
			}
		default:
			b.WriteByte(c)
			i++
		}
	}
	return b.String()
}

func (m *MText) Close() {
	m.Value = decodeMTextLine(m.raw.String())
	if m.RefWidth > 0 && len([]rune(m.Value)) > 30 {
		r := []rune(m.Value)
		m.Value = string(r[:30]) + "…"
	}
}

func (m *MText) GetShape(*BlockDict) (geom.Shape, bool) {
	if m.Value == "" {
		return nil, false
	}
	shape, err := m.Outliner.Outline(m.Value, "", m.Height*10, false, false, 0)
	if err != nil || shape == nil {
		return nil, false
	}
	rotation := 0.0
	if m.HaveDir {
		rotation = math.Atan2(m.YDir, m.XDir) * 180 / math.Pi
	}
	hAdjust, vAdjust := attachmentOffsets(m.Attachment)
	return placeGlyphShape(shape, hAdjust, vAdjust, rotation, m.Height, m.Insertion, geom.Point{}, false), true
}

// attachmentOffsets maps MTEXT's 1-9 attachment point to the same
// [-1,0,1] adjustment factors Text's justification uses.
func attachmentOffsets(attach int) (hAdjust, vAdjust float64) {
	if attach < 1 || attach > 9 {
		attach = 1
	}
	col := (attach - 1) % 3
	row := (attach - 1) / 3
	hAdjust = float64(col) - 1
	vAdjust = 1 - float64(row)
	return
}
