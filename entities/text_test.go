package entities

import (
	"testing"

	"github.com/wholder/dxfreader/geom"
)

func TestDecodeTextControlCodes(t *testing.T) {
	cases := map[string]string{
		"45%%d":    "45°",
		"%%p0.5":   "±0.5",
		"%%c12":    "Ø12",
		"a%%ub%%oc": "abc",
		"plain":    "plain",
	}
	for in, want := range cases {
		if got := decodeTextControlCodes(in); got != want {
			t.Errorf("decodeTextControlCodes(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestJustifyOffsets(t *testing.T) {
	cases := []struct {
		h, v         int
		wantH, wantV float64
	}{
		{0, 0, -1, -1}, // default: left, baseline
		{1, 1, 0, -1},  // center, bottom
		{2, 2, 1, 0},   // right, middle
		{4, 3, 0, 1},   // middle (horiz alias), top
	}
	for _, c := range cases {
		gotH, gotV := justifyOffsets(c.h, c.v)
		if gotH != c.wantH || gotV != c.wantV {
			t.Errorf("justifyOffsets(%d,%d) = (%v,%v), want (%v,%v)", c.h, c.v, gotH, gotV, c.wantH, c.wantV)
		}
	}
}

func TestText_GetShape_EmptyValueYieldsNoShape(t *testing.T) {
	tx := &Text{BaseEntity: BaseEntity{TypeName: "TEXT"}, Outliner: DefaultOutliner, scale: 1, Height: 1}
	if _, ok := tx.GetShape(nil); ok {
		t.Fatalf("expected no shape for an empty TEXT value")
	}
}

func TestText_GetShape_PlacesAtInsertion(t *testing.T) {
	tx := &Text{
		BaseEntity: BaseEntity{TypeName: "TEXT"},
		Outliner:   DefaultOutliner,
		scale:      1,
		Height:     1,
		Value:      "A",
		Insertion:  geom.Point{X: 10, Y: 20},
	}
	shape, ok := tx.GetShape(nil)
	if !ok {
		t.Fatalf("expected a shape")
	}
	b := shape.Bounds()
	cx, cy := (b.Min.X+b.Max.X)/2, (b.Min.Y+b.Max.Y)/2
	// Default justification hugs the low edge on both axes, so the
	// shape's center sits half a glyph-box away from the insertion
	// point rather than exactly on it; just check it landed in the
	// right neighborhood (within one glyph height).
	if cx < 9 || cx > 11 || cy < 19 || cy > 21 {
		t.Fatalf("expected the shape centered near (10,20), got center (%v,%v)", cx, cy)
	}
}
