package dxf

import (
	"strings"
	"testing"

	"github.com/wholder/dxfreader/core"
	"github.com/wholder/dxfreader/entities"
)

func runDriver(t *testing.T, body string) *driver {
	t.Helper()
	d := newDriver(false)
	scanner := core.NewScanner(strings.NewReader(body))
	if err := d.run(scanner); err != nil {
		t.Fatalf("driver.run: %v", err)
	}
	return d
}

// Multiple ATTRIB entities trailing an INSERT are folded into its
// Attributes slice rather than appearing as their own top-level draw
// items.
func TestDriver_AttribsFoldIntoInsert(t *testing.T) {
	body := tags(
		rec{0, "SECTION"}, rec{2, "ENTITIES"},
		rec{0, "INSERT"}, rec{2, "A"}, rec{10, "0"}, rec{20, "0"},
		rec{0, "ATTRIB"}, rec{2, "TAG1"}, rec{1, "first"},
		rec{0, "ATTRIB"}, rec{2, "TAG2"}, rec{1, "second"},
		rec{0, "SEQEND"},
		rec{0, "ENDSEC"},
	)
	d := runDriver(t, body)

	if len(d.drawList) != 1 {
		t.Fatalf("expected exactly 1 top-level draw item (the INSERT), got %d", len(d.drawList))
	}
	insert, ok := d.drawList[0].(*entities.Insert)
	if !ok {
		t.Fatalf("expected the draw item to be an *entities.Insert, got %T", d.drawList[0])
	}
	if len(insert.Attributes) != 2 {
		t.Fatalf("expected 2 folded attributes, got %d", len(insert.Attributes))
	}
	if insert.Attributes[0].Text != "first" || insert.Attributes[1].Text != "second" {
		t.Fatalf("attributes out of order or wrong text: %+v", insert.Attributes)
	}
}

// An INSERT with no trailing attributes self-closes on the very next
// unrelated keyword.
func TestDriver_InsertWithoutAttribsSelfCloses(t *testing.T) {
	body := tags(
		rec{0, "SECTION"}, rec{2, "ENTITIES"},
		rec{0, "INSERT"}, rec{2, "A"}, rec{10, "0"}, rec{20, "0"},
		rec{0, "CIRCLE"}, rec{10, "0"}, rec{20, "0"}, rec{40, "1"},
		rec{0, "ENDSEC"},
	)
	d := runDriver(t, body)

	if len(d.drawList) != 2 {
		t.Fatalf("expected the INSERT and the CIRCLE as 2 separate draw items, got %d", len(d.drawList))
	}
	if _, ok := d.drawList[0].(*entities.Insert); !ok {
		t.Fatalf("expected the first draw item to be the INSERT, got %T", d.drawList[0])
	}
	if _, ok := d.drawList[1].(*entities.Circle); !ok {
		t.Fatalf("expected the second draw item to be the CIRCLE, got %T", d.drawList[1])
	}
}

// Consecutive VERTEX keywords each close the previous vertex onto the
// enclosing POLYLINE rather than nesting.
func TestDriver_PolylineCollectsVertices(t *testing.T) {
	body := tags(
		rec{0, "SECTION"}, rec{2, "ENTITIES"},
		rec{0, "POLYLINE"}, rec{70, "0"},
		rec{0, "VERTEX"}, rec{10, "0"}, rec{20, "0"},
		rec{0, "VERTEX"}, rec{10, "1"}, rec{20, "0"},
		rec{0, "VERTEX"}, rec{10, "1"}, rec{20, "1"},
		rec{0, "SEQEND"},
		rec{0, "ENDSEC"},
	)
	d := runDriver(t, body)

	if len(d.drawList) != 1 {
		t.Fatalf("expected exactly 1 draw item (the POLYLINE), got %d", len(d.drawList))
	}
	pl, ok := d.drawList[0].(*entities.Polyline)
	if !ok {
		t.Fatalf("expected *entities.Polyline, got %T", d.drawList[0])
	}
	if len(pl.Vertices) != 3 {
		t.Fatalf("expected 3 collected vertices, got %d", len(pl.Vertices))
	}
}

// A BLOCK stays open across multiple POLYLINE/SEQEND children: SEQEND
// must stop before popping the BLOCK itself.
func TestDriver_SeqendStopsAtBlock(t *testing.T) {
	body := tags(
		rec{0, "SECTION"}, rec{2, "BLOCKS"},
		rec{0, "BLOCK"}, rec{2, "A"}, rec{10, "0"}, rec{20, "0"},
		rec{0, "POLYLINE"}, rec{70, "0"},
		rec{0, "VERTEX"}, rec{10, "0"}, rec{20, "0"},
		rec{0, "VERTEX"}, rec{10, "1"}, rec{20, "0"},
		rec{0, "SEQEND"},
		rec{0, "LINE"}, rec{10, "0"}, rec{20, "0"}, rec{11, "1"}, rec{21, "1"},
		rec{0, "ENDBLK"},
		rec{0, "ENDSEC"},
	)
	d := runDriver(t, body)

	block, ok := d.blocks.Lookup("A")
	if !ok {
		t.Fatalf("expected block A to be registered")
	}
	if len(block.Children) != 2 {
		t.Fatalf("expected the POLYLINE and the LINE both as children of block A, got %d", len(block.Children))
	}
}
