package pattern

import (
	"testing"

	"github.com/termlife/termlife/internal/life"
)

func TestBuiltinsRegistered(t *testing.T) {
	wanted := []string{"block", "blinker", "toad", "beacon", "glider", "lwss", "pulsar", "gosper-gun"}
	for _, id := range wanted {
		if !Exists(id) {
			t.Errorf("built-in pattern %q not registered", id)
		}
	}
}

func TestListSortedByID(t *testing.T) {
	list := List()
	if len(list) < 2 {
		t.Fatalf("expected multiple built-ins, got %d", len(list))
	}
	for i := 1; i < len(list); i++ {
		if list[i-1].ID >= list[i].ID {
			t.Errorf("List() not sorted: %q before %q", list[i-1].ID, list[i].ID)
		}
	}
}

func TestGetUnknown(t *testing.T) {
	if _, err := Get("no-such-pattern"); err == nil {
		t.Error("Get() with unknown ID should fail")
	}
}

func TestBoundingBox(t *testing.T) {
	p, err := Get("glider")
	if err != nil {
		t.Fatalf("Get(glider) failed: %v", err)
	}
	if p.Width() != 3 || p.Height() != 3 {
		t.Errorf("glider bounding box = %dx%d, want 3x3", p.Width(), p.Height())
	}
}

func TestStampOntoEngine(t *testing.T) {
	e, err := life.New(10, 10)
	if err != nil {
		t.Fatalf("life.New failed: %v", err)
	}

	p, err := Get("block")
	if err != nil {
		t.Fatalf("Get(block) failed: %v", err)
	}
	Stamp(e, p, 4, 4)

	for _, c := range [][2]int{{4, 4}, {5, 4}, {4, 5}, {5, 5}} {
		if !e.Alive(c[0], c[1]) {
			t.Errorf("cell (%d, %d) dead after stamping block at (4, 4)", c[0], c[1])
		}
	}
	if e.Population() != 4 {
		t.Errorf("population = %d, want 4", e.Population())
	}
}

func TestStampPastEdgeIsClipped(t *testing.T) {
	e, err := life.New(5, 5)
	if err != nil {
		t.Fatalf("life.New failed: %v", err)
	}

	p, err := Get("block")
	if err != nil {
		t.Fatalf("Get(block) failed: %v", err)
	}
	// Only the (4, 4) cell lands on the grid.
	Stamp(e, p, 4, 4)

	if !e.Alive(4, 4) {
		t.Error("in-bounds cell of a clipped stamp should be alive")
	}
	if e.Population() != 1 {
		t.Errorf("population = %d, want 1 (rest clipped)", e.Population())
	}
}

func TestGliderTranslates(t *testing.T) {
	e, err := life.New(20, 20)
	if err != nil {
		t.Fatalf("life.New failed: %v", err)
	}

	p, err := Get("glider")
	if err != nil {
		t.Fatalf("Get(glider) failed: %v", err)
	}
	Stamp(e, p, 2, 2)

	// A glider repeats its shape every 4 generations, shifted by (1, 1).
	before := e.Snapshot()
	for i := 0; i < 4; i++ {
		e.Step()
	}

	w := e.Width()
	for y := 0; y < e.Height()-1; y++ {
		for x := 0; x < w-1; x++ {
			if before[y*w+x] != e.Alive(x+1, y+1) {
				t.Fatalf("glider not translated by (1, 1) after 4 generations at (%d, %d)", x, y)
			}
		}
	}
}
