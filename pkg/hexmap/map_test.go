package hexmap

import (
	"math/rand"
	"testing"
)

func TestNewBoardShape(t *testing.T) {
	b := NewBoard(3, 0, nil)
	// hexagon of radius 3 plus spawner and goal
	if want := 1 + 3*3*4 + 2; len(b.Terrain) != want {
		t.Fatalf("board has %d tiles, want %d", len(b.Terrain), want)
	}
	if b.Terrain[b.Entry] != Spawner {
		t.Errorf("entry terrain = %v", b.Terrain[b.Entry])
	}
	if b.Terrain[b.Exit] != Goal {
		t.Errorf("exit terrain = %v", b.Terrain[b.Exit])
	}
	if d := b.Entry.Distance(Hex{}); d != 4 {
		t.Errorf("entry distance from centre = %d, want 4", d)
	}
}

func TestNewBoardBlockedIsSeeded(t *testing.T) {
	a := NewBoard(6, 0.3, rand.New(rand.NewSource(7)))
	b := NewBoard(6, 0.3, rand.New(rand.NewSource(7)))
	blocked := 0
	for h, terrain := range a.Terrain {
		if b.Terrain[h] != terrain {
			t.Fatalf("boards differ at %v", h)
		}
		if terrain == Blocked {
			blocked++
			if h.Distance(a.Entry) <= 1 || h.Distance(a.Exit) <= 1 {
				t.Errorf("blocked tile %v next to entry/exit", h)
			}
		}
	}
	if blocked == 0 {
		t.Error("no blocked tiles generated")
	}
}

func TestBoardSetAndHexesOrder(t *testing.T) {
	b := NewBoard(1, 0, nil)
	b.Set(Hex{0, 0}, Goal)
	if b.Exit != (Hex{0, 0}) {
		t.Errorf("Exit = %v after Set(Goal)", b.Exit)
	}
	hexes := b.Hexes()
	for i := 1; i < len(hexes); i++ {
		prev, cur := hexes[i-1], hexes[i]
		if prev.R > cur.R || (prev.R == cur.R && prev.Q >= cur.Q) {
			t.Fatalf("Hexes not sorted at %d: %v then %v", i, prev, cur)
		}
	}
}
