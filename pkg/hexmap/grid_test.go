package hexmap

import (
	"slices"
	"testing"

	"go-hex-defense/internal/types"
)

func TestHexGridLookups(t *testing.T) {
	g := NewHexGrid(NewLayout(10))
	g.AddTile(Hex{0, 0}, types.EntityID(1))
	g.AddTile(Hex{1, 0}, types.EntityID(2))
	g.AddTower(Hex{1, 0}, types.EntityID(3))

	if id, ok := g.TileAt(Hex{0, 0}); !ok || id != 1 {
		t.Errorf("TileAt(origin) = %v, %v", id, ok)
	}
	if _, ok := g.TileAt(Hex{5, 5}); ok {
		t.Error("TileAt off-grid reported a tile")
	}
	if _, ok := g.TowerAt(Hex{0, 0}); ok {
		t.Error("TowerAt(origin) reported a tower")
	}
	if id, ok := g.TowerAt(Hex{1, 0}); !ok || id != 3 {
		t.Errorf("TowerAt({1 0}) = %v, %v", id, ok)
	}
	if g.Len() != 2 || !g.Contains(Hex{1, 0}) || g.Contains(Hex{2, 0}) {
		t.Errorf("Len/Contains inconsistent")
	}

	neighbors := Hex{0, 0}.Neighbors(g)
	if !slices.Equal(neighbors, []Hex{{1, 0}}) {
		t.Errorf("Neighbors = %v", neighbors)
	}
}

func TestCellsWithinIncludesOffGrid(t *testing.T) {
	g := NewHexGrid(NewLayout(10))
	g.AddTile(Hex{0, 0}, 1)
	cells := slices.Collect(g.CellsWithin(Hex{0, 0}, 1))
	if len(cells) != 7 || cells[0] != (Hex{0, 0}) {
		t.Fatalf("CellsWithin = %v", cells)
	}
}
