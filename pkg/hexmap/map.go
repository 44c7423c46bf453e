// pkg/hexmap/map.go
package hexmap

import (
	"cmp"
	"math/rand"
	"slices"
)

// Board is the terrain layout a grid is built from.
type Board struct {
	Terrain map[Hex]Terrain
	Radius  int
	Entry   Hex
	Exit    Hex
}

// NewBoard generates a hexagonal board of the given radius with a spawner
// just outside the west edge and a goal just outside the east edge. Each
// interior tile is turned into a Blocked one with probability blockedRatio;
// tiles next to the entry and exit always stay Clear.
func NewBoard(radius int, blockedRatio float64, rng *rand.Rand) *Board {
	tiles := make(map[Hex]Terrain)

	// Генерация базовой карты
	for q := -radius; q <= radius; q++ {
		r1 := max(-radius, -q-radius)
		r2 := min(radius, -q+radius)
		for r := r1; r <= r2; r++ {
			tiles[Hex{q, r}] = Clear
		}
	}

	entry := Hex{Q: -(radius + 1), R: radius - radius/2 + 1}
	exit := Hex{Q: radius + 1, R: -(radius - radius/2 + 1)}
	tiles[entry] = Spawner
	tiles[exit] = Goal

	b := &Board{
		Terrain: tiles,
		Radius:  radius,
		Entry:   entry,
		Exit:    exit,
	}

	if blockedRatio > 0 && rng != nil {
		for _, h := range b.Hexes() {
			if tiles[h] != Clear || h.Distance(entry) <= 1 || h.Distance(exit) <= 1 {
				continue
			}
			if rng.Float64() < blockedRatio {
				tiles[h] = Blocked
			}
		}
	}
	return b
}

// Set overrides the terrain at h, adding the tile if it does not exist.
func (b *Board) Set(h Hex, t Terrain) {
	b.Terrain[h] = t
	switch t {
	case Spawner:
		b.Entry = h
	case Goal:
		b.Exit = h
	}
}

// Hexes returns every board coordinate ordered by row, then column.
func (b *Board) Hexes() []Hex {
	hexes := make([]Hex, 0, len(b.Terrain))
	for h := range b.Terrain {
		hexes = append(hexes, h)
	}
	slices.SortFunc(hexes, func(a, c Hex) int {
		if n := cmp.Compare(a.R, c.R); n != 0 {
			return n
		}
		return cmp.Compare(a.Q, c.Q)
	})
	return hexes
}
