// pkg/hexmap/grid.go
package hexmap

import (
	"iter"

	"go-hex-defense/internal/types"
)

// HexGrid is the spatial index of one board: it maps coordinates to the
// tile entity built there and to the tower standing on it.
//
// Tiles are added once while the board is built and are never removed.
// Towers only ever holds coordinates whose tile terrain allows placement.
type HexGrid struct {
	Layout Layout
	Tiles  map[Hex]types.EntityID
	Towers map[Hex]types.EntityID
}

func NewHexGrid(layout Layout) *HexGrid {
	return &HexGrid{
		Layout: layout,
		Tiles:  make(map[Hex]types.EntityID),
		Towers: make(map[Hex]types.EntityID),
	}
}

// AddTile records the tile entity for h.
func (g *HexGrid) AddTile(h Hex, id types.EntityID) {
	g.Tiles[h] = id
}

// AddTower records the tower entity standing on h.
func (g *HexGrid) AddTower(h Hex, id types.EntityID) {
	g.Towers[h] = id
}

func (g *HexGrid) TileAt(h Hex) (types.EntityID, bool) {
	id, ok := g.Tiles[h]
	return id, ok
}

func (g *HexGrid) TowerAt(h Hex) (types.EntityID, bool) {
	id, ok := g.Towers[h]
	return id, ok
}

func (g *HexGrid) Contains(h Hex) bool {
	_, ok := g.Tiles[h]
	return ok
}

// Len returns the number of tiles on the board.
func (g *HexGrid) Len() int {
	return len(g.Tiles)
}

func (g *HexGrid) WorldToHex(p Point) Hex {
	return g.Layout.WorldToHex(p)
}

func (g *HexGrid) HexToWorld(h Hex) Point {
	return g.Layout.HexToWorld(h)
}

// CellsWithin yields every coordinate at distance <= radius from center,
// whether or not a tile exists there.
func (g *HexGrid) CellsWithin(center Hex, radius int) iter.Seq[Hex] {
	return center.Spiral(radius)
}
