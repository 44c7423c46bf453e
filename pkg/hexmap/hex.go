// pkg/hexmap/hex.go
package hexmap

import (
	"iter"

	"go-hex-defense/pkg/utils"
)

// Hex представляет гекс в осевых координатах (Q, R)
type Hex struct {
	Q, R int
}

// NeighborDirections lists the six axial offsets in ring-walk order.
// Spiral and Ring depend on this order: starting at direction 4 and walking
// 0..5 traces a closed ring.
var NeighborDirections = [6]Hex{
	{Q: 1, R: 0}, {Q: 1, R: -1}, {Q: 0, R: -1},
	{Q: -1, R: 0}, {Q: -1, R: 1}, {Q: 0, R: 1},
}

// S возвращает третью кубическую координату
func (h Hex) S() int {
	return -h.Q - h.R
}

// Neighbor возвращает соседа в направлении dir (0..5)
func (h Hex) Neighbor(dir int) Hex {
	return h.Add(NeighborDirections[dir%6])
}

// AllPossibleNeighbors возвращает всех возможных соседей гекса
func (h Hex) AllPossibleNeighbors() [6]Hex {
	var result [6]Hex
	for i, d := range NeighborDirections {
		result[i] = h.Add(d)
	}
	return result
}

// Neighbors возвращает существующих соседей гекса
func (h Hex) Neighbors(g *HexGrid) []Hex {
	valid := make([]Hex, 0, 6)
	for _, n := range h.AllPossibleNeighbors() {
		if g.Contains(n) {
			valid = append(valid, n)
		}
	}
	return valid
}

// Add возвращает сумму двух гексов
func (h Hex) Add(other Hex) Hex {
	return Hex{Q: h.Q + other.Q, R: h.R + other.R}
}

// Subtract возвращает разность двух гексов
func (h Hex) Subtract(other Hex) Hex {
	return Hex{Q: h.Q - other.Q, R: h.R - other.R}
}

// Scale multiplies a hex vector by a scalar.
func (h Hex) Scale(factor int) Hex {
	return Hex{Q: h.Q * factor, R: h.R * factor}
}

// Distance вычисляет расстояние между гексами
func (h Hex) Distance(to Hex) int {
	dq := h.Q - to.Q
	dr := h.R - to.R
	return (utils.Abs(dq) + utils.Abs(dr) + utils.Abs(dq+dr)) / 2
}

// Ring yields the hexes at exactly the given distance from h. A radius of
// zero yields h itself; a negative radius yields nothing.
func (h Hex) Ring(radius int) iter.Seq[Hex] {
	return func(yield func(Hex) bool) {
		if radius < 0 {
			return
		}
		if radius == 0 {
			yield(h)
			return
		}
		cur := h.Add(NeighborDirections[4].Scale(radius))
		for dir := 0; dir < 6; dir++ {
			for step := 0; step < radius; step++ {
				if !yield(cur) {
					return
				}
				cur = cur.Neighbor(dir)
			}
		}
	}
}

// Spiral yields h followed by every ring out to radius, so each hex within
// radius is produced exactly once. The sequence is deterministic and can be
// ranged over any number of times.
func (h Hex) Spiral(radius int) iter.Seq[Hex] {
	return func(yield func(Hex) bool) {
		for k := 0; k <= radius; k++ {
			for cell := range h.Ring(k) {
				if !yield(cell) {
					return
				}
			}
		}
	}
}
