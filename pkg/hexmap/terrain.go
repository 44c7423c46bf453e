// pkg/hexmap/terrain.go
package hexmap

import (
	"fmt"
	"strings"
)

// Terrain is the kind of ground a tile is made of.
type Terrain int

const (
	Clear Terrain = iota
	Blocked
	Spawner
	Goal
)

// BlockedCost is large enough that any detour over Clear tiles is cheaper
// than crossing a Blocked one, without removing the tile from the graph.
const BlockedCost = 1000

var terrainNames = [...]string{
	Clear:   "clear",
	Blocked: "blocked",
	Spawner: "spawner",
	Goal:    "goal",
}

// Cost returns the pathfinding weight of entering a tile of this terrain.
func (t Terrain) Cost() int {
	switch t {
	case Blocked:
		return BlockedCost
	default:
		return 1
	}
}

// IsValidSpawn reports whether a tower may be placed on this terrain.
func (t Terrain) IsValidSpawn() bool {
	return t != Spawner && t != Goal
}

func (t Terrain) String() string {
	if t < 0 || int(t) >= len(terrainNames) {
		return fmt.Sprintf("Terrain(%d)", int(t))
	}
	return terrainNames[t]
}

// ParseTerrain converts a case-insensitive terrain name.
func ParseTerrain(s string) (Terrain, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range terrainNames {
		if n == name {
			return Terrain(i), nil
		}
	}
	return Clear, fmt.Errorf("unknown terrain %q", s)
}
