// internal/system/terrain.go
package system

import (
	"github.com/sirupsen/logrus"

	"go-hex-defense/internal/entity"
	"go-hex-defense/internal/event"
	"go-hex-defense/internal/logging"
	"go-hex-defense/pkg/hexmap"
)

// TerrainSystem is the level-editing entry point: the only code that
// changes a tile's terrain, announcing each change with TerrainChanged.
type TerrainSystem struct {
	ecs             *entity.ECS
	grid            *hexmap.HexGrid
	eventDispatcher *event.Dispatcher
	log             logrus.FieldLogger
}

func NewTerrainSystem(ecs *entity.ECS, grid *hexmap.HexGrid, eventDispatcher *event.Dispatcher, log logrus.FieldLogger) *TerrainSystem {
	return &TerrainSystem{ecs: ecs, grid: grid, eventDispatcher: eventDispatcher, log: logging.OrDiscard(log)}
}

// SetTerrain changes the terrain at hex. It refuses to turn a cell holding
// a tower into a Spawner or Goal, and reports whether anything changed.
func (s *TerrainSystem) SetTerrain(hex hexmap.Hex, terrain hexmap.Terrain) bool {
	if s.grid == nil {
		return false
	}
	tileID, ok := s.grid.TileAt(hex)
	if !ok {
		return false
	}
	tile, ok := s.ecs.Tiles[tileID]
	if !ok || tile.Terrain == terrain {
		return false
	}
	if _, occupied := s.grid.TowerAt(hex); occupied && !terrain.IsValidSpawn() {
		return false
	}

	old := tile.Terrain
	tile.Terrain = terrain
	s.log.WithFields(logrus.Fields{"q": hex.Q, "r": hex.R, "from": old, "to": terrain}).Info("terrain changed")
	s.eventDispatcher.Dispatch(event.Event{Type: event.TerrainChanged, Data: hex})
	return true
}

// Toggle flips a Clear tile to Blocked and back. Spawner and Goal tiles
// are left alone.
func (s *TerrainSystem) Toggle(hex hexmap.Hex) bool {
	if s.grid == nil {
		return false
	}
	tileID, ok := s.grid.TileAt(hex)
	if !ok {
		return false
	}
	tile, ok := s.ecs.Tiles[tileID]
	if !ok {
		return false
	}
	switch tile.Terrain {
	case hexmap.Clear:
		return s.SetTerrain(hex, hexmap.Blocked)
	case hexmap.Blocked:
		return s.SetTerrain(hex, hexmap.Clear)
	default:
		return false
	}
}
