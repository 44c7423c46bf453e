// internal/system/path.go
package system

import (
	"github.com/sirupsen/logrus"

	"go-hex-defense/internal/entity"
	"go-hex-defense/internal/event"
	"go-hex-defense/internal/logging"
	"go-hex-defense/pkg/hexmap"
)

// PathSystem keeps the enemy route and the TilePath flags in sync with the
// terrain. It listens to TerrainChanged only; writing TilePath never emits
// TerrainChanged, so recomputing cannot retrigger itself.
type PathSystem struct {
	ecs             *entity.ECS
	grid            *hexmap.HexGrid
	eventDispatcher *event.Dispatcher
	log             logrus.FieldLogger
	entry, exit     hexmap.Hex
	route           []hexmap.Hex
}

func NewPathSystem(ecs *entity.ECS, grid *hexmap.HexGrid, eventDispatcher *event.Dispatcher, entry, exit hexmap.Hex, log logrus.FieldLogger) *PathSystem {
	ps := &PathSystem{
		ecs:             ecs,
		grid:            grid,
		eventDispatcher: eventDispatcher,
		log:             logging.OrDiscard(log),
		entry:           entry,
		exit:            exit,
	}
	eventDispatcher.Subscribe(event.TerrainChanged, ps)
	return ps
}

func (s *PathSystem) OnEvent(e event.Event) {
	if e.Type == event.TerrainChanged {
		s.Recompute()
	}
}

// Route returns the current route from spawner to goal, or nil.
func (s *PathSystem) Route() []hexmap.Hex {
	return s.route
}

// Recompute finds the cheapest route by terrain cost and rewrites the
// TilePath flags to match it.
func (s *PathSystem) Recompute() []hexmap.Hex {
	if s.grid == nil {
		return nil
	}
	s.route = hexmap.FindPath(s.entry, s.exit, s.cost)

	for _, tp := range s.ecs.TilePaths {
		tp.IsPath = false
	}
	for _, hex := range s.route {
		if tileID, ok := s.grid.TileAt(hex); ok {
			if tp, ok := s.ecs.TilePaths[tileID]; ok {
				tp.IsPath = true
			}
		}
	}

	if s.route == nil {
		s.log.WithFields(logrus.Fields{"entry": s.entry, "exit": s.exit}).Warn("no route from spawner to goal")
	} else {
		s.log.WithField("length", len(s.route)).Debug("route recomputed")
	}
	s.eventDispatcher.Dispatch(event.Event{Type: event.PathUpdated, Data: s.route})
	return s.route
}

func (s *PathSystem) cost(h hexmap.Hex) (int, bool) {
	tileID, ok := s.grid.TileAt(h)
	if !ok {
		return 0, false
	}
	tile, ok := s.ecs.Tiles[tileID]
	if !ok {
		return 0, false
	}
	return tile.Terrain.Cost(), true
}
