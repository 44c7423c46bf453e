// internal/system/placement.go
package system

import (
	"github.com/sirupsen/logrus"

	"go-hex-defense/internal/component"
	"go-hex-defense/internal/entity"
	"go-hex-defense/internal/event"
	"go-hex-defense/internal/logging"
	"go-hex-defense/pkg/hexmap"
)

// WindowSize is the size of the render surface in pixels.
type WindowSize struct {
	Width, Height float64
}

// ToWorld converts a cursor position (origin at the window's top-left
// corner) to world space, whose origin is the window centre.
func (w WindowSize) ToWorld(cursor hexmap.Point) hexmap.Point {
	return cursor.Sub(hexmap.Point{X: w.Width / 2, Y: w.Height / 2})
}

type click struct {
	pos    hexmap.Point
	window WindowSize
}

// PlacementSystem turns right clicks into towers.
type PlacementSystem struct {
	ecs     *entity.ECS
	grid    *hexmap.HexGrid
	created *event.Queue[event.TowerCreated]
	metrics Metrics
	log     logrus.FieldLogger
	clicks  []click
}

func NewPlacementSystem(ecs *entity.ECS, grid *hexmap.HexGrid, created *event.Queue[event.TowerCreated], metrics Metrics, log logrus.FieldLogger) *PlacementSystem {
	return &PlacementSystem{
		ecs:     ecs,
		grid:    grid,
		created: created,
		metrics: orNoop(metrics),
		log:     logging.OrDiscard(log),
	}
}

// QueueClick records a right click at a cursor position whose origin is
// the window's top-left corner.
func (s *PlacementSystem) QueueClick(cursor hexmap.Point, window WindowSize) {
	s.clicks = append(s.clicks, click{pos: cursor, window: window})
}

// Update places a tower for the most recent queued click, if any, and
// discards the rest. Only one tower can be placed per step.
func (s *PlacementSystem) Update() bool {
	if len(s.clicks) == 0 {
		return false
	}
	last := s.clicks[len(s.clicks)-1]
	s.clicks = s.clicks[:0]
	return s.TryPlaceTower(last.pos, last.window)
}

// TryPlaceTower places a tower on the cell under cursor. Rejections are
// normal input and leave every piece of state untouched.
func (s *PlacementSystem) TryPlaceTower(cursor hexmap.Point, window WindowSize) bool {
	if s.grid == nil {
		return false
	}
	hex := s.grid.WorldToHex(window.ToWorld(cursor))

	tileID, ok := s.grid.TileAt(hex)
	if !ok {
		s.reject(hex, RejectOffGrid)
		return false
	}
	tile, ok := s.ecs.Tiles[tileID]
	if !ok {
		s.reject(hex, RejectOffGrid)
		return false
	}
	if !tile.Terrain.IsValidSpawn() {
		s.reject(hex, RejectInvalidTerrain)
		return false
	}
	if _, occupied := s.grid.TowerAt(hex); occupied {
		s.reject(hex, RejectOccupied)
		return false
	}

	pos := s.grid.HexToWorld(hex)
	id := s.ecs.NewEntity()
	s.ecs.Towers[id] = &component.Tower{Hex: hex}
	s.ecs.Positions[id] = component.PositionAt(pos)
	s.grid.AddTower(hex, id)
	s.created.Push(event.TowerCreated{ID: id, Hex: hex})

	s.metrics.TowerPlaced()
	s.log.WithFields(logrus.Fields{"q": hex.Q, "r": hex.R, "tower": id}).Info("tower placed")
	return true
}

func (s *PlacementSystem) reject(hex hexmap.Hex, reason string) {
	s.metrics.PlacementRejected(reason)
	s.log.WithFields(logrus.Fields{"q": hex.Q, "r": hex.R, "reason": reason}).Debug("tower placement rejected")
}
