// internal/system/wave.go
package system

import (
	"slices"

	"github.com/sirupsen/logrus"

	"go-hex-defense/internal/component"
	"go-hex-defense/internal/entity"
	"go-hex-defense/internal/logging"
	"go-hex-defense/pkg/hexmap"
)

// RouteSource provides the current enemy route.
type RouteSource interface {
	Route() []hexmap.Hex
}

// WaveSystem spawns an enemy at the start of the route every interval.
type WaveSystem struct {
	ecs        *entity.ECS
	grid       *hexmap.HexGrid
	routes     RouteSource
	interval   float64
	health     uint32
	speed      float64
	spawnTimer float64
	log        logrus.FieldLogger
}

func NewWaveSystem(ecs *entity.ECS, grid *hexmap.HexGrid, routes RouteSource, interval float64, health uint32, speed float64, log logrus.FieldLogger) *WaveSystem {
	return &WaveSystem{
		ecs:      ecs,
		grid:     grid,
		routes:   routes,
		interval: interval,
		health:   health,
		speed:    speed,
		log:      logging.OrDiscard(log),
	}
}

func (s *WaveSystem) Update(deltaTime float64) {
	if s.interval <= 0 || s.grid == nil {
		return
	}
	s.spawnTimer += deltaTime
	if s.spawnTimer < s.interval {
		return
	}
	s.spawnTimer = 0
	route := s.routes.Route()
	if len(route) == 0 {
		return
	}
	s.spawnEnemy(route)
}

func (s *WaveSystem) spawnEnemy(route []hexmap.Hex) {
	id := s.ecs.NewEntity()
	s.ecs.Positions[id] = component.PositionAt(s.grid.HexToWorld(route[0]))
	s.ecs.Velocities[id] = &component.Velocity{Speed: s.speed}
	s.ecs.Paths[id] = &component.Path{Hexes: slices.Clone(route), CurrentIndex: 1}
	s.ecs.Healths[id] = &component.Health{Value: s.health}
	s.ecs.Enemies[id] = &component.Enemy{}
	s.log.WithField("enemy", id).Debug("enemy spawned")
}
