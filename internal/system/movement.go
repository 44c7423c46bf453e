// internal/system/movement.go
package system

import (
	"math"

	"go-hex-defense/internal/entity"
	"go-hex-defense/internal/event"
	"go-hex-defense/pkg/hexmap"
)

// MovementSystem обновляет позиции сущностей вдоль их пути
type MovementSystem struct {
	ecs             *entity.ECS
	grid            *hexmap.HexGrid
	eventDispatcher *event.Dispatcher
}

func NewMovementSystem(ecs *entity.ECS, grid *hexmap.HexGrid, eventDispatcher *event.Dispatcher) *MovementSystem {
	return &MovementSystem{ecs: ecs, grid: grid, eventDispatcher: eventDispatcher}
}

func (s *MovementSystem) Update(deltaTime float64) {
	if s.grid == nil {
		return
	}
	for id, pos := range s.ecs.Positions {
		vel, hasVel := s.ecs.Velocities[id]
		path, hasPath := s.ecs.Paths[id]
		if !hasVel || !hasPath {
			continue
		}
		moveDistance := vel.Speed * deltaTime
		for moveDistance > 0 && path.CurrentIndex < len(path.Hexes) {
			target := s.grid.HexToWorld(path.Hexes[path.CurrentIndex])
			dx := target.X - pos.X
			dy := target.Y - pos.Y
			dist := math.Sqrt(dx*dx + dy*dy)
			if dist <= moveDistance {
				pos.X, pos.Y = target.X, target.Y
				path.CurrentIndex++
				moveDistance -= dist
				continue
			}
			pos.X += (dx / dist) * moveDistance
			pos.Y += (dy / dist) * moveDistance
			moveDistance = 0
		}

		if path.CurrentIndex >= len(path.Hexes) {
			if enemy, ok := s.ecs.Enemies[id]; ok && !enemy.ReachedEnd {
				enemy.ReachedEnd = true
				s.eventDispatcher.Dispatch(event.Event{Type: event.EnemyReachedGoal, Data: id})
			}
		}
	}
}
