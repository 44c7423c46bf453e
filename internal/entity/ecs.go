// internal/entity/ecs.go
package entity

import (
	"go-hex-defense/internal/component"
	"go-hex-defense/internal/types"
)

// ECS is the entity arena. Each component kind lives in its own map keyed
// by EntityID; an entity is whatever set of records shares its ID.
type ECS struct {
	NextID      types.EntityID
	Tiles       map[types.EntityID]*component.Tile
	TilePaths   map[types.EntityID]*component.TilePath
	DamageAreas map[types.EntityID]*component.DamageArea
	Towers      map[types.EntityID]*component.Tower
	Positions   map[types.EntityID]*component.Position
	Velocities  map[types.EntityID]*component.Velocity
	Paths       map[types.EntityID]*component.Path
	Healths     map[types.EntityID]*component.Health
	Enemies     map[types.EntityID]*component.Enemy
	AttackTimer *component.AttackTimer
}

func NewECS() *ECS {
	return &ECS{
		NextID:      1,
		Tiles:       make(map[types.EntityID]*component.Tile),
		TilePaths:   make(map[types.EntityID]*component.TilePath),
		DamageAreas: make(map[types.EntityID]*component.DamageArea),
		Towers:      make(map[types.EntityID]*component.Tower),
		Positions:   make(map[types.EntityID]*component.Position),
		Velocities:  make(map[types.EntityID]*component.Velocity),
		Paths:       make(map[types.EntityID]*component.Path),
		Healths:     make(map[types.EntityID]*component.Health),
		Enemies:     make(map[types.EntityID]*component.Enemy),
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// DestroyEntity drops every component of id. IDs are not reused.
func (ecs *ECS) DestroyEntity(id types.EntityID) {
	delete(ecs.Tiles, id)
	delete(ecs.TilePaths, id)
	delete(ecs.DamageAreas, id)
	delete(ecs.Towers, id)
	delete(ecs.Positions, id)
	delete(ecs.Velocities, id)
	delete(ecs.Paths, id)
	delete(ecs.Healths, id)
	delete(ecs.Enemies, id)
}
