// internal/system/damage_tick.go
package system

import (
	"github.com/sirupsen/logrus"

	"go-hex-defense/internal/entity"
	"go-hex-defense/internal/event"
	"go-hex-defense/internal/logging"
	"go-hex-defense/pkg/hexmap"
)

// DamageTickSystem applies tile damage to everything standing on a
// damaging tile, once per attack timer period. Damage rate therefore does
// not depend on frame rate.
type DamageTickSystem struct {
	ecs             *entity.ECS
	grid            *hexmap.HexGrid
	eventDispatcher *event.Dispatcher
	metrics         Metrics
	log             logrus.FieldLogger
}

func NewDamageTickSystem(ecs *entity.ECS, grid *hexmap.HexGrid, eventDispatcher *event.Dispatcher, metrics Metrics, log logrus.FieldLogger) *DamageTickSystem {
	return &DamageTickSystem{
		ecs:             ecs,
		grid:            grid,
		eventDispatcher: eventDispatcher,
		metrics:         orNoop(metrics),
		log:             logging.OrDiscard(log),
	}
}

// Update advances the attack timer and returns how many entities took
// damage. Nothing is touched on steps where no period completes.
func (s *DamageTickSystem) Update(deltaTime float64) int {
	timer := s.ecs.AttackTimer
	if timer == nil || s.grid == nil {
		return 0
	}
	if !timer.Tick(deltaTime) {
		return 0
	}

	damaged := 0
	var total uint64
	for id, health := range s.ecs.Healths {
		pos, hasPos := s.ecs.Positions[id]
		if !hasPos || health.Value == 0 {
			continue
		}
		hex := s.grid.WorldToHex(pos.Point())
		tileID, ok := s.grid.TileAt(hex)
		if !ok {
			continue
		}
		area, ok := s.ecs.DamageAreas[tileID]
		if !ok {
			continue
		}
		dealt, killed := ApplyDamage(s.ecs, id, area.Damage)
		if dealt == 0 {
			continue
		}
		damaged++
		total += uint64(dealt)
		if killed {
			s.metrics.EnemyDestroyed()
			if s.eventDispatcher != nil {
				s.eventDispatcher.Dispatch(event.Event{Type: event.EnemyDestroyed, Data: id})
			}
		}
	}
	s.metrics.AttackTick(total)
	if damaged > 0 {
		s.log.WithFields(logrus.Fields{"entities": damaged, "damage": total}).Debug("attack tick")
	}
	return damaged
}
