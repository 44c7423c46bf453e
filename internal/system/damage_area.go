// internal/system/damage_area.go
package system

import (
	"github.com/sirupsen/logrus"

	"go-hex-defense/internal/component"
	"go-hex-defense/internal/entity"
	"go-hex-defense/internal/event"
	"go-hex-defense/internal/logging"
	"go-hex-defense/pkg/hexmap"
	"go-hex-defense/pkg/utils"
)

// DamageAreaSystem spreads the damage of each new tower onto the tiles in
// its range. Coverage stacks: a tile's DamageArea is the sum over every
// tower covering it. Towers are never removed, so nothing is subtracted.
type DamageAreaSystem struct {
	ecs         *entity.ECS
	grid        *hexmap.HexGrid
	created     *event.Queue[event.TowerCreated]
	towerRange  int
	towerDamage uint32
	metrics     Metrics
	log         logrus.FieldLogger
}

func NewDamageAreaSystem(ecs *entity.ECS, grid *hexmap.HexGrid, created *event.Queue[event.TowerCreated], towerRange int, towerDamage uint32, metrics Metrics, log logrus.FieldLogger) *DamageAreaSystem {
	return &DamageAreaSystem{
		ecs:         ecs,
		grid:        grid,
		created:     created,
		towerRange:  towerRange,
		towerDamage: towerDamage,
		metrics:     orNoop(metrics),
		log:         logging.OrDiscard(log),
	}
}

// Update drains the towers created since the last step and returns the
// number of tiles whose damage changed.
func (s *DamageAreaSystem) Update() int {
	if s.grid == nil {
		return 0
	}
	touched := 0
	for _, tower := range s.created.Drain() {
		cells := s.applyTower(tower.Hex)
		touched += cells
		s.log.WithFields(logrus.Fields{"tower": tower.ID, "cells": cells}).Debug("damage area applied")
	}
	if touched > 0 {
		s.metrics.DamageAreaApplied(touched)
	}
	return touched
}

func (s *DamageAreaSystem) applyTower(center hexmap.Hex) int {
	cells := 0
	for hex := range s.grid.CellsWithin(center, s.towerRange) {
		tileID, ok := s.grid.TileAt(hex)
		if !ok {
			continue // радиус может выходить за край поля
		}
		if area, has := s.ecs.DamageAreas[tileID]; has {
			area.Damage = utils.SaturatingAdd(area.Damage, s.towerDamage)
		} else {
			s.ecs.DamageAreas[tileID] = &component.DamageArea{Damage: s.towerDamage}
		}
		cells++
	}
	return cells
}
