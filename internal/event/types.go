// internal/event/types.go
package event

import (
	"go-hex-defense/internal/types"
	"go-hex-defense/pkg/hexmap"
)

const (
	TerrainChanged   EventType = "TerrainChanged"   // Data: hexmap.Hex
	PathUpdated      EventType = "PathUpdated"      // Data: []hexmap.Hex
	EnemyDestroyed   EventType = "EnemyDestroyed"   // Враг уничтожен, Data: types.EntityID
	EnemyReachedGoal EventType = "EnemyReachedGoal" // Data: types.EntityID
)

// TowerCreated is queued by placement and drained by the damage-area
// aggregator, once per tower.
type TowerCreated struct {
	ID  types.EntityID
	Hex hexmap.Hex
}
