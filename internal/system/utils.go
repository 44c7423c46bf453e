// internal/system/utils.go
package system

import (
	"go-hex-defense/internal/entity"
	"go-hex-defense/internal/types"
	"go-hex-defense/pkg/utils"
)

// ApplyDamage subtracts damage from the entity's health, floored at zero.
// It returns the damage actually removed and whether this hit was the one
// that brought health to zero.
func ApplyDamage(ecs *entity.ECS, entityID types.EntityID, damage uint32) (dealt uint32, killed bool) {
	health, ok := ecs.Healths[entityID]
	if !ok || damage == 0 || health.Value == 0 {
		return 0, false
	}
	before := health.Value
	health.Value = utils.SaturatingSub(health.Value, damage)
	return before - health.Value, health.Value == 0
}
