package system

// Metrics receives simulation counters. observability.SimCollector
// implements it; a nil Metrics is replaced by a no-op.
type Metrics interface {
	TowerPlaced()
	PlacementRejected(reason string)
	DamageAreaApplied(cells int)
	AttackTick(damage uint64)
	EnemyDestroyed()
}

// Placement rejection reasons.
const (
	RejectOffGrid        = "off_grid"
	RejectInvalidTerrain = "invalid_terrain"
	RejectOccupied       = "occupied"
)

type noopMetrics struct{}

func (noopMetrics) TowerPlaced()             {}
func (noopMetrics) PlacementRejected(string) {}
func (noopMetrics) DamageAreaApplied(int)    {}
func (noopMetrics) AttackTick(uint64)        {}
func (noopMetrics) EnemyDestroyed()          {}

func orNoop(m Metrics) Metrics {
	if m == nil {
		return noopMetrics{}
	}
	return m
}
