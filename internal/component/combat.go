package component

// Health — компонент здоровья
type Health struct {
	Value uint32
}

// AttackTimer gates tower damage. Tick accumulates elapsed time and
// reports true once per completed period, resetting to zero.
type AttackTimer struct {
	Period  float64 // секунды
	Elapsed float64
}

func NewAttackTimer(period float64) *AttackTimer {
	return &AttackTimer{Period: period}
}

// Tick advances the timer by deltaTime seconds.
func (t *AttackTimer) Tick(deltaTime float64) bool {
	t.Elapsed += deltaTime
	if t.Elapsed >= t.Period {
		t.Elapsed = 0
		return true
	}
	return false
}
