package observability

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SimCollector bundles the Prometheus metrics of the simulation core. All
// methods are safe on a nil receiver so callers can run without metrics.
type SimCollector struct {
	gatherer prometheus.Gatherer

	TowersPlaced       prometheus.Counter
	PlacementsRejected *prometheus.CounterVec
	DamageAreaCells    prometheus.Counter
	AttackTicks        prometheus.Counter
	DamageDealt        prometheus.Counter
	EnemiesDestroyed   prometheus.Counter
	RestartTokens      prometheus.Counter
	ActiveEnemies      prometheus.Gauge
}

// NewSimCollector registers simulation metrics against reg, defaulting to
// the global Prometheus registry when nil.
func NewSimCollector(reg prometheus.Registerer) (*SimCollector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	c := &SimCollector{gatherer: gatherer}
	var err error

	counters := []struct {
		dst  *prometheus.Counter
		name string
		help string
	}{
		{&c.TowersPlaced, "sim_towers_placed_total", "Towers committed to the grid."},
		{&c.DamageAreaCells, "sim_damage_area_cells_total", "Tile damage-area updates made by new towers."},
		{&c.AttackTicks, "sim_attack_ticks_total", "Completed attack timer periods."},
		{&c.DamageDealt, "sim_damage_dealt_total", "Health removed from entities by tile damage."},
		{&c.EnemiesDestroyed, "sim_enemies_destroyed_total", "Entities whose health reached zero."},
		{&c.RestartTokens, "sim_restart_tokens_total", "Restart tokens drained from the control channel."},
	}
	for _, def := range counters {
		*def.dst, err = registerCounter(reg, prometheus.NewCounter(prometheus.CounterOpts{
			Name: def.name,
			Help: def.help,
		}), def.name)
		if err != nil {
			return nil, err
		}
	}

	c.PlacementsRejected, err = registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "sim_tower_placements_rejected_total",
		Help: "Placement attempts that left the grid unchanged, labeled by reason.",
	}, []string{"reason"}), "sim_tower_placements_rejected_total")
	if err != nil {
		return nil, err
	}

	c.ActiveEnemies, err = registerGauge(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "sim_active_enemies",
		Help: "Damageable entities alive at the end of the last step.",
	}), "sim_active_enemies")
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Handler exposes a ready-to-use /metrics handler.
func (c *SimCollector) Handler() http.Handler {
	gatherer := prometheus.DefaultGatherer
	if c != nil && c.gatherer != nil {
		gatherer = c.gatherer
	}
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

func (c *SimCollector) TowerPlaced() {
	if c == nil {
		return
	}
	c.TowersPlaced.Inc()
}

func (c *SimCollector) PlacementRejected(reason string) {
	if c == nil {
		return
	}
	c.PlacementsRejected.WithLabelValues(reason).Inc()
}

func (c *SimCollector) DamageAreaApplied(cells int) {
	if c == nil {
		return
	}
	c.DamageAreaCells.Add(float64(cells))
}

func (c *SimCollector) AttackTick(damage uint64) {
	if c == nil {
		return
	}
	c.AttackTicks.Inc()
	c.DamageDealt.Add(float64(damage))
}

func (c *SimCollector) EnemyDestroyed() {
	if c == nil {
		return
	}
	c.EnemiesDestroyed.Inc()
}

func (c *SimCollector) RestartRequested(n int) {
	if c == nil {
		return
	}
	c.RestartTokens.Add(float64(n))
}

func (c *SimCollector) SetActiveEnemies(n int) {
	if c == nil {
		return
	}
	c.ActiveEnemies.Set(float64(n))
}

func registerCounter(reg prometheus.Registerer, counter prometheus.Counter, name string) (prometheus.Counter, error) {
	if err := reg.Register(counter); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Counter); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return counter, nil
}

func registerCounterVec(reg prometheus.Registerer, vec *prometheus.CounterVec, name string) (*prometheus.CounterVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}

func registerGauge(reg prometheus.Registerer, gauge prometheus.Gauge, name string) (prometheus.Gauge, error) {
	if err := reg.Register(gauge); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Gauge); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return gauge, nil
}
