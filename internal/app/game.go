// internal/app/game.go
package app

import (
	"math/rand"

	"github.com/sirupsen/logrus"

	"go-hex-defense/internal/component"
	"go-hex-defense/internal/config"
	"go-hex-defense/internal/entity"
	"go-hex-defense/internal/event"
	"go-hex-defense/internal/logging"
	"go-hex-defense/internal/observability"
	"go-hex-defense/internal/system"
	"go-hex-defense/internal/types"
	"go-hex-defense/pkg/hexmap"
)

// Game holds one simulation run: the board, its entities and the systems
// that advance them.
type Game struct {
	Board           *hexmap.Board
	Grid            *hexmap.HexGrid
	ECS             *entity.ECS
	EventDispatcher *event.Dispatcher

	PlacementSystem  *system.PlacementSystem
	DamageAreaSystem *system.DamageAreaSystem
	DamageTickSystem *system.DamageTickSystem
	TerrainSystem    *system.TerrainSystem
	PathSystem       *system.PathSystem
	WaveSystem       *system.WaveSystem
	MovementSystem   *system.MovementSystem

	Kills    int
	Leaks    int
	gameTime float64

	metrics *observability.SimCollector
	log     logrus.FieldLogger
	pending []types.EntityID
}

// NewGame builds the board described by cfg and wires every system.
// rng drives blocked-tile generation; nil leaves the board Clear.
func NewGame(cfg *config.Config, rng *rand.Rand, log logrus.FieldLogger, metrics *observability.SimCollector) *Game {
	log = logging.OrDiscard(log)

	board := hexmap.NewBoard(cfg.Board.Radius, cfg.Board.BlockedRatio, rng)
	for _, o := range cfg.Board.Overrides() {
		board.Set(o.Hex, o.Terrain)
	}

	ecs := entity.NewECS()
	grid := hexmap.NewHexGrid(hexmap.NewLayout(cfg.Board.HexSize))
	for _, h := range board.Hexes() {
		id := ecs.NewEntity()
		ecs.Tiles[id] = &component.Tile{Terrain: board.Terrain[h]}
		ecs.TilePaths[id] = &component.TilePath{}
		grid.AddTile(h, id)
	}
	ecs.AttackTimer = component.NewAttackTimer(cfg.Attack.Period)

	eventDispatcher := event.NewDispatcher()
	created := event.NewQueue[event.TowerCreated]()

	g := &Game{
		Board:           board,
		Grid:            grid,
		ECS:             ecs,
		EventDispatcher: eventDispatcher,
		metrics:         metrics,
		log:             log,
	}
	g.PlacementSystem = system.NewPlacementSystem(ecs, grid, created, metrics, log)
	g.DamageAreaSystem = system.NewDamageAreaSystem(ecs, grid, created, cfg.Tower.Range, cfg.Tower.Damage, metrics, log)
	g.DamageTickSystem = system.NewDamageTickSystem(ecs, grid, eventDispatcher, metrics, log)
	g.TerrainSystem = system.NewTerrainSystem(ecs, grid, eventDispatcher, log)
	g.PathSystem = system.NewPathSystem(ecs, grid, eventDispatcher, board.Entry, board.Exit, log)
	g.WaveSystem = system.NewWaveSystem(ecs, grid, g.PathSystem, cfg.Enemy.SpawnInterval, cfg.Enemy.Health, cfg.Enemy.Speed, log)
	g.MovementSystem = system.NewMovementSystem(ecs, grid, eventDispatcher)

	eventDispatcher.Subscribe(event.EnemyDestroyed, g)
	eventDispatcher.Subscribe(event.EnemyReachedGoal, g)

	g.PathSystem.Recompute()
	log.WithFields(logrus.Fields{
		"tiles":  grid.Len(),
		"radius": board.Radius,
		"route":  len(g.PathSystem.Route()),
	}).Info("board built")
	return g
}

// OnEvent collects enemies to remove at the end of the step.
func (g *Game) OnEvent(e event.Event) {
	id, ok := e.Data.(types.EntityID)
	if !ok {
		return
	}
	switch e.Type {
	case event.EnemyDestroyed:
		g.Kills++
	case event.EnemyReachedGoal:
		g.Leaks++
	default:
		return
	}
	g.pending = append(g.pending, id)
}

// Update progresses the simulation by one step.
func (g *Game) Update(deltaTime float64) {
	g.gameTime += deltaTime

	g.PlacementSystem.Update()
	g.DamageAreaSystem.Update()
	g.WaveSystem.Update(deltaTime)
	g.MovementSystem.Update(deltaTime)
	g.DamageTickSystem.Update(deltaTime)
	g.cleanupDestroyedEntities()

	g.metrics.SetActiveEnemies(len(g.ECS.Enemies))
}

// QueueClick forwards a right click to tower placement.
func (g *Game) QueueClick(cursor hexmap.Point, window system.WindowSize) {
	g.PlacementSystem.QueueClick(cursor, window)
}

// ToggleTerrainAt flips the tile under the cursor between Clear and Blocked.
func (g *Game) ToggleTerrainAt(cursor hexmap.Point, window system.WindowSize) bool {
	return g.TerrainSystem.Toggle(g.Grid.WorldToHex(window.ToWorld(cursor)))
}

func (g *Game) GetGameTime() float64 {
	return g.gameTime
}

func (g *Game) cleanupDestroyedEntities() {
	if len(g.pending) == 0 {
		return
	}
	for _, id := range g.pending {
		if _, ok := g.ECS.Enemies[id]; !ok {
			continue
		}
		g.ECS.DestroyEntity(id)
	}
	g.log.WithFields(logrus.Fields{"removed": len(g.pending), "kills": g.Kills, "leaks": g.Leaks}).Debug("enemies removed")
	g.pending = g.pending[:0]
}
