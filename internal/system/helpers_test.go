package system

import (
	"go-hex-defense/internal/component"
	"go-hex-defense/internal/entity"
	"go-hex-defense/internal/event"
	"go-hex-defense/pkg/hexmap"
)

const testHexSize = 10.0

var testWindow = WindowSize{Width: 800, Height: 600}

// buildGrid creates a tile entity for every board cell.
func buildGrid(board *hexmap.Board) (*entity.ECS, *hexmap.HexGrid) {
	ecs := entity.NewECS()
	grid := hexmap.NewHexGrid(hexmap.NewLayout(testHexSize))
	for _, h := range board.Hexes() {
		id := ecs.NewEntity()
		ecs.Tiles[id] = &component.Tile{Terrain: board.Terrain[h]}
		ecs.TilePaths[id] = &component.TilePath{}
		grid.AddTile(h, id)
	}
	return ecs, grid
}

func singleTile(terrain hexmap.Terrain) *hexmap.Board {
	return &hexmap.Board{Terrain: map[hexmap.Hex]hexmap.Terrain{{}: terrain}}
}

// cursorFor returns the raw cursor position (top-left origin) over h.
func cursorFor(grid *hexmap.HexGrid, h hexmap.Hex, window WindowSize) hexmap.Point {
	p := grid.HexToWorld(h)
	return hexmap.Point{X: p.X + window.Width/2, Y: p.Y + window.Height/2}
}

func damageAt(ecs *entity.ECS, grid *hexmap.HexGrid, h hexmap.Hex) (uint32, bool) {
	id, ok := grid.TileAt(h)
	if !ok {
		return 0, false
	}
	area, ok := ecs.DamageAreas[id]
	if !ok {
		return 0, false
	}
	return area.Damage, true
}

type recordingMetrics struct {
	placed    int
	rejected  map[string]int
	areaCells int
	ticks     int
	damage    uint64
	destroyed int
}

func newRecordingMetrics() *recordingMetrics {
	return &recordingMetrics{rejected: make(map[string]int)}
}

func (m *recordingMetrics) TowerPlaced()                    { m.placed++ }
func (m *recordingMetrics) PlacementRejected(reason string) { m.rejected[reason]++ }
func (m *recordingMetrics) DamageAreaApplied(cells int)     { m.areaCells += cells }
func (m *recordingMetrics) AttackTick(damage uint64)        { m.ticks++; m.damage += damage }
func (m *recordingMetrics) EnemyDestroyed()                 { m.destroyed++ }

type eventLog struct {
	events []event.Event
}

func (l *eventLog) OnEvent(e event.Event) { l.events = append(l.events, e) }

func (l *eventLog) count(t event.EventType) int {
	n := 0
	for _, e := range l.events {
		if e.Type == t {
			n++
		}
	}
	return n
}
