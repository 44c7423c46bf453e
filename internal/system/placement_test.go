package system

import (
	"testing"

	"go-hex-defense/internal/event"
	"go-hex-defense/pkg/hexmap"
)

func newPlacement(board *hexmap.Board) (*PlacementSystem, *event.Queue[event.TowerCreated], *recordingMetrics) {
	ecs, grid := buildGrid(board)
	queue := event.NewQueue[event.TowerCreated]()
	metrics := newRecordingMetrics()
	return NewPlacementSystem(ecs, grid, queue, metrics, nil), queue, metrics
}

func TestTryPlaceTowerOnClearTile(t *testing.T) {
	s, queue, metrics := newPlacement(hexmap.NewBoard(2, 0, nil))
	target := hexmap.Hex{Q: 1, R: -1}

	if !s.TryPlaceTower(cursorFor(s.grid, target, testWindow), testWindow) {
		t.Fatal("placement rejected")
	}

	id, ok := s.grid.TowerAt(target)
	if !ok {
		t.Fatal("tower map has no entry")
	}
	tower := s.ecs.Towers[id]
	if tower == nil || tower.Hex != target {
		t.Fatalf("tower component = %+v", tower)
	}
	want := s.grid.HexToWorld(target)
	if pos := s.ecs.Positions[id]; pos == nil || pos.Point() != want {
		t.Fatalf("tower position = %+v, want %v", pos, want)
	}
	created := queue.Drain()
	if len(created) != 1 || created[0].ID != id || created[0].Hex != target {
		t.Fatalf("created events = %+v", created)
	}
	if metrics.placed != 1 {
		t.Errorf("placed metric = %d", metrics.placed)
	}
}

func TestTryPlaceTowerOnBlockedTile(t *testing.T) {
	s, _, _ := newPlacement(singleTile(hexmap.Blocked))
	if !s.TryPlaceTower(cursorFor(s.grid, hexmap.Hex{}, testWindow), testWindow) {
		t.Fatal("blocked tiles accept towers")
	}
}

func TestTryPlaceTowerRejections(t *testing.T) {
	tests := []struct {
		name    string
		terrain hexmap.Terrain
		target  hexmap.Hex
		reason  string
	}{
		{"spawner", hexmap.Spawner, hexmap.Hex{}, RejectInvalidTerrain},
		{"goal", hexmap.Goal, hexmap.Hex{}, RejectInvalidTerrain},
		{"off grid", hexmap.Clear, hexmap.Hex{Q: 5, R: 5}, RejectOffGrid},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, queue, metrics := newPlacement(singleTile(tc.terrain))
			entitiesBefore := s.ecs.NextID

			if s.TryPlaceTower(cursorFor(s.grid, tc.target, testWindow), testWindow) {
				t.Fatal("placement accepted")
			}
			if len(s.grid.Towers) != 0 || len(s.ecs.Towers) != 0 {
				t.Fatal("tower state changed")
			}
			if s.ecs.NextID != entitiesBefore {
				t.Fatal("an entity was allocated")
			}
			if queue.Len() != 0 {
				t.Fatal("tower-created event emitted")
			}
			if metrics.rejected[tc.reason] != 1 {
				t.Errorf("rejected = %v, want one %q", metrics.rejected, tc.reason)
			}
		})
	}
}

func TestTryPlaceTowerOccupied(t *testing.T) {
	s, queue, metrics := newPlacement(singleTile(hexmap.Clear))
	cursor := cursorFor(s.grid, hexmap.Hex{}, testWindow)

	if !s.TryPlaceTower(cursor, testWindow) {
		t.Fatal("first placement rejected")
	}
	first, _ := s.grid.TowerAt(hexmap.Hex{})
	if s.TryPlaceTower(cursor, testWindow) {
		t.Fatal("second placement accepted")
	}
	if len(s.grid.Towers) != 1 || len(s.ecs.Towers) != 1 {
		t.Fatalf("towers: grid %d, ecs %d", len(s.grid.Towers), len(s.ecs.Towers))
	}
	if id, _ := s.grid.TowerAt(hexmap.Hex{}); id != first {
		t.Fatal("tower entry replaced")
	}
	if queue.Len() != 1 {
		t.Fatalf("queue length = %d, want 1", queue.Len())
	}
	if metrics.rejected[RejectOccupied] != 1 {
		t.Errorf("rejected = %v", metrics.rejected)
	}
}

func TestTryPlaceTowerCentersCursorOnWindow(t *testing.T) {
	board := hexmap.NewBoard(1, 0, nil)
	board.Set(hexmap.Hex{}, hexmap.Goal)

	// the window centre is the origin cell, which is a goal
	s, _, _ := newPlacement(board)
	if s.TryPlaceTower(hexmap.Point{X: testWindow.Width / 2, Y: testWindow.Height / 2}, testWindow) {
		t.Fatal("tower placed on goal")
	}
	// the raw top-left corner is far off the board
	if s.TryPlaceTower(hexmap.Point{}, testWindow) {
		t.Fatal("tower placed off grid")
	}
	// a neighbour of the centre is fine
	if !s.TryPlaceTower(hexmap.Point{X: testWindow.Width/2 + testHexSize*hexmap.Sqrt3, Y: testWindow.Height / 2}, testWindow) {
		t.Fatal("neighbour placement rejected")
	}
	if _, ok := s.grid.TowerAt(hexmap.Hex{Q: 1, R: 0}); !ok {
		t.Fatal("tower not on the east neighbour")
	}
}

func TestPlacementUpdateUsesLastClick(t *testing.T) {
	s, queue, _ := newPlacement(hexmap.NewBoard(2, 0, nil))
	s.QueueClick(cursorFor(s.grid, hexmap.Hex{Q: -1, R: 0}, testWindow), testWindow)
	s.QueueClick(cursorFor(s.grid, hexmap.Hex{Q: 1, R: 0}, testWindow), testWindow)

	if !s.Update() {
		t.Fatal("Update placed nothing")
	}
	if _, ok := s.grid.TowerAt(hexmap.Hex{Q: 1, R: 0}); !ok {
		t.Fatal("last click not honoured")
	}
	if _, ok := s.grid.TowerAt(hexmap.Hex{Q: -1, R: 0}); ok {
		t.Fatal("earlier click placed a tower")
	}
	if s.Update() {
		t.Fatal("clicks were not cleared")
	}
	if queue.Len() != 1 {
		t.Fatalf("queue length = %d", queue.Len())
	}
}

func TestTryPlaceTowerWithoutGrid(t *testing.T) {
	s := NewPlacementSystem(nil, nil, event.NewQueue[event.TowerCreated](), nil, nil)
	if s.TryPlaceTower(hexmap.Point{}, testWindow) {
		t.Fatal("placement without grid succeeded")
	}
}
