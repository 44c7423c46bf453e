package state

import (
	"testing"

	"go-hex-defense/internal/app"
	"go-hex-defense/internal/config"
	"go-hex-defense/internal/system"
	"go-hex-defense/pkg/hexmap"
)

type harness struct {
	sm     *StateMachine
	builds int
	last   *app.Game
}

func newHarness() *harness {
	h := &harness{sm: NewStateMachine(nil)}
	cfg := config.Default()
	cfg.Board.Radius = 1
	cfg.Enemy.SpawnInterval = 0
	return h.withConfig(cfg)
}

func (h *harness) withConfig(cfg *config.Config) *harness {
	h.sm.SetState(h.starting(cfg)())
	return h
}

func (h *harness) starting(cfg *config.Config) func() State {
	return func() State {
		return NewStartingState(h.sm, func() *app.Game {
			h.builds++
			h.last = app.NewGame(cfg, nil, nil, nil)
			return h.last
		})
	}
}

func TestStartingBuildsGameThenPlays(t *testing.T) {
	h := newHarness()
	if h.sm.Current().Kind() != Starting || h.builds != 1 {
		t.Fatalf("state %v builds %d", h.sm.Current().Kind(), h.builds)
	}
	if h.sm.Game() != nil {
		t.Fatal("game exposed before Playing")
	}

	h.sm.Update(0.016)
	if h.sm.Current().Kind() != Playing {
		t.Fatalf("state = %v, want playing", h.sm.Current().Kind())
	}
	if h.sm.Game() != h.last {
		t.Fatal("playing state runs a different game")
	}

	h.sm.Update(0.5)
	if got := h.sm.Game().GetGameTime(); got != 0.5 {
		t.Fatalf("game time = %v, want 0.5", got)
	}
}

func TestPollRestartRebuildsOnce(t *testing.T) {
	h := newHarness()
	h.sm.Update(0.016)
	first := h.sm.Game()

	ch := make(chan string, 4)
	ch <- "restart"
	ch <- "restart"
	next := h.starting(config.Default())

	if n := h.sm.PollRestart(ch, next); n != 2 {
		t.Fatalf("PollRestart = %d, want 2", n)
	}
	if h.sm.Current().Kind() != Playing || h.builds != 1 {
		t.Fatal("restart applied before the next update")
	}

	h.sm.Update(0.016)
	if h.builds != 2 {
		t.Fatalf("builds = %d, want 2", h.builds)
	}
	if h.sm.Current().Kind() != Playing {
		t.Fatalf("state = %v, want playing", h.sm.Current().Kind())
	}
	if h.sm.Game() == first {
		t.Fatal("game was not replaced")
	}

	if n := h.sm.PollRestart(ch, next); n != 0 {
		t.Fatalf("PollRestart on empty channel = %d", n)
	}
	h.sm.Update(0.016)
	if h.builds != 2 {
		t.Fatal("rebuilt without a token")
	}
}

func TestRestartDiscardsTowers(t *testing.T) {
	h := newHarness()
	h.sm.Update(0.016)
	g := h.sm.Game()
	// a zero-sized window maps the cursor straight to world space
	g.QueueClick(hexmap.Point{}, system.WindowSize{})
	h.sm.Update(0.016)
	if len(g.Grid.Towers) != 1 {
		t.Fatalf("towers before restart = %d, want 1", len(g.Grid.Towers))
	}

	ch := make(chan string, 1)
	ch <- "restart"
	h.sm.PollRestart(ch, h.starting(config.Default()))
	h.sm.Update(0.016)
	if n := len(h.sm.Game().Grid.Towers); n != 0 {
		t.Fatalf("towers after restart = %d, want 0", n)
	}
}

func TestAppStateString(t *testing.T) {
	for s, want := range map[AppState]string{Starting: "starting", Playing: "playing", AppState(9): "unknown"} {
		if got := s.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", s, got, want)
		}
	}
}
