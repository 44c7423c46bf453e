// cmd/game/main.go
package main

import (
	"context"
	"flag"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"

	"go-hex-defense/internal/app"
	"go-hex-defense/internal/config"
	"go-hex-defense/internal/logging"
	"go-hex-defense/internal/observability"
	"go-hex-defense/internal/restart"
	"go-hex-defense/internal/state"
	"go-hex-defense/internal/system"
	"go-hex-defense/internal/utils"
	"go-hex-defense/pkg/hexmap"
	"go-hex-defense/pkg/render"
)

type AppGame struct {
	cfg            *config.Config
	stateMachine   *state.StateMachine
	renderer       *render.HexRenderer
	restarts       <-chan string
	newStarting    func() state.State
	metrics        *observability.SimCollector
	window         system.WindowSize
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > a.cfg.MaxDeltaTime {
		deltaTime = a.cfg.MaxDeltaTime
	}
	a.lastUpdateTime = now

	if n := a.stateMachine.PollRestart(a.restarts, a.newStarting); n > 0 {
		a.metrics.RestartRequested(n)
	}
	if g := a.stateMachine.Game(); g != nil {
		a.handleInput(g)
	}
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) handleInput(g *app.Game) {
	x, y := ebiten.CursorPosition()
	cursor := hexmap.Point{X: float64(x), Y: float64(y)}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		g.QueueClick(cursor, a.window)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.ToggleTerrainAt(cursor, a.window)
	}
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.renderer.Draw(screen, a.stateMachine.Game())
}

// Layout keeps the logical screen equal to the window so that cursor
// positions and the world origin share one frame.
func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	a.window = system.WindowSize{Width: float64(outsideWidth), Height: float64(outsideHeight)}
	return outsideWidth, outsideHeight
}

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logrus.WithError(err).Fatal("failed to load config")
	}
	logger, err := logging.New(cfg.Log)
	if err != nil {
		logrus.WithError(err).Fatal("failed to set up logging")
	}

	registry := prometheus.NewRegistry()
	metrics, err := observability.NewSimCollector(registry)
	if err != nil {
		logger.WithError(err).Fatal("failed to register metrics")
	}
	if cfg.Metrics.Addr != "" {
		http.Handle("/metrics", metrics.Handler())
		go func() {
			logger.WithError(http.ListenAndServe(cfg.Metrics.Addr, nil)).Warn("metrics server stopped")
		}()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	restarts := make(chan string, cfg.Restart.Buffer)
	backoff := time.Duration(cfg.Restart.Backoff * float64(time.Second))
	go restart.NewReader(os.Stdin, restarts, backoff, logger.WithField("component", "restart")).Run(ctx)

	sm := state.NewStateMachine(logger)
	factory := func() *app.Game {
		prng := utils.NewPRNGService(cfg.Board.Seed)
		return app.NewGame(cfg, prng.Rand(), logger.WithField("seed", prng.Seed()), metrics)
	}
	newStarting := func() state.State { return state.NewStartingState(sm, factory) }
	sm.SetState(newStarting())

	appGame := &AppGame{
		cfg:            cfg,
		stateMachine:   sm,
		renderer:       render.NewHexRenderer(nil),
		restarts:       restarts,
		newStarting:    newStarting,
		metrics:        metrics,
		window:         system.WindowSize{Width: float64(cfg.Window.Width), Height: float64(cfg.Window.Height)},
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(appGame); err != nil {
		logger.WithError(err).Fatal("game loop failed")
	}
}
