// Skyship is a small top-down flying demo: steer the ship with WASD or the arrow keys.
// Esc or Q quits, P pauses.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/plus3/skyship/config"
	"github.com/plus3/skyship/ecs"
	"github.com/plus3/skyship/ecs/debugui"
	debugui_ebiten "github.com/plus3/skyship/ecs/debugui/ebiten"
	"github.com/plus3/skyship/sim"
)

func main() {
	flag.Parse()

	var out io.Writer = os.Stderr
	if *logFileFlag != "" {
		out = &lumberjack.Logger{
			Filename:   *logFileFlag,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
		}
	}
	logger := slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: levelFlag.value}))
	slog.SetDefault(logger)

	if err := run(logger); err != nil {
		slog.Error("skyship failed", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	cfg, err := config.Load(*configFlag)
	if err != nil {
		return err
	}
	logger.Info("configuration loaded", "path", *configFlag, "boundary", cfg.World.Boundary, "ambient", cfg.World.AmbientCount)

	registry := ecs.NewComponentRegistry()
	sim.RegisterComponents(registry)
	debugui.RegisterDebugUIComponents(registry)
	storage := ecs.NewStorage(registry)
	scheduler := ecs.NewScheduler(storage)

	player := sim.Bootstrap(storage, cfg.Bootstrap(), cfg.Tuning())
	logger.Debug("world bootstrapped", "player", player, "entities", storage.CollectStats().TotalEntityCount)

	hud := &hudReporter{}
	sim.Register(scheduler, sim.MultiReporter{sim.LogReporter{Logger: logger}, hud})

	render := &renderSystem{hud: hud}
	scheduler.Register(ecs.StageRender, render)

	game := &Game{
		storage:   storage,
		scheduler: scheduler,
		input:     ecs.NewSingleton[sim.InputState](storage),
		camera:    ecs.NewSingleton[sim.Camera](storage),
		render:    render,
		logger:    logger,
	}

	if *watchFlag {
		watcher, err := config.NewWatcher(*configFlag)
		if err != nil {
			logger.Warn("configuration watcher disabled", "error", err)
		} else {
			defer watcher.Close()
			game.watcher = watcher
		}
	}

	if *debugUIFlag {
		backend := debugui_ebiten.NewImguiBackend(cfg.Window.Title, cfg.Window.Width, cfg.Window.Height)
		game.imgui = ecs.NewSingleton(storage, backend)
		game.uiState = ecs.NewSingleton[debugui.ImguiInputState](storage)
		debugui.SpawnDebugUI(storage, scheduler)
		storage.Spawn(debugui.ImguiItem{Render: newShipWindow(storage, hud).Render})
	} else {
		ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
		ebiten.SetWindowTitle(cfg.Window.Title)
	}

	err = ebiten.RunGame(game)
	if errors.Is(err, ebiten.Termination) {
		logger.Info("bye", "frames", scheduler.GetStats().Frames)
		return nil
	}
	if err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
