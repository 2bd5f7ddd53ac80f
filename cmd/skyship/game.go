package main

import (
	"image/color"
	"log/slog"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/plus3/skyship/config"
	"github.com/plus3/skyship/ecs"
	"github.com/plus3/skyship/ecs/debugui"
	debugui_ebiten "github.com/plus3/skyship/ecs/debugui/ebiten"
	"github.com/plus3/skyship/sim"
)

var keyBindings = map[sim.Key][]ebiten.Key{
	sim.KeyUp:    {ebiten.KeyW, ebiten.KeyArrowUp},
	sim.KeyDown:  {ebiten.KeyS, ebiten.KeyArrowDown},
	sim.KeyLeft:  {ebiten.KeyA, ebiten.KeyArrowLeft},
	sim.KeyRight: {ebiten.KeyD, ebiten.KeyArrowRight},
}

// Game implements ebiten.Game around one scheduler tick per Update.
type Game struct {
	storage   *ecs.Storage
	scheduler *ecs.Scheduler
	input     *ecs.Singleton[sim.InputState]
	camera    *ecs.Singleton[sim.Camera]
	render    *renderSystem
	watcher   *config.Watcher
	logger    *slog.Logger

	// Set only with -debugui.
	imgui   *ecs.Singleton[debugui_ebiten.ImguiBackend]
	uiState *ecs.Singleton[debugui.ImguiInputState]

	paused bool
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.paused = !g.paused
		g.logger.Debug("pause toggled", "paused", g.paused)
	}

	g.applyReloads()
	g.captureInput()

	if g.imgui != nil {
		g.imgui.Get().BeginFrame()
		defer g.imgui.Get().EndFrame()
	}

	if !g.paused {
		g.scheduler.Once(1.0 / float64(ebiten.TPS()))
	}
	return nil
}

func (g *Game) captureInput() {
	input := g.input.Get()
	input.Reset()
	if g.uiState != nil && g.uiState.Get().WantCaptureKeyboard {
		return
	}

	for key, physical := range keyBindings {
		for _, k := range physical {
			if ebiten.IsKeyPressed(k) {
				input.Set(key, true)
			}
		}
	}
}

// applyReloads drains the watcher and replaces the Tuning resource between frames.
// A file that fails to load leaves the current tuning in place.
func (g *Game) applyReloads() {
	if g.watcher == nil {
		return
	}

	for {
		select {
		case path, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			cfg, err := config.Load(path)
			if err != nil {
				g.logger.Warn("configuration reload rejected", "path", path, "error", err)
				continue
			}
			g.storage.AddSingleton(cfg.Tuning())
			g.logger.Info("tuning reloaded", "path", path, "acceleration", cfg.Player.Acceleration, "boundary", cfg.World.Boundary)
		case err, ok := <-g.watcher.Errors:
			if ok {
				g.logger.Warn("configuration watcher", "error", err)
			}
		default:
			return
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	if canvas := g.render.Canvas(); canvas != nil {
		screen.DrawImage(canvas, nil)
	}
	if g.paused {
		ebitenutil.DebugPrintAt(screen, "PAUSED (P to resume)", 8, screen.Bounds().Dy()-20)
	}
	if g.imgui != nil {
		g.imgui.Get().Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if camera := g.camera.Get(); camera != nil {
		camera.Viewport = mgl64.Vec2{float64(outsideWidth), float64(outsideHeight)}
	}
	if g.imgui != nil {
		g.imgui.Get().Layout(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}
