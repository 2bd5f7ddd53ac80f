package main

import (
	"fmt"
	"image/color"
	"strings"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/plus3/skyship/ecs"
	"github.com/plus3/skyship/sim"
)

const shipSize = 24

var (
	backgroundColor = color.RGBA{R: 0x10, G: 0x14, B: 0x24, A: 0xff}
	boundaryColor   = color.RGBA{R: 0x50, G: 0x60, B: 0x90, A: 0xff}
	hullColor       = [3]float32{0.85, 0.88, 0.95}
	flameColor      = color.RGBA{R: 0xff, G: 0x9a, B: 0x30, A: 0xff}
)

// renderSystem draws the world into an offscreen canvas during the Render stage.
// Game.Draw only blits the canvas, so drawing always sees the state the simulation
// stages produced in the same tick.
type renderSystem struct {
	Camera ecs.Singleton[sim.Camera]
	Tuning ecs.Singleton[sim.Tuning]
	Player ecs.Singleton[sim.PlayerEntity]

	Sprites ecs.Query[struct {
		*sim.Position
		*sim.Visual
		Tint *sim.Tint `ecs:"optional"`
	}]
	States ecs.Query[struct{ *sim.PlayerState }]

	canvas *ebiten.Image
	hud    *hudReporter
}

// Canvas returns the most recently drawn frame, or nil before the first tick.
func (r *renderSystem) Canvas() *ebiten.Image {
	return r.canvas
}

func (r *renderSystem) Execute(frame *ecs.UpdateFrame) {
	camera := r.Camera.Get()
	if camera == nil {
		return
	}

	w, h := int(camera.Viewport.X()), int(camera.Viewport.Y())
	if w <= 0 || h <= 0 {
		return
	}
	if r.canvas == nil || r.canvas.Bounds().Dx() != w || r.canvas.Bounds().Dy() != h {
		if r.canvas != nil {
			r.canvas.Deallocate()
		}
		r.canvas = ebiten.NewImage(w, h)
	}
	r.canvas.Fill(backgroundColor)

	if tuning := r.Tuning.Get(); tuning != nil {
		b := tuning.Boundary
		vector.StrokeRect(r.canvas,
			float32(-b-camera.Position.X()), float32(-b-camera.Position.Y()),
			float32(2*b), float32(2*b), 2, boundaryColor, false)
	}

	for sprite := range r.Sprites.Values() {
		screen := sprite.Position.Sub(camera.Position)
		tint := sim.White
		if sprite.Tint != nil {
			tint = *sprite.Tint
		}
		drawShip(r.canvas, float32(screen.X()), float32(screen.Y()), sprite.Visual.Region(frame.Elapsed), tint)
	}

	ebitenutil.DebugPrintAt(r.canvas, r.status(), 8, 8)
}

func (r *renderSystem) status() string {
	lines := []string{r.hud.Last()}
	if player := r.Player.Get(); player != nil {
		if state := r.States.Get(player.Id); state != nil {
			lines = append(lines, "Mode: "+state.PlayerState.Current.String())
		}
	}
	return strings.Join(lines, "\n")
}

// drawShip draws a placeholder hull centred on (x, y). Regions named ship_N grow
// an exhaust flame N steps long, so flying cycles flicker.
func drawShip(dst *ebiten.Image, x, y float32, region string, tint sim.Tint) {
	half := float32(shipSize) / 2
	hull := color.RGBA{
		R: uint8(255 * hullColor[0] * tint.R),
		G: uint8(255 * hullColor[1] * tint.G),
		B: uint8(255 * hullColor[2] * tint.B),
		A: uint8(255 * tint.A),
	}
	vector.DrawFilledRect(dst, x-half, y-half, shipSize, shipSize, hull, false)

	var step int
	if _, err := fmt.Sscanf(region, "ship_%d", &step); err == nil && step > 0 {
		vector.DrawFilledRect(dst, x-half/2, y+half, half, float32(step)*4, flameColor, false)
	}
}

// hudReporter keeps the latest diagnostics line for the on-screen status.
type hudReporter struct {
	mu   sync.Mutex
	last string
}

func (h *hudReporter) Report(r sim.FpsReport) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.last = sim.FormatReport(r)
}

func (h *hudReporter) Last() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.last == "" {
		return "FPS: -"
	}
	return h.last
}
