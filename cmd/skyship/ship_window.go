package main

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/skyship/ecs"
	"github.com/plus3/skyship/sim"
)

type shipView struct {
	*sim.Position
	*sim.Velocity
	*sim.PlayerState
}

// shipWindow is the game-specific debug window: player state, camera and tuning.
type shipWindow struct {
	hud *hudReporter

	player *ecs.Singleton[sim.PlayerEntity]
	camera *ecs.Singleton[sim.Camera]
	tuning *ecs.Singleton[sim.Tuning]
	ships  *ecs.Query[shipView]
}

func newShipWindow(storage *ecs.Storage, hud *hudReporter) *shipWindow {
	return &shipWindow{
		hud:    hud,
		player: ecs.NewSingleton[sim.PlayerEntity](storage),
		camera: ecs.NewSingleton[sim.Camera](storage),
		tuning: ecs.NewSingleton[sim.Tuning](storage),
		ships:  ecs.NewQuery[shipView](storage),
	}
}

func (w *shipWindow) Render() {
	if !imgui.BeginV("Skyship", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.Text(w.hud.Last())
	if ship := w.ships.Get(w.player.Get().Id); ship != nil {
		imgui.Text(fmt.Sprintf("Position: %.1f, %.1f", ship.Position.X(), ship.Position.Y()))
		imgui.Text(fmt.Sprintf("Velocity: %.1f, %.1f (%.1f)", ship.Velocity.X(), ship.Velocity.Y(), ship.Velocity.Len()))
		imgui.Text(fmt.Sprintf("Mode: %s (was %s)", ship.PlayerState.Current, ship.PlayerState.Previous))
	}

	camera := w.camera.Get()
	imgui.Text(fmt.Sprintf("Camera: %.1f, %.1f", camera.Position.X(), camera.Position.Y()))

	tuning := w.tuning.Get()
	imgui.Separator()
	imgui.Text(fmt.Sprintf("Acceleration: %.0f", tuning.Acceleration))
	imgui.Text(fmt.Sprintf("Boundary: %.0f", tuning.Boundary))
	imgui.Text(fmt.Sprintf("Report: every %s (%s)", tuning.ReportInterval, tuning.ReportMode))

	imgui.End()
}
