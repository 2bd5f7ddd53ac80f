package sim_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/plus3/skyship/ecs"
	"github.com/plus3/skyship/sim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterStages(t *testing.T) {
	w := newWorld(t)
	sim.Register(w.scheduler, nil)

	stats := w.scheduler.GetStats()
	require.Len(t, stats.Systems, 6)

	type entry struct {
		Stage ecs.Stage
		Name  string
	}
	var got []entry
	for _, sys := range stats.Systems {
		got = append(got, entry{sys.Stage, sys.Name})
	}
	assert.Equal(t, []entry{
		{ecs.StagePrePhysics, "PlayerControlSystem"},
		{ecs.StagePrePhysics, "BoundaryReflectionSystem"},
		{ecs.StagePhysics, "PhysicsSystem"},
		{ecs.StagePreRender, "AnimationSelectionSystem"},
		{ecs.StagePreRender, "CameraTrackingSystem"},
		{ecs.StageUI, "DiagnosticsSystem"},
	}, got)
}

func TestPipelineEndToEnd(t *testing.T) {
	w := newWorld(t)
	reporter := &captureReporter{}
	pipeline := sim.Register(w.scheduler, reporter)

	bouncer := w.storage.Spawn(sim.Position{mgl64.Vec2{1000.5, 0}}, sim.Velocity{mgl64.Vec2{50, 0}}, sim.Bounded{})

	w.hold(sim.KeyUp)
	for range 3 {
		w.scheduler.Once(0.016)
	}

	assert.Equal(t, sim.Flying, w.state(t).Current)
	assert.Equal(t, 1, pipeline.Animation.Switches)
	assert.Equal(t, 1, pipeline.Boundary.Reflections)
	assert.Equal(t, -50.0, ecs.ReadComponent[sim.Velocity](w.storage, bouncer).X())
	assert.Less(t, w.velocity(t).Y(), 0.0)

	pos := ecs.ReadComponent[sim.Position](w.storage, w.player).Vec2
	assert.Less(t, pos.Y(), 100.0)

	camera := ecs.NewSingleton[sim.Camera](w.storage).Get()
	assert.Equal(t, pos.Sub(mgl64.Vec2{640, 360}), camera.Position)

	for range 60 {
		w.scheduler.Once(0.016)
	}
	assert.NotEmpty(t, reporter.reports)
}
