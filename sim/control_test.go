package sim_test

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/plus3/skyship/ecs"
	"github.com/plus3/skyship/sim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpKeyForThreeFrames(t *testing.T) {
	w := newWorld(t)
	animation := &sim.AnimationSelectionSystem{}
	w.scheduler.Register(ecs.StagePrePhysics, &sim.PlayerControlSystem{})
	w.scheduler.Register(ecs.StagePreRender, animation)

	const dt = 0.016
	w.hold(sim.KeyUp)

	for frame := 1; frame <= 3; frame++ {
		w.scheduler.Once(dt)

		vel := w.velocity(t)
		assert.InDelta(t, 0, vel.X(), eps)
		assert.InDelta(t, -800*dt*float64(frame), vel.Y(), eps, "frame %d", frame)
		assert.Equal(t, sim.Flying, w.state(t).Current, "frame %d", frame)
		assert.Equal(t, 1, animation.Switches, "frame %d", frame)
	}
}

func TestDiagonalAccelerationIsAdditive(t *testing.T) {
	w := newWorld(t)
	w.scheduler.Register(ecs.StagePrePhysics, &sim.PlayerControlSystem{})

	w.hold(sim.KeyUp, sim.KeyRight)
	w.scheduler.Once(0.01)

	vel := w.velocity(t)
	assert.InDelta(t, 8, vel.X(), eps)
	assert.InDelta(t, -8, vel.Y(), eps)
	assert.InDelta(t, 8*1.4142135623730951, vel.Len(), 1e-6)
}

func TestOpposingKeysCancelButStillFly(t *testing.T) {
	w := newWorld(t)
	w.scheduler.Register(ecs.StagePrePhysics, &sim.PlayerControlSystem{})

	w.hold(sim.KeyLeft, sim.KeyRight)
	w.scheduler.Once(0.016)

	assert.Equal(t, mgl64.Vec2{0, 0}, w.velocity(t))
	assert.Equal(t, sim.Flying, w.state(t).Current)
}

func TestReleasingKeysReturnsToIdle(t *testing.T) {
	w := newWorld(t)
	w.scheduler.Register(ecs.StagePrePhysics, &sim.PlayerControlSystem{})

	w.hold(sim.KeyDown)
	w.scheduler.Once(0.016)
	w.hold()
	w.scheduler.Once(0.016)

	assert.Equal(t, sim.PlayerState{Current: sim.Idle, Previous: sim.Flying}, w.state(t))
	// No keys, no acceleration: the velocity from frame one is kept.
	assert.InDelta(t, 800*0.016, w.velocity(t).Y(), eps)

	w.scheduler.Once(0.016)
	assert.Equal(t, sim.PlayerState{Current: sim.Idle, Previous: sim.Idle}, w.state(t))
}

func TestAccelerationFollowsTuning(t *testing.T) {
	w := newWorld(t)
	w.scheduler.Register(ecs.StagePrePhysics, &sim.PlayerControlSystem{})

	tuning := sim.DefaultTuning()
	tuning.Acceleration = 100
	w.storage.AddSingleton(tuning)

	w.hold(sim.KeyLeft)
	w.scheduler.Once(0.5)
	assert.InDelta(t, -50, w.velocity(t).X(), eps)
}

func TestControlMissingResourceIsFatal(t *testing.T) {
	registry := ecs.NewComponentRegistry()
	sim.RegisterComponents(registry)
	storage := ecs.NewStorage(registry)
	scheduler := ecs.NewScheduler(storage)
	scheduler.Register(ecs.StagePrePhysics, &sim.PlayerControlSystem{})

	err := recoverError(t, func() { scheduler.Once(0.016) })
	require.Error(t, err)
	assert.True(t, errors.Is(err, sim.ErrMissingResource))
	assert.Contains(t, err.Error(), "PlayerEntity")
}

func TestControlMissingComponentIsFatal(t *testing.T) {
	w := newWorld(t)
	w.scheduler.Register(ecs.StagePrePhysics, &sim.PlayerControlSystem{})

	// Point the resource at an entity without PlayerState.
	rock := w.storage.Spawn(sim.Position{}, sim.Velocity{})
	w.storage.AddSingleton(sim.PlayerEntity{Id: rock})

	err := recoverError(t, func() { w.scheduler.Once(0.016) })
	assert.True(t, errors.Is(err, sim.ErrMissingComponent))
}

func TestInputState(t *testing.T) {
	var in sim.InputState
	in.Set(sim.KeyUp, true)
	in.Set(sim.Key(99), true)

	assert.True(t, in.Held(sim.KeyUp))
	assert.False(t, in.Held(sim.KeyDown))
	assert.False(t, in.Held(sim.Key(99)))

	in.Reset()
	assert.False(t, in.Held(sim.KeyUp))
}
