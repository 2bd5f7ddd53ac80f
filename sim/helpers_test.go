package sim_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/plus3/skyship/ecs"
	"github.com/plus3/skyship/sim"
	"github.com/stretchr/testify/require"
)

const eps = 1e-9

type world struct {
	storage   *ecs.Storage
	scheduler *ecs.Scheduler
	player    ecs.EntityId
	input     *ecs.Singleton[sim.InputState]
}

// newWorld bootstraps a world without ambient ships and registers nothing.
func newWorld(t *testing.T) *world {
	t.Helper()

	registry := ecs.NewComponentRegistry()
	sim.RegisterComponents(registry)
	storage := ecs.NewStorage(registry)

	opts := sim.DefaultBootstrapOptions()
	opts.AmbientCount = 0
	player := sim.Bootstrap(storage, opts, sim.DefaultTuning())

	return &world{
		storage:   storage,
		scheduler: ecs.NewScheduler(storage),
		player:    player,
		input:     ecs.NewSingleton[sim.InputState](storage),
	}
}

func (w *world) hold(keys ...sim.Key) {
	in := w.input.Get()
	in.Reset()
	for _, key := range keys {
		in.Set(key, true)
	}
}

func (w *world) velocity(t *testing.T) mgl64.Vec2 {
	t.Helper()
	vel := ecs.ReadComponent[sim.Velocity](w.storage, w.player)
	require.NotNil(t, vel)
	return vel.Vec2
}

func (w *world) state(t *testing.T) sim.PlayerState {
	t.Helper()
	state := ecs.ReadComponent[sim.PlayerState](w.storage, w.player)
	require.NotNil(t, state)
	return *state
}

func (w *world) visual(t *testing.T) *sim.Visual {
	t.Helper()
	visual := ecs.ReadComponent[sim.Visual](w.storage, w.player)
	require.NotNil(t, visual)
	return visual
}

// recoverError runs fn and returns the error it panicked with, or nil.
func recoverError(t *testing.T, fn func()) (err error) {
	t.Helper()
	defer func() {
		if r := recover(); r != nil {
			e, ok := r.(error)
			require.True(t, ok, "panic value %v is not an error", r)
			err = e
		}
	}()
	fn()
	return nil
}
