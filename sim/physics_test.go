package sim_test

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/plus3/skyship/ecs"
	"github.com/plus3/skyship/sim"
	"github.com/stretchr/testify/assert"
)

func newPhysicsWorld() (*ecs.Storage, *ecs.Scheduler) {
	registry := ecs.NewComponentRegistry()
	sim.RegisterComponents(registry)
	storage := ecs.NewStorage(registry)
	scheduler := ecs.NewScheduler(storage)
	scheduler.Register(ecs.StagePhysics, &sim.PhysicsSystem{})
	return storage, scheduler
}

func TestPhysicsIntegratesPosition(t *testing.T) {
	storage, scheduler := newPhysicsWorld()
	id := storage.Spawn(sim.Position{mgl64.Vec2{1, 2}}, sim.Velocity{mgl64.Vec2{10, -20}})

	scheduler.Once(0.5)

	assert.Equal(t, mgl64.Vec2{6, -8}, ecs.ReadComponent[sim.Position](storage, id).Vec2)
	assert.Equal(t, mgl64.Vec2{10, -20}, ecs.ReadComponent[sim.Velocity](storage, id).Vec2)
}

func TestPhysicsFrictionIsFrameRateIndependent(t *testing.T) {
	storage, scheduler := newPhysicsWorld()
	id := storage.Spawn(sim.Position{}, sim.Velocity{mgl64.Vec2{100, 0}}, sim.Friction(0.5))

	// One second at 60 ticks of the friction rate.
	scheduler.Once(1.0 / 60.0)
	assert.InDelta(t, 50, ecs.ReadComponent[sim.Velocity](storage, id).X(), 1e-9)

	storage2, scheduler2 := newPhysicsWorld()
	id2 := storage2.Spawn(sim.Position{}, sim.Velocity{mgl64.Vec2{100, 0}}, sim.Friction(0.5))
	scheduler2.Once(1.0 / 120.0)
	scheduler2.Once(1.0 / 120.0)
	assert.InDelta(t, 50, ecs.ReadComponent[sim.Velocity](storage2, id2).X(), 1e-9)
}

func TestPhysicsClampsSpeed(t *testing.T) {
	storage, scheduler := newPhysicsWorld()
	id := storage.Spawn(sim.Position{}, sim.Velocity{mgl64.Vec2{300, 400}}, sim.MaxSpeed(100))

	scheduler.Once(0.01)

	vel := ecs.ReadComponent[sim.Velocity](storage, id).Vec2
	assert.InDelta(t, 100, vel.Len(), 1e-9)
	assert.InDelta(t, 60, vel.X(), 1e-9)
	assert.InDelta(t, 80, vel.Y(), 1e-9)
	assert.False(t, math.IsNaN(vel.X()))
}

func TestPhysicsLeavesStaticEntitiesAlone(t *testing.T) {
	storage, scheduler := newPhysicsWorld()
	id := storage.Spawn(sim.Position{mgl64.Vec2{300, 300}}, sim.StaticVisual("ship_0"))

	scheduler.Once(1)
	assert.Equal(t, mgl64.Vec2{300, 300}, ecs.ReadComponent[sim.Position](storage, id).Vec2)
}
