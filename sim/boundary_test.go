package sim_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/plus3/skyship/ecs"
	"github.com/plus3/skyship/sim"
	"github.com/stretchr/testify/assert"
)

func TestReflect(t *testing.T) {
	tests := []struct {
		name      string
		pos, vel  mgl64.Vec2
		want      mgl64.Vec2
		wantFlips int
	}{
		{"past right edge moving out", mgl64.Vec2{1000.5, 0}, mgl64.Vec2{50, 0}, mgl64.Vec2{-50, 0}, 1},
		{"past right edge moving in", mgl64.Vec2{1000.5, 0}, mgl64.Vec2{-50, 0}, mgl64.Vec2{-50, 0}, 0},
		{"exactly on edge", mgl64.Vec2{1000, 0}, mgl64.Vec2{1, 0}, mgl64.Vec2{-1, 0}, 1},
		{"exactly on negative edge", mgl64.Vec2{0, -1000}, mgl64.Vec2{0, -5}, mgl64.Vec2{0, 5}, 1},
		{"corner", mgl64.Vec2{-1200, 1300}, mgl64.Vec2{-3, 4}, mgl64.Vec2{3, -4}, 2},
		{"inside", mgl64.Vec2{999.9, -999.9}, mgl64.Vec2{7, -7}, mgl64.Vec2{7, -7}, 0},
		{"stationary on edge", mgl64.Vec2{1000, 1000}, mgl64.Vec2{0, 0}, mgl64.Vec2{0, 0}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, flips := sim.Reflect(tt.pos, tt.vel, 1000)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantFlips, flips)
		})
	}
}

func TestBoundaryReflectsOnlyBoundedEntities(t *testing.T) {
	w := newWorld(t)
	boundary := &sim.BoundaryReflectionSystem{}
	w.scheduler.Register(ecs.StagePrePhysics, boundary)

	bounded := w.storage.Spawn(sim.Position{mgl64.Vec2{1000.5, 0}}, sim.Velocity{mgl64.Vec2{50, 0}}, sim.Bounded{})
	free := w.storage.Spawn(sim.Position{mgl64.Vec2{1000.5, 0}}, sim.Velocity{mgl64.Vec2{50, 0}})

	w.scheduler.Once(0.016)

	assert.Equal(t, mgl64.Vec2{-50, 0}, ecs.ReadComponent[sim.Velocity](w.storage, bounded).Vec2)
	assert.Equal(t, mgl64.Vec2{50, 0}, ecs.ReadComponent[sim.Velocity](w.storage, free).Vec2)
	assert.Equal(t, 1, boundary.Reflections)

	// Position is never corrected by the reflection itself.
	assert.Equal(t, 1000.5, ecs.ReadComponent[sim.Position](w.storage, bounded).X())
}

func TestBoundaryDoesNotFlipBackWhileOutside(t *testing.T) {
	w := newWorld(t)
	w.scheduler.Register(ecs.StagePrePhysics, &sim.BoundaryReflectionSystem{})
	w.scheduler.Register(ecs.StagePhysics, &sim.PhysicsSystem{})

	id := w.storage.Spawn(sim.Position{mgl64.Vec2{1000.5, 0}}, sim.Velocity{mgl64.Vec2{50, 0}}, sim.Bounded{})

	for range 3 {
		w.scheduler.Once(0.001)
	}

	assert.Equal(t, mgl64.Vec2{-50, 0}, ecs.ReadComponent[sim.Velocity](w.storage, id).Vec2)
	assert.InDelta(t, 1000.35, ecs.ReadComponent[sim.Position](w.storage, id).X(), 1e-9)
}
