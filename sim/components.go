package sim

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/plus3/skyship/ecs"
)

// Position is an entity's location in world units.
type Position struct {
	mgl64.Vec2
}

// Velocity is an entity's displacement per second in world units.
type Velocity struct {
	mgl64.Vec2
}

// Player tags the controllable ship.
type Player struct{}

// Bounded tags entities whose velocity reflects at the world boundary.
// It is attached at spawn time and never added or removed afterwards.
type Bounded struct{}

// Friction is the factor velocity is multiplied by per 1/60 s.
type Friction float64

// MaxSpeed caps the velocity magnitude.
type MaxSpeed float64

// Tint is a color multiplier used when drawing.
type Tint struct {
	R, G, B, A float32
}

// White is the neutral tint.
var White = Tint{R: 1, G: 1, B: 1, A: 1}

// RegisterComponents registers every component type used by the simulation.
func RegisterComponents(registry *ecs.ComponentRegistry) {
	ecs.RegisterComponent[Position](registry)
	ecs.RegisterComponent[Velocity](registry)
	ecs.RegisterComponent[Player](registry)
	ecs.RegisterComponent[Bounded](registry)
	ecs.RegisterComponent[Friction](registry)
	ecs.RegisterComponent[MaxSpeed](registry)
	ecs.RegisterComponent[Tint](registry)
	ecs.RegisterComponent[PlayerState](registry)
	ecs.RegisterComponent[Visual](registry)
}
