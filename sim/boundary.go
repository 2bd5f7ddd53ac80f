package sim

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/plus3/skyship/ecs"
)

// BoundaryReflectionSystem bounces Bounded entities off a square world boundary.
type BoundaryReflectionSystem struct {
	Tuning ecs.Singleton[Tuning]

	Entities ecs.Query[struct {
		*Position
		*Velocity
		*Bounded
	}]

	// Reflections counts velocity components flipped since the system was registered.
	Reflections int
}

func (s *BoundaryReflectionSystem) Execute(frame *ecs.UpdateFrame) {
	bound := mustResource(&s.Tuning, "Tuning").Boundary

	for entity := range s.Entities.Values() {
		reflected, flips := Reflect(entity.Position.Vec2, entity.Velocity.Vec2, bound)
		entity.Velocity.Vec2 = reflected
		s.Reflections += flips
	}
}

// Reflect negates each velocity component whose position is at or past ±bound
// while still moving outward. Axes are independent; position is not corrected.
func Reflect(pos, vel mgl64.Vec2, bound float64) (mgl64.Vec2, int) {
	flips := 0
	for axis := range pos {
		if (pos[axis] >= bound && vel[axis] > 0) || (pos[axis] <= -bound && vel[axis] < 0) {
			vel[axis] = -vel[axis]
			flips++
		}
	}
	return vel, flips
}
