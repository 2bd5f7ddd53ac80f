package sim

import (
	"math"

	"github.com/plus3/skyship/ecs"
)

// frictionRate is the tick rate Friction factors are expressed in.
const frictionRate = 60.0

// PhysicsSystem integrates velocity into position. Entities carrying Friction
// are damped first and entities carrying MaxSpeed are clamped before the step.
type PhysicsSystem struct {
	Bodies ecs.Query[struct {
		*Position
		*Velocity
		Friction *Friction `ecs:"optional"`
		MaxSpeed *MaxSpeed `ecs:"optional"`
	}]
}

func (s *PhysicsSystem) Execute(frame *ecs.UpdateFrame) {
	dt := frame.DeltaTime

	for body := range s.Bodies.Values() {
		vel := body.Velocity.Vec2

		if body.Friction != nil {
			vel = vel.Mul(math.Pow(float64(*body.Friction), dt*frictionRate))
		}
		if body.MaxSpeed != nil {
			if limit, speed := float64(*body.MaxSpeed), vel.Len(); speed > limit && speed > 0 {
				vel = vel.Mul(limit / speed)
			}
		}

		body.Velocity.Vec2 = vel
		body.Position.Vec2 = body.Position.Add(vel.Mul(dt))
	}
}
