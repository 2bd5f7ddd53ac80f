package sim

import "github.com/plus3/skyship/ecs"

// Pipeline holds the registered simulation systems so hosts and tests can inspect their counters.
type Pipeline struct {
	Control     *PlayerControlSystem
	Boundary    *BoundaryReflectionSystem
	Physics     *PhysicsSystem
	Animation   *AnimationSelectionSystem
	Camera      *CameraTrackingSystem
	Diagnostics *DiagnosticsSystem
}

// Register installs the simulation systems in their stages:
//
//	PrePhysics: player control, boundary reflection
//	Physics:    integration
//	PreRender:  animation selection, camera tracking
//	UI:         diagnostics
//
// The Render stage is left to the host.
func Register(scheduler *ecs.Scheduler, reporter Reporter) *Pipeline {
	p := &Pipeline{
		Control:     &PlayerControlSystem{},
		Boundary:    &BoundaryReflectionSystem{},
		Physics:     &PhysicsSystem{},
		Animation:   &AnimationSelectionSystem{},
		Camera:      &CameraTrackingSystem{},
		Diagnostics: &DiagnosticsSystem{Reporter: reporter},
	}

	scheduler.Register(ecs.StagePrePhysics, p.Control)
	scheduler.Register(ecs.StagePrePhysics, p.Boundary)
	scheduler.Register(ecs.StagePhysics, p.Physics)
	scheduler.Register(ecs.StagePreRender, p.Animation)
	scheduler.Register(ecs.StagePreRender, p.Camera)
	scheduler.Register(ecs.StageUI, p.Diagnostics)

	return p
}
