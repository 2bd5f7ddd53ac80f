package sim

import "github.com/plus3/skyship/ecs"

// CameraTrackingSystem centers the camera viewport on the player.
type CameraTrackingSystem struct {
	Player ecs.Singleton[PlayerEntity]
	Camera ecs.Singleton[Camera]

	Positions ecs.Query[struct{ *Position }]
}

func (s *CameraTrackingSystem) Execute(frame *ecs.UpdateFrame) {
	player := mustResource(&s.Player, "PlayerEntity")
	camera := mustResource(&s.Camera, "Camera")

	target := s.Positions.Get(player.Id)
	if target == nil {
		fatal(ErrMissingComponent, "player %d lacks Position", player.Id)
	}

	camera.Position = target.Position.Sub(camera.Viewport.Mul(0.5))
}
