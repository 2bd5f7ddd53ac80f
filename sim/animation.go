package sim

import "github.com/plus3/skyship/ecs"

// AnimationSelectionSystem switches the player's Visual on Idle/Flying edges.
// It only writes when the state changed this frame, so a cycle that keeps playing
// is never restarted.
type AnimationSelectionSystem struct {
	Player ecs.Singleton[PlayerEntity]
	Tuning ecs.Singleton[Tuning]

	Players ecs.Query[struct {
		*PlayerState
		*Visual
	}]

	// Switches counts Visual rewrites.
	Switches int
}

func (s *AnimationSelectionSystem) Execute(frame *ecs.UpdateFrame) {
	player := mustResource(&s.Player, "PlayerEntity")
	tuning := mustResource(&s.Tuning, "Tuning")

	target := s.Players.Get(player.Id)
	if target == nil {
		fatal(ErrMissingComponent, "player %d lacks PlayerState or Visual", player.Id)
	}

	switch state := *target.PlayerState; {
	case state.Transitioned(Flying):
		*target.Visual = AnimatedVisual(tuning.FlyingCycle, frame.Elapsed)
	case state.Transitioned(Idle):
		*target.Visual = AnimatedVisual(tuning.IdleCycle, frame.Elapsed)
	default:
		return
	}
	s.Switches++
}
