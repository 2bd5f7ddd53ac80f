package sim

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/plus3/skyship/ecs"
)

type keyBinding struct {
	key Key
	dir mgl64.Vec2
}

// Screen coordinates: +y points down, so "up" decreases y.
var directionBindings = [...]keyBinding{
	{KeyUp, mgl64.Vec2{0, -1}},
	{KeyDown, mgl64.Vec2{0, 1}},
	{KeyLeft, mgl64.Vec2{-1, 0}},
	{KeyRight, mgl64.Vec2{1, 0}},
}

// PlayerControlSystem turns held keys into player acceleration and advances PlayerState.
type PlayerControlSystem struct {
	Player ecs.Singleton[PlayerEntity]
	Input  ecs.Singleton[InputState]
	Tuning ecs.Singleton[Tuning]

	Players ecs.Query[struct {
		*Velocity
		*PlayerState
	}]
}

func (s *PlayerControlSystem) Execute(frame *ecs.UpdateFrame) {
	player := mustResource(&s.Player, "PlayerEntity")
	input := mustResource(&s.Input, "InputState")
	tuning := mustResource(&s.Tuning, "Tuning")

	target := s.Players.Get(player.Id)
	if target == nil {
		fatal(ErrMissingComponent, "player %d lacks Velocity or PlayerState", player.Id)
	}

	step := tuning.Acceleration * frame.DeltaTime
	moving := false
	for _, binding := range directionBindings {
		if !input.Held(binding.key) {
			continue
		}
		target.Velocity.Vec2 = target.Velocity.Add(binding.dir.Mul(step))
		moving = true
	}

	target.PlayerState.Advance(moving)
}
