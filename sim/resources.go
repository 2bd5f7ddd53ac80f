package sim

import (
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/plus3/skyship/ecs"
)

// PlayerEntity names the controllable entity. It is inserted once by Bootstrap.
type PlayerEntity struct {
	Id ecs.EntityId
}

// FpsDebug accumulates frame time between diagnostics reports.
type FpsDebug struct {
	Elapsed float64
	Frames  int
}

// Camera is the view onto the world. Position is the world coordinate of the
// viewport's top-left corner.
type Camera struct {
	Position mgl64.Vec2
	Viewport mgl64.Vec2
}

// Key is a discrete directional control.
type Key int

const (
	KeyUp Key = iota
	KeyDown
	KeyLeft
	KeyRight

	keyCount
)

// InputState is the snapshot of held keys for the current frame.
// The host refreshes it before each scheduler tick.
type InputState struct {
	held [keyCount]bool
}

// Held reports whether key is held this frame.
func (in *InputState) Held(key Key) bool {
	return key >= 0 && key < keyCount && in.held[key]
}

// Set records whether key is held.
func (in *InputState) Set(key Key, held bool) {
	if key >= 0 && key < keyCount {
		in.held[key] = held
	}
}

// Reset releases every key.
func (in *InputState) Reset() {
	in.held = [keyCount]bool{}
}

// ReportMode selects what the diagnostics report carries.
type ReportMode string

const (
	// ReportCount emits the raw number of frames in the interval.
	ReportCount ReportMode = "count"
	// ReportRate emits frames divided by the interval length in seconds.
	ReportRate ReportMode = "rate"
)

// Tuning holds the gameplay constants systems read every frame.
// The host may overwrite it between frames when the configuration is reloaded.
type Tuning struct {
	Acceleration float64
	Boundary     float64
	IdleCycle    Animation
	FlyingCycle  Animation

	ReportInterval time.Duration
	ReportMode     ReportMode
}

// DefaultTuning mirrors the defaults of the shipped configuration file.
func DefaultTuning() Tuning {
	return Tuning{
		Acceleration: 800,
		Boundary:     1000,
		IdleCycle: Animation{
			Frames:  []string{"ship_0"},
			FPS:     2,
			Looping: true,
		},
		FlyingCycle: Animation{
			Frames:  []string{"ship_0", "ship_1", "ship_2"},
			FPS:     12,
			Looping: true,
		},
		ReportInterval: time.Second,
		ReportMode:     ReportCount,
	}
}
