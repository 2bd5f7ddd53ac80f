package sim

import "math"

// Sprite is a single static atlas region.
type Sprite struct {
	Region string
}

// Animation is a cycle of atlas regions played at FPS frames per second,
// counted from StartTime (seconds of simulated time).
type Animation struct {
	Frames    []string
	FPS       float64
	Looping   bool
	StartTime float64
}

// FrameAt returns the index into Frames shown at the given elapsed time.
// Non-looping cycles hold their last frame once finished.
func (a Animation) FrameAt(elapsed float64) int {
	if len(a.Frames) == 0 {
		return -1
	}
	if a.FPS <= 0 || elapsed <= a.StartTime {
		return 0
	}

	n := int(math.Floor((elapsed - a.StartTime) * a.FPS))
	if a.Looping {
		return n % len(a.Frames)
	}
	return min(n, len(a.Frames)-1)
}

// VisualKind selects which half of a Visual is in use.
type VisualKind int

const (
	VisualStatic VisualKind = iota
	VisualAnimated
)

// Visual is an entity's sprite descriptor: either one static region or an animated cycle.
type Visual struct {
	Kind      VisualKind
	Sprite    Sprite
	Animation Animation
}

// StaticVisual returns a Visual showing a single region.
func StaticVisual(region string) Visual {
	return Visual{Kind: VisualStatic, Sprite: Sprite{Region: region}}
}

// AnimatedVisual returns a Visual playing cycle from start.
// A single-frame cycle collapses to a static region.
func AnimatedVisual(cycle Animation, start float64) Visual {
	if len(cycle.Frames) == 1 {
		return StaticVisual(cycle.Frames[0])
	}
	cycle.Frames = append([]string(nil), cycle.Frames...)
	cycle.StartTime = start
	return Visual{Kind: VisualAnimated, Animation: cycle}
}

// Region returns the atlas region to draw at the given elapsed time.
func (v Visual) Region(elapsed float64) string {
	if v.Kind == VisualStatic {
		return v.Sprite.Region
	}
	idx := v.Animation.FrameAt(elapsed)
	if idx < 0 {
		return ""
	}
	return v.Animation.Frames[idx]
}
