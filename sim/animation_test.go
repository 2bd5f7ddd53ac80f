package sim_test

import (
	"testing"

	"github.com/plus3/skyship/ecs"
	"github.com/plus3/skyship/sim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnimationSwitchesOnEdgesOnly(t *testing.T) {
	w := newWorld(t)
	animation := &sim.AnimationSelectionSystem{}
	w.scheduler.Register(ecs.StagePrePhysics, &sim.PlayerControlSystem{})
	w.scheduler.Register(ecs.StagePreRender, animation)

	// Idle at start: nothing changes.
	w.scheduler.Once(0.1)
	assert.Equal(t, 0, animation.Switches)
	assert.Equal(t, sim.StaticVisual("ship_0"), *w.visual(t))

	w.hold(sim.KeyRight)
	w.scheduler.Once(0.1)

	visual := w.visual(t)
	require.Equal(t, sim.VisualAnimated, visual.Kind)
	assert.Equal(t, []string{"ship_0", "ship_1", "ship_2"}, visual.Animation.Frames)
	assert.Equal(t, 12.0, visual.Animation.FPS)
	assert.InDelta(t, 0.2, visual.Animation.StartTime, 1e-12)

	// Still flying: the running cycle is left alone.
	visual.Animation.Frames[0] = "marker"
	w.scheduler.Once(0.1)
	assert.Equal(t, "marker", w.visual(t).Animation.Frames[0])
	assert.Equal(t, 1, animation.Switches)

	w.hold()
	w.scheduler.Once(0.1)
	assert.Equal(t, sim.StaticVisual("ship_0"), *w.visual(t))
	assert.Equal(t, 2, animation.Switches)
}

func TestFlyingCycleDoesNotShareFrames(t *testing.T) {
	tuning := sim.DefaultTuning()
	visual := sim.AnimatedVisual(tuning.FlyingCycle, 1)
	visual.Animation.Frames[0] = "changed"
	assert.Equal(t, "ship_0", tuning.FlyingCycle.Frames[0])
}

func TestAnimationFrameAt(t *testing.T) {
	cycle := sim.Animation{Frames: []string{"a", "b", "c"}, FPS: 10, Looping: true, StartTime: 2}

	assert.Equal(t, 0, cycle.FrameAt(1))
	assert.Equal(t, 0, cycle.FrameAt(2))
	assert.Equal(t, 1, cycle.FrameAt(2.15))
	assert.Equal(t, 2, cycle.FrameAt(2.25))
	assert.Equal(t, 0, cycle.FrameAt(2.35))

	cycle.Looping = false
	assert.Equal(t, 2, cycle.FrameAt(10))

	assert.Equal(t, 0, sim.Animation{Frames: []string{"a", "b"}}.FrameAt(5), "zero fps holds the first frame")
	assert.Equal(t, -1, sim.Animation{}.FrameAt(1))
}

func TestVisualRegion(t *testing.T) {
	static := sim.StaticVisual("rock")
	assert.Equal(t, "rock", static.Region(100))

	animated := sim.AnimatedVisual(sim.Animation{Frames: []string{"x", "y"}, FPS: 1, Looping: true}, 3)
	assert.Equal(t, sim.VisualAnimated, animated.Kind)
	assert.Equal(t, "x", animated.Region(3.5))
	assert.Equal(t, "y", animated.Region(4.5))

	single := sim.AnimatedVisual(sim.Animation{Frames: []string{"only"}, FPS: 30}, 3)
	assert.Equal(t, sim.StaticVisual("only"), single)

	assert.Equal(t, "", sim.Visual{Kind: sim.VisualAnimated}.Region(1))
}
