package sim_test

import (
	"testing"

	"github.com/plus3/skyship/sim"
	"github.com/stretchr/testify/assert"
)

func TestPlayerStateAdvance(t *testing.T) {
	state := sim.PlayerState{Current: sim.Idle, Previous: sim.Idle}

	state.Advance(true)
	assert.Equal(t, sim.PlayerState{Current: sim.Flying, Previous: sim.Idle}, state)
	assert.True(t, state.Transitioned(sim.Flying))
	assert.True(t, state.TransitionedFrom(sim.Idle, sim.Flying))
	assert.False(t, state.Transitioned(sim.Idle))

	state.Advance(true)
	assert.False(t, state.Transitioned(sim.Flying))

	state.Advance(false)
	assert.True(t, state.Transitioned(sim.Idle))
	assert.False(t, state.TransitionedFrom(sim.Idle, sim.Idle))
}

func TestFlightModeString(t *testing.T) {
	assert.Equal(t, "Idle", sim.Idle.String())
	assert.Equal(t, "Flying", sim.Flying.String())
	assert.Equal(t, "FlightMode(7)", sim.FlightMode(7).String())
}
