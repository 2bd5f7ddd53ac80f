package sim

//go:generate go tool stringer -type=FlightMode

// FlightMode is the player's movement state.
type FlightMode int

const (
	Idle FlightMode = iota
	Flying
)

// PlayerState records the player's mode for this frame and the one before it.
// Previous always holds the value Current had when the frame's control update began.
type PlayerState struct {
	Current  FlightMode
	Previous FlightMode
}

// Advance shifts Current into Previous and sets Current from the moving flag.
func (s *PlayerState) Advance(moving bool) {
	s.Previous = s.Current
	if moving {
		s.Current = Flying
	} else {
		s.Current = Idle
	}
}

// Transitioned reports whether the state entered to this frame from any mode other than to.
func (s PlayerState) Transitioned(to FlightMode) bool {
	return s.Previous != to && s.Current == to
}

// TransitionedFrom reports an exact from -> to edge.
func (s PlayerState) TransitionedFrom(from, to FlightMode) bool {
	return s.Previous == from && s.Current == to
}
