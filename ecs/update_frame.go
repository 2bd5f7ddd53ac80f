package ecs

// UpdateFrame carries the timing and buffers of one scheduler tick.
type UpdateFrame struct {
	// DeltaTime is the number of seconds since the previous frame.
	DeltaTime float64
	// Elapsed is the cumulative simulated time in seconds, including this frame.
	Elapsed float64
	// Frame counts ticks starting at 1.
	Frame uint64
	// Stage is the stage currently being executed.
	Stage    Stage
	Commands *Commands
	Storage  *Storage
}

func newUpdateFrame(storage *Storage) *UpdateFrame {
	return &UpdateFrame{
		Commands: newCommands(),
		Storage:  storage,
	}
}
