package sim

import (
	"errors"
	"fmt"

	"github.com/plus3/skyship/ecs"
)

var (
	// ErrMissingResource marks a required singleton that was never inserted.
	ErrMissingResource = errors.New("sim: missing resource")
	// ErrMissingComponent marks a player entity lacking a required component.
	ErrMissingComponent = errors.New("sim: missing component")
)

// fatal aborts the frame. Missing core data means bootstrap is broken and
// there is no safe degraded mode, so the panic is left to terminate the process.
func fatal(err error, format string, args ...any) {
	panic(fmt.Errorf("%w: "+format, append([]any{err}, args...)...))
}

func mustResource[T any](r *ecs.Singleton[T], name string) *T {
	v := r.Get()
	if v == nil {
		fatal(ErrMissingResource, "%s", name)
	}
	return v
}
