package tunnel

import "sync/atomic"

// State is the lifecycle state of a tunnel Handle.
type State int

const (
	// StateUnknown is the zero value.
	StateUnknown State = iota

	// StateCreated indicates the process is configured but not started.
	StateCreated

	// StateRunning indicates the process has started and not yet exited.
	StateRunning

	// StateStopping indicates Stop has been called but the process has not
	// yet exited.
	StateStopping

	// StateExited indicates the process has exited, by itself or after Stop.
	StateExited

	// StateFailed indicates the process could not be started.
	StateFailed
)

// NOTE: Keep in sync with the State values above.
var states = []string{
	"Unknown",
	"Created",
	"Running",
	"Stopping",
	"Exited",
	"Failed",
}

// String implements the Stringer interface for State.
func (s State) String() string {
	if int(s) < 0 || int(s) >= len(states) {
		return states[0]
	}

	return states[s]
}

// atomicState wraps an atomic.Int32 so state transitions can be validated
// with CompareAndSwap.
type atomicState struct {
	v atomic.Int32
}

func (a *atomicState) Load() State {
	return State(a.v.Load())
}

func (a *atomicState) Store(s State) {
	a.v.Store(int32(s))
}

func (a *atomicState) CompareAndSwap(o, n State) bool {
	return a.v.CompareAndSwap(int32(o), int32(n))
}
