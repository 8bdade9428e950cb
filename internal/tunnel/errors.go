package tunnel

import (
	"fmt"
)

// SpawnError is returned when a tunnel process exits before the settle delay
// has elapsed.
type SpawnError struct {
	Command  string
	ExitCode int
	Output   string
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf(
		"tunnel exited with code %d: %s",
		e.ExitCode,
		e.Command,
	)
}

func NewSpawnError(command string, exitCode int, output string) *SpawnError {
	return &SpawnError{Command: command, ExitCode: exitCode, Output: output}
}

// InvalidStateError is returned when attempting an invalid Handle state
// transition.
type InvalidStateError struct {
	from State
	to   State
}

func (e InvalidStateError) Error() string {
	return fmt.Sprintf("cannot go from %s to %s", e.from, e.to)
}

func NewInvalidStateError(from, to State) InvalidStateError {
	return InvalidStateError{from, to}
}
