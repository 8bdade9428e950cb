package slurm

import (
	"errors"
	"fmt"
)

var (
	// ErrJobNotFound is returned when the scheduler no longer knows the job
	// id. It is a normal result, distinct from a failure to query.
	ErrJobNotFound = errors.New("job not found")
)

// SubmitRejectedError is returned when sbatch output doesn't contain the
// submission marker. Output is kept verbatim for the caller to inspect.
type SubmitRejectedError struct {
	Output string
}

func (e *SubmitRejectedError) Error() string {
	return fmt.Sprintf("job submission rejected: %q", e.Output)
}

func NewSubmitRejectedError(output string) *SubmitRejectedError {
	return &SubmitRejectedError{Output: output}
}

// MalformedOutputError is returned when scheduler output can't be parsed.
type MalformedOutputError struct {
	Command string
	Output  string
	Reason  string
}

func (e *MalformedOutputError) Error() string {
	return fmt.Sprintf("malformed %s output (%s): %q", e.Command, e.Reason, e.Output)
}

func NewMalformedOutputError(command, output, reason string) *MalformedOutputError {
	return &MalformedOutputError{Command: command, Output: output, Reason: reason}
}
