package slurm

import "strings"

// JobState is a job state code as reported by the scheduler. Codes this
// package doesn't recognise are kept verbatim rather than rejected, so a newer
// scheduler with extra states doesn't break callers.
type JobState string

const (
	// JobStateUnknown is the zero value, e.g. when the scheduler printed no
	// state at all.
	JobStateUnknown JobState = ""

	JobStateBootFail    JobState = "BOOT_FAIL"
	JobStateCancelled   JobState = "CANCELLED"
	JobStateCompleted   JobState = "COMPLETED"
	JobStateConfiguring JobState = "CONFIGURING"
	JobStateCompleting  JobState = "COMPLETING"
	JobStateDeadline    JobState = "DEADLINE"
	JobStateFailed      JobState = "FAILED"
	JobStateNodeFail    JobState = "NODE_FAIL"
	JobStateOutOfMemory JobState = "OUT_OF_MEMORY"
	JobStatePending     JobState = "PENDING"
	JobStatePreempted   JobState = "PREEMPTED"
	JobStateRunning     JobState = "RUNNING"
	JobStateResvDelHold JobState = "RESV_DEL_HOLD"
	JobStateRequeueFed  JobState = "REQUEUE_FED"
	JobStateRequeueHold JobState = "REQUEUE_HOLD"
	JobStateRequeued    JobState = "REQUEUED"
	JobStateResizing    JobState = "RESIZING"
	JobStateRevoked     JobState = "REVOKED"
	JobStateSignaling   JobState = "SIGNALING"
	JobStateSpecialExit JobState = "SPECIAL_EXIT"
	JobStateStopped     JobState = "STOPPED"
	JobStateSuspended   JobState = "SUSPENDED"
	JobStateTimeout     JobState = "TIMEOUT"
)

type stateInfo struct {
	compact  string
	terminal bool
}

// NOTE: Keep in sync with the constants above. From the JOB STATE CODES
// section of squeue(1).
var jobStates = map[JobState]stateInfo{
	JobStateBootFail:    {"BF", true},
	JobStateCancelled:   {"CA", true},
	JobStateCompleted:   {"CD", true},
	JobStateConfiguring: {"CF", false},
	JobStateCompleting:  {"CG", false},
	JobStateDeadline:    {"DL", true},
	JobStateFailed:      {"F", true},
	JobStateNodeFail:    {"NF", true},
	JobStateOutOfMemory: {"OOM", true},
	JobStatePending:     {"PD", false},
	JobStatePreempted:   {"PR", true},
	JobStateRunning:     {"R", false},
	JobStateResvDelHold: {"RD", false},
	JobStateRequeueFed:  {"RF", false},
	JobStateRequeueHold: {"RH", false},
	JobStateRequeued:    {"RQ", false},
	JobStateResizing:    {"RS", false},
	JobStateRevoked:     {"RV", true},
	JobStateSignaling:   {"SI", false},
	JobStateSpecialExit: {"SE", false},
	JobStateStopped:     {"ST", false},
	JobStateSuspended:   {"S", false},
	JobStateTimeout:     {"TO", true},
}

var compactStates = func() map[string]JobState {
	m := make(map[string]JobState, len(jobStates))
	for s, info := range jobStates {
		m[info.compact] = s
	}
	return m
}()

// ParseJobState parses a long ("RUNNING") or compact ("R") state code.
// Unrecognised codes are returned as-is, trimmed.
func ParseJobState(code string) JobState {
	code = strings.TrimSpace(code)

	upper := strings.ToUpper(code)

	if _, ok := jobStates[JobState(upper)]; ok {
		return JobState(upper)
	}

	if s, ok := compactStates[upper]; ok {
		return s
	}

	// squeue reports e.g. "CANCELLED by 1234" for some states.
	if first, _, ok := strings.Cut(upper, " "); ok {
		if _, known := jobStates[JobState(first)]; known {
			return JobState(first)
		}
	}

	return JobState(code)
}

// Known reports whether s is part of the scheduler vocabulary.
func (s JobState) Known() bool {
	_, ok := jobStates[s]
	return ok
}

// IsTerminal reports whether the job has finished and will not run again.
// Unknown states are treated as non-terminal.
func (s JobState) IsTerminal() bool {
	return jobStates[s].terminal
}

// IsRunning reports whether the job is running. RUNNING is the only state
// considered ready.
func (s JobState) IsRunning() bool {
	return s == JobStateRunning
}

// Compact returns the short code, e.g. "R" for RUNNING, or s itself if it
// has none.
func (s JobState) Compact() string {
	if info, ok := jobStates[s]; ok {
		return info.compact
	}

	return string(s)
}

// String implements the Stringer interface for JobState.
func (s JobState) String() string {
	if s == JobStateUnknown {
		return "UNKNOWN"
	}

	return string(s)
}
