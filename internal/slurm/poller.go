package slurm

import (
	"context"
	"errors"
	"log/slog"
	"time"
)

// StateReader reads the point-in-time state of a job. *Controller implements
// it.
type StateReader interface {
	State(ctx context.Context, jobID string, compact bool) (JobState, error)
}

// Clock abstracts time for the Poller so the wait loop can be tested without
// sleeping.
type Clock interface {
	Now() time.Time
	// Sleep blocks for d or until ctx is done, returning ctx.Err() if so.
	Sleep(ctx context.Context, d time.Duration) error
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

func (realClock) Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// WaitResult is the outcome of Poller.WaitForRunning.
type WaitResult struct {
	Running bool
	Elapsed time.Duration
}

// Poller blocks until a job reaches RUNNING or a timeout elapses.
type Poller struct {
	states StateReader
	clock  Clock
	logger *slog.Logger
}

// PollerOption configures a Poller.
type PollerOption func(*Poller)

// WithClock replaces the wall clock, for tests.
func WithClock(clock Clock) PollerOption {
	return func(p *Poller) {
		p.clock = clock
	}
}

// WithPollerLogger sets the logger.
func WithPollerLogger(logger *slog.Logger) PollerOption {
	return func(p *Poller) {
		p.logger = logger
	}
}

// NewPoller creates a Poller reading state from states.
func NewPoller(states StateReader, opts ...PollerOption) *Poller {
	p := &Poller{
		states: states,
		clock:  realClock{},
		logger: slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// WaitForRunning polls the job state every interval until it is RUNNING or
// timeout has elapsed. A non-positive timeout waits indefinitely, so only ctx
// can end the wait early.
//
// The first state read happens before any sleep, so an already running job
// returns immediately. Time spent reading state is subtracted from the next
// sleep so reads start roughly every interval regardless of remote latency.
//
// A job the scheduler doesn't know (yet) counts as not running. Any other
// error from reading state ends the wait and is returned.
func (p *Poller) WaitForRunning(
	ctx context.Context,
	jobID string,
	timeout time.Duration,
	interval time.Duration,
) (WaitResult, error) {
	p.logger.Info("waiting for job", "job_id", jobID, "timeout", timeout)

	start := p.clock.Now()

	var running, timedOut bool
	var elapsed time.Duration

	for !running && !timedOut {
		pollStart := p.clock.Now()

		state, err := p.states.State(ctx, jobID, false)
		if err != nil && !errors.Is(err, ErrJobNotFound) {
			return WaitResult{Elapsed: p.clock.Now().Sub(start)}, err
		}

		running = err == nil && state.IsRunning()

		pollElapsed := p.clock.Now().Sub(pollStart)
		elapsed = p.clock.Now().Sub(start)

		timedOut = timeout > 0 && elapsed >= timeout

		if running || timedOut {
			break
		}

		if err := p.clock.Sleep(ctx, max(interval-pollElapsed, 0)); err != nil {
			return WaitResult{Elapsed: p.clock.Now().Sub(start)}, err
		}
	}

	if running {
		p.logger.Info("job running", "job_id", jobID, "elapsed", elapsed)
	} else {
		p.logger.Warn("timed out waiting for job", "job_id", jobID, "elapsed", elapsed)
	}

	return WaitResult{Running: running, Elapsed: elapsed}, nil
}
