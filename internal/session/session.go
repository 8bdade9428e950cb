package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/nixpig/hpctools/internal/remote"
	"github.com/nixpig/hpctools/internal/slurm"
	"github.com/nixpig/hpctools/internal/tunnel"
)

const (
	DefaultMetadataPrefix = "jupyter_lab"
	DefaultScript         = "jupyter_lab_gpu.sh"
	DefaultWaitTimeout    = 60 * time.Second
	DefaultPollInterval   = time.Second
)

// JobController is the subset of *slurm.Controller a Session uses.
type JobController interface {
	Submit(ctx context.Context, script string, args []string, workDir string) (string, error)
	Cancel(ctx context.Context, jobID string) error
	State(ctx context.Context, jobID string, compact bool) (slurm.JobState, error)
}

// Waiter is implemented by *slurm.Poller.
type Waiter interface {
	WaitForRunning(
		ctx context.Context,
		jobID string,
		timeout time.Duration,
		interval time.Duration,
	) (slurm.WaitResult, error)
}

// Tunnels is the subset of *tunnel.Manager a Session uses.
type Tunnels interface {
	KillTunnels(port int) (int, error)
	StartTunnel(ctx context.Context, command string, port int) (*tunnel.Handle, error)
}

// Config describes one notebook session.
type Config struct {
	Port int

	// ScriptsPath is the directory on the cluster holding the job scripts,
	// where jobs are submitted from and metadata files are written. It may
	// reference shell variables, e.g. "$HOME/slurm_scripts".
	ScriptsPath string

	// DefaultScript is submitted when Start isn't given a script.
	DefaultScript string

	// EnvName, if set, is passed to the job script after the port.
	EnvName string

	MetadataPrefix string

	// WaitTimeout bounds Start's wait for the job to run. Zero uses
	// DefaultWaitTimeout; a negative value waits indefinitely.
	WaitTimeout time.Duration

	PollInterval time.Duration
}

func (c *Config) setDefaults() {
	if c.DefaultScript == "" {
		c.DefaultScript = DefaultScript
	}

	if c.MetadataPrefix == "" {
		c.MetadataPrefix = DefaultMetadataPrefix
	}

	if c.WaitTimeout == 0 {
		c.WaitTimeout = DefaultWaitTimeout
	}

	if c.PollInterval <= 0 {
		c.PollInterval = DefaultPollInterval
	}
}

func (c *Config) validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}

	return nil
}

// Status is a point-in-time view of a session.
type Status struct {
	Active bool

	// Metadata is nil when no metadata file could be read.
	Metadata *Metadata

	// State is the scheduler state of Metadata.JobID, or unknown if the
	// scheduler doesn't know the job.
	State slurm.JobState
}

// Session controls the notebook job for one port.
type Session struct {
	cfg     Config
	exec    remote.Executor
	jobs    JobController
	waiter  Waiter
	tunnels Tunnels
	logger  *slog.Logger

	// metadata is the last successfully read record. Only Refresh sets it.
	metadata *Metadata
}

// Option configures a Session.
type Option func(*Session)

// WithJobController replaces the slurm.Controller built from the executor.
func WithJobController(jobs JobController) Option {
	return func(s *Session) {
		s.jobs = jobs
	}
}

// WithWaiter replaces the slurm.Poller.
func WithWaiter(w Waiter) Option {
	return func(s *Session) {
		s.waiter = w
	}
}

// WithTunnels replaces the tunnel.Manager.
func WithTunnels(t Tunnels) Option {
	return func(s *Session) {
		s.tunnels = t
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

// New creates a Session for cfg.Port that runs remote commands through exec.
func New(cfg Config, exec remote.Executor, opts ...Option) (*Session, error) {
	cfg.setDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	s := &Session{
		cfg:    cfg,
		exec:   exec,
		logger: slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		opt(s)
	}

	s.logger = s.logger.With("port", cfg.Port)

	if s.jobs == nil {
		s.jobs = slurm.NewController(exec, s.logger)
	}

	if s.waiter == nil {
		s.waiter = slurm.NewPoller(s.jobs, slurm.WithPollerLogger(s.logger))
	}

	if s.tunnels == nil {
		s.tunnels = tunnel.NewManager(tunnel.WithLogger(s.logger))
	}

	return s, nil
}

// Port returns the port the session is bound to.
func (s *Session) Port() int {
	return s.cfg.Port
}

// Metadata returns the record cached by the last Refresh, which may be stale
// or nil.
func (s *Session) Metadata() *Metadata {
	return s.metadata
}

// Refresh reads the metadata file and replaces the cached record. When the
// file is missing or malformed the cache is cleared and (nil, nil) returned.
// When the file can't be read at all the cache is cleared and the error
// returned.
func (s *Session) Refresh(ctx context.Context) (*Metadata, error) {
	s.metadata = nil

	cmds := []string{
		"cat " + MetadataPath(s.cfg.MetadataPrefix, s.cfg.Port),
	}
	if s.cfg.ScriptsPath != "" {
		cmds = append([]string{remote.ChangeDir(s.cfg.ScriptsPath)}, cmds...)
	}

	out, err := s.exec.Run(ctx, cmds...)
	if err != nil {
		return nil, fmt.Errorf("read metadata: %w", err)
	}

	md, err := Parse([]byte(out))
	if err != nil {
		s.logger.Debug("no session metadata", "err", err)
		return nil, nil
	}

	s.metadata = md

	return md, nil
}

// Status reports whether the session is active: its metadata exists and the
// job it names is RUNNING. The metadata is re-read when refresh is set or
// nothing is cached.
func (s *Session) Status(ctx context.Context, refresh bool) (Status, error) {
	md := s.metadata

	if refresh || md == nil {
		var err error
		if md, err = s.Refresh(ctx); err != nil {
			return Status{}, err
		}
	}

	if md == nil {
		return Status{}, nil
	}

	state, err := s.jobs.State(ctx, md.JobID, false)
	if err != nil {
		if errors.Is(err, slurm.ErrJobNotFound) {
			return Status{Metadata: md}, nil
		}

		return Status{Metadata: md}, err
	}

	return Status{
		Active:   state.IsRunning(),
		Metadata: md,
		State:    state,
	}, nil
}

// IsActive is Status reduced to whether the session is active.
func (s *Session) IsActive(ctx context.Context, refresh bool) (bool, error) {
	status, err := s.Status(ctx, refresh)
	if err != nil {
		return false, err
	}

	return status.Active, nil
}

// StartOptions controls Start.
type StartOptions struct {
	// Script to submit. Empty uses Config.DefaultScript.
	Script string

	// Restart cancels an active job and submits a new one.
	Restart bool

	// Wait blocks until the new job is RUNNING or WaitTimeout elapses.
	Wait bool

	// Tunnel starts an SSH tunnel once the waited-for session is active.
	// It has no effect without Wait.
	Tunnel bool
}

// StartResult reports what Start did.
type StartResult struct {
	// JobID of the submitted job; empty if nothing was submitted.
	JobID string

	// AlreadyActive is set when the session was active and Restart wasn't
	// requested, so nothing was done.
	AlreadyActive bool

	// CancelledJobID is the active job cancelled by a restart.
	CancelledJobID string

	// Waited is set when Start waited for the job to run.
	Waited  bool
	Running bool
	Elapsed time.Duration

	Metadata *Metadata

	// Tunnel is the tunnel started for the session. It is nil when no tunnel
	// was requested or when TunnelErr is set.
	Tunnel *tunnel.Handle

	// TunnelErr is why the tunnel couldn't be started. The session itself
	// started successfully.
	TunnelErr error
}

// Start submits the notebook job unless the session is already active.
func (s *Session) Start(ctx context.Context, opts StartOptions) (*StartResult, error) {
	status, err := s.Status(ctx, true)
	if err != nil {
		return nil, err
	}

	result := &StartResult{Metadata: status.Metadata}

	if status.Active {
		if !opts.Restart {
			s.logger.Info("session already active", "job_id", status.Metadata.JobID)

			result.AlreadyActive = true

			return result, nil
		}

		s.logger.Info("stopping active session", "job_id", status.Metadata.JobID)

		if err := s.jobs.Cancel(ctx, status.Metadata.JobID); err != nil {
			return nil, err
		}

		result.CancelledJobID = status.Metadata.JobID
	}

	script := opts.Script
	if script == "" {
		script = s.cfg.DefaultScript
	}

	args := []string{strconv.Itoa(s.cfg.Port)}
	if s.cfg.EnvName != "" {
		args = append(args, s.cfg.EnvName)
	}

	jobID, err := s.jobs.Submit(ctx, script, args, s.cfg.ScriptsPath)
	if err != nil {
		return result, err
	}

	result.JobID = jobID

	if !opts.Wait {
		return result, nil
	}

	wr, err := s.waiter.WaitForRunning(ctx, jobID, max(s.cfg.WaitTimeout, 0), s.cfg.PollInterval)
	if err != nil {
		return result, err
	}

	result.Waited = true
	result.Elapsed = wr.Elapsed

	status, err = s.Status(ctx, true)
	if err != nil {
		return result, err
	}

	result.Running = status.Active
	result.Metadata = status.Metadata

	if !status.Active || !opts.Tunnel {
		return result, nil
	}

	if n, err := s.tunnels.KillTunnels(s.cfg.Port); err != nil {
		s.logger.Warn("failed to kill stale tunnels", "killed", n, "err", err)
	}

	h, err := s.tunnels.StartTunnel(ctx, status.Metadata.Cmd, s.cfg.Port)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return result, ctxErr
		}

		result.TunnelErr = err

		return result, nil
	}

	result.Tunnel = h

	return result, nil
}

// StopResult reports what Stop did.
type StopResult struct {
	JobID   string
	Stopped bool
}

// Stop cancels the active job. When the session isn't active nothing is done
// and Stopped is false.
func (s *Session) Stop(ctx context.Context) (*StopResult, error) {
	status, err := s.Status(ctx, true)
	if err != nil {
		return nil, err
	}

	if !status.Active {
		s.logger.Info("no active session to stop")
		return &StopResult{}, nil
	}

	if err := s.jobs.Cancel(ctx, status.Metadata.JobID); err != nil {
		return nil, err
	}

	s.logger.Info("stopped session", "job_id", status.Metadata.JobID)

	return &StopResult{JobID: status.Metadata.JobID, Stopped: true}, nil
}
