package tunnel

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"os"
	"slices"
	"sync"
	"syscall"
	"time"

	"github.com/google/uuid"
)

const (
	// DefaultSettleDelay is how long a new tunnel is given before its
	// liveness is checked.
	DefaultSettleDelay = time.Second

	// outputGrace bounds the wait for a failed tunnel's output to be fully
	// read before it is reported.
	outputGrace = 100 * time.Millisecond
)

var ErrTunnelNotFound = errors.New("tunnel not found")

// KillFunc sends SIGKILL to the process with the given pid.
type KillFunc func(pid int) error

func killProcess(pid int) error {
	p, err := os.FindProcess(pid)
	if err != nil {
		return err
	}

	return p.Kill()
}

// Manager finds, kills and starts SSH tunnels. Tunnels it starts are tracked
// by port so their output can be streamed.
type Manager struct {
	lister      ProcessLister
	kill        KillFunc
	settle      time.Duration
	outputLimit int
	logger      *slog.Logger

	// NOTE: Only the most recently started tunnel for each port is tracked.
	handles map[int]*Handle
	mu      sync.Mutex
}

// Option configures a Manager.
type Option func(*Manager)

// WithProcessLister replaces the /proc scanner.
func WithProcessLister(l ProcessLister) Option {
	return func(m *Manager) {
		m.lister = l
	}
}

// WithKillFunc replaces the function used to kill tunnel processes.
func WithKillFunc(kill KillFunc) Option {
	return func(m *Manager) {
		m.kill = kill
	}
}

// WithSettleDelay sets how long StartTunnel waits before checking the tunnel
// is alive.
func WithSettleDelay(d time.Duration) Option {
	return func(m *Manager) {
		m.settle = d
	}
}

// WithOutputLimit sets how many bytes of output are retained per tunnel.
func WithOutputLimit(n int) Option {
	return func(m *Manager) {
		m.outputLimit = n
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) {
		m.logger = logger
	}
}

// NewManager creates a Manager that scans /proc and kills with SIGKILL.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		lister:  ProcLister{},
		kill:    killProcess,
		settle:  DefaultSettleDelay,
		logger:  slog.New(slog.DiscardHandler),
		handles: make(map[int]*Handle),
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// FindTunnels returns the sorted pids of processes that look like SSH tunnels
// for port. See Matches.
func (m *Manager) FindTunnels(port int) ([]int, error) {
	procs, err := m.lister.ListProcesses()
	if err != nil {
		return nil, fmt.Errorf("list processes: %w", err)
	}

	var pids []int
	for _, p := range procs {
		if Matches(p, port) {
			pids = append(pids, p.PID)
		}
	}

	slices.Sort(pids)

	return slices.Compact(pids), nil
}

// KillTunnels kills every tunnel for port and returns how many were killed.
// A process that exits before it can be killed is skipped and not counted.
func (m *Manager) KillTunnels(port int) (int, error) {
	pids, err := m.FindTunnels(port)
	if err != nil {
		return 0, err
	}

	var killed int
	var errs []error

	for _, pid := range pids {
		if err := m.kill(pid); err != nil {
			if errors.Is(err, os.ErrProcessDone) || errors.Is(err, syscall.ESRCH) {
				m.logger.Debug("tunnel already exited", "port", port, "pid", pid)
				continue
			}

			errs = append(errs, fmt.Errorf("kill %d: %w", pid, err))
			continue
		}

		killed++

		m.logger.Info("killed tunnel", "port", port, "pid", pid)
	}

	return killed, errors.Join(errs...)
}

// StartTunnel runs command with sh in the background and returns its Handle.
// After the settle delay the process is checked once: if it has already
// exited, the Handle is returned along with a *SpawnError. A tunnel that dies
// later isn't detected here; watch Handle.Done for that.
func (m *Manager) StartTunnel(
	ctx context.Context,
	command string,
	port int,
) (*Handle, error) {
	h, err := newHandle(uuid.NewString(), command, port, m.outputLimit)
	if err != nil {
		return nil, err
	}

	if err := h.start(); err != nil {
		return nil, err
	}

	m.mu.Lock()
	m.handles[port] = h
	m.mu.Unlock()

	t := time.NewTimer(m.settle)
	defer t.Stop()

	select {
	case <-ctx.Done():
		h.Stop()
		return nil, ctx.Err()
	case <-t.C:
	}

	if !h.Alive() {
		select {
		case <-h.streamer.Done():
		case <-time.After(outputGrace):
		}

		out := string(h.Snapshot())

		m.logger.Error(
			"failed to start tunnel",
			"port", port,
			"command", command,
			"exit_code", h.ExitCode(),
			"output", out,
		)

		return h, NewSpawnError(command, h.ExitCode(), out)
	}

	m.logger.Info("started tunnel", "port", port, "pid", h.PID(), "id", h.ID())

	return h, nil
}

// Handle returns the most recent tunnel started for port, or
// ErrTunnelNotFound.
func (m *Manager) Handle(port int) (*Handle, error) {
	m.mu.Lock()
	h, exists := m.handles[port]
	m.mu.Unlock()

	if !exists {
		return nil, ErrTunnelNotFound
	}

	return h, nil
}

// Shutdown makes a best effort attempt to stop every running tunnel started
// by the Manager.
func (m *Manager) Shutdown() {
	m.mu.Lock()
	handles := slices.Collect(maps.Values(m.handles))
	m.mu.Unlock()

	var wg sync.WaitGroup

	for _, h := range handles {
		if h.State() == StateRunning {
			wg.Go(func() {
				if err := h.Stop(); err != nil {
					m.logger.Warn("failed to stop tunnel", "port", h.Port(), "err", err)
				}
			})
		}
	}

	wg.Wait()
}
