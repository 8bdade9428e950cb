package session

import (
	"context"
	"sync"

	"github.com/nixpig/hpctools/internal/remote"
	"github.com/nixpig/hpctools/internal/tunnel"
)

// Manager creates Sessions on demand, one per port, and serialises operations
// on each of them. Operations on different ports run concurrently.
type Manager struct {
	template Config
	exec     remote.Executor
	tunnels  *tunnel.Manager
	opts     []Option

	// NOTE: Sessions are never removed. Ports are few, and a Session holds
	// no resources beyond its cached metadata.
	sessions map[int]*managedSession
	mu       sync.Mutex
}

type managedSession struct {
	mu      sync.Mutex
	session *Session
}

// NewManager creates a Manager. template supplies every field of a Session's
// Config except the port. All sessions share tunnels; nil uses a default
// tunnel.Manager.
func NewManager(
	template Config,
	exec remote.Executor,
	tunnels *tunnel.Manager,
	opts ...Option,
) *Manager {
	if tunnels == nil {
		tunnels = tunnel.NewManager()
	}

	return &Manager{
		template: template,
		exec:     exec,
		tunnels:  tunnels,
		opts:     append([]Option{WithTunnels(tunnels)}, opts...),
		sessions: make(map[int]*managedSession),
	}
}

// With runs fn with exclusive access to the Session for port, creating it if
// needed.
func (m *Manager) With(port int, fn func(*Session) error) error {
	ms, err := m.get(port)
	if err != nil {
		return err
	}

	ms.mu.Lock()
	defer ms.mu.Unlock()

	return fn(ms.session)
}

// Start starts the session on port. See Session.Start.
func (m *Manager) Start(
	ctx context.Context,
	port int,
	opts StartOptions,
) (result *StartResult, err error) {
	err = m.With(port, func(s *Session) error {
		result, err = s.Start(ctx, opts)
		return err
	})

	return result, err
}

// Stop stops the session on port. See Session.Stop.
func (m *Manager) Stop(ctx context.Context, port int) (result *StopResult, err error) {
	err = m.With(port, func(s *Session) error {
		result, err = s.Stop(ctx)
		return err
	})

	return result, err
}

// Status refreshes and returns the status of the session on port.
func (m *Manager) Status(ctx context.Context, port int) (status Status, err error) {
	err = m.With(port, func(s *Session) error {
		status, err = s.Status(ctx, true)
		return err
	})

	return status, err
}

// Shutdown makes a best effort attempt to stop tunnels started by any
// session. Jobs on the cluster are left running.
func (m *Manager) Shutdown() {
	m.tunnels.Shutdown()
}

func (m *Manager) get(port int) (*managedSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if ms, exists := m.sessions[port]; exists {
		return ms, nil
	}

	cfg := m.template
	cfg.Port = port

	s, err := New(cfg, m.exec, m.opts...)
	if err != nil {
		return nil, err
	}

	ms := &managedSession{session: s}
	m.sessions[port] = ms

	return ms, nil
}
