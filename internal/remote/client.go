package remote

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"sync"

	"golang.org/x/crypto/ssh"
)

// ClientExecutor runs remote commands over a persistent native SSH
// connection. The connection is dialled on first use and redialled once if a
// new session cannot be opened on it. Safe for concurrent use.
type ClientExecutor struct {
	session ClusterSession
	config  *ssh.ClientConfig
	logger  *slog.Logger

	mu     sync.Mutex
	client *ssh.Client
}

// NewClientExecutor creates a ClientExecutor. The config's User defaults to
// the session's user.
func NewClientExecutor(
	session ClusterSession,
	config *ssh.ClientConfig,
	logger *slog.Logger,
) *ClientExecutor {
	cfg := *config
	if cfg.User == "" {
		cfg.User = session.User
	}

	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &ClientExecutor{session: session, config: &cfg, logger: logger}
}

// Run joins cmds and runs them in a new session on the shared connection.
func (e *ClientExecutor) Run(ctx context.Context, cmds ...string) (string, error) {
	cmdline := JoinCommands(cmds)

	s, err := e.newSession(ctx)
	if err != nil {
		return "", NewTransportError(e.session.Target(), err)
	}
	defer s.Close()

	e.logger.Debug("run remote command", "target", e.session.Target(), "cmd", cmdline)

	type result struct {
		out []byte
		err error
	}

	resultCh := make(chan result, 1)

	go func() {
		out, err := s.CombinedOutput(cmdline)
		resultCh <- result{out, err}
	}()

	select {
	case <-ctx.Done():
		// Closing the session unblocks CombinedOutput.
		s.Close()
		return "", NewTransportError(e.session.Target(), ctx.Err())

	case r := <-resultCh:
		if r.err != nil {
			var exitErr *ssh.ExitError
			var missingErr *ssh.ExitMissingError

			if errors.As(r.err, &exitErr) || errors.As(r.err, &missingErr) {
				return string(r.out), nil
			}

			return string(r.out), NewTransportError(
				e.session.Target(),
				fmt.Errorf("run session command: %w", r.err),
			)
		}

		return string(r.out), nil
	}
}

// Close closes the underlying connection, if any.
func (e *ClientExecutor) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.client == nil {
		return nil
	}

	err := e.client.Close()
	e.client = nil

	return err
}

func (e *ClientExecutor) newSession(ctx context.Context) (*ssh.Session, error) {
	client, err := e.connect(ctx)
	if err != nil {
		return nil, err
	}

	s, err := client.NewSession()
	if err == nil {
		return s, nil
	}

	e.logger.Debug("reconnect after session failure", "target", e.session.Target(), "err", err)

	e.Close()

	client, err = e.connect(ctx)
	if err != nil {
		return nil, fmt.Errorf("reconnect: %w", err)
	}

	s, err = client.NewSession()
	if err != nil {
		return nil, fmt.Errorf("open session: %w", err)
	}

	return s, nil
}

func (e *ClientExecutor) connect(ctx context.Context) (*ssh.Client, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.client != nil {
		return e.client, nil
	}

	addr := e.session.Addr()

	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", addr, err)
	}

	c, chans, reqs, err := ssh.NewClientConn(conn, addr, e.config)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("ssh handshake with %s: %w", addr, err)
	}

	e.client = ssh.NewClient(c, chans, reqs)

	return e.client, nil
}
