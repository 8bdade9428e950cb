package tunnel

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"sync/atomic"
	"syscall"

	"github.com/nixpig/hpctools/internal/tunnel/output"
)

// Handle is a tunnel process started by a Manager. The process runs in its own
// session so Stop can kill the shell and everything it spawned. Its combined
// stdout/stderr is retained for streaming.
type Handle struct {
	id      string
	port    int
	command string
	state   atomicState

	cmd          *exec.Cmd
	processState atomic.Pointer[os.ProcessState]
	streamer     *output.Streamer
	pipeWriter   io.WriteCloser

	done chan struct{}
}

func newHandle(id, command string, port, outputLimit int) (*Handle, error) {
	if command == "" {
		return nil, fmt.Errorf("command cannot be empty")
	}

	cmd := exec.Command("sh", "-c", command)
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}

	pr, pw, err := os.Pipe()
	if err != nil {
		return nil, fmt.Errorf("failed to create os pipe: %w", err)
	}

	cmd.Stdout = pw
	cmd.Stderr = pw

	h := &Handle{
		id:         id,
		port:       port,
		command:    command,
		cmd:        cmd,
		streamer:   output.NewStreamer(pr, outputLimit),
		pipeWriter: pw,
		done:       make(chan struct{}),
	}

	h.state.Store(StateCreated)

	return h, nil
}

func (h *Handle) start() error {
	if !h.state.CompareAndSwap(StateCreated, StateRunning) {
		return NewInvalidStateError(h.state.Load(), StateRunning)
	}

	if err := h.cmd.Start(); err != nil {
		h.state.Store(StateFailed)
		h.pipeWriter.Close()
		close(h.done)

		return fmt.Errorf("failed to start process: %w", err)
	}

	h.pipeWriter.Close()

	go func() {
		h.cmd.Wait()

		h.processState.Store(h.cmd.ProcessState)
		h.state.Store(StateExited)

		close(h.done)
	}()

	return nil
}

// Stop kills the tunnel's process group. Stopping a Handle that isn't
// running returns an InvalidStateError.
func (h *Handle) Stop() error {
	if !h.state.CompareAndSwap(StateRunning, StateStopping) {
		return NewInvalidStateError(h.state.Load(), StateStopping)
	}

	// Setsid makes the shell the leader of a new process group with the same
	// id as its pid.
	err := syscall.Kill(-h.cmd.Process.Pid, syscall.SIGKILL)
	if err != nil && !errors.Is(err, syscall.ESRCH) {
		return fmt.Errorf("kill tunnel process group: %w", err)
	}

	return nil
}

// ID returns the unique id of the Handle.
func (h *Handle) ID() string {
	return h.id
}

// PID returns the pid of the tunnel's shell, or 0 if it never started.
func (h *Handle) PID() int {
	if h.cmd.Process == nil {
		return 0
	}

	return h.cmd.Process.Pid
}

// Port returns the forwarded port.
func (h *Handle) Port() int {
	return h.port
}

// Command returns the shell command the tunnel runs.
func (h *Handle) Command() string {
	return h.command
}

// State returns the state of the Handle.
func (h *Handle) State() State {
	return h.state.Load()
}

// Alive reports whether the tunnel process is still running.
func (h *Handle) Alive() bool {
	select {
	case <-h.done:
		return false
	default:
		return true
	}
}

// Done returns a channel that is closed once the tunnel process has exited.
func (h *Handle) Done() <-chan struct{} {
	return h.done
}

// ExitCode returns the exit code of the process, or -1 if it hasn't exited or
// was killed.
func (h *Handle) ExitCode() int {
	ps := h.processState.Load()
	if ps == nil {
		return -1
	}

	return ps.ExitCode()
}

// Output returns an io.ReadCloser of retained output followed by new output
// until the process and anything it spawned close their output.
func (h *Handle) Output() io.ReadCloser {
	return h.streamer.Subscribe()
}

// Snapshot returns the output retained so far.
func (h *Handle) Snapshot() []byte {
	return h.streamer.Snapshot()
}
