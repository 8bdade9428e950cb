package remote

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strconv"
)

// sshFailureExitCode is the exit status ssh uses for its own errors, as
// opposed to the exit status of the remote command.
const sshFailureExitCode = 255

// CommandExecutor runs remote commands with the local ssh binary, relying on
// the user's ssh configuration (keys, agent, known_hosts, ProxyJump, etc).
type CommandExecutor struct {
	session   ClusterSession
	binary    string
	extraArgs []string
	logger    *slog.Logger
}

// CommandOption configures a CommandExecutor.
type CommandOption func(*CommandExecutor)

// WithBinary overrides the ssh binary, which defaults to "ssh" on PATH.
func WithBinary(binary string) CommandOption {
	return func(e *CommandExecutor) {
		e.binary = binary
	}
}

// WithExtraArgs passes additional arguments to ssh before the target.
func WithExtraArgs(args ...string) CommandOption {
	return func(e *CommandExecutor) {
		e.extraArgs = append(e.extraArgs, args...)
	}
}

// WithCommandLogger sets the logger used for debug output.
func WithCommandLogger(logger *slog.Logger) CommandOption {
	return func(e *CommandExecutor) {
		e.logger = logger
	}
}

// NewCommandExecutor creates a CommandExecutor for the given session.
func NewCommandExecutor(
	session ClusterSession,
	opts ...CommandOption,
) *CommandExecutor {
	e := &CommandExecutor{
		session: session,
		binary:  "ssh",
		logger:  slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Run joins cmds and runs them in one ssh invocation.
func (e *CommandExecutor) Run(ctx context.Context, cmds ...string) (string, error) {
	cmdline := JoinCommands(cmds)

	cmd := exec.CommandContext(ctx, e.binary, e.args(cmdline)...)

	e.logger.Debug("run remote command", "target", e.session.Target(), "cmd", cmdline)

	out, err := cmd.CombinedOutput()
	if err != nil {
		if ctx.Err() != nil {
			return string(out), NewTransportError(e.session.Target(), ctx.Err())
		}

		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && exitErr.ExitCode() != sshFailureExitCode {
			// The remote command ran and failed. Callers read the output.
			return string(out), nil
		}

		return string(out), NewTransportError(
			e.session.Target(),
			fmt.Errorf("run %s: %w (output: %q)", e.binary, err, out),
		)
	}

	return string(out), nil
}

func (e *CommandExecutor) args(cmdline string) []string {
	args := make([]string, 0, len(e.extraArgs)+4)

	if e.session.Port != 0 {
		args = append(args, "-p", strconv.Itoa(e.session.Port))
	}

	args = append(args, e.extraArgs...)
	args = append(args, e.session.Target(), cmdline)

	return args
}
