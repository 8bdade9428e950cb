package remote

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"strings"
)

// commandSeparator joins statements so that each runs only if the previous
// one succeeded, as far as the remote shell honours it.
const commandSeparator = " && "

// Executor runs one or more shell statements on a remote host as a single
// session and returns the combined output.
type Executor interface {
	Run(ctx context.Context, cmds ...string) (string, error)
}

// ClusterSession is the identity every remote command is run under.
type ClusterSession struct {
	Host string
	User string
	// Port is the SSH port. Zero means the default for the executor.
	Port int
}

// Target returns the session as user@host.
func (c ClusterSession) Target() string {
	if c.User == "" {
		return c.Host
	}

	return c.User + "@" + c.Host
}

// Addr returns host:port for dialling, defaulting to port 22.
func (c ClusterSession) Addr() string {
	port := c.Port
	if port == 0 {
		port = 22
	}

	return net.JoinHostPort(c.Host, strconv.Itoa(port))
}

// Validate reports whether the session has enough information to connect.
func (c ClusterSession) Validate() error {
	if c.Host == "" {
		return fmt.Errorf("cluster host cannot be empty")
	}

	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("cluster port must be in valid range")
	}

	return nil
}

// JoinCommands joins statements into a single remote shell command line.
func JoinCommands(cmds []string) string {
	return strings.Join(cmds, commandSeparator)
}

// TransportError is returned when the remote command could not be run at all,
// e.g. the host is unreachable or authentication failed.
type TransportError struct {
	Target string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("remote transport to %s: %v", e.Target, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

func NewTransportError(target string, err error) *TransportError {
	return &TransportError{Target: target, Err: err}
}

var shellQuoter = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "`", "\\`")

// DoubleQuote wraps s in double quotes for a POSIX shell. '$' is left alone
// so that variables such as $HOME in s still expand remotely.
func DoubleQuote(s string) string {
	return `"` + shellQuoter.Replace(s) + `"`
}

// ChangeDir returns a statement that changes the remote working directory
// to dir.
func ChangeDir(dir string) string {
	return "cd " + DoubleQuote(dir)
}
