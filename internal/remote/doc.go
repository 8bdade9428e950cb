// Package remote runs shell commands on a cluster login node.
//
// An Executor joins one or more statements into a single remote shell
// invocation and returns the combined stdout/stderr as text. There is no
// separate exit-code channel: a command that runs but fails remotely is not an
// error, callers infer success from the text. Only failing to reach or run on
// the remote host is reported, as a *TransportError.
//
// Two Executors are provided: CommandExecutor shells out to the ssh binary and
// ClientExecutor keeps a native SSH connection open.
package remote
