// Package tunnel finds, kills and starts local SSH port-forwarding processes
// that expose a notebook running on a cluster node.
//
// Tunnels are identified by scanning local processes: any process whose name
// contains "ssh" and whose command line contains "-L <port>" is considered a
// tunnel for that port. Matching is by substring, so "-L 9010" also matches a
// forward of port 90100.
//
// A tunnel started by a Manager is represented by a Handle, which captures the
// process's combined output and reports whether it is still alive.
package tunnel
