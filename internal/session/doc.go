// Package session starts and stops a notebook server running as a batch job
// on one port of a SLURM cluster, and opens an SSH tunnel to it.
//
// A running job announces itself by writing a metadata file,
// "<prefix>.<port>.json", into the scripts directory on the cluster. The file
// names the job id, the node the server listens on and the ssh command that
// forwards the port locally. A session is active when that file exists and the
// job it names is RUNNING. A missing or unreadable file just means the
// session is inactive.
//
// Operations on a Session are not safe for concurrent use. Manager
// serialises them per port.
package session
