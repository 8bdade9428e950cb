package tunnel

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Process is a local process as seen by a ProcessLister.
type Process struct {
	PID     int
	Name    string
	Cmdline []string
}

// ProcessLister lists local processes.
type ProcessLister interface {
	ListProcesses() ([]Process, error)
}

// ProcLister lists processes by reading a procfs mount.
type ProcLister struct {
	// Root is the procfs mount point. Empty means "/proc".
	Root string
}

// ListProcesses reads the name and command line of every process under Root.
// Processes that exit mid-scan, or can't be read, are skipped.
func (l ProcLister) ListProcesses() ([]Process, error) {
	root := l.Root
	if root == "" {
		root = "/proc"
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", root, err)
	}

	var procs []Process

	for _, e := range entries {
		if !e.IsDir() {
			continue
		}

		pid, err := strconv.Atoi(e.Name())
		if err != nil {
			continue
		}

		dir := filepath.Join(root, e.Name())

		comm, err := os.ReadFile(filepath.Join(dir, "comm"))
		if err != nil {
			continue
		}

		cmdline, err := os.ReadFile(filepath.Join(dir, "cmdline"))
		if err != nil {
			continue
		}

		procs = append(procs, Process{
			PID:     pid,
			Name:    strings.TrimSpace(string(comm)),
			Cmdline: splitCmdline(cmdline),
		})
	}

	return procs, nil
}

// splitCmdline splits a NUL-separated /proc/<pid>/cmdline.
func splitCmdline(b []byte) []string {
	b = bytes.TrimRight(b, "\x00")
	if len(b) == 0 {
		return nil
	}

	var args []string
	for arg := range bytes.SplitSeq(b, []byte{0}) {
		args = append(args, string(arg))
	}

	return args
}

// Matches reports whether p looks like an SSH tunnel forwarding port.
//
// NOTE: Matching is by substring, so a forward of 90100 also matches 9010.
func Matches(p Process, port int) bool {
	if !strings.Contains(p.Name, "ssh") {
		return false
	}

	return strings.Contains(
		strings.Join(p.Cmdline, " "),
		"-L "+strconv.Itoa(port),
	)
}
