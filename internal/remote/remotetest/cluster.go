// Package remotetest provides an in-memory SLURM login node implementing
// remote.Executor, for use in tests.
//
// It understands the small set of commands issued by the slurm and session
// packages: cd, sbatch, scancel, squeue (state, statecompact and %all) and cat.
package remotetest

import (
	"context"
	"fmt"
	"path"
	"slices"
	"strconv"
	"strings"
	"sync"
)

const (
	submittedMarker  = "Submitted batch job"
	invalidJobOutput = "slurm_load_jobs error: Invalid job id specified"
	firstJobID       = 1000
)

var compactCodes = map[string]string{
	"PENDING":     "PD",
	"RUNNING":     "R",
	"CANCELLED":   "CA",
	"COMPLETED":   "CD",
	"COMPLETING":  "CG",
	"FAILED":      "F",
	"TIMEOUT":     "TO",
	"SUSPENDED":   "S",
	"CONFIGURING": "CF",
}

// Job is a job known to the fake scheduler.
type Job struct {
	ID      string
	Script  string
	Args    []string
	WorkDir string
	State   string

	queries int
}

// Cluster is a fake login node. The zero value is not usable; use NewCluster.
type Cluster struct {
	mu sync.Mutex

	nextID    int
	jobs      map[string]*Job
	files     map[string]string
	calls     [][]string
	cancelled []string

	transportErr  error
	rejectOutput  string
	autoStartN    int
	onSubmit      func(*Job)
	extraSqueueLn string
}

// NewCluster creates an empty fake cluster. Submitted jobs stay PENDING until
// changed with SetState or SetAutoStart.
func NewCluster() *Cluster {
	return &Cluster{
		nextID:     firstJobID,
		jobs:       make(map[string]*Job),
		files:      make(map[string]string),
		autoStartN: -1,
	}
}

// Run implements remote.Executor.
func (c *Cluster) Run(ctx context.Context, cmds ...string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.calls = append(c.calls, slices.Clone(cmds))

	if c.transportErr != nil {
		return "", c.transportErr
	}

	cwd := "~"

	var out strings.Builder
	for _, cmd := range cmds {
		fields := strings.Fields(cmd)
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "cd":
			if len(fields) > 1 {
				cwd = unquote(strings.TrimSpace(strings.TrimSpace(cmd)[len("cd"):]))
			}
		case "sbatch":
			out.WriteString(c.sbatch(fields[1:], cwd))
		case "scancel":
			out.WriteString(c.scancel(fields[1:]))
		case "squeue":
			out.WriteString(c.squeue(fields[1:]))
		case "cat":
			out.WriteString(c.cat(fields[1:], cwd))
		default:
			fmt.Fprintf(&out, "bash: %s: command not found\n", fields[0])
		}
	}

	return out.String(), nil
}

// FailWith makes every subsequent Run return err. Pass nil to recover.
func (c *Cluster) FailWith(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.transportErr = err
}

// RejectSubmissions makes sbatch print output instead of accepting jobs.
// Pass "" to accept again.
func (c *Cluster) RejectSubmissions(output string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.rejectOutput = output
}

// SetAutoStart makes PENDING jobs become RUNNING once they have been queried
// n times. A negative n disables it.
func (c *Cluster) SetAutoStart(n int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.autoStartN = n
}

// OnSubmit registers a hook called with each accepted job, while the cluster
// lock is held. The hook may mutate the job and call WriteFileLocked.
func (c *Cluster) OnSubmit(fn func(*Job)) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.onSubmit = fn
}

// WithSqueueNoise adds a line of output before squeue results, e.g. a warning
// printed by the scheduler.
func (c *Cluster) WithSqueueNoise(line string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.extraSqueueLn = line
}

// AddJob registers a job with the given state and returns its id.
func (c *Cluster) AddJob(state string) string {
	c.mu.Lock()
	defer c.mu.Unlock()

	j := c.newJobLocked()
	j.State = state

	return j.ID
}

// SetState sets the state of a known job.
func (c *Cluster) SetState(id, state string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if j, ok := c.jobs[id]; ok {
		j.State = state
	}
}

// State returns the state of a job, or "" if unknown.
func (c *Cluster) State(id string) string {
	c.mu.Lock()
	defer c.mu.Unlock()

	if j, ok := c.jobs[id]; ok {
		return j.State
	}

	return ""
}

// ForgetJob removes a job, as the scheduler does some time after it ends.
func (c *Cluster) ForgetJob(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.jobs, id)
}

// WriteFile sets the contents of a remote file.
func (c *Cluster) WriteFile(name, content string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.WriteFileLocked(name, content)
}

// WriteFileLocked is WriteFile for use from an OnSubmit hook.
func (c *Cluster) WriteFileLocked(name, content string) {
	c.files[path.Clean(name)] = content
}

// RemoveFile deletes a remote file.
func (c *Cluster) RemoveFile(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.files, path.Clean(name))
}

// Submitted returns the jobs accepted by sbatch, in submission order.
func (c *Cluster) Submitted() []Job {
	c.mu.Lock()
	defer c.mu.Unlock()

	jobs := make([]Job, 0, len(c.jobs))
	for _, j := range c.jobs {
		if j.Script != "" {
			jobs = append(jobs, *j)
		}
	}

	slices.SortFunc(jobs, func(a, b Job) int {
		x, _ := strconv.Atoi(a.ID)
		y, _ := strconv.Atoi(b.ID)
		return x - y
	})

	return jobs
}

// Cancelled returns the job ids passed to scancel, in order.
func (c *Cluster) Cancelled() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	return slices.Clone(c.cancelled)
}

// Calls returns every Run invocation's statements.
func (c *Cluster) Calls() [][]string {
	c.mu.Lock()
	defer c.mu.Unlock()

	calls := make([][]string, len(c.calls))
	for i, cmds := range c.calls {
		calls[i] = slices.Clone(cmds)
	}

	return calls
}

// Commands returns the first word of every statement run, in order, e.g.
// "sbatch", "scancel". Useful for asserting call ordering.
func (c *Cluster) Commands() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	var names []string
	for _, cmds := range c.calls {
		for _, cmd := range cmds {
			if fields := strings.Fields(cmd); len(fields) > 0 && fields[0] != "cd" {
				names = append(names, fields[0])
			}
		}
	}

	return names
}

func (c *Cluster) newJobLocked() *Job {
	id := strconv.Itoa(c.nextID)
	c.nextID++

	j := &Job{ID: id, State: "PENDING"}
	c.jobs[id] = j

	return j
}

func (c *Cluster) sbatch(args []string, cwd string) string {
	if c.rejectOutput != "" {
		return c.rejectOutput
	}

	if len(args) == 0 {
		return "sbatch: error: Batch job submission failed: No script specified\n"
	}

	j := c.newJobLocked()
	j.Script = args[0]
	j.Args = slices.Clone(args[1:])
	j.WorkDir = cwd

	if c.onSubmit != nil {
		c.onSubmit(j)
	}

	return fmt.Sprintf("%s %s\n", submittedMarker, j.ID)
}

func (c *Cluster) scancel(args []string) string {
	if len(args) == 0 {
		return "scancel: error: No job identification provided\n"
	}

	id := args[0]
	c.cancelled = append(c.cancelled, id)

	j, ok := c.jobs[id]
	if !ok {
		return fmt.Sprintf("scancel: error: Kill job error on job id %s: Invalid job id specified\n", id)
	}

	j.State = "CANCELLED"

	return ""
}

func (c *Cluster) squeue(args []string) string {
	var id, format string

	for i := 0; i < len(args); i++ {
		switch {
		case args[i] == "-j" && i+1 < len(args):
			id = args[i+1]
			i++
		case strings.HasPrefix(args[i], "--Format="):
			format = unquote(strings.TrimPrefix(args[i], "--Format="))
		case strings.HasPrefix(args[i], "--format="):
			format = unquote(strings.TrimPrefix(args[i], "--format="))
		}
	}

	j, ok := c.jobs[id]
	if !ok {
		return invalidJobOutput + "\n"
	}

	j.queries++
	if c.autoStartN >= 0 && j.State == "PENDING" && j.queries > c.autoStartN {
		j.State = "RUNNING"
	}

	var out strings.Builder
	if c.extraSqueueLn != "" {
		out.WriteString(c.extraSqueueLn + "\n")
	}

	switch format {
	case "state":
		fmt.Fprintf(&out, "STATE\n%s\n", j.State)
	case "statecompact":
		code, ok := compactCodes[j.State]
		if !ok {
			code = j.State
		}
		fmt.Fprintf(&out, "ST\n%s\n", code)
	case "%all":
		fmt.Fprintf(&out, "JOBID|PARTITION|NAME|USER|STATE|NODELIST|\n")
		fmt.Fprintf(&out, "%s|gpu|%s|fake|%s|node01|\n", j.ID, path.Base(j.Script), j.State)
	default:
		fmt.Fprintf(&out, "squeue: error: Invalid field requested: %q\n", format)
	}

	return out.String()
}

func (c *Cluster) cat(args []string, cwd string) string {
	var out strings.Builder

	for _, name := range args {
		name = unquote(name)

		p := name
		if !path.IsAbs(p) {
			p = path.Join(cwd, p)
		}

		content, ok := c.files[path.Clean(p)]
		if !ok {
			fmt.Fprintf(&out, "cat: %s: No such file or directory\n", name)
			continue
		}

		out.WriteString(content)
	}

	return out.String()
}

var shellUnquoter = strings.NewReplacer(`\\`, `\`, `\"`, `"`, "\\`", "`")

func unquote(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return shellUnquoter.Replace(s[1 : len(s)-1])
	}

	return strings.Trim(s, `"'`)
}
