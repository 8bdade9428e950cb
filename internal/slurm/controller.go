package slurm

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/nixpig/hpctools/internal/remote"
)

const (
	// submittedMarker is printed by sbatch when a job is accepted, followed by
	// the job id.
	submittedMarker = "Submitted batch job"

	// invalidJobMarker is printed by squeue for a job id it doesn't know.
	invalidJobMarker = "slurm_load_jobs error: Invalid job id specified"

	// recordDelimiter separates fields in squeue --format="%all" output.
	recordDelimiter = "|"
)

// JobRecord is the full set of fields squeue reports for a job, keyed by
// field name, e.g. "JOBID", "STATE", "NODELIST".
type JobRecord map[string]string

// Controller submits, cancels and inspects jobs by running SLURM commands
// through a remote.Executor.
type Controller struct {
	exec   remote.Executor
	logger *slog.Logger
}

// NewController creates a Controller. A nil logger discards logs.
func NewController(exec remote.Executor, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Controller{exec: exec, logger: logger}
}

// Submit submits script with args from workDir and returns the job id. When
// sbatch doesn't accept the job a *SubmitRejectedError carrying the raw
// output is returned.
func (c *Controller) Submit(
	ctx context.Context,
	script string,
	args []string,
	workDir string,
) (string, error) {
	if script == "" {
		return "", fmt.Errorf("script cannot be empty")
	}

	sbatch := strings.Join(append([]string{"sbatch", script}, args...), " ")

	cmds := []string{sbatch}
	if workDir != "" {
		cmds = []string{remote.ChangeDir(workDir), sbatch}
	}

	out, err := c.exec.Run(ctx, cmds...)
	if err != nil {
		return "", fmt.Errorf("run sbatch: %w", err)
	}

	if !strings.Contains(out, submittedMarker) {
		c.logger.Error("failed to submit job", "script", script, "output", out)
		return "", NewSubmitRejectedError(out)
	}

	fields := strings.Fields(out)
	jobID := fields[len(fields)-1]

	c.logger.Info("submitted job", "job_id", jobID, "script", script)

	return jobID, nil
}

// Cancel asks the scheduler to cancel the job. It doesn't wait for, or
// verify, the job actually stopping.
func (c *Controller) Cancel(ctx context.Context, jobID string) error {
	if _, err := c.exec.Run(ctx, "scancel "+jobID); err != nil {
		return fmt.Errorf("run scancel: %w", err)
	}

	c.logger.Info("cancelled job", "job_id", jobID)

	return nil
}

// State returns the scheduler state of the job, or ErrJobNotFound. With
// compact the short state code is requested, which parses to the same
// JobState.
func (c *Controller) State(
	ctx context.Context,
	jobID string,
	compact bool,
) (JobState, error) {
	field := "state"
	if compact {
		field = "statecompact"
	}

	out, err := c.exec.Run(
		ctx,
		fmt.Sprintf("squeue -j %s --Format=%q", jobID, field),
	)
	if err != nil {
		return JobStateUnknown, fmt.Errorf("run squeue: %w", err)
	}

	if strings.Contains(out, invalidJobMarker) {
		return JobStateUnknown, ErrJobNotFound
	}

	lines := nonEmptyLines(out)
	if len(lines) == 0 {
		return JobStateUnknown, nil
	}

	state := ParseJobState(lines[len(lines)-1])

	if !state.Known() {
		c.logger.Debug("unrecognised job state", "job_id", jobID, "state", state)
	}

	return state, nil
}

// Info returns all fields squeue reports for the job, or ErrJobNotFound.
// Fields with an empty name are dropped.
func (c *Controller) Info(ctx context.Context, jobID string) (JobRecord, error) {
	out, err := c.exec.Run(ctx, fmt.Sprintf("squeue -j %s --format=%q", jobID, "%all"))
	if err != nil {
		return nil, fmt.Errorf("run squeue: %w", err)
	}

	if strings.Contains(out, invalidJobMarker) {
		return nil, ErrJobNotFound
	}

	lines := nonEmptyLines(out)
	if len(lines) < 2 {
		return nil, NewMalformedOutputError("squeue", out, "expected header and value rows")
	}

	names := strings.Split(lines[len(lines)-2], recordDelimiter)
	values := strings.Split(lines[len(lines)-1], recordDelimiter)

	record := make(JobRecord, len(names))
	for i := 0; i < len(names) && i < len(values); i++ {
		if names[i] == "" {
			continue
		}

		record[names[i]] = values[i]
	}

	return record, nil
}

func nonEmptyLines(s string) []string {
	var lines []string

	for line := range strings.Lines(s) {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}

	return lines
}
