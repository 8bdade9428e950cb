package slurm_test

import (
	"context"
	"errors"
	"maps"
	"slices"
	"testing"

	"github.com/nixpig/hpctools/internal/remote"
	"github.com/nixpig/hpctools/internal/remote/remotetest"
	"github.com/nixpig/hpctools/internal/slurm"
)

// scriptedExecutor returns the same output (or error) for every call and
// records the statements it was given.
type scriptedExecutor struct {
	output string
	err    error
	calls  [][]string
}

func (e *scriptedExecutor) Run(_ context.Context, cmds ...string) (string, error) {
	e.calls = append(e.calls, cmds)
	return e.output, e.err
}

func TestControllerSubmit(t *testing.T) {
	t.Parallel()

	t.Run("Test accepted submission", func(t *testing.T) {
		t.Parallel()

		cluster := remotetest.NewCluster()
		c := slurm.NewController(cluster, nil)

		id, err := c.Submit(
			t.Context(),
			"jupyter_lab_gpu.sh",
			[]string{"9010", "torch"},
			"$HOME/slurm_scripts",
		)
		if err != nil {
			t.Fatalf("expected not to receive error: got '%v'", err)
		}

		jobs := cluster.Submitted()
		if len(jobs) != 1 {
			t.Fatalf("expected one submitted job: got '%d'", len(jobs))
		}

		if id != jobs[0].ID {
			t.Errorf("expected job id: got '%s', want '%s'", id, jobs[0].ID)
		}

		if jobs[0].WorkDir != "$HOME/slurm_scripts" {
			t.Errorf(
				"expected work dir: got '%s', want '$HOME/slurm_scripts'",
				jobs[0].WorkDir,
			)
		}

		if !slices.Equal(jobs[0].Args, []string{"9010", "torch"}) {
			t.Errorf("expected script args: got '%v'", jobs[0].Args)
		}
	})

	t.Run("Test work dir is shell quoted", func(t *testing.T) {
		t.Parallel()

		cluster := remotetest.NewCluster()
		c := slurm.NewController(cluster, nil)

		workDir := "/scratch/my\tjobs \"v2\""

		if _, err := c.Submit(t.Context(), "job.sh", nil, workDir); err != nil {
			t.Fatalf("expected not to receive error: got '%v'", err)
		}

		calls := cluster.Calls()
		if len(calls) != 1 || len(calls[0]) != 2 {
			t.Fatalf("expected cd and sbatch in one call: got '%v'", calls)
		}

		want := "cd \"/scratch/my\tjobs \\\"v2\\\"\""
		if calls[0][0] != want {
			t.Errorf("expected cd statement: got '%s', want '%s'", calls[0][0], want)
		}

		jobs := cluster.Submitted()
		if len(jobs) != 1 || jobs[0].WorkDir != workDir {
			t.Errorf("expected work dir: got '%v', want '%s'", jobs, workDir)
		}
	})

	t.Run("Test job id is final token", func(t *testing.T) {
		t.Parallel()

		e := &scriptedExecutor{
			output: "sbatch: warning: partition gpu is busy\nSubmitted batch job 4242\n",
		}

		id, err := slurm.NewController(e, nil).Submit(t.Context(), "job.sh", nil, "")
		if err != nil {
			t.Fatalf("expected not to receive error: got '%v'", err)
		}

		if id != "4242" {
			t.Errorf("expected job id: got '%s', want '4242'", id)
		}

		if !slices.Equal(e.calls[0], []string{"sbatch job.sh"}) {
			t.Errorf("expected sbatch without cd: got '%v'", e.calls[0])
		}
	})

	t.Run("Test rejected submission", func(t *testing.T) {
		t.Parallel()

		output := "sbatch: error: Batch job submission failed: Invalid account\n"

		cluster := remotetest.NewCluster()
		cluster.RejectSubmissions(output)

		id, err := slurm.NewController(cluster, nil).
			Submit(t.Context(), "job.sh", nil, "")

		var rejectedErr *slurm.SubmitRejectedError
		if !errors.As(err, &rejectedErr) {
			t.Fatalf("expected to receive SubmitRejectedError: got '%v'", err)
		}

		if rejectedErr.Output != output {
			t.Errorf(
				"expected raw output: got '%s', want '%s'",
				rejectedErr.Output,
				output,
			)
		}

		if id != "" {
			t.Errorf("expected no job id: got '%s'", id)
		}
	})

	t.Run("Test transport failure", func(t *testing.T) {
		t.Parallel()

		e := &scriptedExecutor{
			err: remote.NewTransportError("alice@login", errors.New("connection refused")),
		}

		_, err := slurm.NewController(e, nil).Submit(t.Context(), "job.sh", nil, "")
		if !errors.As(err, new(*remote.TransportError)) {
			t.Errorf("expected to receive TransportError: got '%v'", err)
		}
	})

	t.Run("Test empty script", func(t *testing.T) {
		t.Parallel()

		e := &scriptedExecutor{}

		if _, err := slurm.NewController(e, nil).
			Submit(t.Context(), "", nil, ""); err == nil {
			t.Errorf("expected to receive error")
		}

		if len(e.calls) != 0 {
			t.Errorf("expected no remote calls: got '%d'", len(e.calls))
		}
	})
}

func TestControllerState(t *testing.T) {
	t.Parallel()

	t.Run("Test submitted job is pending", func(t *testing.T) {
		t.Parallel()

		cluster := remotetest.NewCluster()
		c := slurm.NewController(cluster, nil)

		id, err := c.Submit(t.Context(), "job.sh", nil, "")
		if err != nil {
			t.Fatalf("expected not to receive error: got '%v'", err)
		}

		state, err := c.State(t.Context(), id, false)
		if err != nil {
			t.Fatalf("expected not to receive error: got '%v'", err)
		}

		if state != slurm.JobStatePending {
			t.Errorf("expected state: got '%s', want '%s'", state, slurm.JobStatePending)
		}

		if state.IsTerminal() || state.IsRunning() {
			t.Errorf("expected non-terminal, non-running state: got '%s'", state)
		}
	})

	t.Run("Test compact state", func(t *testing.T) {
		t.Parallel()

		cluster := remotetest.NewCluster()
		id := cluster.AddJob("RUNNING")

		state, err := slurm.NewController(cluster, nil).State(t.Context(), id, true)
		if err != nil {
			t.Fatalf("expected not to receive error: got '%v'", err)
		}

		if state != slurm.JobStateRunning {
			t.Errorf("expected state: got '%s', want '%s'", state, slurm.JobStateRunning)
		}

		calls := cluster.Calls()
		want := `squeue -j ` + id + ` --Format="statecompact"`
		if calls[0][0] != want {
			t.Errorf("expected command: got '%s', want '%s'", calls[0][0], want)
		}
	})

	t.Run("Test unknown job is not found", func(t *testing.T) {
		t.Parallel()

		cluster := remotetest.NewCluster()
		c := slurm.NewController(cluster, nil)

		if _, err := c.State(t.Context(), "999999", false); !errors.Is(
			err,
			slurm.ErrJobNotFound,
		) {
			t.Errorf("expected to receive ErrJobNotFound: got '%v'", err)
		}

		if _, err := c.Info(t.Context(), "999999"); !errors.Is(
			err,
			slurm.ErrJobNotFound,
		) {
			t.Errorf("expected to receive ErrJobNotFound: got '%v'", err)
		}
	})

	t.Run("Test last non-empty line is used", func(t *testing.T) {
		t.Parallel()

		cluster := remotetest.NewCluster()
		cluster.WithSqueueNoise("squeue: warning: slurmctld is slow to respond")
		id := cluster.AddJob("SUSPENDED")

		state, err := slurm.NewController(cluster, nil).State(t.Context(), id, false)
		if err != nil {
			t.Fatalf("expected not to receive error: got '%v'", err)
		}

		if state != slurm.JobStateSuspended {
			t.Errorf("expected state: got '%s', want '%s'", state, slurm.JobStateSuspended)
		}
	})

	t.Run("Test unrecognised state is preserved", func(t *testing.T) {
		t.Parallel()

		e := &scriptedExecutor{output: "STATE\n  HIBERNATING  \n\n"}

		state, err := slurm.NewController(e, nil).State(t.Context(), "1", false)
		if err != nil {
			t.Fatalf("expected not to receive error: got '%v'", err)
		}

		if state != slurm.JobState("HIBERNATING") {
			t.Errorf("expected state: got '%s', want 'HIBERNATING'", state)
		}

		if state.Known() || state.IsTerminal() || state.IsRunning() {
			t.Errorf("expected unknown non-terminal state: got '%s'", state)
		}
	})

	t.Run("Test empty output", func(t *testing.T) {
		t.Parallel()

		e := &scriptedExecutor{output: "\n"}

		state, err := slurm.NewController(e, nil).State(t.Context(), "1", false)
		if err != nil {
			t.Fatalf("expected not to receive error: got '%v'", err)
		}

		if state != slurm.JobStateUnknown {
			t.Errorf("expected unknown state: got '%s'", state)
		}
	})
}

func TestControllerCancel(t *testing.T) {
	t.Parallel()

	cluster := remotetest.NewCluster()
	c := slurm.NewController(cluster, nil)

	id := cluster.AddJob("RUNNING")

	if err := c.Cancel(t.Context(), id); err != nil {
		t.Fatalf("expected not to receive error: got '%v'", err)
	}

	if !slices.Equal(cluster.Cancelled(), []string{id}) {
		t.Errorf("expected cancelled jobs: got '%v', want '[%s]'", cluster.Cancelled(), id)
	}

	state, err := c.State(t.Context(), id, false)
	if err != nil {
		t.Fatalf("expected not to receive error: got '%v'", err)
	}

	if state != slurm.JobStateCancelled || !state.IsTerminal() {
		t.Errorf("expected terminal cancelled state: got '%s'", state)
	}

	// Cancelling an unknown job isn't verified, so isn't an error.
	if err := c.Cancel(t.Context(), "999999"); err != nil {
		t.Errorf("expected not to receive error: got '%v'", err)
	}
}

func TestControllerInfo(t *testing.T) {
	t.Parallel()

	t.Run("Test record fields", func(t *testing.T) {
		t.Parallel()

		cluster := remotetest.NewCluster()
		c := slurm.NewController(cluster, nil)

		id, err := c.Submit(t.Context(), "scripts/jupyter.sh", nil, "")
		if err != nil {
			t.Fatalf("expected not to receive error: got '%v'", err)
		}

		record, err := c.Info(t.Context(), id)
		if err != nil {
			t.Fatalf("expected not to receive error: got '%v'", err)
		}

		want := slurm.JobRecord{
			"JOBID":     id,
			"PARTITION": "gpu",
			"NAME":      "jupyter.sh",
			"USER":      "fake",
			"STATE":     "PENDING",
			"NODELIST":  "node01",
		}

		if !maps.Equal(record, want) {
			t.Errorf("expected record: got '%v', want '%v'", record, want)
		}
	})

	t.Run("Test empty field names are dropped", func(t *testing.T) {
		t.Parallel()

		e := &scriptedExecutor{output: "A||B|\n1|x|2|y\n"}

		record, err := slurm.NewController(e, nil).Info(t.Context(), "1")
		if err != nil {
			t.Fatalf("expected not to receive error: got '%v'", err)
		}

		want := slurm.JobRecord{"A": "1", "B": "2"}
		if !maps.Equal(record, want) {
			t.Errorf("expected record: got '%v', want '%v'", record, want)
		}
	})

	t.Run("Test malformed output", func(t *testing.T) {
		t.Parallel()

		e := &scriptedExecutor{output: "JOBID|STATE\n"}

		_, err := slurm.NewController(e, nil).Info(t.Context(), "1")
		if !errors.As(err, new(*slurm.MalformedOutputError)) {
			t.Errorf("expected to receive MalformedOutputError: got '%v'", err)
		}
	})
}
