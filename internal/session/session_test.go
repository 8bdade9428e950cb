package session_test

import (
	"context"
	"errors"
	"fmt"
	"path"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/nixpig/hpctools/internal/remote/remotetest"
	"github.com/nixpig/hpctools/internal/session"
	"github.com/nixpig/hpctools/internal/slurm"
	"github.com/nixpig/hpctools/internal/tunnel"
)

const (
	testPort        = 9010
	testScriptsPath = "$HOME/slurm_scripts"
)

// fakeWaiter reports the job as running (or not) without polling.
type fakeWaiter struct {
	running bool
	err     error
	jobIDs  []string
}

func (w *fakeWaiter) WaitForRunning(
	_ context.Context,
	jobID string,
	_ time.Duration,
	_ time.Duration,
) (slurm.WaitResult, error) {
	w.jobIDs = append(w.jobIDs, jobID)

	if w.err != nil {
		return slurm.WaitResult{}, w.err
	}

	return slurm.WaitResult{Running: w.running, Elapsed: 3 * time.Second}, nil
}

// fakeTunnels records calls in order.
type fakeTunnels struct {
	mu       sync.Mutex
	calls    []string
	commands []string
	startErr error
}

func (f *fakeTunnels) KillTunnels(port int) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls = append(f.calls, fmt.Sprintf("kill %d", port))

	return 1, nil
}

func (f *fakeTunnels) StartTunnel(
	_ context.Context,
	command string,
	port int,
) (*tunnel.Handle, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls = append(f.calls, fmt.Sprintf("start %d", port))
	f.commands = append(f.commands, command)

	return nil, f.startErr
}

func testMetadata(jobID string, port int) *session.Metadata {
	return &session.Metadata{
		JobID: jobID,
		Port:  port,
		IP:    "10.1.2.3",
		Cmd:   fmt.Sprintf("ssh -N -L %d:10.1.2.3:%d alice@login", port, port),
	}
}

// newTestCluster returns a cluster whose jobs write their metadata file on
// submission and are in the given state.
func newTestCluster(t *testing.T, state string) *remotetest.Cluster {
	t.Helper()

	cluster := remotetest.NewCluster()

	cluster.OnSubmit(func(j *remotetest.Job) {
		j.State = state

		data, err := session.Encode(testMetadata(j.ID, testPort))
		if err != nil {
			t.Errorf("expected not to receive error: got '%v'", err)
			return
		}

		cluster.WriteFileLocked(
			path.Join(j.WorkDir, session.MetadataPath("jupyter_lab", testPort)),
			string(data),
		)
	})

	return cluster
}

func newTestSession(
	t *testing.T,
	cluster *remotetest.Cluster,
	opts ...session.Option,
) *session.Session {
	t.Helper()

	s, err := session.New(
		session.Config{Port: testPort, ScriptsPath: testScriptsPath},
		cluster,
		opts...,
	)
	if err != nil {
		t.Fatalf("expected not to receive error: got '%v'", err)
	}

	return s
}

// jobCommands returns the sbatch and scancel commands run, in order.
func jobCommands(cluster *remotetest.Cluster) []string {
	return slices.DeleteFunc(cluster.Commands(), func(c string) bool {
		return c != "sbatch" && c != "scancel"
	})
}

func TestSessionStatus(t *testing.T) {
	t.Parallel()

	t.Run("Test no metadata is inactive", func(t *testing.T) {
		t.Parallel()

		s := newTestSession(t, remotetest.NewCluster())

		status, err := s.Status(t.Context(), true)
		if err != nil {
			t.Fatalf("expected not to receive error: got '%v'", err)
		}

		if status.Active || status.Metadata != nil {
			t.Errorf("expected inactive status without metadata: got '%+v'", status)
		}

		if s.Metadata() != nil {
			t.Errorf("expected no cached metadata: got '%+v'", s.Metadata())
		}
	})

	t.Run("Test running job is active", func(t *testing.T) {
		t.Parallel()

		cluster := remotetest.NewCluster()
		id := cluster.AddJob("RUNNING")

		data, _ := session.Encode(testMetadata(id, testPort))
		cluster.WriteFile(testScriptsPath+"/jupyter_lab.9010.json", string(data))

		s := newTestSession(t, cluster)

		active, err := s.IsActive(t.Context(), false)
		if err != nil {
			t.Fatalf("expected not to receive error: got '%v'", err)
		}

		if !active {
			t.Errorf("expected session to be active")
		}

		if s.Metadata() == nil || s.Metadata().JobID != id {
			t.Errorf("expected cached metadata for job '%s': got '%+v'", id, s.Metadata())
		}
	})

	t.Run("Test pending job is inactive", func(t *testing.T) {
		t.Parallel()

		cluster := remotetest.NewCluster()
		id := cluster.AddJob("PENDING")

		data, _ := session.Encode(testMetadata(id, testPort))
		cluster.WriteFile(testScriptsPath+"/jupyter_lab.9010.json", string(data))

		status, err := newTestSession(t, cluster).Status(t.Context(), true)
		if err != nil {
			t.Fatalf("expected not to receive error: got '%v'", err)
		}

		if status.Active || status.State != slurm.JobStatePending {
			t.Errorf("expected inactive pending status: got '%+v'", status)
		}
	})

	t.Run("Test forgotten job is inactive", func(t *testing.T) {
		t.Parallel()

		cluster := remotetest.NewCluster()
		id := cluster.AddJob("RUNNING")

		data, _ := session.Encode(testMetadata(id, testPort))
		cluster.WriteFile(testScriptsPath+"/jupyter_lab.9010.json", string(data))
		cluster.ForgetJob(id)

		status, err := newTestSession(t, cluster).Status(t.Context(), true)
		if err != nil {
			t.Fatalf("expected not to receive error: got '%v'", err)
		}

		if status.Active || status.Metadata == nil {
			t.Errorf("expected inactive status with metadata: got '%+v'", status)
		}
	})

	t.Run("Test malformed metadata clears cache", func(t *testing.T) {
		t.Parallel()

		cluster := remotetest.NewCluster()
		id := cluster.AddJob("RUNNING")

		data, _ := session.Encode(testMetadata(id, testPort))
		cluster.WriteFile(testScriptsPath+"/jupyter_lab.9010.json", string(data))

		s := newTestSession(t, cluster)

		if _, err := s.Refresh(t.Context()); err != nil || s.Metadata() == nil {
			t.Fatalf("expected metadata to be cached: got '%v'", err)
		}

		cluster.WriteFile(testScriptsPath+"/jupyter_lab.9010.json", `{"job_id": `)

		md, err := s.Refresh(t.Context())
		if err != nil {
			t.Errorf("expected not to receive error: got '%v'", err)
		}

		if md != nil || s.Metadata() != nil {
			t.Errorf("expected cache to be cleared: got '%+v'", s.Metadata())
		}
	})

	t.Run("Test transport failure clears cache", func(t *testing.T) {
		t.Parallel()

		cluster := remotetest.NewCluster()
		id := cluster.AddJob("RUNNING")

		data, _ := session.Encode(testMetadata(id, testPort))
		cluster.WriteFile(testScriptsPath+"/jupyter_lab.9010.json", string(data))

		s := newTestSession(t, cluster)

		if _, err := s.Refresh(t.Context()); err != nil {
			t.Fatalf("expected not to receive error: got '%v'", err)
		}

		failure := errors.New("connection reset")
		cluster.FailWith(failure)

		if _, err := s.Status(t.Context(), true); !errors.Is(err, failure) {
			t.Errorf("expected to receive transport error: got '%v'", err)
		}

		if s.Metadata() != nil {
			t.Errorf("expected cache to be cleared: got '%+v'", s.Metadata())
		}
	})

	t.Run("Test metadata read from scripts path", func(t *testing.T) {
		t.Parallel()

		cluster := remotetest.NewCluster()

		if _, err := newTestSession(t, cluster).Refresh(t.Context()); err != nil {
			t.Fatalf("expected not to receive error: got '%v'", err)
		}

		want := []string{`cd "$HOME/slurm_scripts"`, "cat jupyter_lab.9010.json"}
		if calls := cluster.Calls(); !slices.Equal(calls[0], want) {
			t.Errorf("expected commands: got '%v', want '%v'", calls[0], want)
		}
	})
}

func TestSessionStart(t *testing.T) {
	t.Parallel()

	t.Run("Test start is idempotent while active", func(t *testing.T) {
		t.Parallel()

		cluster := newTestCluster(t, "RUNNING")
		s := newTestSession(t, cluster)

		first, err := s.Start(t.Context(), session.StartOptions{})
		if err != nil {
			t.Fatalf("expected not to receive error: got '%v'", err)
		}

		if first.JobID == "" || first.AlreadyActive {
			t.Errorf("expected job to be submitted: got '%+v'", first)
		}

		second, err := s.Start(t.Context(), session.StartOptions{})
		if err != nil {
			t.Fatalf("expected not to receive error: got '%v'", err)
		}

		if second.JobID != "" || !second.AlreadyActive {
			t.Errorf("expected no-op: got '%+v'", second)
		}

		if n := len(cluster.Submitted()); n != 1 {
			t.Errorf("expected one submitted job: got '%d'", n)
		}
	})

	t.Run("Test restart cancels before submitting", func(t *testing.T) {
		t.Parallel()

		cluster := newTestCluster(t, "RUNNING")
		s := newTestSession(t, cluster)

		first, err := s.Start(t.Context(), session.StartOptions{})
		if err != nil {
			t.Fatalf("expected not to receive error: got '%v'", err)
		}

		second, err := s.Start(t.Context(), session.StartOptions{Restart: true})
		if err != nil {
			t.Fatalf("expected not to receive error: got '%v'", err)
		}

		want := []string{"sbatch", "scancel", "sbatch"}
		if got := jobCommands(cluster); !slices.Equal(got, want) {
			t.Errorf("expected job commands: got '%v', want '%v'", got, want)
		}

		if !slices.Equal(cluster.Cancelled(), []string{first.JobID}) {
			t.Errorf("expected cancelled: got '%v', want '[%s]'", cluster.Cancelled(), first.JobID)
		}

		if second.CancelledJobID != first.JobID || second.JobID == first.JobID {
			t.Errorf("expected restart result: got '%+v'", second)
		}
	})

	t.Run("Test restart while inactive only submits", func(t *testing.T) {
		t.Parallel()

		cluster := newTestCluster(t, "PENDING")
		s := newTestSession(t, cluster)

		if _, err := s.Start(t.Context(), session.StartOptions{Restart: true}); err != nil {
			t.Fatalf("expected not to receive error: got '%v'", err)
		}

		if got := jobCommands(cluster); !slices.Equal(got, []string{"sbatch"}) {
			t.Errorf("expected job commands: got '%v', want '[sbatch]'", got)
		}
	})

	t.Run("Test submission arguments", func(t *testing.T) {
		t.Parallel()

		cluster := newTestCluster(t, "PENDING")

		s, err := session.New(
			session.Config{
				Port:        testPort,
				ScriptsPath: testScriptsPath,
				EnvName:     "torch",
			},
			cluster,
		)
		if err != nil {
			t.Fatalf("expected not to receive error: got '%v'", err)
		}

		if _, err := s.Start(t.Context(), session.StartOptions{Script: "jupyter_lab_cpu.sh"}); err != nil {
			t.Fatalf("expected not to receive error: got '%v'", err)
		}

		jobs := cluster.Submitted()
		if len(jobs) != 1 {
			t.Fatalf("expected one submitted job: got '%d'", len(jobs))
		}

		if jobs[0].Script != "jupyter_lab_cpu.sh" {
			t.Errorf("expected script: got '%s', want 'jupyter_lab_cpu.sh'", jobs[0].Script)
		}

		if !slices.Equal(jobs[0].Args, []string{"9010", "torch"}) {
			t.Errorf("expected args: got '%v', want '[9010 torch]'", jobs[0].Args)
		}

		if jobs[0].WorkDir != testScriptsPath {
			t.Errorf("expected work dir: got '%s', want '%s'", jobs[0].WorkDir, testScriptsPath)
		}
	})

	t.Run("Test default script", func(t *testing.T) {
		t.Parallel()

		cluster := newTestCluster(t, "PENDING")

		if _, err := newTestSession(t, cluster).Start(t.Context(), session.StartOptions{}); err != nil {
			t.Fatalf("expected not to receive error: got '%v'", err)
		}

		if jobs := cluster.Submitted(); jobs[0].Script != session.DefaultScript {
			t.Errorf("expected script: got '%s', want '%s'", jobs[0].Script, session.DefaultScript)
		}
	})

	t.Run("Test wait and tunnel", func(t *testing.T) {
		t.Parallel()

		cluster := newTestCluster(t, "RUNNING")
		waiter := &fakeWaiter{running: true}
		tunnels := &fakeTunnels{}

		s := newTestSession(t, cluster, session.WithWaiter(waiter), session.WithTunnels(tunnels))

		result, err := s.Start(t.Context(), session.StartOptions{Wait: true, Tunnel: true})
		if err != nil {
			t.Fatalf("expected not to receive error: got '%v'", err)
		}

		if !slices.Equal(waiter.jobIDs, []string{result.JobID}) {
			t.Errorf("expected wait for '%s': got '%v'", result.JobID, waiter.jobIDs)
		}

		if !result.Waited || !result.Running || result.Elapsed != 3*time.Second {
			t.Errorf("expected waited running result: got '%+v'", result)
		}

		want := []string{"kill 9010", "start 9010"}
		if !slices.Equal(tunnels.calls, want) {
			t.Errorf("expected tunnel calls: got '%v', want '%v'", tunnels.calls, want)
		}

		if wantCmd := testMetadata(result.JobID, testPort).Cmd; !slices.Equal(
			tunnels.commands,
			[]string{wantCmd},
		) {
			t.Errorf("expected tunnel command: got '%v', want '%s'", tunnels.commands, wantCmd)
		}

		if result.TunnelErr != nil {
			t.Errorf("expected no tunnel error: got '%v'", result.TunnelErr)
		}
	})

	t.Run("Test tunnel failure is reported", func(t *testing.T) {
		t.Parallel()

		cluster := newTestCluster(t, "RUNNING")
		tunnels := &fakeTunnels{
			startErr: tunnel.NewSpawnError("ssh -L 9010", 255, "Address already in use"),
		}

		s := newTestSession(
			t,
			cluster,
			session.WithWaiter(&fakeWaiter{running: true}),
			session.WithTunnels(tunnels),
		)

		result, err := s.Start(t.Context(), session.StartOptions{Wait: true, Tunnel: true})
		if err != nil {
			t.Fatalf("expected not to receive error: got '%v'", err)
		}

		if !errors.As(result.TunnelErr, new(*tunnel.SpawnError)) {
			t.Errorf("expected tunnel error to be SpawnError: got '%v'", result.TunnelErr)
		}

		if result.JobID == "" || !result.Running {
			t.Errorf("expected session to have started: got '%+v'", result)
		}
	})

	t.Run("Test dead tunnel is not returned", func(t *testing.T) {
		t.Parallel()

		cluster := remotetest.NewCluster()
		cluster.OnSubmit(func(j *remotetest.Job) {
			j.State = "RUNNING"

			md := testMetadata(j.ID, testPort)
			md.Cmd = "exit 255"

			data, err := session.Encode(md)
			if err != nil {
				t.Errorf("expected not to receive error: got '%v'", err)
				return
			}

			cluster.WriteFileLocked(
				path.Join(j.WorkDir, session.MetadataPath("jupyter_lab", testPort)),
				string(data),
			)
		})

		s := newTestSession(
			t,
			cluster,
			session.WithWaiter(&fakeWaiter{running: true}),
			session.WithTunnels(tunnel.NewManager(tunnel.WithSettleDelay(50*time.Millisecond))),
		)

		result, err := s.Start(t.Context(), session.StartOptions{Wait: true, Tunnel: true})
		if err != nil {
			t.Fatalf("expected not to receive error: got '%v'", err)
		}

		if result.TunnelErr == nil {
			t.Fatal("expected tunnel error: got 'nil'")
		}

		if result.Tunnel != nil {
			t.Errorf("expected no tunnel handle: got pid '%d'", result.Tunnel.PID())
		}
	})

	t.Run("Test no tunnel when job never runs", func(t *testing.T) {
		t.Parallel()

		cluster := newTestCluster(t, "PENDING")
		tunnels := &fakeTunnels{}

		s := newTestSession(
			t,
			cluster,
			session.WithWaiter(&fakeWaiter{running: false}),
			session.WithTunnels(tunnels),
		)

		result, err := s.Start(t.Context(), session.StartOptions{Wait: true, Tunnel: true})
		if err != nil {
			t.Fatalf("expected not to receive error: got '%v'", err)
		}

		if result.Running {
			t.Errorf("expected session not to be running")
		}

		if len(tunnels.calls) != 0 {
			t.Errorf("expected no tunnel calls: got '%v'", tunnels.calls)
		}
	})

	t.Run("Test no tunnel without flag", func(t *testing.T) {
		t.Parallel()

		cluster := newTestCluster(t, "RUNNING")
		tunnels := &fakeTunnels{}

		s := newTestSession(
			t,
			cluster,
			session.WithWaiter(&fakeWaiter{running: true}),
			session.WithTunnels(tunnels),
		)

		if _, err := s.Start(t.Context(), session.StartOptions{Wait: true}); err != nil {
			t.Fatalf("expected not to receive error: got '%v'", err)
		}

		if len(tunnels.calls) != 0 {
			t.Errorf("expected no tunnel calls: got '%v'", tunnels.calls)
		}
	})

	t.Run("Test wait with real poller", func(t *testing.T) {
		t.Parallel()

		cluster := newTestCluster(t, "RUNNING")

		result, err := newTestSession(t, cluster, session.WithTunnels(&fakeTunnels{})).
			Start(t.Context(), session.StartOptions{Wait: true})
		if err != nil {
			t.Fatalf("expected not to receive error: got '%v'", err)
		}

		if !result.Running {
			t.Errorf("expected session to be running: got '%+v'", result)
		}
	})

	t.Run("Test rejected submission", func(t *testing.T) {
		t.Parallel()

		cluster := newTestCluster(t, "RUNNING")
		cluster.RejectSubmissions("sbatch: error: QOSMaxSubmitJobPerUserLimit\n")

		result, err := newTestSession(t, cluster).Start(t.Context(), session.StartOptions{})
		if !errors.As(err, new(*slurm.SubmitRejectedError)) {
			t.Errorf("expected to receive SubmitRejectedError: got '%v'", err)
		}

		if result == nil || result.JobID != "" {
			t.Errorf("expected result without job id: got '%+v'", result)
		}
	})

	t.Run("Test wait error", func(t *testing.T) {
		t.Parallel()

		cluster := newTestCluster(t, "PENDING")
		failure := errors.New("broken pipe")

		s := newTestSession(t, cluster, session.WithWaiter(&fakeWaiter{err: failure}))

		if _, err := s.Start(t.Context(), session.StartOptions{Wait: true}); !errors.Is(err, failure) {
			t.Errorf("expected to receive wait error: got '%v'", err)
		}
	})
}

func TestSessionStop(t *testing.T) {
	t.Parallel()

	t.Run("Test stop active session", func(t *testing.T) {
		t.Parallel()

		cluster := newTestCluster(t, "RUNNING")
		s := newTestSession(t, cluster)

		started, err := s.Start(t.Context(), session.StartOptions{})
		if err != nil {
			t.Fatalf("expected not to receive error: got '%v'", err)
		}

		result, err := s.Stop(t.Context())
		if err != nil {
			t.Fatalf("expected not to receive error: got '%v'", err)
		}

		if !result.Stopped || result.JobID != started.JobID {
			t.Errorf("expected job '%s' to be stopped: got '%+v'", started.JobID, result)
		}

		if cluster.State(started.JobID) != "CANCELLED" {
			t.Errorf("expected job to be cancelled: got '%s'", cluster.State(started.JobID))
		}

		active, err := s.IsActive(t.Context(), true)
		if err != nil {
			t.Fatalf("expected not to receive error: got '%v'", err)
		}

		if active {
			t.Errorf("expected session to be inactive after stop")
		}
	})

	t.Run("Test stop inactive session", func(t *testing.T) {
		t.Parallel()

		cluster := remotetest.NewCluster()

		result, err := newTestSession(t, cluster).Stop(t.Context())
		if err != nil {
			t.Fatalf("expected not to receive error: got '%v'", err)
		}

		if result.Stopped {
			t.Errorf("expected no-op stop: got '%+v'", result)
		}

		if len(cluster.Cancelled()) != 0 {
			t.Errorf("expected no cancellations: got '%v'", cluster.Cancelled())
		}
	})
}

func TestNewSession(t *testing.T) {
	t.Parallel()

	for _, port := range []int{0, -1, 70000} {
		if _, err := session.New(session.Config{Port: port}, remotetest.NewCluster()); err == nil {
			t.Errorf("expected port '%d' to be rejected", port)
		}
	}
}
