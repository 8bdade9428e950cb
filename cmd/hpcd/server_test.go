package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"path"
	"path/filepath"
	"strings"
	"testing"
	"time"

	api "github.com/nixpig/hpctools/api/v1"
	"github.com/nixpig/hpctools/internal/certs"
	"github.com/nixpig/hpctools/internal/remote"
	"github.com/nixpig/hpctools/internal/remote/remotetest"
	"github.com/nixpig/hpctools/internal/session"
	"github.com/nixpig/hpctools/internal/tlsconfig"
	"github.com/nixpig/hpctools/internal/tunnel"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/status"
)

const testScriptsPath = "/home/alice/slurm_scripts"

type testClients struct {
	operator api.ClusterServiceClient
	viewer   api.ClusterServiceClient
}

// newTestCluster returns a cluster whose jobs are in the given state and write
// session metadata for port on submission.
func newTestCluster(t *testing.T, port int, state string) *remotetest.Cluster {
	t.Helper()

	return newTestClusterWithTunnel(
		t,
		port,
		state,
		fmt.Sprintf("ssh -N -L %d:10.1.2.3:%d alice@login", port, port),
	)
}

// newTestClusterWithTunnel is newTestCluster with the tunnel command written
// to the session metadata.
func newTestClusterWithTunnel(
	t *testing.T,
	port int,
	state string,
	tunnelCmd string,
) *remotetest.Cluster {
	t.Helper()

	cluster := remotetest.NewCluster()

	cluster.OnSubmit(func(j *remotetest.Job) {
		j.State = state

		data, err := session.Encode(&session.Metadata{
			JobID: j.ID,
			Port:  port,
			IP:    "10.1.2.3",
			Cmd:   tunnelCmd,
		})
		if err != nil {
			t.Errorf("expected not to receive error: got '%v'", err)
			return
		}

		cluster.WriteFileLocked(
			path.Join(j.WorkDir, session.MetadataPath(session.DefaultMetadataPrefix, port)),
			string(data),
		)
	})

	return cluster
}

func setupTestClientAndServer(
	t *testing.T,
	exec remote.Executor,
) testClients {
	t.Helper()

	certDir := t.TempDir()
	if err := certs.Generate(certDir, certs.Options{}); err != nil {
		t.Fatalf("failed to generate certs: '%v'", err)
	}

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("failed to setup listener: '%v'", err)
	}

	cfg := &config{
		certPath:       filepath.Join(certDir, certs.ServerCertFile),
		keyPath:        filepath.Join(certDir, certs.ServerKeyFile),
		caCertPath:     filepath.Join(certDir, certs.CACertFile),
		scriptsPath:    testScriptsPath,
		jobScript:      session.DefaultScript,
		metadataPrefix: session.DefaultMetadataPrefix,
		waitTimeout:    5 * time.Second,
		pollInterval:   10 * time.Millisecond,
	}

	tunnels := tunnel.NewManager(tunnel.WithSettleDelay(100 * time.Millisecond))

	s := newServer(exec, tunnels, slog.New(slog.DiscardHandler), cfg)

	go func() {
		if err := s.start(listener); err != nil {
			t.Logf("failed to start server: '%v'", err)
		}
	}()

	dial := func(role string) api.ClusterServiceClient {
		tlsConfig, err := tlsconfig.SetupTLS(&tlsconfig.Config{
			CertPath:   filepath.Join(certDir, certs.ClientCertFile(role)),
			KeyPath:    filepath.Join(certDir, certs.ClientKeyFile(role)),
			CACertPath: cfg.caCertPath,
			ServerName: "localhost",
		})
		if err != nil {
			t.Fatalf("failed to setup client TLS: '%v'", err)
		}

		conn, err := grpc.NewClient(
			listener.Addr().String(),
			grpc.WithTransportCredentials(credentials.NewTLS(tlsConfig)),
		)
		if err != nil {
			t.Fatalf("failed to connect: '%v'", err)
		}

		t.Cleanup(func() { conn.Close() })

		return api.NewClusterServiceClient(conn)
	}

	clients := testClients{operator: dial("operator"), viewer: dial("viewer")}

	t.Cleanup(func() {
		s.shutdown()
		s.sessions.Shutdown()
	})

	return clients
}

func expectCode(t *testing.T, err error, want codes.Code) {
	t.Helper()

	st, ok := status.FromError(err)
	if !ok {
		t.Fatalf("expected gRPC status error: got '%v'", err)
	}

	if st.Code() != want {
		t.Errorf("expected code: got '%v', want '%v'", st.Code(), want)
	}
}

func TestJobEndpoints(t *testing.T) {
	cluster := newTestCluster(t, 9010, "PENDING")
	clients := setupTestClientAndServer(t, cluster)

	ctx := t.Context()

	t.Run("Test job lifecycle", func(t *testing.T) {
		submitResp, err := clients.operator.SubmitJob(ctx, &api.SubmitJobRequest{
			Script: "train.sh",
			Args:   []string{"--epochs", "3"},
		})
		if err != nil {
			t.Fatalf("expected not to receive error: got '%v'", err)
		}

		jobs := cluster.Submitted()
		last := jobs[len(jobs)-1]

		if submitResp.JobId != last.ID {
			t.Errorf("expected job id: got '%s', want '%s'", submitResp.JobId, last.ID)
		}

		if last.WorkDir != testScriptsPath {
			t.Errorf(
				"expected default work dir: got '%s', want '%s'",
				last.WorkDir,
				testScriptsPath,
			)
		}

		stateResp, err := clients.operator.JobState(ctx, &api.JobStateRequest{
			JobId: submitResp.JobId,
		})
		if err != nil {
			t.Fatalf("expected not to receive error: got '%v'", err)
		}

		if !stateResp.Found ||
			stateResp.State != api.JobState_JOB_STATE_PENDING ||
			stateResp.Code != "PENDING" ||
			stateResp.Terminal {
			t.Errorf("expected found non-terminal PENDING job: got '%v'", stateResp)
		}

		infoResp, err := clients.operator.JobInfo(ctx, &api.JobInfoRequest{
			JobId: submitResp.JobId,
		})
		if err != nil {
			t.Fatalf("expected not to receive error: got '%v'", err)
		}

		if infoResp.Fields["NAME"] != "train.sh" {
			t.Errorf("expected job name: got '%s', want 'train.sh'", infoResp.Fields["NAME"])
		}

		if _, err := clients.operator.CancelJob(ctx, &api.CancelJobRequest{
			JobId: submitResp.JobId,
		}); err != nil {
			t.Fatalf("expected not to receive error: got '%v'", err)
		}

		stateResp, err = clients.operator.JobState(ctx, &api.JobStateRequest{
			JobId:   submitResp.JobId,
			Compact: true,
		})
		if err != nil {
			t.Fatalf("expected not to receive error: got '%v'", err)
		}

		if stateResp.State != api.JobState_JOB_STATE_CANCELLED ||
			stateResp.Code != "CA" ||
			!stateResp.Terminal {
			t.Errorf("expected terminal CANCELLED job: got '%v'", stateResp)
		}
	})

	t.Run("Test unknown job is not found", func(t *testing.T) {
		stateResp, err := clients.viewer.JobState(ctx, &api.JobStateRequest{
			JobId: "999999",
		})
		if err != nil {
			t.Fatalf("expected not to receive error: got '%v'", err)
		}

		if stateResp.Found {
			t.Errorf("expected job not to be found")
		}

		infoResp, err := clients.viewer.JobInfo(ctx, &api.JobInfoRequest{
			JobId: "999999",
		})
		if err != nil {
			t.Fatalf("expected not to receive error: got '%v'", err)
		}

		if infoResp.Found || len(infoResp.Fields) != 0 {
			t.Errorf("expected job not to be found: got '%+v'", infoResp)
		}
	})

	t.Run("Test wait for running", func(t *testing.T) {
		id := cluster.AddJob("PENDING")

		go func() {
			time.Sleep(50 * time.Millisecond)
			cluster.SetState(id, "RUNNING")
		}()

		resp, err := clients.viewer.WaitForRunning(ctx, &api.WaitForRunningRequest{
			JobId:               id,
			TimeoutSeconds:      5,
			PollIntervalSeconds: 0.01,
		})
		if err != nil {
			t.Fatalf("expected not to receive error: got '%v'", err)
		}

		if !resp.Running {
			t.Errorf("expected job to be running: got '%+v'", resp)
		}
	})

	t.Run("Test wait times out", func(t *testing.T) {
		id := cluster.AddJob("PENDING")

		resp, err := clients.viewer.WaitForRunning(ctx, &api.WaitForRunningRequest{
			JobId:               id,
			TimeoutSeconds:      0.05,
			PollIntervalSeconds: 0.01,
		})
		if err != nil {
			t.Fatalf("expected not to receive error: got '%v'", err)
		}

		if resp.Running || resp.ElapsedSeconds < 0.05 {
			t.Errorf("expected timed out wait: got '%+v'", resp)
		}
	})

	t.Run("Test empty job id", func(t *testing.T) {
		_, err := clients.operator.CancelJob(ctx, &api.CancelJobRequest{})
		expectCode(t, err, codes.InvalidArgument)
	})

	t.Run("Test viewer cannot submit job", func(t *testing.T) {
		_, err := clients.viewer.SubmitJob(ctx, &api.SubmitJobRequest{
			Script: "train.sh",
		})
		expectCode(t, err, codes.PermissionDenied)
	})
}

func TestJobErrors(t *testing.T) {
	t.Run("Test rejected submission", func(t *testing.T) {
		cluster := remotetest.NewCluster()
		cluster.RejectSubmissions("sbatch: error: invalid partition\n")

		clients := setupTestClientAndServer(t, cluster)

		_, err := clients.operator.SubmitJob(t.Context(), &api.SubmitJobRequest{
			Script: "train.sh",
		})
		expectCode(t, err, codes.FailedPrecondition)
	})

	t.Run("Test unreachable cluster", func(t *testing.T) {
		cluster := remotetest.NewCluster()
		cluster.FailWith(
			remote.NewTransportError("alice@login", errors.New("connection refused")),
		)

		clients := setupTestClientAndServer(t, cluster)

		_, err := clients.viewer.JobState(t.Context(), &api.JobStateRequest{
			JobId: "1",
		})
		expectCode(t, err, codes.Unavailable)
	})
}

func TestSessionEndpoints(t *testing.T) {
	cluster := newTestCluster(t, 9010, "RUNNING")
	clients := setupTestClientAndServer(t, cluster)

	ctx := t.Context()

	startResp, err := clients.operator.StartSession(ctx, &api.StartSessionRequest{
		Port: 9010,
	})
	if err != nil {
		t.Fatalf("expected not to receive error: got '%v'", err)
	}

	if startResp.JobId == "" || startResp.AlreadyActive {
		t.Errorf("expected new session: got '%+v'", startResp)
	}

	jobs := cluster.Submitted()
	if len(jobs) != 1 || jobs[0].Script != session.DefaultScript {
		t.Errorf("expected one submission of default script: got '%+v'", jobs)
	}

	againResp, err := clients.operator.StartSession(ctx, &api.StartSessionRequest{
		Port: 9010,
	})
	if err != nil {
		t.Fatalf("expected not to receive error: got '%v'", err)
	}

	if !againResp.AlreadyActive || againResp.JobId != "" {
		t.Errorf("expected already active session: got '%+v'", againResp)
	}

	statusResp, err := clients.viewer.SessionStatus(ctx, &api.SessionStatusRequest{
		Port: 9010,
	})
	if err != nil {
		t.Fatalf("expected not to receive error: got '%v'", err)
	}

	if !statusResp.Active ||
		statusResp.JobId != startResp.JobId ||
		statusResp.Ip != "10.1.2.3" {
		t.Errorf("expected active session: got '%+v'", statusResp)
	}

	_, err = clients.viewer.StopSession(ctx, &api.StopSessionRequest{Port: 9010})
	expectCode(t, err, codes.PermissionDenied)

	stopResp, err := clients.operator.StopSession(ctx, &api.StopSessionRequest{
		Port: 9010,
	})
	if err != nil {
		t.Fatalf("expected not to receive error: got '%v'", err)
	}

	if !stopResp.Stopped || stopResp.JobId != startResp.JobId {
		t.Errorf("expected stopped session: got '%+v'", stopResp)
	}

	statusResp, err = clients.viewer.SessionStatus(ctx, &api.SessionStatusRequest{
		Port: 9010,
	})
	if err != nil {
		t.Fatalf("expected not to receive error: got '%v'", err)
	}

	if statusResp.Active || statusResp.State != api.JobState_JOB_STATE_CANCELLED {
		t.Errorf("expected inactive cancelled session: got '%+v'", statusResp)
	}

	_, err = clients.operator.StartSession(ctx, &api.StartSessionRequest{Port: 0})
	expectCode(t, err, codes.InvalidArgument)
}

func TestSessionTunnelExitsImmediately(t *testing.T) {
	cluster := newTestClusterWithTunnel(
		t,
		19020,
		"RUNNING",
		"echo 'bind: Address already in use' >&2; exit 255",
	)
	clients := setupTestClientAndServer(t, cluster)

	resp, err := clients.operator.StartSession(t.Context(), &api.StartSessionRequest{
		Port:   19020,
		Wait:   true,
		Tunnel: true,
	})
	if err != nil {
		t.Fatalf("expected not to receive error: got '%v'", err)
	}

	if resp.JobId == "" || !resp.Running {
		t.Errorf("expected running session: got '%+v'", resp)
	}

	if resp.TunnelPid != 0 {
		t.Errorf("expected no tunnel pid: got '%d', want '0'", resp.TunnelPid)
	}

	if !strings.Contains(resp.TunnelError, "exited with code 255") {
		t.Errorf(
			"expected tunnel error with output: got '%s'",
			resp.TunnelError,
		)
	}
}

func TestTunnelEndpoints(t *testing.T) {
	clients := setupTestClientAndServer(t, remotetest.NewCluster())

	ctx := t.Context()

	t.Run("Test start and stream tunnel", func(t *testing.T) {
		startResp, err := clients.operator.StartTunnel(ctx, &api.StartTunnelRequest{
			Port:    19010,
			Command: "echo forwarding; sleep 30",
		})
		if err != nil {
			t.Fatalf("expected not to receive error: got '%v'", err)
		}

		if startResp.Pid == 0 || startResp.TunnelError != "" {
			t.Errorf("expected running tunnel: got '%+v'", startResp)
		}

		streamCtx, cancel := context.WithCancel(ctx)
		defer cancel()

		stream, err := clients.viewer.StreamTunnelOutput(
			streamCtx,
			&api.StreamTunnelOutputRequest{Port: 19010},
		)
		if err != nil {
			t.Fatalf("expected not to receive error: got '%v'", err)
		}

		var output []byte
		for !strings.Contains(string(output), "forwarding\n") {
			chunk, err := stream.Recv()
			if err != nil {
				t.Fatalf("expected not to receive error: got '%v'", err)
			}

			output = append(output, chunk.Data...)
		}

		cancel()

		for {
			if _, err := stream.Recv(); err != nil {
				if err != io.EOF {
					expectCode(t, err, codes.Canceled)
				}

				break
			}
		}
	})

	t.Run("Test tunnel that exits immediately", func(t *testing.T) {
		resp, err := clients.operator.StartTunnel(ctx, &api.StartTunnelRequest{
			Port:    19011,
			Command: "echo 'Permission denied (publickey)'; exit 255",
		})
		if err != nil {
			t.Fatalf("expected not to receive error: got '%v'", err)
		}

		if resp.TunnelError == "" {
			t.Errorf("expected tunnel error")
		}

		if !strings.Contains(resp.Output, "Permission denied") {
			t.Errorf("expected tunnel output: got '%s'", resp.Output)
		}
	})

	t.Run("Test stream unknown tunnel", func(t *testing.T) {
		stream, err := clients.viewer.StreamTunnelOutput(
			ctx,
			&api.StreamTunnelOutputRequest{Port: 19099},
		)
		if err != nil {
			t.Fatalf("expected not to receive error: got '%v'", err)
		}

		_, err = stream.Recv()
		expectCode(t, err, codes.NotFound)
	})

	t.Run("Test list tunnels", func(t *testing.T) {
		resp, err := clients.viewer.ListTunnels(ctx, &api.ListTunnelsRequest{
			Port: 19099,
		})
		if err != nil {
			t.Fatalf("expected not to receive error: got '%v'", err)
		}

		if len(resp.Pids) != 0 {
			t.Errorf("expected no tunnels: got '%v'", resp.Pids)
		}
	})

	t.Run("Test viewer cannot manage tunnels", func(t *testing.T) {
		_, err := clients.viewer.KillTunnels(ctx, &api.KillTunnelsRequest{
			Port: 19010,
		})
		expectCode(t, err, codes.PermissionDenied)

		_, err = clients.viewer.StartTunnel(ctx, &api.StartTunnelRequest{
			Port:    19010,
			Command: "sleep 1",
		})
		expectCode(t, err, codes.PermissionDenied)
	})

	t.Run("Test empty tunnel command", func(t *testing.T) {
		_, err := clients.operator.StartTunnel(ctx, &api.StartTunnelRequest{
			Port: 19012,
		})
		expectCode(t, err, codes.InvalidArgument)
	})
}
