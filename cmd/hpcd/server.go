package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"time"

	api "github.com/nixpig/hpctools/api/v1"
	"github.com/nixpig/hpctools/internal/remote"
	"github.com/nixpig/hpctools/internal/session"
	"github.com/nixpig/hpctools/internal/slurm"
	"github.com/nixpig/hpctools/internal/tlsconfig"
	"github.com/nixpig/hpctools/internal/tunnel"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials"
	_ "google.golang.org/grpc/encoding/gzip"
	"google.golang.org/grpc/keepalive"
	"google.golang.org/grpc/status"
)

const (
	// streamBufferSize is the buffer size for reading tunnel output.
	// 4KB aligns with typical pipe buffer sizes.
	streamBufferSize = 4096

	// keepaliveMinTime matches the client's ping interval.
	keepaliveMinTime = 5 * time.Minute
)

type server struct {
	api.UnimplementedClusterServiceServer

	jobs     *slurm.Controller
	poller   *slurm.Poller
	sessions *session.Manager
	tunnels  *tunnel.Manager

	logger     *slog.Logger
	cfg        *config
	grpcServer *grpc.Server
}

func newServer(
	exec remote.Executor,
	tunnels *tunnel.Manager,
	logger *slog.Logger,
	cfg *config,
) *server {
	jobs := slurm.NewController(exec, logger)

	return &server{
		jobs:   jobs,
		poller: slurm.NewPoller(jobs, slurm.WithPollerLogger(logger)),
		sessions: session.NewManager(
			cfg.sessionConfig(),
			exec,
			tunnels,
			session.WithLogger(logger),
		),
		tunnels: tunnels,
		logger:  logger,
		cfg:     cfg,
	}
}

func (s *server) start(listener net.Listener) error {
	tlsCreds, err := s.loadTLSCreds()
	if err != nil {
		return fmt.Errorf("load TLS credentials: %w", err)
	}

	s.grpcServer = grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			contextCheckUnaryInterceptor,
			loggingUnaryInterceptor(s.logger),
			authUnaryInterceptor(s.logger),
		),
		grpc.ChainStreamInterceptor(
			contextCheckStreamInterceptor,
			loggingStreamInterceptor(s.logger),
			authStreamInterceptor(s.logger),
		),
		grpc.KeepaliveEnforcementPolicy(keepalive.EnforcementPolicy{
			MinTime: keepaliveMinTime,
		}),
		grpc.Creds(tlsCreds),
	)

	api.RegisterClusterServiceServer(s.grpcServer, s)

	return s.grpcServer.Serve(listener)
}

func (s *server) shutdown() {
	if s.grpcServer != nil {
		s.grpcServer.GracefulStop()
	}
}

func (s *server) SubmitJob(
	ctx context.Context,
	req *api.SubmitJobRequest,
) (*api.SubmitJobResponse, error) {
	if req.Script == "" {
		return nil, status.Error(codes.InvalidArgument, "script is empty")
	}

	workDir := req.WorkDir
	if workDir == "" {
		workDir = s.cfg.scriptsPath
	}

	id, err := s.jobs.Submit(ctx, req.Script, req.Args, workDir)
	if err != nil {
		return nil, s.mapError("submit job", err)
	}

	return &api.SubmitJobResponse{JobId: id}, nil
}

func (s *server) CancelJob(
	ctx context.Context,
	req *api.CancelJobRequest,
) (*api.CancelJobResponse, error) {
	if req.JobId == "" {
		return nil, status.Error(codes.InvalidArgument, "job id is empty")
	}

	if err := s.jobs.Cancel(ctx, req.JobId); err != nil {
		return nil, s.mapError("cancel job", err)
	}

	return &api.CancelJobResponse{}, nil
}

func (s *server) JobState(
	ctx context.Context,
	req *api.JobStateRequest,
) (*api.JobStateResponse, error) {
	if req.JobId == "" {
		return nil, status.Error(codes.InvalidArgument, "job id is empty")
	}

	state, err := s.jobs.State(ctx, req.JobId, req.Compact)
	if errors.Is(err, slurm.ErrJobNotFound) {
		return &api.JobStateResponse{Found: false}, nil
	}

	if err != nil {
		return nil, s.mapError("query job state", err)
	}

	code := state.String()
	if req.Compact {
		code = state.Compact()
	}

	return &api.JobStateResponse{
		Found:    true,
		State:    jobState(state),
		Code:     code,
		Terminal: state.IsTerminal(),
		Running:  state.IsRunning(),
	}, nil
}

func (s *server) JobInfo(
	ctx context.Context,
	req *api.JobInfoRequest,
) (*api.JobInfoResponse, error) {
	if req.JobId == "" {
		return nil, status.Error(codes.InvalidArgument, "job id is empty")
	}

	record, err := s.jobs.Info(ctx, req.JobId)
	if errors.Is(err, slurm.ErrJobNotFound) {
		return &api.JobInfoResponse{Found: false}, nil
	}

	if err != nil {
		return nil, s.mapError("query job info", err)
	}

	return &api.JobInfoResponse{Found: true, Fields: record}, nil
}

func (s *server) WaitForRunning(
	ctx context.Context,
	req *api.WaitForRunningRequest,
) (*api.WaitForRunningResponse, error) {
	if req.JobId == "" {
		return nil, status.Error(codes.InvalidArgument, "job id is empty")
	}

	interval := seconds(req.PollIntervalSeconds)
	if interval <= 0 {
		interval = s.cfg.pollInterval
	}

	result, err := s.poller.WaitForRunning(
		ctx,
		req.JobId,
		seconds(req.TimeoutSeconds),
		interval,
	)
	if err != nil {
		return nil, s.mapError("wait for job", err)
	}

	return &api.WaitForRunningResponse{
		Running:        result.Running,
		ElapsedSeconds: result.Elapsed.Seconds(),
	}, nil
}

func (s *server) StartSession(
	ctx context.Context,
	req *api.StartSessionRequest,
) (*api.StartSessionResponse, error) {
	port, err := validatePort(req.Port)
	if err != nil {
		return nil, err
	}

	result, err := s.sessions.Start(ctx, port, session.StartOptions{
		Script:  req.Script,
		Restart: req.Restart,
		Wait:    req.Wait,
		Tunnel:  req.Tunnel,
	})
	if err != nil {
		return nil, s.mapError("start session", err)
	}

	resp := &api.StartSessionResponse{
		JobId:          result.JobID,
		AlreadyActive:  result.AlreadyActive,
		CancelledJobId: result.CancelledJobID,
		Running:        result.Running,
		ElapsedSeconds: result.Elapsed.Seconds(),
	}

	if result.Metadata != nil {
		resp.Ip = result.Metadata.Addr()
		resp.Cmd = result.Metadata.Cmd
	}

	switch {
	case result.TunnelErr != nil:
		resp.TunnelError = result.TunnelErr.Error()
	case result.Tunnel != nil:
		resp.TunnelPid = int32(result.Tunnel.PID())
	}

	return resp, nil
}

func (s *server) StopSession(
	ctx context.Context,
	req *api.StopSessionRequest,
) (*api.StopSessionResponse, error) {
	port, err := validatePort(req.Port)
	if err != nil {
		return nil, err
	}

	result, err := s.sessions.Stop(ctx, port)
	if err != nil {
		return nil, s.mapError("stop session", err)
	}

	return &api.StopSessionResponse{
		JobId:   result.JobID,
		Stopped: result.Stopped,
	}, nil
}

func (s *server) SessionStatus(
	ctx context.Context,
	req *api.SessionStatusRequest,
) (*api.SessionStatusResponse, error) {
	port, err := validatePort(req.Port)
	if err != nil {
		return nil, err
	}

	st, err := s.sessions.Status(ctx, port)
	if err != nil {
		return nil, s.mapError("query session status", err)
	}

	resp := &api.SessionStatusResponse{Active: st.Active}

	if st.Metadata != nil {
		resp.JobId = st.Metadata.JobID
		resp.State = jobState(st.State)
		resp.Code = st.State.String()
		resp.Ip = st.Metadata.IP
		resp.Host = st.Metadata.Host
		resp.Cmd = st.Metadata.Cmd
	}

	return resp, nil
}

func (s *server) ListTunnels(
	ctx context.Context,
	req *api.ListTunnelsRequest,
) (*api.ListTunnelsResponse, error) {
	port, err := validatePort(req.Port)
	if err != nil {
		return nil, err
	}

	pids, err := s.tunnels.FindTunnels(port)
	if err != nil {
		return nil, s.mapError("list tunnels", err)
	}

	resp := &api.ListTunnelsResponse{Pids: make([]int32, 0, len(pids))}
	for _, pid := range pids {
		resp.Pids = append(resp.Pids, int32(pid))
	}

	return resp, nil
}

func (s *server) KillTunnels(
	ctx context.Context,
	req *api.KillTunnelsRequest,
) (*api.KillTunnelsResponse, error) {
	port, err := validatePort(req.Port)
	if err != nil {
		return nil, err
	}

	killed, err := s.tunnels.KillTunnels(port)
	if err != nil {
		return nil, s.mapError("kill tunnels", err)
	}

	return &api.KillTunnelsResponse{Killed: int32(killed)}, nil
}

func (s *server) StartTunnel(
	ctx context.Context,
	req *api.StartTunnelRequest,
) (*api.StartTunnelResponse, error) {
	port, err := validatePort(req.Port)
	if err != nil {
		return nil, err
	}

	if req.Command == "" {
		return nil, status.Error(codes.InvalidArgument, "command is empty")
	}

	h, err := s.tunnels.StartTunnel(ctx, req.Command, port)

	var spawnErr *tunnel.SpawnError
	if errors.As(err, &spawnErr) {
		return &api.StartTunnelResponse{
			Id:          h.ID(),
			TunnelError: spawnErr.Error(),
			Output:      spawnErr.Output,
		}, nil
	}

	if err != nil {
		return nil, s.mapError("start tunnel", err)
	}

	return &api.StartTunnelResponse{Id: h.ID(), Pid: int32(h.PID())}, nil
}

func (s *server) StreamTunnelOutput(
	req *api.StreamTunnelOutputRequest,
	stream api.ClusterService_StreamTunnelOutputServer,
) error {
	port, err := validatePort(req.Port)
	if err != nil {
		return err
	}

	h, err := s.tunnels.Handle(port)
	if err != nil {
		return s.mapError("output stream", err)
	}

	outputReader := h.Output()

	// A blocked Read only returns once the reader is closed, so close it when
	// the client goes away.
	stop := context.AfterFunc(stream.Context(), func() {
		outputReader.Close()
	})

	defer func() {
		if stop() {
			if err := outputReader.Close(); err != nil {
				s.logger.Warn("close output reader", "port", port, "err", err)
			}
		}
	}()

	buf := make([]byte, streamBufferSize)
	for {
		n, err := outputReader.Read(buf)
		if n > 0 {
			if err := stream.Send(&api.TunnelOutputChunk{
				Data: buf[:n],
			}); err != nil {
				s.logger.Warn("stream data to client", "port", port, "err", err)
				return status.Error(codes.DataLoss, "failed to stream data")
			}
		}

		if err != nil {
			if err == io.EOF {
				break
			}

			return s.mapError("read tunnel output stream", err)
		}
	}

	if err := stream.Context().Err(); err != nil {
		return status.FromContextError(err).Err()
	}

	return nil
}

// mapError translates domain errors to gRPC errors.
func (s *server) mapError(logMsg string, err error) error {
	switch {
	case errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		s.logger.Debug(logMsg, "err", err)
		return status.FromContextError(err).Err()

	case errors.As(err, new(*remote.TransportError)):
		s.logger.Error(logMsg, "err", err)
		return status.Error(codes.Unavailable, "cluster unreachable")

	case errors.As(err, new(*slurm.SubmitRejectedError)):
		s.logger.Warn(logMsg, "err", err)
		return status.Error(codes.FailedPrecondition, err.Error())

	case errors.Is(err, slurm.ErrJobNotFound),
		errors.Is(err, tunnel.ErrTunnelNotFound):
		s.logger.Warn(logMsg, "err", err)
		return status.Error(codes.NotFound, err.Error())

	case errors.As(err, new(*tunnel.SpawnError)):
		s.logger.Warn(logMsg, "err", err)
		return status.Error(codes.FailedPrecondition, err.Error())

	case errors.As(err, new(*slurm.MalformedOutputError)):
		s.logger.Error(logMsg, "err", err)
		return status.Error(codes.Internal, "unexpected scheduler output")

	default:
		s.logger.Error(logMsg, "err", err)
		return status.Error(codes.Internal, "internal server error")
	}
}

// loadTLSCreds creates the gRPC transport credentials with mTLS enabled.
func (s *server) loadTLSCreds() (credentials.TransportCredentials, error) {
	tlsConfig, err := tlsconfig.SetupTLS(&tlsconfig.Config{
		CertPath:   s.cfg.certPath,
		KeyPath:    s.cfg.keyPath,
		CACertPath: s.cfg.caCertPath,
		Server:     true,
	})
	if err != nil {
		return nil, err
	}

	return credentials.NewTLS(tlsConfig), nil
}

func validatePort(port int32) (int, error) {
	if port < 1 || port > 65535 {
		return 0, status.Errorf(codes.InvalidArgument, "invalid port: %d", port)
	}

	return int(port), nil
}

// jobState maps a scheduler state onto the API enum. States the API doesn't
// name map to JOB_STATE_UNSPECIFIED.
func jobState(s slurm.JobState) api.JobState {
	return api.JobState(api.JobState_value["JOB_STATE_"+string(s)])
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
