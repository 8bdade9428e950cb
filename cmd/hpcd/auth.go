package main

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/nixpig/hpctools/internal/auth"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// contextCheckUnaryInterceptor rejects requests with a cancelled context.
func contextCheckUnaryInterceptor(
	ctx context.Context,
	req any,
	info *grpc.UnaryServerInfo,
	handler grpc.UnaryHandler,
) (any, error) {
	if ctx.Err() != nil {
		return nil, status.FromContextError(ctx.Err()).Err()
	}

	return handler(ctx, req)
}

func contextCheckStreamInterceptor(
	srv any,
	ss grpc.ServerStream,
	info *grpc.StreamServerInfo,
	handler grpc.StreamHandler,
) error {
	if err := ss.Context().Err(); err != nil {
		return status.FromContextError(err).Err()
	}

	return handler(srv, ss)
}

// loggingUnaryInterceptor tags each request with an id and logs its outcome.
func loggingUnaryInterceptor(logger *slog.Logger) grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req any,
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (any, error) {
		l := logger.With("request_id", uuid.NewString(), "method", info.FullMethod)

		l.Debug("handling request")

		resp, err := handler(ctx, req)
		if err != nil {
			l.Debug("request failed", "code", status.Code(err))
		}

		return resp, err
	}
}

func loggingStreamInterceptor(logger *slog.Logger) grpc.StreamServerInterceptor {
	return func(
		srv any,
		ss grpc.ServerStream,
		info *grpc.StreamServerInfo,
		handler grpc.StreamHandler,
	) error {
		l := logger.With("request_id", uuid.NewString(), "method", info.FullMethod)

		l.Debug("handling stream")

		err := handler(srv, ss)
		if err != nil {
			l.Debug("stream failed", "code", status.Code(err))
		}

		return err
	}
}

func authUnaryInterceptor(logger *slog.Logger) grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req any,
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (any, error) {
		if err := authorise(ctx, info.FullMethod, logger); err != nil {
			return nil, err
		}

		return handler(ctx, req)
	}
}

func authStreamInterceptor(logger *slog.Logger) grpc.StreamServerInterceptor {
	return func(
		srv any,
		ss grpc.ServerStream,
		info *grpc.StreamServerInfo,
		handler grpc.StreamHandler,
	) error {
		if err := authorise(ss.Context(), info.FullMethod, logger); err != nil {
			return err
		}

		return handler(srv, ss)
	}
}

// authorise checks the caller's role permits method, returning a gRPC status
// error if not.
func authorise(ctx context.Context, method string, logger *slog.Logger) error {
	cn, ou, err := auth.GetClientIdentity(ctx)
	if err != nil {
		logger.Warn("failed to get client identity", "err", err)
		return status.Error(codes.Unauthenticated, "not authenticated")
	}

	role := auth.Role(ou)

	if err := auth.IsAuthorised(role, method); err != nil {
		logger.Warn(
			"failed to authorise client",
			"cn", cn,
			"role", role,
			"method", method,
			"err", err,
		)

		return status.Error(codes.PermissionDenied, "not authorised")
	}

	logger.Debug("authorised client request", "cn", cn, "role", role, "method", method)

	return nil
}
