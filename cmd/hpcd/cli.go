package main

import (
	"fmt"
	"io"
	"log/slog"
	"net"

	"github.com/nixpig/hpctools/internal/certs"
	"github.com/nixpig/hpctools/internal/tunnel"
	"github.com/spf13/cobra"
)

func rootCmd() *cobra.Command {
	cfg := &config{}

	c := &cobra.Command{
		Use:          "hpcd",
		Short:        "gRPC server for SLURM jobs, notebook sessions and SSH tunnels",
		Example:      "  hpcd --cluster-host login.hpc.example.org --cluster-user alice",
		Version:      version,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.validate(); err != nil {
				return err
			}

			return runServer(cmd, cfg)
		},
	}

	c.CompletionOptions.HiddenDefaultCmd = true

	cfg.bindFlags(c.Flags())

	c.AddCommand(certsCmd())

	return c
}

func runServer(cmd *cobra.Command, cfg *config) error {
	logger := newLogger(cmd.ErrOrStderr(), cfg.debug)

	exec, err := cfg.newExecutor(logger)
	if err != nil {
		return fmt.Errorf("create executor: %w", err)
	}

	if closer, ok := exec.(io.Closer); ok {
		defer closer.Close()
	}

	tunnels := tunnel.NewManager(
		tunnel.WithSettleDelay(cfg.tunnelSettle),
		tunnel.WithLogger(logger),
	)

	s := newServer(exec, tunnels, logger, cfg)
	defer s.sessions.Shutdown()

	listener, err := net.Listen("tcp", net.JoinHostPort(cfg.host, cfg.port))
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}

	logger.Info(
		"starting server",
		"addr", listener.Addr().String(),
		"cluster", cfg.cluster().Target(),
		"executor", cfg.executor,
	)

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.start(listener)
	}()

	select {
	case err := <-errCh:
		return err
	case <-cmd.Context().Done():
		logger.Info("shutting down server")
		s.shutdown()
		return nil
	}
}

func certsCmd() *cobra.Command {
	var (
		dir   string
		hosts []string
	)

	c := &cobra.Command{
		Use:     "certs",
		Short:   "Generate a development CA, server and client certificates",
		Example: "  hpcd certs --dir certs --host hpcd.internal",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := certs.Generate(dir, certs.Options{Hosts: hosts}); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "wrote certificates to %s\n", dir)

			return nil
		},
	}

	c.Flags().StringVar(&dir, "dir", "certs", "Directory to write certificates to")
	c.Flags().StringSliceVar(
		&hosts,
		"host",
		nil,
		"Extra server host name or IP (repeatable)",
	)

	return c
}

func newLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
