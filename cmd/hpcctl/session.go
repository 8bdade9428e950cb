package main

import (
	"fmt"
	"strconv"

	api "github.com/nixpig/hpctools/api/v1"
	"github.com/spf13/cobra"
)

func (c *cli) sessionCmd() *cobra.Command {
	command := &cobra.Command{
		Use:   "session",
		Short: "Manage notebook sessions",
	}

	command.AddCommand(
		c.sessionStartCmd(),
		c.sessionStopCmd(),
		c.sessionStatusCmd(),
	)

	return command
}

func (c *cli) sessionStartCmd() *cobra.Command {
	req := &api.StartSessionRequest{}

	command := &cobra.Command{
		Use:     "start [flags] PORT",
		Short:   "Start a notebook session unless one is already active",
		Example: "  hpcctl session start 9010 --wait --tunnel",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			port, err := parsePort(args[0])
			if err != nil {
				return err
			}

			req.Port = port

			resp, err := c.client.StartSession(cmd.Context(), req)
			if err != nil {
				return mapError(err)
			}

			w := cmd.OutOrStdout()

			if resp.AlreadyActive {
				fmt.Fprintf(w, "session on port %d already active\n", port)
				return nil
			}

			if resp.CancelledJobId != "" {
				fmt.Fprintf(w, "cancelled job %s\n", resp.CancelledJobId)
			}

			fmt.Fprintf(w, "submitted job %s\n", resp.JobId)

			if req.Wait {
				if !resp.Running {
					return fmt.Errorf(
						"job %s not running after %s",
						resp.JobId,
						elapsed(resp.ElapsedSeconds),
					)
				}

				fmt.Fprintf(w, "running after %s on %s\n", elapsed(resp.ElapsedSeconds), resp.Ip)
			}

			switch {
			case resp.TunnelError != "":
				fmt.Fprintf(cmd.ErrOrStderr(), "failed to start tunnel: %s\n", resp.TunnelError)
			case resp.TunnelPid != 0:
				fmt.Fprintf(w, "tunnel running with pid %d\n", resp.TunnelPid)
			}

			return nil
		},
	}

	command.Flags().StringVar(&req.Script, "script", "", "Job script (default the server's)")
	command.Flags().BoolVar(&req.Restart, "restart", false, "Cancel an active session first")
	command.Flags().BoolVar(&req.Wait, "wait", false, "Wait for the job to run")
	command.Flags().BoolVar(&req.Tunnel, "tunnel", false, "Start an SSH tunnel once running (requires --wait)")

	return command
}

func (c *cli) sessionStopCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "stop [flags] PORT",
		Short:   "Cancel the active notebook session",
		Example: "  hpcctl session stop 9010",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			port, err := parsePort(args[0])
			if err != nil {
				return err
			}

			resp, err := c.client.StopSession(
				cmd.Context(),
				&api.StopSessionRequest{Port: port},
			)
			if err != nil {
				return mapError(err)
			}

			if !resp.Stopped {
				fmt.Fprintf(cmd.OutOrStdout(), "no active session on port %d\n", port)
				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(), "cancelled job %s\n", resp.JobId)

			return nil
		},
	}
}

func (c *cli) sessionStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "status [flags] PORT",
		Short:   "Show the notebook session on a port",
		Example: "  hpcctl session status 9010",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			port, err := parsePort(args[0])
			if err != nil {
				return err
			}

			resp, err := c.client.SessionStatus(
				cmd.Context(),
				&api.SessionStatusRequest{Port: port},
			)
			if err != nil {
				return mapError(err)
			}

			addr := resp.Ip
			if addr == "" {
				addr = resp.Host
			}

			t := newTable(cmd.OutOrStdout(), "ACTIVE", "JOB ID", "STATE", "ADDRESS", "TUNNEL COMMAND")
			t.row(resp.Active, resp.JobId, resp.Code, addr, resp.Cmd)

			return t.flush()
		},
	}
}

func parsePort(s string) (int32, error) {
	port, err := strconv.Atoi(s)
	if err != nil || port < 1 || port > 65535 {
		return 0, fmt.Errorf("invalid port: %q", s)
	}

	return int32(port), nil
}
