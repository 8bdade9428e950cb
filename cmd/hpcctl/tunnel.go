package main

import (
	"fmt"
	"io"
	"strings"

	api "github.com/nixpig/hpctools/api/v1"
	"github.com/spf13/cobra"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func (c *cli) tunnelCmd() *cobra.Command {
	command := &cobra.Command{
		Use:   "tunnel",
		Short: "Manage SSH tunnels on the hpcd host",
	}

	command.AddCommand(
		c.tunnelListCmd(),
		c.tunnelKillCmd(),
		c.tunnelStartCmd(),
		c.tunnelStreamCmd(),
	)

	return command
}

func (c *cli) tunnelListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list [flags] PORT",
		Short:   "List processes forwarding a port",
		Example: "  hpcctl tunnel list 9010",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			port, err := parsePort(args[0])
			if err != nil {
				return err
			}

			resp, err := c.client.ListTunnels(
				cmd.Context(),
				&api.ListTunnelsRequest{Port: port},
			)
			if err != nil {
				return mapError(err)
			}

			t := newTable(cmd.OutOrStdout(), "PID")
			for _, pid := range resp.Pids {
				t.row(pid)
			}

			return t.flush()
		},
	}
}

func (c *cli) tunnelKillCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "kill [flags] PORT",
		Short:   "Kill every process forwarding a port",
		Example: "  hpcctl tunnel kill 9010",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			port, err := parsePort(args[0])
			if err != nil {
				return err
			}

			resp, err := c.client.KillTunnels(
				cmd.Context(),
				&api.KillTunnelsRequest{Port: port},
			)
			if err != nil {
				return mapError(err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "killed %d\n", resp.Killed)

			return nil
		},
	}
}

func (c *cli) tunnelStartCmd() *cobra.Command {
	command := &cobra.Command{
		Use:     "start [flags] PORT COMMAND...",
		Short:   "Start a tunnel command in the background",
		Example: "  hpcctl tunnel start 9010 ssh -N -L 9010:10.1.2.3:9010 alice@login",
		Args:    cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			port, err := parsePort(args[0])
			if err != nil {
				return err
			}

			resp, err := c.client.StartTunnel(
				cmd.Context(),
				&api.StartTunnelRequest{
					Port:    port,
					Command: strings.Join(args[1:], " "),
				},
			)
			if err != nil {
				return mapError(err)
			}

			if resp.TunnelError != "" {
				if resp.Output != "" {
					fmt.Fprint(cmd.ErrOrStderr(), resp.Output)
				}

				return fmt.Errorf("%s", resp.TunnelError)
			}

			fmt.Fprintln(cmd.OutOrStdout(), resp.Pid)

			return nil
		},
	}

	// `-N` and `-L` belong to ssh, not hpcctl.
	command.Flags().SetInterspersed(false)

	return command
}

func (c *cli) tunnelStreamCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "stream [flags] PORT",
		Short:   "Stream output of the tunnel started for a port",
		Example: "  hpcctl tunnel stream 9010",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			port, err := parsePort(args[0])
			if err != nil {
				return err
			}

			stream, err := c.client.StreamTunnelOutput(
				cmd.Context(),
				&api.StreamTunnelOutputRequest{Port: port},
			)
			if err != nil {
				return mapError(err)
			}

			for {
				resp, err := stream.Recv()
				if err != nil {
					if err == io.EOF {
						break
					}

					if status.Code(err) == codes.Canceled {
						break
					}

					return mapError(err)
				}

				cmd.OutOrStdout().Write(resp.Data)
			}

			return nil
		},
	}
}
