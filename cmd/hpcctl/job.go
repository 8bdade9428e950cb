package main

import (
	"fmt"
	"maps"
	"slices"
	"time"

	api "github.com/nixpig/hpctools/api/v1"
	"github.com/spf13/cobra"
)

func (c *cli) jobCmd() *cobra.Command {
	command := &cobra.Command{
		Use:   "job",
		Short: "Manage SLURM jobs",
	}

	command.AddCommand(
		c.jobSubmitCmd(),
		c.jobCancelCmd(),
		c.jobStateCmd(),
		c.jobInfoCmd(),
		c.jobWaitCmd(),
	)

	return command
}

func (c *cli) jobSubmitCmd() *cobra.Command {
	var workDir string

	command := &cobra.Command{
		Use:     "submit [flags] SCRIPT [SCRIPT_ARGS]",
		Short:   "Submit a batch job",
		Example: "  hpcctl job submit train.sh --epochs 3",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := c.client.SubmitJob(
				cmd.Context(),
				&api.SubmitJobRequest{
					Script:  args[0],
					Args:    args[1:],
					WorkDir: workDir,
				},
			)
			if err != nil {
				return mapError(err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), resp.JobId)

			return nil
		},
	}

	command.Flags().StringVar(
		&workDir,
		"work-dir",
		"",
		"Directory on the cluster to submit from (default the server's scripts path)",
	)

	// Flags after the script belong to the script, e.g. `--epochs` in:
	//	`hpcctl job submit train.sh --epochs 3`
	command.Flags().SetInterspersed(false)

	return command
}

func (c *cli) jobCancelCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "cancel [flags] JOB_ID",
		Short:   "Cancel a job",
		Example: "  hpcctl job cancel 4242",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := c.client.CancelJob(
				cmd.Context(),
				&api.CancelJobRequest{JobId: args[0]},
			); err != nil {
				return mapError(err)
			}

			return nil
		},
	}
}

func (c *cli) jobStateCmd() *cobra.Command {
	var compact bool

	command := &cobra.Command{
		Use:     "state [flags] JOB_ID",
		Short:   "Query the scheduler state of a job",
		Example: "  hpcctl job state 4242",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := c.client.JobState(
				cmd.Context(),
				&api.JobStateRequest{JobId: args[0], Compact: compact},
			)
			if err != nil {
				return mapError(err)
			}

			if !resp.Found {
				return fmt.Errorf("job %s not found", args[0])
			}

			t := newTable(cmd.OutOrStdout(), "STATE", "TERMINAL", "RUNNING")
			t.row(resp.Code, resp.Terminal, resp.Running)

			return t.flush()
		},
	}

	command.Flags().BoolVar(
		&compact,
		"compact",
		false,
		"Query the compact state code",
	)

	return command
}

func (c *cli) jobInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "info [flags] JOB_ID",
		Short:   "Show every field the scheduler reports for a job",
		Example: "  hpcctl job info 4242",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := c.client.JobInfo(
				cmd.Context(),
				&api.JobInfoRequest{JobId: args[0]},
			)
			if err != nil {
				return mapError(err)
			}

			if !resp.Found {
				return fmt.Errorf("job %s not found", args[0])
			}

			t := newTable(cmd.OutOrStdout(), "FIELD", "VALUE")
			for _, k := range slices.Sorted(maps.Keys(resp.Fields)) {
				t.row(k, resp.Fields[k])
			}

			return t.flush()
		},
	}
}

func (c *cli) jobWaitCmd() *cobra.Command {
	var timeout, interval time.Duration

	command := &cobra.Command{
		Use:     "wait [flags] JOB_ID",
		Short:   "Wait for a job to start running",
		Example: "  hpcctl job wait 4242 --timeout 2m",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := c.client.WaitForRunning(
				cmd.Context(),
				&api.WaitForRunningRequest{
					JobId:               args[0],
					TimeoutSeconds:      timeout.Seconds(),
					PollIntervalSeconds: interval.Seconds(),
				},
			)
			if err != nil {
				return mapError(err)
			}

			t := newTable(cmd.OutOrStdout(), "RUNNING", "ELAPSED")
			t.row(resp.Running, elapsed(resp.ElapsedSeconds))
			if err := t.flush(); err != nil {
				return err
			}

			if !resp.Running {
				return fmt.Errorf("job %s not running after %s", args[0], elapsed(resp.ElapsedSeconds))
			}

			return nil
		},
	}

	command.Flags().DurationVar(
		&timeout,
		"timeout",
		time.Minute,
		"How long to wait (0 waits until interrupted)",
	)

	command.Flags().DurationVar(
		&interval,
		"interval",
		time.Second,
		"Interval between state checks",
	)

	return command
}

func elapsed(seconds float64) time.Duration {
	return time.Duration(seconds * float64(time.Second)).Round(time.Millisecond)
}
