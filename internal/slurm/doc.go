// Package slurm manages batch jobs on a SLURM cluster through a
// remote.Executor.
//
// A Controller submits (sbatch), cancels (scancel) and inspects (squeue) jobs,
// parsing the scheduler's text output. A job id the scheduler no longer knows
// is reported as ErrJobNotFound, a normal result rather than a failure.
//
// A Poller waits for a job to reach RUNNING, bounded by a timeout.
package slurm
