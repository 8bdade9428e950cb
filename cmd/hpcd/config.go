package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/nixpig/hpctools/internal/remote"
	"github.com/nixpig/hpctools/internal/session"
	"github.com/spf13/pflag"
)

const (
	executorSSH    = "ssh"
	executorNative = "native"
)

type config struct {
	host  string
	port  string
	debug bool

	certPath   string
	keyPath    string
	caCertPath string

	clusterHost string
	clusterUser string
	clusterPort int

	// executor is either executorSSH (the local ssh binary) or executorNative
	// (an in-process SSH client).
	executor       string
	sshBinary      string
	identityFiles  []string
	knownHostsPath string

	scriptsPath    string
	jobScript      string
	envName        string
	metadataPrefix string

	waitTimeout  time.Duration
	pollInterval time.Duration
	tunnelSettle time.Duration
}

func (c *config) validate() error {
	port, err := strconv.Atoi(c.port)
	if err != nil {
		return fmt.Errorf("port string to number: %w", err)
	}

	if port < 1 || port > 65535 {
		return errors.New("port must be in valid range")
	}

	for flag, path := range map[string]string{
		"cert-path":    c.certPath,
		"key-path":     c.keyPath,
		"ca-cert-path": c.caCertPath,
	} {
		if path == "" {
			return fmt.Errorf("%s cannot be empty", flag)
		}

		if _, err := os.Stat(path); err != nil {
			return fmt.Errorf("failed to stat %s: %w", flag, err)
		}
	}

	if err := c.cluster().Validate(); err != nil {
		return err
	}

	if c.executor != executorSSH && c.executor != executorNative {
		return fmt.Errorf(
			"executor must be %q or %q: got %q",
			executorSSH,
			executorNative,
			c.executor,
		)
	}

	if c.pollInterval <= 0 {
		return errors.New("poll-interval must be positive")
	}

	if c.tunnelSettle < 0 {
		return errors.New("tunnel-settle cannot be negative")
	}

	return nil
}

func (c *config) bindFlags(fs *pflag.FlagSet) {
	fs.StringVar(&c.host, "host", "localhost", "gRPC server host to bind")
	fs.StringVar(&c.port, "port", "8443", "gRPC server port")
	fs.BoolVar(&c.debug, "debug", false, "Enable debug logs")

	fs.StringVar(
		&c.certPath,
		"cert-path",
		"certs/server.crt",
		"Path to server TLS certificate",
	)

	fs.StringVar(
		&c.keyPath,
		"key-path",
		"certs/server.key",
		"Path to server TLS private key",
	)

	fs.StringVar(
		&c.caCertPath,
		"ca-cert-path",
		"certs/ca.crt",
		"Path to CA certificate for mTLS",
	)

	fs.StringVar(&c.clusterHost, "cluster-host", "", "Cluster login node")
	fs.StringVar(&c.clusterUser, "cluster-user", "", "User on the cluster")
	fs.IntVar(&c.clusterPort, "cluster-port", 0, "SSH port of the login node")

	fs.StringVar(
		&c.executor,
		"executor",
		executorSSH,
		"How to run remote commands: 'ssh' (ssh binary) or 'native'",
	)

	fs.StringVar(&c.sshBinary, "ssh-binary", "ssh", "ssh binary for the ssh executor")

	fs.StringSliceVar(
		&c.identityFiles,
		"identity",
		nil,
		"Private key for the native executor (repeatable, default ~/.ssh keys)",
	)

	fs.StringVar(
		&c.knownHostsPath,
		"known-hosts",
		"",
		"known_hosts file for the native executor (default ~/.ssh/known_hosts)",
	)

	fs.StringVar(
		&c.scriptsPath,
		"scripts-path",
		"$HOME/slurm_scripts",
		"Directory on the cluster holding job scripts and session metadata",
	)

	fs.StringVar(
		&c.jobScript,
		"job-script",
		session.DefaultScript,
		"Job script submitted for notebook sessions",
	)

	fs.StringVar(&c.envName, "env", "", "Environment name passed to the job script")

	fs.StringVar(
		&c.metadataPrefix,
		"metadata-prefix",
		session.DefaultMetadataPrefix,
		"Prefix of session metadata files",
	)

	fs.DurationVar(
		&c.waitTimeout,
		"wait-timeout",
		session.DefaultWaitTimeout,
		"How long session start waits for the job to run (negative waits forever)",
	)

	fs.DurationVar(
		&c.pollInterval,
		"poll-interval",
		session.DefaultPollInterval,
		"Interval between job state checks while waiting",
	)

	fs.DurationVar(
		&c.tunnelSettle,
		"tunnel-settle",
		time.Second,
		"How long a new tunnel must stay up to count as started",
	)
}

func (c *config) cluster() remote.ClusterSession {
	return remote.ClusterSession{
		Host: c.clusterHost,
		User: c.clusterUser,
		Port: c.clusterPort,
	}
}

func (c *config) sessionConfig() session.Config {
	return session.Config{
		ScriptsPath:    c.scriptsPath,
		DefaultScript:  c.jobScript,
		EnvName:        c.envName,
		MetadataPrefix: c.metadataPrefix,
		WaitTimeout:    c.waitTimeout,
		PollInterval:   c.pollInterval,
	}
}

// newExecutor builds the remote.Executor selected by the executor flag.
func (c *config) newExecutor(logger *slog.Logger) (remote.Executor, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	cluster := c.cluster()

	if c.executor == executorNative {
		clientConfig, err := remote.ClientConfig(
			cluster,
			c.identityFiles,
			c.knownHostsPath,
		)
		if err != nil {
			return nil, err
		}

		return remote.NewClientExecutor(cluster, clientConfig, logger), nil
	}

	var extraArgs []string
	for _, identity := range c.identityFiles {
		extraArgs = append(extraArgs, "-i", identity)
	}

	if c.knownHostsPath != "" {
		extraArgs = append(extraArgs, "-o", "UserKnownHostsFile="+c.knownHostsPath)
	}

	return remote.NewCommandExecutor(
		cluster,
		remote.WithBinary(c.sshBinary),
		remote.WithExtraArgs(extraArgs...),
		remote.WithCommandLogger(logger),
	), nil
}
