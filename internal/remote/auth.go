package remote

import (
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"

	"golang.org/x/crypto/ssh"
	"golang.org/x/crypto/ssh/agent"
	"golang.org/x/crypto/ssh/knownhosts"
)

// ClientConfig builds an ssh.ClientConfig for the session using AuthMethods
// and HostKeyCallback.
func ClientConfig(
	session ClusterSession,
	identityFiles []string,
	knownHostsPath string,
) (*ssh.ClientConfig, error) {
	methods, err := AuthMethods(identityFiles)
	if err != nil {
		return nil, fmt.Errorf("build auth methods: %w", err)
	}

	hostKeyCallback, err := HostKeyCallback(knownHostsPath)
	if err != nil {
		return nil, fmt.Errorf("load known hosts: %w", err)
	}

	return &ssh.ClientConfig{
		User:            session.User,
		Auth:            methods,
		HostKeyCallback: hostKeyCallback,
	}, nil
}

// AuthMethods returns ssh-agent auth (if SSH_AUTH_SOCK is usable) followed by
// public key auth from identityFiles. With no identityFiles, every parseable
// private key in ~/.ssh is tried. Passphrase-protected keys are skipped.
func AuthMethods(identityFiles []string) ([]ssh.AuthMethod, error) {
	var methods []ssh.AuthMethod

	if m, ok := agentAuth(); ok {
		methods = append(methods, m)
	}

	if len(identityFiles) == 0 {
		var err error
		identityFiles, err = defaultIdentityFiles()
		if err != nil && len(methods) == 0 {
			return nil, err
		}
	}

	var signers []ssh.Signer
	for _, path := range identityFiles {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}

		signer, err := ssh.ParsePrivateKey(data)
		if err != nil {
			continue
		}

		signers = append(signers, signer)
	}

	if len(signers) > 0 {
		methods = append(methods, ssh.PublicKeys(signers...))
	}

	if len(methods) == 0 {
		return nil, errors.New("no usable ssh auth methods found")
	}

	return methods, nil
}

// HostKeyCallback verifies host keys against a known_hosts file, defaulting
// to ~/.ssh/known_hosts.
func HostKeyCallback(path string) (ssh.HostKeyCallback, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("get home dir: %w", err)
		}

		path = filepath.Join(home, ".ssh", "known_hosts")
	}

	return knownhosts.New(path)
}

func agentAuth() (ssh.AuthMethod, bool) {
	sock := os.Getenv("SSH_AUTH_SOCK")
	if sock == "" {
		return nil, false
	}

	// NOTE: The agent connection stays open for the life of the process since
	// signing happens on every handshake.
	conn, err := net.Dial("unix", sock)
	if err != nil {
		return nil, false
	}

	return ssh.PublicKeysCallback(agent.NewClient(conn).Signers), true
}

func defaultIdentityFiles() ([]string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("get home dir: %w", err)
	}

	dir := filepath.Join(home, ".ssh")

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read ssh dir: %w", err)
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) == ".pub" {
			continue
		}

		paths = append(paths, filepath.Join(dir, e.Name()))
	}

	return paths, nil
}
