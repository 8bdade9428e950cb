// Package tlsconfig builds mutual TLS configurations for hpcd and its
// clients from PEM files on disk.
package tlsconfig

import (
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"os"
)

// Config names the PEM files for one side of an mTLS connection.
type Config struct {
	CertPath   string
	KeyPath    string
	CACertPath string

	// ServerName is the name the client expects in the server's certificate.
	// Unused when Server is set.
	ServerName string

	// Server requires and verifies client certificates against the CA,
	// instead of verifying the server against it.
	Server bool
}

// SetupTLS loads the key pair and CA and returns a TLS 1.3 configuration.
func SetupTLS(config *Config) (*tls.Config, error) {
	cert, err := tls.LoadX509KeyPair(config.CertPath, config.KeyPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load certificate: %w", err)
	}

	caCert, err := os.ReadFile(config.CACertPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read CA certificate: %w", err)
	}

	caCertPool := x509.NewCertPool()
	if !caCertPool.AppendCertsFromPEM(caCert) {
		return nil, errors.New("failed to parse CA certificate")
	}

	tlsConfig := &tls.Config{
		MinVersion:   tls.VersionTLS13,
		Certificates: []tls.Certificate{cert},
	}

	if config.Server {
		tlsConfig.ClientAuth = tls.RequireAndVerifyClientCert
		tlsConfig.ClientCAs = caCertPool
	} else {
		tlsConfig.ServerName = config.ServerName
		tlsConfig.RootCAs = caCertPool
	}

	return tlsConfig, nil
}
