// Package certs generates a throwaway certificate authority with server and
// client certificates for running hpcd with mTLS in development and tests.
// Client certificates carry their role in the OU field.
package certs

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"fmt"
	"math/big"
	"net"
	"os"
	"path/filepath"
	"time"
)

const (
	CACertFile     = "ca.crt"
	CAKeyFile      = "ca.key"
	ServerCertFile = "server.crt"
	ServerKeyFile  = "server.key"

	organisation = "hpctools"
)

// ClientCertFile returns the certificate file name for a client with role.
func ClientCertFile(role string) string {
	return "client-" + role + ".crt"
}

// ClientKeyFile returns the key file name for a client with role.
func ClientKeyFile(role string) string {
	return "client-" + role + ".key"
}

// Client is a client certificate to generate.
type Client struct {
	CommonName string
	Role       string
}

// DefaultClients has one client per role known to the server.
var DefaultClients = []Client{
	{CommonName: "alice", Role: "operator"},
	{CommonName: "bob", Role: "viewer"},
}

// Options controls Generate.
type Options struct {
	// Hosts are added to the server certificate alongside localhost,
	// 127.0.0.1 and ::1. IP addresses become IP SANs.
	Hosts []string

	// Clients defaults to DefaultClients.
	Clients []Client

	// ValidFor defaults to one year.
	ValidFor time.Duration
}

type keyPair struct {
	cert *x509.Certificate
	der  []byte
	key  *ecdsa.PrivateKey
}

// Generate writes a CA, a server certificate and one certificate per client
// into dir, creating it if needed. Keys are written with mode 0600.
func Generate(dir string, opts Options) error {
	if len(opts.Clients) == 0 {
		opts.Clients = DefaultClients
	}

	if opts.ValidFor <= 0 {
		opts.ValidFor = 365 * 24 * time.Hour
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create cert dir: %w", err)
	}

	notBefore := time.Now().Add(-time.Minute)
	notAfter := notBefore.Add(opts.ValidFor)

	ca, err := newKeyPair(&x509.Certificate{
		Subject: pkix.Name{
			CommonName:   "hpctools CA",
			Organization: []string{organisation},
		},
		NotBefore:             notBefore,
		NotAfter:              notAfter,
		KeyUsage:              x509.KeyUsageCertSign | x509.KeyUsageDigitalSignature,
		BasicConstraintsValid: true,
		IsCA:                  true,
	}, nil)
	if err != nil {
		return fmt.Errorf("generate CA: %w", err)
	}

	if err := ca.write(dir, CACertFile, CAKeyFile); err != nil {
		return err
	}

	server := &x509.Certificate{
		Subject: pkix.Name{
			CommonName:   "hpcd",
			Organization: []string{organisation},
		},
		NotBefore:   notBefore,
		NotAfter:    notAfter,
		KeyUsage:    x509.KeyUsageDigitalSignature,
		ExtKeyUsage: []x509.ExtKeyUsage{x509.ExtKeyUsageServerAuth},
	}

	for _, h := range append([]string{"localhost", "127.0.0.1", "::1"}, opts.Hosts...) {
		if ip := net.ParseIP(h); ip != nil {
			server.IPAddresses = append(server.IPAddresses, ip)
		} else {
			server.DNSNames = append(server.DNSNames, h)
		}
	}

	serverPair, err := newKeyPair(server, ca)
	if err != nil {
		return fmt.Errorf("generate server certificate: %w", err)
	}

	if err := serverPair.write(dir, ServerCertFile, ServerKeyFile); err != nil {
		return err
	}

	for _, c := range opts.Clients {
		if c.Role == "" {
			return fmt.Errorf("client %q has no role", c.CommonName)
		}

		client, err := newKeyPair(&x509.Certificate{
			Subject: pkix.Name{
				CommonName:         c.CommonName,
				Organization:       []string{organisation},
				OrganizationalUnit: []string{c.Role},
			},
			NotBefore:   notBefore,
			NotAfter:    notAfter,
			KeyUsage:    x509.KeyUsageDigitalSignature,
			ExtKeyUsage: []x509.ExtKeyUsage{x509.ExtKeyUsageClientAuth},
		}, ca)
		if err != nil {
			return fmt.Errorf("generate client certificate %q: %w", c.CommonName, err)
		}

		if err := client.write(dir, ClientCertFile(c.Role), ClientKeyFile(c.Role)); err != nil {
			return err
		}
	}

	return nil
}

// newKeyPair creates a key and certificate from template, signed by parent or
// self-signed when parent is nil.
func newKeyPair(template *x509.Certificate, parent *keyPair) (*keyPair, error) {
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generate key: %w", err)
	}

	serial, err := rand.Int(rand.Reader, new(big.Int).Lsh(big.NewInt(1), 128))
	if err != nil {
		return nil, fmt.Errorf("generate serial: %w", err)
	}

	template.SerialNumber = serial

	signerCert, signerKey := template, key
	if parent != nil {
		signerCert, signerKey = parent.cert, parent.key
	}

	der, err := x509.CreateCertificate(rand.Reader, template, signerCert, &key.PublicKey, signerKey)
	if err != nil {
		return nil, fmt.Errorf("create certificate: %w", err)
	}

	cert, err := x509.ParseCertificate(der)
	if err != nil {
		return nil, fmt.Errorf("parse certificate: %w", err)
	}

	return &keyPair{cert: cert, der: der, key: key}, nil
}

func (p *keyPair) write(dir, certFile, keyFile string) error {
	keyDER, err := x509.MarshalECPrivateKey(p.key)
	if err != nil {
		return fmt.Errorf("marshal key: %w", err)
	}

	certPEM := pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: p.der})
	keyPEM := pem.EncodeToMemory(&pem.Block{Type: "EC PRIVATE KEY", Bytes: keyDER})

	if err := os.WriteFile(filepath.Join(dir, certFile), certPEM, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", certFile, err)
	}

	if err := os.WriteFile(filepath.Join(dir, keyFile), keyPEM, 0o600); err != nil {
		return fmt.Errorf("write %s: %w", keyFile, err)
	}

	return nil
}
