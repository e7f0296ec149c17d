package web

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/tls"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"fmt"
	"math/big"
	"net"
	"time"
)

// DefaultCertValidity is used when GenerateSelfSignedCert gets no validity.
const DefaultCertValidity = 365 * 24 * time.Hour

// SelfSignedCert is a generated server certificate with its PEM encoding.
type SelfSignedCert struct {
	TLS tls.Certificate
	PEM []byte
}

// CertPool returns a pool trusting only this certificate, for clients.
func (c *SelfSignedCert) CertPool() *x509.CertPool {
	pool := x509.NewCertPool()
	pool.AppendCertsFromPEM(c.PEM)
	return pool
}

// certificateHosts splits the host of a listen address into SAN entries.
// Wildcard and empty hosts are served on loopback, so they map to localhost
// and both loopback addresses.
func certificateHosts(address string) ([]string, []net.IP, error) {
	host, _, err := net.SplitHostPort(address)
	if err != nil {
		return nil, nil, fmt.Errorf("certificate host: %w", err)
	}
	ip := net.ParseIP(host)
	switch {
	case host == "" || (ip != nil && ip.IsUnspecified()):
		return []string{"localhost"}, []net.IP{net.IPv4(127, 0, 0, 1), net.IPv6loopback}, nil
	case ip != nil:
		return nil, []net.IP{ip}, nil
	default:
		return []string{host}, nil, nil
	}
}

// GenerateSelfSignedCert creates an ECDSA P-256 certificate for the host of
// address, valid for validFor from now.
func GenerateSelfSignedCert(address string, validFor time.Duration) (*SelfSignedCert, error) {
	if validFor <= 0 {
		validFor = DefaultCertValidity
	}
	dnsNames, ips, err := certificateHosts(address)
	if err != nil {
		return nil, err
	}
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generate key: %w", err)
	}
	serial, err := rand.Int(rand.Reader, new(big.Int).Lsh(big.NewInt(1), 128))
	if err != nil {
		return nil, fmt.Errorf("serial number: %w", err)
	}
	now := time.Now()
	template := &x509.Certificate{
		SerialNumber:          serial,
		Subject:               pkix.Name{Organization: []string{"Blackjack"}, CommonName: address},
		NotBefore:             now.Add(-time.Minute),
		NotAfter:              now.Add(validFor),
		KeyUsage:              x509.KeyUsageDigitalSignature,
		ExtKeyUsage:           []x509.ExtKeyUsage{x509.ExtKeyUsageServerAuth},
		BasicConstraintsValid: true,
		DNSNames:              dnsNames,
		IPAddresses:           ips,
	}
	der, err := x509.CreateCertificate(rand.Reader, template, template, &key.PublicKey, key)
	if err != nil {
		return nil, fmt.Errorf("create certificate: %w", err)
	}
	leaf, err := x509.ParseCertificate(der)
	if err != nil {
		return nil, fmt.Errorf("parse certificate: %w", err)
	}
	return &SelfSignedCert{
		TLS: tls.Certificate{
			Certificate: [][]byte{der},
			PrivateKey:  key,
			Leaf:        leaf,
		},
		PEM: pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der}),
	}, nil
}
