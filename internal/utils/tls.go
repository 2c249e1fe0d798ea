package utils

import (
	"crypto/tls"
	"crypto/x509"
	"os"
)

// TLSConfig builds a tls.Config from the given CA / cert / key paths.
// Returns nil if no paths are given (ie. TLS is not in use).
func TLSConfig(cacert, cert, key string) (*tls.Config, error) {
	if cacert == "" && cert == "" && key == "" {
		return nil, nil
	}

	cfg := &tls.Config{MinVersion: tls.VersionTLS12}

	if cert != "" && key != "" {
		tlscert, err := tls.LoadX509KeyPair(cert, key)
		if err != nil {
			return nil, err
		}
		cfg.Certificates = []tls.Certificate{tlscert}
	}

	if cacert != "" {
		pem, err := os.ReadFile(cacert)
		if err != nil {
			return nil, err
		}
		pool := x509.NewCertPool()
		pool.AppendCertsFromPEM(pem)
		cfg.RootCAs = pool
	}

	return cfg, nil
}
