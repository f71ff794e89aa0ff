package config

import (
	"crypto/tls"
	"crypto/x509"
	"errors"
	"os"
)

// ClientTLS configures the scraper's outbound TLS.
type ClientTLS struct {
	// CAFiles are PEM bundles added to the system roots.
	CAFiles            SingleOrSlice[string] `json:"ca_files,omitempty"`
	InsecureSkipVerify bool                  `json:"insecure_skip_verify,omitempty"`
}

// Config builds the tls.Config for the http client.
func (t ClientTLS) Config() (*tls.Config, error) {
	cfg := &tls.Config{
		MinVersion:         tls.VersionTLS12,
		InsecureSkipVerify: t.InsecureSkipVerify,
	}
	if len(t.CAFiles) == 0 {
		return cfg, nil
	}
	pool, err := x509.SystemCertPool()
	if err != nil {
		pool = x509.NewCertPool()
	}
	for _, path := range t.CAFiles {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Join(errors.New("could not read ca file"), err)
		}
		if !pool.AppendCertsFromPEM(raw) {
			return nil, errors.New("no certificates found in " + path)
		}
	}
	cfg.RootCAs = pool
	return cfg, nil
}
