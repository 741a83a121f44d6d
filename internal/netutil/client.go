package netutil

import (
	"context"
	"crypto/tls"
	"net/http"
	"time"
)

// shared client (keep-alive, TLS session reuse). Vocabulary lists can run to
// a few megabytes, hence the generous timeout.
var client = &http.Client{
	Timeout: 60 * time.Second,
	Transport: &http.Transport{
		MaxIdleConns:        8,
		MaxIdleConnsPerHost: 4,
		TLSClientConfig:     &tls.Config{MinVersion: tls.VersionTLS12},
	},
}

// Get issues a GET through the shared client.
func Get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	return client.Do(req)
}
