// Package http constructs the HTTP clients shared by the control-plane
// client and the blob-transfer delegate.
package http

import (
	"crypto/tls"
	"net"
	nethttp "net/http"

	"golang.org/x/net/http2"

	"github.com/goironbox/ironboxdx-go/internal/config"
	"github.com/goironbox/ironboxdx-go/internal/constants"
)

// ConfigureHTTPClient builds the HTTP client used for every request the
// library issues. System proxy settings are honored via the standard
// environment variables (HTTP_PROXY, HTTPS_PROXY, NO_PROXY).
//
// Certificate verification is disabled only when cfg.SkipTLSVerify is set;
// that flag exists for dev environments with self-signed endpoints and
// applies uniformly to control-plane and storage traffic.
//
// The client carries no overall timeout: a blob transfer legitimately runs
// as long as the byte stream takes, and each control-plane call is bounded
// by the dial and TLS handshake timeouts below.
func ConfigureHTTPClient(cfg *config.Config) (*nethttp.Client, error) {
	transport := &nethttp.Transport{
		Proxy: nethttp.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   constants.HTTPDialTimeout,
			KeepAlive: constants.HTTPDialKeepAlive,
		}).DialContext,
		TLSClientConfig: &tls.Config{
			MinVersion:         tls.VersionTLS12,
			InsecureSkipVerify: cfg.SkipTLSVerify,
		},
		MaxIdleConns:          100,
		MaxIdleConnsPerHost:   100,
		IdleConnTimeout:       constants.HTTPIdleConnTimeout,
		TLSHandshakeTimeout:   constants.HTTPTLSHandshakeTimeout,
		ExpectContinueTimeout: constants.HTTPExpectContinueTimeout,
		ForceAttemptHTTP2:     true,
	}

	if err := http2.ConfigureTransport(transport); err != nil {
		return nil, err
	}

	return &nethttp.Client{
		Transport: transport,
	}, nil
}
