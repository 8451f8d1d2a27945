package httpclient

import (
	"crypto/tls"
	"net"
	"net/http"
	"time"
)

// New creates the client used to fetch documents from URLs. Bodies can be
// large, so only the header phase has its own deadline; timeout bounds the
// whole fetch.
func New(tlsConfig *tls.Config, timeout time.Duration) *http.Client {
	dialer := &net.Dialer{
		Timeout:   30 * time.Second,
		KeepAlive: 30 * time.Second,
	}

	transport := &http.Transport{
		Proxy:                  http.ProxyFromEnvironment,
		DialContext:            dialer.DialContext,
		TLSClientConfig:        tlsConfig,
		TLSHandshakeTimeout:    10 * time.Second,
		ResponseHeaderTimeout:  15 * time.Second,
		IdleConnTimeout:        60 * time.Second,
		MaxIdleConns:           16,
		MaxIdleConnsPerHost:    4,
		MaxResponseHeaderBytes: 1 << 20, // 1 MiB
	}

	return &http.Client{
		Timeout:   timeout,
		Transport: transport,
	}
}
