package yahoo

import (
	"net/http"
	"net/http/cookiejar"
	"time"
)

// baseTransportConfig returns the HTTP transport shared by Yahoo requests.
func baseTransportConfig() *http.Transport {
	return &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		ResponseHeaderTimeout: 30 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		MaxIdleConns:          4,
		MaxIdleConnsPerHost:   2,
		IdleConnTimeout:       30 * time.Second,
	}
}

// newHTTPClient creates an HTTP client with a cookie jar; the crumb handshake
// depends on the session cookie set by the cookie URL.
func newHTTPClient(timeout time.Duration) *http.Client {
	jar, _ := cookiejar.New(nil)
	return &http.Client{
		Transport: baseTransportConfig(),
		Timeout:   timeout,
		Jar:       jar,
	}
}
