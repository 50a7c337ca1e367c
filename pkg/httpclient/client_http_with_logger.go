package httpclient

import (
	"net/http"
	"time"

	"github.com/IsaacDSC/cinecritique/pkg/ctxlogger"
)

// HTTPClientTransport logs every outbound request with the logger carried by the request context.
type HTTPClientTransport struct {
	Transport http.RoundTripper
}

func NewHTTPClientTransport(transport http.RoundTripper) *HTTPClientTransport {
	if transport == nil {
		transport = &http.Transport{
			Proxy:               http.ProxyFromEnvironment,
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 16,
			IdleConnTimeout:     90 * time.Second,
		}
	}
	return &HTTPClientTransport{Transport: transport}
}

func (t *HTTPClientTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	logger := ctxlogger.GetLogger(req.Context())

	logger.Debug("HTTP client request started",
		"method", req.Method,
		"url", req.URL.String(),
		"authorized", req.Header.Get("Authorization") != "",
	)

	resp, err := t.Transport.RoundTrip(req)
	elapsed := time.Since(start)

	if err != nil {
		logger.Error("HTTP client request failed",
			"method", req.Method,
			"url", req.URL.String(),
			"error", err.Error(),
			"elapsed_time", elapsed,
		)
		return nil, err
	}

	logger.Info("HTTP client request completed",
		"method", req.Method,
		"url", req.URL.String(),
		"status_code", resp.StatusCode,
		"content_length", resp.ContentLength,
		"elapsed_time", elapsed,
	)

	return resp, nil
}

// NewHTTPClientWithLogging builds a client meant to be created once and shared.
func NewHTTPClientWithLogging(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &http.Client{
		Transport: NewHTTPClientTransport(nil),
		Timeout:   timeout,
	}
}
