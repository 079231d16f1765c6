// Package analytics implements the HTTP client for the Cynchrony
// analytics backend. Every failure is normalized: callers get a typed
// error plus an absent result, never a panic or a partial payload.
package analytics

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/tidwall/gjson"

	"github.com/hrushik98/cynchrony-analytics/internal/logger"
)

// Analytics endpoint names understood by the backend.
const (
	EndpointSummary   = "summary"
	EndpointEndpoints = "endpoints"
	EndpointHourly    = "hourly"
	EndpointDaily     = "daily"
	EndpointErrors    = "errors"
)

// StatusError reports a non-200 response from an analytics endpoint.
type StatusError struct {
	Endpoint   string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("error fetching %s: %d", e.Endpoint, e.StatusCode)
}

// ConnError reports a connection-level failure to reach the backend.
type ConnError struct {
	URL string
	Err error
}

func (e *ConnError) Error() string {
	return fmt.Sprintf("cannot connect to backend at %s; make sure the server is running", e.URL)
}

func (e *ConnError) Unwrap() error { return e.Err }

// Client issues bounded-timeout requests against the backend.
type Client struct {
	baseURL      string
	httpClient   *http.Client
	healthClient *http.Client
}

// NewClient creates a client for the given base URL. fetchTimeout bounds
// analytics requests, healthTimeout bounds the liveness probe.
func NewClient(baseURL string, fetchTimeout, healthTimeout time.Duration) *Client {
	return &Client{
		baseURL:      baseURL,
		httpClient:   &http.Client{Timeout: fetchTimeout},
		healthClient: &http.Client{Timeout: healthTimeout},
	}
}

// BaseURL returns the configured backend base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// FetchData performs GET {baseURL}/analytics/{endpoint} and returns the
// value under the response's top-level "data" key. On any failure the
// zero gjson.Result is returned together with a typed error; no failure
// propagates as a panic.
func (c *Client) FetchData(ctx context.Context, endpoint string) (gjson.Result, error) {
	url := fmt.Sprintf("%s/analytics/%s", c.baseURL, endpoint)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return gjson.Result{}, fmt.Errorf("error fetching %s: %w", endpoint, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if isConnectionError(err) {
			return gjson.Result{}, &ConnError{URL: c.baseURL, Err: err}
		}
		return gjson.Result{}, fmt.Errorf("error fetching %s: %w", endpoint, err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			logger.Warn("failed to close response body", "endpoint", endpoint, "error", cerr)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return gjson.Result{}, &StatusError{Endpoint: endpoint, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return gjson.Result{}, fmt.Errorf("error fetching %s: %w", endpoint, err)
	}

	if !gjson.ValidBytes(body) {
		return gjson.Result{}, fmt.Errorf("error fetching %s: malformed JSON response", endpoint)
	}

	return gjson.GetBytes(body, "data"), nil
}

// CheckHealth probes GET {baseURL}/health. Healthy means a 200 response.
func (c *Client) CheckHealth(ctx context.Context) error {
	url := c.baseURL + "/health"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("health check: %w", err)
	}

	resp, err := c.healthClient.Do(req)
	if err != nil {
		return &ConnError{URL: c.baseURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health check: backend returned %d", resp.StatusCode)
	}
	return nil
}

// isConnectionError distinguishes unreachable-backend failures from
// other transport errors so the UI can show the distinct message.
func isConnectionError(err error) bool {
	var netErr *net.OpError
	if errors.As(err, &netErr) {
		return true
	}
	var dnsErr *net.DNSError
	return errors.As(err, &dnsErr)
}
