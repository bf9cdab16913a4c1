package yahoo

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	DefaultBaseURL   = "https://query1.finance.yahoo.com"
	DefaultCookieURL = "https://fc.yahoo.com"
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64)"
	DefaultTimeout   = 30 * time.Second

	// maxErrorBody caps how much of a non-JSON error body ends up in an error message.
	maxErrorBody = 256
)

// Request outcomes reported to ObserveFunc.
const (
	OutcomeOK       = "ok"
	OutcomeNotFound = "not_found"
	OutcomeError    = "error"
)

// ObserveFunc receives one call per finished request (endpoint, outcome, latency).
type ObserveFunc func(endpoint, outcome string, elapsed time.Duration)

// Options configures a Client. Zero values fall back to the defaults above,
// except CookieURL: empty disables the crumb handshake.
type Options struct {
	BaseURL   string
	CookieURL string
	UserAgent string
	Timeout   time.Duration
	Observe   ObserveFunc
}

// Client talks to the Yahoo Finance query API. It is not safe for concurrent
// use: the crumb is fetched lazily and cached without locking.
type Client struct {
	rc         *resty.Client
	cookieURL  string
	observe    ObserveFunc
	crumb      string
	crumbTried bool
}

// NewClient constructs a Client from opts.
func NewClient(opts Options) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.UserAgent == "" {
		opts.UserAgent = DefaultUserAgent
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	rc := resty.NewWithClient(newHTTPClient(opts.Timeout)).
		SetBaseURL(strings.TrimRight(opts.BaseURL, "/")).
		SetHeader("User-Agent", opts.UserAgent).
		SetHeader("Accept", "application/json")
	return &Client{
		rc:        rc,
		cookieURL: opts.CookieURL,
		observe:   opts.Observe,
	}
}

// Close releases idle connections.
func (c *Client) Close() error {
	c.rc.GetClient().CloseIdleConnections()
	return nil
}

func (c *Client) observeCall(endpoint, outcome string, start time.Time) {
	if c.observe != nil {
		c.observe(endpoint, outcome, time.Since(start))
	}
}

// get performs one GET and decodes the body into out. Error envelopes and
// non-2xx statuses come back as *APIError; transport failures are wrapped.
func (c *Client) get(ctx context.Context, endpoint, path string, params map[string]string, out envelope) error {
	start := time.Now()
	resp, err := c.rc.R().
		SetContext(ctx).
		SetQueryParams(params).
		Get(path)
	if err != nil {
		c.observeCall(endpoint, OutcomeError, start)
		return fmt.Errorf("yahoo %s: %w", endpoint, err)
	}

	body := resp.Body()
	decodeErr := json.Unmarshal(body, out)
	if decodeErr == nil {
		if e := out.apiError(); e != nil {
			apiErr := &APIError{
				Endpoint:    endpoint,
				StatusCode:  resp.StatusCode(),
				Code:        e.Code,
				Description: e.Description,
			}
			c.observeCall(endpoint, outcomeOf(apiErr), start)
			return apiErr
		}
	}
	if resp.IsError() {
		apiErr := &APIError{
			Endpoint:    endpoint,
			StatusCode:  resp.StatusCode(),
			Description: truncate(strings.TrimSpace(string(body)), maxErrorBody),
		}
		c.observeCall(endpoint, outcomeOf(apiErr), start)
		return apiErr
	}
	if decodeErr != nil {
		c.observeCall(endpoint, OutcomeError, start)
		return fmt.Errorf("yahoo %s decode: %w", endpoint, decodeErr)
	}
	c.observeCall(endpoint, OutcomeOK, start)
	return nil
}

// ensureCrumb runs the cookie + crumb handshake once and caches the result.
// An empty string means requests go out without a crumb.
func (c *Client) ensureCrumb(ctx context.Context) string {
	if c.cookieURL == "" || c.crumbTried {
		return c.crumb
	}
	c.crumbTried = true

	start := time.Now()
	// The cookie URL usually answers 404 but still sets the session cookie.
	if _, err := c.rc.R().SetContext(ctx).Get(c.cookieURL); err != nil {
		c.observeCall("crumb", OutcomeError, start)
		slog.Debug("yahoo cookie request failed, continuing without crumb", "error", err)
		return ""
	}
	resp, err := c.rc.R().SetContext(ctx).Get("/v1/test/getcrumb")
	if err != nil || resp.IsError() {
		c.observeCall("crumb", OutcomeError, start)
		slog.Debug("yahoo crumb request failed, continuing without crumb", "error", err, "status", statusOf(resp))
		return ""
	}
	c.crumb = strings.TrimSpace(resp.String())
	c.observeCall("crumb", OutcomeOK, start)
	slog.Debug("yahoo crumb acquired")
	return c.crumb
}

func outcomeOf(e *APIError) string {
	if e.NotFound() {
		return OutcomeNotFound
	}
	return OutcomeError
}

func statusOf(resp *resty.Response) int {
	if resp == nil {
		return 0
	}
	return resp.StatusCode()
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
