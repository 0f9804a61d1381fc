package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/coursework-hub/instructor-dashboard/internal/course/endpoints"
	"github.com/coursework-hub/instructor-dashboard/internal/logging"
)

// Client handles communication with the remote course API
type Client struct {
	endpoints    endpoints.Endpoints
	httpClient   *http.Client
	uploadClient *http.Client // multipart uploads get a longer timeout
	limiter      *rate.Limiter
}

// Option customises a Client.
type Option func(*Client)

// WithTimeouts overrides the default and upload timeouts.
func WithTimeouts(timeout, uploadTimeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient = &http.Client{Timeout: timeout, Transport: c.httpClient.Transport}
		}
		if uploadTimeout > 0 {
			c.uploadClient = &http.Client{Timeout: uploadTimeout, Transport: c.uploadClient.Transport}
		}
	}
}

// WithRateLimit paces outbound calls to rps requests per second.
// A non-positive rps leaves calls unpaced.
func WithRateLimit(rps float64, burst int) Option {
	return func(c *Client) {
		if rps <= 0 {
			c.limiter = nil
			return
		}
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

// WithTransport routes every call through rt.
func WithTransport(rt http.RoundTripper) Option {
	return func(c *Client) {
		c.httpClient.Transport = rt
		c.uploadClient.Transport = rt
	}
}

// New creates a new course API client
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		endpoints: endpoints.New(baseURL),
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		uploadClient: &http.Client{
			Timeout: UploadTimeout,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Endpoints exposes the URL builder bound to this client's base URL.
func (c *Client) Endpoints() endpoints.Endpoints {
	return c.endpoints
}

// StatusError reports a course API response with a failure status.
type StatusError struct {
	Op         string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s: course API returned status %d", e.Op, e.StatusCode)
	}
	return fmt.Sprintf("%s: course API returned status %d: %s", e.Op, e.StatusCode, e.Body)
}

// send performs one request. On success the caller owns resp.Body; any
// status >= 400 is turned into a *StatusError and the body is closed.
func (c *Client) send(ctx context.Context, hc *http.Client, op, method, url string, body io.Reader, contentType string) (*http.Response, error) {
	logger := logging.NewLogger(ctx)

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			logger.LogError(op, err)
			return nil, fmt.Errorf("%s: rate limiter: %w", op, err)
		}
	}

	start := time.Now()
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		logger.LogError(op, err)
		recordCall(time.Since(start), err)
		return nil, fmt.Errorf("%s: create request: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if rid := logging.RequestID(ctx); rid != "" {
		req.Header.Set("X-Request-Id", rid)
	}

	resp, err := hc.Do(req)
	duration := time.Since(start)
	if err != nil {
		logger.LogError(op, err)
		recordCall(duration, err)
		return nil, fmt.Errorf("%s: course API request failed: %w", op, err)
	}

	if resp.StatusCode >= 400 {
		defer resp.Body.Close()
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		statusErr := &StatusError{Op: op, StatusCode: resp.StatusCode, Body: string(bytes.TrimSpace(raw))}
		logger.LogWarnf(op, "course API returned status %d", resp.StatusCode)
		recordCall(duration, statusErr)
		return nil, statusErr
	}

	recordCall(duration, nil)
	return resp, nil
}

// doJSON sends in (when non-nil) as a JSON body and decodes the response
// into out (when non-nil). An empty response body leaves out untouched.
func (c *Client) doJSON(ctx context.Context, op, method, url string, in, out any) error {
	var body io.Reader
	contentType := ""
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("%s: marshal request: %w", op, err)
		}
		body = bytes.NewReader(data)
		contentType = "application/json"
	}

	resp, err := c.send(ctx, c.httpClient, op, method, url, body, contentType)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return decodeBody(op, resp.Body, out)
}

func decodeBody(op string, r io.Reader, out any) error {
	raw, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("%s: read response: %w", op, err)
	}
	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%s: decode response: %w", op, err)
	}
	return nil
}
