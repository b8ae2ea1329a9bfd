package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Default client configuration values.
const (
	DefaultBaseURL    = "https://api.brainus.lk"
	DefaultTimeout    = 30 * time.Second
	DefaultMaxRetries = 3
)

// Client is the HTTP API client.
type Client struct {
	baseURL    string
	apiKey     string
	userAgent  string
	httpClient *http.Client
	retry      *RetryConfig
}

// Option configures the API client.
type Option func(*Client)

// WithBaseURL sets the base URL.
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithTimeout sets the per-attempt request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithMaxRetries sets the maximum number of retry attempts after the
// initial request.
func WithMaxRetries(retries int) Option {
	return func(c *Client) {
		c.retry.MaxRetries = retries
	}
}

// WithRetryConfig replaces the retry configuration entirely.
func WithRetryConfig(cfg *RetryConfig) Option {
	return func(c *Client) {
		c.retry = cfg
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// New creates a new API client.
func New(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	c := &Client{
		baseURL:   DefaultBaseURL,
		apiKey:    apiKey,
		userAgent: "brainus-go",
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		retry: DefaultRetryConfig(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// BaseURL returns the configured base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Timeout returns the per-attempt request timeout.
func (c *Client) Timeout() time.Duration {
	return c.httpClient.Timeout
}

// MaxRetries returns the configured maximum retry count.
func (c *Client) MaxRetries() int {
	return c.retry.MaxRetries
}

// HTTPClient returns the underlying HTTP client.
func (c *Client) HTTPClient() *http.Client {
	return c.httpClient
}

// SetHTTPClient sets a custom HTTP client. The client's Timeout field
// becomes the per-attempt timeout.
func (c *Client) SetHTTPClient(client *http.Client) {
	c.httpClient = client
}

// Do executes one logical API operation with retries. The request is
// attempted up to MaxRetries+1 times; authentication, quota, rate-limit
// and other 4xx errors terminate the loop immediately, while network
// failures and 5xx responses back off exponentially between attempts.
// On a 2xx response the JSON body is decoded into result (if non-nil).
func (c *Client) Do(ctx context.Context, method, path string, body, result interface{}) error {
	var payload []byte
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		payload = data
	}

	var lastErr error
	for attempt := 0; attempt <= c.retry.MaxRetries; attempt++ {
		err := c.attempt(ctx, method, path, payload, result, attempt)
		if err == nil {
			return nil
		}
		lastErr = err

		if !isRetryable(err) {
			return err
		}
		if attempt < c.retry.MaxRetries {
			if werr := c.retry.Wait(ctx, attempt); werr != nil {
				return werr
			}
		}
	}

	return &APIError{
		Message: fmt.Sprintf("request failed after %d attempts: %v", c.retry.MaxRetries+1, lastErr),
	}
}

// attempt issues a single HTTP request. Non-2xx responses are mapped to
// typed errors and never returned as values.
func (c *Client) attempt(ctx context.Context, method, path string, payload []byte, result interface{}, attempt int) error {
	var bodyReader io.Reader
	if payload != nil {
		bodyReader = bytes.NewReader(payload)
	}

	url := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("X-API-Key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &NetworkError{Err: err, URL: url, Attempt: attempt}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return mapStatusError(resp)
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}

	return nil
}

// isRetryable reports whether an error qualifies for another attempt.
// Client-side errors will not be fixed by retrying; network failures,
// 5xx responses and anything unrecognized are worth another try.
func isRetryable(err error) bool {
	switch e := err.(type) {
	case *AuthenticationError, *QuotaExceededError, *RateLimitError:
		return false
	case *APIError:
		return e.StatusCode == 0 || e.StatusCode >= 500
	default:
		return true
	}
}
