package brainus

import (
	"net/http"
	"time"

	"github.com/brainus/client-go/internal/api"
)

// Default client configuration values.
const (
	DefaultBaseURL    = api.DefaultBaseURL
	DefaultTimeout    = api.DefaultTimeout
	DefaultMaxRetries = api.DefaultMaxRetries
)

// clientConfig holds configuration for the client.
type clientConfig struct {
	baseURL    string
	timeout    time.Duration
	maxRetries int
	httpClient *http.Client
}

// Option configures the client.
type Option func(*clientConfig)

// WithBaseURL sets the API base URL.
func WithBaseURL(url string) Option {
	return func(c *clientConfig) {
		c.baseURL = url
	}
}

// WithTimeout sets the per-attempt request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *clientConfig) {
		c.timeout = timeout
	}
}

// WithMaxRetries sets the maximum number of retry attempts after the
// initial request.
func WithMaxRetries(retries int) Option {
	return func(c *clientConfig) {
		c.maxRetries = retries
	}
}

// WithHTTPClient sets a custom HTTP client. Its Timeout field takes
// precedence over WithTimeout.
func WithHTTPClient(client *http.Client) Option {
	return func(c *clientConfig) {
		c.httpClient = client
	}
}
