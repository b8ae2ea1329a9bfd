package brainus

import (
	"errors"
	"fmt"

	"github.com/brainus/client-go/internal/api"
)

// Sentinel errors for errors.Is() checks.
var (
	// ErrInvalidAPIKey is returned when the API key is missing or does
	// not start with the required "brainus_" prefix.
	ErrInvalidAPIKey = errors.New(`API key must start with "brainus_"`)

	// ErrUnauthorized is returned when the API key is invalid or expired.
	ErrUnauthorized = errors.New("invalid or expired API key")

	// ErrRateLimited is returned when the API rate limit is exceeded.
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrQuotaExceeded is returned when the account's usage quota is
	// exhausted.
	ErrQuotaExceeded = errors.New("quota exceeded")
)

// BrainusError is implemented by all SDK errors.
type BrainusError interface {
	error
	BrainusError() // marker method
}

// AuthenticationError indicates the API rejected the key (HTTP 401).
// It is never retried.
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("authentication failed: %s", e.Message)
	}
	return "authentication failed"
}

// Is implements errors.Is for sentinel error matching.
func (e *AuthenticationError) Is(target error) bool {
	return target == ErrUnauthorized
}

// BrainusError implements the BrainusError interface.
func (e *AuthenticationError) BrainusError() {}

// RateLimitError indicates the request was rate limited (HTTP 429).
// RetryAfter carries the server's Retry-After hint in seconds, or 0 if
// absent. The SDK does not retry rate-limited calls; honoring the hint
// is the caller's responsibility.
type RateLimitError struct {
	Message    string
	RetryAfter int
}

func (e *RateLimitError) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("rate limit exceeded: %s (retry after %ds)", e.Message, e.RetryAfter)
	}
	return fmt.Sprintf("rate limit exceeded: %s", e.Message)
}

// Is implements errors.Is for sentinel error matching.
func (e *RateLimitError) Is(target error) bool {
	return target == ErrRateLimited
}

// BrainusError implements the BrainusError interface.
func (e *RateLimitError) BrainusError() {}

// QuotaExceededError indicates the account's usage quota is exhausted
// (HTTP 403 with a quota-related message). It is never retried.
type QuotaExceededError struct {
	Message string
}

func (e *QuotaExceededError) Error() string {
	return fmt.Sprintf("quota exceeded: %s", e.Message)
}

// Is implements errors.Is for sentinel error matching.
func (e *QuotaExceededError) Is(target error) bool {
	return target == ErrQuotaExceeded
}

// BrainusError implements the BrainusError interface.
func (e *QuotaExceededError) BrainusError() {}

// APIError represents any other non-success response from the Brainus
// API, or the final error after all retries are exhausted (in which
// case StatusCode is 0 and the message references the attempt count).
// 4xx variants are not retried; 5xx variants are.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("API error %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("API error: %s", e.Message)
}

// BrainusError implements the BrainusError interface.
func (e *APIError) BrainusError() {}

// NetworkError represents a transport-level failure.
type NetworkError struct {
	Err     error
	URL     string
	Attempt int
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *NetworkError) Unwrap() error {
	return e.Err
}

// BrainusError implements the BrainusError interface.
func (e *NetworkError) BrainusError() {}

// wrapError converts internal API errors to public errors so that
// errors.Is() and errors.As() work against the SDK's types.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	var authErr *api.AuthenticationError
	if errors.As(err, &authErr) {
		return &AuthenticationError{Message: authErr.Message}
	}

	var rateErr *api.RateLimitError
	if errors.As(err, &rateErr) {
		return &RateLimitError{Message: rateErr.Message, RetryAfter: rateErr.RetryAfter}
	}

	var quotaErr *api.QuotaExceededError
	if errors.As(err, &quotaErr) {
		return &QuotaExceededError{Message: quotaErr.Message}
	}

	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		return &APIError{StatusCode: apiErr.StatusCode, Message: apiErr.Message}
	}

	var netErr *api.NetworkError
	if errors.As(err, &netErr) {
		return &NetworkError{Err: netErr.Err, URL: netErr.URL, Attempt: netErr.Attempt}
	}

	return err
}
