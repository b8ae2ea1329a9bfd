package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// Common API errors that can be checked with errors.Is.
var (
	// ErrUnauthorized indicates the API key is invalid or expired.
	ErrUnauthorized = errors.New("invalid or expired API key")
	// ErrRateLimited indicates the rate limit has been exceeded.
	ErrRateLimited = errors.New("rate limit exceeded")
	// ErrQuotaExceeded indicates the account usage quota is exhausted.
	ErrQuotaExceeded = errors.New("quota exceeded")
)

// missingStoreMessage is the server's wording when a query arrives with
// neither an explicit store nor an account-level default.
const missingStoreMessage = "No store_id provided and no default store configured"

// AuthenticationError indicates the API rejected the key (HTTP 401).
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

// RateLimitError indicates the request was rate limited (HTTP 429).
// RetryAfter carries the server's Retry-After hint in seconds, or 0 if
// the header was absent.
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

// QuotaExceededError indicates the account's usage quota is exhausted
// (HTTP 403 with a quota-related message).
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

// APIError represents any other non-success response from the Brainus
// API. StatusCode is 0 for the exhausted-retries wrap.
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

// NetworkError represents a transport-level failure.
type NetworkError struct {
	Err     error
	URL     string
	Attempt int
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// mapStatusError converts a non-2xx response into a typed error. It
// always returns a non-nil error.
func mapStatusError(resp *http.Response) error {
	message := extractMessage(resp)

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return &AuthenticationError{Message: message}
	case http.StatusTooManyRequests:
		retryAfter, _ := parseRetryAfter(resp, time.Now())
		return &RateLimitError{Message: message, RetryAfter: retryAfter}
	case http.StatusBadRequest:
		if strings.Contains(message, missingStoreMessage) {
			return &APIError{
				StatusCode: http.StatusBadRequest,
				Message:    "no store selected: pass StoreID in the query request or configure a default store for your account",
			}
		}
		return &APIError{StatusCode: http.StatusBadRequest, Message: message}
	case http.StatusForbidden:
		if strings.Contains(strings.ToLower(message), "quota") {
			return &QuotaExceededError{Message: message}
		}
		return &APIError{StatusCode: http.StatusForbidden, Message: message}
	default:
		return &APIError{StatusCode: resp.StatusCode, Message: message}
	}
}

// extractMessage pulls a human-readable message from an error response.
// Structured detail/message fields win; an absent or unparsable body
// falls back to the HTTP status text.
func extractMessage(resp *http.Response) string {
	body, _ := io.ReadAll(resp.Body)

	var errResp struct {
		Detail  string `json:"detail"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &errResp); err == nil {
		if errResp.Detail != "" {
			return errResp.Detail
		}
		if errResp.Message != "" {
			return errResp.Message
		}
	}

	return http.StatusText(resp.StatusCode)
}

// parseRetryAfter reads the Retry-After header as either delta-seconds
// or an HTTP-date, returning whole seconds until the retry is allowed.
func parseRetryAfter(resp *http.Response, now time.Time) (int, bool) {
	v := strings.TrimSpace(resp.Header.Get("Retry-After"))
	if v == "" {
		return 0, false
	}
	if secs, err := strconv.Atoi(v); err == nil && secs >= 0 {
		return secs, true
	}
	if t, err := http.ParseTime(v); err == nil {
		d := t.Sub(now)
		if d < 0 {
			d = 0
		}
		return int(d / time.Second), true
	}
	return 0, false
}
