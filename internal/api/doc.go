// Package api implements the low-level HTTP client for the Brainus API.
//
// It owns request execution (authentication headers, per-attempt
// timeouts, exponential-backoff retries), the mapping of non-2xx
// responses into typed errors, and the raw snake_case wire types. The
// public brainus package wraps this layer and remaps responses into
// its documented shapes.
package api
