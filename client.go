package brainus

import (
	"context"
	"fmt"
	"strings"

	"github.com/brainus/client-go/internal/api"
)

// APIKeyPrefix is the required prefix for Brainus API keys.
const APIKeyPrefix = "brainus_"

// Client is the Brainus API client. It holds only immutable
// configuration and is safe for concurrent use.
type Client struct {
	apiClient *api.Client
}

// New creates a new Brainus client with the given API key. The key
// format is validated here; no network activity occurs until the first
// operation.
func New(apiKey string, opts ...Option) (*Client, error) {
	if !strings.HasPrefix(apiKey, APIKeyPrefix) {
		return nil, fmt.Errorf("%w (got %q)", ErrInvalidAPIKey, redactKey(apiKey))
	}

	cfg := &clientConfig{
		baseURL:    DefaultBaseURL,
		timeout:    DefaultTimeout,
		maxRetries: DefaultMaxRetries,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	apiClient, err := api.New(apiKey,
		api.WithBaseURL(cfg.baseURL),
		api.WithTimeout(cfg.timeout),
		api.WithMaxRetries(cfg.maxRetries),
		api.WithUserAgent(userAgent),
	)
	if err != nil {
		return nil, err
	}

	if cfg.httpClient != nil {
		apiClient.SetHTTPClient(cfg.httpClient)
	}

	return &Client{apiClient: apiClient}, nil
}

// BaseURL returns the configured API base URL.
func (c *Client) BaseURL() string {
	return c.apiClient.BaseURL()
}

// Query submits a question and returns the answer with citations.
// Optional request fields (StoreID, Filters, Model) are sent only when
// set, so server-side defaults stay in effect.
func (c *Client) Query(ctx context.Context, req *QueryRequest) (*QueryResponse, error) {
	if req == nil || req.Query == "" {
		return nil, fmt.Errorf("query text is required")
	}

	params := api.QueryParams{
		Query:   req.Query,
		StoreID: req.StoreID,
		Model:   req.Model,
	}
	if req.Filters != nil {
		params.Filters = &api.FilterParams{
			Subject:  req.Filters.Subject,
			Grade:    req.Filters.Grade,
			Year:     req.Filters.Year,
			Category: req.Filters.Category,
			Language: req.Filters.Language,
		}
	}

	res, err := c.apiClient.Query(ctx, params)
	if err != nil {
		return nil, wrapError(err)
	}
	return queryResponseFromAPI(res), nil
}

// GetUsage retrieves the account's current usage snapshot.
func (c *Client) GetUsage(ctx context.Context) (*UsageStats, error) {
	res, err := c.apiClient.GetUsage(ctx)
	if err != nil {
		return nil, wrapError(err)
	}
	return usageStatsFromAPI(res), nil
}

// GetPlans lists the available subscription plans.
func (c *Client) GetPlans(ctx context.Context) ([]Plan, error) {
	res, err := c.apiClient.GetPlans(ctx)
	if err != nil {
		return nil, wrapError(err)
	}
	return plansFromAPI(res), nil
}

// redactKey trims a key for safe inclusion in error messages.
func redactKey(key string) string {
	if len(key) > 8 {
		return key[:8] + "..."
	}
	return key
}
