package api

import (
	"context"
	"net/http"
)

// API paths.
const (
	queryPath = "/api/v1/dev/query"
	usagePath = "/api/v1/dev/usage"
	plansPath = "/api/v1/dev/plans"
)

// Query submits a question and returns the raw answer with citations.
func (c *Client) Query(ctx context.Context, params QueryParams) (*QueryResult, error) {
	req := queryRequest{
		Query:   params.Query,
		StoreID: params.StoreID,
		Model:   params.Model,
	}
	if params.Filters != nil {
		req.Filters = &queryFilters{
			Subject:  params.Filters.Subject,
			Grade:    params.Filters.Grade,
			Year:     params.Filters.Year,
			Category: params.Filters.Category,
			Language: params.Filters.Language,
		}
	}

	var result QueryResult
	if err := c.Do(ctx, http.MethodPost, queryPath, req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetUsage retrieves the account's current usage snapshot.
func (c *Client) GetUsage(ctx context.Context) (*UsageResult, error) {
	var result UsageResult
	if err := c.Do(ctx, http.MethodGet, usagePath, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetPlans lists the available subscription plans.
func (c *Client) GetPlans(ctx context.Context) ([]PlanResult, error) {
	var result []PlanResult
	if err := c.Do(ctx, http.MethodGet, plansPath, nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}
