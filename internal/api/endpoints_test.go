package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuery_OmitsUnsetFields(t *testing.T) {
	var captured map[string]json.RawMessage
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/dev/query", r.URL.Path)

		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &captured))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(QueryResult{Answer: "ok"})
	}))
	defer server.Close()

	client, err := New("brainus_test", WithBaseURL(server.URL))
	require.NoError(t, err)

	_, err = client.Query(context.Background(), QueryParams{Query: "hello"})
	require.NoError(t, err)

	assert.Contains(t, captured, "query")
	assert.NotContains(t, captured, "store_id")
	assert.NotContains(t, captured, "filters")
	assert.NotContains(t, captured, "model")
}

func TestQuery_SendsProvidedFields(t *testing.T) {
	var captured map[string]json.RawMessage
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &captured))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(QueryResult{Answer: "ok"})
	}))
	defer server.Close()

	client, err := New("brainus_test", WithBaseURL(server.URL))
	require.NoError(t, err)

	_, err = client.Query(context.Background(), QueryParams{
		Query:   "hello",
		StoreID: "store-7",
		Model:   "brainus-lite",
		Filters: &FilterParams{Subject: "biology", Grade: "11"},
	})
	require.NoError(t, err)

	assert.JSONEq(t, `"store-7"`, string(captured["store_id"]))
	assert.JSONEq(t, `"brainus-lite"`, string(captured["model"]))

	var filters map[string]string
	require.NoError(t, json.Unmarshal(captured["filters"], &filters))
	assert.Equal(t, map[string]string{"subject": "biology", "grade": "11"}, filters)
}

func TestGetUsage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/v1/dev/usage", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{
			"queries_used": 120,
			"queries_limit": 500,
			"queries_remaining": 380,
			"plan": {"name": "starter", "queries_per_month": 500}
		}`)
	}))
	defer server.Close()

	client, err := New("brainus_test", WithBaseURL(server.URL))
	require.NoError(t, err)

	usage, err := client.GetUsage(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 120, usage.QueriesUsed)
	assert.Equal(t, 500, usage.QueriesLimit)
	require.NotNil(t, usage.Plan)
	assert.Equal(t, "starter", usage.Plan.Name)
}

func TestGetUsage_NoPlan(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"queries_used": 1}`)
	}))
	defer server.Close()

	client, err := New("brainus_test", WithBaseURL(server.URL))
	require.NoError(t, err)

	usage, err := client.GetUsage(context.Background())
	require.NoError(t, err)
	assert.Nil(t, usage.Plan)
}

func TestGetPlans(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/v1/dev/plans", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `[
			{"id": "free", "name": "Free", "queries_per_month": 50},
			{"id": "pro", "name": "Pro", "allowed_models": ["brainus-pro"], "features": ["priority"]}
		]`)
	}))
	defer server.Close()

	client, err := New("brainus_test", WithBaseURL(server.URL))
	require.NoError(t, err)

	plans, err := client.GetPlans(context.Background())
	require.NoError(t, err)
	require.Len(t, plans, 2)

	assert.Equal(t, "free", plans[0].ID)
	assert.Nil(t, plans[0].AllowedModels)
	assert.Equal(t, []string{"brainus-pro"}, plans[1].AllowedModels)
}
