//go:build integration

package integration

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	brainus "github.com/brainus/client-go"
	"github.com/joho/godotenv"
)

var (
	apiKey  string
	baseURL string
)

func TestMain(m *testing.M) {
	// Load .env file if it exists (won't error if missing)
	if err := godotenv.Load("../.env"); err != nil {
		os.Stderr.WriteString("Note: .env file not found at project root\n")
	}

	apiKey = os.Getenv("BRAINUS_API_KEY")
	baseURL = os.Getenv("BRAINUS_URL")

	if apiKey == "" {
		os.Stderr.WriteString("Skipping integration tests: BRAINUS_API_KEY not set\n")
		os.Exit(0)
	}

	os.Exit(m.Run())
}

func newClient(t *testing.T) *brainus.Client {
	t.Helper()

	opts := []brainus.Option{brainus.WithTimeout(60 * time.Second)}
	if baseURL != "" {
		opts = append(opts, brainus.WithBaseURL(baseURL))
	}

	client, err := brainus.New(apiKey, opts...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return client
}

func TestQuery(t *testing.T) {
	client := newClient(t)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	resp, err := client.Query(ctx, &brainus.QueryRequest{
		Query: "What is photosynthesis?",
	})
	if err != nil {
		var apiErr *brainus.APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == 400 {
			t.Skipf("account has no default store: %v", err)
		}
		t.Fatalf("Query() error = %v", err)
	}

	if resp.Answer == "" {
		t.Error("Query() returned empty answer")
	}
	if resp.Citations == nil {
		t.Error("Query() returned nil citations")
	}
}

func TestGetUsage(t *testing.T) {
	client := newClient(t)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	usage, err := client.GetUsage(ctx)
	if err != nil {
		t.Fatalf("GetUsage() error = %v", err)
	}

	if usage.QueriesLimit > 0 && usage.QueriesUsed > usage.QueriesLimit {
		t.Errorf("QueriesUsed %d exceeds QueriesLimit %d", usage.QueriesUsed, usage.QueriesLimit)
	}
}

func TestGetPlans(t *testing.T) {
	client := newClient(t)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	plans, err := client.GetPlans(ctx)
	if err != nil {
		t.Fatalf("GetPlans() error = %v", err)
	}

	for _, p := range plans {
		if p.ID == "" {
			t.Error("plan with empty ID")
		}
		if p.AllowedModels == nil || p.Features == nil {
			t.Error("plan lists should default to empty, not nil")
		}
	}
}
