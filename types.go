package brainus

import (
	"github.com/brainus/client-go/internal/api"
)

// QueryRequest describes a question to submit. Query is required; all
// other fields are optional and omitted from the request when unset so
// server-side defaults apply.
type QueryRequest struct {
	// Query is the question text.
	Query string
	// StoreID selects a specific document store. When empty, the
	// account's default store is used.
	StoreID string
	// Filters narrows the search to matching documents.
	Filters *QueryFilters
	// Model selects a specific answering model.
	Model string
}

// QueryFilters narrows a query to a document subset. All fields are
// optional.
type QueryFilters struct {
	Subject  string
	Grade    string
	Year     string
	Category string
	Language string
}

// Citation references a source document and page numbers supporting
// part of an answer.
type Citation struct {
	DocumentID   string                 `json:"documentId"`
	DocumentName string                 `json:"documentName"`
	Pages        []int                  `json:"pages"`
	Metadata     map[string]interface{} `json:"metadata,omitempty"`
	ChunkText    string                 `json:"chunkText,omitempty"`
}

// QueryResponse is the answer to a query.
type QueryResponse struct {
	Answer       string     `json:"answer"`
	Citations    []Citation `json:"citations"`
	HasCitations bool       `json:"hasCitations"`
}

// UsageStats is a read-only snapshot of the account's usage.
type UsageStats struct {
	QueriesUsed      int       `json:"queriesUsed"`
	QueriesLimit     int       `json:"queriesLimit"`
	QueriesRemaining int       `json:"queriesRemaining"`
	StorageUsedMB    float64   `json:"storageUsedMb"`
	StorageLimitMB   float64   `json:"storageLimitMb"`
	PeriodStart      string    `json:"periodStart,omitempty"`
	PeriodEnd        string    `json:"periodEnd,omitempty"`
	Plan             *PlanInfo `json:"plan,omitempty"`
}

// PlanInfo is the plan sub-record nested in a usage snapshot.
type PlanInfo struct {
	Name            string  `json:"name"`
	QueriesPerMonth int     `json:"queriesPerMonth"`
	PriceMonthly    float64 `json:"priceMonthly"`
}

// Plan describes an available subscription plan.
type Plan struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Description     string   `json:"description,omitempty"`
	PriceMonthly    float64  `json:"priceMonthly"`
	Currency        string   `json:"currency,omitempty"`
	QueriesPerMonth int      `json:"queriesPerMonth"`
	AllowedModels   []string `json:"allowedModels"`
	Features        []string `json:"features"`
}

// queryResponseFromAPI remaps a raw query result into the public shape.
// The citations slice is always non-nil, as is each citation's pages.
func queryResponseFromAPI(res *api.QueryResult) *QueryResponse {
	citations := make([]Citation, 0, len(res.Citations))
	for _, c := range res.Citations {
		pages := c.Pages
		if pages == nil {
			pages = []int{}
		}
		citations = append(citations, Citation{
			DocumentID:   c.DocumentID,
			DocumentName: c.DocumentName,
			Pages:        pages,
			Metadata:     c.Metadata,
			ChunkText:    c.ChunkText,
		})
	}

	return &QueryResponse{
		Answer:       res.Answer,
		Citations:    citations,
		HasCitations: res.HasCitations,
	}
}

// usageStatsFromAPI remaps a raw usage snapshot. The plan sub-record is
// included only when the response carried one.
func usageStatsFromAPI(res *api.UsageResult) *UsageStats {
	stats := &UsageStats{
		QueriesUsed:      res.QueriesUsed,
		QueriesLimit:     res.QueriesLimit,
		QueriesRemaining: res.QueriesRemaining,
		StorageUsedMB:    res.StorageUsedMB,
		StorageLimitMB:   res.StorageLimitMB,
		PeriodStart:      res.PeriodStart,
		PeriodEnd:        res.PeriodEnd,
	}
	if res.Plan != nil {
		stats.Plan = &PlanInfo{
			Name:            res.Plan.Name,
			QueriesPerMonth: res.Plan.QueriesPerMonth,
			PriceMonthly:    res.Plan.PriceMonthly,
		}
	}
	return stats
}

// plansFromAPI remaps raw plan records, defaulting absent model and
// feature lists to empty slices.
func plansFromAPI(res []api.PlanResult) []Plan {
	plans := make([]Plan, 0, len(res))
	for _, p := range res {
		models := p.AllowedModels
		if models == nil {
			models = []string{}
		}
		features := p.Features
		if features == nil {
			features = []string{}
		}
		plans = append(plans, Plan{
			ID:              p.ID,
			Name:            p.Name,
			Description:     p.Description,
			PriceMonthly:    p.PriceMonthly,
			Currency:        p.Currency,
			QueriesPerMonth: p.QueriesPerMonth,
			AllowedModels:   models,
			Features:        features,
		})
	}
	return plans
}
