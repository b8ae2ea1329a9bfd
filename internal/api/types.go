package api

// Wire types for the Brainus API. Field names follow the server's
// snake_case JSON; the public package remaps them into its own shapes.

// QueryParams carries the caller-provided inputs for a query. Optional
// fields are omitted from the wire body entirely so server-side
// defaults stay in effect.
type QueryParams struct {
	Query   string
	StoreID string
	Filters *FilterParams
	Model   string
}

// FilterParams narrows a query to a document subset. All fields are
// optional.
type FilterParams struct {
	Subject  string
	Grade    string
	Year     string
	Category string
	Language string
}

type queryRequest struct {
	Query   string        `json:"query"`
	StoreID string        `json:"store_id,omitempty"`
	Filters *queryFilters `json:"filters,omitempty"`
	Model   string        `json:"model,omitempty"`
}

type queryFilters struct {
	Subject  string `json:"subject,omitempty"`
	Grade    string `json:"grade,omitempty"`
	Year     string `json:"year,omitempty"`
	Category string `json:"category,omitempty"`
	Language string `json:"language,omitempty"`
}

// QueryResult is the raw query response.
type QueryResult struct {
	Answer       string           `json:"answer"`
	Citations    []CitationResult `json:"citations"`
	HasCitations bool             `json:"has_citations"`
}

// CitationResult is a raw citation record.
type CitationResult struct {
	DocumentID   string                 `json:"document_id"`
	DocumentName string                 `json:"document_name"`
	Pages        []int                  `json:"pages"`
	Metadata     map[string]interface{} `json:"metadata"`
	ChunkText    string                 `json:"chunk_text"`
}

// UsageResult is the raw usage snapshot.
type UsageResult struct {
	QueriesUsed      int             `json:"queries_used"`
	QueriesLimit     int             `json:"queries_limit"`
	QueriesRemaining int             `json:"queries_remaining"`
	StorageUsedMB    float64         `json:"storage_used_mb"`
	StorageLimitMB   float64         `json:"storage_limit_mb"`
	PeriodStart      string          `json:"period_start"`
	PeriodEnd        string          `json:"period_end"`
	Plan             *PlanInfoResult `json:"plan"`
}

// PlanInfoResult is the plan sub-record nested in a usage snapshot.
type PlanInfoResult struct {
	Name            string  `json:"name"`
	QueriesPerMonth int     `json:"queries_per_month"`
	PriceMonthly    float64 `json:"price_monthly"`
}

// PlanResult is a raw subscription plan record.
type PlanResult struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	PriceMonthly    float64  `json:"price_monthly"`
	Currency        string   `json:"currency"`
	QueriesPerMonth int      `json:"queries_per_month"`
	AllowedModels   []string `json:"allowed_models"`
	Features        []string `json:"features"`
}
