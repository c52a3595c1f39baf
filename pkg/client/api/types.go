package api

import "time"

// Common types

// APIError represents an error response from the Airweave API.
type APIError struct {
	Detail string `json:"detail"`
}

// Organization represents an organization the caller belongs to.
type Organization struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Role        string    `json:"role"`
	IsPrimary   bool      `json:"is_primary"`
	CreatedAt   time.Time `json:"created_at"`
	ModifiedAt  time.Time `json:"modified_at"`
}

// CreateOrganizationRequest represents a request to create an organization.
type CreateOrganizationRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// UpdateOrganizationRequest represents a request to update an organization.
type UpdateOrganizationRequest struct {
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
}

// Collection represents a searchable collection of synced data.
type Collection struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	ReadableID string    `json:"readable_id"`
	Status     string    `json:"status,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	ModifiedAt time.Time `json:"modified_at"`
}

// CreateCollectionRequest represents a request to create a collection.
type CreateCollectionRequest struct {
	Name       string `json:"name"`
	ReadableID string `json:"readable_id,omitempty"`
}

// Source describes an available source connector type (e.g. "notion", "slack").
type Source struct {
	Name        string   `json:"name"`
	ShortName   string   `json:"short_name"`
	Description string   `json:"description,omitempty"`
	AuthType    string   `json:"auth_type,omitempty"`
	Labels      []string `json:"labels,omitempty"`
}

// Destination describes an available destination connector type (e.g. a vector store).
type Destination struct {
	Name        string `json:"name"`
	ShortName   string `json:"short_name"`
	Description string `json:"description,omitempty"`
	AuthType    string `json:"auth_type,omitempty"`
}

// SourceConnection represents a configured credential binding to an external
// data system, owned and managed server-side.
type SourceConnection struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	ShortName    string    `json:"short_name"`
	CollectionID string    `json:"collection"`
	Status       string    `json:"status"`
	Schedule     string    `json:"cron_schedule,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	ModifiedAt   time.Time `json:"modified_at"`
}

// CreateSourceConnectionRequest represents a request to create a source connection.
type CreateSourceConnectionRequest struct {
	Name         string         `json:"name"`
	ShortName    string         `json:"short_name"`
	CollectionID string         `json:"collection"`
	AuthFields   map[string]any `json:"auth_fields,omitempty"`
	Schedule     string         `json:"cron_schedule,omitempty"`
}

// UpdateSourceConnectionRequest represents a request to update a source connection.
type UpdateSourceConnectionRequest struct {
	Name       string         `json:"name,omitempty"`
	AuthFields map[string]any `json:"auth_fields,omitempty"`
	Schedule   string         `json:"cron_schedule,omitempty"`
}

// SyncJob represents one run of a source connection sync.
type SyncJob struct {
	ID           string     `json:"id"`
	ConnectionID string     `json:"source_connection_id"`
	Status       string     `json:"status"`
	StartedAt    *time.Time `json:"started_at,omitempty"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
	Error        string     `json:"error,omitempty"`
}

// SyncProgressUpdate is a single message on the sync job progress stream.
type SyncProgressUpdate struct {
	Inserted   int  `json:"inserted"`
	Updated    int  `json:"updated"`
	Deleted    int  `json:"deleted"`
	Kept       int  `json:"kept"`
	Skipped    int  `json:"skipped"`
	IsComplete bool `json:"is_complete"`
	IsFailed   bool `json:"is_failed"`
}

// Chat represents a chat session.
type Chat struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	CollectionID string        `json:"collection,omitempty"`
	Messages     []ChatMessage `json:"messages,omitempty"`
	CreatedAt    time.Time     `json:"created_at"`
	ModifiedAt   time.Time     `json:"modified_at"`
}

// ChatMessage is a single message within a chat.
type ChatMessage struct {
	ID        string    `json:"id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateChatRequest represents a request to create a chat.
type CreateChatRequest struct {
	Name         string `json:"name"`
	CollectionID string `json:"collection,omitempty"`
}

// SendMessageRequest represents a request to append a message to a chat.
type SendMessageRequest struct {
	Content string `json:"content"`
}

// APIKey represents an API key. The full key is only present in the response
// to the create call; list responses carry the key prefix only.
type APIKey struct {
	ID             string     `json:"id"`
	DecryptedKey   string     `json:"decrypted_key,omitempty"`
	KeyPrefix      string     `json:"key_prefix"`
	ExpirationDate *time.Time `json:"expiration_date,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

// Usage represents billing/usage counters for the active organization.
type Usage struct {
	Entities          int64 `json:"entities"`
	Queries           int64 `json:"queries"`
	SourceConnections int64 `json:"source_connections"`
	MaxEntities       int64 `json:"max_entities,omitempty"`
	MaxQueries        int64 `json:"max_queries,omitempty"`
}

// Search types

// Response types accepted by the search endpoint.
const (
	ResponseTypeRaw        = "raw"
	ResponseTypeCompletion = "completion"
)

// Search methods accepted by the search endpoint.
const (
	SearchMethodHybrid  = "hybrid"
	SearchMethodNeural  = "neural"
	SearchMethodKeyword = "keyword"
)

// Query expansion strategies accepted by the search endpoint.
const (
	ExpansionAuto = "auto"
	ExpansionLLM  = "llm"
	ExpansionNone = "no_expansion"
)

// SearchRequest represents a collection search. Zero-valued optional fields
// are omitted on the wire so the backend applies its own defaults.
type SearchRequest struct {
	Query                     string   `json:"query"`
	ResponseType              string   `json:"response_type,omitempty"`
	Limit                     int      `json:"limit,omitempty"`
	Offset                    int      `json:"offset,omitempty"`
	RecencyBias               *float64 `json:"recency_bias,omitempty"`
	ScoreThreshold            *float64 `json:"score_threshold,omitempty"`
	SearchMethod              string   `json:"search_method,omitempty"`
	ExpansionStrategy         string   `json:"expansion_strategy,omitempty"`
	EnableReranking           *bool    `json:"enable_reranking,omitempty"`
	EnableQueryInterpretation *bool    `json:"enable_query_interpretation,omitempty"`
}

// Advanced reports whether the request sets any parameter beyond query,
// response type and paging. Those requests go over POST.
func (r *SearchRequest) Advanced() bool {
	return r.RecencyBias != nil ||
		r.ScoreThreshold != nil ||
		r.SearchMethod != "" ||
		r.ExpansionStrategy != "" ||
		r.EnableReranking != nil ||
		r.EnableQueryInterpretation != nil
}

// SearchResult is one ranked hit from a collection search.
type SearchResult struct {
	ID      string         `json:"id"`
	Score   float64        `json:"score"`
	Payload map[string]any `json:"payload"`
}

// SearchResponse represents the search endpoint's response.
type SearchResponse struct {
	Results      []SearchResult `json:"results"`
	ResponseType string         `json:"response_type"`
	Completion   string         `json:"completion,omitempty"`
	Status       string         `json:"status"`
}

// HealthResponse represents the health endpoint's response.
type HealthResponse struct {
	Status string `json:"status"`
}

// VersionResponse represents the version endpoint's response.
type VersionResponse struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit,omitempty"`
	BuildDate string `json:"build_date,omitempty"`
}
