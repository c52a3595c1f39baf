package mcpserver

import (
	"context"
	"errors"
	"testing"

	"github.com/go-logr/logr"
	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/airweave-ai/airweave-go/pkg/client/api"
)

// stubSearcher records the request it received and returns a fixed response.
type stubSearcher struct {
	gotCollection string
	gotRequest    *api.SearchRequest
	response      *api.SearchResponse
	err           error
}

func (s *stubSearcher) Search(ctx context.Context, readableID string, request *api.SearchRequest) (*api.SearchResponse, error) {
	s.gotCollection = readableID
	s.gotRequest = request
	if s.err != nil {
		return nil, s.err
	}
	return s.response, nil
}

func newTestServer(searcher Searcher) *Server {
	return New(Options{
		Collection: "docs",
		BaseURL:    "https://api.airweave.ai",
		APIKeySet:  true,
	}, searcher, logr.Discard())
}

func reqWith(args map[string]any) mcplib.CallToolRequest {
	var req mcplib.CallToolRequest
	req.Params.Arguments = args
	return req
}

// isErrorResult returns true when the result carries IsError=true.
func isErrorResult(r *mcplib.CallToolResult) bool {
	return r != nil && r.IsError
}

// firstText returns the text of the first TextContent in the result.
func firstText(t *testing.T, r *mcplib.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, r.Content, "result has no content")
	txt, ok := r.Content[0].(mcplib.TextContent)
	require.True(t, ok, "first content item is not TextContent")
	return txt.Text
}

// ─── parameter validation ─────────────────────────────────────────────────────

func TestHandleSearchValidation(t *testing.T) {
	tests := []struct {
		name     string
		args     map[string]any
		wantText string // substring of the error text
	}{
		{
			name:     "missing query",
			args:     map[string]any{},
			wantText: "query is required",
		},
		{
			name:     "empty query",
			args:     map[string]any{"query": ""},
			wantText: "query is required",
		},
		{
			name:     "query wrong type",
			args:     map[string]any{"query": 42.0},
			wantText: "query must be a string",
		},
		{
			name:     "limit too small",
			args:     map[string]any{"query": "q", "limit": 0.0},
			wantText: "limit must be between 1 and 1000",
		},
		{
			name:     "limit too large",
			args:     map[string]any{"query": "q", "limit": 1001.0},
			wantText: "limit must be between 1 and 1000",
		},
		{
			name:     "limit fractional",
			args:     map[string]any{"query": "q", "limit": 10.5},
			wantText: "limit must be an integer",
		},
		{
			name:     "offset negative",
			args:     map[string]any{"query": "q", "offset": -1.0},
			wantText: "offset must be between",
		},
		{
			name:     "recency bias above one",
			args:     map[string]any{"query": "q", "recency_bias": 1.5},
			wantText: "recency_bias must be between 0 and 1",
		},
		{
			name:     "score threshold below zero",
			args:     map[string]any{"query": "q", "score_threshold": -0.1},
			wantText: "score_threshold must be between 0 and 1",
		},
		{
			name:     "bad response type",
			args:     map[string]any{"query": "q", "response_type": "verbose"},
			wantText: "response_type must be one of",
		},
		{
			name:     "bad search method",
			args:     map[string]any{"query": "q", "search_method": "quantum"},
			wantText: "search_method must be one of",
		},
		{
			name:     "bad expansion strategy",
			args:     map[string]any{"query": "q", "expansion_strategy": "always"},
			wantText: "expansion_strategy must be one of",
		},
		{
			name:     "reranking wrong type",
			args:     map[string]any{"query": "q", "enable_reranking": "yes"},
			wantText: "enable_reranking must be a boolean",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			searcher := &stubSearcher{}
			srv := newTestServer(searcher)

			result, err := srv.handleSearch(t.Context(), reqWith(tt.args))
			require.NoError(t, err)
			assert.True(t, isErrorResult(result))
			assert.Contains(t, firstText(t, result), tt.wantText)
			// Validation failures never reach the searcher.
			assert.Nil(t, searcher.gotRequest)
		})
	}
}

func TestHandleSearchQueryTooLong(t *testing.T) {
	searcher := &stubSearcher{}
	srv := newTestServer(searcher)

	long := make([]byte, maxQueryLength+1)
	for i := range long {
		long[i] = 'a'
	}

	result, err := srv.handleSearch(t.Context(), reqWith(map[string]any{"query": string(long)}))
	require.NoError(t, err)
	assert.True(t, isErrorResult(result))
	assert.Contains(t, firstText(t, result), "query must be at most 4096 characters")
	assert.Nil(t, searcher.gotRequest)
}

// ─── forwarding ───────────────────────────────────────────────────────────────

func TestHandleSearchForwardsParameters(t *testing.T) {
	searcher := &stubSearcher{response: &api.SearchResponse{
		Results: []api.SearchResult{{ID: "r1", Score: 0.92}},
		Status:  "success",
	}}
	srv := newTestServer(searcher)

	result, err := srv.handleSearch(t.Context(), reqWith(map[string]any{
		"query":                       "quarterly revenue",
		"response_type":               "raw",
		"limit":                       25.0,
		"offset":                      50.0,
		"recency_bias":                0.3,
		"score_threshold":             0.7,
		"search_method":               "hybrid",
		"expansion_strategy":          "no_expansion",
		"enable_reranking":            true,
		"enable_query_interpretation": false,
		"unknown_extra":               "ignored",
	}))
	require.NoError(t, err)
	assert.False(t, isErrorResult(result))
	assert.Contains(t, firstText(t, result), "r1")

	require.NotNil(t, searcher.gotRequest)
	assert.Equal(t, "docs", searcher.gotCollection)
	assert.Equal(t, "quarterly revenue", searcher.gotRequest.Query)
	assert.Equal(t, "raw", searcher.gotRequest.ResponseType)
	assert.Equal(t, 25, searcher.gotRequest.Limit)
	assert.Equal(t, 50, searcher.gotRequest.Offset)
	require.NotNil(t, searcher.gotRequest.RecencyBias)
	assert.InDelta(t, 0.3, *searcher.gotRequest.RecencyBias, 1e-9)
	require.NotNil(t, searcher.gotRequest.ScoreThreshold)
	assert.InDelta(t, 0.7, *searcher.gotRequest.ScoreThreshold, 1e-9)
	assert.Equal(t, "hybrid", searcher.gotRequest.SearchMethod)
	assert.Equal(t, "no_expansion", searcher.gotRequest.ExpansionStrategy)
	require.NotNil(t, searcher.gotRequest.EnableReranking)
	assert.True(t, *searcher.gotRequest.EnableReranking)
	require.NotNil(t, searcher.gotRequest.EnableQueryInterpretation)
	assert.False(t, *searcher.gotRequest.EnableQueryInterpretation)
}

func TestHandleSearchDefaultLimit(t *testing.T) {
	searcher := &stubSearcher{response: &api.SearchResponse{Status: "success"}}
	srv := newTestServer(searcher)

	result, err := srv.handleSearch(t.Context(), reqWith(map[string]any{"query": "q"}))
	require.NoError(t, err)
	assert.False(t, isErrorResult(result))
	assert.Contains(t, firstText(t, result), "No results found")

	require.NotNil(t, searcher.gotRequest)
	assert.Equal(t, defaultLimit, searcher.gotRequest.Limit)
}

func TestHandleSearchAPIErrorVerbatim(t *testing.T) {
	searcher := &stubSearcher{err: errors.New("HTTP 402: usage limit exceeded")}
	srv := newTestServer(searcher)

	result, err := srv.handleSearch(t.Context(), reqWith(map[string]any{"query": "q"}))
	require.NoError(t, err)
	assert.True(t, isErrorResult(result))
	assert.Equal(t, "HTTP 402: usage limit exceeded", firstText(t, result))
}

func TestHandleSearchCompletionLeads(t *testing.T) {
	searcher := &stubSearcher{response: &api.SearchResponse{
		Results:      []api.SearchResult{{ID: "r1", Score: 0.8}},
		ResponseType: api.ResponseTypeCompletion,
		Completion:   "Revenue grew 12% quarter over quarter.",
		Status:       "success",
	}}
	srv := newTestServer(searcher)

	result, err := srv.handleSearch(t.Context(), reqWith(map[string]any{
		"query":         "revenue growth",
		"response_type": "completion",
	}))
	require.NoError(t, err)
	assert.False(t, isErrorResult(result))
	text := firstText(t, result)
	assert.Contains(t, text, "Revenue grew 12%")
	assert.Contains(t, text, "r1")
}

// ─── get-config ───────────────────────────────────────────────────────────────

func TestHandleGetConfig(t *testing.T) {
	srv := New(Options{
		Collection: "docs",
		BaseURL:    "https://api.airweave.ai",
		APIKeySet:  true,
	}, &stubSearcher{}, logr.Discard())

	result, err := srv.handleGetConfig(t.Context(), mcplib.CallToolRequest{})
	require.NoError(t, err)
	assert.False(t, isErrorResult(result))

	text := firstText(t, result)
	assert.Contains(t, text, `"collection": "docs"`)
	assert.Contains(t, text, `"api_key_set": true`)
	assert.Contains(t, text, "https://api.airweave.ai")
}

// ─── mock searcher ────────────────────────────────────────────────────────────

func TestMockSearcher(t *testing.T) {
	srv := New(Options{
		Collection: "docs",
		BaseURL:    "https://api.airweave.ai",
		Mock:       true,
	}, MockSearcher{}, logr.Discard())

	result, err := srv.handleSearch(t.Context(), reqWith(map[string]any{
		"query":         "anything",
		"response_type": "completion",
	}))
	require.NoError(t, err)
	assert.False(t, isErrorResult(result))
	text := firstText(t, result)
	assert.Contains(t, text, "[mock]")
	assert.Contains(t, text, "mock-1")
}

func TestMockSearcherPaging(t *testing.T) {
	var m MockSearcher

	resp, err := m.Search(t.Context(), "docs", &api.SearchRequest{Query: "q", Limit: 2, Offset: 1})
	require.NoError(t, err)
	require.Len(t, resp.Results, 2)
	assert.Equal(t, "mock-2", resp.Results[0].ID)
	assert.Equal(t, "mock-3", resp.Results[1].ID)

	resp, err = m.Search(t.Context(), "docs", &api.SearchRequest{Query: "q", Limit: 10, Offset: 5})
	require.NoError(t, err)
	assert.Empty(t, resp.Results)
}
