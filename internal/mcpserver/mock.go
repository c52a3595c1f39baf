package mcpserver

import (
	"context"
	"fmt"

	"github.com/airweave-ai/airweave-go/pkg/client/api"
)

// MockSearcher returns deterministic canned results for local testing without
// an API key. It never touches the network.
type MockSearcher struct{}

// Search returns canned results labeled as mock output. Paging and the
// completion response type are honored so clients can exercise both paths.
func (MockSearcher) Search(ctx context.Context, readableID string, request *api.SearchRequest) (*api.SearchResponse, error) {
	const total = 3

	results := make([]api.SearchResult, 0, total)
	for i := request.Offset; i < total && len(results) < request.Limit; i++ {
		results = append(results, api.SearchResult{
			ID:    fmt.Sprintf("mock-%d", i+1),
			Score: 0.9 - 0.1*float64(i),
			Payload: map[string]any{
				"source_name": "mock",
				"title":       fmt.Sprintf("Mock result %d for %q", i+1, request.Query),
				"content":     "This is mock data returned because no API key is configured.",
			},
		})
	}

	response := &api.SearchResponse{
		Results:      results,
		ResponseType: request.ResponseType,
		Status:       "success",
	}
	if response.ResponseType == "" {
		response.ResponseType = api.ResponseTypeRaw
	}
	if response.ResponseType == api.ResponseTypeCompletion {
		response.Completion = fmt.Sprintf(
			"[mock] This is a canned answer for %q from collection %q. Configure AIRWEAVE_API_KEY for live results.",
			request.Query, readableID)
	}

	return response, nil
}
