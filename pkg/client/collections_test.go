package client

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/airweave-ai/airweave-go/pkg/client/api"
)

func TestSearchSimpleUsesGet(t *testing.T) {
	var gotMethod, gotPath string
	var gotQuery map[string][]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.EscapedPath()
		gotQuery = r.URL.Query()
		json.NewEncoder(w).Encode(api.SearchResponse{
			Results: []api.SearchResult{{ID: "hit-1", Score: 0.9}},
			Status:  "success",
		})
	}))
	defer server.Close()

	c := New(server.URL, "key")
	resp, err := c.Collections.Search(t.Context(), "my docs", &api.SearchRequest{
		Query:        "find things",
		ResponseType: api.ResponseTypeRaw,
		Limit:        50,
		Offset:       10,
	})
	require.NoError(t, err)

	assert.Equal(t, http.MethodGet, gotMethod)
	assert.Equal(t, "/collections/my%20docs/search", gotPath)
	assert.Equal(t, []string{"find things"}, gotQuery["query"])
	assert.Equal(t, []string{"raw"}, gotQuery["response_type"])
	assert.Equal(t, []string{"50"}, gotQuery["limit"])
	assert.Equal(t, []string{"10"}, gotQuery["offset"])

	require.Len(t, resp.Results, 1)
	assert.Equal(t, "hit-1", resp.Results[0].ID)
}

func TestSearchAdvancedUsesPost(t *testing.T) {
	var gotMethod string
	var gotBody api.SearchRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		json.NewEncoder(w).Encode(api.SearchResponse{Status: "success"})
	}))
	defer server.Close()

	bias := 0.25
	rerank := true
	c := New(server.URL, "key")
	_, err := c.Collections.Search(t.Context(), "docs", &api.SearchRequest{
		Query:           "find things",
		RecencyBias:     &bias,
		SearchMethod:    api.SearchMethodNeural,
		EnableReranking: &rerank,
	})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "find things", gotBody.Query)
	require.NotNil(t, gotBody.RecencyBias)
	assert.InDelta(t, 0.25, *gotBody.RecencyBias, 1e-9)
	assert.Equal(t, api.SearchMethodNeural, gotBody.SearchMethod)
	require.NotNil(t, gotBody.EnableReranking)
	assert.True(t, *gotBody.EnableReranking)
}

func TestSearchRequiresQuery(t *testing.T) {
	c := New("http://localhost:0", "key")

	_, err := c.Collections.Search(t.Context(), "docs", &api.SearchRequest{})
	assert.Error(t, err)

	_, err = c.Collections.Search(t.Context(), "docs", nil)
	assert.Error(t, err)
}

func TestSearchAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"detail":"invalid API key"}`))
	}))
	defer server.Close()

	c := New(server.URL, "bad-key")
	_, err := c.Collections.Search(t.Context(), "docs", &api.SearchRequest{Query: "q"})
	require.Error(t, err)

	var clientErr *ClientError
	require.ErrorAs(t, err, &clientErr)
	assert.Equal(t, http.StatusUnauthorized, clientErr.StatusCode)
	assert.Equal(t, "invalid API key", clientErr.Message)
}

func TestListCollections(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/collections", r.URL.Path)
		json.NewEncoder(w).Encode([]api.Collection{
			{ID: "c1", Name: "Docs", ReadableID: "docs"},
			{ID: "c2", Name: "Tickets", ReadableID: "tickets"},
		})
	}))
	defer server.Close()

	c := New(server.URL, "key")
	collections, err := c.Collections.ListCollections(t.Context())
	require.NoError(t, err)
	require.Len(t, collections, 2)
	assert.Equal(t, "docs", collections[0].ReadableID)
}
