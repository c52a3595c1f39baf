package client

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/airweave-ai/airweave-go/internal/metrics"
)

func TestBaseClientHeaders(t *testing.T) {
	var gotAPIKey, gotOrgID, gotContentType, gotRequestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAPIKey = r.Header.Get("x-api-key")
		gotOrgID = r.Header.Get("X-Organization-ID")
		gotContentType = r.Header.Get("Content-Type")
		gotRequestID = r.Header.Get("X-Request-ID")
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	c := NewBaseClient(server.URL+"/", "aw-test-key", WithOrganizationID("org-1"))
	// Trailing slash on the base URL must not produce double slashes.
	assert.Equal(t, server.URL, c.BaseURL)

	resp, err := c.Post(t.Context(), "/collections", map[string]string{"name": "x"})
	require.NoError(t, err)
	CloseResponse(resp)

	assert.Equal(t, "aw-test-key", gotAPIKey)
	assert.Equal(t, "org-1", gotOrgID)
	assert.Equal(t, "application/json", gotContentType)
	assert.NotEmpty(t, gotRequestID)
}

func TestBaseClientErrorDecoding(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantMessage string
	}{
		{
			name:        "detail payload",
			status:      http.StatusNotFound,
			body:        `{"detail":"collection not found"}`,
			wantMessage: "collection not found",
		},
		{
			name:        "non-json body",
			status:      http.StatusBadGateway,
			body:        "upstream exploded",
			wantMessage: "Request failed",
		},
		{
			name:        "json without detail",
			status:      http.StatusForbidden,
			body:        `{"error":"nope"}`,
			wantMessage: "Request failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			c := NewBaseClient(server.URL, "key")
			_, err := c.Get(t.Context(), "/whatever")
			require.Error(t, err)

			var clientErr *ClientError
			require.ErrorAs(t, err, &clientErr)
			assert.Equal(t, tt.status, clientErr.StatusCode)
			assert.Equal(t, tt.wantMessage, clientErr.Message)
			assert.Equal(t, tt.body, clientErr.Body)
		})
	}
}

func TestBaseClientRequestMetrics(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing" {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"detail":"nope"}`))
			return
		}
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	c := NewBaseClient(server.URL, "key")

	okBefore := testutil.ToFloat64(metrics.APIRequests.WithLabelValues(http.MethodGet, "ok"))
	errBefore := testutil.ToFloat64(metrics.APIRequests.WithLabelValues(http.MethodGet, "error"))

	resp, err := c.Get(t.Context(), "/health")
	require.NoError(t, err)
	CloseResponse(resp)

	_, err = c.Get(t.Context(), "/missing")
	require.Error(t, err)

	assert.Equal(t, okBefore+1, testutil.ToFloat64(metrics.APIRequests.WithLabelValues(http.MethodGet, "ok")))
	assert.Equal(t, errBefore+1, testutil.ToFloat64(metrics.APIRequests.WithLabelValues(http.MethodGet, "error")))
}

func TestBaseClientRateLimit(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	// 50 rps with burst 1: the second and third request each wait ~20ms.
	c := NewBaseClient(server.URL, "key", WithRateLimit(50))

	start := time.Now()
	for i := 0; i < 3; i++ {
		resp, err := c.Get(t.Context(), "/health")
		require.NoError(t, err)
		CloseResponse(resp)
	}

	assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
}

func TestBaseClientNoAPIKeyHeader(t *testing.T) {
	var sawHeader bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, sawHeader = r.Header["X-Api-Key"]
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	c := NewBaseClient(server.URL, "")
	resp, err := c.Get(t.Context(), "/health")
	require.NoError(t, err)
	CloseResponse(resp)

	assert.False(t, sawHeader)
}
