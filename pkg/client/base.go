package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/airweave-ai/airweave-go/internal/metrics"
	"github.com/airweave-ai/airweave-go/pkg/client/api"
)

// ClientError represents a client-side error
type ClientError struct {
	StatusCode int
	Message    string
	Body       string
}

func (e *ClientError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Message)
}

// ClientOption represents a configuration option for the client
type ClientOption func(*BaseClient)

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *BaseClient) {
		c.HTTPClient = httpClient
	}
}

// WithOrganizationID sets the organization all requests act on
func WithOrganizationID(orgID string) ClientOption {
	return func(c *BaseClient) {
		c.OrganizationID = orgID
	}
}

// WithRateLimit caps outgoing requests at rps requests per second
func WithRateLimit(rps float64) ClientOption {
	return func(c *BaseClient) {
		c.limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}
}

// BaseClient contains the shared HTTP functionality used by all sub-clients
type BaseClient struct {
	BaseURL        string
	APIKey         string
	OrganizationID string
	HTTPClient     *http.Client

	limiter *rate.Limiter
}

// NewBaseClient creates a new base client with the given configuration
func NewBaseClient(baseURL, apiKey string, options ...ClientOption) *BaseClient {
	client := &BaseClient{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		APIKey:  apiKey,
	}

	for _, option := range options {
		option(client)
	}

	if client.HTTPClient == nil {
		client.HTTPClient = &http.Client{Timeout: 30 * time.Second}
	}

	return client
}

// HTTP helper methods

func (c *BaseClient) buildURL(path string) string {
	return c.BaseURL + path
}

func (c *BaseClient) doRequest(ctx context.Context, method, path string, body interface{}) (*http.Response, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	urlStr := c.buildURL(path)
	req, err := http.NewRequestWithContext(ctx, method, urlStr, reqBody)
	if err != nil {
		return nil, err
	}

	req.Header.Set("X-Request-ID", uuid.NewString())
	if c.APIKey != "" {
		req.Header.Set("x-api-key", c.APIKey)
	}
	if c.OrganizationID != "" {
		req.Header.Set("X-Organization-ID", c.OrganizationID)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		metrics.APIRequests.WithLabelValues(method, "error").Inc()
		return nil, err
	}

	if resp.StatusCode >= 400 {
		metrics.APIRequests.WithLabelValues(method, "error").Inc()
		bodyBytes, _ := io.ReadAll(resp.Body)
		resp.Body.Close()

		var apiErr api.APIError
		if json.Unmarshal(bodyBytes, &apiErr) == nil && apiErr.Detail != "" {
			return nil, &ClientError{
				StatusCode: resp.StatusCode,
				Message:    apiErr.Detail,
				Body:       string(bodyBytes),
			}
		}

		return nil, &ClientError{
			StatusCode: resp.StatusCode,
			Message:    "Request failed",
			Body:       string(bodyBytes),
		}
	}

	metrics.APIRequests.WithLabelValues(method, "ok").Inc()
	return resp, nil
}

func (c *BaseClient) Get(ctx context.Context, path string) (*http.Response, error) {
	return c.doRequest(ctx, http.MethodGet, path, nil)
}

func (c *BaseClient) Post(ctx context.Context, path string, body interface{}) (*http.Response, error) {
	return c.doRequest(ctx, http.MethodPost, path, body)
}

func (c *BaseClient) Put(ctx context.Context, path string, body interface{}) (*http.Response, error) {
	return c.doRequest(ctx, http.MethodPut, path, body)
}

func (c *BaseClient) Delete(ctx context.Context, path string) (*http.Response, error) {
	return c.doRequest(ctx, http.MethodDelete, path, nil)
}

func DecodeResponse(resp *http.Response, target interface{}) error {
	defer resp.Body.Close()
	return json.NewDecoder(resp.Body).Decode(target)
}

// CloseResponse drains and closes a response body whose content is not needed.
func CloseResponse(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
}
