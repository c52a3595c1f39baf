package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/airweave-ai/airweave-go/pkg/client/api"
)

// APIKeys defines the API key operations
type APIKeys interface {
	ListAPIKeys(ctx context.Context) ([]api.APIKey, error)
	CreateAPIKey(ctx context.Context) (*api.APIKey, error)
	DeleteAPIKey(ctx context.Context, keyID string) error
}

// apiKeysClient handles API key requests
type apiKeysClient struct {
	client *BaseClient
}

// NewAPIKeysClient creates a new API keys client
func NewAPIKeysClient(client *BaseClient) APIKeys {
	return &apiKeysClient{client: client}
}

// ListAPIKeys lists the caller's API keys (prefixes only)
func (c *apiKeysClient) ListAPIKeys(ctx context.Context) ([]api.APIKey, error) {
	resp, err := c.client.Get(ctx, "/api-keys")
	if err != nil {
		return nil, err
	}

	var keys []api.APIKey
	if err := DecodeResponse(resp, &keys); err != nil {
		return nil, err
	}

	return keys, nil
}

// CreateAPIKey creates a new API key. The response is the only place the full
// key is ever returned.
func (c *apiKeysClient) CreateAPIKey(ctx context.Context) (*api.APIKey, error) {
	resp, err := c.client.Post(ctx, "/api-keys", nil)
	if err != nil {
		return nil, err
	}

	var key api.APIKey
	if err := DecodeResponse(resp, &key); err != nil {
		return nil, err
	}

	return &key, nil
}

// DeleteAPIKey revokes an API key
func (c *apiKeysClient) DeleteAPIKey(ctx context.Context, keyID string) error {
	path := fmt.Sprintf("/api-keys/%s", url.PathEscape(keyID))
	resp, err := c.client.Delete(ctx, path)
	if err != nil {
		return err
	}

	CloseResponse(resp)
	return nil
}
