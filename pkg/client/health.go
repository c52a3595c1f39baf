package client

import (
	"context"

	"github.com/airweave-ai/airweave-go/pkg/client/api"
)

// Health defines the health check operations
type Health interface {
	GetHealth(ctx context.Context) (*api.HealthResponse, error)
}

type healthClient struct {
	client *BaseClient
}

// NewHealthClient creates a new health client
func NewHealthClient(client *BaseClient) Health {
	return &healthClient{client: client}
}

// GetHealth checks the API's health endpoint
func (c *healthClient) GetHealth(ctx context.Context) (*api.HealthResponse, error) {
	resp, err := c.client.Get(ctx, "/health")
	if err != nil {
		return nil, err
	}

	var health api.HealthResponse
	if err := DecodeResponse(resp, &health); err != nil {
		return nil, err
	}

	return &health, nil
}
