package client

import (
	"context"

	"github.com/airweave-ai/airweave-go/pkg/client/api"
)

// Usage defines the usage/billing operations
type Usage interface {
	GetUsage(ctx context.Context) (*api.Usage, error)
}

type usageClient struct {
	client *BaseClient
}

// NewUsageClient creates a new usage client
func NewUsageClient(client *BaseClient) Usage {
	return &usageClient{client: client}
}

// GetUsage retrieves usage counters for the active organization
func (c *usageClient) GetUsage(ctx context.Context) (*api.Usage, error) {
	resp, err := c.client.Get(ctx, "/usage")
	if err != nil {
		return nil, err
	}

	var usage api.Usage
	if err := DecodeResponse(resp, &usage); err != nil {
		return nil, err
	}

	return &usage, nil
}
