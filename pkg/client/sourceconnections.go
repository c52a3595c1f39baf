package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/airweave-ai/airweave-go/pkg/client/api"
)

// SourceConnections defines the source connection operations
type SourceConnections interface {
	ListSourceConnections(ctx context.Context) ([]api.SourceConnection, error)
	GetSourceConnection(ctx context.Context, id string) (*api.SourceConnection, error)
	CreateSourceConnection(ctx context.Context, request *api.CreateSourceConnectionRequest) (*api.SourceConnection, error)
	UpdateSourceConnection(ctx context.Context, id string, request *api.UpdateSourceConnectionRequest) (*api.SourceConnection, error)
	DeleteSourceConnection(ctx context.Context, id string) error
	RunSync(ctx context.Context, id string) (*api.SyncJob, error)
}

// sourceConnectionsClient handles source connection requests
type sourceConnectionsClient struct {
	client *BaseClient
}

// NewSourceConnectionsClient creates a new source connections client
func NewSourceConnectionsClient(client *BaseClient) SourceConnections {
	return &sourceConnectionsClient{client: client}
}

// ListSourceConnections lists all source connections
func (c *sourceConnectionsClient) ListSourceConnections(ctx context.Context) ([]api.SourceConnection, error) {
	resp, err := c.client.Get(ctx, "/connections")
	if err != nil {
		return nil, err
	}

	var connections []api.SourceConnection
	if err := DecodeResponse(resp, &connections); err != nil {
		return nil, err
	}

	return connections, nil
}

// GetSourceConnection retrieves a specific source connection
func (c *sourceConnectionsClient) GetSourceConnection(ctx context.Context, id string) (*api.SourceConnection, error) {
	path := fmt.Sprintf("/connections/%s", url.PathEscape(id))
	resp, err := c.client.Get(ctx, path)
	if err != nil {
		return nil, err
	}

	var connection api.SourceConnection
	if err := DecodeResponse(resp, &connection); err != nil {
		return nil, err
	}

	return &connection, nil
}

// CreateSourceConnection creates a new source connection
func (c *sourceConnectionsClient) CreateSourceConnection(ctx context.Context, request *api.CreateSourceConnectionRequest) (*api.SourceConnection, error) {
	resp, err := c.client.Post(ctx, "/connections", request)
	if err != nil {
		return nil, err
	}

	var connection api.SourceConnection
	if err := DecodeResponse(resp, &connection); err != nil {
		return nil, err
	}

	return &connection, nil
}

// UpdateSourceConnection updates an existing source connection
func (c *sourceConnectionsClient) UpdateSourceConnection(ctx context.Context, id string, request *api.UpdateSourceConnectionRequest) (*api.SourceConnection, error) {
	path := fmt.Sprintf("/connections/%s", url.PathEscape(id))
	resp, err := c.client.Put(ctx, path, request)
	if err != nil {
		return nil, err
	}

	var connection api.SourceConnection
	if err := DecodeResponse(resp, &connection); err != nil {
		return nil, err
	}

	return &connection, nil
}

// DeleteSourceConnection deletes a source connection
func (c *sourceConnectionsClient) DeleteSourceConnection(ctx context.Context, id string) error {
	path := fmt.Sprintf("/connections/%s", url.PathEscape(id))
	resp, err := c.client.Delete(ctx, path)
	if err != nil {
		return err
	}

	CloseResponse(resp)
	return nil
}

// RunSync triggers a sync run for a source connection
func (c *sourceConnectionsClient) RunSync(ctx context.Context, id string) (*api.SyncJob, error) {
	path := fmt.Sprintf("/connections/%s/run", url.PathEscape(id))
	resp, err := c.client.Post(ctx, path, nil)
	if err != nil {
		return nil, err
	}

	var job api.SyncJob
	if err := DecodeResponse(resp, &job); err != nil {
		return nil, err
	}

	return &job, nil
}
