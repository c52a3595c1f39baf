package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/airweave-ai/airweave-go/pkg/client/api"
)

// Sources defines the source connector catalog operations
type Sources interface {
	ListSources(ctx context.Context) ([]api.Source, error)
	GetSource(ctx context.Context, shortName string) (*api.Source, error)
}

// Destinations defines the destination connector catalog operations
type Destinations interface {
	ListDestinations(ctx context.Context) ([]api.Destination, error)
	GetDestination(ctx context.Context, shortName string) (*api.Destination, error)
}

type sourcesClient struct {
	client *BaseClient
}

// NewSourcesClient creates a new sources catalog client
func NewSourcesClient(client *BaseClient) Sources {
	return &sourcesClient{client: client}
}

func (c *sourcesClient) ListSources(ctx context.Context) ([]api.Source, error) {
	resp, err := c.client.Get(ctx, "/sources")
	if err != nil {
		return nil, err
	}

	var sources []api.Source
	if err := DecodeResponse(resp, &sources); err != nil {
		return nil, err
	}

	return sources, nil
}

func (c *sourcesClient) GetSource(ctx context.Context, shortName string) (*api.Source, error) {
	path := fmt.Sprintf("/sources/%s", url.PathEscape(shortName))
	resp, err := c.client.Get(ctx, path)
	if err != nil {
		return nil, err
	}

	var source api.Source
	if err := DecodeResponse(resp, &source); err != nil {
		return nil, err
	}

	return &source, nil
}

type destinationsClient struct {
	client *BaseClient
}

// NewDestinationsClient creates a new destinations catalog client
func NewDestinationsClient(client *BaseClient) Destinations {
	return &destinationsClient{client: client}
}

func (c *destinationsClient) ListDestinations(ctx context.Context) ([]api.Destination, error) {
	resp, err := c.client.Get(ctx, "/destinations")
	if err != nil {
		return nil, err
	}

	var destinations []api.Destination
	if err := DecodeResponse(resp, &destinations); err != nil {
		return nil, err
	}

	return destinations, nil
}

func (c *destinationsClient) GetDestination(ctx context.Context, shortName string) (*api.Destination, error) {
	path := fmt.Sprintf("/destinations/%s", url.PathEscape(shortName))
	resp, err := c.client.Get(ctx, path)
	if err != nil {
		return nil, err
	}

	var destination api.Destination
	if err := DecodeResponse(resp, &destination); err != nil {
		return nil, err
	}

	return &destination, nil
}
