package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/airweave-ai/airweave-go/pkg/client/api"
)

// Collections defines the collection operations
type Collections interface {
	ListCollections(ctx context.Context) ([]api.Collection, error)
	GetCollection(ctx context.Context, readableID string) (*api.Collection, error)
	CreateCollection(ctx context.Context, request *api.CreateCollectionRequest) (*api.Collection, error)
	DeleteCollection(ctx context.Context, readableID string) error
	Search(ctx context.Context, readableID string, request *api.SearchRequest) (*api.SearchResponse, error)
}

// collectionsClient handles collection-related requests
type collectionsClient struct {
	client *BaseClient
}

// NewCollectionsClient creates a new collections client
func NewCollectionsClient(client *BaseClient) Collections {
	return &collectionsClient{client: client}
}

// ListCollections lists all collections in the active organization
func (c *collectionsClient) ListCollections(ctx context.Context) ([]api.Collection, error) {
	resp, err := c.client.Get(ctx, "/collections")
	if err != nil {
		return nil, err
	}

	var collections []api.Collection
	if err := DecodeResponse(resp, &collections); err != nil {
		return nil, err
	}

	return collections, nil
}

// GetCollection retrieves a specific collection
func (c *collectionsClient) GetCollection(ctx context.Context, readableID string) (*api.Collection, error) {
	path := fmt.Sprintf("/collections/%s", url.PathEscape(readableID))
	resp, err := c.client.Get(ctx, path)
	if err != nil {
		return nil, err
	}

	var collection api.Collection
	if err := DecodeResponse(resp, &collection); err != nil {
		return nil, err
	}

	return &collection, nil
}

// CreateCollection creates a new collection
func (c *collectionsClient) CreateCollection(ctx context.Context, request *api.CreateCollectionRequest) (*api.Collection, error) {
	resp, err := c.client.Post(ctx, "/collections", request)
	if err != nil {
		return nil, err
	}

	var collection api.Collection
	if err := DecodeResponse(resp, &collection); err != nil {
		return nil, err
	}

	return &collection, nil
}

// DeleteCollection deletes a collection
func (c *collectionsClient) DeleteCollection(ctx context.Context, readableID string) error {
	path := fmt.Sprintf("/collections/%s", url.PathEscape(readableID))
	resp, err := c.client.Delete(ctx, path)
	if err != nil {
		return err
	}

	CloseResponse(resp)
	return nil
}

// Search runs a search against a collection. Simple requests (query, response
// type, paging) go over GET with query parameters; requests carrying advanced
// ranking parameters go over POST with a JSON body.
func (c *collectionsClient) Search(ctx context.Context, readableID string, request *api.SearchRequest) (*api.SearchResponse, error) {
	if request == nil || request.Query == "" {
		return nil, fmt.Errorf("query is required")
	}

	basePath := fmt.Sprintf("/collections/%s/search", url.PathEscape(readableID))

	var err error
	var resp *api.SearchResponse
	if request.Advanced() {
		resp, err = c.searchPost(ctx, basePath, request)
	} else {
		resp, err = c.searchGet(ctx, basePath, request)
	}
	if err != nil {
		return nil, err
	}

	return resp, nil
}

func (c *collectionsClient) searchGet(ctx context.Context, basePath string, request *api.SearchRequest) (*api.SearchResponse, error) {
	params := url.Values{}
	params.Set("query", request.Query)
	if request.ResponseType != "" {
		params.Set("response_type", request.ResponseType)
	}
	if request.Limit > 0 {
		params.Set("limit", strconv.Itoa(request.Limit))
	}
	if request.Offset > 0 {
		params.Set("offset", strconv.Itoa(request.Offset))
	}

	resp, err := c.client.Get(ctx, basePath+"?"+params.Encode())
	if err != nil {
		return nil, err
	}

	var response api.SearchResponse
	if err := DecodeResponse(resp, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

func (c *collectionsClient) searchPost(ctx context.Context, basePath string, request *api.SearchRequest) (*api.SearchResponse, error) {
	resp, err := c.client.Post(ctx, basePath, request)
	if err != nil {
		return nil, err
	}

	var response api.SearchResponse
	if err := DecodeResponse(resp, &response); err != nil {
		return nil, err
	}
	return &response, nil
}
