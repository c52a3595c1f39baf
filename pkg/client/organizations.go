package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/airweave-ai/airweave-go/pkg/client/api"
)

// Organizations defines the organization operations
type Organizations interface {
	ListOrganizations(ctx context.Context) ([]api.Organization, error)
	GetOrganization(ctx context.Context, orgID string) (*api.Organization, error)
	CreateOrganization(ctx context.Context, request *api.CreateOrganizationRequest) (*api.Organization, error)
	UpdateOrganization(ctx context.Context, orgID string, request *api.UpdateOrganizationRequest) (*api.Organization, error)
	DeleteOrganization(ctx context.Context, orgID string) error
	SetPrimary(ctx context.Context, orgID string) error
	Leave(ctx context.Context, orgID string) error
}

// organizationsClient handles organization requests
type organizationsClient struct {
	client *BaseClient
}

// NewOrganizationsClient creates a new organizations client
func NewOrganizationsClient(client *BaseClient) Organizations {
	return &organizationsClient{client: client}
}

// ListOrganizations lists the caller's organizations
func (c *organizationsClient) ListOrganizations(ctx context.Context) ([]api.Organization, error) {
	resp, err := c.client.Get(ctx, "/organizations")
	if err != nil {
		return nil, err
	}

	var orgs []api.Organization
	if err := DecodeResponse(resp, &orgs); err != nil {
		return nil, err
	}

	return orgs, nil
}

// GetOrganization retrieves a specific organization
func (c *organizationsClient) GetOrganization(ctx context.Context, orgID string) (*api.Organization, error) {
	path := fmt.Sprintf("/organizations/%s", url.PathEscape(orgID))
	resp, err := c.client.Get(ctx, path)
	if err != nil {
		return nil, err
	}

	var org api.Organization
	if err := DecodeResponse(resp, &org); err != nil {
		return nil, err
	}

	return &org, nil
}

// CreateOrganization creates a new organization
func (c *organizationsClient) CreateOrganization(ctx context.Context, request *api.CreateOrganizationRequest) (*api.Organization, error) {
	resp, err := c.client.Post(ctx, "/organizations", request)
	if err != nil {
		return nil, err
	}

	var org api.Organization
	if err := DecodeResponse(resp, &org); err != nil {
		return nil, err
	}

	return &org, nil
}

// UpdateOrganization updates an organization
func (c *organizationsClient) UpdateOrganization(ctx context.Context, orgID string, request *api.UpdateOrganizationRequest) (*api.Organization, error) {
	path := fmt.Sprintf("/organizations/%s", url.PathEscape(orgID))
	resp, err := c.client.Put(ctx, path, request)
	if err != nil {
		return nil, err
	}

	var org api.Organization
	if err := DecodeResponse(resp, &org); err != nil {
		return nil, err
	}

	return &org, nil
}

// DeleteOrganization deletes an organization
func (c *organizationsClient) DeleteOrganization(ctx context.Context, orgID string) error {
	path := fmt.Sprintf("/organizations/%s", url.PathEscape(orgID))
	resp, err := c.client.Delete(ctx, path)
	if err != nil {
		return err
	}

	CloseResponse(resp)
	return nil
}

// SetPrimary marks an organization as the caller's primary organization
func (c *organizationsClient) SetPrimary(ctx context.Context, orgID string) error {
	path := fmt.Sprintf("/organizations/%s/set-primary", url.PathEscape(orgID))
	resp, err := c.client.Post(ctx, path, nil)
	if err != nil {
		return err
	}

	CloseResponse(resp)
	return nil
}

// Leave removes the caller from an organization
func (c *organizationsClient) Leave(ctx context.Context, orgID string) error {
	path := fmt.Sprintf("/organizations/%s/leave", url.PathEscape(orgID))
	resp, err := c.client.Post(ctx, path, nil)
	if err != nil {
		return err
	}

	CloseResponse(resp)
	return nil
}
