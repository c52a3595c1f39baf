package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/airweave-ai/airweave-go/pkg/client/api"
)

func setupTestDB(t *testing.T) *Manager {
	t.Helper()
	m, err := NewManager(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = m.Close() })
	return m
}

func countPrimary(t *testing.T, c Client) int {
	t.Helper()
	orgs, err := c.ListOrganizations()
	require.NoError(t, err)
	n := 0
	for _, org := range orgs {
		if org.IsPrimary {
			n++
		}
	}
	return n
}

func TestUpsertOrganizationsKeepsSinglePrimary(t *testing.T) {
	tests := []struct {
		name        string
		orgs        []api.Organization
		wantPrimary string
	}{
		{
			name: "server marks one primary",
			orgs: []api.Organization{
				{ID: "org-a", Name: "Alpha"},
				{ID: "org-b", Name: "Beta", IsPrimary: true},
			},
			wantPrimary: "org-b",
		},
		{
			name: "server marks none primary, first is promoted",
			orgs: []api.Organization{
				{ID: "org-a", Name: "Alpha"},
				{ID: "org-b", Name: "Beta"},
			},
			wantPrimary: "org-a",
		},
		{
			name: "server marks several primary, first wins",
			orgs: []api.Organization{
				{ID: "org-a", Name: "Alpha", IsPrimary: true},
				{ID: "org-b", Name: "Beta", IsPrimary: true},
			},
			wantPrimary: "org-a",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewClient(setupTestDB(t))
			require.NoError(t, c.UpsertOrganizations(tt.orgs))

			assert.Equal(t, 1, countPrimary(t, c))

			primary, err := c.GetPrimaryOrganization()
			require.NoError(t, err)
			assert.Equal(t, tt.wantPrimary, primary.ID)
		})
	}
}

func TestSetPrimaryOrganization(t *testing.T) {
	c := NewClient(setupTestDB(t))
	require.NoError(t, c.UpsertOrganizations([]api.Organization{
		{ID: "org-a", Name: "Alpha", IsPrimary: true},
		{ID: "org-b", Name: "Beta"},
		{ID: "org-c", Name: "Gamma"},
	}))

	require.NoError(t, c.SetPrimaryOrganization("org-c"))

	assert.Equal(t, 1, countPrimary(t, c))
	primary, err := c.GetPrimaryOrganization()
	require.NoError(t, err)
	assert.Equal(t, "org-c", primary.ID)
}

func TestSetPrimaryOrganizationUnknownID(t *testing.T) {
	c := NewClient(setupTestDB(t))
	require.NoError(t, c.UpsertOrganizations([]api.Organization{
		{ID: "org-a", Name: "Alpha", IsPrimary: true},
	}))

	err := c.SetPrimaryOrganization("org-missing")
	require.Error(t, err)

	// The existing primary must be untouched.
	primary, err := c.GetPrimaryOrganization()
	require.NoError(t, err)
	assert.Equal(t, "org-a", primary.ID)
}

func TestDeleteOrganizationPromotesNext(t *testing.T) {
	c := NewClient(setupTestDB(t))
	require.NoError(t, c.UpsertOrganizations([]api.Organization{
		{ID: "org-a", Name: "Alpha", IsPrimary: true},
		{ID: "org-b", Name: "Beta"},
	}))

	require.NoError(t, c.DeleteOrganization("org-a"))

	orgs, err := c.ListOrganizations()
	require.NoError(t, err)
	require.Len(t, orgs, 1)
	assert.Equal(t, "org-b", orgs[0].ID)
	assert.True(t, orgs[0].IsPrimary)
}

func TestReplaceAPIKeysNeverStoresSecret(t *testing.T) {
	c := NewClient(setupTestDB(t))
	exp := time.Now().Add(24 * time.Hour).UTC()
	require.NoError(t, c.ReplaceAPIKeys([]api.APIKey{
		{ID: "key-1", DecryptedKey: "aw-supersecret", KeyPrefix: "aw-sup", ExpirationDate: &exp},
	}))

	keys, err := c.ListAPIKeys()
	require.NoError(t, err)
	require.Len(t, keys, 1)
	assert.Equal(t, "aw-sup", keys[0].KeyPrefix)
	require.NotNil(t, keys[0].ExpirationDate)

	// Replacing with an empty list clears the cache.
	require.NoError(t, c.ReplaceAPIKeys(nil))
	keys, err = c.ListAPIKeys()
	require.NoError(t, err)
	assert.Empty(t, keys)
}

func TestSearchSettingsRoundTrip(t *testing.T) {
	c := NewClient(setupTestDB(t))

	require.NoError(t, c.StoreSearchSettings(&SearchSettings{
		Collection:   "docs",
		ResponseType: "completion",
		Limit:        25,
	}))
	// Upsert overwrites.
	require.NoError(t, c.StoreSearchSettings(&SearchSettings{
		Collection:   "docs",
		ResponseType: "raw",
		Limit:        50,
	}))

	got, err := c.GetSearchSettings("docs")
	require.NoError(t, err)
	assert.Equal(t, "raw", got.ResponseType)
	assert.Equal(t, 50, got.Limit)

	_, err = c.GetSearchSettings("unknown")
	assert.Error(t, err)
}
