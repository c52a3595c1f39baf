package store

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/airweave-ai/airweave-go/pkg/client/api"
)

// Client is the local cache interface used by the CLI.
type Client interface {
	// Organizations
	UpsertOrganizations(orgs []api.Organization) error
	ListOrganizations() ([]Organization, error)
	GetPrimaryOrganization() (*Organization, error)
	SetPrimaryOrganization(orgID string) error
	DeleteOrganization(orgID string) error

	// API keys
	ReplaceAPIKeys(keys []api.APIKey) error
	ListAPIKeys() ([]APIKey, error)

	// Search settings
	StoreSearchSettings(settings *SearchSettings) error
	GetSearchSettings(collection string) (*SearchSettings, error)
}

type clientImpl struct {
	db *gorm.DB
}

// NewClient creates a cache client on top of a Manager.
func NewClient(m *Manager) Client {
	return &clientImpl{db: m.DB()}
}

// UpsertOrganizations replaces the cached organization metadata with the
// server's view. The primary flag follows the server response; if the server
// reports more than one primary, the first wins, and if it reports none the
// first organization is promoted so exactly one row ends up primary.
func (c *clientImpl) UpsertOrganizations(orgs []api.Organization) error {
	if len(orgs) == 0 {
		return c.db.Where("1 = 1").Delete(&Organization{}).Error
	}

	rows := make([]Organization, 0, len(orgs))
	primarySeen := false
	for _, org := range orgs {
		isPrimary := org.IsPrimary && !primarySeen
		if isPrimary {
			primarySeen = true
		}
		rows = append(rows, Organization{
			ID:        org.ID,
			Name:      org.Name,
			Role:      org.Role,
			IsPrimary: isPrimary,
		})
	}
	if !primarySeen {
		rows[0].IsPrimary = true
	}

	return c.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&Organization{}).Error; err != nil {
			return err
		}
		return tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(&rows).Error
	})
}

// ListOrganizations returns the cached organizations, primary first.
func (c *clientImpl) ListOrganizations() ([]Organization, error) {
	var orgs []Organization
	if err := c.db.Order("is_primary DESC, name ASC").Find(&orgs).Error; err != nil {
		return nil, err
	}
	return orgs, nil
}

// GetPrimaryOrganization returns the cached primary organization.
func (c *clientImpl) GetPrimaryOrganization() (*Organization, error) {
	var org Organization
	if err := c.db.Where("is_primary = ?", true).First(&org).Error; err != nil {
		return nil, err
	}
	return &org, nil
}

// SetPrimaryOrganization marks orgID primary and clears the flag everywhere
// else, in one transaction.
func (c *clientImpl) SetPrimaryOrganization(orgID string) error {
	return c.db.Transaction(func(tx *gorm.DB) error {
		var org Organization
		if err := tx.First(&org, "id = ?", orgID).Error; err != nil {
			return fmt.Errorf("organization %s not cached: %w", orgID, err)
		}
		if err := tx.Model(&Organization{}).Where("is_primary = ?", true).
			Update("is_primary", false).Error; err != nil {
			return err
		}
		return tx.Model(&Organization{}).Where("id = ?", orgID).
			Update("is_primary", true).Error
	})
}

// DeleteOrganization removes a cached organization. If it was primary, the
// first remaining organization is promoted.
func (c *clientImpl) DeleteOrganization(orgID string) error {
	return c.db.Transaction(func(tx *gorm.DB) error {
		var org Organization
		if err := tx.First(&org, "id = ?", orgID).Error; err != nil {
			return err
		}
		if err := tx.Delete(&Organization{}, "id = ?", orgID).Error; err != nil {
			return err
		}
		if !org.IsPrimary {
			return nil
		}
		var next Organization
		err := tx.Order("name ASC").First(&next).Error
		if err == gorm.ErrRecordNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		return tx.Model(&Organization{}).Where("id = ?", next.ID).
			Update("is_primary", true).Error
	})
}

// ReplaceAPIKeys replaces the cached API key metadata.
func (c *clientImpl) ReplaceAPIKeys(keys []api.APIKey) error {
	rows := make([]APIKey, 0, len(keys))
	for _, key := range keys {
		rows = append(rows, APIKey{
			ID:             key.ID,
			KeyPrefix:      key.KeyPrefix,
			ExpirationDate: key.ExpirationDate,
		})
	}

	return c.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&APIKey{}).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(&rows).Error
	})
}

// ListAPIKeys returns the cached API key metadata.
func (c *clientImpl) ListAPIKeys() ([]APIKey, error) {
	var keys []APIKey
	if err := c.db.Order("cached_at DESC").Find(&keys).Error; err != nil {
		return nil, err
	}
	return keys, nil
}

// StoreSearchSettings upserts the remembered search parameters for a collection.
func (c *clientImpl) StoreSearchSettings(settings *SearchSettings) error {
	return c.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(settings).Error
}

// GetSearchSettings returns the remembered search parameters for a collection.
func (c *clientImpl) GetSearchSettings(collection string) (*SearchSettings, error) {
	var settings SearchSettings
	if err := c.db.First(&settings, "collection = ?", collection).Error; err != nil {
		return nil, err
	}
	return &settings, nil
}
