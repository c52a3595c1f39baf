package store

import "time"

// Organization is a cached row mirroring the backend's organization record.
// At most one row has IsPrimary set; Client.UpsertOrganizations and
// Client.SetPrimaryOrganization maintain that invariant.
type Organization struct {
	ID        string    `gorm:"primaryKey;not null" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Role      string    `json:"role"`
	IsPrimary bool      `gorm:"index" json:"is_primary"`
	CachedAt  time.Time `gorm:"autoUpdateTime" json:"cached_at"`
}

// APIKey caches key metadata. Only the prefix is stored; the full secret
// never touches disk.
type APIKey struct {
	ID             string     `gorm:"primaryKey;not null" json:"id"`
	KeyPrefix      string     `gorm:"not null" json:"key_prefix"`
	ExpirationDate *time.Time `json:"expiration_date,omitempty"`
	CachedAt       time.Time  `gorm:"autoUpdateTime" json:"cached_at"`
}

// SearchSettings remembers the last-used search parameters per collection so
// repeat searches keep the caller's preferences.
type SearchSettings struct {
	Collection   string    `gorm:"primaryKey;not null" json:"collection"`
	ResponseType string    `json:"response_type"`
	Limit        int       `json:"limit"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
