package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Manager handles the cache database connection and initialization
type Manager struct {
	db *gorm.DB
}

const gormLogLevel = "GORM_LOG_LEVEL"

// DefaultPath returns the default on-disk cache location under the airweave
// config directory.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("error getting user home directory: %w", err)
	}
	dir := filepath.Join(home, ".airweave")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("error creating config directory: %w", err)
	}
	return filepath.Join(dir, "cache.db"), nil
}

// NewManager opens (or creates) the sqlite cache at path and migrates the
// schema. Use ":memory:" for an ephemeral cache.
func NewManager(path string) (*Manager, error) {
	logLevel := logger.Silent
	if val, ok := os.LookupEnv(gormLogLevel); ok {
		switch val {
		case "error":
			logLevel = logger.Error
		case "warn":
			logLevel = logger.Warn
		case "info":
			logLevel = logger.Info
		case "silent":
			logLevel = logger.Silent
		}
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger:         logger.Default.LogMode(logLevel),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open cache database: %w", err)
	}

	if err := db.AutoMigrate(
		&Organization{},
		&APIKey{},
		&SearchSettings{},
	); err != nil {
		return nil, fmt.Errorf("failed to migrate cache schema: %w", err)
	}

	return &Manager{db: db}, nil
}

// DB exposes the underlying gorm handle.
func (m *Manager) DB() *gorm.DB {
	return m.db
}

// Close closes the database connection.
func (m *Manager) Close() error {
	sqlDB, err := m.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
