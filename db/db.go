package db

import (
	"errors"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/ttv9934/device-management-app/config"
	"github.com/ttv9934/device-management-app/model/database"
)

// ErrDeviceNotFound is returned whenever an id lookup matches nothing.
var ErrDeviceNotFound = errors.New("no device found with the given ID")

type DB struct {
	Connector *gorm.DB
}

func New(cfg *config.Config) (*DB, error) {
	conn, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return &DB{Connector: conn}, nil
}

func (db *DB) Init() error {
	if err := db.Connector.AutoMigrate(&database.Device{}); err != nil {
		return fmt.Errorf("failed to migrate device: %w", err)
	}

	// The listing endpoint filters on type and factory constantly, so
	// give both a plain index. The unique index on ip comes from the
	// model tag; name deliberately has none (uniqueness on name is an
	// application-level check only, matching the original schema).
	postSetupQueries := []string{
		`CREATE INDEX IF NOT EXISTS idx_devices_type ON devices(type);`,
		`CREATE INDEX IF NOT EXISTS idx_devices_factory ON devices(factory);`,
	}
	for _, query := range postSetupQueries {
		if err := db.Connector.Exec(query).Error; err != nil {
			return fmt.Errorf("failed to execute post-setup query: %w", err)
		}
	}

	return nil
}

// Ping reports whether the underlying connection is usable.
func (db *DB) Ping() error {
	sqlDB, err := db.Connector.DB()
	if err != nil {
		return fmt.Errorf("failed to get database handle: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}
	return nil
}
