package db

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/ttv9934/device-management-app/model/database"
)

// ListFilter is the paginated listing request. Zero Page/Limit fall
// back to the defaults (page 1, 15 per page).
type ListFilter struct {
	Page    int
	Limit   int
	Search  string
	Type    string
	Model   string
	Factory string
}

// GetDevices returns one page of devices plus the pre-pagination total.
// Search substring-matches name or ip, type is an exact match, model
// and factory substring-match; all active filters AND together.
// Results come back newest first.
func (db *DB) GetDevices(filter ListFilter) ([]database.Device, int64, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 15
	}

	query := db.Connector.Model(&database.Device{})
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("name LIKE ? OR ip LIKE ?", pattern, pattern)
	}
	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}
	if filter.Model != "" {
		query = query.Where("model LIKE ?", "%"+filter.Model+"%")
	}
	if filter.Factory != "" {
		query = query.Where("factory LIKE ?", "%"+filter.Factory+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to get devices: %w", err)
	}

	devices := make([]database.Device, 0, filter.Limit)
	err := query.
		Order("created_at DESC").
		Limit(filter.Limit).
		Offset((filter.Page - 1) * filter.Limit).
		Find(&devices).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get devices: %w", err)
	}

	return devices, total, nil
}

// GetAllDevices returns every device in store-default order (export).
func (db *DB) GetAllDevices() ([]database.Device, error) {
	devices := make([]database.Device, 0)
	if err := db.Connector.Find(&devices).Error; err != nil {
		return nil, fmt.Errorf("failed to get devices: %w", err)
	}
	return devices, nil
}

func (db *DB) GetDeviceByID(id uint) (database.Device, error) {
	var device database.Device
	err := db.Connector.First(&device, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return device, ErrDeviceNotFound
	}
	if err != nil {
		return device, fmt.Errorf("failed to get device: %w", err)
	}
	return device, nil
}

func (db *DB) CreateDevice(device *database.Device) error {
	if device == nil {
		return errors.New("cannot create a nil device")
	}
	if err := db.Connector.Create(device).Error; err != nil {
		return fmt.Errorf("failed to create device: %w", err)
	}
	return nil
}

// CreateDevices inserts a whole import batch in one statement.
func (db *DB) CreateDevices(devices []database.Device) error {
	if len(devices) == 0 {
		return nil
	}
	if err := db.Connector.Create(&devices).Error; err != nil {
		return fmt.Errorf("failed to create devices: %w", err)
	}
	return nil
}

func (db *DB) UpdateDevice(device database.Device) error {
	result := db.Connector.Save(&device)
	if result.Error != nil {
		return fmt.Errorf("failed to update device: %w", result.Error)
	}
	return nil
}

func (db *DB) DeleteDevice(id uint) error {
	result := db.Connector.Delete(&database.Device{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete device: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrDeviceNotFound
	}
	return nil
}

// FindConflict looks up any record whose name or ip matches the
// candidate. A nil device with a nil error means no conflict.
func (db *DB) FindConflict(name, ip string) (*database.Device, error) {
	var device database.Device
	err := db.Connector.Where("name = ? OR ip = ?", name, ip).First(&device).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to check for conflicts: %w", err)
	}
	return &device, nil
}

// FindConflictExcluding is the update-time lookup: it ignores the
// record being updated and only matches on the fields that actually
// changed (an empty name or ip is skipped). Callers must pass at least
// one non-empty field.
func (db *DB) FindConflictExcluding(id uint, name, ip string) (*database.Device, error) {
	query := db.Connector.Where("id <> ?", id)
	switch {
	case name != "" && ip != "":
		query = query.Where("name = ? OR ip = ?", name, ip)
	case name != "":
		query = query.Where("name = ?", name)
	case ip != "":
		query = query.Where("ip = ?", ip)
	default:
		return nil, nil
	}

	var device database.Device
	err := query.First(&device).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to check for conflicts: %w", err)
	}
	return &device, nil
}

// FindExisting returns every stored record whose name or ip appears in
// the given sets. Used by import to membership-test a whole batch in
// one query.
func (db *DB) FindExisting(names, ips []string) ([]database.Device, error) {
	if len(names) == 0 && len(ips) == 0 {
		return nil, nil
	}
	var devices []database.Device
	err := db.Connector.Where("name IN ? OR ip IN ?", names, ips).Find(&devices).Error
	if err != nil {
		return nil, fmt.Errorf("failed to check for existing devices: %w", err)
	}
	return devices, nil
}
