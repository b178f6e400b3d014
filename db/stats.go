package db

import (
	"fmt"

	"github.com/ttv9934/device-management-app/model"
	"github.com/ttv9934/device-management-app/model/database"
)

// StatsByTypeAndFactory aggregates the whole table into one row per
// distinct (factory, type) pair: record count plus newest and oldest
// purchase year. Recomputed on every call.
func (db *DB) StatsByTypeAndFactory() ([]model.TypeStat, error) {
	stats := make([]model.TypeStat, 0)
	err := db.Connector.
		Model(&database.Device{}).
		Select("factory, type, COUNT(id) AS count, MAX(year) AS newest, MIN(year) AS oldest").
		Group("factory").
		Group("type").
		Scan(&stats).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get type statistics: %w", err)
	}
	return stats, nil
}

// StatsByFactory aggregates one row per distinct factory.
func (db *DB) StatsByFactory() ([]model.FactoryStat, error) {
	stats := make([]model.FactoryStat, 0)
	err := db.Connector.
		Model(&database.Device{}).
		Select("factory, COUNT(id) AS count").
		Group("factory").
		Scan(&stats).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get factory statistics: %w", err)
	}
	return stats, nil
}
