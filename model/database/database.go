package database

import (
	"time"
)

// Device is the single persisted entity: one managed inventory item.
// IP carries the only storage-level uniqueness guarantee; name
// uniqueness is enforced in application logic before every write.
type Device struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Name       string    `gorm:"type:varchar(255);not null" json:"name"`
	IP         string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_devices_ip" json:"ip"`
	Department string    `gorm:"type:varchar(255);not null" json:"department"`
	Model      string    `gorm:"type:varchar(255);not null" json:"model"`
	Year       int       `gorm:"not null" json:"year"`
	Type       string    `gorm:"type:varchar(255);not null" json:"type"`
	Status     string    `gorm:"type:varchar(255);not null" json:"status"`
	Notes      string    `gorm:"type:text" json:"notes"`
	Factory    string    `gorm:"type:varchar(255);not null" json:"factory"`
	CreatedAt  time.Time `gorm:"not null" json:"createdAt"`
	UpdatedAt  time.Time `gorm:"not null" json:"updatedAt"`
}
