package model

import (
	"github.com/ttv9934/device-management-app/model/database"
)

// RestError is the shape of every error response body.
type RestError struct {
	Error string `json:"error"`
}

// RestMessage is the shape of confirmation responses (delete, import).
type RestMessage struct {
	Message string `json:"message"`
}

// CreateDevice is the payload for POST /api/devices. Month and Day are
// transient inputs used only by the future-date validation; they are
// never stored.
type CreateDevice struct {
	Name       string `json:"name"`
	IP         string `json:"ip"`
	Department string `json:"department"`
	Model      string `json:"model"`
	Year       int    `json:"year"`
	Type       string `json:"type"`
	Status     string `json:"status"`
	Notes      string `json:"notes"`
	Factory    string `json:"factory"`
	Month      int    `json:"month"`
	Day        int    `json:"day"`
}

// HasRequiredFields reports whether every mandatory attribute is set.
// Notes, month, and day are optional.
func (c *CreateDevice) HasRequiredFields() bool {
	return c.Name != "" && c.IP != "" && c.Department != "" && c.Model != "" &&
		c.Year != 0 && c.Type != "" && c.Status != "" && c.Factory != ""
}

func (c *CreateDevice) TranslateToDB() database.Device {
	return database.Device{
		Name:       c.Name,
		IP:         c.IP,
		Department: c.Department,
		Model:      c.Model,
		Year:       c.Year,
		Type:       c.Type,
		Status:     c.Status,
		Notes:      c.Notes,
		Factory:    c.Factory,
	}
}

// UpdateDevice is the payload for PUT /api/devices/:id. Pointer fields
// distinguish "absent" from "set to the zero value", so a partial
// update leaves unspecified attributes untouched.
type UpdateDevice struct {
	Name       *string `json:"name"`
	IP         *string `json:"ip"`
	Department *string `json:"department"`
	Model      *string `json:"model"`
	Year       *int    `json:"year"`
	Type       *string `json:"type"`
	Status     *string `json:"status"`
	Notes      *string `json:"notes"`
	Factory    *string `json:"factory"`
	Month      *int    `json:"month"`
	Day        *int    `json:"day"`
}

// ApplyTo copies every present field onto the stored record.
func (u *UpdateDevice) ApplyTo(device *database.Device) {
	if u.Name != nil {
		device.Name = *u.Name
	}
	if u.IP != nil {
		device.IP = *u.IP
	}
	if u.Department != nil {
		device.Department = *u.Department
	}
	if u.Model != nil {
		device.Model = *u.Model
	}
	if u.Year != nil {
		device.Year = *u.Year
	}
	if u.Type != nil {
		device.Type = *u.Type
	}
	if u.Status != nil {
		device.Status = *u.Status
	}
	if u.Notes != nil {
		device.Notes = *u.Notes
	}
	if u.Factory != nil {
		device.Factory = *u.Factory
	}
}

// DeviceList is the paginated listing response.
type DeviceList struct {
	Total       int64             `json:"total"`
	Pages       int               `json:"pages"`
	CurrentPage int               `json:"currentPage"`
	Devices     []database.Device `json:"devices"`
}

// TypeStat is one (factory, type) aggregation row.
type TypeStat struct {
	Factory string `json:"factory"`
	Type    string `json:"type"`
	Count   int64  `json:"count"`
	Newest  int    `json:"newest"`
	Oldest  int    `json:"oldest"`
}

// FactoryStat is one per-factory aggregation row.
type FactoryStat struct {
	Factory string `json:"factory"`
	Count   int64  `json:"count"`
}

// DeviceStats is the GET /api/devices/stats response.
type DeviceStats struct {
	ByType    []TypeStat    `json:"byType"`
	ByFactory []FactoryStat `json:"byFactory"`
}
