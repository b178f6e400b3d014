// Package validation holds the conflict and date checks that gate every
// write to the device store. All functions are pure: the web layer
// fetches whatever records a check needs and renders the failures into
// a response message.
package validation

import (
	"fmt"
	"strings"
	"time"

	"github.com/ttv9934/device-management-app/model/database"
)

// Failure is one typed validation failure.
type Failure struct {
	Field  string
	Reason string
}

type Failures []Failure

// Join renders the failures the way the API reports them: reasons
// joined with " and ".
func (fs Failures) Join() string {
	reasons := make([]string, 0, len(fs))
	for _, f := range fs {
		reasons = append(reasons, f.Reason)
	}
	return strings.Join(reasons, " and ")
}

// ConflictOnCreate inspects the record matched by a name-or-ip lookup
// and reports one failure per colliding field. Both can fire at once
// when a single record matches on name and ip.
func ConflictOnCreate(match *database.Device, name, ip string) Failures {
	if match == nil {
		return nil
	}
	var fs Failures
	if match.Name == name {
		fs = append(fs, Failure{Field: "name", Reason: "Device with this name already exists"})
	}
	if match.IP == ip {
		fs = append(fs, Failure{Field: "ip", Reason: "Device with this IP already exists"})
	}
	return fs
}

// ConflictOnUpdate is the update-time variant: the lookup already
// excluded the record being updated, and name/ip are only the fields
// that actually changed (empty means unchanged).
func ConflictOnUpdate(match *database.Device, name, ip string) Failures {
	if match == nil {
		return nil
	}
	var fs Failures
	if name != "" && match.Name == name {
		fs = append(fs, Failure{Field: "name", Reason: "Another device with this name already exists"})
	}
	if ip != "" && match.IP == ip {
		fs = append(fs, Failure{Field: "ip", Reason: "Another device with this IP already exists"})
	}
	return fs
}

// DeviceDate builds the comparison date from a device's year and the
// optional month/day inputs. A missing month or day falls back to
// January / the 1st, so year-only input compares as year-01-01.
func DeviceDate(year, month, day int) time.Time {
	if month == 0 {
		month = 1
	}
	if day == 0 {
		day = 1
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local)
}

// FutureDate rejects a device date strictly later than now.
func FutureDate(year, month, day int, now time.Time) *Failure {
	if DeviceDate(year, month, day).After(now) {
		return &Failure{
			Field:  "date",
			Reason: fmt.Sprintf("Date cannot be in the future (max %s)", now.Format("2006-01-02")),
		}
	}
	return nil
}

// BatchDuplicates detects names and IPs that occur more than once
// within an import batch. An element counts as a duplicate when the
// same value already appeared at an earlier index; each duplicated
// value is reported once, in first-duplicate order.
func BatchDuplicates(devices []database.Device) Failures {
	dupNames := duplicates(devices, func(d database.Device) string { return d.Name })
	dupIPs := duplicates(devices, func(d database.Device) string { return d.IP })

	var fs Failures
	if len(dupNames) > 0 {
		fs = append(fs, Failure{Field: "name", Reason: "Duplicate names: " + strings.Join(dupNames, ", ")})
	}
	if len(dupIPs) > 0 {
		fs = append(fs, Failure{Field: "ip", Reason: "Duplicate IPs: " + strings.Join(dupIPs, ", ")})
	}
	return fs
}

func duplicates(devices []database.Device, key func(database.Device) string) []string {
	seen := make(map[string]bool, len(devices))
	reported := make(map[string]bool)
	var dups []string
	for _, d := range devices {
		k := key(d)
		if seen[k] && !reported[k] {
			dups = append(dups, k)
			reported[k] = true
		}
		seen[k] = true
	}
	return dups
}

// BatchFutureDates runs the future-date check across a whole batch.
// It reports the single shared message, not the offending rows.
func BatchFutureDates(devices []database.Device, now time.Time) *Failure {
	for _, d := range devices {
		if DeviceDate(d.Year, 0, 0).After(now) {
			return &Failure{
				Field:  "date",
				Reason: fmt.Sprintf("Dates cannot be in the future (max %s)", now.Format("2006-01-02")),
			}
		}
	}
	return nil
}

// BatchConflicts reports the names and IPs of every stored record that
// collided with the batch membership lookup. Both lists fire whenever
// any record matched, since every record carries both fields.
func BatchConflicts(existing []database.Device) Failures {
	if len(existing) == 0 {
		return nil
	}
	names := make([]string, 0, len(existing))
	ips := make([]string, 0, len(existing))
	for _, d := range existing {
		names = append(names, d.Name)
		ips = append(ips, d.IP)
	}
	return Failures{
		{Field: "name", Reason: "Existing names: " + strings.Join(names, ", ")},
		{Field: "ip", Reason: "Existing IPs: " + strings.Join(ips, ", ")},
	}
}
