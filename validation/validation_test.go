package validation_test

import (
	"strings"
	"testing"
	"time"

	"github.com/ttv9934/device-management-app/model/database"
	"github.com/ttv9934/device-management-app/validation"
)

func TestConflictOnCreate(t *testing.T) {
	cases := []struct {
		name  string
		match *database.Device
		dName string
		dIP   string
		want  string
	}{
		{"NoMatch", nil, "PC-01", "10.0.0.1", ""},
		{"NameOnly", &database.Device{Name: "PC-01", IP: "10.0.0.2"}, "PC-01", "10.0.0.1",
			"Device with this name already exists"},
		{"IPOnly", &database.Device{Name: "PC-02", IP: "10.0.0.1"}, "PC-01", "10.0.0.1",
			"Device with this IP already exists"},
		{"Both", &database.Device{Name: "PC-01", IP: "10.0.0.1"}, "PC-01", "10.0.0.1",
			"Device with this name already exists and Device with this IP already exists"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := validation.ConflictOnCreate(tc.match, tc.dName, tc.dIP).Join()
			if got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestConflictOnUpdate(t *testing.T) {
	cases := []struct {
		name  string
		match *database.Device
		dName string
		dIP   string
		want  string
	}{
		{"NoMatch", nil, "PC-01", "", ""},
		{"NameChanged", &database.Device{Name: "PC-01", IP: "10.0.0.9"}, "PC-01", "",
			"Another device with this name already exists"},
		{"IPChanged", &database.Device{Name: "PC-09", IP: "10.0.0.1"}, "", "10.0.0.1",
			"Another device with this IP already exists"},
		{"UnchangedFieldsIgnored", &database.Device{Name: "PC-01", IP: "10.0.0.1"}, "", "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := validation.ConflictOnUpdate(tc.match, tc.dName, tc.dIP).Join()
			if got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestDeviceDate(t *testing.T) {
	// Year-only input compares as year-01-01.
	got := validation.DeviceDate(2023, 0, 0)
	want := time.Date(2023, time.January, 1, 0, 0, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}

	got = validation.DeviceDate(2023, 6, 15)
	want = time.Date(2023, time.June, 15, 0, 0, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestFutureDate(t *testing.T) {
	now := time.Date(2024, time.March, 10, 12, 0, 0, 0, time.Local)

	cases := []struct {
		name             string
		year, month, day int
		wantFail         bool
	}{
		{"PastYear", 2023, 0, 0, false},
		{"CurrentYearDefaults", 2024, 0, 0, false},
		{"SameDay", 2024, 3, 10, false},
		{"NextDay", 2024, 3, 11, true},
		{"FutureYear", 2025, 0, 0, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			failure := validation.FutureDate(tc.year, tc.month, tc.day, now)
			if tc.wantFail && failure == nil {
				t.Fatal("expected a failure, got nil")
			}
			if !tc.wantFail && failure != nil {
				t.Fatalf("expected no failure, got %q", failure.Reason)
			}
			if failure != nil && failure.Reason != "Date cannot be in the future (max 2024-03-10)" {
				t.Fatalf("unexpected reason %q", failure.Reason)
			}
		})
	}
}

func TestBatchDuplicates(t *testing.T) {
	t.Run("CleanBatch", func(t *testing.T) {
		devices := []database.Device{
			{Name: "A", IP: "10.0.0.1"},
			{Name: "B", IP: "10.0.0.2"},
		}
		if got := validation.BatchDuplicates(devices); len(got) != 0 {
			t.Fatalf("expected no failures, got %v", got)
		}
	})

	t.Run("DuplicateIPs", func(t *testing.T) {
		devices := []database.Device{
			{Name: "A", IP: "10.0.0.1"},
			{Name: "B", IP: "10.0.0.1"},
		}
		got := validation.BatchDuplicates(devices).Join()
		if got != "Duplicate IPs: 10.0.0.1" {
			t.Fatalf("unexpected message %q", got)
		}
	})

	t.Run("DuplicatesReportedOnce", func(t *testing.T) {
		devices := []database.Device{
			{Name: "A", IP: "10.0.0.1"},
			{Name: "A", IP: "10.0.0.2"},
			{Name: "A", IP: "10.0.0.3"},
			{Name: "B", IP: "10.0.0.4"},
			{Name: "B", IP: "10.0.0.5"},
		}
		got := validation.BatchDuplicates(devices).Join()
		if got != "Duplicate names: A, B" {
			t.Fatalf("unexpected message %q", got)
		}
	})

	t.Run("NamesAndIPsJoined", func(t *testing.T) {
		devices := []database.Device{
			{Name: "A", IP: "10.0.0.1"},
			{Name: "A", IP: "10.0.0.1"},
		}
		got := validation.BatchDuplicates(devices).Join()
		want := "Duplicate names: A and Duplicate IPs: 10.0.0.1"
		if got != want {
			t.Fatalf("expected %q, got %q", want, got)
		}
	})
}

func TestBatchFutureDates(t *testing.T) {
	now := time.Date(2024, time.March, 10, 12, 0, 0, 0, time.Local)

	devices := []database.Device{{Year: 2020}, {Year: 2023}}
	if failure := validation.BatchFutureDates(devices, now); failure != nil {
		t.Fatalf("expected no failure, got %q", failure.Reason)
	}

	devices = append(devices, database.Device{Year: 2030})
	failure := validation.BatchFutureDates(devices, now)
	if failure == nil {
		t.Fatal("expected a failure, got nil")
	}
	if failure.Reason != "Dates cannot be in the future (max 2024-03-10)" {
		t.Fatalf("unexpected reason %q", failure.Reason)
	}
}

func TestBatchConflicts(t *testing.T) {
	if got := validation.BatchConflicts(nil); got != nil {
		t.Fatalf("expected nil, got %v", got)
	}

	existing := []database.Device{
		{Name: "PC-01", IP: "10.0.0.1"},
		{Name: "PC-02", IP: "10.0.0.2"},
	}
	got := validation.BatchConflicts(existing).Join()
	if !strings.Contains(got, "Existing names: PC-01, PC-02") {
		t.Fatalf("missing names in %q", got)
	}
	if !strings.Contains(got, "Existing IPs: 10.0.0.1, 10.0.0.2") {
		t.Fatalf("missing IPs in %q", got)
	}
}
