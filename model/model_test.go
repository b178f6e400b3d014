package model_test

import (
	"testing"

	"github.com/ttv9934/device-management-app/model"
)

func TestCreateDevice_HasRequiredFields(t *testing.T) {
	complete := model.CreateDevice{
		Name: "PC-01", IP: "10.0.0.1", Department: "IT", Model: "Dell 3020",
		Year: 2023, Type: "Desktop", Status: "In-use", Factory: "Plant-A",
	}
	if !complete.HasRequiredFields() {
		t.Fatal("expected a complete payload to pass")
	}

	// Notes, month, and day are optional.
	withOptional := complete
	withOptional.Notes = "spare"
	withOptional.Month = 6
	withOptional.Day = 15
	if !withOptional.HasRequiredFields() {
		t.Fatal("expected optional fields to be optional")
	}

	cases := []struct {
		name   string
		mutate func(*model.CreateDevice)
	}{
		{"MissingName", func(c *model.CreateDevice) { c.Name = "" }},
		{"MissingIP", func(c *model.CreateDevice) { c.IP = "" }},
		{"MissingDepartment", func(c *model.CreateDevice) { c.Department = "" }},
		{"MissingModel", func(c *model.CreateDevice) { c.Model = "" }},
		{"MissingYear", func(c *model.CreateDevice) { c.Year = 0 }},
		{"MissingType", func(c *model.CreateDevice) { c.Type = "" }},
		{"MissingStatus", func(c *model.CreateDevice) { c.Status = "" }},
		{"MissingFactory", func(c *model.CreateDevice) { c.Factory = "" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			payload := complete
			tc.mutate(&payload)
			if payload.HasRequiredFields() {
				t.Fatal("expected an incomplete payload to fail")
			}
		})
	}
}

func TestCreateDevice_TranslateToDB(t *testing.T) {
	payload := model.CreateDevice{
		Name: "PC-01", IP: "10.0.0.1", Department: "IT", Model: "Dell 3020",
		Year: 2023, Type: "Desktop", Status: "In-use", Notes: "spare", Factory: "Plant-A",
		Month: 6, Day: 15,
	}

	device := payload.TranslateToDB()
	if device.Name != payload.Name || device.IP != payload.IP ||
		device.Department != payload.Department || device.Model != payload.Model ||
		device.Year != payload.Year || device.Type != payload.Type ||
		device.Status != payload.Status || device.Notes != payload.Notes ||
		device.Factory != payload.Factory {
		t.Fatalf("field mismatch: %+v", device)
	}
	if device.ID != 0 {
		t.Fatalf("expected no id before insert, got %d", device.ID)
	}
}

func TestUpdateDevice_ApplyTo(t *testing.T) {
	payload := model.CreateDevice{
		Name: "PC-01", IP: "10.0.0.1", Department: "IT", Model: "Dell 3020",
		Year: 2023, Type: "Desktop", Status: "In-use", Notes: "spare", Factory: "Plant-A",
	}
	device := payload.TranslateToDB()
	device.ID = 7

	status := "Not in-use"
	notes := ""
	update := model.UpdateDevice{Status: &status, Notes: &notes}
	update.ApplyTo(&device)

	if device.Status != "Not in-use" {
		t.Fatalf("expected status to change, got %q", device.Status)
	}
	if device.Notes != "" {
		t.Fatalf("expected notes cleared via explicit empty string, got %q", device.Notes)
	}
	// Absent fields keep their prior value.
	if device.Name != "PC-01" || device.IP != "10.0.0.1" || device.Year != 2023 {
		t.Fatalf("unexpected field change: %+v", device)
	}
	if device.ID != 7 {
		t.Fatalf("expected id untouched, got %d", device.ID)
	}
}
