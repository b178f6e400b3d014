// Package excel maps device records to and from the fixed 9-column
// spreadsheet layout used by bulk import and export.
package excel

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ttv9934/device-management-app/model/database"
)

const (
	SheetName   = "Devices"
	FileName    = "devices.xlsx"
	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// Header is the canonical column order. Column position is
// authoritative on import; header names are never validated.
var Header = []string{"Name", "IP", "Department", "Model", "Year", "Type", "Status", "Notes", "Factory"}

// ReadDevices parses the first sheet of an xlsx workbook into device
// records. The first row is skipped as the header and fully empty rows
// are ignored.
func ReadDevices(r io.Reader) ([]database.Device, error) {
	workbook, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read workbook: %w", err)
	}
	defer workbook.Close()

	sheet := workbook.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("workbook has no sheets")
	}
	rows, err := workbook.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}

	devices := make([]database.Device, 0, len(rows))
	for i, row := range rows {
		if i == 0 || emptyRow(row) {
			continue
		}
		year, _ := strconv.Atoi(cell(row, 4))
		devices = append(devices, database.Device{
			Name:       cell(row, 0),
			IP:         cell(row, 1),
			Department: cell(row, 2),
			Model:      cell(row, 3),
			Year:       year,
			Type:       cell(row, 5),
			Status:     cell(row, 6),
			Notes:      cell(row, 7),
			Factory:    cell(row, 8),
		})
	}
	return devices, nil
}

// WriteDevices streams the records as an xlsx workbook: the header row
// followed by one row per device, columns in Header order.
func WriteDevices(w io.Writer, devices []database.Device) error {
	workbook := excelize.NewFile()
	defer workbook.Close()

	if err := workbook.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	header := make([]interface{}, len(Header))
	for i, h := range Header {
		header[i] = h
	}
	if err := workbook.SetSheetRow(SheetName, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header row: %w", err)
	}

	for i, d := range devices {
		start, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("failed to address row %d: %w", i+2, err)
		}
		row := []interface{}{d.Name, d.IP, d.Department, d.Model, d.Year, d.Type, d.Status, d.Notes, d.Factory}
		if err := workbook.SetSheetRow(SheetName, start, &row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	if _, err := workbook.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func cell(row []string, idx int) string {
	if idx < len(row) {
		return strings.TrimSpace(row[idx])
	}
	return ""
}

func emptyRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
