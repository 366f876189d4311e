// Package export writes the roster in formats meant for other tools.
// Exports are one-way; only the JSON store file is ever read back.
package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/jacksmith/roster/internal/model"
	"github.com/xuri/excelize/v2"
)

// Format is an export file format.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatXLSX Format = "xlsx"
)

// Formats lists the supported formats.
var Formats = []Format{FormatYAML, FormatJSON, FormatXLSX}

// SheetName is the worksheet used by XLSX exports.
const SheetName = "Employees"

// ParseFormat resolves a format name. Lookup is case-insensitive.
func ParseFormat(name string) (Format, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, f := range Formats {
		if string(f) == name {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown export format %q (want yaml, json or xlsx)", name)
}

// Binary reports whether the format should not be written to a terminal.
func (f Format) Binary() bool {
	return f == FormatXLSX
}

// Write renders employees in format f.
func Write(w io.Writer, f Format, employees []model.Employee) error {
	switch f {
	case FormatYAML:
		return WriteYAML(w, employees)
	case FormatJSON:
		return WriteJSON(w, employees)
	case FormatXLSX:
		return WriteXLSX(w, employees)
	default:
		return fmt.Errorf("unknown export format %q", string(f))
	}
}

// WriteYAML writes employees as a YAML sequence.
func WriteYAML(w io.Writer, employees []model.Employee) error {
	data, err := model.EncodeYAML(employees)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// WriteJSON writes employees in the store file layout.
func WriteJSON(w io.Writer, employees []model.Employee) error {
	data, err := model.EncodeEmployees(employees)
	if err != nil {
		return fmt.Errorf("failed to encode employees: %w", err)
	}
	_, err = w.Write(data)
	return err
}

// WriteXLSX writes employees to a single-sheet workbook with a bold,
// frozen, filterable header row.
func WriteXLSX(w io.Writer, employees []model.Employee) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#DDEBF7"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	header := make([]interface{}, len(model.AllFields))
	for i, field := range model.AllFields {
		header[i] = field.Label()
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	lastCol, err := excelize.ColumnNumberToName(len(model.AllFields))
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(SheetName, "A1", lastCol+"1", headerStyle); err != nil {
		return fmt.Errorf("failed to style header: %w", err)
	}

	for i, e := range employees {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{e.ID, e.Name, e.Position, e.Department, e.Salary, e.Phone, e.Email}
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return fmt.Errorf("failed to write employee %s: %w", e.ID, err)
		}
	}

	if err := setColumnWidths(f, employees); err != nil {
		return err
	}

	if err := f.SetPanes(SheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return fmt.Errorf("failed to freeze header: %w", err)
	}

	if len(employees) > 0 {
		filterRange := fmt.Sprintf("A1:%s%d", lastCol, len(employees)+1)
		if err := f.AutoFilter(SheetName, filterRange, []excelize.AutoFilterOptions{}); err != nil {
			return fmt.Errorf("failed to add filter: %w", err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

// setColumnWidths sizes each column to its widest value, within limits.
func setColumnWidths(f *excelize.File, employees []model.Employee) error {
	const minWidth, maxWidth = 8, 40

	for i, field := range model.AllFields {
		width := len(field.Label())
		for j := range employees {
			if n := len(employees[j].Value(field)); n > width {
				width = n
			}
		}
		width = max(minWidth, min(maxWidth, width+2))

		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(SheetName, col, col, float64(width)); err != nil {
			return fmt.Errorf("failed to set width of column %s: %w", col, err)
		}
	}
	return nil
}
