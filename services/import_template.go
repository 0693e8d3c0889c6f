package services

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// templateColumns are the suggested columns for a team import file. The
// mapping step accepts any headers, so these are a convenience, not a schema.
var templateColumns = []struct {
	Label    string
	Required bool
	Width    float64
}{
	{Label: "Team Name", Required: true, Width: 30},
	{Label: "Contact Name", Width: 25},
	{Label: "Contact Email", Width: 30},
	{Label: "Contact Phone", Width: 18},
}

// GenerateImportTemplate creates a blank .xlsx template for the team import.
func GenerateImportTemplate() ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Teams"
	defaultSheet := f.GetSheetName(0)
	f.SetSheetName(defaultSheet, sheetName)

	requiredHeaderStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#1D4ED8"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    thinBorders(),
	})
	optionalHeaderStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#6B7280"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    thinBorders(),
	})

	for i, colDef := range templateColumns {
		col, _ := excelize.ColumnNumberToName(i + 1)
		cell := col + "1"

		header := colDef.Label
		if colDef.Required {
			header += " *"
			f.SetCellStyle(sheetName, cell, cell, requiredHeaderStyle)
		} else {
			f.SetCellStyle(sheetName, cell, cell, optionalHeaderStyle)
		}
		f.SetCellValue(sheetName, cell, header)
		f.SetColWidth(sheetName, col, col, colDef.Width)
	}

	// Freeze the header row
	f.SetPanes(sheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write import template: %w", err)
	}
	return buf.Bytes(), nil
}

// GenerateImportErrorReport creates a downloadable .xlsx report listing the
// rows that failed during a commit.
func GenerateImportErrorReport(failed []RowResult) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Errors"
	defaultSheet := f.GetSheetName(0)
	f.SetSheetName(defaultSheet, sheet)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#DC2626"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
		Border:    thinBorders(),
	})

	f.SetCellValue(sheet, "A1", "Row #")
	f.SetCellValue(sheet, "B1", "Team Name")
	f.SetCellValue(sheet, "C1", "Error")
	f.SetCellStyle(sheet, "A1", "C1", headerStyle)
	f.SetColWidth(sheet, "A", "A", 8)
	f.SetColWidth(sheet, "B", "B", 30)
	f.SetColWidth(sheet, "C", "C", 55)

	for i, r := range failed {
		row := fmt.Sprintf("%d", i+2)
		// Report rows as positions in the uploaded file (1-indexed + header).
		f.SetCellValue(sheet, "A"+row, r.Index+2)
		f.SetCellValue(sheet, "B"+row, r.TeamName)
		f.SetCellValue(sheet, "C"+row, r.Err)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write error report: %w", err)
	}
	return buf.Bytes(), nil
}

func thinBorders() []excelize.Border {
	return []excelize.Border{
		{Type: "left", Color: "#D1D5DB", Style: 1},
		{Type: "right", Color: "#D1D5DB", Style: 1},
		{Type: "top", Color: "#D1D5DB", Style: 1},
		{Type: "bottom", Color: "#D1D5DB", Style: 1},
	}
}
