package services

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// SourceTable is the parsed form of an uploaded team list. Headers keep the
// column order of the file; each row maps header -> raw cell value.
//
// Header uniqueness is assumed, not enforced: when a file repeats a header,
// the rightmost column wins on lookup. The table only lives for the duration
// of one import session and is discarded after projection.
type SourceTable struct {
	FileName string              `json:"file_name"`
	Headers  []string            `json:"headers"`
	Rows     []map[string]string `json:"rows"`
}

// ParseUpload parses an uploaded team list into a SourceTable, dispatching on
// the file extension. Only .csv and .xlsx are accepted.
func ParseUpload(file io.Reader, fileName string) (*SourceTable, error) {
	lowerName := strings.ToLower(fileName)
	switch {
	case strings.HasSuffix(lowerName, ".csv"):
		return ParseCSV(file, fileName)
	case strings.HasSuffix(lowerName, ".xlsx"):
		return ParseExcel(file, fileName)
	default:
		return nil, fmt.Errorf("unsupported file format: must be .csv or .xlsx")
	}
}

// ParseCSV reads a CSV stream treating the first row as headers.
func ParseCSV(file io.Reader, fileName string) (*SourceTable, error) {
	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	allRows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV: %w", err)
	}

	return tableFromRows(allRows, fileName)
}

// ParseExcel reads the first sheet of an xlsx file treating the first row as headers.
func ParseExcel(file io.Reader, fileName string) (*SourceTable, error) {
	f, err := excelize.OpenReader(file)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet: %w", err)
	}

	return tableFromRows(rows, fileName)
}

func tableFromRows(allRows [][]string, fileName string) (*SourceTable, error) {
	if len(allRows) < 2 {
		return nil, fmt.Errorf("file must contain a header row and at least one data row")
	}

	headers := allRows[0]
	table := &SourceTable{
		FileName: fileName,
		Headers:  headers,
		Rows:     make([]map[string]string, 0, len(allRows)-1),
	}

	for _, row := range allRows[1:] {
		rowData := make(map[string]string, len(headers))
		for colIdx, header := range headers {
			value := ""
			if colIdx < len(row) {
				value = strings.TrimSpace(row[colIdx])
			}
			// Duplicate headers: later columns overwrite earlier ones.
			rowData[header] = value
		}
		table.Rows = append(table.Rows, rowData)
	}

	return table, nil
}

// HasHeader reports whether the table contains the given column header.
func (t *SourceTable) HasHeader(header string) bool {
	for _, h := range t.Headers {
		if h == header {
			return true
		}
	}
	return false
}
