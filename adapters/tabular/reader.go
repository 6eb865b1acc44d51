// Package tabular reads the delimited and spreadsheet source tables into
// in-memory structures and parses them into typed domain records.
package tabular

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"

	"artreport/internal/errors"

	"github.com/xuri/excelize/v2"
)

// DataReader handles reading CSV and Excel source files
type DataReader struct {
	filePath string
	fileType string // "csv" or "xlsx"
}

// NewDataReader creates a reader that handles both CSV and Excel files,
// keyed on the file extension.
func NewDataReader(filePath string) *DataReader {
	ext := strings.ToLower(filepath.Ext(filePath))
	fileType := "csv"
	if ext == ".xlsx" || ext == ".xlsm" {
		fileType = "xlsx"
	}
	return &DataReader{filePath: filePath, fileType: fileType}
}

// Read parses the source into a Table. It fails with a LoadError when the
// file is missing, unreadable, or has no data rows.
func (r *DataReader) Read() (*Table, error) {
	if _, err := os.Stat(r.filePath); os.IsNotExist(err) {
		return nil, errors.LoadErrorf("source file not found: %s", r.filePath)
	}

	switch r.fileType {
	case "xlsx":
		return r.readExcel()
	default:
		return r.readCSV()
	}
}

func (r *DataReader) readCSV() (*Table, error) {
	file, err := os.Open(r.filePath)
	if err != nil {
		return nil, errors.Wrapf(errors.LoadError(err.Error()), "failed to open CSV file %s", r.filePath)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // ragged rows are padded by processRows
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrapf(errors.LoadError(err.Error()), "failed to read CSV file %s", r.filePath)
	}

	if len(rows) < 2 {
		return nil, errors.LoadErrorf("%s must have a header row and at least one data row", r.filePath)
	}

	return processRows(rows), nil
}

func (r *DataReader) readExcel() (*Table, error) {
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, errors.Wrapf(errors.LoadError(err.Error()), "failed to open Excel file %s", r.filePath)
	}
	defer f.Close()

	// Always read the first sheet.
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.LoadErrorf("%s has no sheets", r.filePath)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, errors.Wrapf(errors.LoadError(err.Error()), "failed to read sheet %s", sheets[0])
	}

	if len(rows) < 2 {
		return nil, errors.LoadErrorf("%s must have a header row and at least one data row", r.filePath)
	}

	return processRows(rows), nil
}

// processRows converts raw string rows into Table form. Cells are trimmed;
// short rows leave trailing columns absent from the row map.
func processRows(rows [][]string) *Table {
	headerRow := rows[0]
	headers := make([]string, len(headerRow))
	for i, header := range headerRow {
		headers[i] = strings.TrimSpace(header)
	}

	dataRows := make([]Row, 0, len(rows)-1)
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		rowData := make(Row, len(headers))
		for j, cell := range row {
			if j < len(headers) {
				rowData[headers[j]] = strings.TrimSpace(cell)
			}
		}
		dataRows = append(dataRows, rowData)
	}

	return &Table{
		Headers: headers,
		Rows:    dataRows,
	}
}
