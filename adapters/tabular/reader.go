package tabular

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"time"

	"fatalview/internal"
	"fatalview/internal/errors"

	"github.com/xuri/excelize/v2"
)

var logger = internal.NewLogger("DataReader")

// DataReader handles reading Excel and CSV source files
type DataReader struct {
	source   string
	filePath string
	fileType string // "xlsx" or "csv"
}

// NewDataReader creates a reader for one named source file. The file
// type is chosen by extension; anything that is not .xlsx is parsed as
// CSV.
func NewDataReader(source, filePath string) *DataReader {
	ext := strings.ToLower(filepath.Ext(filePath))
	fileType := "csv"
	if ext == ".xlsx" || ext == ".xls" {
		fileType = "xlsx"
	}
	return &DataReader{source: source, filePath: filePath, fileType: fileType}
}

// ReadData reads the source file into structured form. Required lists
// the contract columns; a missing file, an unparsable file, or a header
// row without one of the required columns is a fatal parse error.
func (r *DataReader) ReadData(required []string) (*TableData, error) {
	logger.Debug("reading %s source %s: %s", r.fileType, r.source, r.filePath)

	if _, err := os.Stat(r.filePath); os.IsNotExist(err) {
		return nil, errors.ParseError(r.source, err)
	}

	var (
		data *TableData
		err  error
	)
	switch r.fileType {
	case "csv":
		data, err = r.readCSVData()
	default:
		data, err = r.readExcelData()
	}
	if err != nil {
		return nil, err
	}

	for _, column := range required {
		if !data.HasColumn(column) {
			return nil, errors.SchemaMismatch(r.source, column)
		}
	}
	return data, nil
}

// readExcelData reads Sheet1 of an Excel workbook into structured form
func (r *DataReader) readExcelData() (*TableData, error) {
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, errors.ParseError(r.source, err)
	}
	defer f.Close()

	readStart := time.Now()
	rows, err := f.GetRows("Sheet1")
	if err != nil {
		return nil, errors.ParseError(r.source, err)
	}
	logger.Debug("%s Sheet1 read in %.2fms (%d rows)",
		r.source, float64(time.Since(readStart).Nanoseconds())/1e6, len(rows))

	if len(rows) < 2 {
		return nil, errors.ParseError(r.source, errors.New(errors.CodeParseError, "file must have a header row and at least one data row"))
	}

	return r.processRows(rows), nil
}

// readCSVData reads a CSV file into structured form
func (r *DataReader) readCSVData() (*TableData, error) {
	file, err := os.Open(r.filePath)
	if err != nil {
		return nil, errors.ParseError(r.source, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	// Source files occasionally have ragged rows; tolerate them and let
	// the merge treat short rows as null cells.
	reader.FieldsPerRecord = -1

	readStart := time.Now()
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, errors.ParseError(r.source, err)
	}
	logger.Debug("%s CSV read in %.2fms (%d rows)",
		r.source, float64(time.Since(readStart).Nanoseconds())/1e6, len(rows))

	if len(rows) < 2 {
		return nil, errors.ParseError(r.source, errors.New(errors.CodeParseError, "file must have a header row and at least one data row"))
	}

	return r.processRows(rows), nil
}

// processRows converts raw string rows into TableData form
func (r *DataReader) processRows(rows [][]string) *TableData {
	headerRow := rows[0]
	headers := make([]string, len(headerRow))
	for i, header := range headerRow {
		headers[i] = strings.TrimSpace(header)
	}

	var dataRows []RowData
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		rowData := make(RowData)

		for j, cell := range row {
			if j < len(headers) {
				rowData[headers[j]] = strings.TrimSpace(cell)
			}
		}

		dataRows = append(dataRows, rowData)
	}

	logger.Info("%s source processed (%d columns, %d rows)",
		r.source, len(headers), len(dataRows))

	return &TableData{
		Headers: headers,
		Rows:    dataRows,
	}
}
