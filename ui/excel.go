package ui

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"fatalview/internal/aggregate"
)

// handleExport downloads the current aggregation as an Excel workbook.
func (s *Server) handleExport(c *gin.Context) {
	q, _, err := s.parseAggregateQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	result := aggregate.Aggregate(s.table, q.dim, q.mode, q.params)

	workbook, err := buildWorkbook(result)
	if err != nil {
		logger.Error("export workbook build failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "export failed"})
		return
	}
	defer workbook.Close()

	filename := fmt.Sprintf("fatalview_%s.xlsx", q.dim.Key())
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := workbook.Write(c.Writer); err != nil {
		logger.Error("export workbook write failed: %v", err)
	}
}

// buildWorkbook lays the aggregation out on Sheet1 with a header row.
func buildWorkbook(result aggregate.Result) (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := "Sheet1"

	headers := []string{"Category", "Total Cases", "Fatal Cases", "Fatal %"}
	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return nil, err
		}
	}

	for rowIdx, row := range result.Rows {
		values := []interface{}{row.Category, row.TotalCases, row.FatalCases, row.FatalPercent}
		for colIdx, value := range values {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, err
			}
		}
	}

	return f, nil
}
