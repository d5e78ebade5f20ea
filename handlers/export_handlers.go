package handlers

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"log"
	"strconv"

	"app/models"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
)

// HandleExportAnalysis renders the correlation analysis as a downloadable
// CSV or Excel file.
// GET /api/v1/analytics/correlations/export?format=csv|xlsx
func HandleExportAnalysis(c *fiber.Ctx) error {
	filters := filtersFromQuery(c)
	format := c.Query("format", "csv")

	result, err := newEngine().AnalyzeCorrelations(context.Background(), filters)
	if err != nil {
		return respondEngineError(c, err)
	}

	switch format {
	case "csv":
		return writeCSVExport(c, result)
	case "xlsx":
		return writeExcelExport(c, result)
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Unsupported export format: " + format})
	}
}

func writeCSVExport(c *fiber.Ctx, result *models.AnalysisResult) error {
	var buf bytes.Buffer
	// UTF-8 BOM so Excel opens the file correctly.
	buf.WriteString("\xEF\xBB\xBF")

	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"factor", "correlation", "significance", "sample_size", "description"}); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to write export"})
	}
	for _, corr := range result.Correlations {
		record := []string{
			corr.Factor,
			strconv.FormatFloat(corr.Correlation, 'f', 4, 64),
			corr.Significance,
			strconv.Itoa(corr.SampleSize),
			corr.Description,
		}
		if err := w.Write(record); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to write export"})
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to write export"})
	}

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="correlation_analysis.csv"`)
	return c.Send(buf.Bytes())
}

func writeExcelExport(c *fiber.Ctx, result *models.AnalysisResult) error {
	f := excelize.NewFile()
	defer f.Close()

	const correlationSheet = "Correlations"
	f.SetSheetName("Sheet1", correlationSheet)

	headers := []string{"Factor", "Correlation", "Significance", "Sample Size", "Description"}
	for col, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(correlationSheet, cell, header)
	}
	for i, corr := range result.Correlations {
		row := i + 2
		f.SetCellValue(correlationSheet, fmt.Sprintf("A%d", row), corr.Factor)
		f.SetCellValue(correlationSheet, fmt.Sprintf("B%d", row), corr.Correlation)
		f.SetCellValue(correlationSheet, fmt.Sprintf("C%d", row), corr.Significance)
		f.SetCellValue(correlationSheet, fmt.Sprintf("D%d", row), corr.SampleSize)
		f.SetCellValue(correlationSheet, fmt.Sprintf("E%d", row), corr.Description)
	}

	const comparisonSheet = "Comparisons"
	if _, err := f.NewSheet(comparisonSheet); err == nil {
		compHeaders := []string{"Date", "Current", "Previous Week", "Previous Year"}
		for col, header := range compHeaders {
			cell, _ := excelize.CoordinatesToCellName(col+1, 1)
			f.SetCellValue(comparisonSheet, cell, header)
		}
		for i, point := range result.ComparisonData {
			row := i + 2
			f.SetCellValue(comparisonSheet, fmt.Sprintf("A%d", row), point.Date.Format("2006-01-02"))
			f.SetCellValue(comparisonSheet, fmt.Sprintf("B%d", row), point.Current)
			f.SetCellValue(comparisonSheet, fmt.Sprintf("C%d", row), point.PreviousDay)
			f.SetCellValue(comparisonSheet, fmt.Sprintf("D%d", row), point.PreviousYear)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		log.Printf("❌ [EXPORT] Failed to build xlsx: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to write export"})
	}

	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="correlation_analysis.xlsx"`)
	return c.Send(buf.Bytes())
}
