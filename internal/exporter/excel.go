package exporter

import (
	"fmt"

	"takeoff/internal/config"
	"takeoff/internal/model"

	"github.com/xuri/excelize/v2"
)

const (
	sheetDetailed     = "Detailed"
	sheetConsolidated = "Consolidated"
)

// ExcelExporter handles the Excel report generation
type ExcelExporter struct {
	// Stateless
}

// NewExcelExporter creates a new ExcelExporter
func NewExcelExporter() *ExcelExporter {
	return &ExcelExporter{}
}

// Export generates the Excel report
func (e *ExcelExporter) Export(report *model.Report, cfg *config.Config) error {
	outputFile := cfg.GetOutputPath()
	f := excelize.NewFile()
	styler, err := NewStyler(f)
	if err != nil {
		return err
	}

	if err := e.writeDetailed(f, styler, report.Detail); err != nil {
		return err
	}

	if err := e.writeConsolidated(f, styler, report.Consolidated); err != nil {
		return err
	}

	// Remove default "Sheet1"
	if idx, err := f.GetSheetIndex("Sheet1"); err == nil && idx != -1 {
		f.DeleteSheet("Sheet1")
	}

	if err := f.SaveAs(outputFile); err != nil {
		return err
	}

	return nil
}

// --- Detailed Sheet Logic ---

func (e *ExcelExporter) writeDetailed(f *excelize.File, s *Styler, rows []model.DetailRow) error {
	sheet := sheetDetailed
	f.NewSheet(sheet)

	headers := []string{"FILE", "SHEET", "DRAWING", "BLOCK"}
	for _, field := range model.Fields {
		headers = append(headers, field.String())
	}
	e.writeRow(f, sheet, 1, headers, s.HeaderStyle)

	f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})

	row := 2
	for i := range rows {
		r := &rows[i]

		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), r.SourceFile)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), r.Sheet)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), r.Title)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), r.Block)
		for j, field := range model.Fields {
			cell, _ := excelize.CoordinatesToCellName(5+j, row)
			// Quantity stays the original cell text; the numeric sum
			// lives in the Consolidated sheet only
			f.SetCellValue(sheet, cell, r.Value(field))
		}

		f.SetCellStyle(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("D%d", row), s.ProvenanceStyle)
		f.SetCellStyle(sheet, fmt.Sprintf("E%d", row), fmt.Sprintf("J%d", row), s.DefaultStyle)
		row++
	}

	f.SetColWidth(sheet, "A", "A", 28) // File
	f.SetColWidth(sheet, "B", "C", 24) // Sheet / Drawing
	f.SetColWidth(sheet, "H", "H", 50) // Description

	return nil
}

// --- Consolidated Sheet Logic ---

func (e *ExcelExporter) writeConsolidated(f *excelize.File, s *Styler, rows []model.ConsolidatedRow) error {
	sheet := sheetConsolidated
	f.NewSheet(sheet)

	headers := []string{"INTERNAL CODE", "CLIENT CODE", "DESCRIPTION", "QUANTITY", "UNIT", "DRAWINGS", "SOURCES"}
	e.writeRow(f, sheet, 1, headers, s.HeaderStyle)

	f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})

	row := 2
	for i := range rows {
		r := &rows[i]

		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), r.CodeInternal)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), r.CodeClient)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), r.Description)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), r.Quantity)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), r.Unit)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", row), r.Drawings)
		f.SetCellValue(sheet, fmt.Sprintf("G%d", row), r.Sources)

		f.SetCellStyle(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("C%d", row), s.DefaultStyle)
		f.SetCellStyle(sheet, fmt.Sprintf("D%d", row), fmt.Sprintf("D%d", row), s.QuantityStyle)
		f.SetCellStyle(sheet, fmt.Sprintf("E%d", row), fmt.Sprintf("E%d", row), s.DefaultStyle)
		f.SetCellStyle(sheet, fmt.Sprintf("F%d", row), fmt.Sprintf("G%d", row), s.ProvenanceStyle)
		row++
	}

	f.SetColWidth(sheet, "C", "C", 50) // Description
	f.SetColWidth(sheet, "F", "G", 40) // Drawings / Sources

	return nil
}

func (e *ExcelExporter) writeRow(f *excelize.File, sheet string, row int, values []string, style int) {
	for i, val := range values {
		cell, _ := excelize.CoordinatesToCellName(i+1, row)
		f.SetCellValue(sheet, cell, val)
		f.SetCellStyle(sheet, cell, cell, style)
	}
}
