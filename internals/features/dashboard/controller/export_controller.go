package controller

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"

	helper "thunai_backend/internals/helpers"
)

// Rendered reports are generated on demand and streamed; nothing is persisted.

// GET /api/dashboard/export/excel
func (dc *DashboardController) ExportExcel(c *fiber.Ctx) error {
	rows, err := dc.reportRows()
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to build report")
	}

	f := excelize.NewFile()
	sheet := "Report"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create sheet")
	}

	f.SetCellValue(sheet, "A1", "Panchayat")
	f.SetCellValue(sheet, "B1", "Households")
	f.SetCellValue(sheet, "C1", "Members")
	for i, r := range rows {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", i+2), r.Panchayat)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", i+2), r.Households)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", i+2), r.Members)
	}

	filename := fmt.Sprintf("thunai-report-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%s", filename))
	if err := f.Write(c.Response().BodyWriter()); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to write workbook")
	}
	return nil
}

// GET /api/dashboard/export/pdf
func (dc *DashboardController) ExportPDF(c *fiber.Ctx) error {
	rows, err := dc.reportRows()
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to build report")
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 10, "THUNAI Survey Report")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(90, 8, "Panchayat", "1", 0, "L", false, 0, "")
	pdf.CellFormat(45, 8, "Households", "1", 0, "R", false, 0, "")
	pdf.CellFormat(45, 8, "Members", "1", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for _, r := range rows {
		pdf.CellFormat(90, 8, r.Panchayat, "1", 0, "L", false, 0, "")
		pdf.CellFormat(45, 8, fmt.Sprintf("%d", r.Households), "1", 0, "R", false, 0, "")
		pdf.CellFormat(45, 8, fmt.Sprintf("%d", r.Members), "1", 1, "R", false, 0, "")
	}

	filename := fmt.Sprintf("thunai-report-%s.pdf", time.Now().Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%s", filename))
	if err := pdf.Output(c.Response().BodyWriter()); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to write pdf")
	}
	return nil
}
