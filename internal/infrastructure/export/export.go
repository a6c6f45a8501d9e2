// Package export renders printable artifacts: money slip PDFs for
// handing to renters and report workbooks for the bookkeeping side.
package export

import (
	"bytes"
	"fmt"
	"sort"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"

	"github.com/anmds2025/roomify/internal/core/types"
	"github.com/anmds2025/roomify/internal/domain/billing"
	"github.com/anmds2025/roomify/internal/domain/documents/moneyslip"
	"github.com/anmds2025/roomify/internal/domain/reports"
)

func vnd(m types.Money) string {
	return m.StringFixed(0)
}

// BuildSlipPDF renders a money slip as a one-page PDF.
func BuildSlipPDF(slip *moneyslip.MoneySlip) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Arial", "", 12)
	pdf.AddPage()

	pdf.Cell(0, 8, fmt.Sprintf("Money Slip %s", slip.Number))
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Room: %s", slip.RoomCode))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Renter: %s", slip.RenterName))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Period: %s", slip.Period.String()))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", slip.Date.Format("2006-01-02")))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Electricity: %s -> %s", slip.OldElectricity.String(), slip.NewElectricity.String()))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Water: %s -> %s", slip.OldWater.String(), slip.NewWater.String()))
	pdf.Ln(8)

	// Charges table
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(20, 6, "#", "1", 0, "C", false, 0, "")
	pdf.CellFormat(80, 6, "Charge", "1", 0, "C", false, 0, "")
	pdf.CellFormat(50, 6, "Amount (VND)", "1", 0, "C", false, 0, "")
	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 10)
	for _, line := range slip.Lines {
		pdf.CellFormat(20, 6, fmt.Sprintf("%d", line.LineNo), "1", 0, "C", false, 0, "")
		pdf.CellFormat(80, 6, string(line.Category), "1", 0, "L", false, 0, "")
		pdf.CellFormat(50, 6, vnd(line.Amount), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	pdf.Ln(4)
	pdf.SetFont("Arial", "B", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Total: %s VND", vnd(slip.TotalAmount)))
	pdf.Ln(5)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Paid: %s VND", vnd(slip.PaidAmount)))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Outstanding: %s VND", vnd(slip.Outstanding())))
	pdf.Ln(8)
	pdf.SetFont("Arial", "I", 8)
	pdf.Cell(0, 6, fmt.Sprintf("Generated: %s", time.Now().Format(time.RFC3339)))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// BuildSummaryXLSX renders a period summary plus the monthly series as
// a two-sheet workbook.
func BuildSummaryXLSX(summary *billing.PeriodSummary, series *reports.MonthlySeriesReport) ([]byte, error) {
	f := excelize.NewFile()
	summarySheet := "summary"
	monthsSheet := "months"
	f.SetSheetName("Sheet1", summarySheet)
	if _, err := f.NewSheet(monthsSheet); err != nil {
		return nil, err
	}

	_ = f.SetCellValue(summarySheet, "A1", "Period Summary")
	_ = f.SetCellValue(summarySheet, "A3", "Period")
	_ = f.SetCellValue(summarySheet, "B3", summary.Period)
	_ = f.SetCellValue(summarySheet, "A4", "Slips")
	_ = f.SetCellValue(summarySheet, "B4", summary.SlipCount)
	_ = f.SetCellValue(summarySheet, "A5", "Total Revenue (VND)")
	_ = f.SetCellValue(summarySheet, "B5", vnd(summary.TotalRevenue))
	_ = f.SetCellValue(summarySheet, "A6", "Total Expense (VND)")
	_ = f.SetCellValue(summarySheet, "B6", vnd(summary.TotalExpense))
	_ = f.SetCellValue(summarySheet, "A7", "Profit (VND)")
	_ = f.SetCellValue(summarySheet, "B7", vnd(summary.Profit))

	_ = f.SetCellValue(summarySheet, "A9", "Revenue by Category")
	categories := make([]string, 0, len(summary.RevenueByCategory))
	for category := range summary.RevenueByCategory {
		categories = append(categories, string(category))
	}
	sort.Strings(categories)
	row := 10
	for _, category := range categories {
		_ = f.SetCellValue(summarySheet, fmt.Sprintf("A%d", row), category)
		_ = f.SetCellValue(summarySheet, fmt.Sprintf("B%d", row), vnd(summary.RevenueByCategory[billing.Category(category)]))
		row++
	}

	_ = f.SetCellValue(monthsSheet, "A1", "Period")
	_ = f.SetCellValue(monthsSheet, "B1", "Revenue (VND)")
	_ = f.SetCellValue(monthsSheet, "C1", "Expense (VND)")
	_ = f.SetCellValue(monthsSheet, "D1", "Profit (VND)")
	for i, month := range series.Months {
		r := i + 2
		_ = f.SetCellValue(monthsSheet, fmt.Sprintf("A%d", r), month.Period.String())
		_ = f.SetCellValue(monthsSheet, fmt.Sprintf("B%d", r), vnd(month.Revenue))
		_ = f.SetCellValue(monthsSheet, fmt.Sprintf("C%d", r), vnd(month.Expense))
		_ = f.SetCellValue(monthsSheet, fmt.Sprintf("D%d", r), vnd(month.Profit))
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
