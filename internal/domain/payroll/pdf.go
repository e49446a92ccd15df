package payroll

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// sheetColumns lays out the printable payroll sheet. Widths are tuned to fit
// A4 landscape with narrow margins.
var sheetColumns = []struct {
	header string
	width  float64
	left   bool
}{
	{"#", 8, false},
	{"Badge", 14, true},
	{"Name", 30, true},
	{"Salary", 16, false},
	{"Pres", 9, false},
	{"Pre", 8, false},
	{"Cur", 8, false},
	{"LE", 8, false},
	{"Tot", 9, false},
	{"T.Sal", 16, false},
	{"OT.R", 11, false},
	{"OT.A", 13, false},
	{"Alw", 12, false},
	{"Gross", 16, false},
	{"EOBI", 10, false},
	{"Tax", 10, false},
	{"Fine", 10, false},
	{"F/A", 11, false},
	{"Net", 16, false},
	{"Remarks", 28, true},
	{"B/C", 14, true},
}

// SheetPDF renders a computed report as the printable payroll sheet. All
// monetary values are treated as final; nothing is recomputed here.
func SheetPDF(report Report, subtitle, generatedBy string) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(4, 22, 4)
	pdf.SetAutoPageBreak(true, 10)

	pdf.SetHeaderFunc(func() {
		pdf.SetXY(4, 4)
		pdf.SetFont("Helvetica", "B", 12)
		pdf.CellFormat(120, 5, "Flash ERP - Payroll Sheet", "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 7)
		pdf.CellFormat(0, 5, fmt.Sprintf("Month: %s", report.Month), "", 1, "R", false, 0, "")
		pdf.SetX(4)
		pdf.SetTextColor(107, 114, 128)
		pdf.CellFormat(120, 4, subtitle, "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 4, fmt.Sprintf("Generated by: %s  %s", generatedBy, time.Now().Format("2006-01-02 15:04")), "", 1, "R", false, 0, "")
		pdf.SetTextColor(15, 23, 42)
		pdf.SetY(14)

		pdf.SetFont("Helvetica", "B", 6)
		pdf.SetFillColor(220, 220, 220)
		for _, col := range sheetColumns {
			pdf.CellFormat(col.width, 5, col.header, "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
	})
	pdf.SetFooterFunc(func() {
		pdf.SetY(-9)
		pdf.SetFont("Helvetica", "I", 6)
		pdf.CellFormat(0, 4, fmt.Sprintf("Page %d", pdf.PageNo()), "", 0, "C", false, 0, "")
	})

	pdf.AddPage()
	pdf.SetFont("Helvetica", "", 6)

	for i, row := range report.Rows {
		values := []string{
			strconv.Itoa(i + 1),
			truncate(row.BadgeNo, 12),
			truncate(row.Name, 22),
			fmtMoney(row.BaseSalary),
			strconv.Itoa(row.PresentsTotal),
			strconv.Itoa(row.PreDays),
			strconv.Itoa(row.CurDays),
			strconv.Itoa(row.LeaveEncashmentDays),
			strconv.Itoa(row.TotalDays),
			fmtMoney(row.TotalSalary),
			fmtMoney(row.OvertimeRate),
			fmtMoney(row.OvertimePay),
			fmtMoney(row.AllowOther),
			fmtMoney(row.GrossPay),
			fmtMoney(row.EOBI),
			fmtMoney(row.Tax),
			fmtMoney(row.FineDeduction),
			fmtMoney(row.FineAdv),
			fmtMoney(row.NetPay),
			truncate(deref(row.Remarks), 22),
			truncate(deref(row.BankCash), 12),
		}
		for j, col := range sheetColumns {
			align := "R"
			if col.left {
				align = "L"
			}
			if j == 0 {
				align = "C"
			}
			pdf.CellFormat(col.width, 4, values[j], "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.SetFont("Helvetica", "B", 6)
	var leading float64
	for _, col := range sheetColumns[:13] {
		leading += col.width
	}
	pdf.CellFormat(leading, 4.5, "TOTALS:", "1", 0, "R", false, 0, "")
	pdf.CellFormat(sheetColumns[13].width, 4.5, fmtMoney(report.Summary.TotalGross), "1", 0, "R", false, 0, "")
	var middle float64
	for _, col := range sheetColumns[14:18] {
		middle += col.width
	}
	pdf.CellFormat(middle, 4.5, "", "1", 0, "R", false, 0, "")
	pdf.CellFormat(sheetColumns[18].width, 4.5, fmtMoney(report.Summary.TotalNet), "1", 0, "R", false, 0, "")
	var trailing float64
	for _, col := range sheetColumns[19:] {
		trailing += col.width
	}
	pdf.CellFormat(trailing, 4.5, "", "1", 1, "R", false, 0, "")

	pdf.Ln(2)
	pdf.SetFont("Helvetica", "", 7)
	pdf.CellFormat(0, 4, fmt.Sprintf("Total Employees: %d  |  Total Gross: %s  |  Total Net: %s",
		report.Summary.Employees, fmtMoney(report.Summary.TotalGross), fmtMoney(report.Summary.TotalNet)), "", 1, "L", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func fmtMoney(v float64) string {
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', 0, 64)
}

// truncate shortens long text for fixed-width columns.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 2 {
		return s[:max]
	}
	return s[:max-2] + ".."
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
