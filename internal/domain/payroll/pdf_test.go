package payroll

import (
	"bytes"
	"testing"
)

func TestSheetPDFOutput(t *testing.T) {
	report := Report{
		Month: "2024-01",
		Summary: ReportSummary{
			Month:      "2024-01",
			Employees:  2,
			TotalGross: 80000,
			TotalNet:   75000,
		},
		Rows: []ReportRow{
			{EmployeeID: "E-1", BadgeNo: "E-1", Name: "Alpha", BaseSalary: 50000, GrossPay: 50000, NetPay: 47000},
			{EmployeeID: "E-2", BadgeNo: "E-2", Name: "Beta", BaseSalary: 30000, GrossPay: 30000, NetPay: 28000},
		},
	}

	out, err := SheetPDF(report, "Calendar month", "tester")
	if err != nil {
		t.Fatalf("pdf error: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Fatal("expected a PDF header")
	}
}

func TestSheetPDFEmptyReport(t *testing.T) {
	out, err := SheetPDF(Report{Month: "2024-01"}, "", "tester")
	if err != nil {
		t.Fatalf("pdf error: %v", err)
	}
	if len(out) == 0 {
		t.Fatal("expected non-empty output for an empty report")
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Fatalf("expected unchanged, got %q", got)
	}
	if got := truncate("a very long employee name", 10); got != "a very l.." {
		t.Fatalf("unexpected truncation: %q", got)
	}
}

func TestFmtMoney(t *testing.T) {
	if got := fmtMoney(0); got != "0" {
		t.Fatalf("expected 0, got %q", got)
	}
	if got := fmtMoney(24500); got != "24500" {
		t.Fatalf("expected 24500, got %q", got)
	}
	if got := fmtMoney(1234.6); got != "1235" {
		t.Fatalf("expected rounded 1235, got %q", got)
	}
}
