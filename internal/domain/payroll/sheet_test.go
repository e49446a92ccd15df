package payroll

import (
	"errors"
	"testing"
)

func TestValidateSheetBatch(t *testing.T) {
	start, end, _ := ResolveRange("2024-01-01", "2024-01-31")
	five := 5
	entries := []SheetEntryInput{
		{EmployeeDBID: 1, FromDate: "2024-01-01", ToDate: "2024-01-31", PreDaysOverride: &five, AllowOther: 500},
		{EmployeeDBID: 2, FromDate: "2024-01-01", ToDate: "2024-01-31", Tax: 100},
	}

	validated, err := ValidateSheetBatch(start, end, entries)
	if err != nil {
		t.Fatalf("validate error: %v", err)
	}
	if len(validated) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(validated))
	}
	if !validated[0].FromDate.Equal(start) || !validated[0].ToDate.Equal(end) {
		t.Fatalf("expected normalized period, got %+v", validated[0])
	}
	if validated[0].PreDaysOverride == nil || *validated[0].PreDaysOverride != 5 {
		t.Fatalf("expected override carried through, got %+v", validated[0])
	}
}

func TestValidateSheetBatchPeriodMismatch(t *testing.T) {
	start, end, _ := ResolveRange("2024-01-01", "2024-01-31")
	entries := []SheetEntryInput{
		{EmployeeDBID: 1, FromDate: "2024-01-01", ToDate: "2024-01-31"},
		{EmployeeDBID: 2, FromDate: "2024-02-01", ToDate: "2024-02-29"},
	}

	if _, err := ValidateSheetBatch(start, end, entries); !errors.Is(err, ErrPeriodMismatch) {
		t.Fatalf("expected ErrPeriodMismatch, got %v", err)
	}
}

func TestValidateSheetBatchBadDate(t *testing.T) {
	start, end, _ := ResolveRange("2024-01-01", "2024-01-31")
	entries := []SheetEntryInput{
		{EmployeeDBID: 1, FromDate: "not-a-date", ToDate: "2024-01-31"},
	}

	if _, err := ValidateSheetBatch(start, end, entries); !errors.Is(err, ErrInvalidPeriod) {
		t.Fatalf("expected ErrInvalidPeriod, got %v", err)
	}
}

func TestValidateSheetBatchEmpty(t *testing.T) {
	start, end, _ := ResolveRange("2024-01-01", "2024-01-31")
	validated, err := ValidateSheetBatch(start, end, nil)
	if err != nil {
		t.Fatalf("validate error: %v", err)
	}
	if len(validated) != 0 {
		t.Fatalf("expected empty result, got %d", len(validated))
	}
}
