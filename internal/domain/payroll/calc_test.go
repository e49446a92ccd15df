package payroll

import (
	"testing"
	"time"
)

func TestCalculateRangeWorkedExample(t *testing.T) {
	// 31-day January, 31000 salary: day rate 1000. 22 worked days plus 2
	// encashed leave days price at 24000 before allowances and deductions.
	in := CalcInput{
		BaseSalary:  31000,
		WorkingDays: 31,
		Attendance: AttendanceTotals{
			PresentDays: 20,
			LateDays:    2,
		},
		Sheet: SheetEntry{
			LeaveEncashmentDays: 2,
			AllowOther:          500,
			EOBI:                250,
			Tax:                 250,
		},
	}

	res := Calculate(VariantRange, in)
	if res.DayRate != 1000 {
		t.Fatalf("expected day rate 1000, got %v", res.DayRate)
	}
	if res.TotalDays != 24 {
		t.Fatalf("expected 24 total days, got %d", res.TotalDays)
	}
	if res.TotalSalary != 24000 {
		t.Fatalf("expected total salary 24000, got %v", res.TotalSalary)
	}
	if res.GrossPay != 24500 {
		t.Fatalf("expected gross 24500, got %v", res.GrossPay)
	}
	if res.NetPay != 24000 {
		t.Fatalf("expected net 24000, got %v", res.NetPay)
	}
}

func TestCalculateRangeFineAdv(t *testing.T) {
	in := CalcInput{
		BaseSalary:  30000,
		WorkingDays: 30,
		Attendance: AttendanceTotals{
			PresentDays:   10,
			FineDeduction: 300,
			LateDeduction: 100,
		},
		Sheet:   SheetEntry{FineAdvExtra: 200},
		Advance: 500,
	}

	res := Calculate(VariantRange, in)
	if res.FineAdv != 1000 {
		t.Fatalf("expected fine/adv 1000, got %v", res.FineAdv)
	}
	wantNet := res.GrossPay - 1000 - 100
	if res.NetPay != wantNet {
		t.Fatalf("expected net %v, got %v", wantNet, res.NetPay)
	}
}

func TestCalculateMonthlyFlatSalary(t *testing.T) {
	in := CalcInput{
		BaseSalary:  50000,
		Allowances:  2000,
		WorkingDays: 31,
		Attendance: AttendanceTotals{
			PresentDays:     18,
			OvertimeRate:    100,
			OvertimePay:     1500,
			LateDeduction:   400,
			UnpaidLeaveDays: 2,
		},
		Advance: 3000,
	}

	res := Calculate(VariantMonthly, in)
	if res.GrossPay != 53600 {
		t.Fatalf("expected gross 53600, got %v", res.GrossPay)
	}
	if res.UnpaidLeaveDeduction != 2000 {
		t.Fatalf("expected unpaid leave deduction 2000, got %v", res.UnpaidLeaveDeduction)
	}
	if res.NetPay != 48200 {
		t.Fatalf("expected net 48200, got %v", res.NetPay)
	}
}

func TestCalculateZeroWorkingDays(t *testing.T) {
	res := Calculate(VariantRange, CalcInput{BaseSalary: 30000})
	if res.DayRate != 0 || res.TotalSalary != 0 {
		t.Fatalf("expected zero day rate with zero working days, got %+v", res)
	}
}

func TestClampDays(t *testing.T) {
	neg := -3
	five := 5
	if clampDays(nil) != 0 {
		t.Fatal("expected nil override to clamp to 0")
	}
	if clampDays(&neg) != 0 {
		t.Fatal("expected negative override to clamp to 0")
	}
	if clampDays(&five) != 5 {
		t.Fatal("expected positive override to pass through")
	}
}

func TestEligible(t *testing.T) {
	end := time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC)

	if !Eligible(Employee{}, end) {
		t.Fatal("expected nil hire date to be eligible")
	}

	sameDay := time.Date(2024, time.January, 31, 18, 30, 0, 0, time.UTC)
	if !Eligible(Employee{CreatedAt: &sameDay}, end) {
		t.Fatal("expected hire on the period's last day to be eligible")
	}

	after := time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)
	if Eligible(Employee{CreatedAt: &after}, end) {
		t.Fatal("expected hire after the period end to be excluded")
	}
}
