package payroll

import (
	"testing"
	"time"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAggregateMonthCounts(t *testing.T) {
	records := []AttendanceDay{
		{Date: day(2024, 1, 1), Status: "present"},
		{Date: day(2024, 1, 2), Status: "Present "},
		{Date: day(2024, 1, 3), Status: "late"},
		{Date: day(2024, 1, 4), Status: "absent"},
		{Date: day(2024, 1, 5), Status: "leave", LeaveType: "paid"},
		{Date: day(2024, 1, 6), Status: "leave", LeaveType: "unpaid"},
		{Date: day(2024, 1, 7), Status: "leave"},
	}

	totals := AggregateMonth(records)
	if totals.PresentDays != 2 || totals.LateDays != 1 || totals.AbsentDays != 1 {
		t.Fatalf("unexpected counts: %+v", totals)
	}
	if totals.PaidLeaveDays != 2 || totals.UnpaidLeaveDays != 1 {
		t.Fatalf("unexpected leave split: %+v", totals)
	}
	if totals.PresentsTotal() != 3 {
		t.Fatalf("expected presents total 3, got %d", totals.PresentsTotal())
	}
}

func TestOvertimeRequiresMinutesAndRate(t *testing.T) {
	records := []AttendanceDay{
		{Date: day(2024, 1, 1), Status: "present", OvertimeMinutes: 120},
		{Date: day(2024, 1, 2), Status: "present", OvertimeRate: 100},
		{Date: day(2024, 1, 3), Status: "present", OvertimeMinutes: 90, OvertimeRate: 100},
	}

	totals := AggregateMonth(records)
	if totals.OvertimeMinutes != 90 {
		t.Fatalf("expected 90 accrued minutes, got %d", totals.OvertimeMinutes)
	}
	if totals.OvertimePay != 150 {
		t.Fatalf("expected overtime pay 150, got %v", totals.OvertimePay)
	}
}

func TestOvertimeRateLastNonZeroChronological(t *testing.T) {
	// Deliberately out of order; aggregation sorts by date first.
	records := []AttendanceDay{
		{Date: day(2024, 1, 20), Status: "present", OvertimeMinutes: 60, OvertimeRate: 150},
		{Date: day(2024, 1, 5), Status: "present", OvertimeMinutes: 60, OvertimeRate: 100},
		{Date: day(2024, 1, 25), Status: "present", OvertimeMinutes: 30},
	}

	totals := AggregateMonth(records)
	if totals.OvertimeRate != 150 {
		t.Fatalf("expected last non-zero rate 150, got %v", totals.OvertimeRate)
	}
}

func TestLateDeductionAuthoritative(t *testing.T) {
	records := []AttendanceDay{
		{Date: day(2024, 1, 1), Status: "late", LateMinutes: 30, LateDeduction: 90},
		{Date: day(2024, 1, 2), Status: "late", LateMinutes: 30, LateDeduction: 30},
	}

	totals := AggregateMonth(records)
	if totals.LateMinutes != 60 {
		t.Fatalf("expected 60 late minutes, got %d", totals.LateMinutes)
	}
	if totals.LateDeduction != 120 {
		t.Fatalf("expected deduction 120, got %v", totals.LateDeduction)
	}
	if totals.LateRate != 2 {
		t.Fatalf("expected late rate 2, got %v", totals.LateRate)
	}
}

func TestAggregateRangeCountsUnmarked(t *testing.T) {
	start := day(2024, 1, 1)
	end := day(2024, 1, 10)
	records := []AttendanceDay{
		{Date: day(2024, 1, 1), Status: "present"},
		{Date: day(2024, 1, 2), Status: "late"},
		{Date: day(2024, 1, 3), Status: "absent"},
		{Date: day(2024, 1, 4), Status: "leave", LeaveType: "unpaid"},
	}

	totals := AggregateRange(records, start, end)
	if totals.UnmarkedDays != 6 {
		t.Fatalf("expected 6 unmarked days, got %d", totals.UnmarkedDays)
	}

	sum := totals.PresentDays + totals.LateDays + totals.AbsentDays +
		totals.PaidLeaveDays + totals.UnpaidLeaveDays + totals.UnmarkedDays
	if sum != InclusiveDays(start, end) {
		t.Fatalf("expected categories to cover %d days, got %d", InclusiveDays(start, end), sum)
	}
}

func TestAggregateRangePresentDatesSplit(t *testing.T) {
	start := day(2024, 1, 30)
	end := day(2024, 2, 2)
	records := []AttendanceDay{
		{Date: day(2024, 1, 31), Status: "present"},
		{Date: day(2024, 2, 1), Status: "late"},
	}

	totals := AggregateRange(records, start, end)
	if len(totals.PresentDatesPrev) != 1 || totals.PresentDatesPrev[0] != "31 Jan" {
		t.Fatalf("unexpected prev dates: %v", totals.PresentDatesPrev)
	}
	if len(totals.PresentDatesCur) != 1 || totals.PresentDatesCur[0] != "01 Feb (L)" {
		t.Fatalf("unexpected cur dates: %v", totals.PresentDatesCur)
	}
}

func TestAggregateRangeUnknownStatusIsUnmarked(t *testing.T) {
	start := day(2024, 1, 1)
	end := day(2024, 1, 2)
	records := []AttendanceDay{
		{Date: day(2024, 1, 1), Status: "holiday"},
	}

	totals := AggregateRange(records, start, end)
	if totals.UnmarkedDays != 2 {
		t.Fatalf("expected unknown status counted as unmarked, got %+v", totals)
	}
}
