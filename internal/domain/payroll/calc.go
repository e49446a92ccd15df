package payroll

import "time"

// Variant selects which deduction policy applies. The monthly report pays
// flat base salary with a fixed unpaid-leave penalty; the range report
// prorates by day rate and deducts attendance fines plus sheet fields.
type Variant int

const (
	VariantMonthly Variant = iota
	VariantRange
)

// CalcInput is everything needed to price one employee for one period. Sheet
// is the zero value when no override row exists, which yields the documented
// zero/empty defaults.
type CalcInput struct {
	BaseSalary  float64
	Allowances  float64
	WorkingDays int
	Attendance  AttendanceTotals
	Sheet       SheetEntry
	Advance     float64
}

type CalcResult struct {
	DayRate              float64
	PreDays              int
	CurDays              int
	TotalDays            int
	TotalSalary          float64
	FineAdv              float64
	UnpaidLeaveDeduction float64
	GrossPay             float64
	NetPay               float64
}

// Calculate runs the shared day-rate/total-days/gross/net skeleton with the
// variant's deduction terms.
func Calculate(variant Variant, in CalcInput) CalcResult {
	var res CalcResult
	if in.WorkingDays > 0 {
		res.DayRate = in.BaseSalary / float64(in.WorkingDays)
	}

	att := in.Attendance
	res.PreDays = clampDays(in.Sheet.PreDaysOverride)
	res.CurDays = clampDays(in.Sheet.CurDaysOverride)

	totalDays := att.PresentsTotal() + in.Sheet.LeaveEncashmentDays
	if totalDays < 0 {
		totalDays = 0
	}
	res.TotalDays = totalDays
	res.TotalSalary = float64(totalDays) * res.DayRate

	switch variant {
	case VariantMonthly:
		res.UnpaidLeaveDeduction = float64(att.UnpaidLeaveDays) * UnpaidLeavePenaltyPerDay
		res.GrossPay = in.BaseSalary + in.Allowances + att.OvertimeRate + att.OvertimePay
		res.NetPay = res.GrossPay - att.LateDeduction - res.UnpaidLeaveDeduction - in.Advance
	case VariantRange:
		res.FineAdv = att.FineDeduction + in.Advance + in.Sheet.FineAdvExtra
		res.GrossPay = res.TotalSalary + att.OvertimeRate + att.OvertimePay + in.Allowances + in.Sheet.AllowOther
		res.NetPay = res.GrossPay - in.Sheet.EOBI - in.Sheet.Tax - res.FineAdv - att.LateDeduction
	}
	return res
}

// Eligible reports whether an employee belongs in a report ending on end: a
// nil hire timestamp is always eligible, otherwise it must not fall after the
// end of the period's last day.
func Eligible(e Employee, end time.Time) bool {
	if e.CreatedAt == nil {
		return true
	}
	return !e.CreatedAt.After(endOfDay(end))
}

// clampDays treats a missing override as an explicit zero and floors
// negatives, matching the sheet's editable pre/cur day fields.
func clampDays(override *int) int {
	if override == nil || *override < 0 {
		return 0
	}
	return *override
}
