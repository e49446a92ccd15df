package payroll

import (
	"sort"
	"strconv"
	"strings"
	"time"
)

// BuildMonthlyReport computes the calendar-month report from an input
// snapshot. Rows are a pure function of the snapshot; per-employee
// computation has no cross-row dependency.
func BuildMonthlyReport(month string, start, end time.Time, in ReportInput) Report {
	workingDays := InclusiveDays(start, end)
	byEmployee := groupAttendance(in.Attendance)
	employees := sortEmployees(in.Employees)

	rows := make([]ReportRow, 0, len(employees))
	var totalGross, totalNet float64

	for _, emp := range employees {
		if !Eligible(emp, end) {
			continue
		}
		id := emp.Identifier()
		totals := AggregateMonth(byEmployee[id])
		calc := Calculate(VariantMonthly, CalcInput{
			BaseSalary:  emp.BaseSalary(),
			WorkingDays: workingDays,
			Attendance:  totals,
			Advance:     in.Advances[emp.ID],
		})

		row := newRow(emp, id, workingDays, totals, calc, SheetEntry{}, in.Advances[emp.ID], in.PaidStatus)
		row.PresentDatesPrev = nil
		row.PresentDatesCur = nil
		rows = append(rows, row)

		totalGross += row.GrossPay
		totalNet += row.NetPay
	}

	return Report{
		Month: month,
		Summary: ReportSummary{
			Month:      month,
			Employees:  len(rows),
			TotalGross: totalGross,
			TotalNet:   totalNet,
		},
		Rows: rows,
	}
}

// BuildRangeReport computes the date-range report: an explicit calendar-day
// walk per employee supporting periods that straddle a month boundary.
func BuildRangeReport(monthLabel string, start, end time.Time, in ReportInput) Report {
	workingDays := InclusiveDays(start, end)
	byEmployee := groupAttendance(in.Attendance)
	employees := sortEmployees(in.Employees)

	rows := make([]ReportRow, 0, len(employees))
	var totalGross, totalNet float64
	totalPresents := 0

	for _, emp := range employees {
		if !Eligible(emp, end) {
			continue
		}
		id := emp.Identifier()
		totals := AggregateRange(byEmployee[id], start, end)
		sheet := in.Sheets[emp.ID]
		advance := in.Advances[emp.ID]
		calc := Calculate(VariantRange, CalcInput{
			BaseSalary:  emp.BaseSalary(),
			WorkingDays: workingDays,
			Attendance:  totals,
			Sheet:       sheet,
			Advance:     advance,
		})

		rows = append(rows, newRow(emp, id, workingDays, totals, calc, sheet, advance, in.PaidStatus))

		totalGross += calc.GrossPay
		totalNet += calc.NetPay
		totalPresents += totals.PresentsTotal()
	}

	return Report{
		Month: monthLabel,
		Summary: ReportSummary{
			Month:         monthLabel,
			FromDate:      start.Format(dateLayout),
			ToDate:        end.Format(dateLayout),
			WorkingDays:   workingDays,
			Employees:     len(rows),
			TotalGross:    totalGross,
			TotalNet:      totalNet,
			TotalPresents: totalPresents,
		},
		Rows: rows,
	}
}

func newRow(emp Employee, id string, workingDays int, totals AttendanceTotals, calc CalcResult, sheet SheetEntry, advance float64, paidStatus map[string]string) ReportRow {
	status, ok := paidStatus[id]
	if !ok || status == "" {
		status = StatusUnpaid
	}

	return ReportRow{
		EmployeeDBID: emp.ID,
		EmployeeID:   id,
		Name:         emp.Name,
		SerialNo:     emp.SerialNo,
		BadgeNo:      emp.BadgeNo,
		EOBINo:       emp.EOBINo,
		Category:     emp.Category,

		BaseSalary:  emp.BaseSalary(),
		WorkingDays: workingDays,
		DayRate:     calc.DayRate,

		PresentDays:      totals.PresentDays,
		LateDays:         totals.LateDays,
		AbsentDays:       totals.AbsentDays,
		PaidLeaveDays:    totals.PaidLeaveDays,
		UnpaidLeaveDays:  totals.UnpaidLeaveDays,
		UnmarkedDays:     totals.UnmarkedDays,
		PresentsTotal:    totals.PresentsTotal(),
		PresentDatesPrev: totals.PresentDatesPrev,
		PresentDatesCur:  totals.PresentDatesCur,

		PreDays:             calc.PreDays,
		CurDays:             calc.CurDays,
		LeaveEncashmentDays: sheet.LeaveEncashmentDays,
		TotalDays:           calc.TotalDays,
		TotalSalary:         calc.TotalSalary,

		OvertimeMinutes: totals.OvertimeMinutes,
		OvertimeRate:    totals.OvertimeRate,
		OvertimePay:     totals.OvertimePay,

		LateMinutes:   totals.LateMinutes,
		LateDeduction: totals.LateDeduction,
		LateRate:      totals.LateRate,

		AllowOther:           sheet.AllowOther,
		EOBI:                 sheet.EOBI,
		Tax:                  sheet.Tax,
		FineDeduction:        totals.FineDeduction,
		FineAdvExtra:         sheet.FineAdvExtra,
		FineAdv:              calc.FineAdv,
		UnpaidLeaveDeduction: calc.UnpaidLeaveDeduction,
		AdvanceDeduction:     advance,

		GrossPay: calc.GrossPay,
		NetPay:   calc.NetPay,

		Remarks:    sheet.Remarks,
		BankCash:   sheet.BankCash,
		PaidStatus: status,
	}
}

func groupAttendance(records []AttendanceDay) map[string][]AttendanceDay {
	grouped := make(map[string][]AttendanceDay)
	for _, rec := range records {
		id := strings.TrimSpace(rec.EmployeeID)
		grouped[id] = append(grouped[id], rec)
	}
	return grouped
}

// sortEmployees orders by numeric serial number ascending. Blank serials sort
// first, serials that do not parse as integers sort last.
func sortEmployees(employees []Employee) []Employee {
	sorted := make([]Employee, len(employees))
	copy(sorted, employees)
	sort.SliceStable(sorted, func(i, j int) bool {
		return serialKey(sorted[i].SerialNo) < serialKey(sorted[j].SerialNo)
	})
	return sorted
}

func serialKey(serialNo string) int {
	s := strings.TrimSpace(serialNo)
	if s == "" {
		return 0
	}
	parsed, err := strconv.Atoi(s)
	if err != nil {
		return serialSentinel
	}
	return parsed
}
