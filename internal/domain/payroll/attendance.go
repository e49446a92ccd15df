package payroll

import (
	"sort"
	"strings"
	"time"
)

// AttendanceTotals is the reduction of one employee's attendance over a
// period. OvertimeRate is the last non-zero rate seen in chronological order,
// a flat display figure, not an average.
type AttendanceTotals struct {
	PresentDays     int
	LateDays        int
	AbsentDays      int
	PaidLeaveDays   int
	UnpaidLeaveDays int
	UnmarkedDays    int

	OvertimeMinutes int
	OvertimePay     float64
	OvertimeRate    float64

	LateMinutes   int
	LateDeduction float64
	LateRate      float64

	FineDeduction float64

	PresentDatesPrev []string
	PresentDatesCur  []string
}

// PresentsTotal counts worked days: a late arrival still counts toward pay.
func (t AttendanceTotals) PresentsTotal() int {
	return t.PresentDays + t.LateDays
}

// AggregateMonth reduces the records of one employee for a calendar month.
// Days without a record are ignored. Records are sorted chronologically first
// so the "last non-zero overtime rate" rule is deterministic regardless of
// store return order.
func AggregateMonth(records []AttendanceDay) AttendanceTotals {
	sorted := make([]AttendanceDay, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	var totals AttendanceTotals
	for i := range sorted {
		rec := &sorted[i]
		switch normalizeToken(rec.Status) {
		case AttendancePresent:
			totals.PresentDays++
		case AttendanceLate:
			totals.LateDays++
		case AttendanceAbsent:
			totals.AbsentDays++
		case AttendanceLeave:
			if normalizeToken(rec.LeaveType) == LeaveUnpaid {
				totals.UnpaidLeaveDays++
			} else {
				totals.PaidLeaveDays++
			}
		}
		totals.accumulate(rec)
	}
	totals.finish()
	return totals
}

// AggregateRange walks every calendar day in [start, end] so that days with
// no record are counted as unmarked rather than silently skipped. Present and
// late dates are collected for display, split at the end date's month.
func AggregateRange(records []AttendanceDay, start, end time.Time) AttendanceTotals {
	byDate := make(map[string]*AttendanceDay, len(records))
	for i := range records {
		rec := &records[i]
		byDate[rec.Date.Format(dateLayout)] = rec
	}

	var totals AttendanceTotals
	endMonth := end.Month()
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		rec := byDate[day.Format(dateLayout)]
		status := AttendanceUnmarked
		if rec != nil {
			status = normalizeToken(rec.Status)
		}

		switch status {
		case AttendancePresent:
			totals.addPresentDate(day, endMonth, "")
			totals.PresentDays++
		case AttendanceLate:
			totals.addPresentDate(day, endMonth, " (L)")
			totals.LateDays++
		case AttendanceAbsent:
			totals.AbsentDays++
		case AttendanceLeave:
			if rec != nil && normalizeToken(rec.LeaveType) == LeaveUnpaid {
				totals.UnpaidLeaveDays++
			} else {
				totals.PaidLeaveDays++
			}
		default:
			totals.UnmarkedDays++
		}

		if rec != nil {
			totals.accumulate(rec)
		}
	}
	totals.finish()
	return totals
}

// accumulate applies the monetary fields of one record. Overtime pay accrues
// only when both minutes and rate are present and non-zero; the late
// deduction is authoritative, never derived from minutes.
func (t *AttendanceTotals) accumulate(rec *AttendanceDay) {
	if rec.OvertimeMinutes != 0 && rec.OvertimeRate != 0 {
		t.OvertimeMinutes += rec.OvertimeMinutes
		t.OvertimePay += float64(rec.OvertimeMinutes) / 60.0 * rec.OvertimeRate
	}
	if rec.OvertimeRate > 0 {
		t.OvertimeRate = rec.OvertimeRate
	}
	if rec.LateMinutes != 0 {
		t.LateMinutes += rec.LateMinutes
	}
	if rec.LateDeduction != 0 {
		t.LateDeduction += rec.LateDeduction
	}
	if rec.FineAmount != 0 {
		t.FineDeduction += rec.FineAmount
	}
}

func (t *AttendanceTotals) finish() {
	if t.LateMinutes > 0 {
		t.LateRate = t.LateDeduction / float64(t.LateMinutes)
	}
}

func (t *AttendanceTotals) addPresentDate(day time.Time, endMonth time.Month, marker string) {
	label := day.Format("02 Jan") + marker
	if day.Month() == endMonth {
		t.PresentDatesCur = append(t.PresentDatesCur, label)
	} else {
		t.PresentDatesPrev = append(t.PresentDatesPrev, label)
	}
}

func normalizeToken(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}
