package payroll

const (
	StatusPaid   = "paid"
	StatusUnpaid = "unpaid"

	AttendancePresent  = "present"
	AttendanceLate     = "late"
	AttendanceAbsent   = "absent"
	AttendanceLeave    = "leave"
	AttendanceUnmarked = "unmarked"

	LeavePaid   = "paid"
	LeaveUnpaid = "unpaid"

	// Flat per-day penalty for unpaid leave in the monthly report.
	UnpaidLeavePenaltyPerDay = 1000.0
)

// Serial numbers that do not parse as integers sort after every real serial.
const serialSentinel = 999999
