package payroll

import (
	"strconv"
	"strings"
	"time"
)

type Employee struct {
	ID        int64      `json:"id"`
	SerialNo  string     `json:"serialNo"`
	BadgeNo   string     `json:"badgeNo"`
	Name      string     `json:"name"`
	Salary    string     `json:"salary"`
	EOBINo    string     `json:"eobiNo"`
	Category  string     `json:"category"`
	CreatedAt *time.Time `json:"createdAt"`
}

// Identifier is the external id attendance and payment status are keyed by:
// badge number, then serial number, then the storage id.
func (e Employee) Identifier() string {
	if v := strings.TrimSpace(e.BadgeNo); v != "" {
		return v
	}
	if v := strings.TrimSpace(e.SerialNo); v != "" {
		return v
	}
	return strconv.FormatInt(e.ID, 10)
}

// BaseSalary parses the free-text salary field, defaulting to 0.
func (e Employee) BaseSalary() float64 {
	return parseAmount(e.Salary)
}

type AttendanceDay struct {
	EmployeeID      string    `json:"employeeId"`
	Date            time.Time `json:"date"`
	Status          string    `json:"status"`
	LeaveType       string    `json:"leaveType"`
	OvertimeMinutes int       `json:"overtimeMinutes"`
	OvertimeRate    float64   `json:"overtimeRate"`
	LateMinutes     int       `json:"lateMinutes"`
	LateDeduction   float64   `json:"lateDeduction"`
	FineAmount      float64   `json:"fineAmount"`
}

type SheetEntry struct {
	ID                  int64     `json:"id"`
	EmployeeDBID        int64     `json:"employeeDbId"`
	FromDate            time.Time `json:"fromDate"`
	ToDate              time.Time `json:"toDate"`
	PreDaysOverride     *int      `json:"preDaysOverride"`
	CurDaysOverride     *int      `json:"curDaysOverride"`
	LeaveEncashmentDays int       `json:"leaveEncashmentDays"`
	AllowOther          float64   `json:"allowOther"`
	EOBI                float64   `json:"eobi"`
	Tax                 float64   `json:"tax"`
	FineAdvExtra        float64   `json:"fineAdvExtra"`
	Remarks             *string   `json:"remarks"`
	BankCash            *string   `json:"bankCash"`
}

type AdvanceDeduction struct {
	EmployeeDBID int64   `json:"employeeDbId"`
	Month        string  `json:"month"`
	Amount       float64 `json:"amount"`
}

type PaymentStatus struct {
	ID             int64    `json:"id"`
	Month          string   `json:"month"`
	EmployeeID     string   `json:"employeeId"`
	EmployeeDBID   *int64   `json:"employeeDbId"`
	Status         string   `json:"status"`
	NetPaySnapshot *float64 `json:"netPaySnapshot"`
}

// ReportRow is recomputed from scratch on every report request and never
// persisted. Range-only fields stay at their zero values in monthly rows.
type ReportRow struct {
	EmployeeDBID int64  `json:"employeeDbId"`
	EmployeeID   string `json:"employeeId"`
	Name         string `json:"name"`
	SerialNo     string `json:"serialNo"`
	BadgeNo      string `json:"badgeNo"`
	EOBINo       string `json:"eobiNo"`
	Category     string `json:"category"`

	BaseSalary  float64 `json:"baseSalary"`
	Allowances  float64 `json:"allowances"`
	WorkingDays int     `json:"workingDays"`
	DayRate     float64 `json:"dayRate"`

	PresentDays      int      `json:"presentDays"`
	LateDays         int      `json:"lateDays"`
	AbsentDays       int      `json:"absentDays"`
	PaidLeaveDays    int      `json:"paidLeaveDays"`
	UnpaidLeaveDays  int      `json:"unpaidLeaveDays"`
	UnmarkedDays     int      `json:"unmarkedDays"`
	PresentsTotal    int      `json:"presentsTotal"`
	PresentDatesPrev []string `json:"presentDatesPrev,omitempty"`
	PresentDatesCur  []string `json:"presentDatesCur,omitempty"`

	PreDays             int     `json:"preDays"`
	CurDays             int     `json:"curDays"`
	LeaveEncashmentDays int     `json:"leaveEncashmentDays"`
	TotalDays           int     `json:"totalDays"`
	TotalSalary         float64 `json:"totalSalary"`

	OvertimeMinutes int     `json:"overtimeMinutes"`
	OvertimeRate    float64 `json:"overtimeRate"`
	OvertimePay     float64 `json:"overtimePay"`

	LateMinutes   int     `json:"lateMinutes"`
	LateDeduction float64 `json:"lateDeduction"`
	LateRate      float64 `json:"lateRate"`

	AllowOther           float64 `json:"allowOther"`
	EOBI                 float64 `json:"eobi"`
	Tax                  float64 `json:"tax"`
	FineDeduction        float64 `json:"fineDeduction"`
	FineAdvExtra         float64 `json:"fineAdvExtra"`
	FineAdv              float64 `json:"fineAdv"`
	UnpaidLeaveDeduction float64 `json:"unpaidLeaveDeduction"`
	AdvanceDeduction     float64 `json:"advanceDeduction"`

	GrossPay float64 `json:"grossPay"`
	NetPay   float64 `json:"netPay"`

	Remarks    *string `json:"remarks"`
	BankCash   *string `json:"bankCash"`
	PaidStatus string  `json:"paidStatus"`
}

type ReportSummary struct {
	Month         string  `json:"month"`
	FromDate      string  `json:"fromDate,omitempty"`
	ToDate        string  `json:"toDate,omitempty"`
	WorkingDays   int     `json:"workingDays,omitempty"`
	Employees     int     `json:"employees"`
	TotalGross    float64 `json:"totalGross"`
	TotalNet      float64 `json:"totalNet"`
	TotalPresents int     `json:"totalPresents,omitempty"`
}

type Report struct {
	Month   string        `json:"month"`
	Summary ReportSummary `json:"summary"`
	Rows    []ReportRow   `json:"rows"`
}

// ReportInput is the read-only snapshot a report is computed from. Sheets and
// Advances are keyed by employee storage id, PaidStatus by external id.
type ReportInput struct {
	Employees  []Employee
	Attendance []AttendanceDay
	Sheets     map[int64]SheetEntry
	Advances   map[int64]float64
	PaidStatus map[string]string
}

func parseAmount(value string) float64 {
	s := strings.TrimSpace(value)
	if s == "" {
		return 0
	}
	parsed, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return parsed
}
