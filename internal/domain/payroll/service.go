package payroll

import (
	"context"
	"strings"
	"time"
)

// Service computes payroll reports from the record store. All report
// computation is pure over a loaded snapshot; the only writes are the sheet
// and payment-status upserts.
type Service struct {
	store *Store
}

func NewService(store *Store) *Service {
	return &Service{store: store}
}

// MonthlyReport builds the calendar-month report for a "YYYY-MM" label.
func (s *Service) MonthlyReport(ctx context.Context, month string) (Report, error) {
	start, end, err := ResolveMonth(month)
	if err != nil {
		return Report{}, err
	}
	in, err := s.loadInput(ctx, start, end, month)
	if err != nil {
		return Report{}, err
	}
	return BuildMonthlyReport(month, start, end, in), nil
}

// RangeReport builds the date-range report. The optional month label only
// keys override/deduction/status lookups and defaults to the end date's
// label; it never changes the date span.
func (s *Service) RangeReport(ctx context.Context, from, to, month string) (Report, error) {
	start, end, err := ResolveRange(from, to)
	if err != nil {
		return Report{}, err
	}
	label := strings.TrimSpace(month)
	if label == "" {
		label = MonthLabel(end)
	}
	in, err := s.loadInput(ctx, start, end, label)
	if err != nil {
		return Report{}, err
	}
	return BuildRangeReport(label, start, end, in), nil
}

// ListSheetEntries returns the overrides saved for an exact from/to period.
func (s *Service) ListSheetEntries(ctx context.Context, from, to string) ([]SheetEntry, error) {
	start, end, err := ResolveRange(from, to)
	if err != nil {
		return nil, err
	}
	return s.store.ListSheetEntries(ctx, start, end)
}

// UpsertSheetEntries validates and writes a batch of overrides. Each write is
// a full-row replace keyed by (employee, from, to).
func (s *Service) UpsertSheetEntries(ctx context.Context, from, to string, entries []SheetEntryInput) ([]SheetEntry, error) {
	start, end, err := ResolveRange(from, to)
	if err != nil {
		return nil, err
	}
	validated, err := ValidateSheetBatch(start, end, entries)
	if err != nil {
		return nil, err
	}
	return s.store.UpsertSheetEntries(ctx, validated)
}

// PaymentStatus reads the paid/unpaid flag for (month, employee),
// materializing a default unpaid row on first access.
func (s *Service) PaymentStatus(ctx context.Context, month, employeeID string) (PaymentStatus, error) {
	return s.store.GetOrCreatePaymentStatus(ctx, month, employeeID)
}

// SetPaymentStatus upserts the flag. On a transition to paid it recomputes
// the monthly report through the same code path as a direct request and
// snapshots that employee's net pay; on unpaid the snapshot is cleared. The
// employee link is refreshed from the identifier on every write.
func (s *Service) SetPaymentStatus(ctx context.Context, month, employeeID, status string) (PaymentStatus, error) {
	normalized, err := NormalizeStatus(status)
	if err != nil {
		return PaymentStatus{}, err
	}

	employeeDBID, err := s.store.FindEmployeeDBID(ctx, employeeID)
	if err != nil {
		return PaymentStatus{}, err
	}

	var snapshot *float64
	if normalized == StatusPaid {
		report, err := s.MonthlyReport(ctx, month)
		if err != nil {
			return PaymentStatus{}, err
		}
		for i := range report.Rows {
			if report.Rows[i].EmployeeID == employeeID {
				net := report.Rows[i].NetPay
				snapshot = &net
				break
			}
		}
	}

	return s.store.UpsertPaymentStatus(ctx, month, employeeID, normalized, employeeDBID, snapshot)
}

// NormalizeStatus trims and lower-cases a status, rejecting anything but
// paid/unpaid.
func NormalizeStatus(status string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(status))
	if normalized != StatusPaid && normalized != StatusUnpaid {
		return "", ErrInvalidStatus
	}
	return normalized, nil
}

func (s *Service) loadInput(ctx context.Context, start, end time.Time, monthLabel string) (ReportInput, error) {
	employees, err := s.store.ListEmployees(ctx, endOfDay(end))
	if err != nil {
		return ReportInput{}, err
	}
	attendance, err := s.store.ListAttendance(ctx, start, end)
	if err != nil {
		return ReportInput{}, err
	}
	sheets, err := s.store.SheetEntriesByEmployee(ctx, start, end)
	if err != nil {
		return ReportInput{}, err
	}
	advances, err := s.store.AdvanceDeductions(ctx, monthLabel)
	if err != nil {
		return ReportInput{}, err
	}
	paid, err := s.store.PaymentStatuses(ctx, monthLabel)
	if err != nil {
		return ReportInput{}, err
	}
	return ReportInput{
		Employees:  employees,
		Attendance: attendance,
		Sheets:     sheets,
		Advances:   advances,
		PaidStatus: paid,
	}, nil
}
