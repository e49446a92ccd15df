package payroll

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
)

// ListEmployees returns employees hired at or before the cutoff instant.
// A null hire timestamp is always eligible.
func (s *Store) ListEmployees(ctx context.Context, cutoff time.Time) ([]Employee, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id,
           COALESCE(serial_no, ''),
           COALESCE(badge_no, ''),
           name,
           COALESCE(salary, ''),
           COALESCE(eobi_no, ''),
           COALESCE(category, ''),
           created_at
    FROM employees
    WHERE created_at IS NULL OR created_at <= $1
  `, cutoff)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []Employee
	for rows.Next() {
		var employee Employee
		if err := rows.Scan(&employee.ID, &employee.SerialNo, &employee.BadgeNo, &employee.Name, &employee.Salary, &employee.EOBINo, &employee.Category, &employee.CreatedAt); err != nil {
			return nil, err
		}
		employees = append(employees, employee)
	}
	return employees, rows.Err()
}

// ListAttendance returns all attendance records in [start, end], all
// employees.
func (s *Store) ListAttendance(ctx context.Context, start, end time.Time) ([]AttendanceDay, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT employee_id,
           date,
           COALESCE(status, ''),
           COALESCE(leave_type, ''),
           COALESCE(overtime_minutes, 0),
           COALESCE(overtime_rate, 0),
           COALESCE(late_minutes, 0),
           COALESCE(late_deduction, 0),
           COALESCE(fine_amount, 0)
    FROM attendance_records
    WHERE date >= $1 AND date <= $2
  `, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []AttendanceDay
	for rows.Next() {
		var rec AttendanceDay
		if err := rows.Scan(&rec.EmployeeID, &rec.Date, &rec.Status, &rec.LeaveType, &rec.OvertimeMinutes, &rec.OvertimeRate, &rec.LateMinutes, &rec.LateDeduction, &rec.FineAmount); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// ListSheetEntries returns the overrides for an exact period, ordered by
// employee.
func (s *Store) ListSheetEntries(ctx context.Context, start, end time.Time) ([]SheetEntry, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, employee_db_id, from_date, to_date,
           pre_days_override, cur_days_override,
           COALESCE(leave_encashment_days, 0),
           COALESCE(allow_other, 0),
           COALESCE(eobi, 0),
           COALESCE(tax, 0),
           COALESCE(fine_adv_extra, 0),
           remarks, bank_cash
    FROM payroll_sheet_entries
    WHERE from_date = $1 AND to_date = $2
    ORDER BY employee_db_id
  `, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []SheetEntry
	for rows.Next() {
		entry, err := scanSheetEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

// SheetEntriesByEmployee maps the period's overrides by employee storage id.
// The lookup is an exact key match on the period boundaries.
func (s *Store) SheetEntriesByEmployee(ctx context.Context, start, end time.Time) (map[int64]SheetEntry, error) {
	entries, err := s.ListSheetEntries(ctx, start, end)
	if err != nil {
		return nil, err
	}
	byEmployee := make(map[int64]SheetEntry, len(entries))
	for _, entry := range entries {
		byEmployee[entry.EmployeeDBID] = entry
	}
	return byEmployee, nil
}

// AdvanceDeductions maps each employee's standing deduction amount for a
// month label.
func (s *Store) AdvanceDeductions(ctx context.Context, month string) (map[int64]float64, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT employee_db_id, COALESCE(amount, 0)
    FROM employee_advance_deductions
    WHERE month = $1
  `, month)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	amounts := make(map[int64]float64)
	for rows.Next() {
		var employeeDBID int64
		var amount float64
		if err := rows.Scan(&employeeDBID, &amount); err != nil {
			return nil, err
		}
		amounts[employeeDBID] = amount
	}
	return amounts, rows.Err()
}

// PaymentStatuses maps employee external id to paid/unpaid for a month.
func (s *Store) PaymentStatuses(ctx context.Context, month string) (map[string]string, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT employee_id, COALESCE(status, 'unpaid')
    FROM payroll_payment_status
    WHERE month = $1
  `, month)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	statuses := make(map[string]string)
	for rows.Next() {
		var employeeID, status string
		if err := rows.Scan(&employeeID, &status); err != nil {
			return nil, err
		}
		statuses[employeeID] = status
	}
	return statuses, rows.Err()
}

// UpsertSheetEntries replaces the batch's rows in one transaction.
func (s *Store) UpsertSheetEntries(ctx context.Context, entries []SheetEntry) ([]SheetEntry, error) {
	tx, err := s.DB.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	out := make([]SheetEntry, 0, len(entries))
	for _, entry := range entries {
		row := tx.QueryRow(ctx, `
      INSERT INTO payroll_sheet_entries
        (employee_db_id, from_date, to_date, pre_days_override, cur_days_override,
         leave_encashment_days, allow_other, eobi, tax, fine_adv_extra, remarks, bank_cash)
      VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
      ON CONFLICT (employee_db_id, from_date, to_date)
      DO UPDATE SET pre_days_override = EXCLUDED.pre_days_override,
                    cur_days_override = EXCLUDED.cur_days_override,
                    leave_encashment_days = EXCLUDED.leave_encashment_days,
                    allow_other = EXCLUDED.allow_other,
                    eobi = EXCLUDED.eobi,
                    tax = EXCLUDED.tax,
                    fine_adv_extra = EXCLUDED.fine_adv_extra,
                    remarks = EXCLUDED.remarks,
                    bank_cash = EXCLUDED.bank_cash
      RETURNING id, employee_db_id, from_date, to_date, pre_days_override, cur_days_override,
                COALESCE(leave_encashment_days, 0), COALESCE(allow_other, 0), COALESCE(eobi, 0),
                COALESCE(tax, 0), COALESCE(fine_adv_extra, 0), remarks, bank_cash
    `, entry.EmployeeDBID, entry.FromDate, entry.ToDate, entry.PreDaysOverride, entry.CurDaysOverride,
			entry.LeaveEncashmentDays, entry.AllowOther, entry.EOBI, entry.Tax, entry.FineAdvExtra,
			entry.Remarks, entry.BankCash)

		stored, err := scanSheetEntry(row)
		if err != nil {
			return nil, err
		}
		out = append(out, stored)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return out, nil
}

// GetOrCreatePaymentStatus materializes the default unpaid row on first read.
// The insert-then-select shape is race-safe: two concurrent first reads both
// land on the same row.
func (s *Store) GetOrCreatePaymentStatus(ctx context.Context, month, employeeID string) (PaymentStatus, error) {
	_, err := s.DB.Exec(ctx, `
    INSERT INTO payroll_payment_status (month, employee_id, status)
    VALUES ($1,$2,$3)
    ON CONFLICT (month, employee_id) DO NOTHING
  `, month, employeeID, StatusUnpaid)
	if err != nil {
		return PaymentStatus{}, err
	}

	var status PaymentStatus
	err = s.DB.QueryRow(ctx, `
    SELECT id, month, employee_id, employee_db_id, status, net_pay_snapshot
    FROM payroll_payment_status
    WHERE month = $1 AND employee_id = $2
  `, month, employeeID).Scan(&status.ID, &status.Month, &status.EmployeeID, &status.EmployeeDBID, &status.Status, &status.NetPaySnapshot)
	if err != nil {
		return PaymentStatus{}, err
	}
	return status, nil
}

// UpsertPaymentStatus overwrites the row in place; no status history is kept.
func (s *Store) UpsertPaymentStatus(ctx context.Context, month, employeeID, status string, employeeDBID *int64, snapshot *float64) (PaymentStatus, error) {
	var out PaymentStatus
	err := s.DB.QueryRow(ctx, `
    INSERT INTO payroll_payment_status (month, employee_id, status, employee_db_id, net_pay_snapshot)
    VALUES ($1,$2,$3,$4,$5)
    ON CONFLICT (month, employee_id)
    DO UPDATE SET status = EXCLUDED.status,
                  employee_db_id = EXCLUDED.employee_db_id,
                  net_pay_snapshot = EXCLUDED.net_pay_snapshot
    RETURNING id, month, employee_id, employee_db_id, status, net_pay_snapshot
  `, month, employeeID, status, employeeDBID, snapshot).Scan(&out.ID, &out.Month, &out.EmployeeID, &out.EmployeeDBID, &out.Status, &out.NetPaySnapshot)
	if err != nil {
		return PaymentStatus{}, err
	}
	return out, nil
}

// FindEmployeeDBID resolves an external identifier to the storage id, nil
// when no employee matches.
func (s *Store) FindEmployeeDBID(ctx context.Context, employeeID string) (*int64, error) {
	var id int64
	err := s.DB.QueryRow(ctx, "SELECT id FROM employees WHERE badge_no = $1", employeeID).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func scanSheetEntry(row pgx.Row) (SheetEntry, error) {
	var entry SheetEntry
	err := row.Scan(&entry.ID, &entry.EmployeeDBID, &entry.FromDate, &entry.ToDate,
		&entry.PreDaysOverride, &entry.CurDaysOverride, &entry.LeaveEncashmentDays,
		&entry.AllowOther, &entry.EOBI, &entry.Tax, &entry.FineAdvExtra,
		&entry.Remarks, &entry.BankCash)
	return entry, err
}
