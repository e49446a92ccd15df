package payroll

import "time"

// SheetEntryInput is one batch entry as submitted by the caller, with its
// period still in string form.
type SheetEntryInput struct {
	EmployeeDBID        int64   `json:"employeeDbId"`
	FromDate            string  `json:"fromDate"`
	ToDate              string  `json:"toDate"`
	PreDaysOverride     *int    `json:"preDaysOverride"`
	CurDaysOverride     *int    `json:"curDaysOverride"`
	LeaveEncashmentDays int     `json:"leaveEncashmentDays"`
	AllowOther          float64 `json:"allowOther"`
	EOBI                float64 `json:"eobi"`
	Tax                 float64 `json:"tax"`
	FineAdvExtra        float64 `json:"fineAdvExtra"`
	Remarks             *string `json:"remarks"`
	BankCash            *string `json:"bankCash"`
}

// ValidateSheetBatch checks every entry against the batch's declared period.
// A single mismatching entry rejects the whole batch; nothing is written in
// that case.
func ValidateSheetBatch(start, end time.Time, entries []SheetEntryInput) ([]SheetEntry, error) {
	out := make([]SheetEntry, 0, len(entries))
	for _, entry := range entries {
		entryStart, entryEnd, err := ResolveRange(entry.FromDate, entry.ToDate)
		if err != nil {
			return nil, err
		}
		if !entryStart.Equal(start) || !entryEnd.Equal(end) {
			return nil, ErrPeriodMismatch
		}
		out = append(out, SheetEntry{
			EmployeeDBID:        entry.EmployeeDBID,
			FromDate:            start,
			ToDate:              end,
			PreDaysOverride:     entry.PreDaysOverride,
			CurDaysOverride:     entry.CurDaysOverride,
			LeaveEncashmentDays: entry.LeaveEncashmentDays,
			AllowOther:          entry.AllowOther,
			EOBI:                entry.EOBI,
			Tax:                 entry.Tax,
			FineAdvExtra:        entry.FineAdvExtra,
			Remarks:             entry.Remarks,
			BankCash:            entry.BankCash,
		})
	}
	return out, nil
}
