package payroll

import "errors"

var (
	ErrInvalidPeriod  = errors.New("invalid period")
	ErrInvalidRange   = errors.New("from date must be on or before to date")
	ErrInvalidStatus  = errors.New("status must be 'paid' or 'unpaid'")
	ErrPeriodMismatch = errors.New("entry period must match batch from/to dates")
)
