package payroll

import (
	"fmt"
	"time"
)

const (
	monthLayout = "2006-01"
	dateLayout  = "2006-01-02"
)

// ResolveMonth parses a "YYYY-MM" label into the first and last calendar day
// of that month.
func ResolveMonth(label string) (time.Time, time.Time, error) {
	parsed, err := time.Parse(monthLayout, label)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: month must be in YYYY-MM format", ErrInvalidPeriod)
	}
	start := time.Date(parsed.Year(), parsed.Month(), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)
	return start, end, nil
}

// ResolveRange parses a from/to pair of "YYYY-MM-DD" strings into an
// inclusive date interval.
func ResolveRange(from, to string) (time.Time, time.Time, error) {
	start, err := resolveDate(from, "from_date")
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := resolveDate(to, "to_date")
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if start.After(end) {
		return time.Time{}, time.Time{}, ErrInvalidRange
	}
	return start, end, nil
}

func resolveDate(value, field string) (time.Time, error) {
	parsed, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s must be in YYYY-MM-DD format", ErrInvalidPeriod, field)
	}
	return parsed, nil
}

// MonthLabel formats a date back to its "YYYY-MM" label, used as the lookup
// key for advance deductions and payment status when the caller did not pass
// one explicitly.
func MonthLabel(d time.Time) string {
	return d.Format(monthLayout)
}

// InclusiveDays counts the days in [start, end], both ends included.
func InclusiveDays(start, end time.Time) int {
	return int(end.Sub(start).Hours()/24) + 1
}

// LastDayOfMonth returns the final calendar day of d's month.
func LastDayOfMonth(d time.Time) time.Time {
	return time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, d.Location()).AddDate(0, 1, -1)
}

// endOfDay is the eligibility cutoff instant for a period ending on d.
func endOfDay(d time.Time) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), d.Location())
}
