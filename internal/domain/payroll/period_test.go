package payroll

import (
	"errors"
	"testing"
	"time"
)

func TestResolveMonth(t *testing.T) {
	start, end, err := ResolveMonth("2024-02")
	if err != nil {
		t.Fatalf("resolve error: %v", err)
	}
	if start.Format("2006-01-02") != "2024-02-01" {
		t.Fatalf("unexpected start: %v", start)
	}
	if end.Format("2006-01-02") != "2024-02-29" {
		t.Fatalf("expected leap-year end, got %v", end)
	}
}

func TestResolveMonthInvalid(t *testing.T) {
	for _, label := range []string{"", "2024-13", "garbage", "2024/01", "01-2024"} {
		if _, _, err := ResolveMonth(label); !errors.Is(err, ErrInvalidPeriod) {
			t.Fatalf("expected ErrInvalidPeriod for %q, got %v", label, err)
		}
	}
}

func TestResolveRange(t *testing.T) {
	start, end, err := ResolveRange("2024-01-26", "2024-02-25")
	if err != nil {
		t.Fatalf("resolve error: %v", err)
	}
	if start.Month() != time.January || end.Month() != time.February {
		t.Fatalf("unexpected interval: %v to %v", start, end)
	}
	if InclusiveDays(start, end) != 31 {
		t.Fatalf("expected 31 days, got %d", InclusiveDays(start, end))
	}
}

func TestResolveRangeSingleDay(t *testing.T) {
	start, end, err := ResolveRange("2024-03-15", "2024-03-15")
	if err != nil {
		t.Fatalf("resolve error: %v", err)
	}
	if InclusiveDays(start, end) != 1 {
		t.Fatalf("expected 1 day, got %d", InclusiveDays(start, end))
	}
}

func TestResolveRangeReversed(t *testing.T) {
	if _, _, err := ResolveRange("2024-02-01", "2024-01-31"); !errors.Is(err, ErrInvalidRange) {
		t.Fatalf("expected ErrInvalidRange, got %v", err)
	}
}

func TestResolveRangeBadDate(t *testing.T) {
	if _, _, err := ResolveRange("2024-01-xx", "2024-01-31"); !errors.Is(err, ErrInvalidPeriod) {
		t.Fatalf("expected ErrInvalidPeriod, got %v", err)
	}
}

func TestMonthLabel(t *testing.T) {
	d := time.Date(2024, time.November, 7, 0, 0, 0, 0, time.UTC)
	if got := MonthLabel(d); got != "2024-11" {
		t.Fatalf("expected 2024-11, got %q", got)
	}
}

func TestLastDayOfMonth(t *testing.T) {
	d := time.Date(2023, time.February, 10, 0, 0, 0, 0, time.UTC)
	if got := LastDayOfMonth(d); got.Day() != 28 {
		t.Fatalf("expected 28, got %d", got.Day())
	}
}
