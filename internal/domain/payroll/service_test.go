package payroll

import (
	"errors"
	"testing"
)

func TestNormalizeStatus(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"paid", "paid"},
		{"  PAID  ", "paid"},
		{"Unpaid", "unpaid"},
		{"UNPAID\t", "unpaid"},
	}
	for _, c := range cases {
		got, err := NormalizeStatus(c.input)
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", c.input, err)
		}
		if got != c.want {
			t.Fatalf("expected %q for %q, got %q", c.want, c.input, got)
		}
	}
}

func TestNormalizeStatusRejectsUnknown(t *testing.T) {
	for _, input := range []string{"", "pending", "PAID!", "done"} {
		if _, err := NormalizeStatus(input); !errors.Is(err, ErrInvalidStatus) {
			t.Fatalf("expected ErrInvalidStatus for %q, got %v", input, err)
		}
	}
}
