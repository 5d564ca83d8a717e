package internal

import (
	"testing"
	"time"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func fptr(v float64) *float64 {
	return &v
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    float64
		wantErr bool
	}{
		{name: "decimal comma", input: "123,45", want: 123.45},
		{name: "decimal point", input: "123.45", want: 123.45},
		{name: "space thousands separator", input: "1 234,56", want: 1234.56},
		{name: "non-breaking space separator", input: "1\u00a0234,56", want: 1234.56},
		{name: "integer", input: "500", want: 500},
		{name: "not a number", input: "abc", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAmount(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseAmount(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate("15.03.2024")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Equal(date("2024-03-15")) {
		t.Errorf("ParseDate = %v, want 2024-03-15", got)
	}

	if _, err := ParseDate("2024-03-15"); err == nil {
		t.Error("expected error for ISO-formatted date")
	}
}

func TestMonthHelpers(t *testing.T) {
	d := date("2024-02-15")

	if got := MonthKey(d); got != "2024-02" {
		t.Errorf("MonthKey = %q, want 2024-02", got)
	}
	if got := MonthStart(d); !got.Equal(date("2024-02-01")) {
		t.Errorf("MonthStart = %v, want 2024-02-01", got)
	}
	// 2024 is a leap year.
	if got := MonthEnd(d); !got.Equal(date("2024-02-29")) {
		t.Errorf("MonthEnd = %v, want 2024-02-29", got)
	}
}

func TestParseMonth(t *testing.T) {
	got, err := ParseMonth("2024-03")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Equal(date("2024-03-01")) {
		t.Errorf("ParseMonth = %v, want 2024-03-01", got)
	}

	if _, err := ParseMonth("03.2024"); err == nil {
		t.Error("expected error for dotted month format")
	}
}
