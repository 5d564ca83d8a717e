package internal

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// RecordType tells whether a record moves money out, in, or is only planned.
type RecordType string

const (
	TypeExpense  RecordType = "Expense"
	TypeIncome   RecordType = "Income"
	TypeUpcoming RecordType = "Upcoming"
)

// Record is a single transaction or planned (upcoming) operation.
// Amount is always non-negative; direction is carried by Type.
type Record struct {
	Name     string
	Date     time.Time
	Vendor   string
	Type     RecordType
	Category string
	Amount   float64
}

// Category is a user-defined taxonomy entry. Name embeds the hierarchy path
// (e.g. "Home - Food"); the analyzers match it as a plain string.
type Category struct {
	MainCategory         string
	Subcategory          string
	DefaultOperationType RecordType
	Name                 string
}

// DateFormat is the day.month.year format used in the profile data files.
const DateFormat = "02.01.2006"

// MonthKeyFormat produces the "YYYY-MM" keys all result tables are keyed by.
const MonthKeyFormat = "2006-01"

// ParseAmount normalizes a stored amount string: comma as decimal separator,
// optional spaces as thousands separators.
func ParseAmount(s string) (float64, error) {
	norm := strings.ReplaceAll(s, " ", "")
	norm = strings.ReplaceAll(norm, "\u00a0", "")
	norm = strings.ReplaceAll(norm, ",", ".")
	v, err := strconv.ParseFloat(norm, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q", s)
	}
	return v, nil
}

// ParseDate parses a record date in the dd.mm.yyyy storage format.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateFormat, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected dd.mm.yyyy)", s)
	}
	return t, nil
}

// ParseMonth parses a "YYYY-MM" string into the first day of that month.
func ParseMonth(s string) (time.Time, error) {
	t, err := time.Parse(MonthKeyFormat, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid month %q (expected YYYY-MM)", s)
	}
	return t, nil
}

// MonthKey returns the calendar year-month key for a date.
func MonthKey(t time.Time) string {
	return t.Format(MonthKeyFormat)
}

// MonthStart returns the first day of the date's month.
func MonthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// MonthEnd returns the last day of the date's month.
func MonthEnd(t time.Time) time.Time {
	return MonthStart(t).AddDate(0, 1, -1)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
