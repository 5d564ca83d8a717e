package internal

import (
	"sort"
	"time"
)

// GroupKey identifies one (year-month, secondary key) aggregation bucket.
type GroupKey struct {
	Month string // "YYYY-MM"
	Key   string
}

// InWindow reports whether a date falls inside the inclusive [from, to] window.
func InWindow(d, from, to time.Time) bool {
	return !d.Before(from) && !d.After(to)
}

// SumByMonthKey filters records to the [from, to] window and sums amounts per
// (year-month, key) bucket. Combinations with no records are simply absent;
// zero-filling is left to the analyzer that materializes the table.
func SumByMonthKey(records []Record, from, to time.Time, keyOf func(Record) string) map[GroupKey]float64 {
	sums := make(map[GroupKey]float64)
	for _, r := range records {
		if !InWindow(r.Date, from, to) {
			continue
		}
		sums[GroupKey{Month: MonthKey(r.Date), Key: keyOf(r)}] += r.Amount
	}
	return sums
}

// SumByMonth filters records to the [from, to] window and sums amounts per
// year-month.
func SumByMonth(records []Record, from, to time.Time) map[string]float64 {
	sums := make(map[string]float64)
	for _, r := range records {
		if !InWindow(r.Date, from, to) {
			continue
		}
		sums[MonthKey(r.Date)] += r.Amount
	}
	return sums
}

// MonthsOf returns the distinct months present in the grouped sums, ascending.
func MonthsOf(sums map[GroupKey]float64) []string {
	seen := make(map[string]bool)
	var months []string
	for gk := range sums {
		if !seen[gk.Month] {
			seen[gk.Month] = true
			months = append(months, gk.Month)
		}
	}
	sort.Strings(months)
	return months
}

// KeysOf returns the distinct secondary keys present in the grouped sums,
// ascending.
func KeysOf(sums map[GroupKey]float64) []string {
	seen := make(map[string]bool)
	var keys []string
	for gk := range sums {
		if !seen[gk.Key] {
			seen[gk.Key] = true
			keys = append(keys, gk.Key)
		}
	}
	sort.Strings(keys)
	return keys
}

// MonthRange lists every "YYYY-MM" key from the month of from through the
// month of to, inclusive. Empty when to's month precedes from's month.
func MonthRange(from, to time.Time) []string {
	var months []string
	cur := MonthStart(from)
	end := MonthStart(to)
	for !cur.After(end) {
		months = append(months, MonthKey(cur))
		cur = cur.AddDate(0, 1, 0)
	}
	return months
}
