package internal

import "strings"

// leafName reduces a category path like "Home - Food" to its last segment.
// Two branches sharing a leaf name collapse into one column, matching the
// desktop app's pivot.
func leafName(category string) string {
	parts := strings.Split(category, " - ")
	return parts[len(parts)-1]
}

// calculateCategorical builds the per-sub-category monthly expense pivot for
// one top-level category. The filter is substring containment, so an
// ambiguous token can match more than one branch; that looseness is part of
// the contract.
func calculateCategorical(req Request) *Table {
	var filtered []Record
	for _, r := range req.Transactions {
		if r.Type == TypeExpense && strings.Contains(r.Category, req.Category) {
			filtered = append(filtered, r)
		}
	}

	sums := SumByMonthKey(filtered, req.From, req.To, func(r Record) string {
		return leafName(r.Category)
	})

	months := MonthsOf(sums)
	leaves := KeysOf(sums)

	columns := make([]string, 0, len(leaves)+2)
	columns = append(columns, ColYearMonth)
	columns = append(columns, leaves...)
	columns = append(columns, ColSummary)

	table := &Table{Type: Categorical, Columns: columns}
	for _, month := range months {
		values := make(map[string]float64, len(leaves)+1)
		summary := 0.0
		for _, leaf := range leaves {
			v := round2(sums[GroupKey{Month: month, Key: leaf}])
			values[leaf] = v
			summary += v
		}
		values[ColSummary] = round2(summary)
		table.Rows = append(table.Rows, Row{YearMonth: month, Values: values})
	}
	return table
}
