package internal

import (
	"strconv"
	"strings"
)

// Column names shared by the analyzers.
const (
	ColYearMonth    = "Year-month"
	ColSummary      = "Summary"
	ColIncome       = "Income"
	ColExpense      = "Expense"
	ColDifference   = "Difference"
	ColSavings      = "Savings %"
	ColBalance      = "Account balance"
	ColAvgRevenue   = "Average revenue"
	ColAvgSpendings = "Average spendings"
	ColPlanned      = "Planned expenses"
)

// Row is one year-month line of a result table. Values is keyed by column
// name because the categorical column set depends on the data.
type Row struct {
	YearMonth string
	Values    map[string]float64
}

// Table is the result of one analysis run. Columns always starts with
// Year-month; the remaining columns are mode-specific.
type Table struct {
	Type    AnalysisType
	Columns []string
	Rows    []Row
}

// ValueColumns returns the numeric columns, i.e. everything after Year-month.
func (t *Table) ValueColumns() []string {
	return t.Columns[1:]
}

// DisplayNumber renders a numeric cell with a decimal comma, matching the
// display convention of the desktop app. Half-way values round away from
// zero, the same convention the analyzers use for table cells.
func DisplayNumber(v float64) string {
	return strings.ReplaceAll(strconv.FormatFloat(round2(v), 'f', 2, 64), ".", ",")
}

// DisplayRows returns the table with every cell stringified for display,
// numbers formatted with a decimal comma.
func (t *Table) DisplayRows() [][]string {
	rows := make([][]string, 0, len(t.Rows))
	for _, r := range t.Rows {
		cells := make([]string, 0, len(t.Columns))
		cells = append(cells, r.YearMonth)
		for _, col := range t.ValueColumns() {
			cells = append(cells, DisplayNumber(r.Values[col]))
		}
		rows = append(rows, cells)
	}
	return rows
}

// Series is one plottable sequence of values keyed by year-month.
type Series struct {
	Name   string
	Months []string
	Values []float64
}

// prognosisPlotRows caps the prognosis chart at just over a year of months.
const prognosisPlotRows = 14

// PlotData reduces the table to the series the charts draw: categorical rows
// collapse into a single Sum series (the Summary column excluded), aggregate
// keeps Income and Expense, prognosis keeps the account balance capped at
// prognosisPlotRows months.
func (t *Table) PlotData() []Series {
	switch t.Type {
	case Categorical:
		sum := Series{Name: "Sum"}
		for _, r := range t.Rows {
			total := 0.0
			for _, col := range t.ValueColumns() {
				if col == ColSummary {
					continue
				}
				total += r.Values[col]
			}
			sum.Months = append(sum.Months, r.YearMonth)
			sum.Values = append(sum.Values, total)
		}
		return []Series{sum}
	case Aggregate:
		income := Series{Name: ColIncome}
		expense := Series{Name: ColExpense}
		for _, r := range t.Rows {
			income.Months = append(income.Months, r.YearMonth)
			income.Values = append(income.Values, r.Values[ColIncome])
			expense.Months = append(expense.Months, r.YearMonth)
			expense.Values = append(expense.Values, r.Values[ColExpense])
		}
		return []Series{income, expense}
	case Prognosis:
		balance := Series{Name: ColBalance}
		for i, r := range t.Rows {
			if i >= prognosisPlotRows {
				break
			}
			balance.Months = append(balance.Months, r.YearMonth)
			balance.Values = append(balance.Values, r.Values[ColBalance])
		}
		return []Series{balance}
	}
	return nil
}

// DisplayPlotData is the home-screen variant of PlotData: the first four rows
// with every numeric column summed into one Sum series.
func (t *Table) DisplayPlotData() Series {
	sum := Series{Name: "Sum"}
	for i, r := range t.Rows {
		if i >= 4 {
			break
		}
		total := 0.0
		for _, col := range t.ValueColumns() {
			total += r.Values[col]
		}
		sum.Months = append(sum.Months, r.YearMonth)
		sum.Values = append(sum.Values, total)
	}
	return sum
}
