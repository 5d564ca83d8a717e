package internal

import (
	"encoding/json"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// RenderTable writes the result as a formatted terminal table. Numeric
// columns are right-aligned; negative prognosis balances show in red.
func RenderTable(w io.Writer, result *Table) {
	t := table.NewWriter()
	t.SetOutputMirror(w)

	header := table.Row{}
	for _, col := range result.Columns {
		header = append(header, col)
	}
	t.AppendHeader(header)

	display := result.DisplayRows()
	for i, cells := range display {
		row := table.Row{}
		for j, cell := range cells {
			if result.Type == Prognosis && result.Columns[j] == ColBalance &&
				result.Rows[i].Values[ColBalance] < 0 {
				cell = text.FgRed.Sprint(cell)
			}
			row = append(row, cell)
		}
		t.AppendRow(row)
	}

	t.SetStyle(table.StyleRounded)
	t.Style().Format.Header = text.FormatDefault

	configs := make([]table.ColumnConfig, 0, len(result.Columns)-1)
	for i := 2; i <= len(result.Columns); i++ {
		configs = append(configs, table.ColumnConfig{Number: i, Align: text.AlignRight})
	}
	t.SetColumnConfigs(configs)

	t.Render()
}

// JSONTable is the machine-readable rendering of a result table.
type JSONTable struct {
	Analysis string    `json:"analysis"`
	Columns  []string  `json:"columns"`
	Rows     []JSONRow `json:"rows"`
}

// JSONRow is one year-month line of a JSONTable.
type JSONRow struct {
	YearMonth string             `json:"year_month"`
	Values    map[string]float64 `json:"values"`
}

// PrintTableJSON outputs the result table in JSON format.
func PrintTableJSON(w io.Writer, result *Table) error {
	out := JSONTable{
		Analysis: string(result.Type),
		Columns:  result.Columns,
	}
	for _, r := range result.Rows {
		out.Rows = append(out.Rows, JSONRow{YearMonth: r.YearMonth, Values: r.Values})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
