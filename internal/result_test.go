package internal

import (
	"fmt"
	"reflect"
	"testing"
)

func TestDisplayNumber(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0,00"},
		{1234.5, "1234,50"},
		// Half-way values round away from zero, not half-to-even.
		{850.125, "850,13"},
		{-850.125, "-850,13"},
		{96.666666, "96,67"},
	}
	for _, tt := range tests {
		if got := DisplayNumber(tt.in); got != tt.want {
			t.Errorf("DisplayNumber(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDisplayRows(t *testing.T) {
	table := &Table{
		Type:    Aggregate,
		Columns: []string{ColYearMonth, ColIncome, ColExpense, ColDifference, ColSavings},
		Rows: []Row{
			{YearMonth: "2024-03", Values: map[string]float64{
				ColIncome: 3000, ColExpense: 100, ColDifference: 2900, ColSavings: 96.67,
			}},
		},
	}
	want := [][]string{{"2024-03", "3000,00", "100,00", "2900,00", "96,67"}}
	if got := table.DisplayRows(); !reflect.DeepEqual(got, want) {
		t.Errorf("DisplayRows() = %v, want %v", got, want)
	}
}

func TestPlotData_Categorical(t *testing.T) {
	table := &Table{
		Type:    Categorical,
		Columns: []string{ColYearMonth, "Food", "Rent", ColSummary},
		Rows: []Row{
			{YearMonth: "2024-03", Values: map[string]float64{"Food": 100, "Rent": 850, ColSummary: 950}},
			{YearMonth: "2024-04", Values: map[string]float64{"Food": 120, "Rent": 850, ColSummary: 970}},
		},
	}
	series := table.PlotData()
	if len(series) != 1 || series[0].Name != "Sum" {
		t.Fatalf("series = %+v", series)
	}
	// Summary must not be double-counted into the sum.
	if want := []float64{950, 970}; !reflect.DeepEqual(series[0].Values, want) {
		t.Errorf("values = %v, want %v", series[0].Values, want)
	}
	if want := []string{"2024-03", "2024-04"}; !reflect.DeepEqual(series[0].Months, want) {
		t.Errorf("months = %v, want %v", series[0].Months, want)
	}
}

func TestPlotData_Aggregate(t *testing.T) {
	table := &Table{
		Type:    Aggregate,
		Columns: []string{ColYearMonth, ColIncome, ColExpense, ColDifference, ColSavings},
		Rows: []Row{
			{YearMonth: "2024-03", Values: map[string]float64{
				ColIncome: 3000, ColExpense: 100, ColDifference: 2900, ColSavings: 96.67,
			}},
		},
	}
	series := table.PlotData()
	if len(series) != 2 {
		t.Fatalf("expected 2 series, got %d", len(series))
	}
	if series[0].Name != ColIncome || series[0].Values[0] != 3000 {
		t.Errorf("income series = %+v", series[0])
	}
	if series[1].Name != ColExpense || series[1].Values[0] != 100 {
		t.Errorf("expense series = %+v", series[1])
	}
}

func TestPlotData_PrognosisCap(t *testing.T) {
	table := &Table{
		Type:    Prognosis,
		Columns: []string{ColYearMonth, ColBalance, ColAvgRevenue, ColAvgSpendings},
	}
	for i := 0; i < 20; i++ {
		table.Rows = append(table.Rows, Row{
			YearMonth: fmt.Sprintf("2024-%02d", i+1),
			Values:    map[string]float64{ColBalance: float64(1000 + i)},
		})
	}
	series := table.PlotData()
	if len(series) != 1 || series[0].Name != ColBalance {
		t.Fatalf("series = %+v", series)
	}
	if len(series[0].Values) != 14 {
		t.Errorf("expected 14 plotted months, got %d", len(series[0].Values))
	}
	if series[0].Values[13] != 1013 {
		t.Errorf("last plotted value = %v, want 1013", series[0].Values[13])
	}
}

func TestDisplayPlotData(t *testing.T) {
	table := &Table{
		Type:    Aggregate,
		Columns: []string{ColYearMonth, ColIncome, ColExpense, ColDifference, ColSavings},
	}
	for i := 0; i < 6; i++ {
		table.Rows = append(table.Rows, Row{
			YearMonth: fmt.Sprintf("2024-%02d", i+1),
			Values: map[string]float64{
				ColIncome: 100, ColExpense: 40, ColDifference: 60, ColSavings: 60,
			},
		})
	}
	sum := table.DisplayPlotData()
	if len(sum.Values) != 4 {
		t.Fatalf("expected 4 rows, got %d", len(sum.Values))
	}
	for i, v := range sum.Values {
		if v != 260 {
			t.Errorf("row %d sum = %v, want 260", i, v)
		}
	}
}
