package internal

// calculateAggregate builds the monthly income vs. expense vs. savings-rate
// summary. Months with records of only one type get 0 for the other side
// rather than being dropped.
func calculateAggregate(req Request) *Table {
	sums := SumByMonthKey(req.Transactions, req.From, req.To, func(r Record) string {
		return string(r.Type)
	})

	table := &Table{
		Type:    Aggregate,
		Columns: []string{ColYearMonth, ColIncome, ColExpense, ColDifference, ColSavings},
	}

	for _, month := range MonthsOf(sums) {
		income := sums[GroupKey{Month: month, Key: string(TypeIncome)}]
		expense := sums[GroupKey{Month: month, Key: string(TypeExpense)}]

		// Income of exactly 0 would divide by zero; by convention such a
		// month reports a savings rate of 0 instead.
		savings := 0.0
		if income > 0 {
			savings = (1 - expense/income) * 100
			if savings < 0 {
				savings = 0
			}
		}

		table.Rows = append(table.Rows, Row{
			YearMonth: month,
			Values: map[string]float64{
				ColIncome:     round2(income),
				ColExpense:    round2(expense),
				ColDifference: round2(income - expense),
				ColSavings:    round2(savings),
			},
		})
	}
	return table
}
