package internal

import "time"

// calculatePrognosis projects the account balance month by month from the
// last known transaction through the end of the requested window.
//
// The anchor month is special: its spending is the average minus what was
// already spent between the 1st and the anchor date (floored at 0), and its
// revenue drops to 0 when income was already recorded that month, since that
// salary is assumed to be inside the supplied balance. Every later month uses
// the nominal averages. Each balance is the previous one plus revenue minus
// spending minus that month's planned expenses.
func calculatePrognosis(req Request) *Table {
	avgRevenue := *req.AverageRevenue
	avgSpendings := *req.AverageSpendings

	now := req.Now
	if now.IsZero() {
		now = time.Now()
	}

	// The anchor is the last record in storage order. Callers maintain
	// append order, so back-dated entries added late shift the anchor; this
	// mirrors the desktop app rather than taking the chronological maximum.
	anchor := now
	firstRevenue := avgRevenue
	firstSpendings := avgSpendings

	if len(req.Transactions) > 0 {
		anchor = req.Transactions[len(req.Transactions)-1].Date

		spent := 0.0
		for _, r := range req.Transactions {
			if r.Type == TypeExpense && InWindow(r.Date, MonthStart(anchor), anchor) {
				spent += r.Amount
			}
		}
		firstSpendings = avgSpendings - spent
		if firstSpendings < 0 {
			firstSpendings = 0
		}

		for _, r := range req.Transactions {
			if r.Type == TypeIncome && InWindow(r.Date, MonthStart(anchor), MonthEnd(anchor)) {
				firstRevenue = 0
				break
			}
		}
	}

	// The recurrence always starts at the anchor month so the carry-forward
	// math stays intact; the displayed window is cut down afterwards.
	months := MonthRange(anchor, req.To)

	planned := make(map[string]float64)
	if req.Upcomings != nil {
		planned = SumByMonth(req.Upcomings, MonthStart(anchor), req.To)
	}

	table := &Table{
		Type:    Prognosis,
		Columns: []string{ColYearMonth, ColBalance, ColAvgRevenue, ColAvgSpendings, ColPlanned},
	}

	balance := *req.AccountBalance
	for i, month := range months {
		revenue := avgRevenue
		spendings := avgSpendings
		if i == 0 {
			revenue = firstRevenue
			spendings = firstSpendings
		}
		plannedHere := planned[month]

		balance = round2(balance + revenue - spendings - plannedHere)

		table.Rows = append(table.Rows, Row{
			YearMonth: month,
			Values: map[string]float64{
				ColBalance: balance,
				// The displayed revenue stays nominal even for the anchor
				// month; only the spendings column shows the adjusted value.
				ColAvgRevenue:   round2(avgRevenue),
				ColAvgSpendings: round2(spendings),
				ColPlanned:      round2(plannedHere),
			},
		})
	}

	// Drop leading months that ended before the requested window started.
	kept := table.Rows[:0]
	for _, r := range table.Rows {
		first, err := ParseMonth(r.YearMonth)
		if err != nil {
			continue
		}
		if !MonthEnd(first).Before(req.From) {
			kept = append(kept, r)
		}
	}
	table.Rows = kept
	return table
}
