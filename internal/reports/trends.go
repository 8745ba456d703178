package reports

import (
	"budgetbook/internal/models"
	"budgetbook/internal/money"
	"budgetbook/internal/period"
)

// Trends builds the trailing history of the months ending at through: one
// point per calendar month with cleared cash flow and the net worth recorded
// for it. Months without transactions or snapshots still get a point.
//
// snaps should include the month before the window so the first point can
// carry a delta.
func Trends(through period.Month, months int, txs []models.Transaction, snaps []models.AssetSnapshot) *TrendsReport {
	if months < 1 {
		months = 1
	}
	from := through
	for i := 1; i < months; i++ {
		from = from.Prev()
	}
	window := from.Through(through)

	worth := make(map[string]int64)
	for _, s := range snaps {
		worth[s.Month] += s.Balance
	}

	rows := monthTotals(window, txs)
	report := &TrendsReport{
		From:    from.String(),
		Through: through.String(),
		Months:  len(window),
		Points:  make([]TrendPoint, 0, len(window)),
	}

	var first, last int64
	valued := 0
	for i, mt := range rows {
		p := TrendPoint{MonthTotals: mt, NetWorthStatus: DeltaNoSnapshots}
		if total, ok := worth[mt.Month]; ok {
			p.NetWorth = ptr(total)
			p.NetWorthStatus = DeltaNoBaseline
			if prior, ok := worth[window[i].Prev().String()]; ok {
				p.NetWorthDelta = ptr(total - prior)
				p.NetWorthStatus = DeltaOK
			}
			if valued == 0 {
				first = total
			}
			last = total
			valued++
		}

		report.Income += mt.Income
		report.Expenses += mt.Expenses
		report.Points = append(report.Points, p)
	}

	report.Saved = report.Income - report.Expenses
	report.SavingsRate = money.Ratio(report.Saved, report.Income, savingsRatePlaces)
	report.AverageMonthlySavingsRate = averageRate(rows)
	if valued > 1 {
		report.NetWorthChange = ptr(last - first)
	}
	return report
}
