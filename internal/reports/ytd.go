package reports

import (
	"github.com/shopspring/decimal"

	"budgetbook/internal/models"
	"budgetbook/internal/money"
	"budgetbook/internal/period"
)

// YearToDate sums cleared income and expenses for every month from January
// of through's year up to and including through.
func YearToDate(through period.Month, txs []models.Transaction) *YearToDateReport {
	first := period.Month{Year: through.Year, Month: 1}
	rows := monthTotals(first.Through(through), txs)

	report := &YearToDateReport{
		Year:    through.Year,
		Through: through.String(),
		Months:  rows,
	}
	for _, mt := range rows {
		report.Income += mt.Income
		report.Expenses += mt.Expenses
	}
	report.Saved = report.Income - report.Expenses
	report.SavingsRate = money.Ratio(report.Saved, report.Income, savingsRatePlaces)
	report.AverageMonthlySavingsRate = averageRate(rows)
	return report
}

// monthTotals sums cleared income and expenses for each of months, in order.
// Transactions outside months are ignored.
func monthTotals(months []period.Month, txs []models.Transaction) []MonthTotals {
	byMonth := make(map[string]*MonthTotals, len(months))
	for _, m := range months {
		byMonth[m.String()] = &MonthTotals{Month: m.String()}
	}

	for i := range txs {
		t := &txs[i]
		mt, ok := byMonth[t.Month]
		if !ok || t.IsPending() {
			continue
		}
		switch t.Kind {
		case models.KindIncome:
			mt.Income += t.Amount
		case models.KindExpense:
			mt.Expenses += t.Amount
		}
	}

	rows := make([]MonthTotals, 0, len(months))
	for _, m := range months {
		mt := byMonth[m.String()]
		mt.Saved = mt.Income - mt.Expenses
		mt.SavingsRate = money.Ratio(mt.Saved, mt.Income, savingsRatePlaces)
		rows = append(rows, *mt)
	}
	return rows
}

// averageRate is the mean of the defined monthly savings rates. Months
// without income do not count.
func averageRate(rows []MonthTotals) decimal.NullDecimal {
	sum := decimal.Zero
	defined := 0
	for _, mt := range rows {
		if mt.SavingsRate.Valid {
			sum = sum.Add(mt.SavingsRate.Decimal)
			defined++
		}
	}
	if defined == 0 {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{
		Decimal: sum.DivRound(decimal.NewFromInt(int64(defined)), savingsRatePlaces),
		Valid:   true,
	}
}
