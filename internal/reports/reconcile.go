package reports

import (
	"sort"

	"budgetbook/internal/models"
	"budgetbook/internal/money"
	"budgetbook/internal/period"
)

// savingsRatePlaces is the precision of savings rates (0.6200 = 62%).
const savingsRatePlaces = 4

type pairKey struct {
	category    string
	subcategory string
}

// Reconcile builds the cleared and projected reports for month. Rows whose
// Month differs from month are ignored.
func Reconcile(month period.Month, txs []models.Transaction, plans []models.BudgetPlan) *Reconciliation {
	key := month.String()

	var inMonth []models.Transaction
	for i := range txs {
		if txs[i].Month == key {
			inMonth = append(inMonth, txs[i])
		}
	}
	var monthPlans []models.BudgetPlan
	for i := range plans {
		if plans[i].Month == key {
			monthPlans = append(monthPlans, plans[i])
		}
	}

	result := &Reconciliation{
		Month:     key,
		Cleared:   buildMonthReport(key, BasisCleared, inMonth, monthPlans),
		Projected: buildMonthReport(key, BasisProjected, inMonth, monthPlans),
	}
	for i := range inMonth {
		if !inMonth[i].IsPending() {
			continue
		}
		result.PendingCount++
		switch inMonth[i].Kind {
		case models.KindIncome:
			result.PendingIncome += inMonth[i].Amount
		case models.KindExpense:
			result.PendingExpenses += inMonth[i].Amount
		}
	}
	return result
}

func buildMonthReport(month string, basis Basis, txs []models.Transaction, plans []models.BudgetPlan) MonthReport {
	report := MonthReport{
		Month:          month,
		Basis:          basis,
		Categories:     []CategoryLine{},
		CategoryTotals: []CategoryTotal{},
	}

	bySource := make(map[models.IncomeSource]int64, len(models.IncomeSources))
	actuals := make(map[pairKey]int64)
	for i := range txs {
		t := &txs[i]
		if basis == BasisCleared && t.IsPending() {
			continue
		}
		report.TransactionCount++
		switch t.Kind {
		case models.KindIncome:
			report.TotalIncome += t.Amount
			bySource[t.Source] += t.Amount
		case models.KindExpense:
			report.TotalExpenses += t.Amount
			actuals[pairKey{t.Category, t.Subcategory}] += t.Amount
		}
	}

	planned := make(map[pairKey]int64, len(plans))
	for i := range plans {
		k := pairKey{plans[i].Category, plans[i].Subcategory}
		planned[k] += plans[i].PlannedAmount
		report.TotalPlanned += plans[i].PlannedAmount
	}

	keys := make([]pairKey, 0, len(planned)+len(actuals))
	for k := range planned {
		keys = append(keys, k)
	}
	for k := range actuals {
		if _, ok := planned[k]; !ok {
			keys = append(keys, k)
		}
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].category != keys[j].category {
			return keys[i].category < keys[j].category
		}
		return keys[i].subcategory < keys[j].subcategory
	})

	for _, k := range keys {
		plan, hasPlan := planned[k]
		actual := actuals[k]
		line := CategoryLine{
			Category:    k.category,
			Subcategory: k.subcategory,
			Planned:     plan,
			Actual:      actual,
			Variance:    plan - actual,
			Unplanned:   !hasPlan && actual > 0,
		}
		if plan > 0 {
			line.PercentUsed = money.Ratio(actual*100, plan, 2)
		}
		report.Categories = append(report.Categories, line)

		n := len(report.CategoryTotals)
		if n == 0 || report.CategoryTotals[n-1].Category != k.category {
			report.CategoryTotals = append(report.CategoryTotals, CategoryTotal{Category: k.category})
			n++
		}
		total := &report.CategoryTotals[n-1]
		total.Planned += plan
		total.Actual += actual
		total.Variance += plan - actual
	}

	for _, src := range models.IncomeSources {
		report.IncomeBySource = append(report.IncomeBySource, SourceTotal{Source: src, Amount: bySource[src]})
	}
	report.TransferIn = bySource[models.SourceTransfer]

	report.NetCashFlow = report.TotalIncome - report.TotalExpenses
	report.Unallocated = report.TotalIncome - report.TotalPlanned
	report.Balanced = report.TotalPlanned <= report.TotalIncome
	report.SavingsRate = money.Ratio(report.NetCashFlow, report.TotalIncome, savingsRatePlaces)

	return report
}
