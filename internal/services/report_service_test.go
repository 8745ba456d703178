package services

import (
	"testing"

	"github.com/shopspring/decimal"

	"budgetbook/internal/models"
	"budgetbook/internal/reports"
	"budgetbook/internal/testutil"
)

func TestReportReconcile(t *testing.T) {
	t.Run("budget_vs_actual", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewReportService(db, NewStoreLocks())
		testutil.CreateTestIncome(t, db, testutil.TestDate(2025, 3, 1), 500000)
		testutil.CreateTestExpense(t, db, testutil.TestDate(2025, 3, 3), "Food", "Groceries", 40000)
		testutil.CreateTestExpense(t, db, testutil.TestDate(2025, 3, 1), "Housing", "Mortgage", 150000)
		testutil.CreateTestPlanRow(t, db, "2025-03", "Food", "Groceries", 45000)
		testutil.CreateTestPlanRow(t, db, "2025-03", "Housing", "Mortgage", 150000)
		testutil.CreateTestExpense(t, db, testutil.TestDate(2025, 4, 1), "Food", "Groceries", 999)

		r, err := svc.Reconcile("2025-03")
		testutil.AssertNoError(t, err)

		c := r.Cleared
		if c.TotalIncome != 500000 || c.TotalExpenses != 190000 || c.Unallocated != 305000 {
			t.Errorf("unexpected totals: %+v", c)
		}
		if !c.SavingsRate.Decimal.Equal(decimal.RequireFromString("0.62")) {
			t.Errorf("expected savings rate 0.62, got %s", c.SavingsRate.Decimal)
		}
	})

	t.Run("empty_month", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewReportService(db, NewStoreLocks())

		r, err := svc.Reconcile("2030-01")
		testutil.AssertNoError(t, err)
		if r.Cleared.TotalIncome != 0 || len(r.Cleared.Categories) != 0 || r.Cleared.SavingsRate.Valid {
			t.Errorf("expected empty report, got %+v", r.Cleared)
		}
	})

	t.Run("invalid_month", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewReportService(db, NewStoreLocks())

		_, err := svc.Reconcile("2025-3")
		testutil.AssertAppError(t, err, "INVALID_MONTH")
	})

	t.Run("deleted_transaction_leaves_aggregates", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		locks := NewStoreLocks()
		svc := NewReportService(db, locks)
		txSvc := NewTransactionService(db, locks)
		tx := testutil.CreateTestExpense(t, db, testutil.TestDate(2025, 3, 3), "Food", "Groceries", 40000)

		testutil.AssertNoError(t, txSvc.DeleteTransaction(tx.ID))

		r, err := svc.Reconcile("2025-03")
		testutil.AssertNoError(t, err)
		if r.Cleared.TotalExpenses != 0 || len(r.Cleared.Categories) != 0 {
			t.Errorf("expected deleted row to vanish, got %+v", r.Cleared)
		}
	})
}

func TestReportNetWorth(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewReportService(db, NewStoreLocks())
	k401 := testutil.CreateTestAssetAccount(t, db, models.TierNonLiquid, models.OwnerJeff)
	testutil.CreateTestSnapshot(t, db, k401, "2025-02", 5000000)
	testutil.CreateTestSnapshot(t, db, k401, "2025-03", 5120000)

	r, err := svc.NetWorth("2025-03")
	testutil.AssertNoError(t, err)

	if r.TotalDelta == nil || *r.TotalDelta != 120000 {
		t.Fatalf("expected total delta 120000, got %v", r.TotalDelta)
	}
	for _, tier := range r.ByTier {
		if tier.Tier == models.TierNonLiquid && (tier.Delta == nil || *tier.Delta != 120000) {
			t.Errorf("expected NonLiquid delta 120000, got %v", tier.Delta)
		}
	}

	first, err := svc.NetWorth("2025-02")
	testutil.AssertNoError(t, err)
	if first.HasBaseline || first.Accounts[0].Status != reports.DeltaNoBaseline {
		t.Errorf("expected first month without baseline, got %+v", first)
	}
}

func TestReportYearToDate(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewReportService(db, NewStoreLocks())
	testutil.CreateTestIncome(t, db, testutil.TestDate(2025, 1, 1), 100000)
	testutil.CreateTestExpense(t, db, testutil.TestDate(2025, 2, 1), "Food", "Groceries", 20000)
	testutil.CreateTestIncome(t, db, testutil.TestDate(2024, 12, 31), 777700)
	testutil.CreateTestIncome(t, db, testutil.TestDate(2025, 4, 1), 555500)

	r, err := svc.YearToDate(2025, "2025-03")
	testutil.AssertNoError(t, err)
	if r.Income != 100000 || r.Expenses != 20000 || len(r.Months) != 3 {
		t.Errorf("unexpected ytd report: %+v", r)
	}

	_, err = svc.YearToDate(2024, "2025-03")
	testutil.AssertAppError(t, err, "INVALID_MONTH")
}

func TestReportTrends(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewReportService(db, NewStoreLocks())
	testutil.CreateTestIncome(t, db, testutil.TestDate(2024, 12, 1), 300000)
	testutil.CreateTestExpense(t, db, testutil.TestDate(2025, 1, 5), "Food", "Groceries", 20000)
	testutil.CreateTestIncome(t, db, testutil.TestDate(2024, 10, 1), 999900)
	account := testutil.CreateTestAssetAccount(t, db, models.TierLiquid, models.OwnerJoint)
	testutil.CreateTestSnapshot(t, db, account, "2024-11", 100000)
	testutil.CreateTestSnapshot(t, db, account, "2024-12", 150000)
	testutil.CreateTestSnapshot(t, db, account, "2025-01", 140000)

	r, err := svc.Trends("2025-01", 2)
	testutil.AssertNoError(t, err)
	if r.From != "2024-12" || len(r.Points) != 2 {
		t.Fatalf("unexpected window: %+v", r)
	}
	if r.Income != 300000 || r.Expenses != 20000 {
		t.Errorf("unexpected totals: income %d expenses %d", r.Income, r.Expenses)
	}
	dec := r.Points[0]
	if dec.NetWorthStatus != reports.DeltaOK || dec.NetWorthDelta == nil || *dec.NetWorthDelta != 50000 {
		t.Errorf("expected December delta 50000 against November, got %+v", dec)
	}
	if r.NetWorthChange == nil || *r.NetWorthChange != -10000 {
		t.Errorf("expected net worth change -10000, got %v", r.NetWorthChange)
	}

	_, err = svc.Trends("2025-01", 0)
	testutil.AssertFieldError(t, err, "INVALID_INPUT", "months")
	_, err = svc.Trends("2025-01", MaxTrendMonths+1)
	testutil.AssertFieldError(t, err, "INVALID_INPUT", "months")
	_, err = svc.Trends("January", 12)
	testutil.AssertAppError(t, err, "INVALID_MONTH")
}

func TestReportSummary(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewReportService(db, NewStoreLocks())
	testutil.CreateTestIncome(t, db, testutil.TestDate(2025, 3, 1), 500000)
	account := testutil.CreateTestAssetAccount(t, db, models.TierLiquid, models.OwnerJoint)
	testutil.CreateTestSnapshot(t, db, account, "2025-03", 100000)

	summary, err := svc.Summary("2025-03")
	testutil.AssertNoError(t, err)

	if summary.Reconciliation == nil || summary.Reconciliation.Cleared.TotalIncome != 500000 {
		t.Errorf("unexpected reconciliation: %+v", summary.Reconciliation)
	}
	if summary.NetWorth == nil || summary.NetWorth.TotalNetWorth != 100000 {
		t.Errorf("unexpected net worth: %+v", summary.NetWorth)
	}

	_, err = svc.Summary("bad")
	testutil.AssertAppError(t, err, "INVALID_MONTH")
}
