package services

import (
	"testing"

	"budgetbook/internal/models"
	"budgetbook/internal/pagination"
	"budgetbook/internal/testutil"
)

func expenseInput(category, subcategory string, amount int64) TransactionInput {
	return TransactionInput{
		Date:        testutil.TestDate(2025, 3, 14),
		Kind:        models.KindExpense,
		Amount:      amount,
		Person:      models.PersonJoint,
		Account:     models.FundingCreditCard,
		Category:    category,
		Subcategory: subcategory,
	}
}

func incomeInput(amount int64) TransactionInput {
	return TransactionInput{
		Date:    testutil.TestDate(2025, 3, 1),
		Kind:    models.KindIncome,
		Amount:  amount,
		Person:  models.PersonJeff,
		Account: models.FundingChecking,
		Source:  models.SourceSalary,
	}
}

func TestCreateTransaction(t *testing.T) {
	t.Run("expense_defaults_to_cleared", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db, NewStoreLocks())
		testutil.CreateTestPair(t, db, "Food", "Groceries")

		tx, err := svc.CreateTransaction(expenseInput("Food", "Groceries", 40000))
		testutil.AssertNoError(t, err)

		if tx.ID == "" {
			t.Fatal("expected transaction ID")
		}
		if tx.Status != models.StatusCleared {
			t.Errorf("expected status cleared, got %s", tx.Status)
		}
		if tx.Month != "2025-03" {
			t.Errorf("expected month 2025-03, got %s", tx.Month)
		}
	})

	t.Run("income", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db, NewStoreLocks())

		tx, err := svc.CreateTransaction(incomeInput(500000))
		testutil.AssertNoError(t, err)
		if tx.Source != models.SourceSalary {
			t.Errorf("expected source Salary, got %s", tx.Source)
		}
	})

	t.Run("unknown_pair", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db, NewStoreLocks())
		testutil.CreateTestPair(t, db, "Food", "Groceries")

		_, err := svc.CreateTransaction(expenseInput("Food", "Mortgage", 100))
		testutil.AssertAppError(t, err, "UNKNOWN_CATEGORY_PAIR")

		var count int64
		db.Model(&models.Transaction{}).Count(&count)
		if count != 0 {
			t.Errorf("expected nothing stored, got %d rows", count)
		}
	})

	invalid := map[string]func(in *TransactionInput){
		"zero_amount":         func(in *TransactionInput) { in.Amount = 0 },
		"negative_amount":     func(in *TransactionInput) { in.Amount = -5 },
		"bad_person":          func(in *TransactionInput) { in.Person = "jeff" },
		"bad_account":         func(in *TransactionInput) { in.Account = "Amex" },
		"bad_kind":            func(in *TransactionInput) { in.Kind = "refund" },
		"bad_status":          func(in *TransactionInput) { in.Status = "posted" },
		"missing_subcategory": func(in *TransactionInput) { in.Subcategory = "" },
		"expense_with_source": func(in *TransactionInput) { in.Source = models.SourceSalary },
	}
	for name, mutate := range invalid {
		t.Run(name, func(t *testing.T) {
			db := testutil.SetupTestDB(t)
			defer testutil.TeardownTestDB(t, db)
			svc := NewTransactionService(db, NewStoreLocks())
			testutil.CreateTestPair(t, db, "Food", "Groceries")

			in := expenseInput("Food", "Groceries", 100)
			mutate(&in)
			_, err := svc.CreateTransaction(in)
			testutil.AssertAppError(t, err, "INVALID_INPUT")
		})
	}

	t.Run("income_with_category", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db, NewStoreLocks())

		in := incomeInput(100)
		in.Category = "Food"
		_, err := svc.CreateTransaction(in)
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestUpdateTransaction(t *testing.T) {
	t.Run("pending_can_be_edited", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db, NewStoreLocks())
		testutil.CreateTestPair(t, db, "Food", "Groceries")
		testutil.CreateTestPair(t, db, "Food", "Restaurants")

		in := expenseInput("Food", "Groceries", 100)
		in.Status = models.StatusPending
		tx, err := svc.CreateTransaction(in)
		testutil.AssertNoError(t, err)

		edit := expenseInput("Food", "Restaurants", 250)
		edit.Date = testutil.TestDate(2025, 4, 2)
		updated, err := svc.UpdateTransaction(tx.ID, edit)
		testutil.AssertNoError(t, err)

		if updated.Amount != 250 || updated.Subcategory != "Restaurants" {
			t.Errorf("unexpected update result: %+v", updated)
		}
		if updated.Month != "2025-04" {
			t.Errorf("expected month to follow the date, got %s", updated.Month)
		}
		if !updated.IsPending() {
			t.Error("expected update to keep the transaction pending")
		}
	})

	t.Run("cleared_is_rejected", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db, NewStoreLocks())
		tx, err := svc.CreateTransaction(incomeInput(100))
		testutil.AssertNoError(t, err)

		_, err = svc.UpdateTransaction(tx.ID, incomeInput(200))
		testutil.AssertAppError(t, err, "TRANSACTION_CLEARED")

		stored, _ := svc.GetTransactionByID(tx.ID)
		if stored.Amount != 100 {
			t.Errorf("expected amount unchanged, got %d", stored.Amount)
		}
	})

	t.Run("unclear_then_edit", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db, NewStoreLocks())
		tx, err := svc.CreateTransaction(incomeInput(100))
		testutil.AssertNoError(t, err)

		_, err = svc.UnclearTransaction(tx.ID)
		testutil.AssertNoError(t, err)
		updated, err := svc.UpdateTransaction(tx.ID, incomeInput(200))
		testutil.AssertNoError(t, err)
		if updated.Amount != 200 {
			t.Errorf("expected amount 200, got %d", updated.Amount)
		}

		cleared, err := svc.ClearTransaction(tx.ID)
		testutil.AssertNoError(t, err)
		if cleared.Status != models.StatusCleared {
			t.Errorf("expected cleared, got %s", cleared.Status)
		}
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db, NewStoreLocks())

		_, err := svc.UpdateTransaction("missing", incomeInput(200))
		testutil.AssertAppError(t, err, "TRANSACTION_NOT_FOUND")
	})
}

func TestStatusTransitions(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewTransactionService(db, NewStoreLocks())
	tx, err := svc.CreateTransaction(incomeInput(100))
	testutil.AssertNoError(t, err)

	_, err = svc.ClearTransaction(tx.ID)
	testutil.AssertAppError(t, err, "INVALID_STATUS_TRANSITION")

	_, err = svc.UnclearTransaction(tx.ID)
	testutil.AssertNoError(t, err)
	_, err = svc.UnclearTransaction(tx.ID)
	testutil.AssertAppError(t, err, "INVALID_STATUS_TRANSITION")
}

func TestDeleteTransaction(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewTransactionService(db, NewStoreLocks())
	tx, err := svc.CreateTransaction(incomeInput(100))
	testutil.AssertNoError(t, err)

	testutil.AssertNoError(t, svc.DeleteTransaction(tx.ID))

	var count int64
	db.Model(&models.Transaction{}).Where("id = ?", tx.ID).Count(&count)
	if count != 0 {
		t.Errorf("expected row to be gone, found %d", count)
	}
	testutil.AssertAppError(t, svc.DeleteTransaction(tx.ID), "TRANSACTION_NOT_FOUND")
}

func TestGetTransactions(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewTransactionService(db, NewStoreLocks())
	testutil.CreateTestIncome(t, db, testutil.TestDate(2025, 3, 1), 500000)
	testutil.CreateTestExpense(t, db, testutil.TestDate(2025, 3, 5), "Food", "Groceries", 100)
	testutil.CreateTestExpense(t, db, testutil.TestDate(2025, 3, 9), "Food", "Groceries", 200)
	testutil.CreateTestExpense(t, db, testutil.TestDate(2025, 4, 1), "Food", "Groceries", 300)

	t.Run("by_month", func(t *testing.T) {
		result, err := svc.GetTransactions(TransactionFilter{Month: "2025-03"}, pagination.PageRequest{})
		testutil.AssertNoError(t, err)
		if result.TotalItems != 3 {
			t.Errorf("expected 3 transactions, got %d", result.TotalItems)
		}
		if result.Data[0].Amount != 200 {
			t.Errorf("expected newest first, got amount %d", result.Data[0].Amount)
		}
	})

	t.Run("by_kind", func(t *testing.T) {
		kind := models.KindExpense
		result, err := svc.GetTransactions(TransactionFilter{Kind: &kind}, pagination.PageRequest{Page: 1, PageSize: 2})
		testutil.AssertNoError(t, err)
		if result.TotalItems != 3 || len(result.Data) != 2 || result.TotalPages != 2 {
			t.Errorf("unexpected page: total %d, len %d, pages %d", result.TotalItems, len(result.Data), result.TotalPages)
		}
	})

	t.Run("invalid_month", func(t *testing.T) {
		_, err := svc.GetTransactions(TransactionFilter{Month: "March"}, pagination.PageRequest{})
		testutil.AssertAppError(t, err, "INVALID_MONTH")
	})

	t.Run("month_export_order", func(t *testing.T) {
		rows, err := svc.GetMonthTransactions("2025-03")
		testutil.AssertNoError(t, err)
		if len(rows) != 3 || rows[0].Kind != models.KindIncome {
			t.Errorf("expected 3 rows in date order, got %+v", rows)
		}
	})
}

func TestImportTransaction(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewTransactionService(db, NewStoreLocks())
	testutil.CreateTestPair(t, db, "Food", "Groceries")

	row := &models.Transaction{
		Base:        models.Base{ID: "0190a5b2-7c3e-7d41-8f2a-1b2c3d4e5f60"},
		Date:        testutil.TestDate(2025, 3, 14),
		Kind:        models.KindExpense,
		Amount:      40000,
		Person:      models.PersonJoint,
		Account:     models.FundingCash,
		Status:      models.StatusCleared,
		Category:    "Food",
		Subcategory: "Groceries",
	}

	created, err := svc.ImportTransaction(row)
	testutil.AssertNoError(t, err)
	if !created {
		t.Error("expected first import to create the row")
	}

	again := *row
	created, err = svc.ImportTransaction(&again)
	testutil.AssertNoError(t, err)
	if created {
		t.Error("expected second import to be skipped")
	}

	stored, err := svc.GetTransactionByID(row.ID)
	testutil.AssertNoError(t, err)
	if stored.Amount != 40000 {
		t.Errorf("expected amount 40000, got %d", stored.Amount)
	}

	bad := *row
	bad.ID = ""
	bad.Subcategory = "Unknown"
	_, err = svc.ImportTransaction(&bad)
	testutil.AssertAppError(t, err, "UNKNOWN_CATEGORY_PAIR")
}
