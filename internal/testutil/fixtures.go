package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"budgetbook/internal/models"

	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestCategory creates a category with a unique name.
func CreateTestCategory(t *testing.T, db *gorm.DB) *models.Category {
	t.Helper()
	return CreateTestCategoryNamed(t, db, fmt.Sprintf("Test Category %d", nextID()))
}

// CreateTestCategoryNamed creates a category with the given name.
func CreateTestCategoryNamed(t *testing.T, db *gorm.DB, name string) *models.Category {
	t.Helper()

	category := &models.Category{Name: name, Position: int(nextID())}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to create test category: %v", err)
	}
	return category
}

// CreateTestSubcategory creates a subcategory under category.
func CreateTestSubcategory(t *testing.T, db *gorm.DB, category *models.Category, name string) *models.Subcategory {
	t.Helper()

	sub := &models.Subcategory{CategoryID: category.ID, Name: name, Position: int(nextID())}
	if err := db.Create(sub).Error; err != nil {
		t.Fatalf("failed to create test subcategory: %v", err)
	}
	return sub
}

// CreateTestPair creates category/subcategory, reusing the category when it
// already exists.
func CreateTestPair(t *testing.T, db *gorm.DB, category, subcategory string) {
	t.Helper()

	var cat models.Category
	err := db.Where("name = ?", category).First(&cat).Error
	if err != nil {
		cat = *CreateTestCategoryNamed(t, db, category)
	}
	CreateTestSubcategory(t, db, &cat, subcategory)
}

// TestDate returns midnight UTC on the given day.
func TestDate(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// CreateTestExpense creates a cleared expense. The pair is not checked
// against the taxonomy.
func CreateTestExpense(t *testing.T, db *gorm.DB, date time.Time, category, subcategory string, amount int64) *models.Transaction {
	t.Helper()

	tx := &models.Transaction{
		Date:        date,
		Kind:        models.KindExpense,
		Amount:      amount,
		Person:      models.PersonJoint,
		Account:     models.FundingChecking,
		Status:      models.StatusCleared,
		Category:    category,
		Subcategory: subcategory,
	}
	if err := db.Create(tx).Error; err != nil {
		t.Fatalf("failed to create test expense: %v", err)
	}
	return tx
}

// CreateTestIncome creates cleared salary income.
func CreateTestIncome(t *testing.T, db *gorm.DB, date time.Time, amount int64) *models.Transaction {
	t.Helper()

	tx := &models.Transaction{
		Date:    date,
		Kind:    models.KindIncome,
		Amount:  amount,
		Person:  models.PersonJeff,
		Account: models.FundingChecking,
		Status:  models.StatusCleared,
		Source:  models.SourceSalary,
	}
	if err := db.Create(tx).Error; err != nil {
		t.Fatalf("failed to create test income: %v", err)
	}
	return tx
}

// CreateTestPlanRow creates a budget plan row.
func CreateTestPlanRow(t *testing.T, db *gorm.DB, month, category, subcategory string, amount int64) *models.BudgetPlan {
	t.Helper()

	row := &models.BudgetPlan{
		Month:         month,
		Category:      category,
		Subcategory:   subcategory,
		PlannedAmount: amount,
	}
	if err := db.Create(row).Error; err != nil {
		t.Fatalf("failed to create test plan row: %v", err)
	}
	return row
}

// CreateTestAssetAccount creates an open asset account with a unique name.
func CreateTestAssetAccount(t *testing.T, db *gorm.DB, tier models.LiquidityTier, owner models.AssetOwner) *models.AssetAccount {
	t.Helper()

	account := &models.AssetAccount{
		Name:  fmt.Sprintf("Test Asset %d", nextID()),
		Kind:  models.AssetKindSavings,
		Tier:  tier,
		Owner: owner,
	}
	if err := db.Create(account).Error; err != nil {
		t.Fatalf("failed to create test asset account: %v", err)
	}
	return account
}

// CreateTestSnapshot records balance for account in month.
func CreateTestSnapshot(t *testing.T, db *gorm.DB, account *models.AssetAccount, month string, balance int64) *models.AssetSnapshot {
	t.Helper()

	snap := &models.AssetSnapshot{
		Month:       month,
		AccountID:   account.ID,
		AccountName: account.Name,
		Tier:        account.Tier,
		Owner:       account.Owner,
		Balance:     balance,
		RecordedAt:  time.Now().UTC(),
	}
	if err := db.Create(snap).Error; err != nil {
		t.Fatalf("failed to create test snapshot: %v", err)
	}
	return snap
}

// CreateTestGoal creates an active savings goal.
func CreateTestGoal(t *testing.T, db *gorm.DB, target int64, priority int) *models.SavingsGoal {
	t.Helper()

	goal := &models.SavingsGoal{
		Name:         fmt.Sprintf("Test Goal %d", nextID()),
		TargetAmount: target,
		Priority:     priority,
		IsActive:     true,
	}
	if err := db.Create(goal).Error; err != nil {
		t.Fatalf("failed to create test goal: %v", err)
	}
	return goal
}
