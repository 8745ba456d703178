package services

import (
	"time"

	"budgetbook/internal/models"
	"budgetbook/internal/pagination"
	"budgetbook/internal/reports"
)

// TaxonomyServicer defines the contract for the two-level expense taxonomy.
type TaxonomyServicer interface {
	GetTaxonomy() ([]models.Category, error)
	CreateCategory(name string) (*models.Category, error)
	DeleteCategory(categoryID string) error
	CreateSubcategory(categoryID, name string) (*models.Subcategory, error)
	DeleteSubcategory(subcategoryID string) error
	ValidatePair(category, subcategory string) error
}

// TransactionInput carries the writable fields of a transaction.
type TransactionInput struct {
	Date        time.Time
	Kind        models.TransactionKind
	Amount      int64
	Person      models.Person
	Account     models.FundingAccount
	Status      models.TransactionStatus
	Category    string
	Subcategory string
	Source      models.IncomeSource
	Description string
}

// TransactionFilter holds optional filter parameters for listing transactions.
type TransactionFilter struct {
	Month  string
	Kind   *models.TransactionKind
	Status *models.TransactionStatus
}

// TransactionServicer defines the contract for the transaction store.
type TransactionServicer interface {
	CreateTransaction(in TransactionInput) (*models.Transaction, error)
	ImportTransaction(tx *models.Transaction) (bool, error)
	GetTransactions(filter TransactionFilter, page pagination.PageRequest) (*pagination.PageResponse[models.Transaction], error)
	GetMonthTransactions(month string) ([]models.Transaction, error)
	GetTransactionByID(transactionID string) (*models.Transaction, error)
	UpdateTransaction(transactionID string, in TransactionInput) (*models.Transaction, error)
	ClearTransaction(transactionID string) (*models.Transaction, error)
	UnclearTransaction(transactionID string) (*models.Transaction, error)
	DeleteTransaction(transactionID string) error
}

// PlanRowInput is one planned amount for a (category, subcategory).
type PlanRowInput struct {
	Category      string
	Subcategory   string
	PlannedAmount int64
}

// CopyResult describes a completed plan copy.
type CopyResult struct {
	SourceMonth  string `json:"source_month"`
	TargetMonth  string `json:"target_month"`
	RowsCopied   int    `json:"rows_copied"`
	RowsReplaced int    `json:"rows_replaced"`
	Overwrite    bool   `json:"overwrite"`
}

// BudgetPlanServicer defines the contract for monthly budget plans.
type BudgetPlanServicer interface {
	GetPlan(month string) ([]models.BudgetPlan, error)
	SetPlanRows(month string, rows []PlanRowInput) ([]models.BudgetPlan, error)
	DeletePlanRow(month, rowID string) error
	CopyPlan(sourceMonth, targetMonth string, overwrite bool) (*CopyResult, error)
}

// AssetAccountInput carries the fields of a new asset account.
type AssetAccountInput struct {
	Name        string
	Kind        models.AssetKind
	Tier        models.LiquidityTier
	Owner       models.AssetOwner
	Institution string
	Notes       string
}

// SnapshotInput is one account balance to record for a month.
type SnapshotInput struct {
	AccountID string
	Balance   int64
}

// AssetServicer defines the contract for asset accounts and their snapshots.
type AssetServicer interface {
	CreateAccount(in AssetAccountInput) (*models.AssetAccount, error)
	GetAccounts(includeClosed bool) ([]models.AssetAccount, error)
	GetAccountByID(accountID string) (*models.AssetAccount, error)
	GetAccountByName(name string) (*models.AssetAccount, error)
	UpdateAccountNotes(accountID, notes string) (*models.AssetAccount, error)
	CloseAccount(accountID, month string) (*models.AssetAccount, error)
	RecordSnapshots(month string, entries []SnapshotInput) ([]models.AssetSnapshot, error)
	GetSnapshots(month string) ([]models.AssetSnapshot, error)
}

// MonthSummary bundles both projections of a month.
type MonthSummary struct {
	Month          string                  `json:"month"`
	Reconciliation *reports.Reconciliation `json:"reconciliation"`
	NetWorth       *reports.NetWorthReport `json:"net_worth"`
}

// ReportServicer defines the contract for the read-side projections.
type ReportServicer interface {
	Reconcile(month string) (*reports.Reconciliation, error)
	NetWorth(month string) (*reports.NetWorthReport, error)
	YearToDate(year int, through string) (*reports.YearToDateReport, error)
	Trends(through string, months int) (*reports.TrendsReport, error)
	Summary(month string) (*MonthSummary, error)
}

// SavingsGoalInput carries the fields of a new savings goal.
type SavingsGoalInput struct {
	Name                string
	TargetAmount        int64
	CurrentAmount       int64
	MonthlyContribution int64
	TargetDate          *time.Time
	Priority            int
	Notes               string
}

// SavingsGoalServicer defines the contract for savings goals.
type SavingsGoalServicer interface {
	CreateGoal(in SavingsGoalInput) (*models.SavingsGoal, error)
	GetActiveGoals() ([]models.SavingsGoal, error)
	GetGoalByID(goalID string) (*models.SavingsGoal, error)
	Contribute(goalID string, amount int64) (*models.SavingsGoal, error)
	DeactivateGoal(goalID string) error
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(actor, action, resourceType, resourceID, ipAddress string, changes map[string]any)
}
