// Package reports holds the read-side projections of the ledger: budget
// reconciliation, net worth, year-to-date totals and trailing trends.
//
// Every function here is pure. It receives plain slices copied out of the
// stores, never touches the database, never mutates its inputs and produces
// values whose slices are explicitly sorted, so the same inputs always yield
// byte-identical JSON.
package reports

import (
	"github.com/shopspring/decimal"

	"budgetbook/internal/models"
)

// Basis selects which transactions a MonthReport counts.
type Basis string

const (
	// BasisCleared counts cleared transactions only.
	BasisCleared Basis = "cleared"
	// BasisProjected counts cleared and pending transactions.
	BasisProjected Basis = "projected"
)

// CategoryLine is the budget-vs-actual row for one (category, subcategory).
type CategoryLine struct {
	Category    string              `json:"category"`
	Subcategory string              `json:"subcategory"`
	Planned     int64               `json:"planned"`
	Actual      int64               `json:"actual"`
	Variance    int64               `json:"variance"`
	PercentUsed decimal.NullDecimal `json:"percent_used"`
	Unplanned   bool                `json:"unplanned"`
}

// CategoryTotal rolls CategoryLines up to the first taxonomy level.
type CategoryTotal struct {
	Category string `json:"category"`
	Planned  int64  `json:"planned"`
	Actual   int64  `json:"actual"`
	Variance int64  `json:"variance"`
}

// SourceTotal is the income received from one source.
type SourceTotal struct {
	Source models.IncomeSource `json:"source"`
	Amount int64               `json:"amount"`
}

// MonthReport is the reconciliation of one month on one basis.
type MonthReport struct {
	Month            string              `json:"month"`
	Basis            Basis               `json:"basis"`
	TotalIncome      int64               `json:"total_income"`
	TotalExpenses    int64               `json:"total_expenses"`
	NetCashFlow      int64               `json:"net_cash_flow"`
	TotalPlanned     int64               `json:"total_planned"`
	Unallocated      int64               `json:"unallocated"`
	Balanced         bool                `json:"balanced"`
	SavingsRate      decimal.NullDecimal `json:"savings_rate"`
	IncomeBySource   []SourceTotal       `json:"income_by_source"`
	TransferIn       int64               `json:"transfer_in"`
	Categories       []CategoryLine      `json:"categories"`
	CategoryTotals   []CategoryTotal     `json:"category_totals"`
	TransactionCount int                 `json:"transaction_count"`
}

// Reconciliation pairs the cleared-only report with the projected one.
type Reconciliation struct {
	Month           string      `json:"month"`
	Cleared         MonthReport `json:"cleared"`
	Projected       MonthReport `json:"projected"`
	PendingCount    int         `json:"pending_count"`
	PendingIncome   int64       `json:"pending_income"`
	PendingExpenses int64       `json:"pending_expenses"`
}

// DeltaStatus explains whether a delta could be computed.
type DeltaStatus string

const (
	DeltaOK         DeltaStatus = "OK"
	DeltaNoBaseline DeltaStatus = "NoBaseline"
	DeltaNewAccount DeltaStatus = "NewAccount"
	DeltaClosed     DeltaStatus = "Closed"
)

// DeltaNoSnapshots marks a trend point whose month has no snapshots at all.
const DeltaNoSnapshots DeltaStatus = "NoSnapshots"


// AccountDelta is one account's month-over-month movement. PriorBalance and
// Delta are nil whenever there is no prior snapshot to compare against.
type AccountDelta struct {
	AccountID    string               `json:"account_id"`
	Account      string               `json:"account"`
	Tier         models.LiquidityTier `json:"tier"`
	Owner        models.AssetOwner    `json:"owner"`
	Balance      int64                `json:"balance"`
	PriorBalance *int64               `json:"prior_balance"`
	Delta        *int64               `json:"delta"`
	Status       DeltaStatus          `json:"status"`
}

// TierTotal is the net worth held in one liquidity tier.
type TierTotal struct {
	Tier         models.LiquidityTier `json:"tier"`
	Balance      int64                `json:"balance"`
	PriorBalance *int64               `json:"prior_balance"`
	Delta        *int64               `json:"delta"`
	Status       DeltaStatus          `json:"status"`
}

// OwnerTotal is the net worth held by one owner.
type OwnerTotal struct {
	Owner        models.AssetOwner `json:"owner"`
	Balance      int64             `json:"balance"`
	PriorBalance *int64            `json:"prior_balance"`
	Delta        *int64            `json:"delta"`
	Status       DeltaStatus       `json:"status"`
}

// NetWorthReport is the net worth of one month and its change from the
// previous calendar month.
type NetWorthReport struct {
	Month          string         `json:"month"`
	PriorMonth     string         `json:"prior_month"`
	HasBaseline    bool           `json:"has_baseline"`
	TotalNetWorth  int64          `json:"total_net_worth"`
	PriorNetWorth  *int64         `json:"prior_net_worth"`
	TotalDelta     *int64         `json:"total_delta"`
	TotalStatus    DeltaStatus    `json:"total_status"`
	ByTier         []TierTotal    `json:"by_tier"`
	ByOwner        []OwnerTotal   `json:"by_owner"`
	Accounts       []AccountDelta `json:"accounts"`
	NewAccounts    []AccountDelta `json:"new_accounts"`
	ClosedAccounts []AccountDelta `json:"closed_accounts"`
}

// MonthTotals is one month's cleared totals inside a YearToDateReport.
type MonthTotals struct {
	Month       string              `json:"month"`
	Income      int64               `json:"income"`
	Expenses    int64               `json:"expenses"`
	Saved       int64               `json:"saved"`
	SavingsRate decimal.NullDecimal `json:"savings_rate"`
}

// YearToDateReport aggregates cleared totals from January through a month.
type YearToDateReport struct {
	Year                      int                 `json:"year"`
	Through                   string              `json:"through"`
	Income                    int64               `json:"income"`
	Expenses                  int64               `json:"expenses"`
	Saved                     int64               `json:"saved"`
	SavingsRate               decimal.NullDecimal `json:"savings_rate"`
	AverageMonthlySavingsRate decimal.NullDecimal `json:"average_monthly_savings_rate"`
	Months                    []MonthTotals       `json:"months"`
}

// TrendPoint is one month of a TrendsReport. NetWorth is nil when the month
// has no snapshots, and NetWorthDelta is nil unless both the month and the one
// before it have snapshots.
type TrendPoint struct {
	MonthTotals
	NetWorth       *int64      `json:"net_worth"`
	NetWorthDelta  *int64      `json:"net_worth_delta"`
	NetWorthStatus DeltaStatus `json:"net_worth_status"`
}

// TrendsReport is the month-by-month history of a trailing window.
type TrendsReport struct {
	From                      string              `json:"from"`
	Through                   string              `json:"through"`
	Months                    int                 `json:"months"`
	Income                    int64               `json:"income"`
	Expenses                  int64               `json:"expenses"`
	Saved                     int64               `json:"saved"`
	SavingsRate               decimal.NullDecimal `json:"savings_rate"`
	AverageMonthlySavingsRate decimal.NullDecimal `json:"average_monthly_savings_rate"`
	NetWorthChange            *int64              `json:"net_worth_change"`
	Points                    []TrendPoint        `json:"points"`
}
