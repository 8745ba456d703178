package models

import (
	"time"

	"gorm.io/gorm"

	"budgetbook/internal/period"
)

// Transaction is a single income or expense event.
//
// Category and Subcategory are stored by name, not by foreign key: a later
// taxonomy edit must not rewrite history. Month is derived from Date on save.
type Transaction struct {
	Base
	Date        time.Time         `gorm:"not null" json:"date"`
	Month       string            `gorm:"size:7;not null;index:idx_transactions_month" json:"month"`
	Kind        TransactionKind   `gorm:"not null" json:"kind"`
	Amount      int64             `gorm:"type:bigint;not null" json:"amount"`
	Person      Person            `gorm:"not null" json:"person"`
	Account     FundingAccount    `gorm:"not null" json:"account"`
	Status      TransactionStatus `gorm:"not null;default:'cleared'" json:"status"`
	Category    string            `json:"category,omitempty"`
	Subcategory string            `json:"subcategory,omitempty"`
	Source      IncomeSource      `json:"source,omitempty"`
	Description string            `json:"description"`
}

// BeforeSave normalises the date to a UTC calendar day and derives Month.
func (t *Transaction) BeforeSave(tx *gorm.DB) error {
	t.Date = CalendarDay(t.Date)
	t.Month = period.Of(t.Date).String()
	return nil
}

// IsPending reports whether the transaction has not yet cleared.
func (t *Transaction) IsPending() bool {
	return t.Status == StatusPending
}

// CalendarDay drops the clock and zone from t, keeping its calendar date.
func CalendarDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
