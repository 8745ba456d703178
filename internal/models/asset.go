package models

import (
	"time"

	"budgetbook/internal/uuid"

	"gorm.io/gorm"
)

// AssetAccount is an investment, savings, real-asset or liability account
// whose balance is tracked through monthly snapshots. Tier and Owner are fixed
// for the account's lifetime.
type AssetAccount struct {
	Base
	Name        string        `gorm:"not null;uniqueIndex" json:"name"`
	Kind        AssetKind     `gorm:"not null" json:"kind"`
	Tier        LiquidityTier `gorm:"not null" json:"tier"`
	Owner       AssetOwner    `gorm:"not null" json:"owner"`
	Institution string        `json:"institution,omitempty"`
	Notes       string        `json:"notes,omitempty"`
	ClosedAt    *time.Time    `json:"closed_at,omitempty"`
	ClosedMonth string        `gorm:"size:7" json:"closed_month,omitempty"`
}

// IsClosed reports whether the account has been closed.
func (a *AssetAccount) IsClosed() bool {
	return a.ClosedAt != nil
}

// AssetSnapshot is the balance of one account at one month.
// This is immutable time-series data: a re-recorded balance replaces the row's
// balance, never its attribution.
type AssetSnapshot struct {
	ID          string        `gorm:"type:uuid;primaryKey" json:"id"`
	Month       string        `gorm:"size:7;not null;uniqueIndex:uq_asset_snapshots_month_account" json:"month"`
	AccountID   string        `gorm:"type:uuid;not null;uniqueIndex:uq_asset_snapshots_month_account" json:"account_id"`
	AccountName string        `gorm:"not null" json:"account_name"`
	Tier        LiquidityTier `gorm:"not null" json:"tier"`
	Owner       AssetOwner    `gorm:"not null" json:"owner"`
	Balance     int64         `gorm:"type:bigint;not null" json:"balance"`
	RecordedAt  time.Time     `gorm:"not null" json:"recorded_at"`
}

// BeforeCreate hook generates a UUIDv7 for new records
func (s *AssetSnapshot) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.New()
	}
	return nil
}
