package models

import (
	"time"

	"budgetbook/internal/uuid"

	"gorm.io/gorm"
)

// Base contains common columns for all mutable tables.
type Base struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate hook generates a UUIDv7 for new records
func (b *Base) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.New()
	}
	return nil
}

// All lists every persisted model in dependency order. It drives AutoMigrate
// for SQLite and the table list in tests.
func All() []interface{} {
	return []interface{}{
		&Category{},
		&Subcategory{},
		&Transaction{},
		&BudgetPlan{},
		&AssetAccount{},
		&AssetSnapshot{},
		&SavingsGoal{},
		&AuditLog{},
	}
}
