package models

// BudgetPlan is the planned amount for one (month, category, subcategory).
type BudgetPlan struct {
	Base
	Month         string `gorm:"size:7;not null;uniqueIndex:uq_budget_plans_key" json:"month"`
	Category      string `gorm:"not null;uniqueIndex:uq_budget_plans_key" json:"category"`
	Subcategory   string `gorm:"not null;uniqueIndex:uq_budget_plans_key" json:"subcategory"`
	PlannedAmount int64  `gorm:"type:bigint;not null" json:"planned_amount"`
}
