package models

import "time"

// SavingsGoal tracks progress towards a named savings target.
type SavingsGoal struct {
	Base
	Name                string     `gorm:"not null" json:"name"`
	TargetAmount        int64      `gorm:"type:bigint;not null" json:"target_amount"`
	CurrentAmount       int64      `gorm:"type:bigint;not null;default:0" json:"current_amount"`
	MonthlyContribution int64      `gorm:"type:bigint;not null;default:0" json:"monthly_contribution"`
	TargetDate          *time.Time `json:"target_date,omitempty"`
	Priority            int        `gorm:"not null;default:1" json:"priority"`
	IsActive            bool       `gorm:"not null;default:true" json:"is_active"`
	Notes               string     `json:"notes,omitempty"`
}

// ProgressPercent returns current/target as a percentage capped at 100.
func (g *SavingsGoal) ProgressPercent() float64 {
	if g.TargetAmount <= 0 {
		return 0
	}
	pct := float64(g.CurrentAmount) / float64(g.TargetAmount) * 100
	if pct > 100 {
		return 100
	}
	return pct
}
