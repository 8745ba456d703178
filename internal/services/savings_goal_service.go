package services

import (
	"fmt"

	"gorm.io/gorm"

	apperrors "budgetbook/internal/errors"
	"budgetbook/internal/models"
)

// savingsGoalService handles savings goals.
type savingsGoalService struct {
	db *gorm.DB
}

// NewSavingsGoalService creates a new SavingsGoalServicer.
func NewSavingsGoalService(db *gorm.DB) SavingsGoalServicer {
	return &savingsGoalService{db: db}
}

// CreateGoal creates an active savings goal.
func (s *savingsGoalService) CreateGoal(in SavingsGoalInput) (*models.SavingsGoal, error) {
	name := cleanName(in.Name)
	if name == "" {
		return nil, invalid("name", "is required")
	}
	if in.TargetAmount <= 0 {
		return nil, invalid("target_amount", "must be greater than zero")
	}
	if in.CurrentAmount < 0 {
		return nil, invalid("current_amount", "must not be negative")
	}
	if in.MonthlyContribution < 0 {
		return nil, invalid("monthly_contribution", "must not be negative")
	}
	if in.Priority == 0 {
		in.Priority = 1
	}
	if in.Priority < 0 {
		return nil, invalid("priority", "must be positive")
	}

	goal := &models.SavingsGoal{
		Name:                name,
		TargetAmount:        in.TargetAmount,
		CurrentAmount:       in.CurrentAmount,
		MonthlyContribution: in.MonthlyContribution,
		TargetDate:          in.TargetDate,
		Priority:            in.Priority,
		IsActive:            true,
		Notes:               in.Notes,
	}
	if err := s.db.Create(goal).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return goal, nil
}

// GetActiveGoals lists active goals by priority, then target date.
func (s *savingsGoalService) GetActiveGoals() ([]models.SavingsGoal, error) {
	var goals []models.SavingsGoal
	err := s.db.Where("is_active = ?", true).
		Order("priority ASC").
		Order("CASE WHEN target_date IS NULL THEN 1 ELSE 0 END").
		Order("target_date ASC").
		Order("name ASC").
		Find(&goals).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if goals == nil {
		goals = []models.SavingsGoal{}
	}
	return goals, nil
}

// GetGoalByID retrieves a goal by id.
func (s *savingsGoalService) GetGoalByID(goalID string) (*models.SavingsGoal, error) {
	var goal models.SavingsGoal
	if err := s.db.Where("id = ?", goalID).First(&goal).Error; err != nil {
		return nil, notFound(err, apperrors.ErrGoalNotFound)
	}
	return &goal, nil
}

// Contribute adds amount to a goal's current amount.
func (s *savingsGoalService) Contribute(goalID string, amount int64) (*models.SavingsGoal, error) {
	if amount <= 0 {
		return nil, invalid("amount", "must be greater than zero")
	}

	var goal *models.SavingsGoal
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var g models.SavingsGoal
		if err := tx.Where("id = ? AND is_active = ?", goalID, true).First(&g).Error; err != nil {
			return notFound(err, apperrors.ErrGoalNotFound)
		}
		if err := tx.Model(&g).Update("current_amount", gorm.Expr("current_amount + ?", amount)).Error; err != nil {
			return err
		}
		if err := tx.Where("id = ?", goalID).First(&g).Error; err != nil {
			return err
		}
		goal = &g
		return nil
	})
	if err != nil {
		return nil, internal(err)
	}
	return goal, nil
}

// DeactivateGoal hides a goal from the active list. The row is kept.
func (s *savingsGoalService) DeactivateGoal(goalID string) error {
	result := s.db.Model(&models.SavingsGoal{}).
		Where("id = ? AND is_active = ?", goalID, true).
		Update("is_active", false)
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.WithMessage(apperrors.ErrGoalNotFound, fmt.Sprintf("no active savings goal %q", goalID))
	}
	return nil
}
