package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	apperrors "budgetbook/internal/errors"
	"budgetbook/internal/metrics"
	"budgetbook/internal/models"
)

// budgetPlanService handles monthly budget plans.
type budgetPlanService struct {
	db    *gorm.DB
	locks *StoreLocks
}

// NewBudgetPlanService creates a new BudgetPlanServicer.
func NewBudgetPlanService(db *gorm.DB, locks *StoreLocks) BudgetPlanServicer {
	return &budgetPlanService{db: db, locks: locks}
}

func planRows(db *gorm.DB, month string) ([]models.BudgetPlan, error) {
	var rows []models.BudgetPlan
	err := db.Where("month = ?", month).
		Order("category ASC, subcategory ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []models.BudgetPlan{}
	}
	return rows, nil
}

// GetPlan returns the plan rows of month sorted by category and subcategory.
func (s *budgetPlanService) GetPlan(month string) ([]models.BudgetPlan, error) {
	m, err := parseMonth("month", month)
	if err != nil {
		return nil, err
	}

	s.locks.Plans.RLock()
	defer s.locks.Plans.RUnlock()

	rows, err := planRows(s.db, m.String())
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return rows, nil
}

// SetPlanRows upserts rows into month's plan. Either every row is written or
// none is.
func (s *budgetPlanService) SetPlanRows(month string, rows []PlanRowInput) ([]models.BudgetPlan, error) {
	m, err := parseMonth("month", month)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, invalid("rows", "at least one row is required")
	}
	for i, row := range rows {
		if row.PlannedAmount < 0 {
			return nil, invalid(fmt.Sprintf("rows[%d].planned_amount", i), "must not be negative")
		}
		if row.Category == "" || row.Subcategory == "" {
			return nil, invalid(fmt.Sprintf("rows[%d].category", i), "category and subcategory are required")
		}
	}

	s.locks.Taxonomy.RLock()
	defer s.locks.Taxonomy.RUnlock()
	s.locks.Plans.Lock()
	defer s.locks.Plans.Unlock()

	var result []models.BudgetPlan
	err = s.db.Transaction(func(tx *gorm.DB) error {
		for _, row := range rows {
			if err := validatePair(tx, row.Category, row.Subcategory); err != nil {
				return err
			}

			var existing models.BudgetPlan
			err := tx.Where("month = ? AND category = ? AND subcategory = ?", m.String(), row.Category, row.Subcategory).
				First(&existing).Error
			switch {
			case err == nil:
				if err := tx.Model(&existing).Update("planned_amount", row.PlannedAmount).Error; err != nil {
					return err
				}
			case errors.Is(err, gorm.ErrRecordNotFound):
				plan := &models.BudgetPlan{
					Month:         m.String(),
					Category:      row.Category,
					Subcategory:   row.Subcategory,
					PlannedAmount: row.PlannedAmount,
				}
				if err := tx.Create(plan).Error; err != nil {
					return err
				}
			default:
				return err
			}
		}

		var err error
		result, err = planRows(tx, m.String())
		return err
	})
	if err != nil {
		return nil, internal(err)
	}
	return result, nil
}

// DeletePlanRow removes one row from month's plan.
func (s *budgetPlanService) DeletePlanRow(month, rowID string) error {
	m, err := parseMonth("month", month)
	if err != nil {
		return err
	}

	s.locks.Plans.Lock()
	defer s.locks.Plans.Unlock()

	result := s.db.Where("id = ? AND month = ?", rowID, m.String()).Delete(&models.BudgetPlan{})
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrPlanRowNotFound
	}
	return nil
}

// CopyPlan copies every row of sourceMonth into targetMonth as new rows. A
// target that already has rows is only replaced when overwrite is set; the
// delete and the inserts commit together or not at all.
func (s *budgetPlanService) CopyPlan(sourceMonth, targetMonth string, overwrite bool) (*CopyResult, error) {
	result, err := s.copyPlan(sourceMonth, targetMonth, overwrite)
	outcome := "ok"
	if err != nil {
		outcome = "error"
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			outcome = appErr.Code
		}
	}
	metrics.PlanCopies.WithLabelValues(outcome).Inc()
	return result, err
}

func (s *budgetPlanService) copyPlan(sourceMonth, targetMonth string, overwrite bool) (*CopyResult, error) {
	source, err := parseMonth("source_month", sourceMonth)
	if err != nil {
		return nil, err
	}
	target, err := parseMonth("target_month", targetMonth)
	if err != nil {
		return nil, err
	}
	if source == target {
		return nil, invalid("target_month", "must differ from source_month")
	}

	s.locks.Plans.Lock()
	defer s.locks.Plans.Unlock()

	result := &CopyResult{
		SourceMonth: source.String(),
		TargetMonth: target.String(),
		Overwrite:   overwrite,
	}
	err = s.db.Transaction(func(tx *gorm.DB) error {
		rows, err := planRows(tx, source.String())
		if err != nil {
			return err
		}
		if len(rows) == 0 {
			return apperrors.WithMessage(apperrors.ErrSourceEmpty,
				fmt.Sprintf("source_month: %s has no budget plan rows", source))
		}

		var existing int64
		if err := tx.Model(&models.BudgetPlan{}).Where("month = ?", target.String()).Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			if !overwrite {
				return apperrors.WithMessage(apperrors.ErrTargetNotEmpty,
					fmt.Sprintf("target_month: %s already has %d budget plan rows", target, existing))
			}
			if err := tx.Where("month = ?", target.String()).Delete(&models.BudgetPlan{}).Error; err != nil {
				return err
			}
			result.RowsReplaced = int(existing)
		}

		copies := make([]models.BudgetPlan, len(rows))
		for i, row := range rows {
			copies[i] = models.BudgetPlan{
				Month:         target.String(),
				Category:      row.Category,
				Subcategory:   row.Subcategory,
				PlannedAmount: row.PlannedAmount,
			}
		}
		if err := tx.Create(&copies).Error; err != nil {
			return err
		}
		result.RowsCopied = len(copies)
		return nil
	})
	if err != nil {
		return nil, internal(err)
	}
	return result, nil
}
