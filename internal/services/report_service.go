package services

import (
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	apperrors "budgetbook/internal/errors"
	"budgetbook/internal/metrics"
	"budgetbook/internal/models"
	"budgetbook/internal/period"
	"budgetbook/internal/reports"
)

// reportService takes consistent snapshots of the stores and hands them to
// the pure projections in package reports.
type reportService struct {
	db    *gorm.DB
	locks *StoreLocks
}

// NewReportService creates a new ReportServicer.
func NewReportService(db *gorm.DB, locks *StoreLocks) ReportServicer {
	return &reportService{db: db, locks: locks}
}

func observe(report string, start time.Time) {
	metrics.ReportsComputed.WithLabelValues(report).Inc()
	metrics.ReportDuration.WithLabelValues(report).Observe(time.Since(start).Seconds())
}

// Reconcile computes the budget-vs-actual report of month.
func (s *reportService) Reconcile(month string) (*reports.Reconciliation, error) {
	m, err := parseMonth("month", month)
	if err != nil {
		return nil, err
	}
	defer observe("reconciliation", time.Now())

	s.locks.Transactions.RLock()
	defer s.locks.Transactions.RUnlock()
	s.locks.Plans.RLock()
	defer s.locks.Plans.RUnlock()

	var txs []models.Transaction
	var plans []models.BudgetPlan
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("month = ?", m.String()).Find(&txs).Error; err != nil {
			return err
		}
		return tx.Where("month = ?", m.String()).Find(&plans).Error
	})
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return reports.Reconcile(m, txs, plans), nil
}

// NetWorth computes month's net worth and its change from the previous month.
func (s *reportService) NetWorth(month string) (*reports.NetWorthReport, error) {
	m, err := parseMonth("month", month)
	if err != nil {
		return nil, err
	}
	defer observe("net_worth", time.Now())

	s.locks.Snapshots.RLock()
	defer s.locks.Snapshots.RUnlock()

	var current, prior []models.AssetSnapshot
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("month = ?", m.String()).Find(&current).Error; err != nil {
			return err
		}
		return tx.Where("month = ?", m.Prev().String()).Find(&prior).Error
	})
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return reports.NetWorth(m, current, prior), nil
}

// YearToDate sums cleared totals from January of year through the given
// month, which must fall in year.
func (s *reportService) YearToDate(year int, through string) (*reports.YearToDateReport, error) {
	m, err := parseMonth("through", through)
	if err != nil {
		return nil, err
	}
	if m.Year != year {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidMonth,
			fmt.Sprintf("through: %s is not in %d", m, year))
	}
	defer observe("year_to_date", time.Now())

	first := period.Month{Year: year, Month: time.January}

	s.locks.Transactions.RLock()
	defer s.locks.Transactions.RUnlock()

	var txs []models.Transaction
	err = s.db.
		Where("month >= ? AND month <= ? AND status = ?", first.String(), m.String(), models.StatusCleared).
		Find(&txs).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return reports.YearToDate(m, txs), nil
}

// MaxTrendMonths bounds the trailing window of Trends.
const MaxTrendMonths = 120

// Trends computes the trailing history of months ending at through.
func (s *reportService) Trends(through string, months int) (*reports.TrendsReport, error) {
	m, err := parseMonth("through", through)
	if err != nil {
		return nil, err
	}
	if months < 1 || months > MaxTrendMonths {
		return nil, invalid("months", fmt.Sprintf("must be between 1 and %d", MaxTrendMonths))
	}
	defer observe("trends", time.Now())

	from := m
	for i := 1; i < months; i++ {
		from = from.Prev()
	}

	s.locks.Transactions.RLock()
	defer s.locks.Transactions.RUnlock()
	s.locks.Snapshots.RLock()
	defer s.locks.Snapshots.RUnlock()

	var txs []models.Transaction
	var snaps []models.AssetSnapshot
	err = s.db.Transaction(func(tx *gorm.DB) error {
		err := tx.
			Where("month >= ? AND month <= ? AND status = ?", from.String(), m.String(), models.StatusCleared).
			Find(&txs).Error
		if err != nil {
			return err
		}
		// One extra month so the first point has a baseline.
		return tx.Where("month >= ? AND month <= ?", from.Prev().String(), m.String()).Find(&snaps).Error
	})
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return reports.Trends(m, months, txs, snaps), nil
}

// Summary computes the reconciliation and the net worth of month
// concurrently. Each side takes its own store snapshot.
func (s *reportService) Summary(month string) (*MonthSummary, error) {
	m, err := parseMonth("month", month)
	if err != nil {
		return nil, err
	}

	summary := &MonthSummary{Month: m.String()}
	var g errgroup.Group
	g.Go(func() error {
		r, err := s.Reconcile(m.String())
		if err != nil {
			return err
		}
		summary.Reconciliation = r
		return nil
	})
	g.Go(func() error {
		nw, err := s.NetWorth(m.String())
		if err != nil {
			return err
		}
		summary.NetWorth = nw
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return summary, nil
}
