package services

import (
	"fmt"

	"gorm.io/gorm"

	apperrors "budgetbook/internal/errors"
	"budgetbook/internal/models"
	"budgetbook/internal/pagination"
)

// transactionService handles the income and expense store.
type transactionService struct {
	db    *gorm.DB
	locks *StoreLocks
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(db *gorm.DB, locks *StoreLocks) TransactionServicer {
	return &transactionService{db: db, locks: locks}
}

// validateTransactionInput checks every field that does not need the
// taxonomy. Status defaults to cleared.
func validateTransactionInput(in *TransactionInput) error {
	if in.Date.IsZero() {
		return invalid("date", "is required")
	}
	if !in.Kind.Valid() {
		return invalid("kind", fmt.Sprintf("%q must be income or expense", in.Kind))
	}
	if in.Amount <= 0 {
		return invalid("amount", "must be greater than zero")
	}
	if !in.Person.Valid() {
		return invalid("person", fmt.Sprintf("%q is not a household member", in.Person))
	}
	if !in.Account.Valid() {
		return invalid("account", fmt.Sprintf("%q is not a funding account", in.Account))
	}
	if in.Status == "" {
		in.Status = models.StatusCleared
	}
	if !in.Status.Valid() {
		return invalid("status", fmt.Sprintf("%q must be cleared or pending", in.Status))
	}

	switch in.Kind {
	case models.KindExpense:
		if in.Category == "" || in.Subcategory == "" {
			return invalid("category", "expenses need both a category and a subcategory")
		}
		if in.Source != "" {
			return invalid("source", "must be empty for expenses")
		}
	case models.KindIncome:
		if !in.Source.Valid() {
			return invalid("source", fmt.Sprintf("%q is not an income source", in.Source))
		}
		if in.Category != "" || in.Subcategory != "" {
			return invalid("category", "must be empty for income")
		}
	}
	return nil
}

func (in *TransactionInput) apply(t *models.Transaction) {
	t.Date = in.Date
	t.Kind = in.Kind
	t.Amount = in.Amount
	t.Person = in.Person
	t.Account = in.Account
	t.Status = in.Status
	t.Category = in.Category
	t.Subcategory = in.Subcategory
	t.Source = in.Source
	t.Description = in.Description
}

func inputFromTransaction(t *models.Transaction) TransactionInput {
	return TransactionInput{
		Date:        t.Date,
		Kind:        t.Kind,
		Amount:      t.Amount,
		Person:      t.Person,
		Account:     t.Account,
		Status:      t.Status,
		Category:    t.Category,
		Subcategory: t.Subcategory,
		Source:      t.Source,
		Description: t.Description,
	}
}

// checkPair validates an expense's category pair. Callers hold the taxonomy
// read lock.
func (s *transactionService) checkPair(db *gorm.DB, in *TransactionInput) error {
	if in.Kind != models.KindExpense {
		return nil
	}
	return validatePair(db, in.Category, in.Subcategory)
}

// CreateTransaction records a new income or expense.
func (s *transactionService) CreateTransaction(in TransactionInput) (*models.Transaction, error) {
	if err := validateTransactionInput(&in); err != nil {
		return nil, err
	}

	s.locks.Taxonomy.RLock()
	defer s.locks.Taxonomy.RUnlock()
	s.locks.Transactions.Lock()
	defer s.locks.Transactions.Unlock()

	txn := &models.Transaction{}
	in.apply(txn)
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.checkPair(tx, &in); err != nil {
			return err
		}
		return tx.Create(txn).Error
	})
	if err != nil {
		return nil, internal(err)
	}
	return txn, nil
}

// ImportTransaction stores a transaction read from a file, keeping its id
// when it has one. It returns false without error when a row with the same
// id already exists, so re-importing an export is a no-op.
func (s *transactionService) ImportTransaction(txn *models.Transaction) (bool, error) {
	in := inputFromTransaction(txn)
	if err := validateTransactionInput(&in); err != nil {
		return false, err
	}

	s.locks.Taxonomy.RLock()
	defer s.locks.Taxonomy.RUnlock()
	s.locks.Transactions.Lock()
	defer s.locks.Transactions.Unlock()

	created := false
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if txn.ID != "" {
			var count int64
			if err := tx.Model(&models.Transaction{}).Where("id = ?", txn.ID).Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				return nil
			}
		}
		if err := s.checkPair(tx, &in); err != nil {
			return err
		}
		row := &models.Transaction{Base: models.Base{ID: txn.ID}}
		in.apply(row)
		if err := tx.Create(row).Error; err != nil {
			return err
		}
		*txn = *row
		created = true
		return nil
	})
	if err != nil {
		return false, internal(err)
	}
	return created, nil
}

// GetTransactions lists transactions, newest first.
func (s *transactionService) GetTransactions(filter TransactionFilter, page pagination.PageRequest) (*pagination.PageResponse[models.Transaction], error) {
	page.Defaults()

	base := s.db.Model(&models.Transaction{})
	if filter.Month != "" {
		m, err := parseMonth("month", filter.Month)
		if err != nil {
			return nil, err
		}
		base = base.Where("month = ?", m.String())
	}
	if filter.Kind != nil {
		base = base.Where("kind = ?", *filter.Kind)
	}
	if filter.Status != nil {
		base = base.Where("status = ?", *filter.Status)
	}

	s.locks.Transactions.RLock()
	defer s.locks.Transactions.RUnlock()

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var transactions []models.Transaction
	if err := base.Order("date DESC, id DESC").Scopes(pagination.Paginate(page)).Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(transactions, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetMonthTransactions returns every transaction of month in date order.
func (s *transactionService) GetMonthTransactions(month string) ([]models.Transaction, error) {
	m, err := parseMonth("month", month)
	if err != nil {
		return nil, err
	}

	s.locks.Transactions.RLock()
	defer s.locks.Transactions.RUnlock()

	var transactions []models.Transaction
	if err := s.db.Where("month = ?", m.String()).Order("date ASC, id ASC").Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return transactions, nil
}

// GetTransactionByID retrieves a single transaction.
func (s *transactionService) GetTransactionByID(transactionID string) (*models.Transaction, error) {
	s.locks.Transactions.RLock()
	defer s.locks.Transactions.RUnlock()

	return findTransaction(s.db, transactionID)
}

func findTransaction(db *gorm.DB, transactionID string) (*models.Transaction, error) {
	var txn models.Transaction
	if err := db.Where("id = ?", transactionID).First(&txn).Error; err != nil {
		return nil, notFound(err, apperrors.ErrTransactionNotFound)
	}
	return &txn, nil
}

// UpdateTransaction rewrites a pending transaction. Cleared transactions must
// be uncleared first; the status itself only changes through Clear/Unclear.
func (s *transactionService) UpdateTransaction(transactionID string, in TransactionInput) (*models.Transaction, error) {
	in.Status = models.StatusPending
	if err := validateTransactionInput(&in); err != nil {
		return nil, err
	}

	s.locks.Taxonomy.RLock()
	defer s.locks.Taxonomy.RUnlock()
	s.locks.Transactions.Lock()
	defer s.locks.Transactions.Unlock()

	var txn *models.Transaction
	err := s.db.Transaction(func(tx *gorm.DB) error {
		existing, err := findTransaction(tx, transactionID)
		if err != nil {
			return err
		}
		if !existing.IsPending() {
			return apperrors.ErrTransactionCleared
		}
		if err := s.checkPair(tx, &in); err != nil {
			return err
		}
		in.apply(existing)
		if err := tx.Save(existing).Error; err != nil {
			return err
		}
		txn = existing
		return nil
	})
	if err != nil {
		return nil, internal(err)
	}
	return txn, nil
}

// ClearTransaction marks a pending transaction as cleared.
func (s *transactionService) ClearTransaction(transactionID string) (*models.Transaction, error) {
	return s.transition(transactionID, models.StatusPending, models.StatusCleared)
}

// UnclearTransaction moves a cleared transaction back to pending so it can be
// edited.
func (s *transactionService) UnclearTransaction(transactionID string) (*models.Transaction, error) {
	return s.transition(transactionID, models.StatusCleared, models.StatusPending)
}

func (s *transactionService) transition(transactionID string, from, to models.TransactionStatus) (*models.Transaction, error) {
	s.locks.Transactions.Lock()
	defer s.locks.Transactions.Unlock()

	var txn *models.Transaction
	err := s.db.Transaction(func(tx *gorm.DB) error {
		existing, err := findTransaction(tx, transactionID)
		if err != nil {
			return err
		}
		if existing.Status != from {
			return apperrors.WithMessage(apperrors.ErrInvalidStatusTransition,
				fmt.Sprintf("status: transaction is already %s", existing.Status))
		}
		if err := tx.Model(existing).Update("status", to).Error; err != nil {
			return err
		}
		existing.Status = to
		txn = existing
		return nil
	})
	if err != nil {
		return nil, internal(err)
	}
	return txn, nil
}

// DeleteTransaction permanently removes a transaction.
func (s *transactionService) DeleteTransaction(transactionID string) error {
	s.locks.Transactions.Lock()
	defer s.locks.Transactions.Unlock()

	result := s.db.Where("id = ?", transactionID).Delete(&models.Transaction{})
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrTransactionNotFound
	}
	return nil
}
