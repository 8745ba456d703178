package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	apperrors "budgetbook/internal/errors"
	"budgetbook/internal/models"
)

// assetService handles asset accounts and their monthly balance snapshots.
type assetService struct {
	db    *gorm.DB
	locks *StoreLocks
}

// NewAssetService creates a new AssetServicer.
func NewAssetService(db *gorm.DB, locks *StoreLocks) AssetServicer {
	return &assetService{db: db, locks: locks}
}

// CreateAccount opens a new asset account.
func (s *assetService) CreateAccount(in AssetAccountInput) (*models.AssetAccount, error) {
	name := cleanName(in.Name)
	if name == "" {
		return nil, invalid("name", "is required")
	}
	if !in.Kind.Valid() {
		return nil, invalid("kind", fmt.Sprintf("%q is not an asset kind", in.Kind))
	}
	if !in.Tier.Valid() {
		return nil, invalid("tier", fmt.Sprintf("%q must be Liquid, SemiLiquid or NonLiquid", in.Tier))
	}
	if !in.Owner.Valid() {
		return nil, invalid("owner", fmt.Sprintf("%q is not an account owner", in.Owner))
	}

	s.locks.Snapshots.Lock()
	defer s.locks.Snapshots.Unlock()

	account := &models.AssetAccount{
		Name:        name,
		Kind:        in.Kind,
		Tier:        in.Tier,
		Owner:       in.Owner,
		Institution: in.Institution,
		Notes:       in.Notes,
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.AssetAccount{}).Where("name = ?", name).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return apperrors.WithMessage(apperrors.ErrDuplicateAssetAccount,
				fmt.Sprintf("name: asset account %q already exists", name))
		}
		return tx.Create(account).Error
	})
	if err != nil {
		return nil, internal(err)
	}
	return account, nil
}

// GetAccounts lists accounts by name, open ones only unless includeClosed.
func (s *assetService) GetAccounts(includeClosed bool) ([]models.AssetAccount, error) {
	s.locks.Snapshots.RLock()
	defer s.locks.Snapshots.RUnlock()

	query := s.db.Order("name ASC")
	if !includeClosed {
		query = query.Where("closed_at IS NULL")
	}
	var accounts []models.AssetAccount
	if err := query.Find(&accounts).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if accounts == nil {
		accounts = []models.AssetAccount{}
	}
	return accounts, nil
}

// GetAccountByID retrieves an account by id.
func (s *assetService) GetAccountByID(accountID string) (*models.AssetAccount, error) {
	s.locks.Snapshots.RLock()
	defer s.locks.Snapshots.RUnlock()

	var account models.AssetAccount
	if err := s.db.Where("id = ?", accountID).First(&account).Error; err != nil {
		return nil, notFound(err, apperrors.ErrAssetAccountNotFound)
	}
	return &account, nil
}

// GetAccountByName retrieves an account by its unique name.
func (s *assetService) GetAccountByName(name string) (*models.AssetAccount, error) {
	s.locks.Snapshots.RLock()
	defer s.locks.Snapshots.RUnlock()

	var account models.AssetAccount
	if err := s.db.Where("name = ?", name).First(&account).Error; err != nil {
		return nil, notFound(err, apperrors.ErrAssetAccountNotFound)
	}
	return &account, nil
}

// UpdateAccountNotes replaces an account's notes. Notes are the only
// attribute editable after creation.
func (s *assetService) UpdateAccountNotes(accountID, notes string) (*models.AssetAccount, error) {
	s.locks.Snapshots.Lock()
	defer s.locks.Snapshots.Unlock()

	var account models.AssetAccount
	if err := s.db.Where("id = ?", accountID).First(&account).Error; err != nil {
		return nil, notFound(err, apperrors.ErrAssetAccountNotFound)
	}
	if err := s.db.Model(&account).Update("notes", notes).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &account, nil
}

// CloseAccount closes an account as of month. Snapshots for month and
// earlier remain valid; later months reject new snapshots. An account that
// already has a snapshot after month cannot be closed as of month.
func (s *assetService) CloseAccount(accountID, month string) (*models.AssetAccount, error) {
	m, err := parseMonth("month", month)
	if err != nil {
		return nil, err
	}

	s.locks.Snapshots.Lock()
	defer s.locks.Snapshots.Unlock()

	var account models.AssetAccount
	if err := s.db.Where("id = ?", accountID).First(&account).Error; err != nil {
		return nil, notFound(err, apperrors.ErrAssetAccountNotFound)
	}
	if account.IsClosed() {
		return nil, apperrors.WithMessage(apperrors.ErrAccountClosed,
			fmt.Sprintf("account %q was closed in %s", account.Name, account.ClosedMonth))
	}

	var later models.AssetSnapshot
	err = s.db.Where("account_id = ? AND month > ?", account.ID, m.String()).Order("month DESC").Limit(1).Find(&later).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if later.ID != "" {
		return nil, invalid("month", fmt.Sprintf("account %q has a snapshot for %s after %s", account.Name, later.Month, m))
	}

	now := time.Now().UTC()
	updates := map[string]interface{}{"closed_at": now, "closed_month": m.String()}
	if err := s.db.Model(&account).Updates(updates).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	account.ClosedAt = &now
	account.ClosedMonth = m.String()
	return &account, nil
}

// RecordSnapshots writes balances for month, replacing any balance already
// recorded for the same account. Tier, owner and name are copied from the
// account so later months cannot change this month's attribution. The batch
// is all-or-nothing.
func (s *assetService) RecordSnapshots(month string, entries []SnapshotInput) ([]models.AssetSnapshot, error) {
	m, err := parseMonth("month", month)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, invalid("balances", "at least one balance is required")
	}

	s.locks.Snapshots.Lock()
	defer s.locks.Snapshots.Unlock()

	var result []models.AssetSnapshot
	err = s.db.Transaction(func(tx *gorm.DB) error {
		seen := make(map[string]bool, len(entries))
		for i, entry := range entries {
			if seen[entry.AccountID] {
				return invalid(fmt.Sprintf("balances[%d].account_id", i), "appears more than once")
			}
			seen[entry.AccountID] = true

			var account models.AssetAccount
			if err := tx.Where("id = ?", entry.AccountID).First(&account).Error; err != nil {
				return notFound(err, apperrors.ErrAssetAccountNotFound)
			}
			if account.IsClosed() {
				closed, err := parseMonth("closed_month", account.ClosedMonth)
				if err != nil {
					return err
				}
				if closed.Before(m) {
					return apperrors.WithMessage(apperrors.ErrAccountClosed,
						fmt.Sprintf("balances[%d]: account %q closed in %s", i, account.Name, account.ClosedMonth))
				}
			}

			var existing models.AssetSnapshot
			err := tx.Where("month = ? AND account_id = ?", m.String(), account.ID).First(&existing).Error
			switch {
			case err == nil:
				updates := map[string]interface{}{"balance": entry.Balance, "recorded_at": time.Now().UTC()}
				if err := tx.Model(&existing).Updates(updates).Error; err != nil {
					return err
				}
			case errors.Is(err, gorm.ErrRecordNotFound):
				snap := &models.AssetSnapshot{
					Month:       m.String(),
					AccountID:   account.ID,
					AccountName: account.Name,
					Tier:        account.Tier,
					Owner:       account.Owner,
					Balance:     entry.Balance,
					RecordedAt:  time.Now().UTC(),
				}
				if err := tx.Create(snap).Error; err != nil {
					return err
				}
			default:
				return err
			}
		}

		var err error
		result, err = snapshotRows(tx, m.String())
		return err
	})
	if err != nil {
		return nil, internal(err)
	}
	return result, nil
}

// GetSnapshots returns month's snapshots sorted by account name.
func (s *assetService) GetSnapshots(month string) ([]models.AssetSnapshot, error) {
	m, err := parseMonth("month", month)
	if err != nil {
		return nil, err
	}

	s.locks.Snapshots.RLock()
	defer s.locks.Snapshots.RUnlock()

	rows, err := snapshotRows(s.db, m.String())
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return rows, nil
}

func snapshotRows(db *gorm.DB, month string) ([]models.AssetSnapshot, error) {
	var rows []models.AssetSnapshot
	if err := db.Where("month = ?", month).Order("account_name ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []models.AssetSnapshot{}
	}
	return rows, nil
}
