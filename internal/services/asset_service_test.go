package services

import (
	"testing"

	"budgetbook/internal/models"
	"budgetbook/internal/testutil"
)

func retirementInput(name string) AssetAccountInput {
	return AssetAccountInput{
		Name:  name,
		Kind:  models.AssetKindRetirement,
		Tier:  models.TierNonLiquid,
		Owner: models.OwnerJeff,
	}
}

func TestCreateAssetAccount(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAssetService(db, NewStoreLocks())

		account, err := svc.CreateAccount(retirementInput("401k-Jeff"))
		testutil.AssertNoError(t, err)
		if account.ID == "" || account.IsClosed() {
			t.Errorf("expected open account with id, got %+v", account)
		}

		byName, err := svc.GetAccountByName("401k-Jeff")
		testutil.AssertNoError(t, err)
		if byName.ID != account.ID {
			t.Errorf("expected lookup by name to return %s, got %s", account.ID, byName.ID)
		}
	})

	t.Run("duplicate_name", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAssetService(db, NewStoreLocks())

		_, err := svc.CreateAccount(retirementInput("401k-Jeff"))
		testutil.AssertNoError(t, err)
		_, err = svc.CreateAccount(retirementInput("401k-Jeff"))
		testutil.AssertAppError(t, err, "DUPLICATE_ASSET_ACCOUNT")
	})

	t.Run("invalid_tier", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAssetService(db, NewStoreLocks())

		in := retirementInput("401k-Jeff")
		in.Tier = "Semi-Liquid"
		_, err := svc.CreateAccount(in)
		testutil.AssertFieldError(t, err, "INVALID_INPUT", "tier")
	})
}

func TestRecordSnapshots(t *testing.T) {
	t.Run("copies_attribution_and_replaces_balance", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAssetService(db, NewStoreLocks())
		account, err := svc.CreateAccount(retirementInput("401k-Jeff"))
		testutil.AssertNoError(t, err)

		_, err = svc.RecordSnapshots("2025-03", []SnapshotInput{{AccountID: account.ID, Balance: 5000000}})
		testutil.AssertNoError(t, err)
		snaps, err := svc.RecordSnapshots("2025-03", []SnapshotInput{{AccountID: account.ID, Balance: 5120000}})
		testutil.AssertNoError(t, err)

		if len(snaps) != 1 {
			t.Fatalf("expected one snapshot, got %d", len(snaps))
		}
		s := snaps[0]
		if s.Balance != 5120000 || s.Tier != models.TierNonLiquid || s.Owner != models.OwnerJeff || s.AccountName != "401k-Jeff" {
			t.Errorf("unexpected snapshot: %+v", s)
		}
	})

	t.Run("negative_balance_allowed", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAssetService(db, NewStoreLocks())
		card, err := svc.CreateAccount(AssetAccountInput{
			Name: "Mortgage", Kind: models.AssetKindLiability, Tier: models.TierNonLiquid, Owner: models.OwnerJoint,
		})
		testutil.AssertNoError(t, err)

		snaps, err := svc.RecordSnapshots("2025-03", []SnapshotInput{{AccountID: card.ID, Balance: -30000000}})
		testutil.AssertNoError(t, err)
		if snaps[0].Balance != -30000000 {
			t.Errorf("expected negative balance, got %d", snaps[0].Balance)
		}
	})

	t.Run("closed_account", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAssetService(db, NewStoreLocks())
		account, _ := svc.CreateAccount(retirementInput("Old 401k"))
		_, err := svc.CloseAccount(account.ID, "2025-03")
		testutil.AssertNoError(t, err)

		_, err = svc.RecordSnapshots("2025-03", []SnapshotInput{{AccountID: account.ID, Balance: 1}})
		testutil.AssertNoError(t, err)
		_, err = svc.RecordSnapshots("2025-04", []SnapshotInput{{AccountID: account.ID, Balance: 1}})
		testutil.AssertAppError(t, err, "ACCOUNT_CLOSED")

		_, err = svc.CloseAccount(account.ID, "2025-05")
		testutil.AssertAppError(t, err, "ACCOUNT_CLOSED")

		open, err := svc.GetAccounts(false)
		testutil.AssertNoError(t, err)
		if len(open) != 0 {
			t.Errorf("expected closed account hidden, got %d", len(open))
		}
		all, _ := svc.GetAccounts(true)
		if len(all) != 1 {
			t.Errorf("expected closed account listed with includeClosed, got %d", len(all))
		}
	})

	t.Run("close_before_existing_snapshot", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAssetService(db, NewStoreLocks())
		account, _ := svc.CreateAccount(retirementInput("Old 401k"))
		_, err := svc.RecordSnapshots("2025-03", []SnapshotInput{{AccountID: account.ID, Balance: 100000}})
		testutil.AssertNoError(t, err)

		_, err = svc.CloseAccount(account.ID, "2025-01")
		testutil.AssertFieldError(t, err, "INVALID_INPUT", "month")

		open, err := svc.GetAccounts(false)
		testutil.AssertNoError(t, err)
		if len(open) != 1 {
			t.Errorf("expected account to stay open, got %d open accounts", len(open))
		}

		closed, err := svc.CloseAccount(account.ID, "2025-03")
		testutil.AssertNoError(t, err)
		if closed.ClosedMonth != "2025-03" {
			t.Errorf("expected closing month 2025-03, got %q", closed.ClosedMonth)
		}
	})

	t.Run("batch_is_all_or_nothing", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAssetService(db, NewStoreLocks())
		account, _ := svc.CreateAccount(retirementInput("401k-Jeff"))

		_, err := svc.RecordSnapshots("2025-03", []SnapshotInput{
			{AccountID: account.ID, Balance: 1},
			{AccountID: "missing", Balance: 2},
		})
		testutil.AssertAppError(t, err, "ASSET_ACCOUNT_NOT_FOUND")

		snaps, err := svc.GetSnapshots("2025-03")
		testutil.AssertNoError(t, err)
		if len(snaps) != 0 {
			t.Errorf("expected no snapshots written, got %d", len(snaps))
		}
	})

	t.Run("duplicate_entry", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAssetService(db, NewStoreLocks())
		account, _ := svc.CreateAccount(retirementInput("401k-Jeff"))

		_, err := svc.RecordSnapshots("2025-03", []SnapshotInput{
			{AccountID: account.ID, Balance: 1},
			{AccountID: account.ID, Balance: 2},
		})
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestUpdateAccountNotes(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewAssetService(db, NewStoreLocks())
	account, _ := svc.CreateAccount(retirementInput("401k-Jeff"))

	updated, err := svc.UpdateAccountNotes(account.ID, "rolled over from old employer")
	testutil.AssertNoError(t, err)
	if updated.Notes != "rolled over from old employer" || updated.Tier != models.TierNonLiquid {
		t.Errorf("unexpected account after notes edit: %+v", updated)
	}

	_, err = svc.UpdateAccountNotes("missing", "x")
	testutil.AssertAppError(t, err, "ASSET_ACCOUNT_NOT_FOUND")
}
