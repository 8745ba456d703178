package seed

import (
	"os"
	"path/filepath"
	"testing"

	"budgetbook/internal/logger"
	"budgetbook/internal/services"
	"budgetbook/internal/testutil"
)

func init() {
	logger.Init("test")
}

const smallHousehold = `
[[category]]
name = "Food"
subcategories = ["Groceries", "Takeout"]

[[account]]
name = "HYSA"
kind = "savings"
tier = "Liquid"
owner = "Joint"
institution = "Ally"
opening_balance = "1500"

[[account]]
name = "Roth-Jeff"
kind = "retirement"
tier = "NonLiquid"
owner = "Jeff"

[[goal]]
name = "Vacation"
target = "3000"
priority = 2
`

func newSeeder(t *testing.T) (*Seeder, services.TaxonomyServicer, services.AssetServicer, services.SavingsGoalServicer) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	t.Cleanup(func() { testutil.TeardownTestDB(t, db) })
	locks := services.NewStoreLocks()
	taxonomy := services.NewTaxonomyService(db, locks)
	assets := services.NewAssetService(db, locks)
	goals := services.NewSavingsGoalService(db)
	return NewSeeder(taxonomy, assets, goals), taxonomy, assets, goals
}

func TestDefault(t *testing.T) {
	h, err := Default()
	testutil.AssertNoError(t, err)

	if len(h.Categories) != 9 {
		t.Errorf("expected 9 categories, got %d", len(h.Categories))
	}
	if len(h.Accounts) == 0 || len(h.Goals) == 0 {
		t.Fatalf("expected accounts and goals, got %d and %d", len(h.Accounts), len(h.Goals))
	}
	names := map[string]bool{}
	for _, c := range h.Categories {
		if names[c.Name] {
			t.Errorf("duplicate category %q", c.Name)
		}
		names[c.Name] = true
		if len(c.Subcategories) == 0 {
			t.Errorf("category %q has no subcategories", c.Name)
		}
	}
	for _, want := range []string{"Housing", "Food", "Vacation"} {
		if !names[want] {
			t.Errorf("expected category %q in default taxonomy", want)
		}
	}
}

func TestParse(t *testing.T) {
	t.Run("small household", func(t *testing.T) {
		h, err := Parse([]byte(smallHousehold))
		testutil.AssertNoError(t, err)
		if len(h.Accounts) != 2 || h.Accounts[0].OpeningBalance != "1500" {
			t.Errorf("unexpected accounts: %+v", h.Accounts)
		}
		if h.Goals[0].Priority != 2 {
			t.Errorf("expected priority 2, got %d", h.Goals[0].Priority)
		}
	})

	t.Run("rejects unknown keys", func(t *testing.T) {
		_, err := Parse([]byte("[[category]]\nname = \"Food\"\ncolour = \"red\"\n"))
		if err == nil {
			t.Fatal("expected error for unknown key")
		}
	})

	t.Run("rejects unknown tier", func(t *testing.T) {
		doc := "[[account]]\nname = \"X\"\nkind = \"cash\"\ntier = \"Frozen\"\nowner = \"Joint\"\n"
		if _, err := Parse([]byte(doc)); err == nil {
			t.Fatal("expected error for unknown tier")
		}
	})

	t.Run("rejects bad amount", func(t *testing.T) {
		doc := "[[goal]]\nname = \"X\"\ntarget = \"lots\"\n"
		if _, err := Parse([]byte(doc)); err == nil {
			t.Fatal("expected error for bad target")
		}
	})
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "household.toml")
	if err := os.WriteFile(path, []byte(smallHousehold), 0o600); err != nil {
		t.Fatal(err)
	}
	h, err := Load(path)
	testutil.AssertNoError(t, err)
	if len(h.Categories) != 1 || h.Categories[0].Name != "Food" {
		t.Errorf("unexpected categories: %+v", h.Categories)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestApply(t *testing.T) {
	h, err := Parse([]byte(smallHousehold))
	testutil.AssertNoError(t, err)

	t.Run("creates everything once", func(t *testing.T) {
		seeder, taxonomy, assets, goals := newSeeder(t)

		result, err := seeder.Apply(h, "")
		testutil.AssertNoError(t, err)
		if result.CategoriesCreated != 1 || result.SubcategoriesCreated != 2 {
			t.Errorf("unexpected taxonomy counts: %+v", result)
		}
		if result.AccountsCreated != 2 || result.GoalsCreated != 1 {
			t.Errorf("unexpected account/goal counts: %+v", result)
		}
		if result.SnapshotsRecorded != 0 {
			t.Errorf("expected no snapshots without an opening month, got %d", result.SnapshotsRecorded)
		}

		testutil.AssertNoError(t, taxonomy.ValidatePair("Food", "Takeout"))

		again, err := seeder.Apply(h, "")
		testutil.AssertNoError(t, err)
		if *again != (Result{}) {
			t.Errorf("expected second apply to create nothing, got %+v", again)
		}

		accounts, err := assets.GetAccounts(true)
		testutil.AssertNoError(t, err)
		if len(accounts) != 2 {
			t.Errorf("expected 2 accounts, got %d", len(accounts))
		}
		active, err := goals.GetActiveGoals()
		testutil.AssertNoError(t, err)
		if len(active) != 1 || active[0].TargetAmount != 300000 {
			t.Errorf("unexpected goals: %+v", active)
		}
	})

	t.Run("adds missing subcategories to existing category", func(t *testing.T) {
		seeder, taxonomy, _, _ := newSeeder(t)
		food, err := taxonomy.CreateCategory("Food")
		testutil.AssertNoError(t, err)
		_, err = taxonomy.CreateSubcategory(food.ID, "Groceries")
		testutil.AssertNoError(t, err)

		result, err := seeder.Apply(h, "")
		testutil.AssertNoError(t, err)
		if result.CategoriesCreated != 0 || result.SubcategoriesCreated != 1 {
			t.Errorf("expected only Takeout to be created, got %+v", result)
		}
	})

	t.Run("records opening balances", func(t *testing.T) {
		seeder, _, assets, _ := newSeeder(t)

		result, err := seeder.Apply(h, "2025-01")
		testutil.AssertNoError(t, err)
		if result.SnapshotsRecorded != 1 {
			t.Fatalf("expected 1 snapshot, got %d", result.SnapshotsRecorded)
		}

		snaps, err := assets.GetSnapshots("2025-01")
		testutil.AssertNoError(t, err)
		if len(snaps) != 1 || snaps[0].Balance != 150000 {
			t.Errorf("unexpected snapshots: %+v", snaps)
		}

		again, err := seeder.Apply(h, "2025-01")
		testutil.AssertNoError(t, err)
		if again.SnapshotsRecorded != 0 {
			t.Errorf("expected existing snapshot to be kept, got %d recorded", again.SnapshotsRecorded)
		}
	})

	t.Run("invalid opening month", func(t *testing.T) {
		seeder, _, assets, _ := newSeeder(t)
		_, err := seeder.Apply(h, "January")
		testutil.AssertAppError(t, err, "INVALID_MONTH")

		accounts, err := assets.GetAccounts(true)
		testutil.AssertNoError(t, err)
		if len(accounts) != 0 {
			t.Errorf("expected nothing created, got %d accounts", len(accounts))
		}
	})

	t.Run("default household applies cleanly", func(t *testing.T) {
		seeder, _, _, _ := newSeeder(t)
		def, err := Default()
		testutil.AssertNoError(t, err)
		result, err := seeder.Apply(def, "2025-01")
		testutil.AssertNoError(t, err)
		if result.AccountsCreated != len(def.Accounts) {
			t.Errorf("expected %d accounts, got %d", len(def.Accounts), result.AccountsCreated)
		}
		if result.SnapshotsRecorded != 3 {
			t.Errorf("expected 3 opening balances, got %d", result.SnapshotsRecorded)
		}
	})
}

func TestResultChanged(t *testing.T) {
	if (&Result{}).Changed() {
		t.Error("expected an empty result to be unchanged")
	}
	r := &Result{SnapshotsRecorded: 2}
	if !r.Changed() {
		t.Error("expected recorded snapshots to count as a change")
	}
	if got := r.AuditChanges()["snapshots_recorded"]; got != 2 {
		t.Errorf("expected snapshots_recorded 2, got %v", got)
	}
}
