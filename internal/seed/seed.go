// Package seed loads the default household configuration and applies it to
// the stores. Applying is idempotent: anything that already exists by name is
// left untouched, so seeding can run on every startup.
package seed

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	apperrors "budgetbook/internal/errors"
	"budgetbook/internal/logger"
	"budgetbook/internal/models"
	"budgetbook/internal/money"
	"budgetbook/internal/period"
	"budgetbook/internal/services"
)

//go:embed default.toml
var defaultHousehold []byte

// Household is the decoded form of a seed file.
type Household struct {
	Categories []Category `toml:"category"`
	Accounts   []Account  `toml:"account"`
	Goals      []Goal     `toml:"goal"`
}

// Category is one taxonomy category and its subcategories in display order.
type Category struct {
	Name          string   `toml:"name"`
	Subcategories []string `toml:"subcategories"`
}

// Account is one tracked asset account. OpeningBalance is optional.
type Account struct {
	Name           string `toml:"name"`
	Kind           string `toml:"kind"`
	Tier           string `toml:"tier"`
	Owner          string `toml:"owner"`
	Institution    string `toml:"institution"`
	Notes          string `toml:"notes"`
	OpeningBalance string `toml:"opening_balance"`
}

// Goal is one savings goal.
type Goal struct {
	Name                string `toml:"name"`
	Target              string `toml:"target"`
	MonthlyContribution string `toml:"monthly_contribution"`
	Priority            int    `toml:"priority"`
	Notes               string `toml:"notes"`
}

// Result counts what Apply created.
type Result struct {
	CategoriesCreated    int `json:"categories_created"`
	SubcategoriesCreated int `json:"subcategories_created"`
	AccountsCreated      int `json:"accounts_created"`
	GoalsCreated         int `json:"goals_created"`
	SnapshotsRecorded    int `json:"snapshots_recorded"`
}

// Changed reports whether Apply wrote anything.
func (r *Result) Changed() bool {
	return r.CategoriesCreated+r.SubcategoriesCreated+r.AccountsCreated+r.GoalsCreated+r.SnapshotsRecorded > 0
}

// AuditChanges returns the counts in the form recorded by the audit trail.
func (r *Result) AuditChanges() map[string]any {
	return map[string]any{
		"categories_created":    r.CategoriesCreated,
		"subcategories_created": r.SubcategoriesCreated,
		"accounts_created":      r.AccountsCreated,
		"goals_created":         r.GoalsCreated,
		"snapshots_recorded":    r.SnapshotsRecorded,
	}
}

// Default returns the embedded household.
func Default() (*Household, error) {
	return Parse(defaultHousehold)
}

// Load reads a household seed file from disk.
func Load(path string) (*Household, error) {
	var h Household
	md, err := toml.DecodeFile(path, &h)
	if err != nil {
		return nil, fmt.Errorf("seed file %s: %w", path, err)
	}
	if err := checkUndecoded(md); err != nil {
		return nil, fmt.Errorf("seed file %s: %w", path, err)
	}
	return &h, h.validate()
}

// Parse decodes a household seed document.
func Parse(data []byte) (*Household, error) {
	var h Household
	md, err := toml.Decode(string(data), &h)
	if err != nil {
		return nil, fmt.Errorf("seed: %w", err)
	}
	if err := checkUndecoded(md); err != nil {
		return nil, fmt.Errorf("seed: %w", err)
	}
	return &h, h.validate()
}

func checkUndecoded(md toml.MetaData) error {
	if keys := md.Undecoded(); len(keys) > 0 {
		names := make([]string, 0, len(keys))
		for _, k := range keys {
			names = append(names, k.String())
		}
		return fmt.Errorf("unknown keys: %s", strings.Join(names, ", "))
	}
	return nil
}

func (h *Household) validate() error {
	for _, a := range h.Accounts {
		if !models.AssetKind(a.Kind).Valid() {
			return fmt.Errorf("account %q: unknown kind %q", a.Name, a.Kind)
		}
		if !models.LiquidityTier(a.Tier).Valid() {
			return fmt.Errorf("account %q: unknown tier %q", a.Name, a.Tier)
		}
		if !models.AssetOwner(a.Owner).Valid() {
			return fmt.Errorf("account %q: unknown owner %q", a.Name, a.Owner)
		}
		if a.OpeningBalance != "" {
			if _, err := money.ParseLoose(a.OpeningBalance); err != nil {
				return fmt.Errorf("account %q: %w", a.Name, err)
			}
		}
	}
	for _, g := range h.Goals {
		if _, err := money.ParseLoose(g.Target); err != nil {
			return fmt.Errorf("goal %q: %w", g.Name, err)
		}
		if g.MonthlyContribution != "" {
			if _, err := money.ParseLoose(g.MonthlyContribution); err != nil {
				return fmt.Errorf("goal %q: %w", g.Name, err)
			}
		}
	}
	return nil
}

// Seeder applies a Household through the services, so seeding obeys the same
// validation and locking as every other write.
type Seeder struct {
	taxonomy services.TaxonomyServicer
	assets   services.AssetServicer
	goals    services.SavingsGoalServicer
}

// NewSeeder creates a new Seeder.
func NewSeeder(taxonomy services.TaxonomyServicer, assets services.AssetServicer, goals services.SavingsGoalServicer) *Seeder {
	return &Seeder{taxonomy: taxonomy, assets: assets, goals: goals}
}

// Apply creates every category, subcategory, account and goal in h that does
// not exist yet. When openingMonth is set, accounts with an opening balance
// get a snapshot for that month.
func (s *Seeder) Apply(h *Household, openingMonth string) (*Result, error) {
	if openingMonth != "" {
		if _, err := period.Parse(openingMonth); err != nil {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidMonth, "opening_month: "+err.Error())
		}
	}

	result := &Result{}
	if err := s.applyTaxonomy(h.Categories, result); err != nil {
		return nil, err
	}
	if err := s.applyAccounts(h.Accounts, openingMonth, result); err != nil {
		return nil, err
	}
	if err := s.applyGoals(h.Goals, result); err != nil {
		return nil, err
	}

	logger.Named("seed").Infow("household seeded",
		"categories", result.CategoriesCreated,
		"subcategories", result.SubcategoriesCreated,
		"accounts", result.AccountsCreated,
		"goals", result.GoalsCreated,
		"snapshots", result.SnapshotsRecorded,
	)
	return result, nil
}

func (s *Seeder) applyTaxonomy(categories []Category, result *Result) error {
	existing, err := s.taxonomy.GetTaxonomy()
	if err != nil {
		return err
	}
	byName := make(map[string]models.Category, len(existing))
	for _, c := range existing {
		byName[c.Name] = c
	}

	for _, c := range categories {
		category, ok := byName[c.Name]
		if !ok {
			created, err := s.taxonomy.CreateCategory(c.Name)
			if err != nil {
				return err
			}
			category = *created
			result.CategoriesCreated++
		}

		have := make(map[string]bool, len(category.Subcategories))
		for _, sub := range category.Subcategories {
			have[sub.Name] = true
		}
		for _, name := range c.Subcategories {
			if have[name] {
				continue
			}
			if _, err := s.taxonomy.CreateSubcategory(category.ID, name); err != nil {
				return err
			}
			have[name] = true
			result.SubcategoriesCreated++
		}
	}
	return nil
}

func (s *Seeder) applyAccounts(accounts []Account, openingMonth string, result *Result) error {
	var opening []services.SnapshotInput
	for _, a := range accounts {
		account, err := s.assets.GetAccountByName(a.Name)
		switch {
		case err == nil:
		case errors.Is(err, apperrors.ErrAssetAccountNotFound):
			account, err = s.assets.CreateAccount(services.AssetAccountInput{
				Name:        a.Name,
				Kind:        models.AssetKind(a.Kind),
				Tier:        models.LiquidityTier(a.Tier),
				Owner:       models.AssetOwner(a.Owner),
				Institution: a.Institution,
				Notes:       a.Notes,
			})
			if err != nil {
				return err
			}
			result.AccountsCreated++
		default:
			return err
		}

		if openingMonth != "" && a.OpeningBalance != "" && !account.IsClosed() {
			balance, _ := money.ParseLoose(a.OpeningBalance)
			opening = append(opening, services.SnapshotInput{AccountID: account.ID, Balance: balance})
		}
	}

	if len(opening) == 0 {
		return nil
	}
	snaps, err := s.assets.GetSnapshots(openingMonth)
	if err != nil {
		return err
	}
	recorded := make(map[string]bool, len(snaps))
	for _, snap := range snaps {
		recorded[snap.AccountID] = true
	}
	missing := opening[:0]
	for _, entry := range opening {
		if !recorded[entry.AccountID] {
			missing = append(missing, entry)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	if _, err := s.assets.RecordSnapshots(openingMonth, missing); err != nil {
		return err
	}
	result.SnapshotsRecorded = len(missing)
	return nil
}

func (s *Seeder) applyGoals(goals []Goal, result *Result) error {
	existing, err := s.goals.GetActiveGoals()
	if err != nil {
		return err
	}
	have := make(map[string]bool, len(existing))
	for _, g := range existing {
		have[g.Name] = true
	}

	for _, g := range goals {
		if have[g.Name] {
			continue
		}
		target, _ := money.ParseLoose(g.Target)
		var monthly int64
		if g.MonthlyContribution != "" {
			monthly, _ = money.ParseLoose(g.MonthlyContribution)
		}
		if _, err := s.goals.CreateGoal(services.SavingsGoalInput{
			Name:                g.Name,
			TargetAmount:        target,
			MonthlyContribution: monthly,
			Priority:            g.Priority,
			Notes:               g.Notes,
		}); err != nil {
			return err
		}
		have[g.Name] = true
		result.GoalsCreated++
	}
	return nil
}
