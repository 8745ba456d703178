package main

import (
	"github.com/spf13/cobra"

	"budgetbook/internal/seed"
	"budgetbook/internal/server"
	"budgetbook/internal/services"
)

func newSeedCmd(open opener) *cobra.Command {
	var file, openingMonth string
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Create the household taxonomy, asset accounts and goals",
		Long: `Create every category, subcategory, asset account and savings goal from the
seed file that does not exist yet. Without --file the built-in household is
used. Opening balances are recorded only when --opening-month is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			household, err := loadHousehold(file)
			if err != nil {
				return err
			}
			return withServices(open, func(svc *server.Services) error {
				seeder := seed.NewSeeder(svc.Taxonomy, svc.Assets, svc.Goals)
				result, err := seeder.Apply(household, openingMonth)
				if err != nil {
					return err
				}
				if result.Changed() {
					changes := result.AuditChanges()
					changes["opening_month"] = openingMonth
					svc.Audit.Log(services.DefaultActor, "SEED_HOUSEHOLD", "household", seedName(file), auditSource, changes)
				}
				return printJSON(cmd.OutOrStdout(), result)
			})
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "TOML seed file (defaults to the built-in household)")
	cmd.Flags().StringVar(&openingMonth, "opening-month", "", "record opening balances for this month (YYYY-MM)")
	return cmd
}

func loadHousehold(file string) (*seed.Household, error) {
	if file == "" {
		return seed.Default()
	}
	return seed.Load(file)
}

func seedName(file string) string {
	if file == "" {
		return "default"
	}
	return file
}
