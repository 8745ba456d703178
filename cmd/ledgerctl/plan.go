package main

import (
	"github.com/spf13/cobra"

	"budgetbook/internal/server"
	"budgetbook/internal/services"
)

func newPlanCmd(open opener) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Manage monthly budget plans",
	}

	var overwrite bool
	copyCmd := &cobra.Command{
		Use:   "copy SOURCE TARGET",
		Short: "Copy one month's budget plan into another month",
		Long: `Copy every plan row of SOURCE into TARGET. TARGET must be empty unless
--overwrite is given, in which case its rows are replaced.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withServices(open, func(svc *server.Services) error {
				result, err := svc.Plans.CopyPlan(args[0], args[1], overwrite)
				if err != nil {
					return err
				}
				svc.Audit.Log(services.DefaultActor, "COPY_PLAN", "budget_plan", result.TargetMonth, auditSource,
					map[string]any{"source_month": result.SourceMonth, "rows_copied": result.RowsCopied, "overwrite": result.Overwrite})
				return printJSON(cmd.OutOrStdout(), result)
			})
		},
	}
	copyCmd.Flags().BoolVar(&overwrite, "overwrite", false, "replace the target month's existing rows")

	cmd.AddCommand(copyCmd)
	return cmd
}
