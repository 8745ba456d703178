package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"budgetbook/internal/period"
	"budgetbook/internal/server"
)

func newReportCmd(open opener) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print reports as JSON",
	}

	reconcileCmd := &cobra.Command{
		Use:   "reconcile MONTH",
		Short: "Reconcile a month's income, plan and spending",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withServices(open, func(svc *server.Services) error {
				report, err := svc.Reports.Reconcile(args[0])
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), report)
			})
		},
	}

	networthCmd := &cobra.Command{
		Use:   "networth MONTH",
		Short: "Summarize asset balances and their change since the previous month",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withServices(open, func(svc *server.Services) error {
				report, err := svc.Reports.NetWorth(args[0])
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), report)
			})
		},
	}

	var through string
	ytdCmd := &cobra.Command{
		Use:   "ytd YEAR",
		Short: "Aggregate a year's months up to --through",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := strconv.Atoi(args[0])
			if err != nil || year < 1 || year > 9999 {
				return fmt.Errorf("year %q must be a four digit year", args[0])
			}
			if through == "" {
				through = fmt.Sprintf("%04d-12", year)
			}
			return withServices(open, func(svc *server.Services) error {
				report, err := svc.Reports.YearToDate(year, through)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), report)
			})
		},
	}
	ytdCmd.Flags().StringVar(&through, "through", "", "last month to include (YYYY-MM, defaults to December)")

	var trendsThrough string
	var trendsMonths int
	trendsCmd := &cobra.Command{
		Use:   "trends",
		Short: "Print the month-by-month history of a trailing window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if trendsThrough == "" {
				trendsThrough = period.Of(time.Now()).String()
			}
			return withServices(open, func(svc *server.Services) error {
				report, err := svc.Reports.Trends(trendsThrough, trendsMonths)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), report)
			})
		},
	}
	trendsCmd.Flags().StringVar(&trendsThrough, "through", "", "last month of the window (YYYY-MM, defaults to the current month)")
	trendsCmd.Flags().IntVar(&trendsMonths, "months", 12, "window length in months")

	cmd.AddCommand(reconcileCmd, networthCmd, ytdCmd, trendsCmd)
	return cmd
}
