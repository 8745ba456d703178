// Command ledgerctl runs budgetbook operations against the household database
// without going through the HTTP API.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"budgetbook/internal/database"
	"budgetbook/internal/logger"
	"budgetbook/internal/server"
)

// auditSource stands in for the client address in audit entries written by
// ledgerctl.
const auditSource = "cli"

// opener returns the services for one command run and a func that releases
// them.
type opener func() (*server.Services, func(), error)

func openDatabase() (*server.Services, func(), error) {
	dbConfig, err := database.NewConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load database configuration: %w", err)
	}
	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create database manager: %w", err)
	}
	if err := dbManager.Migrate(); err != nil {
		dbManager.Close()
		return nil, nil, fmt.Errorf("failed to run database migrations: %w", err)
	}
	return server.NewServices(dbManager.DB()), func() { dbManager.Close() }, nil
}

func main() {
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := newRootCmd(openDatabase).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(open opener) *cobra.Command {
	root := &cobra.Command{
		Use:   "ledgerctl",
		Short: "Household budget ledger tools",
		Long: `ledgerctl seeds the household database, imports and exports transactions
as CSV, copies budget plans between months and prints reports as JSON.
The database is selected with the same DB_* environment variables as the API.`,
		SilenceUsage: true,
	}
	root.AddCommand(
		newSeedCmd(open),
		newImportCmd(open),
		newExportCmd(open),
		newPlanCmd(open),
		newReportCmd(open),
	)
	return root
}

// withServices opens the services, runs fn and releases them.
func withServices(open opener, fn func(svc *server.Services) error) error {
	svc, closeFn, err := open()
	if err != nil {
		return err
	}
	defer closeFn()
	return fn(svc)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
