package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"budgetbook/internal/csvio"
	"budgetbook/internal/logger"
	"budgetbook/internal/server"
	"budgetbook/internal/services"
)

// importResult is printed after an import.
type importResult struct {
	Imported int           `json:"imported"`
	Skipped  int           `json:"skipped"`
	Errors   []importError `json:"errors"`
}

type importError struct {
	Line    int    `json:"line"`
	Message string `json:"message"`
}

func newImportCmd(open opener) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Import transactions from a CSV file",
		Long: `Import transactions from a CSV file with the export header. Rows whose id is
already stored are skipped. Rows that fail to parse or validate are reported
and the import continues with the next row.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open %s: %w", args[0], err)
			}
			defer f.Close()

			return withServices(open, func(svc *server.Services) error {
				result, err := importTransactions(svc, f)
				if err != nil {
					return err
				}
				if err := printJSON(cmd.OutOrStdout(), result); err != nil {
					return err
				}
				if len(result.Errors) > 0 {
					return fmt.Errorf("%d row(s) failed to import", len(result.Errors))
				}
				return nil
			})
		},
	}
}

func importTransactions(svc *server.Services, r io.Reader) (*importResult, error) {
	reader, err := csvio.NewReader(r)
	if err != nil {
		return nil, err
	}

	result := &importResult{Errors: []importError{}}
	for {
		tx, err := reader.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			result.Errors = append(result.Errors, importError{Line: reader.Line(), Message: err.Error()})
			continue
		}
		created, err := svc.Transactions.ImportTransaction(tx)
		if err != nil {
			result.Errors = append(result.Errors, importError{Line: reader.Line(), Message: err.Error()})
			continue
		}
		if created {
			result.Imported++
			svc.Audit.Log(services.DefaultActor, "IMPORT_TRANSACTION", "transaction", tx.ID, auditSource,
				map[string]any{"kind": tx.Kind, "amount": tx.Amount, "month": tx.Month, "line": reader.Line()})
		} else {
			result.Skipped++
		}
	}

	logger.Named("import").Infow("transactions imported",
		"imported", result.Imported, "skipped", result.Skipped, "errors", len(result.Errors))
	return result, nil
}

func newExportCmd(open opener) *cobra.Command {
	var month, output string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export one month of transactions as CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withServices(open, func(svc *server.Services) error {
				txns, err := svc.Transactions.GetMonthTransactions(month)
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				if output != "" {
					f, err := os.Create(output)
					if err != nil {
						return fmt.Errorf("create %s: %w", output, err)
					}
					defer f.Close()
					out = f
				}

				w := csvio.NewWriter(out)
				for i := range txns {
					if err := w.Write(&txns[i]); err != nil {
						return err
					}
				}
				return w.Flush()
			})
		},
	}
	cmd.Flags().StringVar(&month, "month", "", "month to export (YYYY-MM)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to this file instead of stdout")
	_ = cmd.MarkFlagRequired("month")
	return cmd
}
