package main

import (
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/plureonic/cashflow/internal/cli"
	"github.com/plureonic/cashflow/internal/ledger"
	"github.com/plureonic/cashflow/internal/model"
)

func summaryCmd() *cobra.Command {
	var openingBalance float64

	cmd := &cobra.Command{
		Use:   "summary <month>",
		Short: "Show the cash flow summary for a month",
		Long: `Compute the cash flow summary for a month: total inflows, total
outflows, net, and the closing balance given an opening balance.

Example:
  cashflow summary 2024-02 --opening-balance 200`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			m, err := model.ParseMonth(args[0])
			if err != nil {
				return err
			}

			store, err := openStore()
			if err != nil {
				return err
			}

			txns, err := store.Load(ctx)
			if err != nil {
				return fmt.Errorf("failed to load ledger: %w", err)
			}

			s := ledger.Summarize(txns, m, openingBalance)

			fmt.Println(cli.FormatTitle(fmt.Sprintf("Cash flow summary for %s", s.Month))) //nolint:forbidigo // User-facing output
			fmt.Println()                                                                  //nolint:forbidigo // User-facing output

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() {
				if flushErr := w.Flush(); flushErr != nil {
					slog.Error("failed to flush table writer", "error", flushErr)
				}
			}()

			rows := []struct {
				label string
				value string
			}{
				{"Opening balance:", cli.FormatMoney(s.OpeningBalance)},
				{"Total inflows:", cli.InflowStyle.Render(cli.FormatMoney(s.TotalInflow))},
				{"Total outflows:", cli.OutflowStyle.Render(cli.FormatMoney(s.TotalOutflow))},
				{"Net:", cli.FormatMoney(s.Net)},
				{"Closing balance:", cli.FormatMoney(s.ClosingBalance)},
			}
			for _, row := range rows {
				if _, err := fmt.Fprintf(w, "%s\t%s\n", row.label, row.value); err != nil {
					return fmt.Errorf("failed to write summary row: %w", err)
				}
			}

			if len(s.Transactions) > 0 {
				if _, err := fmt.Fprintf(w, "\nTransactions contributing to this month:\n"); err != nil {
					return fmt.Errorf("failed to write output: %w", err)
				}
				for _, txn := range s.Transactions {
					if _, err := fmt.Fprintf(w, "- %s\t%s\t%s\t%s\n",
						txn.Description,
						cli.FormatAmount(txn.Amount, txn.Direction),
						formatSchedule(txn),
						txn.Category); err != nil {
						return fmt.Errorf("failed to write transaction row: %w", err)
					}
				}
			}

			return nil
		},
	}

	cmd.Flags().Float64Var(&openingBalance, "opening-balance", 0, "starting balance for the month")

	return cmd
}
