package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/plureonic/cashflow/internal/cli"
	"github.com/plureonic/cashflow/internal/ledger"
	"github.com/plureonic/cashflow/internal/model"
)

func listCmd() *cobra.Command {
	var monthStr string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recorded transactions",
		Long: `Display the recorded transactions in the order they were added.

With --month, only the transactions active in that month are shown: one-time
items whose month it is, and recurring items whose start/end range covers it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := openStore()
			if err != nil {
				return err
			}

			txns, err := store.Load(ctx)
			if err != nil {
				return fmt.Errorf("failed to load ledger: %w", err)
			}

			title := "Transactions"
			if monthStr != "" {
				m, parseErr := model.ParseMonth(monthStr)
				if parseErr != nil {
					return fmt.Errorf("invalid month filter: %w", parseErr)
				}
				txns = ledger.ListActive(txns, m)
				title = fmt.Sprintf("Transactions active in %s", m)
			}

			if len(txns) == 0 {
				fmt.Println(cli.FormatInfo("No transactions found. Use 'cashflow add' to record one.")) //nolint:forbidigo // User-facing output
				return nil
			}

			fmt.Println(cli.FormatTitle(title)) //nolint:forbidigo // User-facing output
			fmt.Println()                       //nolint:forbidigo // User-facing output

			// Create table writer
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() {
				if flushErr := w.Flush(); flushErr != nil {
					slog.Error("failed to flush table writer", "error", flushErr)
				}
			}()

			// Header
			if _, err := fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				cli.HeaderStyle.Render("Description"),
				cli.HeaderStyle.Render("Amount"),
				cli.HeaderStyle.Render("Schedule"),
				cli.HeaderStyle.Render("Category"),
				cli.HeaderStyle.Render("ID")); err != nil {
				return fmt.Errorf("failed to write header: %w", err)
			}

			// Separator
			if _, err := fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				strings.Repeat("─", 20),
				strings.Repeat("─", 10),
				strings.Repeat("─", 18),
				strings.Repeat("─", 12),
				strings.Repeat("─", 36)); err != nil {
				return fmt.Errorf("failed to write separator: %w", err)
			}

			// Data rows
			for _, txn := range txns {
				if _, err := fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					txn.Description,
					cli.FormatAmount(txn.Amount, txn.Direction),
					formatSchedule(txn),
					txn.Category,
					cli.SubtleStyle.Render(txn.ID)); err != nil {
					return fmt.Errorf("failed to write transaction row: %w", err)
				}
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&monthStr, "month", "", "only show transactions active in this month (YYYY-MM)")

	return cmd
}
